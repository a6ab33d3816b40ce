// Package clock abstracts the current instant so evaluations can be pinned in tests
package clock

import (
	"sync"
	"time"
)

// Clock reports the current instant
type Clock interface {
	Now() time.Time
}

// Real is the production clock
type Real struct{}

// Now returns time.Now()
func (Real) Now() time.Time { return time.Now() }

// Zoned presents another clock's instants in a fixed location.
// A nil Loc leaves instants untouched.
type Zoned struct {
	Clock Clock
	Loc   *time.Location
}

// Now returns the wrapped clock's instant in Loc
func (z Zoned) Now() time.Time {
	t := z.Clock.Now()
	if z.Loc == nil {
		return t
	}
	return t.In(z.Loc)
}

// Fake is a manually driven clock for tests; safe for concurrent use
type Fake struct {
	mu  sync.Mutex
	cur time.Time
}

// NewFake returns a Fake pinned at start
func NewFake(start time.Time) *Fake { return &Fake{cur: start} }

// Now returns the pinned instant
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cur
}

// Advance moves the clock forward by d
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	f.cur = f.cur.Add(d)
	f.mu.Unlock()
}

// Set pins the clock at t
func (f *Fake) Set(t time.Time) {
	f.mu.Lock()
	f.cur = t
	f.mu.Unlock()
}

// Func adapts a plain function to Clock
type Func func() time.Time

// Now calls f
func (f Func) Now() time.Time { return f() }
