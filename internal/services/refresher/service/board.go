package service

import (
	"sync/atomic"

	"jbatoolkit/internal/core/wallclock"
	"jbatoolkit/internal/services/refresher/domain"
)

// Board is a latest-value cache with one slot per cadence.
// Writers swap whole values; readers never see a partial update.
type Board struct {
	clock atomic.Pointer[wallclock.Snapshot]
	night atomic.Pointer[domain.NightSet]
	week  atomic.Pointer[domain.WorkWeek]
}

// Clock returns the latest clock readout
func (b *Board) Clock() (wallclock.Snapshot, bool) {
	if p := b.clock.Load(); p != nil {
		return *p, true
	}
	return wallclock.Snapshot{}, false
}

// Night returns the latest night set
func (b *Board) Night() (domain.NightSet, bool) {
	if p := b.night.Load(); p != nil {
		return *p, true
	}
	return domain.NightSet{}, false
}

// WorkWeek returns the latest work week state
func (b *Board) WorkWeek() (domain.WorkWeek, bool) {
	if p := b.week.Load(); p != nil {
		return *p, true
	}
	return domain.WorkWeek{}, false
}

// Board returns all three slots; unpublished slots are zero
func (b *Board) Board() domain.Board {
	c, _ := b.Clock()
	n, _ := b.Night()
	w, _ := b.WorkWeek()
	return domain.Board{Clock: c, Night: n, WorkWeek: w}
}

func (b *Board) publishClock(v wallclock.Snapshot) { b.clock.Store(&v) }
func (b *Board) publishNight(v domain.NightSet)    { b.night.Store(&v) }
func (b *Board) publishWorkWeek(v domain.WorkWeek) { b.week.Store(&v) }
