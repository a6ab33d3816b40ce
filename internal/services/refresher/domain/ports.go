package domain

import (
	"context"
	"time"

	"jbatoolkit/internal/core/wallclock"
)

// RunnerPort drives the periodic cadences until ctx is cancelled
type RunnerPort interface {
	Run(ctx context.Context) error
}

// ReaderPort reads the latest published values.
// ok is false until the first evaluation of that cadence has been published.
type ReaderPort interface {
	Clock() (wallclock.Snapshot, bool)
	Night() (NightSet, bool)
	WorkWeek() (WorkWeek, bool)
	Board() Board
}

// EvaluatorPort recomputes every value at an explicit instant without publishing
type EvaluatorPort interface {
	Evaluate(at time.Time) Board
	Now() time.Time
}
