package domain

import "context"

// ServicePort is consumed by handlers and other modules.
// A pinned instant on ctx (net.WithAt) switches every method to recomputation.
type ServicePort interface {
	Board(ctx context.Context) (BoardView, error)
	Clock(ctx context.Context) (ClockView, error)
	Night(ctx context.Context) (NightView, error)
	WorkWeek(ctx context.Context) (WorkWeekView, error)
	Zones(ctx context.Context, q ZonesQuery) (ZonesView, error)
}
