// Package service exposes the week seconds encoder to transports
package service

import (
	"context"

	"jbatoolkit/internal/core/weeksec"
	"jbatoolkit/internal/platform/logger"
	"jbatoolkit/internal/services/api/weeksec/domain"
)

// Service defines the week seconds service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the week seconds service
type Svc struct {
	format *weeksec.Formatter
}

// New constructs the service; a nil formatter falls back to en-US grouping
func New(f *weeksec.Formatter) *Svc {
	if f == nil {
		f = weeksec.MustFormatter("en-US")
	}
	return &Svc{format: f}
}

// Encode returns day*86400 + seconds into the day.
// Format and range failures come back as InvalidFormat and InvalidValues.
func (s *Svc) Encode(ctx context.Context, in domain.EncodeInput) (domain.EncodeOutput, error) {
	day, err := weeksec.ParseDay(in.Day)
	if err != nil {
		return domain.EncodeOutput{}, err
	}
	total, err := weeksec.Encode(day, in.Time)
	if err != nil {
		logger.C(ctx).Debug().Err(err).Str("day", day.String()).Str("time", in.Time).Msg("encode rejected")
		return domain.EncodeOutput{}, err
	}
	return domain.EncodeOutput{
		Day:      day.String(),
		DayIndex: int(day),
		Time:     in.Time,
		Total:    total,
		Grouped:  s.format.Grouped(total),
		Display:  s.format.Render(total),
	}, nil
}

// Decode inverts Encode
func (s *Svc) Decode(_ context.Context, in domain.DecodeInput) (domain.DecodeOutput, error) {
	day, tod, err := weeksec.Decode(in.Seconds)
	if err != nil {
		return domain.DecodeOutput{}, err
	}
	return domain.DecodeOutput{
		Seconds:  in.Seconds,
		Day:      day.String(),
		DayIndex: int(day),
		Time:     tod.String(),
	}, nil
}

// Days lists the selector options
func (s *Svc) Days(_ context.Context) (domain.DaysOutput, error) {
	days := weeksec.Days()
	out := domain.DaysOutput{Days: make([]domain.Day, 0, len(days))}
	for _, d := range days {
		out.Days = append(out.Days, domain.Day{Index: int(d), Name: d.String()})
	}
	return out, nil
}
