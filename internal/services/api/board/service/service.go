// Package service reads the refresher board or recomputes at a pinned instant
package service

import (
	"context"
	"time"

	"jbatoolkit/internal/core/locations"
	perr "jbatoolkit/internal/platform/errors"
	pnet "jbatoolkit/internal/platform/net"
	"jbatoolkit/internal/services/api/board/domain"
	rdom "jbatoolkit/internal/services/refresher/domain"
)

// Service defines the board service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the board service
type Svc struct {
	reader rdom.ReaderPort
	eval   rdom.EvaluatorPort
	table  *locations.Table
}

// New constructs a board service over the refresher ports
func New(reader rdom.ReaderPort, eval rdom.EvaluatorPort, tbl *locations.Table) *Svc {
	if reader == nil || eval == nil {
		panic("board.Service requires refresher Reader and Evaluator ports")
	}
	if tbl == nil {
		panic("board.Service requires a location table")
	}
	return &Svc{reader: reader, eval: eval, table: tbl}
}

// Board returns every value
func (s *Svc) Board(ctx context.Context) (domain.BoardView, error) {
	if at, ok := pnet.At(ctx); ok {
		return s.view(domain.SourcePinned, s.eval.Evaluate(at)), nil
	}
	c, okC := s.reader.Clock()
	n, okN := s.reader.Night()
	w, okW := s.reader.WorkWeek()
	if okC && okN && okW {
		return s.view(domain.SourceLive, rdom.Board{Clock: c, Night: n, WorkWeek: w}), nil
	}
	return s.view(domain.SourceComputed, s.eval.Evaluate(s.eval.Now())), nil
}

// Clock returns the clock readout
func (s *Svc) Clock(ctx context.Context) (domain.ClockView, error) {
	if at, ok := pnet.At(ctx); ok {
		return domain.ClockView{Source: domain.SourcePinned, Snapshot: s.eval.Evaluate(at).Clock}, nil
	}
	if c, ok := s.reader.Clock(); ok {
		return domain.ClockView{Source: domain.SourceLive, Snapshot: c}, nil
	}
	return domain.ClockView{Source: domain.SourceComputed, Snapshot: s.eval.Evaluate(s.eval.Now()).Clock}, nil
}

// Night returns the locations currently in their night window
func (s *Svc) Night(ctx context.Context) (domain.NightView, error) {
	if at, ok := pnet.At(ctx); ok {
		return nightView(domain.SourcePinned, s.eval.Evaluate(at).Night), nil
	}
	if n, ok := s.reader.Night(); ok {
		return nightView(domain.SourceLive, n), nil
	}
	return nightView(domain.SourceComputed, s.eval.Evaluate(s.eval.Now()).Night), nil
}

// WorkWeek returns the work week progress
func (s *Svc) WorkWeek(ctx context.Context) (domain.WorkWeekView, error) {
	if at, ok := pnet.At(ctx); ok {
		return domain.WorkWeekView{Source: domain.SourcePinned, WorkWeek: s.eval.Evaluate(at).WorkWeek}, nil
	}
	if w, ok := s.reader.WorkWeek(); ok {
		return domain.WorkWeekView{Source: domain.SourceLive, WorkWeek: w}, nil
	}
	return domain.WorkWeekView{Source: domain.SourceComputed, WorkWeek: s.eval.Evaluate(s.eval.Now()).WorkWeek}, nil
}

// Zones lists every configured location at the pinned instant or now
func (s *Svc) Zones(ctx context.Context, q domain.ZonesQuery) (domain.ZonesView, error) {
	sort := q.Sort
	switch sort {
	case "":
		sort = "table"
	case "table", "offset":
	default:
		return domain.ZonesView{}, perr.WithField(perr.InvalidArgf("sort must be table or offset, got %q", q.Sort), "sort")
	}
	at := s.instant(ctx)
	rows := s.table.Overview(at, sort == "offset")
	return domain.ZonesView{At: at, Sort: sort, Count: len(rows), Rows: rows}, nil
}

func (s *Svc) instant(ctx context.Context) time.Time {
	if at, ok := pnet.At(ctx); ok {
		return at
	}
	return s.eval.Now()
}

func (s *Svc) view(src domain.Source, b rdom.Board) domain.BoardView {
	return domain.BoardView{
		Source:   src,
		Clock:    domain.ClockView{Source: src, Snapshot: b.Clock},
		Night:    nightView(src, b.Night),
		WorkWeek: domain.WorkWeekView{Source: src, WorkWeek: b.WorkWeek},
	}
}

func nightView(src domain.Source, n rdom.NightSet) domain.NightView {
	return domain.NightView{Source: src, Count: len(n.Entries), NightSet: n}
}
