// Package module wires the refresher as a modkit.Module
package module

import (
	"jbatoolkit/internal/modkit"
	"jbatoolkit/internal/modkit/httpkit"
	modreg "jbatoolkit/internal/modkit/module"

	rdom "jbatoolkit/internal/services/refresher/domain"
	rsvc "jbatoolkit/internal/services/refresher/service"
)

// Ports exported by the refresher module
type Ports struct {
	Runner    rdom.RunnerPort
	Reader    rdom.ReaderPort
	Evaluator rdom.EvaluatorPort
}

// Module implements modkit.Module for the refresher
type Module struct {
	deps  modkit.Deps
	svc   *rsvc.Svc
	ports Ports
}

// New constructs the refresher from deps with the given cadence periods.
// modkit.WithClock overrides the deps clock.
func New(deps modkit.Deps, cfg rsvc.Config, opts ...modkit.Option) *Module {
	b := modkit.Build(opts...)
	svc := rsvc.New(b.ClockOr(deps), deps.Table, deps.Window, deps.Schedule, cfg)

	m := &Module{deps: deps, svc: svc}
	m.ports = Ports{Runner: svc, Reader: svc.Board(), Evaluator: svc}
	return m
}

// Name returns the module name
func (m *Module) Name() string { return "refresher" }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Prefix returns the module route prefix (none)
func (m *Module) Prefix() string { return "" }

// MountRoutes is a no-op: the refresher is read through the board API
func (m *Module) MountRoutes(_ httpkit.Router) {}

// Register makes the refresher ports resolvable by name
func Register(deps modkit.Deps) *Module {
	m := New(deps, FromConfig(deps.Cfg))
	modreg.Register(m.Name(), m.Ports())
	return m
}
