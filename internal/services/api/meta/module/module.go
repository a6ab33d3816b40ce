// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"net/http"
	"time"

	modkit "jbatoolkit/internal/modkit"
	"jbatoolkit/internal/modkit/httpkit"
	str "jbatoolkit/internal/platform/strings"

	metahttp "jbatoolkit/internal/services/api/meta/http"
	rdom "jbatoolkit/internal/services/refresher/domain"
)

// ServiceName is reported by the health, version and service endpoints
const ServiceName = "jbatoolkit-api"

// Ports optionally injects the refresher reader for the readiness probe
type Ports struct {
	Reader rdom.ReaderPort
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	clk := b.ClockOr(deps)
	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		startedAt: clk.Now(),
	}

	injected, _ := b.Ports.(Ports)
	checks := []metahttp.Check{func() (string, string) {
		if deps.Table == nil || deps.Table.Len() == 0 {
			return "locations", "pending"
		}
		return "locations", "ok"
	}}
	if injected.Reader != nil {
		checks = append(checks, func() (string, string) {
			if _, ok := injected.Reader.Clock(); !ok {
				return "refresher", "pending"
			}
			return "refresher", "ok"
		})
	} else {
		checks = append(checks, func() (string, string) { return "refresher", "skipped" })
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: ServiceName,
			StartedAt:   m.startedAt,
			Clock:       clk,
			Checks:      checks,
		})
		external(r)
	}

	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		rr = m.subrouter(rr)
		m.register(rr)
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "meta") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
