// Package module wires the board into the API using modkit
package module

import (
	"net/http"

	modkit "jbatoolkit/internal/modkit"
	"jbatoolkit/internal/modkit/httpkit"
	str "jbatoolkit/internal/platform/strings"

	bhttp "jbatoolkit/internal/services/api/board/http"
	bsvc "jbatoolkit/internal/services/api/board/service"
	rdom "jbatoolkit/internal/services/refresher/domain"
)

// Ports declares the refresher ports this module reads from
type Ports struct {
	Reader    rdom.ReaderPort
	Evaluator rdom.EvaluatorPort
}

// Module implements the board API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws []func(http.Handler) http.Handler

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc bsvc.Service
}

// New constructs the board module. The refresher ports must be injected with modkit.WithPorts.
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("board"),
		modkit.WithPrefix("/board"),
	}, opts...)...)

	injected, _ := b.Ports.(Ports)
	if injected.Reader == nil || injected.Evaluator == nil {
		panic("board API module requires Reader and Evaluator ports (from services/refresher)")
	}

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       bsvc.New(injected.Reader, injected.Evaluator, deps.Table),
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		bhttp.Register(r, m.svc)
		external(r)
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		rr = m.subrouter(rr)
		m.register(rr)
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports exposes the board service for in-process callers
func (m *Module) Ports() any { return m.svc }
