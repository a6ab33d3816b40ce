// Package module wires the week seconds encoder into the API using modkit
package module

import (
	"net/http"

	modkit "jbatoolkit/internal/modkit"
	"jbatoolkit/internal/modkit/httpkit"
	str "jbatoolkit/internal/platform/strings"

	whttp "jbatoolkit/internal/services/api/weeksec/http"
	wsvc "jbatoolkit/internal/services/api/weeksec/service"
)

// Module implements the week seconds module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc wsvc.Service
}

// New constructs the week seconds module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("weeksec"), modkit.WithPrefix("/weeksec")}, opts...)...)

	svc := wsvc.New(deps.Format)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = svc

	external := b.Register
	m.register = func(r httpkit.Router) {
		whttp.Register(r, m.svc)
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

// Ports returns the week seconds service port
func (m *Module) Ports() any { return m.ports }
