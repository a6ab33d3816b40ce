package modkit

import (
	"net/http"

	"jbatoolkit/internal/modkit/httpkit"
	"jbatoolkit/internal/platform/clock"
)

// Built is a plain struct with the fields modules care about
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any
	Clock  clock.Clock

	// router hooks set via options and exposed to modules
	Subrouter func(httpkit.Router) httpkit.Router
	Register  func(httpkit.Router)
}

// Build applies Option funcs to an internal buildCfg and returns a plain struct
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.subrouter == nil {
		c.subrouter = func(r httpkit.Router) httpkit.Router { return r }
	}
	if c.register == nil {
		c.register = func(httpkit.Router) {}
	}
	return Built{
		Name:      c.name,
		Prefix:    c.prefix,
		Mw:        append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:     c.ports,
		Clock:     c.clock,
		Subrouter: c.subrouter,
		Register:  c.register,
	}
}

// ClockOr returns the module clock override, or the deps clock
func (b Built) ClockOr(d Deps) clock.Clock {
	if b.Clock != nil {
		return b.Clock
	}
	if d.Clock != nil {
		return d.Clock
	}
	return clock.Real{}
}
