// Package api provides the HTTP API for the application
package api

import (
	"jbatoolkit/internal/platform/config"
	phttp "jbatoolkit/internal/platform/net/http"

	"jbatoolkit/internal/modkit"
	"jbatoolkit/internal/modkit/httpkit"
	"jbatoolkit/internal/modkit/module"
	"jbatoolkit/internal/modkit/swaggerkit"

	boardmod "jbatoolkit/internal/services/api/board/module"
	metamod "jbatoolkit/internal/services/api/meta/module"
	weeksecmod "jbatoolkit/internal/services/api/weeksec/module"

	// the refresher owns the board cache; the API only reads it
	refmod "jbatoolkit/internal/services/refresher/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf // HTTP scope, CORE_API_*
	Deps           modkit.Deps
	Refresher      *refmod.Module // built from Deps when nil
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router and returns the
// refresher so the caller can run it
func Mount(r phttp.Router, opt Options) *refmod.Module {
	deps := opt.Deps

	refresher := opt.Refresher
	if refresher == nil {
		refresher = refmod.New(deps, refmod.FromConfig(deps.Cfg))
	}
	rp := module.MustPortsOf[refmod.Ports](refresher)

	mods := []module.Module{
		metamod.New(deps, modkit.WithPorts(metamod.Ports{Reader: rp.Reader})),
		boardmod.New(deps, modkit.WithPorts(boardmod.Ports{
			Reader:    rp.Reader,
			Evaluator: rp.Evaluator,
		})),
		weeksecmod.New(deps),
		refresher, // registered so its ports resolve by name
	}

	httpkit.MountAPIV1(r, httpkit.CommonStack(opt.Config), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})

	return refresher
}
