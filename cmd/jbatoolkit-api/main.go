// @title         jbatoolkit API
// @version       0.1.0
// @description   Live clock, night watch, work week progress and week second encoding

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"jbatoolkit/internal/core/version"
	"jbatoolkit/internal/modkit"
	"jbatoolkit/internal/modkit/httpkit"
	"jbatoolkit/internal/modkit/module"
	"jbatoolkit/internal/modkit/swaggerkit"
	"jbatoolkit/internal/platform/config"
	"jbatoolkit/internal/platform/logger"
	phttp "jbatoolkit/internal/platform/net/http"

	"jbatoolkit/internal/services/api"
	metamod "jbatoolkit/internal/services/api/meta/module"
	refmod "jbatoolkit/internal/services/refresher/module"

	"github.com/go-chi/chi/v5"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	deps, err := modkit.LoadDeps(root)
	if err != nil {
		l.Fatal().Err(err).Msg("configuration rejected")
	}
	deps.Log = l

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg, func(m *chi.Mux) {
		m.Use(httpkit.RootStack(apiCfg)...)
	})

	build := version.Info(metamod.ServiceName)
	swaggerkit.Register(func(spec map[string]any) {
		if info, ok := spec["info"].(map[string]any); ok {
			info["version"] = build.Version
		}
	})

	refresher := api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Deps:           deps,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PPROF", false),
		},
	)

	runner := module.MustPortsOf[refmod.Ports](refresher).Runner
	go func() {
		if err := runner.Run(ctx); err != nil {
			l.Error().Err(err).Msg("refresher stopped")
			stop()
		}
	}()

	l.Info().Str("version", build.String()).Str("locale", deps.Format.Locale()).Int("locations", deps.Table.Len()).Msg("starting")

	if err := srv.Run(ctx, apiCfg.MayDuration("GRACE", 10*time.Second)); err != nil {
		l.Fatal().Err(err).Msg("http server stopped")
	}
}
