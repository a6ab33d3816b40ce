package httpkit

import (
	"net/http"
	"time"

	"jbatoolkit/internal/platform/config"
	"jbatoolkit/internal/platform/net/middleware"
)

// RootStack is mounted on the server mux before routing: correlation, access
// log, panic recovery, the /health heartbeat and trailing slash cleanup
func RootStack(cfg config.Conf) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.AccessLog(middleware.AccessLogOptions{
			Slow: cfg.MayDuration("SLOW", 500*time.Millisecond),
		}),
		middleware.RecoverJSON,
		middleware.Heartbeat("/health"),
		middleware.StripSlashes(),
	}
}

// CommonStack returns the per API scope middleware slice
func CommonStack(cfg config.Conf) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// board values go stale every tick
		middleware.NoCache(),
		middleware.CORS(middleware.CORSOptions{
			AllowedOrigins: cfg.MayCSV("CORS_ORIGINS", nil),
		}),
		middleware.Compress(),
		middleware.Timeout(cfg.MayDuration("TIMEOUT", 30*time.Second)),
	}
}
