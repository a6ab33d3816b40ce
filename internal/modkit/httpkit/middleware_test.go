package httpkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"jbatoolkit/internal/platform/config"
)

func applyStack(h http.Handler, stack []func(http.Handler) http.Handler) http.Handler {
	for i := len(stack) - 1; i >= 0; i-- {
		h = stack[i](h)
	}
	return h
}

func TestRootStack_HealthAndRequestID(t *testing.T) {
	cfg := config.New().Prefix("CORE_API_")
	var seenID string
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = r.Header.Get("X-Request-Id")
		w.WriteHeader(http.StatusNoContent)
	})
	root := applyStack(final, RootStack(cfg))

	rec := httptest.NewRecorder()
	root.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "." {
		t.Fatalf("/health = %d %q", rec.Code, rec.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/board", nil)
	req.Header.Set("X-Request-Id", "req-42")
	rec = httptest.NewRecorder()
	root.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent || seenID != "req-42" {
		t.Fatalf("passthrough = %d id=%q", rec.Code, seenID)
	}
}

func TestRootStack_RecoversPanics(t *testing.T) {
	cfg := config.New().Prefix("CORE_API_")
	root := applyStack(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}), RootStack(cfg))

	rec := httptest.NewRecorder()
	root.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestCommonStack_CORSAndNoCache(t *testing.T) {
	t.Setenv("CORE_API_CORS_ORIGINS", "https://dash.example.com")
	cfg := config.New().Prefix("CORE_API_")

	hit := 0
	root := applyStack(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hit++
		w.WriteHeader(http.StatusOK)
	}), CommonStack(cfg))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/board", nil)
	req.Header.Set("Origin", "https://dash.example.com")
	rec := httptest.NewRecorder()
	root.ServeHTTP(rec, req)

	if hit != 1 {
		t.Fatalf("handler hits = %d", hit)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://dash.example.com" {
		t.Fatalf("allow origin = %q", got)
	}
	if rec.Header().Get("Cache-Control") == "" {
		t.Fatalf("expected no-cache headers, got %v", rec.Header())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/board", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	root.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unexpected allow origin %q", got)
	}
}
