package modkit

import (
	"net/http"
	"reflect"
	"testing"
	"time"

	"jbatoolkit/internal/modkit/httpkit"
	"jbatoolkit/internal/platform/clock"
)

func TestBuild_Defaults(t *testing.T) {
	t.Parallel()

	b := Build()
	if b.Name != "" || b.Prefix != "" || b.Ports != nil || b.Clock != nil {
		t.Fatalf("unexpected defaults: %+v", b)
	}
	if len(b.Mw) != 0 {
		t.Fatalf("default Mw length = %d, want 0", len(b.Mw))
	}

	var r httpkit.Router
	if r2 := b.Subrouter(r); r2 != r {
		t.Fatalf("default Subrouter should be identity")
	}
	b.Register(r)
}

func TestBuild_CopiesMiddlewares(t *testing.T) {
	t.Parallel()

	ptr := func(f func(http.Handler) http.Handler) uintptr { return reflect.ValueOf(f).Pointer() }
	mwA := func(next http.Handler) http.Handler { return next }
	mwB := func(next http.Handler) http.Handler { return next }
	mid := []func(http.Handler) http.Handler{mwA, mwB}

	b := Build(WithName("weeksec"), WithPrefix("/weeksec"), WithMiddlewares(mid...))
	if b.Name != "weeksec" || b.Prefix != "/weeksec" {
		t.Fatalf("name/prefix = %q %q", b.Name, b.Prefix)
	}

	mid[0] = func(next http.Handler) http.Handler { return next }
	if ptr(b.Mw[0]) != ptr(mwA) || ptr(b.Mw[1]) != ptr(mwB) {
		t.Fatalf("Built.Mw changed after source slice mutation")
	}
}

func TestBuilt_ClockOr(t *testing.T) {
	t.Parallel()

	depClock := clock.NewFake(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	modClock := clock.NewFake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	if got := Build().ClockOr(Deps{}); got == nil {
		t.Fatal("expected a real clock fallback")
	}
	if got := Build().ClockOr(Deps{Clock: depClock}); got.Now() != depClock.Now() {
		t.Fatalf("expected deps clock, got %v", got.Now())
	}
	if got := Build(WithClock(modClock)).ClockOr(Deps{Clock: depClock}); got.Now() != modClock.Now() {
		t.Fatalf("expected module clock, got %v", got.Now())
	}
}
