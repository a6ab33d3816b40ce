package httpkit

import (
	"net/http"
	"testing"
)

// fakeRouter records prefixes, middleware and verb registrations
type fakeRouter struct {
	prefixes  []string
	useCalls  int
	lastMWLen int
	routes    []string
}

func (f *fakeRouter) Mux() http.Handler { return http.NewServeMux() }

func (f *fakeRouter) Route(prefix string, fn func(Router)) {
	f.prefixes = append(f.prefixes, prefix)
	fn(f)
}

func (f *fakeRouter) Group(fn func(Router)) { fn(f) }

func (f *fakeRouter) Use(mw ...func(http.Handler) http.Handler) {
	f.useCalls++
	f.lastMWLen = len(mw)
}

func (f *fakeRouter) Handle(path string, _ http.Handler) { f.routes = append(f.routes, "HANDLE "+path) }
func (f *fakeRouter) Get(path string, _ Handler)         { f.routes = append(f.routes, "GET "+path) }
func (f *fakeRouter) Post(path string, _ Handler)        { f.routes = append(f.routes, "POST "+path) }

var _ Router = (*fakeRouter)(nil)

func noop(next http.Handler) http.Handler { return next }

func TestMountUnder(t *testing.T) {
	cases := []struct {
		name    string
		mw      []func(http.Handler) http.Handler
		wantUse int
	}{
		{name: "no middleware skips Use", mw: nil, wantUse: 0},
		{name: "middleware applied once", mw: []func(http.Handler) http.Handler{noop, noop}, wantUse: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := &fakeRouter{}
			mounted := false
			MountUnder(f, "/board", tc.mw, func(r Router) {
				mounted = true
				Get(r, "/clock", func(*http.Request) (any, error) { return nil, nil })
			})
			if !mounted {
				t.Fatal("mount callback not invoked")
			}
			if len(f.prefixes) != 1 || f.prefixes[0] != "/board" {
				t.Fatalf("prefixes = %v", f.prefixes)
			}
			if f.useCalls != tc.wantUse {
				t.Fatalf("Use calls = %d want %d", f.useCalls, tc.wantUse)
			}
			if len(f.routes) != 1 || f.routes[0] != "GET /clock" {
				t.Fatalf("routes = %v", f.routes)
			}
		})
	}
}

func TestMountAPI_Versions(t *testing.T) {
	cases := map[string]string{"v1": "/api/v1", "/v2": "/api/v2", "v3/": "/api/v3"}
	for in, want := range cases {
		f := &fakeRouter{}
		MountAPI(f, in, []func(http.Handler) http.Handler{noop}, func(Router) {})
		if len(f.prefixes) != 1 || f.prefixes[0] != want {
			t.Fatalf("MountAPI(%q) prefixes = %v want %s", in, f.prefixes, want)
		}
		if f.lastMWLen != 1 {
			t.Fatalf("middleware len = %d", f.lastMWLen)
		}
	}

	f := &fakeRouter{}
	MountAPIV1(f, nil, func(r Router) {
		PostJSON(r, "/encode", func(*http.Request, struct{}) (any, error) { return nil, nil })
	})
	if f.prefixes[0] != "/api/v1" || f.routes[0] != "POST /encode" {
		t.Fatalf("MountAPIV1 = %v %v", f.prefixes, f.routes)
	}
}
