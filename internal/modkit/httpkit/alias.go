// Package httpkit provides handler and routing helpers that alias the platform http package
// use these from modules so they do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"
	"strings"
	"time"

	perr "jbatoolkit/internal/platform/errors"
	phttp "jbatoolkit/internal/platform/net/http"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope

	// Response is the HTTP response type
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is a re-export of the platform router seam
	Router = phttp.Router
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Error returns a response that maps an error to status and envelope
func Error(err error) Response { return phttp.Error(err) }

// JSON decodes and validates a T body before calling fn
func JSON[T any](fn func(*http.Request, T) (any, error)) Handler { return phttp.JSONHandler(fn) }

// Call adapts a handler that takes no JSON body
func Call(fn func(*http.Request) (any, error)) Handler { return phttp.JSONHandlerNoBody(fn) }

// Handle lets you directly adapt a Response-returning function if you prefer
func Handle(fn func(*http.Request) Response) Handler { return phttp.Handle(fn) }

// URLParam returns a path parameter captured by the router
func URLParam(r *http.Request, key string) string { return phttp.URLParam(r, key) }

// QueryTime parses an optional RFC3339 query parameter.
// ok is false when the parameter is absent; a malformed value is an InvalidArgument error.
func QueryTime(r *http.Request, key string) (at time.Time, ok bool, err error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return time.Time{}, false, nil
	}
	at, err = time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false, perr.WithField(perr.InvalidArgf("%s must be RFC3339, got %q", key, raw), key)
	}
	return at, true, nil
}
