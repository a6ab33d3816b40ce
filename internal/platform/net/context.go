// Package net provides utilities for working with request contexts
package net

import (
	"context"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const keyAt ctxKey = "eval_at"

// WithRequest annotates context with the request id so chimw.GetReqID can retrieve it
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// WithAt pins the evaluation instant for the request (the ?at= override)
func WithAt(ctx context.Context, at time.Time) context.Context {
	if at.IsZero() {
		return ctx
	}
	return context.WithValue(ctx, keyAt, at)
}

// At returns the pinned evaluation instant, if any
func At(ctx context.Context) (time.Time, bool) {
	t, ok := ctx.Value(keyAt).(time.Time)
	return t, ok
}
