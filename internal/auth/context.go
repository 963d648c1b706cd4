package auth

import (
	"context"
	"net/http"
	"strings"
)

// Context carries the request-scoped caller identity, if any. It is
// built once per request and passed explicitly into lifecycle
// operations, so the authorization dependency is visible in every
// signature that needs it.
type Context struct {
	userID string
}

func Anonymous() Context {
	return Context{}
}

func WithIdentity(userID string) Context {
	return Context{userID: userID}
}

// Identity is the authorization gate: it reports the caller identity
// and whether one is present. It is evaluated once per request.
func (c Context) Identity() (string, bool) {
	return c.userID, c.userID != ""
}

type ctxKey struct{}

// FromRequest returns the auth context attached by Extract, or an
// anonymous one when the middleware did not run.
func FromRequest(r *http.Request) Context {
	if c, ok := r.Context().Value(ctxKey{}).(Context); ok {
		return c
	}
	return Anonymous()
}

// Extract parses a bearer token when present and attaches the resulting
// auth context to the request. Missing or invalid tokens yield an
// anonymous context; whether that is acceptable is the lifecycle
// engine's call, not the transport's.
func Extract(jwtSvc *JWT) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ac := Anonymous()
			h := r.Header.Get("Authorization")
			if strings.HasPrefix(h, "Bearer ") {
				if uid, err := jwtSvc.Verify(strings.TrimPrefix(h, "Bearer ")); err == nil {
					ac = WithIdentity(uid)
				}
			}
			ctx := context.WithValue(r.Context(), ctxKey{}, ac)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
