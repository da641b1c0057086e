package gate

import (
	"context"
	"net/http"
)

type ctxKey struct{}

// WithIdentity stores the caller identity in ctx. Set by the identify
// middleware once per request.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromCtx extracts the caller identity. A request that never passed the
// identify middleware yields the zero Identity (unauthenticated, no role).
func FromCtx(ctx context.Context) Identity {
	if id, ok := ctx.Value(ctxKey{}).(Identity); ok {
		return id
	}
	return Identity{}
}

// URLResolver turns a route name into a path. Satisfied by pkg/router.
type URLResolver interface {
	URL(name string, params map[string]string) (string, error)
}

// Middleware adapts a gate chain to standard HTTP middleware. Redirect
// decisions are resolved through the named router; a route that cannot be
// resolved falls back to a 403 rather than leaving the request unanswered.
func Middleware(resolver URLResolver, gates ...Gate) func(http.Handler) http.Handler {
	chain := Chain(gates...)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d := chain(FromCtx(r.Context()))

			switch d.Kind {
			case KindProceed:
				next.ServeHTTP(w, r)

			case KindRedirect:
				target, err := resolver.URL(d.Route, nil)
				if err != nil {
					http.Error(w, "Forbidden", http.StatusForbidden)
					return
				}
				http.Redirect(w, r, target, http.StatusFound)

			case KindDeny:
				http.Error(w, "You are not authorized to view this page.", d.Status)
			}
		})
	}
}
