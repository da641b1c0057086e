// Package gate implements composable authorization predicates evaluated
// before an operation runs. Each gate is a pure function of the caller's
// identity and produces a tagged decision: proceed to the handler, redirect
// to a named route, or deny with an HTTP status. Gates never mutate state.
//
// Chains evaluate in declared order and short-circuit on the first
// non-proceed decision, so an operation can require authentication AND
// restrict to a role set at once:
//
//	gate.Chain(
//	    gate.RequireAuth("login"),
//	    gate.Allow("admin"),
//	)
package gate

import "net/http"

// Identity describes the caller as far as authorization cares: whether a
// valid session (or token) exists and which single role the account holds.
type Identity struct {
	UserID        uint
	Role          string
	Authenticated bool
}

// Kind tags a gate decision.
type Kind int

const (
	// KindProceed lets the wrapped operation run.
	KindProceed Kind = iota
	// KindRedirect short-circuits to a named route.
	KindRedirect
	// KindDeny short-circuits with an HTTP status and no redirect.
	KindDeny
)

// Decision is the outcome of evaluating a gate against an identity.
type Decision struct {
	Kind   Kind
	Route  string // redirect target (route name) when Kind == KindRedirect
	Status int    // HTTP status when Kind == KindDeny
}

// Proceed allows the operation.
func Proceed() Decision { return Decision{Kind: KindProceed} }

// RedirectTo short-circuits to the named route.
func RedirectTo(route string) Decision { return Decision{Kind: KindRedirect, Route: route} }

// Deny short-circuits with the given status.
func Deny(status int) Decision { return Decision{Kind: KindDeny, Status: status} }

// Gate is a single authorization predicate.
type Gate func(id Identity) Decision

// RequireAuth redirects unauthenticated callers to the login route.
func RequireAuth(loginRoute string) Gate {
	return func(id Identity) Decision {
		if !id.Authenticated {
			return RedirectTo(loginRoute)
		}
		return Proceed()
	}
}

// GuestOnly is the inverse of RequireAuth, used on login and registration
// entry points: an authenticated caller is bounced to their role's landing
// route instead of seeing the page again. landings maps role → route name;
// authenticated callers with an unmapped role go to fallback.
func GuestOnly(landings map[string]string, fallback string) Gate {
	return func(id Identity) Decision {
		if !id.Authenticated {
			return Proceed()
		}
		if route, ok := landings[id.Role]; ok {
			return RedirectTo(route)
		}
		return RedirectTo(fallback)
	}
}

// Allow permits only the listed roles; everyone else gets a plain 403
// denial, not a redirect. An unauthenticated caller has no role and is
// therefore denied too; compose with RequireAuth first to get
// redirect-to-login behaviour instead.
func Allow(roles ...string) Gate {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(id Identity) Decision {
		if allowed[id.Role] {
			return Proceed()
		}
		return Deny(http.StatusForbidden)
	}
}

// Split routes admin and customer callers apart: proceedRole continues to
// the operation, redirectRole is sent to its own landing route, and any
// other role, including none, is denied outright. The denial makes the
// gate total; there is no silent fallthrough.
func Split(proceedRole, redirectRole, redirectRoute string) Gate {
	return func(id Identity) Decision {
		switch id.Role {
		case redirectRole:
			return RedirectTo(redirectRoute)
		case proceedRole:
			return Proceed()
		default:
			return Deny(http.StatusForbidden)
		}
	}
}

// Chain composes gates into one, evaluated in declared order with
// short-circuit on the first non-proceed decision.
func Chain(gates ...Gate) Gate {
	return func(id Identity) Decision {
		for _, g := range gates {
			if d := g(id); d.Kind != KindProceed {
				return d
			}
		}
		return Proceed()
	}
}
