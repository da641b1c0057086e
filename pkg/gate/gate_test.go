package gate

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func admin() Identity    { return Identity{UserID: 1, Role: "admin", Authenticated: true} }
func customer() Identity { return Identity{UserID: 2, Role: "customer", Authenticated: true} }
func guest() Identity    { return Identity{} }

func TestRequireAuth(t *testing.T) {
	g := RequireAuth("login")

	assert.Equal(t, KindProceed, g(admin()).Kind)
	assert.Equal(t, KindProceed, g(customer()).Kind)

	d := g(guest())
	assert.Equal(t, KindRedirect, d.Kind)
	assert.Equal(t, "login", d.Route)
}

func TestGuestOnly(t *testing.T) {
	g := GuestOnly(map[string]string{"admin": "dashboard", "customer": "portal"}, "portal")

	assert.Equal(t, KindProceed, g(guest()).Kind)

	d := g(admin())
	assert.Equal(t, KindRedirect, d.Kind)
	assert.Equal(t, "dashboard", d.Route)

	d = g(customer())
	assert.Equal(t, KindRedirect, d.Kind)
	assert.Equal(t, "portal", d.Route)

	// authenticated but unknown role still bounces somewhere sensible
	d = g(Identity{UserID: 9, Role: "intern", Authenticated: true})
	assert.Equal(t, KindRedirect, d.Kind)
	assert.Equal(t, "portal", d.Route)
}

func TestAllow(t *testing.T) {
	g := Allow("admin")

	assert.Equal(t, KindProceed, g(admin()).Kind)

	d := g(customer())
	assert.Equal(t, KindDeny, d.Kind)
	assert.Equal(t, http.StatusForbidden, d.Status)

	d = g(guest())
	assert.Equal(t, KindDeny, d.Kind)
	assert.Equal(t, http.StatusForbidden, d.Status)
}

func TestSplit(t *testing.T) {
	g := Split("admin", "customer", "portal")

	assert.Equal(t, KindProceed, g(admin()).Kind)

	d := g(customer())
	assert.Equal(t, KindRedirect, d.Kind)
	assert.Equal(t, "portal", d.Route)

	// any role outside the split is refused outright, never silently
	// passed through
	d = g(Identity{UserID: 9, Role: "intern", Authenticated: true})
	assert.Equal(t, KindDeny, d.Kind)
	assert.Equal(t, http.StatusForbidden, d.Status)

	d = g(guest())
	assert.Equal(t, KindDeny, d.Kind)
}

func TestChainShortCircuits(t *testing.T) {
	var secondRan bool
	first := func(Identity) Decision { return RedirectTo("login") }
	second := func(Identity) Decision {
		secondRan = true
		return Proceed()
	}

	d := Chain(first, second)(guest())
	assert.Equal(t, KindRedirect, d.Kind)
	assert.False(t, secondRan)
}

func TestChainAllProceed(t *testing.T) {
	g := Chain(RequireAuth("login"), Allow("admin"))
	assert.Equal(t, KindProceed, g(admin()).Kind)
}

type staticResolver map[string]string

func (s staticResolver) URL(name string, _ map[string]string) (string, error) {
	if path, ok := s[name]; ok {
		return path, nil
	}
	return "", http.ErrMissingFile
}

func serveWith(t *testing.T, id Identity, mw func(http.Handler) http.Handler) *httptest.ResponseRecorder {
	t.Helper()

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithIdentity(req.Context(), id))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestMiddlewareProceed(t *testing.T) {
	mw := Middleware(staticResolver{}, Allow("admin"))
	rec := serveWith(t, admin(), mw)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMiddlewareRedirect(t *testing.T) {
	mw := Middleware(staticResolver{"login": "/login"}, RequireAuth("login"))
	rec := serveWith(t, guest(), mw)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestMiddlewareRedirectUnresolvable(t *testing.T) {
	mw := Middleware(staticResolver{}, RequireAuth("nowhere"))
	rec := serveWith(t, guest(), mw)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestMiddlewareDeny(t *testing.T) {
	mw := Middleware(staticResolver{}, Allow("admin"))
	rec := serveWith(t, customer(), mw)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "not authorized")
}
