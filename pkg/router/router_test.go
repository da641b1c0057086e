package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ok(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

func TestNamedRouteLookup(t *testing.T) {
	r := New()
	r.Get("/dashboard", "dashboard", ok)
	r.Get("/customers/{id}", "customers.show", ok)

	path, found := r.Path("dashboard")
	require.True(t, found)
	assert.Equal(t, "/dashboard", path)

	_, found = r.Path("nope")
	assert.False(t, found)
}

func TestURLSubstitutesParams(t *testing.T) {
	r := New()
	r.Get("/customers/{id}", "customers.show", ok)

	url, err := r.URL("customers.show", map[string]string{"id": "7"})
	require.NoError(t, err)
	assert.Equal(t, "/customers/7", url)
}

func TestURLMissingParams(t *testing.T) {
	r := New()
	r.Get("/customers/{id}", "customers.show", ok)

	_, err := r.URL("customers.show", nil)
	assert.Error(t, err)
}

func TestURLUnknownRoute(t *testing.T) {
	r := New()
	_, err := r.URL("nope", nil)
	assert.Error(t, err)
}

func TestServesRegisteredRoutes(t *testing.T) {
	r := New()
	r.Get("/ping", "ping", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("pong"))
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestGroupPrefixAndMiddlewareOrder(t *testing.T) {
	var trail []string
	tag := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				trail = append(trail, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	r := New()
	g := r.Group("/admin", tag("outer"))
	g.Get("/reports", "admin.reports", ok, tag("inner"))

	path, found := r.Path("admin.reports")
	require.True(t, found)
	assert.Equal(t, "/admin/reports", path)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/reports", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"outer", "inner"}, trail)
}

func TestMethodScoping(t *testing.T) {
	r := New()
	r.Post("/login", "login", ok)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
