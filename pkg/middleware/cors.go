package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/shashiranjanraj/orderdesk/config"
)

// CORSOptions configures the cross-origin policy.
type CORSOptions struct {
	AllowedOrigins   []string // explicit origins, or ["*"] for any
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool // only honoured with explicit origins
	MaxAge           int  // preflight cache, seconds
}

// DefaultCORSOptions reads the allowed origins from CORS_ALLOWED_ORIGINS
// (comma-separated). Unset means any origin, which suits local development;
// deployments list their frontends explicitly and get credential support.
func DefaultCORSOptions() CORSOptions {
	opts := CORSOptions{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}

	if raw := config.Get("CORS_ALLOWED_ORIGINS", ""); raw != "" {
		var origins []string
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			opts.AllowedOrigins = origins
			opts.AllowCredentials = true
		}
	}

	return opts
}

func (o CORSOptions) originAllowed(origin string) bool {
	for _, allowed := range o.AllowedOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}

// CORS returns a middleware enforcing the given cross-origin policy.
// Responses always carry Vary: Origin so caches keep per-origin copies.
func CORS(opts CORSOptions) func(http.Handler) http.Handler {
	wildcard := len(opts.AllowedOrigins) == 1 && opts.AllowedOrigins[0] == "*"
	methods := strings.Join(opts.AllowedMethods, ", ")
	headers := strings.Join(opts.AllowedHeaders, ", ")
	maxAge := strconv.Itoa(opts.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			if origin != "" && opts.originAllowed(origin) {
				h := w.Header()
				if wildcard && !opts.AllowCredentials {
					h.Set("Access-Control-Allow-Origin", "*")
				} else {
					h.Set("Access-Control-Allow-Origin", origin)
				}
				if opts.AllowCredentials && !wildcard {
					h.Set("Access-Control-Allow-Credentials", "true")
				}

				if r.Method == http.MethodOptions {
					h.Set("Access-Control-Allow-Methods", methods)
					h.Set("Access-Control-Allow-Headers", headers)
					if opts.MaxAge > 0 {
						h.Set("Access-Control-Max-Age", maxAge)
					}
				}
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
