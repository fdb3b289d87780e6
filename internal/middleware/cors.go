package middleware

import (
	"net/http"
	"strings"
)

const DefaultAllowedOrigin = "http://localhost:3000"

var (
	corsMethods = strings.Join([]string{
		http.MethodGet, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodOptions,
	}, ", ")
	corsHeaders = "Content-Type, Authorization, X-Client-ID, X-Request-ID"
)

// CORS allows the storefront frontend at DefaultAllowedOrigin.
func CORS(next http.Handler) http.Handler {
	return CORSWithOrigin(DefaultAllowedOrigin)(next)
}

func CORSWithOrigin(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Methods", corsMethods)
			h.Set("Access-Control-Allow-Headers", corsHeaders)
			h.Set("Access-Control-Expose-Headers", "X-Client-ID, X-Request-ID")
			h.Set("Access-Control-Allow-Credentials", "true")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
