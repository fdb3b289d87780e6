package middleware

import (
	"net/http"

	"ayushyaa-be/internal/auth"
	"ayushyaa-be/internal/logger"
	"ayushyaa-be/internal/utils"

	"github.com/google/uuid"
)

const clientCookieMaxAge = 365 * 24 * 60 * 60

// ClientScope resolves the client id that keys cart and session state.
// A first-time client is issued a new id through the client_id cookie.
func ClientScope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := auth.ExtractClientID(r)
		if clientID == "" {
			clientID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     auth.ClientIDCookie,
				Value:    clientID,
				Path:     "/",
				MaxAge:   clientCookieMaxAge,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		w.Header().Set(auth.ClientIDHeader, clientID)

		ctx := utils.WithClientID(r.Context(), clientID)
		ctx = logger.WithClientID(ctx, clientID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
