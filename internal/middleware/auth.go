package middleware

import (
	"net/http"

	"ayushyaa-be/internal/auth"
	"ayushyaa-be/internal/logger"
	"ayushyaa-be/internal/user"
	"ayushyaa-be/internal/utils"

	"go.uber.org/zap"
)

// AuthMiddleware attaches the token's user to the context. Requests without a
// usable token pass through anonymously; a stale access_token cookie is
// expired so the browser stops sending it. Admission is left to RequireAdmin.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := auth.ExtractAccessToken(r)
		if tokenStr == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := user.ParseJWT(tokenStr)
		if err != nil {
			logger.FromCtx(r.Context()).Info("ignoring unusable access token", zap.Error(err))
			if _, cerr := r.Cookie(auth.AccessTokenCookie); cerr == nil {
				expireAccessToken(w)
			}
			next.ServeHTTP(w, r)
			return
		}

		ctx := utils.SetUserContext(r.Context(), claims.UserID, claims.Email, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func expireAccessToken(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// RequireAdmin answers 401 for anonymous callers and 403 for non-admins.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
			utils.WriteJSONError(w, "authentication required", http.StatusUnauthorized)
			return
		}
		if !utils.IsAdmin(r.Context()) {
			utils.WriteJSONError(w, "admin access required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
