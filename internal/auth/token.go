package auth

import (
	"net/http"
	"regexp"
	"strings"
)

const (
	AccessTokenCookie = "access_token"
	ClientIDCookie    = "client_id"
	ClientIDHeader    = "X-Client-ID"
)

// Client ids become storage keys, so only a conservative alphabet is accepted.
var clientIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,128}$`)

// ExtractAccessToken reads the JWT from the access_token cookie, falling back
// to an Authorization bearer header.
func ExtractAccessToken(r *http.Request) string {
	if cookie, err := r.Cookie(AccessTokenCookie); err == nil {
		if v := strings.TrimSpace(cookie.Value); v != "" {
			return v
		}
	}

	scheme, token, ok := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	if ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}

	return ""
}

// ExtractClientID returns the storefront client scope that keys the cart and
// session. The header wins over the cookie; malformed ids are ignored.
func ExtractClientID(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get(ClientIDHeader)); ValidClientID(id) {
		return id
	}
	if cookie, err := r.Cookie(ClientIDCookie); err == nil {
		if id := strings.TrimSpace(cookie.Value); ValidClientID(id) {
			return id
		}
	}
	return ""
}

func ValidClientID(id string) bool {
	return clientIDPattern.MatchString(id)
}
