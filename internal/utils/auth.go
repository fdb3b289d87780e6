package utils

import "context"

const (
	UserIDKey    contextKey = "user_id"
	UserEmailKey contextKey = "email"
	UserRoleKey  contextKey = "role"
	ClientIDKey  contextKey = "client_id"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// WithClientID stores the storefront client scope (cart + session keys).
func WithClientID(ctx context.Context, clientID string) context.Context {
	return context.WithValue(ctx, ClientIDKey, clientID)
}

func GetClientIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ClientIDKey).(string)
	return id
}
