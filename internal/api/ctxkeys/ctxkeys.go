// Shared context keys for the API layer.
// A leaf package so api, api/middleware and api/handlers can share keys
// without import cycles.
package ctxkeys

import "context"

// Key is the named type for all API context keys. context.Value compares
// type and value, so a named type cannot collide with plain string keys from
// other packages.
type Key string

const (
	// UserID is the context key for the authenticated user's id.
	// Injected by the auth middleware from JWT claims.
	UserID Key = "user_id"

	// Username is the context key for the authenticated user's name.
	Username Key = "username"
)

// WithValue adds a ctxkeys.Key value to the context.
func WithValue(ctx context.Context, key Key, value string) context.Context {
	return context.WithValue(ctx, key, value)
}
