package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/foodcourt/pkg/auth"
	"github.com/shashiranjanraj/foodcourt/pkg/response"
)

type userIDKey struct{}

// UserID returns the authenticated user's ID stored by Auth, or "".
func UserID(ctx context.Context) string {
	if id, ok := ctx.Value(userIDKey{}).(string); ok {
		return id
	}
	return ""
}

// WithUserID stores a user ID in ctx. Exposed for handler tests.
func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// Auth validates the session token and resolves the calling user's ID into
// the request context. The token is read from the "token" header (what the
// storefront sends) or a standard Authorization bearer header.
func Auth(tokens *auth.Tokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("token")
			if token == "" {
				token = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			}

			if token == "" {
				response.Unauthorized(w, "Not Authorized Login Again")
				return
			}

			claims, err := tokens.Validate(token)
			if err != nil {
				response.Unauthorized(w, "Not Authorized Login Again")
				return
			}

			ctx := WithUserID(r.Context(), claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
