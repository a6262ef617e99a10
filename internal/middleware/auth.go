package middleware

import (
	"context"
	"net/http"
	"strings"

	"productivity-api/internal/auth"
)

type ctxKey string

const userIDKey ctxKey = "uid"

// UserID returns the user id resolved for the request.
func UserID(ctx context.Context) string {
	uid, _ := ctx.Value(userIDKey).(string)
	return uid
}

// WithUserID is used by tests to inject a caller identity directly.
func WithUserID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, userIDKey, uid)
}

// Auth resolves the caller from Authorization: Bearer <jwt>. A request
// without the header acts as the demo user (mock auth); a header that
// fails to parse is rejected rather than silently downgraded.
func Auth(secret, demoUserID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uid := demoUserID

			if header := r.Header.Get("Authorization"); header != "" {
				raw := strings.TrimPrefix(header, "Bearer ")
				claims, err := auth.ParseToken(raw, secret)
				if err != nil {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusUnauthorized)
					w.Write([]byte(`{"message":"invalid token"}`))
					return
				}
				uid = claims.UserID
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), uid)))
		})
	}
}
