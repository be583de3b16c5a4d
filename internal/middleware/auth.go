// File: internal/middleware/auth.go
package middleware

import (
	"context"
	"log"
	"net/http"

	"github.com/abudi-09/Chat-App/internal/auth"
)

type ContextKey string

// UserIDKey is the request-context key under which the authenticated
// user's ID is stored.
const UserIDKey ContextKey = "userID"

// NewJWTMiddleware creates middleware that validates the JWT from the
// "jwt" cookie and stores the trusted user ID in the request context.
// Handlers never read the sender identity from the request body.
func NewJWTMiddleware(secretKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie("jwt")
			if err != nil {
				writeUnauthorized(w, "Unauthorized - no token provided")
				return
			}

			userID, err := auth.ValidateToken(cookie.Value, []byte(secretKey))
			if err != nil {
				log.Printf("[AuthMiddleware] Invalid token: %v", err)
				writeUnauthorized(w, "Unauthorized - invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext extracts the authenticated user ID placed there by
// NewJWTMiddleware.
func UserIDFromContext(ctx context.Context) (uint, bool) {
	userID, ok := ctx.Value(UserIDKey).(uint)
	return userID, ok
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"message":"` + msg + `"}`))
}
