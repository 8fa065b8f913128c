package middleware

import (
	"net/http"

	"go.uber.org/ratelimit"
)

// Throttle spaces requests out to the limiter's rate. Requests queue
// rather than fail; it guards the password hashing on auth routes.
func Throttle(limiter ratelimit.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limiter.Take()
			next.ServeHTTP(w, r)
		})
	}
}
