package middleware

import (
	"net/http"
	"strings"

	appContext "github.com/zaiboost/zaiboost/internal/app/context"
	"github.com/zaiboost/zaiboost/internal/app/handlers"
	"github.com/zaiboost/zaiboost/internal/app/logger"
	"github.com/zaiboost/zaiboost/internal/app/service"
	"go.uber.org/zap"
)

const bearerPrefix = "Bearer "

type AuthMiddleware struct {
	tokenService service.TokenService
}

func NewAuthMiddleware(tokenService service.TokenService) AuthMiddleware {
	return AuthMiddleware{tokenService: tokenService}
}

// Authenticate puts the identity of a valid bearer token into the request
// context and rejects everything else with 401.
func (am *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			handlers.WriteJSONErrorResponse(w, "Token required", http.StatusUnauthorized)
			return
		}

		identity, err := am.tokenService.ParseToken(strings.TrimPrefix(authHeader, bearerPrefix))
		if err != nil {
			logger.Log.Debug("token rejected",
				zap.String("requestID", appContext.RequestID(r.Context())),
				zap.Error(err))
			handlers.WriteJSONErrorResponse(w, "Invalid or expired token", http.StatusUnauthorized)
			return
		}

		r = r.WithContext(appContext.WithIdentity(r.Context(), identity))
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin must run after Authenticate.
func (am *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := appContext.Identity(r.Context())
		if identity == nil {
			handlers.WriteJSONErrorResponse(w, "Token required", http.StatusUnauthorized)
			return
		}
		if !identity.IsAdmin() {
			handlers.WriteJSONErrorResponse(w, "Admin access required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
