package context

import (
	"context"
	"errors"
	appErrors "github.com/zaiboost/zaiboost/internal/app/errors"
	"github.com/zaiboost/zaiboost/internal/app/models"
	"net/http"
)

type key string

const identityKey key = "identity"
const requestIDKey key = "requestID"

func WithIdentity(ctx context.Context, identity *models.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func Identity(ctx context.Context) *models.Identity {
	val := ctx.Value(identityKey)
	identity, ok := val.(*models.Identity)
	if !ok {
		return nil
	}
	return identity
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(requestIDKey).(string)
	return requestID
}

func GetContextError(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return MapContextError(err)
	}
	return nil
}

// MapContextError turns context failures into 500 responses with a readable message.
func MapContextError(err error) error {
	var errMsg string
	var errCode int

	switch {
	case errors.Is(err, context.Canceled):
		errMsg, errCode = "Request canceled", http.StatusInternalServerError
	case errors.Is(err, context.DeadlineExceeded):
		errMsg, errCode = "Timeout exceeded", http.StatusInternalServerError
	default:
		errMsg, errCode = "Context error", http.StatusInternalServerError
	}
	return appErrors.NewWithCode(err, errMsg, errCode)
}
