package utils

import (
	"context"
	"errors"
	"vollmed-client/internal/pkg/constvars"
	"vollmed-client/internal/pkg/exceptions"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextWithRequestID returns ctx unchanged when it already carries a request ID.
func ContextWithRequestID(ctx context.Context) (context.Context, string) {
	if requestID := RequestIDFromContext(ctx); requestID != "" {
		return ctx, requestID
	}
	requestID := uuid.NewString()
	return context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID), requestID
}

func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

// ErrorFields expands a CustomError into log fields that keep its kind and remote status.
func ErrorFields(err error) []zap.Field {
	fields := []zap.Field{zap.Error(err)}

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		fields = append(fields, zap.String(constvars.LoggingErrorKindKey, string(customErr.Kind)))
		if customErr.Kind == exceptions.KindStatus {
			fields = append(fields, zap.Int(constvars.LoggingStatusCodeKey, customErr.StatusCode))
		}
	}
	return fields
}
