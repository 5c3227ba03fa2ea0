package utils

import (
	"context"
	"testing"
	"vollmed-client/internal/pkg/constvars"
	"vollmed-client/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
)

func TestContextWithRequestID(t *testing.T) {
	t.Run("generates an ID", func(t *testing.T) {
		ctx, requestID := ContextWithRequestID(context.Background())
		assert.NotEmpty(t, requestID)
		assert.Equal(t, requestID, RequestIDFromContext(ctx))
	})

	t.Run("keeps an existing ID", func(t *testing.T) {
		parent := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")
		ctx, requestID := ContextWithRequestID(parent)
		assert.Equal(t, "req-1", requestID)
		assert.Equal(t, parent, ctx)
	})
}

func TestErrorFields(t *testing.T) {
	fields := ErrorFields(exceptions.ErrUnexpectedStatusCode(401, constvars.ResourceAuth))
	assert.Len(t, fields, 3)

	fields = ErrorFields(exceptions.ErrSendHTTPRequest(assert.AnError))
	assert.Len(t, fields, 2)
}
