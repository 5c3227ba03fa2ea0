package middlewares

import (
	"context"
	"net/http"
	"strings"
	"vollmed-client/internal/pkg/constvars"
	"vollmed-client/internal/pkg/exceptions"
	"vollmed-client/internal/pkg/utils"
)

type contextKey string

const keyAccessToken contextKey = "access_token"

// Authenticate requires a valid, unrevoked bearer token and stores its patient ID in the context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, constvars.AuthorizationBearerPrefix))
		if authHeader == "" || token == "" || token == authHeader {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		patientID, err := m.AuthUsecase.Authenticate(r.Context(), token)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_PATIENT_ID_KEY, patientID)
		ctx = context.WithValue(ctx, keyAccessToken, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func PatientIDFromContext(ctx context.Context) string {
	patientID, _ := ctx.Value(constvars.CONTEXT_PATIENT_ID_KEY).(string)
	return patientID
}

func AccessTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(keyAccessToken).(string)
	return token
}
