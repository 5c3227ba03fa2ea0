package utils

import (
	"errors"
	"net/http"
	"vollmed-client/internal/pkg/constvars"
	"vollmed-client/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// BuildJSONResponse writes data as the bare JSON body; the Vollmed API does not wrap payloads.
func BuildJSONResponse(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	if data == nil {
		return
	}
	json.NewEncoder(w).Encode(data)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		if customErr.StatusCode != 0 {
			code = customErr.StatusCode
		}
		clientMessage = customErr.ClientMessage
		log.Error(customErr.DevMessage,
			zap.String(constvars.LoggingErrorKindKey, string(customErr.Kind)),
			zap.Any("location", map[string]interface{}{
				"file":          customErr.Location.File,
				"line":          customErr.Location.Line,
				"function_name": customErr.Location.FunctionName,
			}),
		)
	} else {
		log.Error(err.Error())
	}

	BuildJSONResponse(w, code, ErrorResponse{
		StatusCode: code,
		Message:    clientMessage,
	})
}
