package exceptions

import (
	"errors"
	"fmt"
	"runtime"
	"vollmed-client/internal/pkg/constvars"
)

// ErrorKind tells callers which stage of a request failed.
type ErrorKind string

const (
	KindEndpoint       ErrorKind = "endpoint"
	KindInvalidRequest ErrorKind = "invalid_request"
	KindEncode         ErrorKind = "encode"
	KindMissingToken   ErrorKind = "missing_token"
	KindTransport      ErrorKind = "transport"
	KindTimeout        ErrorKind = "timeout"
	KindStatus         ErrorKind = "status"
	KindDecode         ErrorKind = "decode"

	// Used by the stub API when it answers a request.
	KindUnauthorized ErrorKind = "unauthorized"
	KindNotFound     ErrorKind = "not_found"
	KindConflict     ErrorKind = "conflict"
	KindInternal     ErrorKind = "internal"
)

type CustomError struct {
	Kind          ErrorKind `json:"-"`
	StatusCode    int       `json:"status_code"`
	Success       bool      `json:"success"`
	ClientMessage string    `json:"message"`
	DevMessage    string    `json:"-"`
	ServerMessage string    `json:"-"`
	Location      Location  `json:"-"`
	Err           error     `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithServerMessage attaches the message the remote API sent along with a failing status.
func (e *CustomError) WithServerMessage(message string) *CustomError {
	if message == "" {
		return e
	}
	e.ServerMessage = message
	e.DevMessage = fmt.Sprintf("%s: %s", e.DevMessage, message)
	return e
}

func BuildNewCustomError(err error, kind ErrorKind, statusCode int, clientMessage, devMessage string) *CustomError {
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		Kind:          kind,
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      getLocation(3),
		Err:           err,
	}
}

// KindOf returns the kind of the first CustomError in err's chain, or an empty kind.
func KindOf(err error) ErrorKind {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Kind
	}
	return ""
}

func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

// StatusCodeOf returns the HTTP status the remote API answered with, or 0 when
// the failure happened before a status was received.
func StatusCodeOf(err error) int {
	var customErr *CustomError
	if errors.As(err, &customErr) && customErr.Kind == KindStatus {
		return customErr.StatusCode
	}
	return 0
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
