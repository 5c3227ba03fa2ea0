package exceptions

import (
	"fmt"
	"vollmed-client/internal/pkg/constvars"
)

var (
	// Request building
	ErrInvalidEndpoint = func(err error, endpoint string) *CustomError {
		return BuildNewCustomError(err, KindEndpoint, 0, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevInvalidEndpoint, endpoint))
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInvalidRequest, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindEncode, 0, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, KindMissingToken, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenMissing)
	}

	// HTTP
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, KindEndpoint, 0, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, KindTransport, 0, constvars.ErrClientServiceUnavailable, constvars.ErrDevSendHTTPRequest)
	}
	ErrRequestTimeout = func(err error) *CustomError {
		return BuildNewCustomError(err, KindTimeout, 0, constvars.ErrClientServerLongRespond, constvars.ErrDevRequestTimeout)
	}
	ErrUnexpectedStatusCode = func(statusCode int, resource string) *CustomError {
		return BuildNewCustomError(nil, KindStatus, statusCode, clientMessageForStatus(statusCode), fmt.Sprintf(constvars.ErrDevUnexpectedStatusCode, statusCode, resource))
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, KindDecode, 0, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevDecodeResponse, resource))
	}

	// Images
	ErrInvalidImageURL = func(err error) *CustomError {
		return BuildNewCustomError(err, KindEndpoint, 0, constvars.ErrClientCannotProcessRequest, constvars.ErrDevInvalidImageURL)
	}
	ErrDecodeImage = func(err error) *CustomError {
		return BuildNewCustomError(err, KindDecode, 0, constvars.ErrClientCannotProcessRequest, constvars.ErrDevDecodeImage)
	}
	ErrImageTooLarge = func(limit int) *CustomError {
		return BuildNewCustomError(nil, KindDecode, 0, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevImageTooLarge, limit))
	}
	ErrEncodeImage = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, 0, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevEncodeImage)
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGet)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSet)
	}

	// Stub API
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInvalidRequest, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrInvalidEmailOrPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnauthorized, constvars.StatusUnauthorized, constvars.ErrClientInvalidEmailOrPassword, constvars.ErrDevInvalidCredentials)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnauthorized, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalid)
	}
	ErrHashPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevFailedToHashPassword)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevTokenGenerate)
	}
	ErrResourceNotFound = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, KindNotFound, constvars.StatusNotFound, constvars.ErrClientNotFound, fmt.Sprintf(constvars.ErrDevNotFound, resource))
	}
	ErrPatientMismatch = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnauthorized, constvars.StatusForbidden, constvars.ErrClientNotAllowed, constvars.ErrDevPatientMismatch)
	}
	ErrSlotTaken = func(specialistID, date string) *CustomError {
		return BuildNewCustomError(nil, KindConflict, constvars.StatusConflict, constvars.ErrClientSlotTaken, fmt.Sprintf(constvars.ErrDevSlotTaken, specialistID, date))
	}
	ErrAppointmentCancelled = func(appointmentID string) *CustomError {
		return BuildNewCustomError(nil, KindConflict, constvars.StatusConflict, constvars.ErrClientAppointmentCancelled, fmt.Sprintf(constvars.ErrDevAppointmentCancelled, appointmentID))
	}
	ErrResourceAlreadyExists = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, KindConflict, constvars.StatusConflict, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevAlreadyExists, resource))
	}
)

func clientMessageForStatus(statusCode int) string {
	switch statusCode {
	case constvars.StatusUnauthorized, constvars.StatusForbidden:
		return constvars.ErrClientNotLoggedIn
	case constvars.StatusNotFound:
		return constvars.ErrClientNotFound
	case constvars.StatusTooManyRequests:
		return constvars.ErrClientTooManyRequests
	case constvars.StatusBadGateway, constvars.StatusGatewayTimeout:
		return constvars.ErrClientServiceUnavailable
	default:
		return constvars.ErrClientCannotProcessRequest
	}
}
