package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"len":      "must be %s characters long",
	"cpf":      "must be 11 digits",
}

var TagsWithParams = map[string]bool{
	"min": true,
	"max": true,
	"len": true,
}

const (
	ResponseUnknown = "unknown"
)

// Messages shown to the person using the app
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the server is taking too long to respond"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientServiceUnavailable            = "the service is unavailable, check your connection"
	ErrClientNotFound                      = "the requested data could not be found"
	ErrClientTooManyRequests               = "too many requests, please try again later"
	ErrClientNotAllowed                    = "you are not allowed to access this data"
	ErrClientSlotTaken                     = "the specialist already has an appointment at this time"
	ErrClientAppointmentCancelled          = "this appointment was already cancelled"
)

// Messages for developers and logs
const (
	ErrDevInvalidEndpoint      = "failed to build endpoint URL %s"
	ErrDevValidationFailed     = "request validation failed"
	ErrDevInvalidInput         = "invalid input"
	ErrDevCannotMarshalJSON    = "failed to marshal JSON request body"
	ErrDevCannotParseJSON      = "failed to parse JSON request body"
	ErrDevAuthTokenMissing     = "authorization token is missing"
	ErrDevAuthTokenInvalid     = "authorization token is invalid or expired"
	ErrDevCreateHTTPRequest    = "failed to create HTTP request"
	ErrDevSendHTTPRequest      = "failed to send HTTP request"
	ErrDevRequestTimeout       = "HTTP request timed out"
	ErrDevUnexpectedStatusCode = "unexpected status code %d from %s endpoint"
	ErrDevDecodeResponse       = "failed to decode %s response"
	ErrDevDecodeImage          = "failed to decode image"
	ErrDevInvalidImageURL      = "invalid image URL"
	ErrDevImageTooLarge        = "image exceeds %d bytes"
	ErrDevFailedToHashPassword = "failed to hash password"
	ErrDevInvalidCredentials   = "invalid credentials"
	ErrDevTokenGenerate        = "failed to generate token"
	ErrDevNotFound             = "%s not found"
	ErrDevAlreadyExists        = "%s already exists"
	ErrDevRedisGet             = "failed to get data from redis"
	ErrDevRedisSet             = "failed to set data to redis"
	ErrDevEncodeImage          = "failed to encode image"
	ErrDevPatientMismatch      = "token patient does not own the requested data"
	ErrDevSlotTaken            = "specialist %s already booked at %s"
	ErrDevAppointmentCancelled = "appointment %s is cancelled"
)
