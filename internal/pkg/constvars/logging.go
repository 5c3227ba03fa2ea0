package constvars

const (
	LoggingRequestIDKey        = "request_id"
	LoggingMethodKey           = "method"
	LoggingEndpointKey         = "endpoint"
	LoggingStatusCodeKey       = "status_code"
	LoggingDurationKey         = "duration"
	LoggingErrorKindKey        = "error_kind"
	LoggingPatientIDKey        = "patient_id"
	LoggingSpecialistIDKey     = "specialist_id"
	LoggingAppointmentIDKey    = "appointment_id"
	LoggingSpecialistCountKey  = "specialist_count"
	LoggingAppointmentCountKey = "appointment_count"
	LoggingImageURLKey         = "image_url"
	LoggingCacheHitKey         = "cache_hit"
	LoggingCacheTierKey        = "cache_tier"
	LoggingRemoteAddrKey       = "remote_addr"
	LoggingSuccessKey          = "success"
)
