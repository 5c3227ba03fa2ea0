package constvars

const (
	DefaultAPIBaseURL = "http://localhost:3000"
)

const (
	EndpointAuthLogin           = "/auth/login"
	EndpointAuthLogout          = "/auth/logout"
	EndpointPatient             = "/paciente"
	EndpointPatientAppointments = "/paciente/%s/consultas"
	EndpointSpecialist          = "/especialista"
	EndpointAppointment         = "/consulta"
	EndpointAppointmentByID     = "/consulta/%s"
)

const (
	ResourceAuth        = "auth"
	ResourcePatient     = "patient"
	ResourceSpecialist  = "specialist"
	ResourceAppointment = "appointment"
	ResourceImage       = "image"
)

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
	CONTEXT_PATIENT_ID_KEY ContextKey = "patient_id"
)

const (
	URLParamID   = "id"
	URLParamFile = "file"
)
