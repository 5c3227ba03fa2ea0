package constvars

const (
	LoginSuccessMessage               = "login succeeded"
	LogoutSuccessMessage              = "logout succeeded"
	RegisterPatientSuccessMessage     = "patient registration accepted"
	ScheduleAppointmentSuccessMessage = "appointment scheduled"
	CancelAppointmentSuccessMessage   = "appointment cancelled"
)
