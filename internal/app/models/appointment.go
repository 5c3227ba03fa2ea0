package models

// Appointment references its specialist and patient by identifier only.
type Appointment struct {
	ID                 string `json:"id"`
	Date               string `json:"data"`
	SpecialistID       string `json:"especialista"`
	PatientID          string `json:"paciente"`
	CancellationReason string `json:"motivo_cancelamento,omitempty"`
}

type ScheduleAppointmentRequest struct {
	SpecialistID string `json:"specialistID" validate:"required"`
	PatientID    string `json:"patientID" validate:"required"`
	Date         string `json:"date" validate:"required"`
}

type ScheduleAppointmentResponse struct {
	ID           string `json:"id"`
	SpecialistID string `json:"specialistID"`
	PatientID    string `json:"patientID"`
	Date         string `json:"date"`
}

type RescheduleAppointmentRequest struct {
	Date string `json:"data" validate:"required"`
}

type CancelAppointmentRequest struct {
	Reason string `json:"motivo_cancelamento"`
}
