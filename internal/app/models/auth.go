package models

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required"`
}

type LoginResponse struct {
	Auth      bool   `json:"auth"`
	PatientID string `json:"id"`
	Token     string `json:"token"`
}
