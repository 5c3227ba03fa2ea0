package models

type Patient struct {
	ID          string `json:"id,omitempty"`
	CPF         string `json:"cpf" validate:"required,cpf"`
	Name        string `json:"nome" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"senha" validate:"required,min=6"`
	PhoneNumber string `json:"telefone" validate:"required"`
	HealthPlan  string `json:"plano_saude,omitempty"`
}
