package models

type Specialist struct {
	ID            string `json:"id"`
	Name          string `json:"nome"`
	LicenseNumber string `json:"crm"`
	ImageURL      string `json:"imagem"`
	Specialty     string `json:"especialidade"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"telefone"`
}
