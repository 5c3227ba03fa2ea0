package specialists

import (
	"fmt"
	"strings"
	"vollmed-client/internal/app/models"
)

// DefaultSpecialists is the catalogue served by the stub API. Image URLs point at imageBaseURL.
func DefaultSpecialists(imageBaseURL string) []models.Specialist {
	imageBaseURL = strings.TrimRight(imageBaseURL, "/")
	specialists := []models.Specialist{
		{ID: "S1", Name: "Dra. Ana Souza", LicenseNumber: "123456", Specialty: "Cardiologia", Email: "ana.souza@vollmed.com", PhoneNumber: "11987654321"},
		{ID: "S2", Name: "Dr. Bruno Lima", LicenseNumber: "234567", Specialty: "Dermatologia", Email: "bruno.lima@vollmed.com", PhoneNumber: "11976543210"},
		{ID: "S3", Name: "Dra. Carla Mendes", LicenseNumber: "345678", Specialty: "Ortopedia", Email: "carla.mendes@vollmed.com", PhoneNumber: "21965432109"},
		{ID: "S4", Name: "Dr. Diego Rocha", LicenseNumber: "456789", Specialty: "Pediatria", Email: "diego.rocha@vollmed.com", PhoneNumber: "31954321098"},
	}
	for i := range specialists {
		specialists[i].ImageURL = fmt.Sprintf("%s/imagens/%s.png", imageBaseURL, specialists[i].ID)
	}
	return specialists
}
