package patients

import (
	"context"
	"sync"
	"vollmed-client/internal/app/contracts"
	"vollmed-client/internal/app/models"
	"vollmed-client/internal/pkg/constvars"
	"vollmed-client/internal/pkg/exceptions"

	"github.com/google/uuid"
)

type patientMemoryRepository struct {
	mu       sync.RWMutex
	patients map[string]models.Patient
}

func NewPatientMemoryRepository() contracts.PatientRepository {
	return &patientMemoryRepository{
		patients: make(map[string]models.Patient),
	}
}

// Create rejects a patient whose email or CPF is already stored.
func (repo *patientMemoryRepository) Create(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, stored := range repo.patients {
		if stored.Email == patient.Email || stored.CPF == patient.CPF {
			return nil, exceptions.ErrResourceAlreadyExists(nil, constvars.ResourcePatient)
		}
	}

	created := *patient
	created.ID = uuid.NewString()
	repo.patients[created.ID] = created
	return &created, nil
}

func (repo *patientMemoryRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	patient, ok := repo.patients[patientID]
	if !ok {
		return nil, nil
	}
	return &patient, nil
}

func (repo *patientMemoryRepository) FindByEmail(ctx context.Context, email string) (*models.Patient, error) {
	return repo.findFirst(func(p models.Patient) bool { return p.Email == email }), nil
}

func (repo *patientMemoryRepository) FindByCPF(ctx context.Context, cpf string) (*models.Patient, error) {
	return repo.findFirst(func(p models.Patient) bool { return p.CPF == cpf }), nil
}

func (repo *patientMemoryRepository) findFirst(match func(models.Patient) bool) *models.Patient {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, patient := range repo.patients {
		if match(patient) {
			found := patient
			return &found
		}
	}
	return nil
}
