package specialists

import (
	"context"
	"sort"
	"sync"
	"vollmed-client/internal/app/contracts"
	"vollmed-client/internal/app/models"
)

type specialistMemoryRepository struct {
	mu          sync.RWMutex
	specialists map[string]models.Specialist
}

func NewSpecialistMemoryRepository(seed []models.Specialist) contracts.SpecialistRepository {
	specialists := make(map[string]models.Specialist, len(seed))
	for _, specialist := range seed {
		specialists[specialist.ID] = specialist
	}
	return &specialistMemoryRepository{
		specialists: specialists,
	}
}

// FindAll returns specialists ordered by name.
func (repo *specialistMemoryRepository) FindAll(ctx context.Context) ([]models.Specialist, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	result := make([]models.Specialist, 0, len(repo.specialists))
	for _, specialist := range repo.specialists {
		result = append(result, specialist)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, nil
}

func (repo *specialistMemoryRepository) FindByID(ctx context.Context, specialistID string) (*models.Specialist, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	specialist, ok := repo.specialists[specialistID]
	if !ok {
		return nil, nil
	}
	return &specialist, nil
}
