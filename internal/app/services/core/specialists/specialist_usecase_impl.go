package specialists

import (
	"context"
	"vollmed-client/internal/app/contracts"
	"vollmed-client/internal/app/models"
	"vollmed-client/internal/pkg/constvars"
	"vollmed-client/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type specialistUsecase struct {
	SpecialistRepository contracts.SpecialistRepository
	Log                  *zap.Logger
}

func NewSpecialistUsecase(specialistRepository contracts.SpecialistRepository, logger *zap.Logger) contracts.SpecialistUsecase {
	return &specialistUsecase{
		SpecialistRepository: specialistRepository,
		Log:                  logger,
	}
}

func (uc *specialistUsecase) ListSpecialists(ctx context.Context) ([]models.Specialist, error) {
	specialists, err := uc.SpecialistRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	uc.Log.Debug("specialistUsecase.ListSpecialists succeeded",
		zap.Int(constvars.LoggingSpecialistCountKey, len(specialists)),
	)
	return specialists, nil
}

func (uc *specialistUsecase) FindSpecialist(ctx context.Context, specialistID string) (*models.Specialist, error) {
	specialist, err := uc.SpecialistRepository.FindByID(ctx, specialistID)
	if err != nil {
		return nil, err
	}
	if specialist == nil {
		return nil, exceptions.ErrResourceNotFound(nil, constvars.ResourceSpecialist)
	}
	return specialist, nil
}
