package patients

import (
	"context"
	"vollmed-client/internal/app/contracts"
	"vollmed-client/internal/app/models"
	"vollmed-client/internal/pkg/constvars"
	"vollmed-client/internal/pkg/exceptions"
	"vollmed-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	Log               *zap.Logger
}

func NewPatientUsecase(patientRepository contracts.PatientRepository, logger *zap.Logger) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
		Log:               logger,
	}
}

// RegisterPatient stores the patient with a hashed password. The returned copy has no password.
func (uc *patientUsecase) RegisterPatient(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	existing, err := uc.PatientRepository.FindByEmail(ctx, patient.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		uc.Log.Info("patientUsecase.RegisterPatient email already registered")
		return nil, exceptions.ErrResourceAlreadyExists(nil, constvars.ResourcePatient)
	}

	existing, err = uc.PatientRepository.FindByCPF(ctx, patient.CPF)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		uc.Log.Info("patientUsecase.RegisterPatient CPF already registered")
		return nil, exceptions.ErrResourceAlreadyExists(nil, constvars.ResourcePatient)
	}

	hashedPassword, err := utils.HashPassword(patient.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	toStore := *patient
	toStore.Password = hashedPassword
	created, err := uc.PatientRepository.Create(ctx, &toStore)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("patientUsecase.RegisterPatient succeeded",
		zap.String(constvars.LoggingPatientIDKey, created.ID),
	)
	result := *created
	result.Password = ""
	return &result, nil
}
