package appointments

import (
	"context"
	"sort"
	"sync"
	"vollmed-client/internal/app/contracts"
	"vollmed-client/internal/app/models"
	"vollmed-client/internal/pkg/constvars"
	"vollmed-client/internal/pkg/exceptions"

	"github.com/google/uuid"
)

type appointmentRecord struct {
	appointment models.Appointment
	cancelled   bool
}

type appointmentMemoryRepository struct {
	mu           sync.RWMutex
	appointments map[string]*appointmentRecord
}

func NewAppointmentMemoryRepository() contracts.AppointmentRepository {
	return &appointmentMemoryRepository{
		appointments: make(map[string]*appointmentRecord),
	}
}

func (repo *appointmentMemoryRepository) CreateIfSlotFree(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if repo.slotTaken(appointment.SpecialistID, appointment.Date, "") {
		return nil, exceptions.ErrSlotTaken(appointment.SpecialistID, appointment.Date)
	}

	created := *appointment
	created.ID = uuid.NewString()
	repo.appointments[created.ID] = &appointmentRecord{appointment: created}
	return &created, nil
}

func (repo *appointmentMemoryRepository) UpdateIfSlotFree(ctx context.Context, appointment *models.Appointment) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	record, ok := repo.appointments[appointment.ID]
	if !ok {
		return exceptions.ErrResourceNotFound(nil, constvars.ResourceAppointment)
	}
	if repo.slotTaken(appointment.SpecialistID, appointment.Date, appointment.ID) {
		return exceptions.ErrSlotTaken(appointment.SpecialistID, appointment.Date)
	}
	record.appointment = *appointment
	return nil
}

func (repo *appointmentMemoryRepository) Cancel(ctx context.Context, appointmentID, reason string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	record, ok := repo.appointments[appointmentID]
	if !ok {
		return exceptions.ErrResourceNotFound(nil, constvars.ResourceAppointment)
	}
	record.cancelled = true
	record.appointment.CancellationReason = reason
	return nil
}

func (repo *appointmentMemoryRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	record, ok := repo.appointments[appointmentID]
	if !ok {
		return nil, nil
	}
	appointment := record.appointment
	return &appointment, nil
}

func (repo *appointmentMemoryRepository) IsCancelled(ctx context.Context, appointmentID string) (bool, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	record, ok := repo.appointments[appointmentID]
	if !ok {
		return false, exceptions.ErrResourceNotFound(nil, constvars.ResourceAppointment)
	}
	return record.cancelled, nil
}

// FindByPatientID includes cancelled appointments, ordered by date.
func (repo *appointmentMemoryRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	result := make([]models.Appointment, 0)
	for _, record := range repo.appointments {
		if record.appointment.PatientID == patientID {
			result = append(result, record.appointment)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date < result[j].Date
	})
	return result, nil
}

// slotTaken must be called with mu held. The appointment named by exceptID is ignored.
func (repo *appointmentMemoryRepository) slotTaken(specialistID, date, exceptID string) bool {
	for id, record := range repo.appointments {
		if record.cancelled || id == exceptID {
			continue
		}
		if record.appointment.SpecialistID == specialistID && record.appointment.Date == date {
			return true
		}
	}
	return false
}
