package appointments

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"vollmed-client/internal/app/contracts"
	"vollmed-client/internal/app/models"
	"vollmed-client/internal/app/services/core/specialists"
	"vollmed-client/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAppointmentUsecase() contracts.AppointmentUsecase {
	specialistRepository := specialists.NewSpecialistMemoryRepository(specialists.DefaultSpecialists("http://localhost:3000"))
	return NewAppointmentUsecase(NewAppointmentMemoryRepository(), specialistRepository, zap.NewNop())
}

func TestScheduleAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("Schedules and normalizes the date", func(t *testing.T) {
		uc := newTestAppointmentUsecase()

		response, err := uc.ScheduleAppointment(ctx, "P1", &models.ScheduleAppointmentRequest{
			SpecialistID: "S1",
			PatientID:    "P1",
			Date:         "2024-05-01T07:00:00-03:00",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, response.ID)
		assert.Equal(t, "S1", response.SpecialistID)
		assert.Equal(t, "P1", response.PatientID)
		assert.Equal(t, "2024-05-01T10:00:00Z", response.Date)
	})

	t.Run("Same instant for the same specialist conflicts", func(t *testing.T) {
		uc := newTestAppointmentUsecase()
		_, err := uc.ScheduleAppointment(ctx, "P1", &models.ScheduleAppointmentRequest{SpecialistID: "S1", PatientID: "P1", Date: "2024-05-01T10:00:00Z"})
		require.NoError(t, err)

		_, err = uc.ScheduleAppointment(ctx, "P2", &models.ScheduleAppointmentRequest{SpecialistID: "S1", PatientID: "P2", Date: "2024-05-01T07:00:00-03:00"})

		assert.Equal(t, exceptions.KindConflict, exceptions.KindOf(err))
	})

	t.Run("Unknown specialist", func(t *testing.T) {
		uc := newTestAppointmentUsecase()
		_, err := uc.ScheduleAppointment(ctx, "P1", &models.ScheduleAppointmentRequest{SpecialistID: "S99", PatientID: "P1", Date: "2024-05-01T10:00:00Z"})

		assert.Equal(t, exceptions.KindNotFound, exceptions.KindOf(err))
	})

	t.Run("Booking for someone else", func(t *testing.T) {
		uc := newTestAppointmentUsecase()
		_, err := uc.ScheduleAppointment(ctx, "P2", &models.ScheduleAppointmentRequest{SpecialistID: "S1", PatientID: "P1", Date: "2024-05-01T10:00:00Z"})

		assert.Equal(t, exceptions.KindUnauthorized, exceptions.KindOf(err))
	})
}

func TestConcurrentBookingsForOneSlot(t *testing.T) {
	ctx := context.Background()
	uc := newTestAppointmentUsecase()

	const patients = 20
	var wg sync.WaitGroup
	errs := make(chan error, patients)
	for i := 0; i < patients; i++ {
		wg.Add(1)
		go func(patientID string) {
			defer wg.Done()
			_, err := uc.ScheduleAppointment(ctx, patientID, &models.ScheduleAppointmentRequest{
				SpecialistID: "S1",
				PatientID:    patientID,
				Date:         "2024-05-01T10:00:00Z",
			})
			errs <- err
		}(fmt.Sprintf("P%d", i))
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.Equal(t, exceptions.KindConflict, exceptions.KindOf(err))
	}
	assert.Equal(t, 1, succeeded, "only one booking may hold the slot")
}

func TestRescheduleToOwnSlot(t *testing.T) {
	ctx := context.Background()
	uc := newTestAppointmentUsecase()

	scheduled, err := uc.ScheduleAppointment(ctx, "P1", &models.ScheduleAppointmentRequest{SpecialistID: "S1", PatientID: "P1", Date: "2024-05-01T10:00:00Z"})
	require.NoError(t, err)

	rescheduled, err := uc.RescheduleAppointment(ctx, "P1", scheduled.ID, &models.RescheduleAppointmentRequest{Date: "2024-05-01T07:00:00-03:00"})

	require.NoError(t, err)
	assert.Equal(t, "2024-05-01T10:00:00Z", rescheduled.Date)
}

func TestRescheduleAndCancelAppointment(t *testing.T) {
	ctx := context.Background()
	uc := newTestAppointmentUsecase()

	first, err := uc.ScheduleAppointment(ctx, "P1", &models.ScheduleAppointmentRequest{SpecialistID: "S1", PatientID: "P1", Date: "2024-05-01T10:00:00Z"})
	require.NoError(t, err)
	_, err = uc.ScheduleAppointment(ctx, "P2", &models.ScheduleAppointmentRequest{SpecialistID: "S1", PatientID: "P2", Date: "2024-05-02T10:00:00Z"})
	require.NoError(t, err)

	_, err = uc.RescheduleAppointment(ctx, "P1", first.ID, &models.RescheduleAppointmentRequest{Date: "2024-05-02T10:00:00Z"})
	assert.Equal(t, exceptions.KindConflict, exceptions.KindOf(err), "slot held by another patient")

	_, err = uc.RescheduleAppointment(ctx, "P2", first.ID, &models.RescheduleAppointmentRequest{Date: "2024-05-03T10:00:00Z"})
	assert.Equal(t, exceptions.KindUnauthorized, exceptions.KindOf(err))

	rescheduled, err := uc.RescheduleAppointment(ctx, "P1", first.ID, &models.RescheduleAppointmentRequest{Date: "2024-05-03T10:00:00Z"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, rescheduled.ID)
	assert.Equal(t, "2024-05-03T10:00:00Z", rescheduled.Date)

	err = uc.CancelAppointment(ctx, "P1", first.ID, &models.CancelAppointmentRequest{Reason: "viagem"})
	require.NoError(t, err)

	err = uc.CancelAppointment(ctx, "P1", first.ID, &models.CancelAppointmentRequest{})
	assert.Equal(t, exceptions.KindConflict, exceptions.KindOf(err))

	_, err = uc.RescheduleAppointment(ctx, "P1", first.ID, &models.RescheduleAppointmentRequest{Date: "2024-05-04T10:00:00Z"})
	assert.Equal(t, exceptions.KindConflict, exceptions.KindOf(err))

	err = uc.CancelAppointment(ctx, "P1", "missing", &models.CancelAppointmentRequest{})
	assert.Equal(t, exceptions.KindNotFound, exceptions.KindOf(err))

	appointments, err := uc.ListPatientAppointments(ctx, "P1", "P1")
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, "viagem", appointments[0].CancellationReason)

	_, err = uc.ScheduleAppointment(ctx, "P3", &models.ScheduleAppointmentRequest{SpecialistID: "S1", PatientID: "P3", Date: "2024-05-03T10:00:00Z"})
	assert.NoError(t, err, "cancelled slot is free again")

	_, err = uc.ListPatientAppointments(ctx, "P2", "P1")
	assert.Equal(t, exceptions.KindUnauthorized, exceptions.KindOf(err))
}
