package usecase

import (
	"context"

	"care-schedule/internal/schedule"
	repo "care-schedule/internal/schedule/repository"
)

// CreateAppointment stores a new appointment and reports the conflicts it introduces.
func (uc *implUseCase) CreateAppointment(ctx context.Context, input schedule.CreateAppointmentInput) (schedule.AppointmentOutput, error) {
	if isBlank(input.DoctorName) {
		return schedule.AppointmentOutput{}, schedule.ErrEmptyDoctorName
	}
	if isBlank(input.Time) {
		return schedule.AppointmentOutput{}, schedule.ErrEmptyTime
	}

	appointment, err := uc.repo.CreateAppointment(ctx, repo.CreateAppointmentOptions{
		ID:         uc.newID(),
		DoctorName: input.DoctorName,
		Specialty:  input.Specialty,
		Hospital:   input.Hospital,
		Date:       input.Date,
		Time:       input.Time,
		Duration:   input.Duration,
		Rating:     input.Rating,
		Favorite:   input.Favorite,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateAppointment CreateAppointment: %v", err)
		return schedule.AppointmentOutput{}, err
	}

	conflicts, err := uc.conflictsFor(ctx, appointment.ID)
	if err != nil {
		return schedule.AppointmentOutput{}, err
	}
	if len(conflicts) > 0 {
		uc.l.Infof(ctx, "uc.CreateAppointment: appointment %s conflicts with %d item(s)", appointment.ID, len(conflicts))
	}

	return schedule.AppointmentOutput{Appointment: appointment, Conflicts: conflicts}, nil
}

// ListAppointments returns stored appointments in insertion order.
func (uc *implUseCase) ListAppointments(ctx context.Context, input schedule.ListInput) (schedule.ListAppointmentsOutput, error) {
	appointments, err := uc.repo.ListAppointments(ctx, repo.ListOptions{Date: input.Date})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListAppointments ListAppointments: %v", err)
		return schedule.ListAppointmentsOutput{}, err
	}
	return schedule.ListAppointmentsOutput{Appointments: appointments, Total: len(appointments)}, nil
}

// DetailAppointment retrieves an appointment by id. Returns ErrAppointmentNotFound when not found.
func (uc *implUseCase) DetailAppointment(ctx context.Context, id string) (schedule.AppointmentOutput, error) {
	appointment, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DetailAppointment GetAppointment: %v", err)
		return schedule.AppointmentOutput{}, err
	}
	if appointment.ID == "" {
		return schedule.AppointmentOutput{}, schedule.ErrAppointmentNotFound
	}

	conflicts, err := uc.conflictsFor(ctx, appointment.ID)
	if err != nil {
		return schedule.AppointmentOutput{}, err
	}
	return schedule.AppointmentOutput{Appointment: appointment, Conflicts: conflicts}, nil
}

// RescheduleAppointment moves an appointment to a new time slot and, when
// given, a new date.
func (uc *implUseCase) RescheduleAppointment(ctx context.Context, input schedule.RescheduleAppointmentInput) (schedule.AppointmentOutput, error) {
	if isBlank(input.Time) {
		return schedule.AppointmentOutput{}, schedule.ErrEmptyTime
	}

	existing, err := uc.repo.GetAppointment(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.RescheduleAppointment GetAppointment: %v", err)
		return schedule.AppointmentOutput{}, err
	}
	if existing.ID == "" {
		return schedule.AppointmentOutput{}, schedule.ErrAppointmentNotFound
	}

	appointment, err := uc.repo.UpdateAppointmentSlot(ctx, repo.UpdateAppointmentSlotOptions{
		ID:   input.ID,
		Date: uc.coalesce(input.Date, existing.Date),
		Time: input.Time,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.RescheduleAppointment UpdateAppointmentSlot: %v", err)
		return schedule.AppointmentOutput{}, err
	}
	if appointment.ID == "" {
		return schedule.AppointmentOutput{}, schedule.ErrAppointmentNotFound
	}

	conflicts, err := uc.conflictsFor(ctx, appointment.ID)
	if err != nil {
		return schedule.AppointmentOutput{}, err
	}
	return schedule.AppointmentOutput{Appointment: appointment, Conflicts: conflicts}, nil
}

// DeleteAppointment removes an appointment by id. Returns ErrAppointmentNotFound when not found.
func (uc *implUseCase) DeleteAppointment(ctx context.Context, id string) error {
	existing, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteAppointment GetAppointment: %v", err)
		return err
	}
	if existing.ID == "" {
		return schedule.ErrAppointmentNotFound
	}
	if err := uc.repo.DeleteAppointment(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteAppointment DeleteAppointment: %v", err)
		return err
	}
	return nil
}
