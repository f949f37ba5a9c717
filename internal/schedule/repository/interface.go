package repository

import (
	"context"

	"care-schedule/internal/model"
)

// Repository is the composed interface for the schedule data store.
type Repository interface {
	ActivityRepository
	AppointmentRepository
}

// ActivityRepository defines all data access methods for activities.
// GetActivity returns a zero-value Activity (ID == "") when not found.
type ActivityRepository interface {
	CreateActivity(ctx context.Context, opt CreateActivityOptions) (model.Activity, error)
	GetActivity(ctx context.Context, id string) (model.Activity, error)
	ListActivities(ctx context.Context, opt ListOptions) ([]model.Activity, error)
	UpdateActivity(ctx context.Context, opt UpdateActivityOptions) (model.Activity, error)
	DeleteActivity(ctx context.Context, id string) error
}

// AppointmentRepository defines all data access methods for appointments.
// GetAppointment returns a zero-value Appointment (ID == "") when not found.
type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, opt CreateAppointmentOptions) (model.Appointment, error)
	GetAppointment(ctx context.Context, id string) (model.Appointment, error)
	ListAppointments(ctx context.Context, opt ListOptions) ([]model.Appointment, error)
	UpdateAppointmentSlot(ctx context.Context, opt UpdateAppointmentSlotOptions) (model.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error
}
