package schedule

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Conflict checks
	Check(ctx context.Context, input CheckInput) (CheckOutput, error)
	Intervals(ctx context.Context, input CheckInput) (IntervalsOutput, error)
	CheckStored(ctx context.Context, input CheckStoredInput) (CheckOutput, error)

	// Activity CRUD
	CreateActivity(ctx context.Context, input CreateActivityInput) (ActivityOutput, error)
	ListActivities(ctx context.Context, input ListInput) (ListActivitiesOutput, error)
	DetailActivity(ctx context.Context, id string) (ActivityOutput, error)
	UpdateActivity(ctx context.Context, input UpdateActivityInput) (ActivityOutput, error)
	DeleteActivity(ctx context.Context, id string) error

	// Appointment CRUD
	CreateAppointment(ctx context.Context, input CreateAppointmentInput) (AppointmentOutput, error)
	ListAppointments(ctx context.Context, input ListInput) (ListAppointmentsOutput, error)
	DetailAppointment(ctx context.Context, id string) (AppointmentOutput, error)
	RescheduleAppointment(ctx context.Context, input RescheduleAppointmentInput) (AppointmentOutput, error)
	DeleteAppointment(ctx context.Context, id string) error
}
