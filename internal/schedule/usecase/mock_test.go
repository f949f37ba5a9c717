package usecase_test

import (
	"context"
	"errors"

	"care-schedule/internal/model"
	"care-schedule/internal/schedule/repository"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

var errDB = errors.New("db error")

// memRepo keeps entities in insertion order, like the sqlite store.
type memRepo struct {
	activities   []model.Activity
	appointments []model.Appointment
	fail         bool
}

func keep(date, label string, includeUndated bool) bool {
	if label == "" {
		return true
	}
	if date == label {
		return true
	}
	return includeUndated && date == ""
}

func (m *memRepo) CreateActivity(ctx context.Context, opt repository.CreateActivityOptions) (model.Activity, error) {
	if m.fail {
		return model.Activity{}, errDB
	}
	a := model.Activity{
		ID:          opt.ID,
		Title:       opt.Title,
		Time:        opt.Time,
		Duration:    opt.Duration,
		Date:        opt.Date,
		Icon:        opt.Icon,
		Description: opt.Description,
		Location:    opt.Location,
	}
	m.activities = append(m.activities, a)
	return a, nil
}

func (m *memRepo) GetActivity(ctx context.Context, id string) (model.Activity, error) {
	if m.fail {
		return model.Activity{}, errDB
	}
	for _, a := range m.activities {
		if a.ID == id {
			return a, nil
		}
	}
	return model.Activity{}, nil
}

func (m *memRepo) ListActivities(ctx context.Context, opt repository.ListOptions) ([]model.Activity, error) {
	if m.fail {
		return nil, errDB
	}
	res := []model.Activity{}
	for _, a := range m.activities {
		if keep(a.Date, opt.Date, opt.IncludeUndated) {
			res = append(res, a)
		}
	}
	return res, nil
}

func (m *memRepo) UpdateActivity(ctx context.Context, opt repository.UpdateActivityOptions) (model.Activity, error) {
	for i := range m.activities {
		if m.activities[i].ID != opt.ID {
			continue
		}
		m.activities[i] = model.Activity{
			ID:          opt.ID,
			Title:       opt.Title,
			Time:        opt.Time,
			Duration:    opt.Duration,
			Date:        opt.Date,
			Icon:        opt.Icon,
			Description: opt.Description,
			Location:    opt.Location,
		}
		return m.activities[i], nil
	}
	return model.Activity{}, nil
}

func (m *memRepo) DeleteActivity(ctx context.Context, id string) error {
	for i := range m.activities {
		if m.activities[i].ID == id {
			m.activities = append(m.activities[:i], m.activities[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memRepo) CreateAppointment(ctx context.Context, opt repository.CreateAppointmentOptions) (model.Appointment, error) {
	if m.fail {
		return model.Appointment{}, errDB
	}
	p := model.Appointment{
		ID:         opt.ID,
		DoctorName: opt.DoctorName,
		Specialty:  opt.Specialty,
		Hospital:   opt.Hospital,
		Date:       opt.Date,
		Time:       opt.Time,
		Duration:   opt.Duration,
		Rating:     opt.Rating,
		Favorite:   opt.Favorite,
	}
	m.appointments = append(m.appointments, p)
	return p, nil
}

func (m *memRepo) GetAppointment(ctx context.Context, id string) (model.Appointment, error) {
	if m.fail {
		return model.Appointment{}, errDB
	}
	for _, p := range m.appointments {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Appointment{}, nil
}

func (m *memRepo) ListAppointments(ctx context.Context, opt repository.ListOptions) ([]model.Appointment, error) {
	if m.fail {
		return nil, errDB
	}
	res := []model.Appointment{}
	for _, p := range m.appointments {
		if keep(p.Date, opt.Date, opt.IncludeUndated) {
			res = append(res, p)
		}
	}
	return res, nil
}

func (m *memRepo) UpdateAppointmentSlot(ctx context.Context, opt repository.UpdateAppointmentSlotOptions) (model.Appointment, error) {
	for i := range m.appointments {
		if m.appointments[i].ID != opt.ID {
			continue
		}
		m.appointments[i].Date = opt.Date
		m.appointments[i].Time = opt.Time
		return m.appointments[i], nil
	}
	return model.Appointment{}, nil
}

func (m *memRepo) DeleteAppointment(ctx context.Context, id string) error {
	for i := range m.appointments {
		if m.appointments[i].ID == id {
			m.appointments = append(m.appointments[:i], m.appointments[i+1:]...)
			return nil
		}
	}
	return nil
}
