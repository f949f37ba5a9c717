package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"care-schedule/internal/model"
	repo "care-schedule/internal/schedule/repository"
)

const appointmentColumns = `id, doctor_name, specialty, hospital, date, time, duration, rating, favorite, created_at, updated_at`

func scanAppointment(row rowScanner) (model.Appointment, error) {
	var a model.Appointment
	var createdAt, updatedAt string
	err := row.Scan(&a.ID, &a.DoctorName, &a.Specialty, &a.Hospital, &a.Date, &a.Time, &a.Duration, &a.Rating, &a.Favorite, &createdAt, &updatedAt)
	if err != nil {
		return model.Appointment{}, err
	}
	a.CreatedAt = parseTime(createdAt)
	a.UpdatedAt = parseTime(updatedAt)
	return a, nil
}

// CreateAppointment inserts a new appointment row and returns the stored entity.
func (r *implRepository) CreateAppointment(ctx context.Context, opt repo.CreateAppointmentOptions) (model.Appointment, error) {
	const query = `
		INSERT INTO appointments (id, doctor_name, specialty, hospital, date, time, duration, rating, favorite, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	now := formatTime(r.now())
	_, err := r.db.ExecContext(ctx, query,
		opt.ID, opt.DoctorName, opt.Specialty, opt.Hospital, opt.Date, opt.Time, opt.Duration, opt.Rating, opt.Favorite, now, now,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateAppointment"), err)
		return model.Appointment{}, repo.ErrFailedToInsert
	}
	return r.GetAppointment(ctx, opt.ID)
}

// GetAppointment retrieves a single appointment by id.
// Returns zero-value Appointment (ID == "") when not found.
func (r *implRepository) GetAppointment(ctx context.Context, id string) (model.Appointment, error) {
	query := fmt.Sprintf(`SELECT %s FROM appointments WHERE id = ? LIMIT 1`, appointmentColumns)

	a, err := scanAppointment(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Appointment{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetAppointment"), err)
		return model.Appointment{}, repo.ErrFailedToGet
	}
	return a, nil
}

// ListAppointments returns appointments in insertion order.
func (r *implRepository) ListAppointments(ctx context.Context, opt repo.ListOptions) ([]model.Appointment, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM appointments %s`, appointmentColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListAppointments"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	appointments := make([]model.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListAppointments"), err)
			return nil, repo.ErrFailedToList
		}
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListAppointments"), err)
		return nil, repo.ErrFailedToList
	}
	return appointments, nil
}

// UpdateAppointmentSlot moves an appointment to a new date and time.
// Returns zero-value Appointment when the id does not exist.
func (r *implRepository) UpdateAppointmentSlot(ctx context.Context, opt repo.UpdateAppointmentSlotOptions) (model.Appointment, error) {
	const query = `UPDATE appointments SET date = ?, time = ?, updated_at = ? WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, opt.Date, opt.Time, formatTime(r.now()), opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateAppointmentSlot"), err)
		return model.Appointment{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Appointment{}, nil
	}
	return r.GetAppointment(ctx, opt.ID)
}

// DeleteAppointment removes an appointment by id.
func (r *implRepository) DeleteAppointment(ctx context.Context, id string) error {
	const query = `DELETE FROM appointments WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteAppointment"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
