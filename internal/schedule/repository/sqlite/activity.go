package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"care-schedule/internal/model"
	repo "care-schedule/internal/schedule/repository"
)

const activityColumns = `id, title, time, duration, date, icon, description, location, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanActivity(row rowScanner) (model.Activity, error) {
	var a model.Activity
	var createdAt, updatedAt string
	err := row.Scan(&a.ID, &a.Title, &a.Time, &a.Duration, &a.Date, &a.Icon, &a.Description, &a.Location, &createdAt, &updatedAt)
	if err != nil {
		return model.Activity{}, err
	}
	a.CreatedAt = parseTime(createdAt)
	a.UpdatedAt = parseTime(updatedAt)
	return a, nil
}

// CreateActivity inserts a new activity row and returns the stored entity.
func (r *implRepository) CreateActivity(ctx context.Context, opt repo.CreateActivityOptions) (model.Activity, error) {
	const query = `
		INSERT INTO activities (id, title, time, duration, date, icon, description, location, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	now := formatTime(r.now())
	_, err := r.db.ExecContext(ctx, query,
		opt.ID, opt.Title, opt.Time, opt.Duration, opt.Date, opt.Icon, opt.Description, opt.Location, now, now,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateActivity"), err)
		return model.Activity{}, repo.ErrFailedToInsert
	}
	return r.GetActivity(ctx, opt.ID)
}

// GetActivity retrieves a single activity by id.
// Returns zero-value Activity (ID == "") when not found.
func (r *implRepository) GetActivity(ctx context.Context, id string) (model.Activity, error) {
	query := fmt.Sprintf(`SELECT %s FROM activities WHERE id = ? LIMIT 1`, activityColumns)

	a, err := scanActivity(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Activity{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetActivity"), err)
		return model.Activity{}, repo.ErrFailedToGet
	}
	return a, nil
}

// ListActivities returns activities in insertion order.
func (r *implRepository) ListActivities(ctx context.Context, opt repo.ListOptions) ([]model.Activity, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM activities %s`, activityColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListActivities"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	activities := make([]model.Activity, 0)
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListActivities"), err)
			return nil, repo.ErrFailedToList
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListActivities"), err)
		return nil, repo.ErrFailedToList
	}
	return activities, nil
}

// UpdateActivity replaces an activity's fields.
// Returns zero-value Activity when the id does not exist.
func (r *implRepository) UpdateActivity(ctx context.Context, opt repo.UpdateActivityOptions) (model.Activity, error) {
	const query = `
		UPDATE activities
		SET title = ?, time = ?, duration = ?, date = ?, icon = ?, description = ?, location = ?, updated_at = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query,
		opt.Title, opt.Time, opt.Duration, opt.Date, opt.Icon, opt.Description, opt.Location, formatTime(r.now()), opt.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateActivity"), err)
		return model.Activity{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Activity{}, nil
	}
	return r.GetActivity(ctx, opt.ID)
}

// DeleteActivity removes an activity by id.
func (r *implRepository) DeleteActivity(ctx context.Context, id string) error {
	const query = `DELETE FROM activities WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteActivity"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
