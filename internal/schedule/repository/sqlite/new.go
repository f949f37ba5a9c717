package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"care-schedule/internal/schedule/repository"
	"care-schedule/pkg/log"
)

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
}

// New creates a new SQLite-backed Repository for the schedule domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("schedule/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l, now: time.Now}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("schedule/repository/sqlite.%s", method)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
