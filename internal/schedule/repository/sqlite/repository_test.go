package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	repo "care-schedule/internal/schedule/repository"
	"care-schedule/pkg/log"
)

func newTestRepo(t *testing.T) *implRepository {
	t.Helper()

	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "data", "schedule.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	r := New(db, log.NewNop()).(*implRepository)
	r.now = func() time.Time { return time.Date(2025, 10, 5, 8, 0, 0, 0, time.UTC) }
	return r
}

func TestActivityCRUD(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.CreateActivity(ctx, repo.CreateActivityOptions{
		ID: "a1", Title: "Morning Service", Time: "10:00 AM", Date: "Oct 5", Location: "Community Chapel",
	})
	if err != nil {
		t.Fatalf("CreateActivity: %v", err)
	}
	if created.ID != "a1" || created.Title != "Morning Service" || created.Location != "Community Chapel" {
		t.Errorf("unexpected created activity: %+v", created)
	}
	if created.CreatedAt.IsZero() {
		t.Errorf("expected CreatedAt to be set")
	}

	if _, err := r.CreateActivity(ctx, repo.CreateActivityOptions{ID: "a1", Title: "dup", Time: "1:00 PM"}); err != repo.ErrFailedToInsert {
		t.Errorf("expected ErrFailedToInsert for duplicate id, got %v", err)
	}

	updated, err := r.UpdateActivity(ctx, repo.UpdateActivityOptions{
		ID: "a1", Title: "Evening Service", Time: "6:00 PM", Duration: 90, Date: "Oct 5",
	})
	if err != nil {
		t.Fatalf("UpdateActivity: %v", err)
	}
	if updated.Time != "6:00 PM" || updated.Duration != 90 || updated.Location != "" {
		t.Errorf("unexpected updated activity: %+v", updated)
	}

	missing, err := r.UpdateActivity(ctx, repo.UpdateActivityOptions{ID: "nope", Title: "x", Time: "1:00"})
	if err != nil || missing.ID != "" {
		t.Errorf("expected zero value for missing activity, got %+v, %v", missing, err)
	}

	if err := r.DeleteActivity(ctx, "a1"); err != nil {
		t.Fatalf("DeleteActivity: %v", err)
	}
	got, err := r.GetActivity(ctx, "a1")
	if err != nil || got.ID != "" {
		t.Errorf("expected deleted activity to be gone, got %+v, %v", got, err)
	}
}

func TestAppointmentCRUD(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.CreateAppointment(ctx, repo.CreateAppointmentOptions{
		ID: "p1", DoctorName: "Andrew Smith", Specialty: "Cardiologist", Hospital: "ABC Hospital",
		Date: "5 Oct", Time: "10:30am - 5:30pm", Rating: 4.8, Favorite: true,
	})
	if err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}
	if !created.Favorite || created.Rating != 4.8 || created.Time != "10:30am - 5:30pm" {
		t.Errorf("unexpected created appointment: %+v", created)
	}

	moved, err := r.UpdateAppointmentSlot(ctx, repo.UpdateAppointmentSlotOptions{ID: "p1", Date: "Oct 12", Time: "2:00 PM"})
	if err != nil {
		t.Fatalf("UpdateAppointmentSlot: %v", err)
	}
	if moved.Date != "Oct 12" || moved.Time != "2:00 PM" || moved.DoctorName != "Andrew Smith" {
		t.Errorf("unexpected rescheduled appointment: %+v", moved)
	}

	if err := r.DeleteAppointment(ctx, "p1"); err != nil {
		t.Fatalf("DeleteAppointment: %v", err)
	}
	got, err := r.GetAppointment(ctx, "p1")
	if err != nil || got.ID != "" {
		t.Errorf("expected deleted appointment to be gone, got %+v, %v", got, err)
	}
}

func TestListKeepsInsertionOrderAndFilters(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	for _, opt := range []repo.CreateActivityOptions{
		{ID: "z", Title: "Swimming", Time: "2:00 PM", Date: "Oct 5"},
		{ID: "a", Title: "Walk", Time: "9:00 AM"},
		{ID: "m", Title: "Bingo", Time: "3:00 PM", Date: "Oct 6"},
	} {
		if _, err := r.CreateActivity(ctx, opt); err != nil {
			t.Fatalf("CreateActivity(%s): %v", opt.ID, err)
		}
	}

	tests := []struct {
		name string
		opt  repo.ListOptions
		want []string
	}{
		{"All", repo.ListOptions{}, []string{"z", "a", "m"}},
		{"Exact date", repo.ListOptions{Date: "Oct 5"}, []string{"z"}},
		{"Date with undated", repo.ListOptions{Date: "Oct 5", IncludeUndated: true}, []string{"z", "a"}},
		{"Unknown date", repo.ListOptions{Date: "Nov 1"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.ListActivities(ctx, tt.opt)
			if err != nil {
				t.Fatalf("ListActivities: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d activities, want %d", len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("position %d: got %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}

	appts, err := r.ListAppointments(ctx, repo.ListOptions{})
	if err != nil {
		t.Fatalf("ListAppointments: %v", err)
	}
	if appts == nil || len(appts) != 0 {
		t.Errorf("expected empty non-nil appointment list, got %v", appts)
	}
}
