package usecase

import (
	"context"
	"strings"

	"care-schedule/internal/schedule"
	repo "care-schedule/internal/schedule/repository"
)

// coalesce returns newVal when it is set, otherwise the existing value.
func (uc *implUseCase) coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// storedConflicts runs the detector over the stored schedule.
func (uc *implUseCase) storedConflicts(ctx context.Context, opt repo.ListOptions) ([]schedule.Conflict, error) {
	activities, err := uc.repo.ListActivities(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.storedConflicts ListActivities: %v", err)
		return nil, err
	}
	appointments, err := uc.repo.ListAppointments(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.storedConflicts ListAppointments: %v", err)
		return nil, err
	}
	return schedule.CheckConflicts(activities, appointments), nil
}

// conflictsFor returns the stored-schedule conflicts the entity with id takes part in.
func (uc *implUseCase) conflictsFor(ctx context.Context, id string) ([]schedule.Conflict, error) {
	conflicts, err := uc.storedConflicts(ctx, repo.ListOptions{})
	if err != nil {
		return nil, err
	}
	return schedule.ConflictsFor(conflicts, id), nil
}
