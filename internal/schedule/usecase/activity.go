package usecase

import (
	"context"

	"care-schedule/internal/schedule"
	repo "care-schedule/internal/schedule/repository"
)

// CreateActivity stores a new activity and reports the conflicts it introduces.
// The time string is only required to be non-empty.
func (uc *implUseCase) CreateActivity(ctx context.Context, input schedule.CreateActivityInput) (schedule.ActivityOutput, error) {
	if isBlank(input.Title) {
		return schedule.ActivityOutput{}, schedule.ErrEmptyTitle
	}
	if isBlank(input.Time) {
		return schedule.ActivityOutput{}, schedule.ErrEmptyTime
	}

	activity, err := uc.repo.CreateActivity(ctx, repo.CreateActivityOptions{
		ID:          uc.newID(),
		Title:       input.Title,
		Time:        input.Time,
		Duration:    input.Duration,
		Date:        input.Date,
		Icon:        input.Icon,
		Description: input.Description,
		Location:    input.Location,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateActivity CreateActivity: %v", err)
		return schedule.ActivityOutput{}, err
	}

	conflicts, err := uc.conflictsFor(ctx, activity.ID)
	if err != nil {
		return schedule.ActivityOutput{}, err
	}
	if len(conflicts) > 0 {
		uc.l.Infof(ctx, "uc.CreateActivity: activity %s conflicts with %d item(s)", activity.ID, len(conflicts))
	}

	return schedule.ActivityOutput{Activity: activity, Conflicts: conflicts}, nil
}

// ListActivities returns stored activities in insertion order.
func (uc *implUseCase) ListActivities(ctx context.Context, input schedule.ListInput) (schedule.ListActivitiesOutput, error) {
	activities, err := uc.repo.ListActivities(ctx, repo.ListOptions{Date: input.Date})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListActivities ListActivities: %v", err)
		return schedule.ListActivitiesOutput{}, err
	}
	return schedule.ListActivitiesOutput{Activities: activities, Total: len(activities)}, nil
}

// DetailActivity retrieves an activity by id. Returns ErrActivityNotFound when not found.
func (uc *implUseCase) DetailActivity(ctx context.Context, id string) (schedule.ActivityOutput, error) {
	activity, err := uc.repo.GetActivity(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DetailActivity GetActivity: %v", err)
		return schedule.ActivityOutput{}, err
	}
	if activity.ID == "" {
		return schedule.ActivityOutput{}, schedule.ErrActivityNotFound
	}

	conflicts, err := uc.conflictsFor(ctx, activity.ID)
	if err != nil {
		return schedule.ActivityOutput{}, err
	}
	return schedule.ActivityOutput{Activity: activity, Conflicts: conflicts}, nil
}

// UpdateActivity applies a partial update. Empty strings keep the stored
// value; Duration and Date are replaced only when set, so a date can be cleared.
func (uc *implUseCase) UpdateActivity(ctx context.Context, input schedule.UpdateActivityInput) (schedule.ActivityOutput, error) {
	existing, err := uc.repo.GetActivity(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateActivity GetActivity: %v", err)
		return schedule.ActivityOutput{}, err
	}
	if existing.ID == "" {
		return schedule.ActivityOutput{}, schedule.ErrActivityNotFound
	}

	duration := existing.Duration
	if input.Duration != nil {
		duration = *input.Duration
	}
	date := existing.Date
	if input.Date != nil {
		date = *input.Date
	}

	activity, err := uc.repo.UpdateActivity(ctx, repo.UpdateActivityOptions{
		ID:          input.ID,
		Title:       uc.coalesce(input.Title, existing.Title),
		Time:        uc.coalesce(input.Time, existing.Time),
		Duration:    duration,
		Date:        date,
		Icon:        uc.coalesce(input.Icon, existing.Icon),
		Description: uc.coalesce(input.Description, existing.Description),
		Location:    uc.coalesce(input.Location, existing.Location),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateActivity UpdateActivity: %v", err)
		return schedule.ActivityOutput{}, err
	}
	if activity.ID == "" {
		return schedule.ActivityOutput{}, schedule.ErrActivityNotFound
	}

	conflicts, err := uc.conflictsFor(ctx, activity.ID)
	if err != nil {
		return schedule.ActivityOutput{}, err
	}
	return schedule.ActivityOutput{Activity: activity, Conflicts: conflicts}, nil
}

// DeleteActivity removes an activity by id. Returns ErrActivityNotFound when not found.
func (uc *implUseCase) DeleteActivity(ctx context.Context, id string) error {
	existing, err := uc.repo.GetActivity(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteActivity GetActivity: %v", err)
		return err
	}
	if existing.ID == "" {
		return schedule.ErrActivityNotFound
	}
	if err := uc.repo.DeleteActivity(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteActivity DeleteActivity: %v", err)
		return err
	}
	return nil
}
