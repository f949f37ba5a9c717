package usecase

import (
	"context"

	"care-schedule/internal/schedule"
	repo "care-schedule/internal/schedule/repository"
)

// Check runs the conflict detector over caller-supplied lists.
func (uc *implUseCase) Check(ctx context.Context, input schedule.CheckInput) (schedule.CheckOutput, error) {
	conflicts := schedule.CheckConflicts(input.Activities, input.Appointments)

	uc.l.Debugf(ctx, "uc.Check: activities=%d appointments=%d conflicts=%d",
		len(input.Activities), len(input.Appointments), len(conflicts))

	return schedule.CheckOutput{Conflicts: conflicts, Count: len(conflicts)}, nil
}

// Intervals returns the timeline windows the detector would compare.
func (uc *implUseCase) Intervals(ctx context.Context, input schedule.CheckInput) (schedule.IntervalsOutput, error) {
	return schedule.IntervalsOutput{
		Intervals: schedule.BuildIntervals(input.Activities, input.Appointments),
	}, nil
}

// CheckStored runs the conflict detector over the stored schedule. A date
// narrows the check to that day plus undated entities.
func (uc *implUseCase) CheckStored(ctx context.Context, input schedule.CheckStoredInput) (schedule.CheckOutput, error) {
	conflicts, err := uc.storedConflicts(ctx, repo.ListOptions{
		Date:           input.Date,
		IncludeUndated: true,
	})
	if err != nil {
		return schedule.CheckOutput{}, err
	}

	uc.l.Debugf(ctx, "uc.CheckStored: date=%q conflicts=%d", input.Date, len(conflicts))
	return schedule.CheckOutput{Conflicts: conflicts, Count: len(conflicts)}, nil
}
