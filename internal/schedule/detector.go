package schedule

import "care-schedule/internal/model"

// CheckConflicts reports every pair of entities whose intervals overlap on the
// same day, or on an unknown day when either date is missing.
//
// Pairs are scanned once each over activities followed by appointments, and
// the result keeps that first-encountered order. It never fails: malformed
// times start at midnight and missing durations take the kind's default.
func CheckConflicts(activities []model.Activity, appointments []model.Appointment) []Conflict {
	return Detect(BuildIntervals(activities, appointments))
}

// Detect runs the O(n²) all-pairs scan over prepared intervals.
func Detect(intervals []Interval) []Conflict {
	conflicts := make([]Conflict, 0)
	for i := 0; i < len(intervals); i++ {
		for j := i + 1; j < len(intervals); j++ {
			a, b := intervals[i], intervals[j]
			if !a.SameDay(b) || !a.Overlaps(b) {
				continue
			}

			start, end := a.Overlap(b)
			conflicts = append(conflicts, Conflict{
				Item1:        a.Source,
				Item2:        b.Source,
				Type:         NewConflictType(a.Kind, b.Kind),
				OverlapStart: start,
				OverlapEnd:   end,
			})
		}
	}
	return conflicts
}

// NewConflictType joins two kinds in scan order, e.g. "activity-appointment".
func NewConflictType(first, second model.Kind) ConflictType {
	return ConflictType(string(first) + "-" + string(second))
}

// Involves reports whether the entity with the given id is one side of c.
func (c Conflict) Involves(id string) bool {
	return c.Item1.EntityID() == id || c.Item2.EntityID() == id
}

// ConflictsFor returns the conflicts that involve the entity with the given id.
func ConflictsFor(conflicts []Conflict, id string) []Conflict {
	out := make([]Conflict, 0)
	for _, c := range conflicts {
		if c.Involves(id) {
			out = append(out, c)
		}
	}
	return out
}

// InConflict reports whether the entity with the given id appears in any conflict.
func InConflict(conflicts []Conflict, id string) bool {
	for _, c := range conflicts {
		if c.Involves(id) {
			return true
		}
	}
	return false
}
