package schedule

import (
	"math"

	"care-schedule/internal/model"
	"care-schedule/pkg/clocktime"
)

// NewInterval places s on the daily timeline. The start comes from the first
// clock token of its time string; the end adds its own duration, or the kind's
// default when the duration is not positive, so End > Start always holds.
// An end past math.MaxInt saturates there.
func NewInterval(s model.Schedulable) Interval {
	start := clocktime.ParseMinutes(s.ClockTime())

	duration := s.DurationMinutes()
	if duration <= 0 {
		duration = DefaultDuration(s.EntityKind())
	}

	end := math.MaxInt
	if duration < math.MaxInt-start {
		end = start + duration
	}

	return Interval{
		ID:     s.EntityID(),
		Kind:   s.EntityKind(),
		Start:  start,
		End:    end,
		Date:   s.DateLabel(),
		Source: s,
	}
}

// BuildIntervals returns one interval per entity: all activities first, then
// all appointments, each block in list order. Sources point into the given
// slices, which are never modified.
func BuildIntervals(activities []model.Activity, appointments []model.Appointment) []Interval {
	out := make([]Interval, 0, len(activities)+len(appointments))
	for i := range activities {
		out = append(out, NewInterval(&activities[i]))
	}
	for i := range appointments {
		out = append(out, NewInterval(&appointments[i]))
	}
	return out
}

// Duration is the interval length in minutes.
func (iv Interval) Duration() int {
	return iv.End - iv.Start
}

// Overlaps reports whether the two half-open intervals share at least one
// minute. Touching endpoints do not overlap.
func (iv Interval) Overlaps(o Interval) bool {
	return iv.Start < o.End && o.Start < iv.End
}

// Overlap returns the shared window of two overlapping intervals. The result
// is meaningless when Overlaps is false.
func (iv Interval) Overlap(o Interval) (start, end int) {
	start, end = iv.Start, iv.End
	if o.Start > start {
		start = o.Start
	}
	if o.End < end {
		end = o.End
	}
	return start, end
}

// SameDay is the same-day guard. It is false only when both intervals carry a
// date and the labels differ; labels are compared as opaque strings, so
// "Oct 5" and "5 Oct" are different days.
func (iv Interval) SameDay(o Interval) bool {
	if iv.Date == "" || o.Date == "" {
		return true
	}
	return iv.Date == o.Date
}
