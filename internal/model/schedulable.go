package model

// Kind tags the category of a schedulable entity.
type Kind string

const (
	KindActivity    Kind = "activity"
	KindAppointment Kind = "appointment"
)

// Schedulable is implemented by every entity that can be placed on a daily timeline.
type Schedulable interface {
	EntityID() string
	EntityKind() Kind
	ClockTime() string
	DurationMinutes() int // 0 when the entity does not set its own duration
	DateLabel() string    // "" when the entity carries no date
}
