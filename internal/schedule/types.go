package schedule

import "care-schedule/internal/model"

// Interval is the half-open [Start, End) window, in minutes since midnight,
// that one schedulable entity occupies. Intervals are built per check and
// never stored.
type Interval struct {
	ID     string
	Kind   model.Kind
	Start  int
	End    int
	Date   string // "" when the source carries no date
	Source model.Schedulable
}

// ConflictType names the pair of kinds involved in a conflict, in scan order.
type ConflictType string

const (
	ConflictActivityActivity       ConflictType = "activity-activity"
	ConflictActivityAppointment    ConflictType = "activity-appointment"
	ConflictAppointmentAppointment ConflictType = "appointment-appointment"
)

// Conflict is a pair of entities whose intervals overlap on the same (or an
// unknown) day. Item1 and Item2 point at the caller's original entities.
type Conflict struct {
	Item1 model.Schedulable
	Item2 model.Schedulable
	Type  ConflictType

	// Shared window of the two intervals.
	OverlapStart int
	OverlapEnd   int
}

// --- UseCase Inputs ---

// CheckInput carries caller-supplied lists for a stateless check.
type CheckInput struct {
	Activities   []model.Activity
	Appointments []model.Appointment
}

// CheckStoredInput selects which stored entities take part in a check.
// A non-empty Date keeps entities with that label plus undated ones.
type CheckStoredInput struct {
	Date string
}

type ListInput struct {
	Date string // exact date label, "" for all
}

type CreateActivityInput struct {
	Title       string
	Time        string
	Duration    int
	Date        string
	Icon        string
	Description string
	Location    string
}

type UpdateActivityInput struct {
	ID          string
	Title       string
	Time        string
	Duration    *int
	Date        *string
	Icon        string
	Description string
	Location    string
}

type CreateAppointmentInput struct {
	DoctorName string
	Specialty  string
	Hospital   string
	Date       string
	Time       string
	Duration   int
	Rating     float64
	Favorite   bool
}

// RescheduleAppointmentInput moves an appointment to a new date and time slot.
type RescheduleAppointmentInput struct {
	ID   string
	Date string
	Time string
}

// --- UseCase Outputs ---

type CheckOutput struct {
	Conflicts []Conflict
	Count     int
}

type IntervalsOutput struct {
	Intervals []Interval
}

// ActivityOutput returns an activity with the stored-schedule conflicts it takes part in.
type ActivityOutput struct {
	Activity  model.Activity
	Conflicts []Conflict
}

type ListActivitiesOutput struct {
	Activities []model.Activity
	Total      int
}

// AppointmentOutput returns an appointment with the stored-schedule conflicts it takes part in.
type AppointmentOutput struct {
	Appointment model.Appointment
	Conflicts   []Conflict
}

type ListAppointmentsOutput struct {
	Appointments []model.Appointment
	Total        int
}
