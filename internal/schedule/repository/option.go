package repository

// CreateActivityOptions holds parameters for inserting a new activity.
// ID is generated by the caller.
type CreateActivityOptions struct {
	ID          string
	Title       string
	Time        string
	Duration    int
	Date        string
	Icon        string
	Description string
	Location    string
}

// UpdateActivityOptions replaces every mutable field of an activity.
type UpdateActivityOptions struct {
	ID          string
	Title       string
	Time        string
	Duration    int
	Date        string
	Icon        string
	Description string
	Location    string
}

// CreateAppointmentOptions holds parameters for inserting a new appointment.
type CreateAppointmentOptions struct {
	ID         string
	DoctorName string
	Specialty  string
	Hospital   string
	Date       string
	Time       string
	Duration   int
	Rating     float64
	Favorite   bool
}

// UpdateAppointmentSlotOptions moves an appointment to a new date and time.
type UpdateAppointmentSlotOptions struct {
	ID   string
	Date string
	Time string
}

// ListOptions filters listed entities. Rows keep insertion order so the
// detector sees the same list order the caller built them in.
type ListOptions struct {
	// Date keeps rows with exactly this label; "" keeps all rows.
	Date string
	// IncludeUndated also keeps rows with no date when Date is set.
	IncludeUndated bool
}
