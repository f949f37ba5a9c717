package model

import "time"

// Appointment is a medical appointment. Time may hold a whole range such as
// "10:30am - 5:30pm"; only its first clock token is used as the start.
type Appointment struct {
	ID         string  `json:"id"          yaml:"id"`
	DoctorName string  `json:"doctor_name" yaml:"doctor_name"`
	Specialty  string  `json:"specialty"   yaml:"specialty,omitempty"`
	Hospital   string  `json:"hospital"    yaml:"hospital,omitempty"`
	Date       string  `json:"date"        yaml:"date"` // free-form label, e.g. "5 Oct"
	Time       string  `json:"time"        yaml:"time"`
	Duration   int     `json:"duration"    yaml:"duration,omitempty"` // minutes, 0 = default
	Rating     float64 `json:"rating"      yaml:"rating,omitempty"`
	Favorite   bool    `json:"favorite"    yaml:"favorite,omitempty"`

	CreatedAt time.Time `json:"-" yaml:"-"`
	UpdatedAt time.Time `json:"-" yaml:"-"`
}

func (a Appointment) EntityID() string     { return a.ID }
func (a Appointment) EntityKind() Kind     { return KindAppointment }
func (a Appointment) ClockTime() string    { return a.Time }
func (a Appointment) DurationMinutes() int { return a.Duration }
func (a Appointment) DateLabel() string    { return a.Date }
