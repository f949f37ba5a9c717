package model

import "time"

// Activity is a daily activity on the patient's schedule (church service,
// swimming class, ...).
type Activity struct {
	ID          string `json:"id"          yaml:"id"`
	Title       string `json:"title"       yaml:"title"`
	Time        string `json:"time"        yaml:"time"`               // free-form, e.g. "10:00 AM"
	Duration    int    `json:"duration"    yaml:"duration,omitempty"` // minutes, 0 = default
	Date        string `json:"date"        yaml:"date,omitempty"`     // free-form label, e.g. "Oct 24"
	Icon        string `json:"icon"        yaml:"icon,omitempty"`
	Description string `json:"description" yaml:"description,omitempty"`
	Location    string `json:"location"    yaml:"location,omitempty"`

	CreatedAt time.Time `json:"-" yaml:"-"`
	UpdatedAt time.Time `json:"-" yaml:"-"`
}

func (a Activity) EntityID() string     { return a.ID }
func (a Activity) EntityKind() Kind     { return KindActivity }
func (a Activity) ClockTime() string    { return a.Time }
func (a Activity) DurationMinutes() int { return a.Duration }
func (a Activity) DateLabel() string    { return a.Date }
