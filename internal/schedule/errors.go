package schedule

import "errors"

var (
	ErrActivityNotFound    = errors.New("activity not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrEmptyTitle          = errors.New("activity title is empty")
	ErrEmptyDoctorName     = errors.New("appointment doctor name is empty")
	ErrEmptyTime           = errors.New("time is empty")
)
