package schedule

import "care-schedule/internal/model"

// Default lengths, in minutes, applied when an entity does not set its own
// duration. They are fixed policy, not configuration.
const (
	DefaultActivityDuration    = 30
	DefaultAppointmentDuration = 60
)

// DefaultDuration returns the default length for entities of kind k.
func DefaultDuration(k model.Kind) int {
	if k == model.KindAppointment {
		return DefaultAppointmentDuration
	}
	return DefaultActivityDuration
}
