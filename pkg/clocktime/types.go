package clocktime

// Meridiem is the AM/PM marker of a 12h clock string.
type Meridiem string

const (
	AM Meridiem = "AM"
	PM Meridiem = "PM"
)

// MinutesPerDay is the length of the 24h dial in minutes.
const MinutesPerDay = 24 * 60
