// Package clocktime converts free-form clock strings such as "10:00 AM",
// "9:05" or "10:30am - 5:30pm" into minutes since midnight.
package clocktime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// clockPattern matches the first "<hours>:<minutes>" token with an optional
// meridiem marker. Only the first token of a range is ever used.
var clockPattern = regexp.MustCompile(`(?i)(\d+):(\d+)\s*(AM|PM)?`)

// maxDigits bounds each digit group so hours*60 + minutes, plus any duration
// added later, stays far from int overflow.
const maxDigits = 9

// ParseMinutes returns the minutes since midnight encoded by the first clock
// token in s. It never fails:
//   - no "<digits>:<digits>" token yields 0 (midnight)
//   - hours and minutes are not range checked, so "25:99" yields 1599
//   - without AM/PM the hour is read as 24h time
//   - digit groups longer than 9 digits are treated as no token
func ParseMinutes(s string) int {
	minutes, _ := parse(s)
	return minutes
}

// HasClock reports whether s contains a clock token ParseMinutes reads, as
// opposed to falling back to midnight.
func HasClock(s string) bool {
	_, ok := parse(s)
	return ok
}

func parse(s string) (int, bool) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil || len(m[1]) > maxDigits || len(m[2]) > maxDigits {
		return 0, false
	}

	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, false
	}

	switch Meridiem(strings.ToUpper(m[3])) {
	case PM:
		if hours < 12 {
			hours += 12
		}
	case AM:
		if hours == 12 {
			hours = 0
		}
	}

	return hours*60 + minutes, true
}

// Format renders minutes since midnight as "h:mm AM". Values past midnight
// keep counting and carry a "+N" day suffix, e.g. 1455 is "12:15 AM +1", so an
// end never reads earlier than its start. Negatives are clamped to midnight.
func Format(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	days := minutes / MinutesPerDay
	minutes %= MinutesPerDay

	hours, mins := minutes/60, minutes%60
	mer := AM
	if hours >= 12 {
		mer = PM
	}
	hours %= 12
	if hours == 0 {
		hours = 12
	}
	if days > 0 {
		return fmt.Sprintf("%d:%02d %s +%d", hours, mins, mer, days)
	}
	return fmt.Sprintf("%d:%02d %s", hours, mins, mer)
}
