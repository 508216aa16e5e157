package temporal

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ClockTime is a civil time-of-day, minute granularity.
type ClockTime struct {
	Hour   int
	Minute int
}

// String renders 24-hour HH:MM.
func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

var clockRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*([AaPp][Mm])?$`)

// ParseClockTime accepts 24-hour "HH:MM" and 12-hour "H:MM AM/PM" (AM/PM
// case-insensitive, space optional). Out-of-range hours or minutes are
// rejected.
func ParseClockTime(s string) (ClockTime, bool) {
	m := clockRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return ClockTime{}, false
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if minute > 59 {
		return ClockTime{}, false
	}
	if m[3] != "" {
		if hour < 1 || hour > 12 {
			return ClockTime{}, false
		}
		// 12 AM is midnight, 12 PM is noon.
		if hour == 12 {
			hour = 0
		}
		if strings.EqualFold(m[3], "pm") {
			hour += 12
		}
	} else if hour > 23 {
		return ClockTime{}, false
	}
	return ClockTime{Hour: hour, Minute: minute}, true
}
