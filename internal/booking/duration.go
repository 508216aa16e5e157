package booking

import "fmt"

// FormatDuration renders a minute count the way it is spoken to a rider:
// "45 minutes", "1 hour", "3 hours", "1 hour and 30 minutes". Hours are
// singular only at exactly one; the minutes word stays plural.
func FormatDuration(totalMinutes int) string {
	if totalMinutes < 60 {
		return fmt.Sprintf("%d minutes", totalMinutes)
	}
	hours := totalMinutes / 60
	minutes := totalMinutes % 60
	unit := "hours"
	if hours == 1 {
		unit = "hour"
	}
	if minutes == 0 {
		return fmt.Sprintf("%d %s", hours, unit)
	}
	return fmt.Sprintf("%d %s and %d minutes", hours, unit, minutes)
}
