// Package temporal holds the canonical civil date/time model for the
// assistant. Every date and time the system reasons about is a civil value
// in the single deployment timezone; absolute instants appear only as the
// reference "now" passed in by callers.
package temporal

import (
	"fmt"
	"time"
)

// TargetZone is the civil timezone all trips are booked in. DATS serves
// Edmonton and the deployment does not move.
const TargetZone = "America/Edmonton"

var targetLoc = mustLoadLocation(TargetZone)

func mustLoadLocation(tz string) *time.Location {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		panic(fmt.Sprintf("temporal: cannot load %s: %v", tz, err))
	}
	return loc
}

// Location returns the fixed deployment timezone.
func Location() *time.Location { return targetLoc }

// CivilDate is a calendar date with no time-of-day and no zone attached.
// The zero value is not a valid date; parse helpers report validity
// separately.
type CivilDate struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the civil date of t as observed in loc. This is the only
// correct way to derive "today": taking t's UTC calendar date is off by one
// for several hours around local midnight.
func DateOf(t time.Time, loc *time.Location) CivilDate {
	y, m, d := t.In(loc).Date()
	return CivilDate{Year: y, Month: m, Day: d}
}

func (d CivilDate) IsZero() bool { return d == CivilDate{} }

// String renders the canonical wire form, YYYY-MM-DD.
func (d CivilDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// AddDays walks the civil calendar. Arithmetic is done in UTC so a DST
// transition in the target zone can never skip or repeat a day boundary.
func (d CivilDate) AddDays(n int) CivilDate {
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
	y, m, day := t.Date()
	return CivilDate{Year: y, Month: m, Day: day}
}

// DaysUntil returns the number of civil days from d to o (negative when o
// is earlier). Both dates are mapped to UTC midnights before subtracting;
// UTC has no DST so the quotient is exact.
func (d CivilDate) DaysUntil(o CivilDate) int {
	a := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	b := time.Date(o.Year, o.Month, o.Day, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}

// Weekday of the civil date. Zone-independent.
func (d CivilDate) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

// At combines the date with a clock time into an instant in loc.
// time.Date normalizes local times skipped or repeated by a DST transition,
// so the result is always deterministic and never an error.
func (d CivilDate) At(t ClockTime, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, t.Hour, t.Minute, 0, 0, loc)
}

// newValidDate builds a CivilDate and reports whether the components name a
// real calendar day (rejects Feb 30 and friends via round-trip check).
func newValidDate(year int, month time.Month, day int) (CivilDate, bool) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	y, m, dd := t.Date()
	if y != year || m != month || dd != day {
		return CivilDate{}, false
	}
	return CivilDate{Year: year, Month: month, Day: day}, true
}
