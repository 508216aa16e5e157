package temporal

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Month lookup is by three-letter prefix, so full names and abbreviations
// both match. Ordered slice: lookup must be deterministic.
var monthPrefixes = []struct {
	prefix string
	month  time.Month
}{
	{"jan", time.January},
	{"feb", time.February},
	{"mar", time.March},
	{"apr", time.April},
	{"may", time.May},
	{"jun", time.June},
	{"jul", time.July},
	{"aug", time.August},
	{"sep", time.September},
	{"oct", time.October},
	{"nov", time.November},
	{"dec", time.December},
}

var (
	compactDateRe = regexp.MustCompile(`^\d{8}$`)
	longDayRe     = regexp.MustCompile(`\b(\d{1,2})\b`)
	longYearRe    = regexp.MustCompile(`\b(\d{4})\b`)
)

// ResolveFlexibleDate resolves a user-supplied date expression against the
// civil date of now in loc. Accepted forms: "today", "tomorrow", a weekday
// name with optional "next " prefix, ISO "YYYY-MM-DD", compact "YYYYMMDD",
// and long forms like "Tue, Jan 13, 2026" or "January 13, 2026".
//
// A weekday resolves to its next occurrence strictly after today: on a
// Friday, both "friday" and "next friday" mean seven days out. Riders who
// want today say "today".
//
// The second return is false when the expression cannot be resolved to a
// real calendar date; the zero CivilDate is never a valid answer.
func ResolveFlexibleDate(expr string, now time.Time, loc *time.Location) (CivilDate, bool) {
	s := strings.ToLower(strings.TrimSpace(expr))
	if s == "" {
		return CivilDate{}, false
	}
	today := DateOf(now, loc)

	switch s {
	case "today":
		return today, true
	case "tomorrow":
		return today.AddDays(1), true
	}

	name := s
	if strings.HasPrefix(name, "next ") {
		name = strings.TrimSpace(strings.TrimPrefix(name, "next "))
	}
	if wd, ok := weekdayNames[name]; ok {
		return nextWeekday(today, wd), true
	}

	if t, err := time.Parse("2006-01-02", s); err == nil {
		return DateOf(t, time.UTC), true
	}
	if compactDateRe.MatchString(s) {
		if t, err := time.Parse("20060102", s); err == nil {
			return DateOf(t, time.UTC), true
		}
		return CivilDate{}, false
	}

	return parseLongForm(s)
}

// ResolveDateInZone is the wire-level form of ResolveFlexibleDate: it
// returns canonical "YYYY-MM-DD", or "" when the expression is unparseable.
// An unknown tz falls back to the deployment zone rather than failing the
// whole call.
func ResolveDateInZone(expr, tz string, now time.Time) string {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = targetLoc
	}
	d, ok := ResolveFlexibleDate(expr, now, loc)
	if !ok {
		return ""
	}
	return d.String()
}

func nextWeekday(today CivilDate, wd time.Weekday) CivilDate {
	days := (int(wd) - int(today.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return today.AddDays(days)
}

// parseLongForm scrapes a month name (three-letter prefix), a 1-2 digit
// day, and a 4-digit year out of a human-readable date. Any missing piece
// means unparsed; callers decide whether that blocks or merely warns.
func parseLongForm(s string) (CivilDate, bool) {
	var month time.Month
	for _, mp := range monthPrefixes {
		if strings.Contains(s, mp.prefix) {
			month = mp.month
			break
		}
	}
	if month == 0 {
		return CivilDate{}, false
	}
	ym := longYearRe.FindStringSubmatch(s)
	dm := longDayRe.FindStringSubmatch(s)
	if ym == nil || dm == nil {
		return CivilDate{}, false
	}
	year, _ := strconv.Atoi(ym[1])
	day, _ := strconv.Atoi(dm[1])
	return newValidDate(year, month, day)
}
