package booking

import (
	"fmt"
	"time"

	"github.com/example/dats-assistant/internal/temporal"
)

// Verdict is the outcome of a validation pass. Valid=false means the
// request must not reach DATS and Error says why. A Warning never blocks:
// the request proceeds but the rider must be told. Error and Warning are
// never both set.
type Verdict struct {
	Valid   bool   `json:"valid"`
	Error   string `json:"error,omitempty"`
	Warning string `json:"warning,omitempty"`
}

func blocked(format string, args ...any) Verdict {
	return Verdict{Valid: false, Error: fmt.Sprintf(format, args...)}
}

func allowedWith(format string, args ...any) Verdict {
	return Verdict{Valid: true, Warning: fmt.Sprintf(format, args...)}
}

// Validator applies Policy to booking and cancellation requests. The zero
// value is unusable; construct with New. Clock may be replaced to fix "now"
// in tests; Validator methods never read the wall clock any other way.
type Validator struct {
	Policy Policy
	Loc    *time.Location
	Clock  func() time.Time
}

func New() Validator {
	return Validator{Policy: DefaultPolicy, Loc: temporal.Location()}
}

// Now is the injected current instant, in the validator's zone.
func (v Validator) Now() time.Time {
	if v.Clock != nil {
		return v.Clock().In(v.Location())
	}
	return time.Now().In(v.Location())
}

func (v Validator) Location() *time.Location {
	if v.Loc != nil {
		return v.Loc
	}
	return temporal.Location()
}

// ValidateBooking checks a pickup request against the DATS booking window.
// Gates run in order and the first failure decides the verdict: both parts
// must parse, the pickup must not be in the past, the date must be inside
// the advance window, and same-day pickups need minimum notice. Same-day
// success and post-noon next-day bookings carry advisory warnings.
func (v Validator) ValidateBooking(pickupDate, pickupTime string) Verdict {
	now := v.Now()
	loc := v.Location()

	date, dateOK := temporal.ResolveFlexibleDate(pickupDate, now, loc)
	clock, timeOK := temporal.ParseClockTime(pickupTime)
	if !dateOK || !timeOK {
		return blocked("could not parse the pickup date or time; give the date like 2026-01-13 or \"tomorrow\", and the time like 09:30 or 9:30 AM")
	}

	pickup := date.At(clock, loc)
	if pickup.Before(now) {
		return blocked("that pickup time has already passed")
	}

	daysAhead := temporal.DateOf(now, loc).DaysUntil(date)
	if daysAhead > v.Policy.AdvanceDays {
		return blocked("DATS only allows booking up to %d days in advance; %s is %d days away",
			v.Policy.AdvanceDays, date, daysAhead)
	}

	switch daysAhead {
	case 0:
		if pickup.Sub(now) < v.Policy.SameDayNotice {
			return blocked("same-day bookings need at least %s notice before pickup",
				FormatDuration(int(v.Policy.SameDayNotice.Minutes())))
		}
		return allowedWith("same-day trips are not guaranteed; DATS fits them in where space allows")
	case 1:
		if now.Hour() >= v.Policy.NoonCutoffHour {
			return allowedWith("the %d:00 cutoff for next-day requests has passed, so this trip is not guaranteed and may be waitlisted",
				v.Policy.NoonCutoffHour)
		}
	}
	return Verdict{Valid: true}
}

// ValidateCancellation checks whether a scheduled trip can still be
// cancelled through the assistant. Parsing is best-effort and fails open:
// refusing to cancel a real trip is worse than a spurious warning, so an
// unreadable date or time yields valid-with-warning instead of an error.
func (v Validator) ValidateCancellation(tripDate, tripTime string) Verdict {
	now := v.Now()
	loc := v.Location()

	date, dateOK := temporal.ResolveFlexibleDate(tripDate, now, loc)
	clock, timeOK := temporal.ParseClockTime(tripTime)
	if !dateOK || !timeOK {
		return allowedWith("could not read the trip's scheduled time, so the notice rules were not checked; please verify the pickup time before cancelling")
	}

	tripStart := date.At(clock, loc)
	if !tripStart.After(now) {
		return blocked("that trip has already started and can no longer be cancelled here")
	}

	gap := tripStart.Sub(now)
	if gap < v.Policy.CancelNotice {
		return blocked("cancellations need at least %s notice; please call DATS at %s and an agent will help",
			FormatDuration(int(v.Policy.CancelNotice.Minutes())), v.Policy.SupportPhone)
	}
	if gap < v.Policy.CancelNotice+time.Hour {
		return allowedWith("cutting it close: pickup is only %s away", FormatDuration(int(gap.Minutes())))
	}
	return Verdict{Valid: true}
}
