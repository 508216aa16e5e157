// Package booking decides whether a trip booking or cancellation may be
// sent to DATS at all. Every rule is evaluated against an explicit "now";
// nothing in this package reads the wall clock unless no clock is injected.
package booking

import "time"

// Policy is the fixed set of DATS scheduling thresholds. Values are wired
// at deployment, not runtime-tunable.
type Policy struct {
	// AdvanceDays is the furthest a pickup may be from today, in civil days.
	AdvanceDays int

	// SameDayNotice is the minimum lead time for a pickup on today's date.
	SameDayNotice time.Duration

	// CancelNotice is the minimum lead time for cancelling a trip through
	// the assistant; anything later has to go through a human agent.
	CancelNotice time.Duration

	// NoonCutoffHour: next-day bookings made at or after this local hour
	// are no longer guaranteed.
	NoonCutoffHour int

	// SupportPhone is surfaced when the rider can no longer self-serve.
	SupportPhone string
}

// DefaultPolicy holds the DATS rules in force in Edmonton.
var DefaultPolicy = Policy{
	AdvanceDays:    3,
	SameDayNotice:  2 * time.Hour,
	CancelNotice:   2 * time.Hour,
	NoonCutoffHour: 12,
	SupportPhone:   "780-496-4567",
}
