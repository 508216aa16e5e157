package trip

import (
	"fmt"
	"strings"

	"github.com/example/dats-assistant/internal/temporal"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Request is a trip the rider wants booked. Date and Pickup are already
// canonical: the tool layer resolves flexible expressions before a Request
// exists.
type Request struct {
	Date           temporal.CivilDate
	Pickup         temporal.ClockTime
	PickupAddress  string
	DropoffAddress string
	Purpose        string

	// MobilityAids the rider travels with, e.g. "wheelchair", "walker".
	MobilityAids []string
}

// Confirmation is what DATS returns for an accepted booking. The pickup
// window is the span the vehicle may arrive in, not an exact time.
type Confirmation struct {
	BookingID   string
	WindowStart temporal.ClockTime
	WindowEnd   temporal.ClockTime
}

// Trip is a scheduled or past ride as DATS reports it.
type Trip struct {
	BookingID      string
	Date           temporal.CivilDate
	Pickup         temporal.ClockTime
	WindowStart    temporal.ClockTime
	WindowEnd      temporal.ClockTime
	PickupAddress  string
	DropoffAddress string
	Status         Status
}

// Describe renders the trip as short plain sentences for riders using
// screen readers or with low literacy: one fact per sentence, no
// abbreviations.
func (t Trip) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Ride %s on %s.", t.BookingID, t.Date)
	if t.WindowStart != (temporal.ClockTime{}) || t.WindowEnd != (temporal.ClockTime{}) {
		fmt.Fprintf(&b, " Be ready between %s and %s.", t.WindowStart, t.WindowEnd)
	} else {
		fmt.Fprintf(&b, " Pickup at %s.", t.Pickup)
	}
	if t.PickupAddress != "" {
		fmt.Fprintf(&b, " From %s.", t.PickupAddress)
	}
	if t.DropoffAddress != "" {
		fmt.Fprintf(&b, " Going to %s.", t.DropoffAddress)
	}
	if t.Status == StatusCancelled {
		b.WriteString(" This ride is cancelled.")
	}
	return b.String()
}
