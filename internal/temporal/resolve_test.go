package temporal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Sunday morning in Edmonton (MST, UTC-7).
var refNow = time.Date(2026, time.January, 11, 10, 0, 0, 0, Location())

func TestResolveFlexibleDate(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want string
		ok   bool
	}{
		{"iso passes through", "2026-01-13", "2026-01-13", true},
		{"iso with surrounding space", "  2026-01-13 ", "2026-01-13", true},
		{"iso impossible date", "2026-02-30", "", false},
		{"iso impossible month", "2026-13-01", "", false},
		{"compact numeric", "20260113", "2026-01-13", true},
		{"compact impossible date", "20260230", "", false},
		{"compact wrong length", "202601134", "", false},
		{"today", "today", "2026-01-11", true},
		{"today uppercase", "Today", "2026-01-11", true},
		{"tomorrow", "tomorrow", "2026-01-12", true},
		{"weekday strictly after today", "friday", "2026-01-16", true},
		{"weekday equal to today jumps a week", "sunday", "2026-01-18", true},
		{"weekday case-insensitive", "FRIDAY", "2026-01-16", true},
		{"next weekday same as bare", "next friday", "2026-01-16", true},
		{"next monday", "Next Monday", "2026-01-12", true},
		{"long form with weekday", "Tue, Jan 13, 2026", "2026-01-13", true},
		{"long form abbreviated", "Jan 13, 2026", "2026-01-13", true},
		{"long form full month", "January 13, 2026", "2026-01-13", true},
		{"long form single-digit day", "Mon, February 2, 2026", "2026-02-02", true},
		{"long form impossible date", "Feb 30, 2026", "", false},
		{"long form missing year", "Jan 13", "", false},
		{"long form missing day", "January 2026", "", false},
		{"garbage", "garbage", "", false},
		{"empty", "", "", false},
		{"blank", "   ", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveFlexibleDate(tt.expr, refNow, Location())
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got.String())
			} else {
				assert.True(t, got.IsZero())
			}
		})
	}
}

// The civil date must come from the target zone, not from the instant's UTC
// calendar date. 06:30 UTC on Jan 12 is still 23:30 on Jan 11 in Edmonton.
func TestResolveFlexibleDateNearLocalMidnight(t *testing.T) {
	lateEvening := time.Date(2026, time.January, 12, 6, 30, 0, 0, time.UTC)
	require.Equal(t, 12, lateEvening.Day(), "instant is already Jan 12 in UTC")

	got, ok := ResolveFlexibleDate("today", lateEvening, Location())
	require.True(t, ok)
	assert.Equal(t, "2026-01-11", got.String())

	got, ok = ResolveFlexibleDate("tomorrow", lateEvening, Location())
	require.True(t, ok)
	assert.Equal(t, "2026-01-12", got.String())

	// Early local morning: local and UTC agree on the day here, since
	// Edmonton runs behind UTC. Guards the arithmetic all the same.
	earlyMorning := time.Date(2026, time.January, 11, 0, 30, 0, 0, Location())
	got, ok = ResolveFlexibleDate("today", earlyMorning, Location())
	require.True(t, ok)
	assert.Equal(t, "2026-01-11", got.String())
}

func TestResolveFlexibleDateAcrossSpringForward(t *testing.T) {
	// Edmonton springs forward 2026-03-08 at 02:00 local.
	evening := time.Date(2026, time.March, 7, 22, 0, 0, 0, Location())

	got, ok := ResolveFlexibleDate("tomorrow", evening, Location())
	require.True(t, ok)
	assert.Equal(t, "2026-03-08", got.String())

	// Combining the transition day with a skipped local time must resolve
	// deterministically, not error.
	at := got.At(ClockTime{Hour: 2, Minute: 30}, Location())
	assert.Equal(t, 8, at.Day())
	assert.False(t, at.IsZero())
}

func TestResolveFlexibleDateAcrossFallBack(t *testing.T) {
	// Edmonton falls back 2026-11-01 at 02:00 local.
	evening := time.Date(2026, time.October, 31, 22, 0, 0, 0, Location())

	got, ok := ResolveFlexibleDate("tomorrow", evening, Location())
	require.True(t, ok)
	assert.Equal(t, "2026-11-01", got.String())

	today := DateOf(evening, Location())
	assert.Equal(t, 1, today.DaysUntil(got), "fall-back day is still one civil day away")
}

func TestResolveDateInZone(t *testing.T) {
	// Identity on canonical input.
	for _, d := range []string{"2026-01-13", "2025-12-31", "2026-02-28"} {
		assert.Equal(t, d, ResolveDateInZone(d, TargetZone, refNow))
	}
	assert.Equal(t, "", ResolveDateInZone("garbage", TargetZone, refNow))
	assert.Equal(t, "2026-01-11", ResolveDateInZone("today", TargetZone, refNow))

	// Unknown zone falls back to the deployment zone instead of failing.
	assert.Equal(t, "2026-01-11", ResolveDateInZone("today", "Not/AZone", refNow))
}
