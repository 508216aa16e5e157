package temporal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOf(t *testing.T) {
	// 2026-01-12 03:00 UTC is 2026-01-11 20:00 in Edmonton.
	instant := time.Date(2026, time.January, 12, 3, 0, 0, 0, time.UTC)
	assert.Equal(t, CivilDate{2026, time.January, 11}, DateOf(instant, Location()))
	assert.Equal(t, CivilDate{2026, time.January, 12}, DateOf(instant, time.UTC))
}

func TestCivilDateAddDays(t *testing.T) {
	tests := []struct {
		name string
		d    CivilDate
		n    int
		want string
	}{
		{"simple", CivilDate{2026, time.January, 11}, 1, "2026-01-12"},
		{"month boundary", CivilDate{2026, time.January, 31}, 1, "2026-02-01"},
		{"year boundary", CivilDate{2025, time.December, 31}, 1, "2026-01-01"},
		{"leap february", CivilDate{2024, time.February, 28}, 1, "2024-02-29"},
		{"backwards", CivilDate{2026, time.March, 1}, -1, "2026-02-28"},
		{"across spring forward", CivilDate{2026, time.March, 7}, 1, "2026-03-08"},
		{"across fall back", CivilDate{2026, time.October, 31}, 1, "2026-11-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.AddDays(tt.n).String())
		})
	}
}

func TestCivilDateDaysUntil(t *testing.T) {
	d := CivilDate{2026, time.January, 11}
	assert.Equal(t, 0, d.DaysUntil(d))
	assert.Equal(t, 3, d.DaysUntil(CivilDate{2026, time.January, 14}))
	assert.Equal(t, -11, d.DaysUntil(CivilDate{2025, time.December, 31}))

	// The transition days are 23 and 25 hours long locally; the civil delta
	// must still be exactly one.
	assert.Equal(t, 1, CivilDate{2026, time.March, 7}.DaysUntil(CivilDate{2026, time.March, 8}))
	assert.Equal(t, 1, CivilDate{2026, time.October, 31}.DaysUntil(CivilDate{2026, time.November, 1}))
}

func TestCivilDateWeekday(t *testing.T) {
	assert.Equal(t, time.Sunday, CivilDate{2026, time.January, 11}.Weekday())
	assert.Equal(t, time.Tuesday, CivilDate{2026, time.January, 13}.Weekday())
}

func TestCivilDateAt(t *testing.T) {
	d := CivilDate{2026, time.January, 11}
	at := d.At(ClockTime{Hour: 14, Minute: 30}, Location())
	assert.Equal(t, 14, at.Hour())
	assert.Equal(t, 30, at.Minute())
	assert.Equal(t, 11, at.Day())

	// Round-trips back to the same civil date.
	require.Equal(t, d, DateOf(at, Location()))
}

func TestCivilDateString(t *testing.T) {
	assert.Equal(t, "2026-01-05", CivilDate{2026, time.January, 5}.String())
	assert.Equal(t, "0999-12-01", CivilDate{999, time.December, 1}.String())
}
