package company

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTimeOfDay(t *testing.T, s string) *TimeOfDay {
	t.Helper()
	tod, err := ParseTimeOfDay(s)
	require.NoError(t, err)
	return &tod
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("08:30:15")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay(8*3600+30*60+15), tod)
	assert.Equal(t, "08:30:15", tod.String())

	tod, err = ParseTimeOfDay("08:30")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay(8*3600+30*60), tod)

	_, err = ParseTimeOfDay("25:00:00")
	assert.Error(t, err)

	_, err = ParseTimeOfDay("8am")
	assert.Error(t, err)
}

func TestEvaluateTardiness(t *testing.T) {
	workStart := mustTimeOfDay(t, "08:00:00")
	schedule := Schedule{WorkStart: workStart}

	cases := []struct {
		name        string
		punchAt     string // time of day, RFC3339 date is fixed
		grace       int
		wantLate    bool
		wantMinutes int
	}{
		{"well before start", "07:15:00", 0, false, 0},
		{"exactly at start", "08:00:00", 0, false, 0},
		{"one second after start", "08:00:01", 0, true, 0},
		{"one minute after start", "08:01:00", 0, true, 1},
		{"truncates partial minutes", "08:01:59", 0, true, 1},
		{"twenty minutes late", "08:20:00", 0, true, 20},
		{"inside grace period", "08:10:00", 15, false, 0},
		{"at grace boundary", "08:15:00", 15, false, 0},
		{"past grace counts from work start", "08:16:00", 15, true, 16},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ts, err := time.Parse(time.RFC3339, "2025-03-10T"+c.punchAt+"Z")
			require.NoError(t, err)

			isLate, minutes := schedule.EvaluateTardiness(ts, time.UTC, c.grace)
			assert.Equal(t, c.wantLate, isLate)
			assert.Equal(t, c.wantMinutes, minutes)
		})
	}
}

func TestEvaluateTardiness_NoWorkStart(t *testing.T) {
	ts, _ := time.Parse(time.RFC3339, "2025-03-10T14:00:00Z")
	isLate, minutes := Schedule{}.EvaluateTardiness(ts, time.UTC, 0)
	assert.False(t, isLate)
	assert.Zero(t, minutes)
}

func TestEvaluateTardiness_UsesLocation(t *testing.T) {
	lima, err := time.LoadLocation("America/Lima")
	require.NoError(t, err)

	schedule := Schedule{WorkStart: mustTimeOfDay(t, "08:00:00")}

	// 13:20 UTC is 08:20 in Lima (UTC-5).
	ts, err := time.Parse(time.RFC3339, "2025-03-10T13:20:00Z")
	require.NoError(t, err)

	isLate, minutes := schedule.EvaluateTardiness(ts, lima, 0)
	assert.True(t, isLate)
	assert.Equal(t, 20, minutes)

	// The same instant judged in UTC is well past start.
	isLate, minutes = schedule.EvaluateTardiness(ts, time.UTC, 0)
	assert.True(t, isLate)
	assert.Equal(t, 320, minutes)
}

func TestScheduleValidate(t *testing.T) {
	start := mustTimeOfDay(t, "08:00:00")
	end := mustTimeOfDay(t, "17:00:00")

	assert.NoError(t, Schedule{WorkStart: start, WorkEnd: end}.Validate())
	assert.NoError(t, Schedule{WorkStart: start}.Validate())
	assert.ErrorIs(t, Schedule{WorkStart: end, WorkEnd: start}.Validate(), ErrInvalidSchedule)
	assert.ErrorIs(t, Schedule{LunchStart: end, LunchEnd: start}.Validate(), ErrInvalidSchedule)
}
