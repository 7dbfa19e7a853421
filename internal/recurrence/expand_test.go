package recurrence

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-10-19 is a Monday.
func at(month time.Month, day, hh, mm int) time.Time {
	return time.Date(2026, month, day, hh, mm, 0, 0, time.UTC)
}

func starts(ws []Window) []time.Time {
	out := make([]time.Time, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.Start)
	}
	return out
}

func TestExpand_MondayWednesdayCount(t *testing.T) {
	p := domain.RecurrencePattern{
		Frequency: domain.FrequencyWeekly,
		Interval:  1,
		Weekdays:  []time.Weekday{time.Wednesday, time.Monday},
		Count:     4,
	}

	got, err := Expand(p, at(10, 19, 18, 0), at(10, 19, 19, 30), time.UTC, 52)

	require.NoError(t, err)
	assert.Equal(t, []time.Time{
		at(10, 19, 18, 0),
		at(10, 21, 18, 0),
		at(10, 26, 18, 0),
		at(10, 28, 18, 0),
	}, starts(got))
	for _, w := range got {
		assert.Equal(t, 90*time.Minute, w.End.Sub(w.Start))
	}
}

func TestExpand_IsDeterministic(t *testing.T) {
	p := domain.RecurrencePattern{Interval: 1, Weekdays: []time.Weekday{time.Monday, time.Wednesday}, Count: 4}

	first, err := Expand(p, at(10, 19, 18, 0), at(10, 19, 19, 0), time.UTC, 52)
	require.NoError(t, err)
	second, err := Expand(p, at(10, 19, 18, 0), at(10, 19, 19, 0), time.UTC, 52)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExpand_EveryOtherWeek(t *testing.T) {
	p := domain.RecurrencePattern{Interval: 2, Weekdays: []time.Weekday{time.Monday, time.Wednesday}, Count: 4}

	got, err := Expand(p, at(10, 19, 18, 0), at(10, 19, 19, 0), time.UTC, 52)

	require.NoError(t, err)
	assert.Equal(t, []time.Time{
		at(10, 19, 18, 0),
		at(10, 21, 18, 0),
		at(11, 2, 18, 0),
		at(11, 4, 18, 0),
	}, starts(got))
}

func TestExpand_UntilIsInclusive(t *testing.T) {
	until := at(10, 26, 0, 0)
	p := domain.RecurrencePattern{Interval: 1, Weekdays: []time.Weekday{time.Monday, time.Wednesday}, Until: &until}

	got, err := Expand(p, at(10, 19, 18, 0), at(10, 19, 19, 0), time.UTC, 52)

	require.NoError(t, err)
	assert.Equal(t, []time.Time{at(10, 19, 18, 0), at(10, 21, 18, 0), at(10, 26, 18, 0)}, starts(got))
}

func TestExpand_DefaultsToAnchorWeekday(t *testing.T) {
	// 2026-10-22 is a Thursday.
	p := domain.RecurrencePattern{Count: 3}

	got, err := Expand(p, at(10, 22, 7, 0), at(10, 22, 8, 0), time.UTC, 52)

	require.NoError(t, err)
	assert.Equal(t, []time.Time{at(10, 22, 7, 0), at(10, 29, 7, 0), at(11, 5, 7, 0)}, starts(got))
}

func TestExpand_SkipsDaysBeforeAnchor(t *testing.T) {
	// anchor on Wednesday; Monday of the same week is in the past
	p := domain.RecurrencePattern{Interval: 1, Weekdays: []time.Weekday{time.Monday, time.Wednesday}, Count: 3}

	got, err := Expand(p, at(10, 21, 18, 0), at(10, 21, 19, 0), time.UTC, 52)

	require.NoError(t, err)
	assert.Equal(t, []time.Time{at(10, 21, 18, 0), at(10, 26, 18, 0), at(10, 28, 18, 0)}, starts(got))
}

func TestExpand_KeepsLocalWallClock(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	// DST ends on 2026-10-25 in Berlin.
	start := time.Date(2026, 10, 19, 18, 0, 0, 0, loc)
	p := domain.RecurrencePattern{Interval: 1, Weekdays: []time.Weekday{time.Monday}, Count: 2}

	got, err := Expand(p, start, start.Add(time.Hour), loc, 52)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 18, got[1].Start.In(loc).Hour())
	assert.Equal(t, time.Hour, got[1].End.Sub(got[1].Start))
}

func TestExpand_Validation(t *testing.T) {
	until := at(12, 31, 0, 0)
	cases := map[string]domain.RecurrencePattern{
		"monthly":       {Frequency: "monthly", Count: 2},
		"negative step": {Interval: -1, Count: 2},
		"no end":        {Interval: 1},
		"both ends":     {Interval: 1, Count: 2, Until: &until},
		"over the cap":  {Interval: 1, Count: 53},
		"bad weekday":   {Interval: 1, Count: 2, Weekdays: []time.Weekday{9}},
		"until too far": {Interval: 1, Until: &until, Weekdays: []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Expand(p, at(10, 19, 18, 0), at(10, 19, 19, 0), time.UTC, 52)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestExpand_UntilBeforeAnchor(t *testing.T) {
	until := at(10, 1, 0, 0)
	p := domain.RecurrencePattern{Interval: 1, Until: &until}

	_, err := Expand(p, at(10, 19, 18, 0), at(10, 19, 19, 0), time.UTC, 52)

	assert.ErrorIs(t, err, domain.ErrValidation)
}
