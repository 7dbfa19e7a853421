package availability

import (
	"testing"
	"time"

	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	day      = time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	earlier  = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	settings = domain.ClubSettings{
		OpenFrom:    8 * 60,
		OpenTo:      12 * 60,
		Granularity: 30 * time.Minute,
	}
)

func hhmm(h, m int) time.Time {
	return time.Date(2026, 10, 20, h, m, 0, 0, time.UTC)
}

func courts() []*domain.Court {
	return []*domain.Court{
		{ID: "c2", Name: "Court 2", Active: true},
		{ID: "c1", Name: "Court 1", Active: true},
		{ID: "c3", Name: "Court 3", Active: false},
	}
}

func confirmed(courtID string, start, end time.Time) *domain.Reservation {
	return &domain.Reservation{
		CourtIDs: []string{courtID},
		StartAt:  start,
		EndAt:    end,
		Status:   domain.StatusConfirmed,
	}
}

func slotTimes(slots []Slot) []time.Time {
	out := make([]time.Time, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Time)
	}
	return out
}

func TestSlots_EmptyDay(t *testing.T) {
	slots, err := Slots(settings, courts(), nil, Query{Date: day, Duration: 90 * time.Minute, CourtCount: 1}, earlier)

	require.NoError(t, err)
	// 08:00 .. 10:30 inclusive
	require.Len(t, slots, 6)
	assert.Equal(t, hhmm(8, 0), slots[0].Time)
	assert.Equal(t, hhmm(10, 30), slots[5].Time)
	assert.Equal(t, []string{"c1"}, slots[0].Courts)
}

func TestSlots_FallsBackToNextCourt(t *testing.T) {
	occ := []*domain.Reservation{confirmed("c1", hhmm(9, 0), hhmm(10, 0))}

	slots, err := Slots(settings, courts(), occ, Query{Date: day, Duration: time.Hour, CourtCount: 1}, earlier)

	require.NoError(t, err)
	for _, s := range slots {
		if s.Time.Equal(hhmm(8, 30)) || s.Time.Equal(hhmm(9, 0)) || s.Time.Equal(hhmm(9, 30)) {
			assert.Equal(t, []string{"c2"}, s.Courts, s.Time)
		} else {
			assert.Equal(t, []string{"c1"}, s.Courts, s.Time)
		}
	}
}

func TestSlots_MultipleCourts(t *testing.T) {
	occ := []*domain.Reservation{confirmed("c1", hhmm(9, 0), hhmm(10, 0))}

	slots, err := Slots(settings, courts(), occ, Query{Date: day, Duration: time.Hour, CourtCount: 2}, earlier)

	require.NoError(t, err)
	assert.Equal(t, []time.Time{hhmm(8, 0), hhmm(10, 0), hhmm(10, 30), hhmm(11, 0)}, slotTimes(slots))
	assert.Equal(t, []string{"c1", "c2"}, slots[0].Courts)
}

func TestSlots_TooManyCourtsRequested(t *testing.T) {
	slots, err := Slots(settings, courts(), nil, Query{Date: day, Duration: time.Hour, CourtCount: 3}, earlier)

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestSlots_IgnoresInertReservations(t *testing.T) {
	expired := hhmm(0, 0)
	occ := []*domain.Reservation{
		{CourtIDs: []string{"c1", "c2"}, StartAt: hhmm(8, 0), EndAt: hhmm(12, 0), Status: domain.StatusCancelled},
		{CourtIDs: []string{"c1", "c2"}, StartAt: hhmm(8, 0), EndAt: hhmm(12, 0), Status: domain.StatusHold, HoldExpiresAt: &expired},
	}

	slots, err := Slots(settings, courts(), occ, Query{Date: day, Duration: 4 * time.Hour, CourtCount: 2}, earlier.Add(13*time.Hour))

	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, hhmm(8, 0), slots[0].Time)
}

func TestSlots_LiveHoldBlocks(t *testing.T) {
	expires := earlier.Add(10 * time.Minute)
	occ := []*domain.Reservation{
		{CourtIDs: []string{"c1", "c2"}, StartAt: hhmm(8, 0), EndAt: hhmm(12, 0), Status: domain.StatusHold, HoldExpiresAt: &expires},
	}

	slots, err := Slots(settings, courts(), occ, Query{Date: day, Duration: time.Hour, CourtCount: 1}, earlier)

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestSlots_SkipsPast(t *testing.T) {
	slots, err := Slots(settings, courts(), nil, Query{Date: day, Duration: time.Hour, CourtCount: 1}, hhmm(9, 15))

	require.NoError(t, err)
	assert.Equal(t, []time.Time{hhmm(9, 30), hhmm(10, 0), hhmm(10, 30), hhmm(11, 0)}, slotTimes(slots))
}

func TestSlots_Validation(t *testing.T) {
	cases := map[string]Query{
		"no date":       {Duration: time.Hour, CourtCount: 1},
		"zero duration": {Date: day, CourtCount: 1},
		"zero courts":   {Date: day, Duration: time.Hour},
	}
	for name, q := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Slots(settings, courts(), nil, q, earlier)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}
