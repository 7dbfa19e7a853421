package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recurrenceFixture struct {
	reservations *mocks.MockReservationRepo
	courts       *mocks.MockCourtRepo
	rates        *mocks.MockRateRuleRepo
	notifier     *mocks.MockReservationNotifier
	publisher    *mocks.MockEventPublisher
	svc          *RecurrenceService
}

func newRecurrenceFixture(t *testing.T) *recurrenceFixture {
	t.Helper()
	f := &recurrenceFixture{
		reservations: mocks.NewMockReservationRepo(t),
		courts:       mocks.NewMockCourtRepo(t),
		rates:        mocks.NewMockRateRuleRepo(t),
		notifier:     mocks.NewMockReservationNotifier(t),
		publisher:    mocks.NewMockEventPublisher(t),
	}
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(t0).Maybe()
	f.svc = NewRecurrenceService(f.reservations, f.courts, f.rates, f.notifier, f.publisher, clock, testSettings, newTestLogger(t))
	return f
}

// Tuesdays and Thursdays 10:00-11:00, four times, starting 2026-10-20.
func seriesInput(skip bool) domain.SeriesInput {
	return domain.SeriesInput{
		CourtID:       "A",
		StartAt:       tuesday(10, 0),
		EndAt:         tuesday(11, 0),
		Owner:         domain.Owner{UserID: "u1"},
		PaymentMethod: domain.PaymentCash,
		Pattern: domain.RecurrencePattern{
			Frequency:     domain.FrequencyWeekly,
			Interval:      1,
			Weekdays:      []time.Weekday{time.Tuesday, time.Thursday},
			Count:         4,
			SkipConflicts: skip,
		},
	}
}

// conflictOn reports a conflict only for the occurrence starting at busy.
func conflictOn(busy time.Time) func(context.Context, string, time.Time, time.Time, string, time.Time) (bool, error) {
	return func(_ context.Context, _ string, start, _ time.Time, _ string, _ time.Time) (bool, error) {
		return start.Equal(busy), nil
	}
}

func TestRecurrenceService_Preview(t *testing.T) {
	f := newRecurrenceFixture(t)
	busy := time.Date(2026, 10, 22, 10, 0, 0, 0, time.UTC)

	f.courts.EXPECT().GetByID(mock.Anything, "A").Return(activeCourt("A"), nil)
	f.rates.EXPECT().List(mock.Anything).Return(testRules(), nil)
	f.reservations.EXPECT().HasConflict(mock.Anything, "A", mock.Anything, mock.Anything, "", t0).
		RunAndReturn(conflictOn(busy)).Times(4)

	occ, err := f.svc.Preview(context.Background(), seriesInput(false))

	require.NoError(t, err)
	require.Len(t, occ, 4)
	assert.Equal(t, tuesday(10, 0), occ[0].Start)
	assert.Equal(t, busy, occ[1].Start)
	assert.True(t, occ[1].Conflict)
	assert.Equal(t, reasonConflict, occ[1].Reason)
	for _, o := range occ {
		assert.True(t, o.IsValid)
		assert.Equal(t, int64(1500), o.PriceCents)
	}
}

func TestRecurrenceService_Preview_InvalidOccurrence(t *testing.T) {
	f := newRecurrenceFixture(t)
	in := seriesInput(false)
	// the rules end at 14:00 and there is no default rate
	in.StartAt, in.EndAt = tuesday(15, 0), tuesday(16, 0)

	f.courts.EXPECT().GetByID(mock.Anything, "A").Return(activeCourt("A"), nil)
	f.rates.EXPECT().List(mock.Anything).Return(testRules(), nil)
	f.reservations.EXPECT().HasConflict(mock.Anything, "A", mock.Anything, mock.Anything, "", t0).Return(false, nil)

	occ, err := f.svc.Preview(context.Background(), in)

	require.NoError(t, err)
	for _, o := range occ {
		assert.False(t, o.IsValid)
		assert.NotEmpty(t, o.Reason)
	}
}

func TestRecurrenceService_Materialize_AbortsOnConflict(t *testing.T) {
	f := newRecurrenceFixture(t)
	busy := time.Date(2026, 10, 22, 10, 0, 0, 0, time.UTC)

	f.courts.EXPECT().GetByID(mock.Anything, "A").Return(activeCourt("A"), nil)
	f.rates.EXPECT().List(mock.Anything).Return(testRules(), nil)
	f.reservations.EXPECT().HasConflict(mock.Anything, "A", mock.Anything, mock.Anything, "", t0).
		RunAndReturn(conflictOn(busy))

	_, err := f.svc.Materialize(context.Background(), seriesInput(false))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
	var seriesErr *domain.SeriesError
	require.True(t, errors.As(err, &seriesErr))
	require.Len(t, seriesErr.Occurrences, 1)
	assert.Equal(t, busy, seriesErr.Occurrences[0].Start)
}

func TestRecurrenceService_Materialize_SkipsConflicts(t *testing.T) {
	f := newRecurrenceFixture(t)
	busy := time.Date(2026, 10, 22, 10, 0, 0, 0, time.UTC)

	f.courts.EXPECT().GetByID(mock.Anything, "A").Return(activeCourt("A"), nil)
	f.rates.EXPECT().List(mock.Anything).Return(testRules(), nil)
	f.reservations.EXPECT().HasConflict(mock.Anything, "A", mock.Anything, mock.Anything, "", t0).
		RunAndReturn(conflictOn(busy))
	f.reservations.EXPECT().CreateBatch(mock.Anything, mock.Anything, t0, true).
		RunAndReturn(func(_ context.Context, rs []*domain.Reservation, _ time.Time, _ bool) ([]*domain.Reservation, error) {
			assert.Len(t, rs, 3)
			return nil, nil
		})
	f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Times(3)
	f.notifier.EXPECT().NotifyHeld(mock.Anything, mock.Anything).Return().Times(3)

	res, err := f.svc.Materialize(context.Background(), seriesInput(true))

	require.NoError(t, err)
	require.Len(t, res.Created, 3)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, busy, res.Skipped[0].Start)
	for _, r := range res.Created {
		require.NotNil(t, r.SeriesID)
		assert.Equal(t, res.SeriesID, *r.SeriesID)
		assert.Equal(t, domain.StatusHold, r.Status)
		assert.Equal(t, int64(1500), r.TotalCents)
	}

	time.Sleep(50 * time.Millisecond)
}

func TestRecurrenceService_Materialize_BatchConflict(t *testing.T) {
	f := newRecurrenceFixture(t)

	f.courts.EXPECT().GetByID(mock.Anything, "A").Return(activeCourt("A"), nil)
	f.rates.EXPECT().List(mock.Anything).Return(testRules(), nil)
	f.reservations.EXPECT().HasConflict(mock.Anything, "A", mock.Anything, mock.Anything, "", t0).Return(false, nil)
	f.reservations.EXPECT().CreateBatch(mock.Anything, mock.Anything, t0, false).Return(nil, domain.ErrConflict)

	_, err := f.svc.Materialize(context.Background(), seriesInput(false))

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestRecurrenceService_Materialize_SkipsSlotTakenDuringInsert(t *testing.T) {
	f := newRecurrenceFixture(t)
	taken := time.Date(2026, 10, 27, 10, 0, 0, 0, time.UTC)

	f.courts.EXPECT().GetByID(mock.Anything, "A").Return(activeCourt("A"), nil)
	f.rates.EXPECT().List(mock.Anything).Return(testRules(), nil)
	f.reservations.EXPECT().HasConflict(mock.Anything, "A", mock.Anything, mock.Anything, "", t0).Return(false, nil)
	f.reservations.EXPECT().CreateBatch(mock.Anything, mock.Anything, t0, true).
		RunAndReturn(func(_ context.Context, rs []*domain.Reservation, _ time.Time, _ bool) ([]*domain.Reservation, error) {
			require.Len(t, rs, 4)
			for _, r := range rs {
				if r.StartAt.Equal(taken) {
					return []*domain.Reservation{r}, nil
				}
			}
			return nil, nil
		})
	f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Times(3)
	f.notifier.EXPECT().NotifyHeld(mock.Anything, mock.Anything).Return().Times(3)

	res, err := f.svc.Materialize(context.Background(), seriesInput(true))

	require.NoError(t, err)
	require.Len(t, res.Created, 3)
	for _, r := range res.Created {
		assert.NotEqual(t, taken, r.StartAt)
	}
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, taken, res.Skipped[0].Start)
	assert.True(t, res.Skipped[0].Conflict)
	assert.Equal(t, reasonConflict, res.Skipped[0].Reason)

	time.Sleep(50 * time.Millisecond)
}

func TestRecurrenceService_Materialize_EverySlotTakenDuringInsert(t *testing.T) {
	f := newRecurrenceFixture(t)

	f.courts.EXPECT().GetByID(mock.Anything, "A").Return(activeCourt("A"), nil)
	f.rates.EXPECT().List(mock.Anything).Return(testRules(), nil)
	f.reservations.EXPECT().HasConflict(mock.Anything, "A", mock.Anything, mock.Anything, "", t0).Return(false, nil)
	f.reservations.EXPECT().CreateBatch(mock.Anything, mock.Anything, t0, true).
		RunAndReturn(func(_ context.Context, rs []*domain.Reservation, _ time.Time, _ bool) ([]*domain.Reservation, error) {
			return rs, domain.ErrConflict
		})

	_, err := f.svc.Materialize(context.Background(), seriesInput(true))

	assert.ErrorIs(t, err, domain.ErrConflict)
	var seriesErr *domain.SeriesError
	require.True(t, errors.As(err, &seriesErr))
	assert.Len(t, seriesErr.Occurrences, 4)
}

func TestRecurrenceService_Materialize_InvalidPattern(t *testing.T) {
	f := newRecurrenceFixture(t)
	in := seriesInput(false)
	in.Pattern.Count = 0

	f.courts.EXPECT().GetByID(mock.Anything, "A").Return(activeCourt("A"), nil)

	_, err := f.svc.Materialize(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrValidation)
}
