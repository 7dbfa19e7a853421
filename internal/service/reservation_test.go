package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/service/ports"
	"github.com/stpnv0/CourtBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

// 2026-10-19 is a Monday.
var t0 = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

var testSettings = domain.ClubSettings{
	Location:       time.UTC,
	OpenFrom:       8 * 60,
	OpenTo:         22 * 60,
	Granularity:    30 * time.Minute,
	HoldTTL:        10 * time.Minute,
	MaxPartySize:   8,
	MaxOccurrences: 52,
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func tuesday(hh, mm int) time.Time {
	return time.Date(2026, 10, 20, hh, mm, 0, 0, time.UTC)
}

func testRules() []*domain.RateRule {
	courtA := "A"
	weekdays := []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}
	return []*domain.RateRule{
		{ID: "global", HourlyRateCents: 1000, Weekdays: weekdays, StartTime: 9 * 60, EndTime: 14 * 60, CreatedAt: t0},
		{ID: "court-a", CourtID: &courtA, HourlyRateCents: 1500, Weekdays: weekdays, StartTime: 9 * 60, EndTime: 14 * 60, CreatedAt: t0},
	}
}

type reservationFixture struct {
	reservations *mocks.MockReservationRepo
	courts       *mocks.MockCourtRepo
	rates        *mocks.MockRateRuleRepo
	notifier     *mocks.MockReservationNotifier
	publisher    *mocks.MockEventPublisher
	clock        *mocks.MockClock
	svc          *ReservationService
}

func newReservationFixture(t *testing.T, now time.Time) *reservationFixture {
	t.Helper()
	f := &reservationFixture{
		reservations: mocks.NewMockReservationRepo(t),
		courts:       mocks.NewMockCourtRepo(t),
		rates:        mocks.NewMockRateRuleRepo(t),
		notifier:     mocks.NewMockReservationNotifier(t),
		publisher:    mocks.NewMockEventPublisher(t),
		clock:        mocks.NewMockClock(t),
	}
	f.clock.EXPECT().Now().Return(now).Maybe()
	f.svc = NewReservationService(f.reservations, f.courts, f.rates, f.notifier, f.publisher, f.clock, testSettings, newTestLogger(t))
	return f
}

func (f *reservationFixture) expectEvent(typ domain.EventType) {
	f.publisher.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(e domain.ReservationEvent) bool { return e.Type == typ })).
		Return(nil).Once()
}

func activeCourt(id string) *domain.Court {
	return &domain.Court{ID: id, Name: "Court " + id, Active: true}
}

func clone(r *domain.Reservation) *domain.Reservation {
	cp := *r
	cp.Shares = make([]*domain.Share, len(r.Shares))
	for i, s := range r.Shares {
		sc := *s
		cp.Shares[i] = &sc
	}
	return &cp
}

// transitionOn emulates the repository: fn runs on a copy that is kept only
// when fn succeeds.
func transitionOn(stored *domain.Reservation) func(context.Context, string, ports.TransitionFunc) (*domain.Reservation, error) {
	return func(_ context.Context, id string, fn ports.TransitionFunc) (*domain.Reservation, error) {
		if id != stored.ID {
			return nil, domain.ErrReservationNotFound
		}
		cp := clone(stored)
		if err := fn(cp); err != nil {
			return nil, err
		}
		*stored = *cp
		return clone(stored), nil
	}
}

func holdInput() domain.HoldInput {
	return domain.HoldInput{
		CourtIDs:      []string{"A"},
		StartAt:       tuesday(9, 0),
		EndAt:         tuesday(10, 30),
		Owner:         domain.Owner{UserID: "u1"},
		PaymentMethod: domain.PaymentCash,
	}
}

func TestReservationService_CreateHold_Success(t *testing.T) {
	f := newReservationFixture(t, t0)

	f.courts.EXPECT().GetByID(mock.Anything, "A").Return(activeCourt("A"), nil)
	f.rates.EXPECT().List(mock.Anything).Return(testRules(), nil)
	f.reservations.EXPECT().CreateHold(mock.Anything, mock.AnythingOfType("*domain.Reservation"), t0).Return(nil)
	f.expectEvent(domain.EventHeld)
	f.notifier.EXPECT().NotifyHeld(mock.Anything, mock.Anything).Return()

	r, err := f.svc.CreateHold(context.Background(), holdInput())

	require.NoError(t, err)
	assert.Equal(t, domain.StatusHold, r.Status)
	assert.Equal(t, int64(2250), r.TotalCents)
	assert.Equal(t, []string{"A"}, r.CourtIDs)
	assert.Equal(t, 1, r.PartySize)
	require.NotNil(t, r.HoldExpiresAt)
	assert.Equal(t, t0.Add(10*time.Minute), *r.HoldExpiresAt)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_CreateHold_MultiCourtDedupes(t *testing.T) {
	f := newReservationFixture(t, t0)
	in := holdInput()
	in.CourtIDs = []string{"B", "A", "B"}
	expected := int64(2250 + 1500)
	in.ExpectedTotal = &expected

	f.courts.EXPECT().GetByID(mock.Anything, "A").Return(activeCourt("A"), nil)
	f.courts.EXPECT().GetByID(mock.Anything, "B").Return(activeCourt("B"), nil)
	f.rates.EXPECT().List(mock.Anything).Return(testRules(), nil)
	f.reservations.EXPECT().CreateHold(mock.Anything, mock.Anything, t0).Return(nil)
	f.expectEvent(domain.EventHeld)
	f.notifier.EXPECT().NotifyHeld(mock.Anything, mock.Anything).Return()

	r, err := f.svc.CreateHold(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, r.CourtIDs)
	assert.Equal(t, expected, r.TotalCents)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_CreateHold_Conflict(t *testing.T) {
	f := newReservationFixture(t, t0)

	f.courts.EXPECT().GetByID(mock.Anything, "A").Return(activeCourt("A"), nil)
	f.rates.EXPECT().List(mock.Anything).Return(testRules(), nil)
	f.reservations.EXPECT().CreateHold(mock.Anything, mock.Anything, t0).Return(domain.ErrConflict)

	_, err := f.svc.CreateHold(context.Background(), holdInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestReservationService_CreateHold_PriceChanged(t *testing.T) {
	f := newReservationFixture(t, t0)
	in := holdInput()
	stale := int64(2000)
	in.ExpectedTotal = &stale

	f.courts.EXPECT().GetByID(mock.Anything, "A").Return(activeCourt("A"), nil)
	f.rates.EXPECT().List(mock.Anything).Return(testRules(), nil)

	_, err := f.svc.CreateHold(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_CreateHold_PricingUnavailable(t *testing.T) {
	f := newReservationFixture(t, t0)
	in := holdInput()
	// Saturday has no rules and there is no default rate
	in.StartAt = time.Date(2026, 10, 24, 9, 0, 0, 0, time.UTC)
	in.EndAt = in.StartAt.Add(time.Hour)

	f.courts.EXPECT().GetByID(mock.Anything, "A").Return(activeCourt("A"), nil)
	f.rates.EXPECT().List(mock.Anything).Return(testRules(), nil)

	_, err := f.svc.CreateHold(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrPricingUnavailable)
}

func TestReservationService_CreateHold_Validation(t *testing.T) {
	cases := map[string]func(in *domain.HoldInput){
		"outside hours":   func(in *domain.HoldInput) { in.StartAt, in.EndAt = tuesday(6, 0), tuesday(7, 0) },
		"past":            func(in *domain.HoldInput) { in.StartAt, in.EndAt = t0.Add(-time.Hour), t0 },
		"inverted":        func(in *domain.HoldInput) { in.EndAt = in.StartAt },
		"unknown method":  func(in *domain.HoldInput) { in.PaymentMethod = "barter" },
		"party too large": func(in *domain.HoldInput) { in.PartySize = 9 },
		"anonymous":       func(in *domain.HoldInput) { in.Owner = domain.Owner{} },
		"no courts":       func(in *domain.HoldInput) { in.CourtIDs = nil },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			f := newReservationFixture(t, t0)
			in := holdInput()
			mutate(&in)

			_, err := f.svc.CreateHold(context.Background(), in)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestReservationService_CreateHold_InactiveCourt(t *testing.T) {
	f := newReservationFixture(t, t0)

	f.courts.EXPECT().GetByID(mock.Anything, "A").Return(&domain.Court{ID: "A", Name: "Court A"}, nil)

	_, err := f.svc.CreateHold(context.Background(), holdInput())

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_CreateHold_CourtNotFound(t *testing.T) {
	f := newReservationFixture(t, t0)

	f.courts.EXPECT().GetByID(mock.Anything, "A").Return(nil, domain.ErrCourtNotFound)

	_, err := f.svc.CreateHold(context.Background(), holdInput())

	assert.ErrorIs(t, err, domain.ErrCourtNotFound)
}

func newStoredHold(method domain.PaymentMethod, partySize int) *domain.Reservation {
	return domain.NewHold([]string{"A"}, domain.Owner{UserID: "u1"}, tuesday(9, 0), tuesday(10, 0),
		1000, method, partySize, testSettings.HoldTTL, t0)
}

func TestReservationService_Confirm_Cash(t *testing.T) {
	f := newReservationFixture(t, t0.Add(time.Minute))
	stored := newStoredHold(domain.PaymentCash, 1)

	f.reservations.EXPECT().Transition(mock.Anything, stored.ID, mock.Anything).RunAndReturn(transitionOn(stored))
	f.expectEvent(domain.EventConfirmed)
	f.notifier.EXPECT().NotifyConfirmed(mock.Anything, mock.Anything).Return()

	r, err := f.svc.Confirm(context.Background(), stored.ID, domain.PaymentCash)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, r.Status)

	// confirming twice is a no-op and emits nothing
	r, err = f.svc.Confirm(context.Background(), stored.ID, domain.PaymentCash)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, r.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Confirm_ExpiredHold(t *testing.T) {
	f := newReservationFixture(t, t0.Add(601*time.Second))
	stored := newStoredHold(domain.PaymentCash, 1)

	f.reservations.EXPECT().Transition(mock.Anything, stored.ID, mock.Anything).RunAndReturn(transitionOn(stored)).Times(2)
	f.expectEvent(domain.EventExpired)
	f.notifier.EXPECT().NotifyExpired(mock.Anything, mock.Anything).Return()

	_, err := f.svc.Confirm(context.Background(), stored.ID, domain.PaymentCash)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrHoldExpired)
	assert.Equal(t, domain.StatusExpired, stored.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Confirm_SlotRetakenAtExpiry(t *testing.T) {
	f := newReservationFixture(t, t0.Add(10*time.Minute-time.Millisecond))
	stored := newStoredHold(domain.PaymentCash, 1)

	// хранилище отказывает: слот уже отдан другому холду
	f.reservations.EXPECT().Transition(mock.Anything, stored.ID, mock.Anything).
		Return(nil, fmt.Errorf("%w: %v", domain.ErrHoldExpired, domain.ErrConflict)).Once()
	f.reservations.EXPECT().Transition(mock.Anything, stored.ID, mock.Anything).
		RunAndReturn(transitionOn(stored)).Once()

	_, err := f.svc.Confirm(context.Background(), stored.ID, domain.PaymentCash)

	assert.ErrorIs(t, err, domain.ErrHoldExpired)
	assert.Equal(t, domain.StatusHold, stored.Status)
}

func TestReservationService_Confirm_NotFound(t *testing.T) {
	f := newReservationFixture(t, t0)

	f.reservations.EXPECT().Transition(mock.Anything, "missing", mock.Anything).Return(nil, domain.ErrReservationNotFound)

	_, err := f.svc.Confirm(context.Background(), "missing", domain.PaymentCash)

	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestReservationService_SplitPaymentFlow(t *testing.T) {
	f := newReservationFixture(t, t0.Add(time.Minute))
	stored := newStoredHold(domain.PaymentSplit, 2)

	f.reservations.EXPECT().Transition(mock.Anything, stored.ID, mock.Anything).RunAndReturn(transitionOn(stored))
	f.expectEvent(domain.EventConfirmed)
	f.notifier.EXPECT().NotifyConfirmed(mock.Anything, mock.Anything).Return()

	share, r, err := f.svc.Join(context.Background(), stored.ID, domain.Participant{UserID: "u2"})
	require.NoError(t, err)
	assert.Equal(t, int64(500), share.AmountCents)
	assert.Len(t, r.Shares, 2)

	r, err = f.svc.Confirm(context.Background(), stored.ID, domain.PaymentSplit)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPendingPayment, r.Status)

	r, err = f.svc.MarkSharePaid(context.Background(), stored.ID, r.Shares[0].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPendingPayment, r.Status)

	r, err = f.svc.MarkSharePaid(context.Background(), stored.ID, share.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, r.Status)

	// a replayed payment signal changes nothing
	r, err = f.svc.MarkSharePaid(context.Background(), stored.ID, share.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, r.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Join_Full(t *testing.T) {
	f := newReservationFixture(t, t0)
	stored := newStoredHold(domain.PaymentSplit, 1)

	f.reservations.EXPECT().Transition(mock.Anything, stored.ID, mock.Anything).RunAndReturn(transitionOn(stored))

	_, _, err := f.svc.Join(context.Background(), stored.ID, domain.Participant{UserID: "u2"})

	assert.ErrorIs(t, err, domain.ErrSharesFull)
	assert.Len(t, stored.Shares, 1)
}

func TestReservationService_Cancel_Idempotent(t *testing.T) {
	f := newReservationFixture(t, t0)
	stored := newStoredHold(domain.PaymentCash, 1)

	f.reservations.EXPECT().Transition(mock.Anything, stored.ID, mock.Anything).RunAndReturn(transitionOn(stored))
	f.expectEvent(domain.EventCancelled)
	f.notifier.EXPECT().NotifyCancelled(mock.Anything, mock.Anything).Return().Once()

	r, err := f.svc.Cancel(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, r.Status)

	r, err = f.svc.Cancel(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, r.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Cancel_Confirmed(t *testing.T) {
	f := newReservationFixture(t, t0)
	stored := newStoredHold(domain.PaymentCash, 1)
	require.NoError(t, stored.Confirm(domain.PaymentCash, t0))

	f.reservations.EXPECT().Transition(mock.Anything, stored.ID, mock.Anything).RunAndReturn(transitionOn(stored))

	_, err := f.svc.Cancel(context.Background(), stored.ID)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestReservationService_Get_ExpiresLazily(t *testing.T) {
	f := newReservationFixture(t, t0.Add(11*time.Minute))
	stored := newStoredHold(domain.PaymentCash, 1)

	f.reservations.EXPECT().GetByID(mock.Anything, stored.ID).Return(clone(stored), nil)
	f.reservations.EXPECT().Transition(mock.Anything, stored.ID, mock.Anything).RunAndReturn(transitionOn(stored))
	f.expectEvent(domain.EventExpired)
	f.notifier.EXPECT().NotifyExpired(mock.Anything, mock.Anything).Return()

	r, err := f.svc.Get(context.Background(), stored.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusExpired, r.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Get_LiveHold(t *testing.T) {
	f := newReservationFixture(t, t0.Add(5*time.Minute))
	stored := newStoredHold(domain.PaymentCash, 1)

	f.reservations.EXPECT().GetByID(mock.Anything, stored.ID).Return(clone(stored), nil)

	r, err := f.svc.Get(context.Background(), stored.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusHold, r.Status)
}

func TestReservationService_ListByUser_ExpiresLapsedHolds(t *testing.T) {
	f := newReservationFixture(t, t0.Add(11*time.Minute))
	lapsed := newStoredHold(domain.PaymentCash, 1)
	confirmed := newStoredHold(domain.PaymentCash, 1)
	require.NoError(t, confirmed.Confirm(domain.PaymentCash, t0.Add(time.Minute)))

	f.reservations.EXPECT().ListByUser(mock.Anything, "u1").
		Return([]*domain.Reservation{clone(lapsed), clone(confirmed)}, nil)
	f.reservations.EXPECT().Transition(mock.Anything, lapsed.ID, mock.Anything).RunAndReturn(transitionOn(lapsed))
	f.expectEvent(domain.EventExpired)
	f.notifier.EXPECT().NotifyExpired(mock.Anything, mock.Anything).Return()

	rs, err := f.svc.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, rs, 2)
	assert.Equal(t, domain.StatusExpired, rs[0].Status)
	assert.Equal(t, domain.StatusConfirmed, rs[1].Status)
	assert.Equal(t, domain.StatusExpired, lapsed.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_ListByUser_ExpireFailureStillReportsExpired(t *testing.T) {
	f := newReservationFixture(t, t0.Add(11*time.Minute))
	lapsed := newStoredHold(domain.PaymentCash, 1)

	f.reservations.EXPECT().ListByUser(mock.Anything, "u1").Return([]*domain.Reservation{clone(lapsed)}, nil)
	f.reservations.EXPECT().Transition(mock.Anything, lapsed.ID, mock.Anything).Return(nil, errors.New("db down"))

	rs, err := f.svc.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, rs, 1)
	assert.Equal(t, domain.StatusExpired, rs[0].Status)
	assert.Nil(t, rs[0].HoldExpiresAt)
}

func TestReservationService_Expire(t *testing.T) {
	t.Run("stale hold", func(t *testing.T) {
		f := newReservationFixture(t, t0.Add(11*time.Minute))
		stored := newStoredHold(domain.PaymentCash, 1)

		f.reservations.EXPECT().Transition(mock.Anything, stored.ID, mock.Anything).RunAndReturn(transitionOn(stored))
		f.expectEvent(domain.EventExpired)
		f.notifier.EXPECT().NotifyExpired(mock.Anything, mock.Anything).Return()

		r, err := f.svc.Expire(context.Background(), stored.ID)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusExpired, r.Status)
		assert.Nil(t, r.HoldExpiresAt)

		time.Sleep(50 * time.Millisecond)
	})

	t.Run("live hold is left alone", func(t *testing.T) {
		f := newReservationFixture(t, t0.Add(time.Minute))
		stored := newStoredHold(domain.PaymentCash, 1)

		f.reservations.EXPECT().Transition(mock.Anything, stored.ID, mock.Anything).RunAndReturn(transitionOn(stored))

		r, err := f.svc.Expire(context.Background(), stored.ID)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusHold, r.Status)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newReservationFixture(t, t0)

		f.reservations.EXPECT().Transition(mock.Anything, "missing", mock.Anything).Return(nil, domain.ErrReservationNotFound)

		_, err := f.svc.Expire(context.Background(), "missing")

		assert.ErrorIs(t, err, domain.ErrReservationNotFound)
	})
}

func TestReservationService_ExpireHolds(t *testing.T) {
	f := newReservationFixture(t, t0)
	expired := []*domain.Reservation{
		{ID: "r1", Status: domain.StatusExpired},
		{ID: "r2", Status: domain.StatusExpired},
	}

	f.reservations.EXPECT().ExpireHolds(mock.Anything, t0).Return(expired, nil)
	f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Times(2)
	f.notifier.EXPECT().NotifyExpired(mock.Anything, mock.Anything).Return().Times(2)

	got, err := f.svc.ExpireHolds(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_ExpireHolds_Error(t *testing.T) {
	f := newReservationFixture(t, t0)

	f.reservations.EXPECT().ExpireHolds(mock.Anything, t0).Return(nil, errors.New("db error"))

	_, err := f.svc.ExpireHolds(context.Background())

	assert.Error(t, err)
}

func TestReservationService_PublishFailureIsNotFatal(t *testing.T) {
	f := newReservationFixture(t, t0)
	stored := newStoredHold(domain.PaymentCash, 1)

	f.reservations.EXPECT().Transition(mock.Anything, stored.ID, mock.Anything).RunAndReturn(transitionOn(stored))
	f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("broker down"))
	f.notifier.EXPECT().NotifyCancelled(mock.Anything, mock.Anything).Return()

	r, err := f.svc.Cancel(context.Background(), stored.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, r.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_WithoutPublisher(t *testing.T) {
	reservations := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(t0).Maybe()
	svc := NewReservationService(reservations, mocks.NewMockCourtRepo(t), mocks.NewMockRateRuleRepo(t),
		notifier, nil, clock, testSettings, newTestLogger(t))
	stored := newStoredHold(domain.PaymentCash, 1)

	reservations.EXPECT().Transition(mock.Anything, stored.ID, mock.Anything).RunAndReturn(transitionOn(stored))
	notifier.EXPECT().NotifyCancelled(mock.Anything, mock.Anything).Return()

	_, err := svc.Cancel(context.Background(), stored.ID)

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_ConfirmSeries(t *testing.T) {
	f := newReservationFixture(t, t0.Add(time.Minute))
	seriesID := "s1"
	live := newStoredHold(domain.PaymentCash, 1)
	live.SeriesID = &seriesID
	cancelled := newStoredHold(domain.PaymentCash, 1)
	cancelled.SeriesID = &seriesID
	cancelled.Status = domain.StatusCancelled

	f.reservations.EXPECT().ListBySeries(mock.Anything, seriesID).Return([]*domain.Reservation{clone(live), cancelled}, nil)
	f.reservations.EXPECT().Transition(mock.Anything, live.ID, mock.Anything).RunAndReturn(transitionOn(live))
	f.expectEvent(domain.EventConfirmed)
	f.notifier.EXPECT().NotifyConfirmed(mock.Anything, mock.Anything).Return()

	got, err := f.svc.ConfirmSeries(context.Background(), seriesID, domain.PaymentCash)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, live.ID, got[0].ID)
	assert.Equal(t, domain.StatusConfirmed, got[0].Status)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_ConfirmSeries_Unknown(t *testing.T) {
	f := newReservationFixture(t, t0)

	f.reservations.EXPECT().ListBySeries(mock.Anything, "nope").Return(nil, nil)

	_, err := f.svc.ConfirmSeries(context.Background(), "nope", domain.PaymentCash)

	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}
