package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/CourtBooker/internal/availability"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAvailabilityService_Slots(t *testing.T) {
	reservations := mocks.NewMockReservationRepo(t)
	courts := mocks.NewMockCourtRepo(t)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(t0)

	svc := NewAvailabilityService(reservations, courts, clock, testSettings)

	courts.EXPECT().List(mock.Anything, true).Return([]*domain.Court{activeCourt("A")}, nil)
	reservations.EXPECT().ListOccupying(mock.Anything, tuesday(8, 0), tuesday(22, 0), t0).
		Return([]*domain.Reservation{{
			CourtIDs: []string{"A"},
			StartAt:  tuesday(8, 0),
			EndAt:    tuesday(21, 0),
			Status:   domain.StatusConfirmed,
		}}, nil)

	slots, err := svc.Slots(context.Background(), availability.Query{
		Date:       tuesday(0, 0),
		Duration:   time.Hour,
		CourtCount: 1,
	})

	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, tuesday(21, 0), slots[0].Time)
	assert.Equal(t, []string{"A"}, slots[0].Courts)
}

func TestAvailabilityService_Slots_InvalidQuery(t *testing.T) {
	svc := NewAvailabilityService(mocks.NewMockReservationRepo(t), mocks.NewMockCourtRepo(t), mocks.NewMockClock(t), testSettings)

	_, err := svc.Slots(context.Background(), availability.Query{Date: tuesday(0, 0), CourtCount: 1})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAvailabilityService_Slots_RepoError(t *testing.T) {
	courts := mocks.NewMockCourtRepo(t)
	svc := NewAvailabilityService(mocks.NewMockReservationRepo(t), courts, mocks.NewMockClock(t), testSettings)

	courts.EXPECT().List(mock.Anything, true).Return(nil, errors.New("db error"))

	_, err := svc.Slots(context.Background(), availability.Query{Date: tuesday(0, 0), Duration: time.Hour, CourtCount: 1})

	assert.Error(t, err)
}
