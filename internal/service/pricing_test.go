package service

import (
	"context"
	"testing"

	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPricingService_Calculate(t *testing.T) {
	courts := mocks.NewMockCourtRepo(t)
	rates := mocks.NewMockRateRuleRepo(t)
	svc := NewPricingService(courts, rates, testSettings, newTestLogger(t))

	courts.EXPECT().GetByID(mock.Anything, "A").Return(activeCourt("A"), nil)
	rates.EXPECT().List(mock.Anything).Return(testRules(), nil)

	quote, err := svc.Calculate(context.Background(), []string{"A"}, tuesday(9, 0), tuesday(10, 30))

	require.NoError(t, err)
	assert.Equal(t, int64(2250), quote.TotalCents)
	require.Len(t, quote.Breakdown, 1)
	assert.Equal(t, "court-a", quote.Breakdown[0].RuleID)
}

func TestPricingService_Calculate_UnknownCourt(t *testing.T) {
	courts := mocks.NewMockCourtRepo(t)
	svc := NewPricingService(courts, mocks.NewMockRateRuleRepo(t), testSettings, newTestLogger(t))

	courts.EXPECT().GetByID(mock.Anything, "X").Return(nil, domain.ErrCourtNotFound)

	_, err := svc.Calculate(context.Background(), []string{"X"}, tuesday(9, 0), tuesday(10, 0))

	assert.ErrorIs(t, err, domain.ErrCourtNotFound)
}

func TestPricingService_Calculate_NoCourts(t *testing.T) {
	rates := mocks.NewMockRateRuleRepo(t)
	svc := NewPricingService(mocks.NewMockCourtRepo(t), rates, testSettings, newTestLogger(t))

	rates.EXPECT().List(mock.Anything).Return(testRules(), nil)

	_, err := svc.Calculate(context.Background(), nil, tuesday(9, 0), tuesday(10, 0))

	assert.ErrorIs(t, err, domain.ErrValidation)
}
