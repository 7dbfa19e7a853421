package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/pricing"
	"github.com/stpnv0/CourtBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type PricingService struct {
	courtRepo ports.CourtRepo
	rateRepo  ports.RateRuleRepo
	settings  domain.ClubSettings
	logger    logger.Logger
}

func NewPricingService(courtRepo ports.CourtRepo, rateRepo ports.RateRuleRepo, settings domain.ClubSettings, logger logger.Logger) *PricingService {
	return &PricingService{
		courtRepo: courtRepo,
		rateRepo:  rateRepo,
		settings:  settings,
		logger:    logger,
	}
}

func (s *PricingService) Calculate(ctx context.Context, courtIDs []string, start, end time.Time) (*pricing.Quote, error) {
	ids := dedupe(courtIDs)
	for _, id := range ids {
		if _, err := s.courtRepo.GetByID(ctx, id); err != nil {
			return nil, fmt.Errorf("get court: %w", err)
		}
	}

	rules, err := s.rateRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rate rules: %w", err)
	}

	quote, err := pricing.ResolveMany(rules, s.settings, ids, start, end)
	if err != nil {
		return nil, err
	}
	if len(quote.Warnings) > 0 {
		s.logger.Warn("price calculated over overlapping rules",
			logger.Any("warnings", quote.Warnings),
		)
	}
	return quote, nil
}
