package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type RateRuleService struct {
	repo      ports.RateRuleRepo
	courtRepo ports.CourtRepo
	logger    logger.Logger
}

func NewRateRuleService(repo ports.RateRuleRepo, courtRepo ports.CourtRepo, logger logger.Logger) *RateRuleService {
	return &RateRuleService{
		repo:      repo,
		courtRepo: courtRepo,
		logger:    logger,
	}
}

func (s *RateRuleService) Create(ctx context.Context, input domain.RateRuleInput) (*domain.RateRule, error) {
	now := time.Now().UTC()
	rule := &domain.RateRule{ID: uuid.New().String(), CreatedAt: now}
	if err := s.apply(ctx, rule, input, now); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, rule); err != nil {
		return nil, fmt.Errorf("create rate rule: %w", err)
	}

	s.logger.Info("rate rule created",
		logger.String("rule_id", rule.ID),
		logger.String("scope", rule.Scope().String()),
		logger.Int64("hourly_rate_cents", rule.HourlyRateCents),
	)
	s.warnOverlaps(ctx, rule)
	return rule, nil
}

func (s *RateRuleService) Update(ctx context.Context, id string, input domain.RateRuleInput) (*domain.RateRule, error) {
	rule, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = s.apply(ctx, rule, input, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = s.repo.Update(ctx, rule); err != nil {
		return nil, fmt.Errorf("update rate rule: %w", err)
	}

	s.logger.Info("rate rule updated", logger.String("rule_id", rule.ID))
	s.warnOverlaps(ctx, rule)
	return rule, nil
}

func (s *RateRuleService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("rate rule deleted", logger.String("rule_id", id))
	return nil
}

// List returns every rule with the ids of the rules it overlaps at the same
// specificity.
func (s *RateRuleService) List(ctx context.Context) ([]domain.RateRuleReport, error) {
	rules, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rate rules: %w", err)
	}

	overlaps := domain.RuleOverlaps(rules)
	out := make([]domain.RateRuleReport, 0, len(rules))
	for _, r := range rules {
		with := overlaps[r.ID]
		if with == nil {
			with = []string{}
		}
		out = append(out, domain.RateRuleReport{RateRule: r, OverlapsWith: with})
	}
	return out, nil
}

func (s *RateRuleService) apply(ctx context.Context, rule *domain.RateRule, input domain.RateRuleInput, now time.Time) error {
	start, err := domain.ParseTimeOfDay(input.StartTime)
	if err != nil {
		return err
	}
	end, err := domain.ParseTimeOfDay(input.EndTime)
	if err != nil {
		return err
	}

	courtID := input.CourtID
	if courtID != nil && *courtID == "" {
		courtID = nil
	}
	if courtID != nil {
		if _, err = s.courtRepo.GetByID(ctx, *courtID); err != nil {
			return fmt.Errorf("get court: %w", err)
		}
	}

	rule.CourtID = courtID
	rule.HourlyRateCents = input.HourlyRateCents
	rule.Weekdays = input.Weekdays
	rule.StartTime = start
	rule.EndTime = end
	rule.UpdatedAt = now
	return rule.Validate()
}

func (s *RateRuleService) warnOverlaps(ctx context.Context, rule *domain.RateRule) {
	rules, err := s.repo.List(ctx)
	if err != nil {
		return
	}
	if ids := domain.RuleOverlaps(rules)[rule.ID]; len(ids) > 0 {
		s.logger.Warn("rate rule overlaps existing rules",
			logger.String("rule_id", rule.ID),
			logger.Any("overlaps_with", ids),
		)
	}
}
