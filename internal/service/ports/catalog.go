package ports

import (
	"context"

	"github.com/stpnv0/CourtBooker/internal/domain"
)

type CourtRepo interface {
	Create(ctx context.Context, c *domain.Court) error
	GetByID(ctx context.Context, id string) (*domain.Court, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Court, error)
	Deactivate(ctx context.Context, id string) error
}

type RateRuleRepo interface {
	Create(ctx context.Context, r *domain.RateRule) error
	Update(ctx context.Context, r *domain.RateRule) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.RateRule, error)
	List(ctx context.Context) ([]*domain.RateRule, error)
}
