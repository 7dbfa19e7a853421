package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/service/ports"
)

type CourtService struct {
	repo ports.CourtRepo
}

func NewCourtService(repo ports.CourtRepo) *CourtService {
	return &CourtService{repo: repo}
}

func (s *CourtService) Create(ctx context.Context, input domain.CreateCourtInput) (*domain.Court, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	court := &domain.Court{
		ID:        uuid.New().String(),
		Name:      name,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, court); err != nil {
		return nil, fmt.Errorf("create court: %w", err)
	}

	return court, nil
}

func (s *CourtService) List(ctx context.Context) ([]*domain.Court, error) {
	return s.repo.List(ctx, false)
}

// Deactivate hides the court from availability and new holds. Existing
// reservations keep referencing it.
func (s *CourtService) Deactivate(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Deactivate(ctx, id)
}
