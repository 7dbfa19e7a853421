package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/CourtBooker/internal/availability"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/service/ports"
)

type AvailabilityService struct {
	reservationRepo ports.ReservationRepo
	courtRepo       ports.CourtRepo
	clock           ports.Clock
	settings        domain.ClubSettings
}

func NewAvailabilityService(
	reservationRepo ports.ReservationRepo,
	courtRepo ports.CourtRepo,
	clock ports.Clock,
	settings domain.ClubSettings,
) *AvailabilityService {
	return &AvailabilityService{
		reservationRepo: reservationRepo,
		courtRepo:       courtRepo,
		clock:           clock,
		settings:        settings,
	}
}

// Slots loads the day's occupancy in one query and enumerates free starts.
func (s *AvailabilityService) Slots(ctx context.Context, q availability.Query) ([]availability.Slot, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	courts, err := s.courtRepo.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("list courts: %w", err)
	}

	now := s.clock.Now()
	from, to := availability.DayBounds(s.settings, q.Date)
	occupancy, err := s.reservationRepo.ListOccupying(ctx, from, to, now)
	if err != nil {
		return nil, fmt.Errorf("list occupancy: %w", err)
	}

	return availability.Slots(s.settings, courts, occupancy, q, now)
}
