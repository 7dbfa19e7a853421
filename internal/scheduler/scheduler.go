package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type holdExpirer interface {
	ExpireHolds(ctx context.Context) ([]*domain.Reservation, error)
}

// Scheduler periodically sweeps stale holds. Reads expire holds lazily as
// well, so a missed tick only delays the EXPIRED status and its event.
type Scheduler struct {
	reservationService holdExpirer
	interval           time.Duration
	logger             logger.Logger
}

func New(
	reservationService holdExpirer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reservationService: reservationService,
		interval:           interval,
		logger:             logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	expired, err := s.reservationService.ExpireHolds(ctx)
	if err != nil {
		s.logger.Error("failed to expire stale holds",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range expired {
		s.logger.Debug("hold expired",
			logger.String("reservation_id", r.ID),
			logger.String("user_id", r.Owner.UserID),
			logger.Any("court_ids", r.CourtIDs),
		)
	}
}
