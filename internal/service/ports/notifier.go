package ports

import (
	"context"
	"time"

	"github.com/stpnv0/CourtBooker/internal/domain"
)

type ReservationNotifier interface {
	NotifyHeld(ctx context.Context, r *domain.Reservation)
	NotifyConfirmed(ctx context.Context, r *domain.Reservation)
	NotifyCancelled(ctx context.Context, r *domain.Reservation)
	NotifyExpired(ctx context.Context, r *domain.Reservation)
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.ReservationEvent) error
}

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
