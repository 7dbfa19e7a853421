package ports

import (
	"context"
	"time"

	"github.com/stpnv0/CourtBooker/internal/domain"
)

// TransitionFunc mutates a locked reservation. Returning an error rolls the
// transition back.
type TransitionFunc func(r *domain.Reservation) error

type ReservationRepo interface {
	CreateHold(ctx context.Context, r *domain.Reservation, now time.Time) error
	// CreateBatch returns the reservations left out because their slot was
	// taken; with skipConflicts false any taken slot fails the whole batch.
	CreateBatch(ctx context.Context, rs []*domain.Reservation, now time.Time, skipConflicts bool) ([]*domain.Reservation, error)
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	Transition(ctx context.Context, id string, fn TransitionFunc) (*domain.Reservation, error)
	HasConflict(ctx context.Context, courtID string, start, end time.Time, excludeID string, now time.Time) (bool, error)
	ListOccupying(ctx context.Context, from, to, now time.Time) ([]*domain.Reservation, error)
	ExpireHolds(ctx context.Context, now time.Time) ([]*domain.Reservation, error)
	ListBySeries(ctx context.Context, seriesID string) ([]*domain.Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error)
}
