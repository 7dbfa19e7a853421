package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/pricing"
	"github.com/stpnv0/CourtBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"go.opentelemetry.io/otel/attribute"
)

type ReservationService struct {
	reservationRepo ports.ReservationRepo
	courtRepo       ports.CourtRepo
	rateRepo        ports.RateRuleRepo
	notifier        ports.ReservationNotifier
	publisher       ports.EventPublisher
	clock           ports.Clock
	settings        domain.ClubSettings
	logger          logger.Logger
}

// NewReservationService wires the state machine. publisher may be nil when
// messaging is disabled.
func NewReservationService(
	reservationRepo ports.ReservationRepo,
	courtRepo ports.CourtRepo,
	rateRepo ports.RateRuleRepo,
	notifier ports.ReservationNotifier,
	publisher ports.EventPublisher,
	clock ports.Clock,
	settings domain.ClubSettings,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		courtRepo:       courtRepo,
		rateRepo:        rateRepo,
		notifier:        notifier,
		publisher:       publisher,
		clock:           clock,
		settings:        settings,
		logger:          logger,
	}
}

func (s *ReservationService) CreateHold(ctx context.Context, in domain.HoldInput) (res *domain.Reservation, err error) {
	ctx, span := tracer.Start(ctx, "ReservationService.CreateHold")
	defer func() { endSpan(span, err) }()

	now := s.clock.Now()
	courtIDs, err := s.validateHold(ctx, &in, now)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.StringSlice("court_ids", courtIDs),
		attribute.String("start_at", in.StartAt.String()),
	)

	rules, err := s.rateRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rate rules: %w", err)
	}
	quote, err := pricing.ResolveMany(rules, s.settings, courtIDs, in.StartAt, in.EndAt)
	if err != nil {
		return nil, err
	}
	for _, w := range quote.Warnings {
		s.logger.Warn("rate rule overlap", logger.String("warning", w))
	}
	if in.ExpectedTotal != nil && *in.ExpectedTotal != quote.TotalCents {
		return nil, fmt.Errorf("%w: price changed from %d to %d", domain.ErrValidation, *in.ExpectedTotal, quote.TotalCents)
	}

	hold := domain.NewHold(courtIDs, in.Owner, in.StartAt, in.EndAt, quote.TotalCents,
		in.PaymentMethod, in.PartySize, s.settings.HoldTTL, now)
	if err = s.reservationRepo.CreateHold(ctx, hold, now); err != nil {
		return nil, fmt.Errorf("create hold: %w", err)
	}

	s.logger.Info("hold created",
		logger.String("reservation_id", hold.ID),
		logger.Any("court_ids", courtIDs),
		logger.String("start_at", hold.StartAt.Format("2006-01-02T15:04")),
		logger.Int64("total_cents", hold.TotalCents),
	)
	s.emit(ctx, domain.EventHeld, hold)

	return hold, nil
}

// validateHold normalises the input in place and returns the distinct,
// sorted court ids.
func (s *ReservationService) validateHold(ctx context.Context, in *domain.HoldInput, now time.Time) ([]string, error) {
	if err := domain.ValidateInterval(in.StartAt, in.EndAt); err != nil {
		return nil, err
	}
	if in.StartAt.Before(now) {
		return nil, fmt.Errorf("%w: start is in the past", domain.ErrValidation)
	}
	if !s.settings.WithinOperatingHours(in.StartAt, in.EndAt) {
		return nil, fmt.Errorf("%w: outside operating hours %s-%s",
			domain.ErrValidation, s.settings.OpenFrom, s.settings.OpenTo)
	}
	if in.PaymentMethod == "" {
		in.PaymentMethod = domain.PaymentCash
	}
	if !in.PaymentMethod.Valid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", domain.ErrValidation, in.PaymentMethod)
	}
	if in.PartySize == 0 {
		in.PartySize = 1
	}
	if in.PartySize < 1 || (s.settings.MaxPartySize > 0 && in.PartySize > s.settings.MaxPartySize) {
		return nil, fmt.Errorf("%w: party size must be between 1 and %d", domain.ErrValidation, s.settings.MaxPartySize)
	}
	if in.Owner.UserID == "" && in.Owner.GuestName == "" {
		return nil, fmt.Errorf("%w: user id or guest name is required", domain.ErrValidation)
	}

	ids := dedupe(in.CourtIDs)
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: at least one court is required", domain.ErrValidation)
	}
	for _, id := range ids {
		if err := s.ensureActiveCourt(ctx, id); err != nil {
			return nil, err
		}
	}
	return ids, nil
}

func (s *ReservationService) ensureActiveCourt(ctx context.Context, id string) error {
	court, err := s.courtRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get court: %w", err)
	}
	if !court.Active {
		return fmt.Errorf("%w: court %s is not active", domain.ErrValidation, court.Name)
	}
	return nil
}

func (s *ReservationService) Confirm(ctx context.Context, id string, method domain.PaymentMethod) (*domain.Reservation, error) {
	now := s.clock.Now()
	var before domain.ReservationStatus

	r, err := s.reservationRepo.Transition(ctx, id, func(r *domain.Reservation) error {
		before = r.Status
		return r.Confirm(method, now)
	})
	if errors.Is(err, domain.ErrHoldExpired) {
		s.expire(ctx, id)
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("confirm reservation: %w", err)
	}

	s.logger.Info("reservation confirmed",
		logger.String("reservation_id", r.ID),
		logger.String("status", string(r.Status)),
		logger.String("payment_method", string(method)),
	)
	if before != domain.StatusConfirmed && r.Status == domain.StatusConfirmed {
		s.emit(ctx, domain.EventConfirmed, r)
	}
	return r, nil
}

// Get returns the reservation, expiring a stale hold first.
func (s *ReservationService) Get(ctx context.Context, id string) (*domain.Reservation, error) {
	r, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	if r.IsHoldExpired(s.clock.Now()) {
		if expired := s.expire(ctx, id); expired != nil {
			return expired, nil
		}
	}
	return r, nil
}

func (s *ReservationService) Cancel(ctx context.Context, id string) (*domain.Reservation, error) {
	now := s.clock.Now()
	var changed bool

	r, err := s.reservationRepo.Transition(ctx, id, func(r *domain.Reservation) error {
		var err error
		changed, err = r.Cancel(now)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("cancel reservation: %w", err)
	}

	if changed {
		s.logger.Info("reservation cancelled", logger.String("reservation_id", r.ID))
		s.emit(ctx, domain.EventCancelled, r)
	}
	return r, nil
}

func (s *ReservationService) Join(ctx context.Context, id string, p domain.Participant) (*domain.Share, *domain.Reservation, error) {
	now := s.clock.Now()
	var share *domain.Share

	r, err := s.reservationRepo.Transition(ctx, id, func(r *domain.Reservation) error {
		var err error
		share, err = r.Join(p, now)
		return err
	})
	if errors.Is(err, domain.ErrHoldExpired) {
		s.expire(ctx, id)
		return nil, nil, err
	}
	if err != nil {
		return nil, nil, fmt.Errorf("join reservation: %w", err)
	}

	s.logger.Info("participant joined",
		logger.String("reservation_id", r.ID),
		logger.String("share_id", share.ID),
		logger.Int("shares", len(r.Shares)),
	)
	return share, r, nil
}

// MarkSharePaid applies a payment signal. Repeated signals are no-ops.
func (s *ReservationService) MarkSharePaid(ctx context.Context, id, shareID string) (*domain.Reservation, error) {
	now := s.clock.Now()
	var changed bool

	r, err := s.reservationRepo.Transition(ctx, id, func(r *domain.Reservation) error {
		var err error
		changed, err = r.MarkSharePaid(shareID, now)
		return err
	})
	if errors.Is(err, domain.ErrHoldExpired) {
		s.expire(ctx, id)
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("mark share paid: %w", err)
	}

	if changed {
		s.logger.Info("share paid",
			logger.String("reservation_id", r.ID),
			logger.String("share_id", shareID),
		)
		if r.Status == domain.StatusConfirmed {
			s.emit(ctx, domain.EventConfirmed, r)
		}
	}
	return r, nil
}

// ExpireHolds rewrites every stale hold to EXPIRED.
func (s *ReservationService) ExpireHolds(ctx context.Context) ([]*domain.Reservation, error) {
	expired, err := s.reservationRepo.ExpireHolds(ctx, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("expire holds: %w", err)
	}

	if len(expired) > 0 {
		s.logger.Info("stale holds expired", logger.Int("count", len(expired)))
		for _, r := range expired {
			s.emit(ctx, domain.EventExpired, r)
		}
	}
	return expired, nil
}

// ConfirmSeries confirms every open reservation of a series. Holds that have
// already lapsed are expired and left out.
func (s *ReservationService) ConfirmSeries(ctx context.Context, seriesID string, method domain.PaymentMethod) ([]*domain.Reservation, error) {
	members, err := s.reservationRepo.ListBySeries(ctx, seriesID)
	if err != nil {
		return nil, fmt.Errorf("list series: %w", err)
	}
	if len(members) == 0 {
		return nil, fmt.Errorf("%w: series %s", domain.ErrReservationNotFound, seriesID)
	}

	var confirmed []*domain.Reservation
	for _, m := range members {
		if m.Status != domain.StatusHold && m.Status != domain.StatusPendingPayment {
			continue
		}
		r, err := s.Confirm(ctx, m.ID, method)
		if errors.Is(err, domain.ErrHoldExpired) {
			continue
		}
		if err != nil {
			return confirmed, err
		}
		confirmed = append(confirmed, r)
	}

	s.logger.Info("series confirmed",
		logger.String("series_id", seriesID),
		logger.Int("confirmed", len(confirmed)),
		logger.Int("total", len(members)),
	)
	return confirmed, nil
}

// ListByUser returns the user's reservations with lapsed holds reported as
// expired.
func (s *ReservationService) ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error) {
	rs, err := s.reservationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	now := s.clock.Now()
	for i, r := range rs {
		if !r.IsHoldExpired(now) {
			continue
		}
		if expired := s.expire(ctx, r.ID); expired != nil {
			rs[i] = expired
			continue
		}
		// запись не удалось обновить, но клиенту холд показываем истёкшим
		r.Expire(now)
	}
	return rs, nil
}

// Expire moves a stale hold to EXPIRED. Anything else is returned unchanged.
func (s *ReservationService) Expire(ctx context.Context, id string) (*domain.Reservation, error) {
	now := s.clock.Now()
	var changed bool

	r, err := s.reservationRepo.Transition(ctx, id, func(r *domain.Reservation) error {
		changed = r.Expire(now)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("expire reservation: %w", err)
	}
	if changed {
		s.logger.Info("hold expired", logger.String("reservation_id", id))
		s.emit(ctx, domain.EventExpired, r)
	}
	return r, nil
}

// expire is the lazy path: failures are logged only.
func (s *ReservationService) expire(ctx context.Context, id string) *domain.Reservation {
	r, err := s.Expire(ctx, id)
	if err != nil {
		s.logger.Error("failed to expire hold",
			logger.String("reservation_id", id),
			logger.String("error", err.Error()),
		)
		return nil
	}
	return r
}

func (s *ReservationService) emit(ctx context.Context, t domain.EventType, r *domain.Reservation) {
	emitEvent(ctx, s.publisher, s.notifier, s.logger, t, r, s.clock.Now())
}

// emitEvent publishes a lifecycle event and sends the matching notification
// in the background.
func emitEvent(
	ctx context.Context,
	publisher ports.EventPublisher,
	notifier ports.ReservationNotifier,
	log logger.Logger,
	t domain.EventType,
	r *domain.Reservation,
	now time.Time,
) {
	if publisher != nil {
		if err := publisher.Publish(ctx, domain.NewReservationEvent(t, r, now)); err != nil {
			log.Warn("failed to publish reservation event",
				logger.String("event", string(t)),
				logger.String("reservation_id", r.ID),
				logger.String("error", err.Error()),
			)
		}
	}

	bg := context.WithoutCancel(ctx)
	switch t {
	case domain.EventHeld:
		go notifier.NotifyHeld(bg, r)
	case domain.EventConfirmed:
		go notifier.NotifyConfirmed(bg, r)
	case domain.EventCancelled:
		go notifier.NotifyCancelled(bg, r)
	case domain.EventExpired:
		go notifier.NotifyExpired(bg, r)
	}
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
