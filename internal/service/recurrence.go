package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/pricing"
	"github.com/stpnv0/CourtBooker/internal/recurrence"
	"github.com/stpnv0/CourtBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"go.opentelemetry.io/otel/attribute"
)

const (
	reasonPast     = "starts in the past"
	reasonHours    = "outside operating hours"
	reasonConflict = "slot is no longer available"
)

type RecurrenceService struct {
	reservationRepo ports.ReservationRepo
	courtRepo       ports.CourtRepo
	rateRepo        ports.RateRuleRepo
	notifier        ports.ReservationNotifier
	publisher       ports.EventPublisher
	clock           ports.Clock
	settings        domain.ClubSettings
	logger          logger.Logger
}

func NewRecurrenceService(
	reservationRepo ports.ReservationRepo,
	courtRepo ports.CourtRepo,
	rateRepo ports.RateRuleRepo,
	notifier ports.ReservationNotifier,
	publisher ports.EventPublisher,
	clock ports.Clock,
	settings domain.ClubSettings,
	logger logger.Logger,
) *RecurrenceService {
	return &RecurrenceService{
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

// Preview expands the pattern and annotates every occurrence with its price
// and availability. It has no side effects.
func (s *RecurrenceService) Preview(ctx context.Context, in domain.SeriesInput) ([]domain.Occurrence, error) {
	court, err := s.courtRepo.GetByID(ctx, in.CourtID)
	if err != nil {
		return nil, fmt.Errorf("get court: %w", err)
	}
	if !court.Active {
		return nil, fmt.Errorf("%w: court %s is not active", domain.ErrValidation, court.Name)
	}

	windows, err := recurrence.Expand(in.Pattern, in.StartAt, in.EndAt, s.settings.Loc(), s.settings.MaxOccurrences)
	if err != nil {
		return nil, err
	}

	rules, err := s.rateRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rate rules: %w", err)
	}

	now := s.clock.Now()
	out := make([]domain.Occurrence, 0, len(windows))
	for _, w := range windows {
		occ := domain.Occurrence{Start: w.Start, End: w.End, IsValid: true}

		switch {
		case w.Start.Before(now):
			occ.IsValid, occ.Reason = false, reasonPast
		case !s.settings.WithinOperatingHours(w.Start, w.End):
			occ.IsValid, occ.Reason = false, reasonHours
		}

		if occ.IsValid {
			quote, err := pricing.Resolve(rules, s.settings, in.CourtID, w.Start, w.End)
			if err != nil {
				occ.IsValid, occ.Reason = false, err.Error()
			} else {
				occ.PriceCents = quote.TotalCents
			}
		}

		conflict, err := s.reservationRepo.HasConflict(ctx, in.CourtID, w.Start, w.End, "", now)
		if err != nil {
			return nil, fmt.Errorf("check conflict: %w", err)
		}
		if conflict {
			occ.Conflict = true
			if occ.Reason == "" {
				occ.Reason = reasonConflict
			}
		}

		out = append(out, occ)
	}
	return out, nil
}

// Materialize re-runs the preview and creates the bookable occurrences as
// holds sharing one series id, in a single transaction.
func (s *RecurrenceService) Materialize(ctx context.Context, in domain.SeriesInput) (res *domain.SeriesResult, err error) {
	ctx, span := tracer.Start(ctx, "RecurrenceService.Materialize")
	defer func() { endSpan(span, err) }()
	span.SetAttributes(attribute.String("court_id", in.CourtID))

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

	occurrences, err := s.Preview(ctx, in)
	if err != nil {
		return nil, err
	}

	var bookable, skipped []domain.Occurrence
	for _, o := range occurrences {
		if o.IsValid && !o.Conflict {
			bookable = append(bookable, o)
		} else {
			skipped = append(skipped, o)
		}
	}
	if len(skipped) > 0 && !in.Pattern.SkipConflicts {
		return nil, &domain.SeriesError{Occurrences: skipped}
	}
	if len(bookable) == 0 {
		return nil, fmt.Errorf("%w: no bookable occurrences left", domain.ErrValidation)
	}

	now := s.clock.Now()
	seriesID := uuid.New().String()
	holds := make([]*domain.Reservation, 0, len(bookable))
	for _, o := range bookable {
		h := domain.NewHold([]string{in.CourtID}, in.Owner, o.Start, o.End, o.PriceCents,
			in.PaymentMethod, in.PartySize, s.settings.HoldTTL, now)
		h.SeriesID = &seriesID
		holds = append(holds, h)
	}

	taken, err := s.reservationRepo.CreateBatch(ctx, holds, now, in.Pattern.SkipConflicts)
	if len(taken) > 0 {
		// слот заняли между предпросмотром и вставкой
		holds, skipped = dropTaken(holds, taken, skipped)
	}
	if err != nil {
		if len(taken) > 0 && errors.Is(err, domain.ErrConflict) {
			return nil, &domain.SeriesError{Occurrences: skipped}
		}
		return nil, fmt.Errorf("create series: %w", err)
	}
	span.SetAttributes(
		attribute.String("series_id", seriesID),
		attribute.Int("created", len(holds)),
		attribute.Int("skipped", len(skipped)),
	)

	s.logger.Info("series created",
		logger.String("series_id", seriesID),
		logger.String("court_id", in.CourtID),
		logger.Int("created", len(holds)),
		logger.Int("skipped", len(skipped)),
	)
	for _, h := range holds {
		emitEvent(ctx, s.publisher, s.notifier, s.logger, domain.EventHeld, h, now)
	}

	return &domain.SeriesResult{SeriesID: seriesID, Created: holds, Skipped: skipped}, nil
}

// dropTaken removes the holds the store refused and reports their
// occurrences as conflicts, keeping skipped in chronological order.
func dropTaken(holds, taken []*domain.Reservation, skipped []domain.Occurrence) ([]*domain.Reservation, []domain.Occurrence) {
	refused := make(map[string]struct{}, len(taken))
	for _, t := range taken {
		refused[t.ID] = struct{}{}
		skipped = append(skipped, domain.Occurrence{
			Start:      t.StartAt,
			End:        t.EndAt,
			PriceCents: t.TotalCents,
			IsValid:    true,
			Conflict:   true,
			Reason:     reasonConflict,
		})
	}
	sort.Slice(skipped, func(i, j int) bool { return skipped[i].Start.Before(skipped[j].Start) })

	kept := holds[:0]
	for _, h := range holds {
		if _, ok := refused[h.ID]; !ok {
			kept = append(kept, h)
		}
	}
	return kept, skipped
}
