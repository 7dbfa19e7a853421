package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/stpnv0/CourtBooker/internal/availability"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/handler/dto"
	"github.com/stpnv0/CourtBooker/internal/middleware"
	"github.com/stpnv0/CourtBooker/internal/pricing"
	"github.com/wb-go/wbf/ginext"
)

type ReservationSvc interface {
	CreateHold(ctx context.Context, in domain.HoldInput) (*domain.Reservation, error)
	Confirm(ctx context.Context, id string, method domain.PaymentMethod) (*domain.Reservation, error)
	Get(ctx context.Context, id string) (*domain.Reservation, error)
	Cancel(ctx context.Context, id string) (*domain.Reservation, error)
	Join(ctx context.Context, id string, p domain.Participant) (*domain.Share, *domain.Reservation, error)
	MarkSharePaid(ctx context.Context, id, shareID string) (*domain.Reservation, error)
	ConfirmSeries(ctx context.Context, seriesID string, method domain.PaymentMethod) ([]*domain.Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error)
}

type RecurrenceSvc interface {
	Preview(ctx context.Context, in domain.SeriesInput) ([]domain.Occurrence, error)
	Materialize(ctx context.Context, in domain.SeriesInput) (*domain.SeriesResult, error)
}

type AvailabilitySvc interface {
	Slots(ctx context.Context, q availability.Query) ([]availability.Slot, error)
}

type PricingSvc interface {
	Calculate(ctx context.Context, courtIDs []string, start, end time.Time) (*pricing.Quote, error)
}

type CourtSvc interface {
	Create(ctx context.Context, input domain.CreateCourtInput) (*domain.Court, error)
	List(ctx context.Context) ([]*domain.Court, error)
	Deactivate(ctx context.Context, id string) error
}

type RateRuleSvc interface {
	Create(ctx context.Context, input domain.RateRuleInput) (*domain.RateRule, error)
	Update(ctx context.Context, id string, input domain.RateRuleInput) (*domain.RateRule, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.RateRuleReport, error)
}

type Handler struct {
	reservationService  ReservationSvc
	recurrenceService   RecurrenceSvc
	availabilityService AvailabilitySvc
	pricingService      PricingSvc
	courtService        CourtSvc
	rateRuleService     RateRuleSvc
	loc                 *time.Location
}

// NewHandler wires the HTTP layer. loc is the club time zone used for
// date-only query parameters.
func NewHandler(
	reservationService ReservationSvc,
	recurrenceService RecurrenceSvc,
	availabilityService AvailabilitySvc,
	pricingService PricingSvc,
	courtService CourtSvc,
	rateRuleService RateRuleSvc,
	loc *time.Location,
) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		reservationService:  reservationService,
		recurrenceService:   recurrenceService,
		availabilityService: availabilityService,
		pricingService:      pricingService,
		courtService:        courtService,
		rateRuleService:     rateRuleService,
		loc:                 loc,
	}
}

func (h *Handler) Health(c *ginext.Context) {
	c.JSON(http.StatusOK, ginext.H{"status": "ok"})
}

func parseTime(field, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid %s format, expected RFC3339", domain.ErrValidation, field)
	}
	return t, nil
}

func (h *Handler) parseDate(field, value string) (time.Time, error) {
	t, err := time.ParseInLocation(time.DateOnly, value, h.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid %s format, expected YYYY-MM-DD", domain.ErrValidation, field)
	}
	return t, nil
}

var errForeignUser = errors.New("cannot act on behalf of another user")

// actingUser resolves whose name a booking is made in. The token subject wins;
// a different user id from the body is honoured for staff only.
func actingUser(c *ginext.Context, requested string) (string, error) {
	subject := middleware.UserID(c)
	switch {
	case requested == "" || requested == subject:
		return subject, nil
	case middleware.IsStaff(c):
		return requested, nil
	default:
		return "", errForeignUser
	}
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var seriesErr *domain.SeriesError
	switch {
	case errors.As(err, &seriesErr):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Error:       err.Error(),
			Occurrences: dto.ToOccurrenceResponses(seriesErr.Occurrences),
		})

	case errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrCourtNotFound),
		errors.Is(err, domain.ErrRateRuleNotFound),
		errors.Is(err, domain.ErrShareNotFound),
		errors.Is(err, domain.ErrHoldExpired):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrSharesFull),
		errors.Is(err, domain.ErrAlreadyJoined),
		errors.Is(err, domain.ErrNotSplit):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPricingUnavailable):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, errForeignUser):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
