package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/stpnv0/CourtBooker/internal/availability"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/handler/dto"
	"github.com/stpnv0/CourtBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

// Availability

func (h *Handler) GetAvailability(c *ginext.Context) {
	date, err := h.parseDate("date", c.Query("date"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	duration, err := strconv.Atoi(c.Query("duration"))
	if err != nil || duration <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "duration must be a positive number of minutes"})
		return
	}

	courtCount := 1
	if v := c.Query("courtCount"); v != "" {
		if courtCount, err = strconv.Atoi(v); err != nil || courtCount < 1 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "courtCount must be a positive number"})
			return
		}
	}

	slots, err := h.availabilityService.Slots(c.Request.Context(), availability.Query{
		Date:       date,
		Duration:   time.Duration(duration) * time.Minute,
		CourtCount: courtCount,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(slots, h.loc))
}

// Reservations

func (h *Handler) CreateHold(c *ginext.Context) {
	var req dto.HoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startAt, err := parseTime("startAt", req.StartAt)
	if err != nil {
		h.handleError(c, err)
		return
	}
	endAt, err := parseTime("endAt", req.EndAt)
	if err != nil {
		h.handleError(c, err)
		return
	}

	userID, err := actingUser(c, req.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	input := domain.HoldInput{
		CourtIDs: req.CourtIDs,
		StartAt:  startAt,
		EndAt:    endAt,
		Owner: domain.Owner{
			UserID:         userID,
			GuestName:      req.GuestName,
			GuestPhone:     req.GuestPhone,
			TelegramChatID: req.TelegramChatID,
		},
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		PartySize:     req.PartySize,
		ExpectedTotal: req.TotalCents,
	}

	r, err := h.reservationService.CreateHold(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.BookingEnvelope{Booking: dto.ToReservationResponse(r)})
}

func (h *Handler) ConfirmReservation(c *ginext.Context) {
	var req dto.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	method := domain.PaymentMethod(req.PaymentMethod)
	if method == "" {
		method = domain.PaymentCash
	}

	r, err := h.reservationService.Confirm(c.Request.Context(), req.BookingID, method)
	if err != nil {
		h.handleError(c, err)
		return
	}

	message := "reservation confirmed"
	if r.Status == domain.StatusPendingPayment {
		message = "reservation is awaiting payment"
	}
	c.JSON(http.StatusOK, dto.ConfirmResponse{Message: message, Booking: dto.ToReservationResponse(r)})
}

func (h *Handler) GetReservation(c *ginext.Context) {
	r, err := h.reservationService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BookingEnvelope{Booking: dto.ToReservationResponse(r)})
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	r, err := h.reservationService.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BookingEnvelope{Booking: dto.ToReservationResponse(r)})
}

func (h *Handler) JoinReservation(c *ginext.Context) {
	var req dto.JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	userID, err := actingUser(c, req.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	p := domain.Participant{UserID: userID, Name: req.Name}

	share, r, err := h.reservationService.Join(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.JoinResponse{
		Share:   dto.ToShareResponse(share),
		Booking: dto.ToReservationResponse(r),
	})
}

func (h *Handler) MarkSharePaid(c *ginext.Context) {
	r, err := h.reservationService.MarkSharePaid(c.Request.Context(), c.Param("id"), c.Param("shareId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BookingEnvelope{Booking: dto.ToReservationResponse(r)})
}

func (h *Handler) GetUserReservations(c *ginext.Context) {
	userID := c.Param("id")
	if userID != middleware.UserID(c) && !middleware.IsStaff(c) {
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "forbidden"})
		return
	}

	rs, err := h.reservationService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationList(rs))
}

// Recurring series

func (h *Handler) seriesInput(c *ginext.Context, req dto.RecurringRequest) (domain.SeriesInput, error) {
	startAt, err := parseTime("start_at", req.StartAt)
	if err != nil {
		return domain.SeriesInput{}, err
	}
	endAt, err := parseTime("end_at", req.EndAt)
	if err != nil {
		return domain.SeriesInput{}, err
	}

	pattern := domain.RecurrencePattern{
		Frequency:     domain.Frequency(req.Recurring.Frequency),
		Interval:      req.Recurring.Interval,
		Count:         req.Recurring.Count,
		SkipConflicts: req.SkipConflicts,
	}
	for _, d := range req.Recurring.Weekdays {
		pattern.Weekdays = append(pattern.Weekdays, time.Weekday(d))
	}
	if req.Recurring.Until != "" {
		until, err := h.parseDate("recurring.until", req.Recurring.Until)
		if err != nil {
			return domain.SeriesInput{}, err
		}
		pattern.Until = &until
	}

	userID, err := actingUser(c, req.UserID)
	if err != nil {
		return domain.SeriesInput{}, err
	}

	return domain.SeriesInput{
		CourtID: req.CourtID,
		StartAt: startAt,
		EndAt:   endAt,
		Owner: domain.Owner{
			UserID:         userID,
			GuestName:      req.GuestName,
			GuestPhone:     req.GuestPhone,
			TelegramChatID: req.TelegramChatID,
		},
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		PartySize:     req.PartySize,
		Pattern:       pattern,
	}, nil
}

func (h *Handler) PreviewRecurring(c *ginext.Context) {
	var req dto.RecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input, err := h.seriesInput(c, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	occurrences, err := h.recurrenceService.Preview(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PreviewResponse{Occurrences: dto.ToOccurrenceResponses(occurrences)})
}

func (h *Handler) CreateRecurring(c *ginext.Context) {
	var req dto.RecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input, err := h.seriesInput(c, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	res, err := h.recurrenceService.Materialize(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSeriesResponse(res))
}

func (h *Handler) ConfirmSeries(c *ginext.Context) {
	var req dto.ConfirmSeriesRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
	}

	method := domain.PaymentMethod(req.PaymentMethod)
	if method == "" {
		method = domain.PaymentCash
	}

	confirmed, err := h.reservationService.ConfirmSeries(c.Request.Context(), c.Param("id"), method)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{
		"message":  "series confirmed",
		"bookings": dto.ToReservationList(confirmed),
	})
}
