package dto

import (
	"time"

	"github.com/stpnv0/CourtBooker/internal/availability"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/pricing"
)

type ShareResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id,omitempty"`
	Name        string  `json:"name,omitempty"`
	AmountCents int64   `json:"amount_cents"`
	Paid        bool    `json:"paid"`
	PaidAt      *string `json:"paid_at,omitempty"`
}

type ReservationResponse struct {
	ID             string          `json:"id"`
	CourtIDs       []string        `json:"court_ids"`
	UserID         string          `json:"user_id,omitempty"`
	GuestName      string          `json:"guest_name,omitempty"`
	GuestPhone     string          `json:"guest_phone,omitempty"`
	StartAt        string          `json:"start_at"`
	EndAt          string          `json:"end_at"`
	TotalCents     int64           `json:"total_cents"`
	Status         string          `json:"status"`
	PaymentMethod  string          `json:"payment_method"`
	PartySize      int             `json:"party_size"`
	HoldExpiresAt  *string         `json:"hold_expires_at,omitempty"`
	SeriesID       *string         `json:"series_id,omitempty"`
	Shares         []ShareResponse `json:"shares"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
	TelegramChatID *int64          `json:"telegram_chat_id,omitempty"`
}

type BookingEnvelope struct {
	Booking ReservationResponse `json:"booking"`
}

type ConfirmResponse struct {
	Message string              `json:"message"`
	Booking ReservationResponse `json:"booking"`
}

type JoinResponse struct {
	Share   ShareResponse       `json:"share"`
	Booking ReservationResponse `json:"booking"`
}

type SlotResponse struct {
	Time   string   `json:"time"`
	Courts []string `json:"courts"`
}

type AvailabilityResponse struct {
	Slots []SlotResponse `json:"slots"`
}

type SegmentResponse struct {
	CourtID     string `json:"courtId"`
	Start       string `json:"start"`
	End         string `json:"end"`
	RateCents   int64  `json:"rateCents"`
	AmountCents int64  `json:"amountCents"`
	RuleID      string `json:"ruleId,omitempty"`
}

type QuoteResponse struct {
	TotalCents int64             `json:"totalCents"`
	Breakdown  []SegmentResponse `json:"breakdown"`
	Warnings   []string          `json:"warnings"`
}

type OccurrenceResponse struct {
	Start      string `json:"start"`
	End        string `json:"end"`
	PriceCents int64  `json:"priceCents"`
	IsValid    bool   `json:"isValid"`
	Conflict   bool   `json:"conflict"`
	Reason     string `json:"reason,omitempty"`
}

type PreviewResponse struct {
	Occurrences []OccurrenceResponse `json:"occurrences"`
}

type SeriesResponse struct {
	SeriesID string                `json:"seriesId"`
	Created  []ReservationResponse `json:"created"`
	Skipped  []OccurrenceResponse  `json:"skipped"`
}

type RateRuleResponse struct {
	ID              string   `json:"id"`
	CourtID         *string  `json:"court_id"`
	HourlyRateCents int64    `json:"hourly_rate_cents"`
	Weekdays        []int    `json:"weekdays"`
	StartTime       string   `json:"start_time"`
	EndTime         string   `json:"end_time"`
	OverlapsWith    []string `json:"overlaps_with,omitempty"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}

type CourtResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"created_at"`
}

type ErrorResponse struct {
	Error       string               `json:"error"`
	Occurrences []OccurrenceResponse `json:"occurrences,omitempty"`
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func ToShareResponse(s *domain.Share) ShareResponse {
	return ShareResponse{
		ID:          s.ID,
		UserID:      s.UserID,
		Name:        s.Name,
		AmountCents: s.AmountCents,
		Paid:        s.Paid,
		PaidAt:      formatTimePtr(s.PaidAt),
	}
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	shares := make([]ShareResponse, 0, len(r.Shares))
	for _, s := range r.Shares {
		shares = append(shares, ToShareResponse(s))
	}

	return ReservationResponse{
		ID:             r.ID,
		CourtIDs:       r.CourtIDs,
		UserID:         r.Owner.UserID,
		GuestName:      r.Owner.GuestName,
		GuestPhone:     r.Owner.GuestPhone,
		TelegramChatID: r.Owner.TelegramChatID,
		StartAt:        formatTime(r.StartAt),
		EndAt:          formatTime(r.EndAt),
		TotalCents:     r.TotalCents,
		Status:         string(r.Status),
		PaymentMethod:  string(r.PaymentMethod),
		PartySize:      r.PartySize,
		HoldExpiresAt:  formatTimePtr(r.HoldExpiresAt),
		SeriesID:       r.SeriesID,
		Shares:         shares,
		CreatedAt:      formatTime(r.CreatedAt),
		UpdatedAt:      formatTime(r.UpdatedAt),
	}
}

func ToReservationList(rs []*domain.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, ToReservationResponse(r))
	}
	return out
}

func ToAvailabilityResponse(slots []availability.Slot, loc *time.Location) AvailabilityResponse {
	out := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotResponse{Time: formatTime(s.Time.In(loc)), Courts: s.Courts})
	}
	return AvailabilityResponse{Slots: out}
}

func ToQuoteResponse(q *pricing.Quote) QuoteResponse {
	breakdown := make([]SegmentResponse, 0, len(q.Breakdown))
	for _, s := range q.Breakdown {
		breakdown = append(breakdown, SegmentResponse{
			CourtID:     s.CourtID,
			Start:       formatTime(s.Start),
			End:         formatTime(s.End),
			RateCents:   s.RateCents,
			AmountCents: s.AmountCents,
			RuleID:      s.RuleID,
		})
	}
	warnings := q.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return QuoteResponse{TotalCents: q.TotalCents, Breakdown: breakdown, Warnings: warnings}
}

func ToOccurrenceResponses(occ []domain.Occurrence) []OccurrenceResponse {
	out := make([]OccurrenceResponse, 0, len(occ))
	for _, o := range occ {
		out = append(out, OccurrenceResponse{
			Start:      formatTime(o.Start),
			End:        formatTime(o.End),
			PriceCents: o.PriceCents,
			IsValid:    o.IsValid,
			Conflict:   o.Conflict,
			Reason:     o.Reason,
		})
	}
	return out
}

func ToSeriesResponse(res *domain.SeriesResult) SeriesResponse {
	return SeriesResponse{
		SeriesID: res.SeriesID,
		Created:  ToReservationList(res.Created),
		Skipped:  ToOccurrenceResponses(res.Skipped),
	}
}

func ToRateRuleResponse(r *domain.RateRule, overlaps []string) RateRuleResponse {
	days := make([]int, 0, len(r.Weekdays))
	for _, d := range r.Weekdays {
		days = append(days, int(d))
	}
	return RateRuleResponse{
		ID:              r.ID,
		CourtID:         r.CourtID,
		HourlyRateCents: r.HourlyRateCents,
		Weekdays:        days,
		StartTime:       r.StartTime.String(),
		EndTime:         r.EndTime.String(),
		OverlapsWith:    overlaps,
		CreatedAt:       formatTime(r.CreatedAt),
		UpdatedAt:       formatTime(r.UpdatedAt),
	}
}

func ToCourtResponse(c *domain.Court) CourtResponse {
	return CourtResponse{
		ID:        c.ID,
		Name:      c.Name,
		Active:    c.Active,
		CreatedAt: formatTime(c.CreatedAt),
	}
}
