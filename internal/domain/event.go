package domain

import "time"

type EventType string

const (
	EventHeld      EventType = "reservation.held"
	EventConfirmed EventType = "reservation.confirmed"
	EventCancelled EventType = "reservation.cancelled"
	EventExpired   EventType = "reservation.expired"
)

// ReservationEvent is published on every lifecycle change. Type doubles as
// the routing key.
type ReservationEvent struct {
	Type          EventType         `json:"type"`
	ReservationID string            `json:"reservation_id"`
	CourtIDs      []string          `json:"court_ids"`
	UserID        string            `json:"user_id,omitempty"`
	Status        ReservationStatus `json:"status"`
	StartAt       time.Time         `json:"start_at"`
	EndAt         time.Time         `json:"end_at"`
	TotalCents    int64             `json:"total_cents"`
	SeriesID      *string           `json:"series_id,omitempty"`
	OccurredAt    time.Time         `json:"occurred_at"`
}

func NewReservationEvent(t EventType, r *Reservation, now time.Time) ReservationEvent {
	return ReservationEvent{
		Type:          t,
		ReservationID: r.ID,
		CourtIDs:      r.CourtIDs,
		UserID:        r.Owner.UserID,
		Status:        r.Status,
		StartAt:       r.StartAt,
		EndAt:         r.EndAt,
		TotalCents:    r.TotalCents,
		SeriesID:      r.SeriesID,
		OccurredAt:    now,
	}
}

// SharePaidKey is the routing key of incoming share payment signals.
const SharePaidKey = "payment.share_paid"

// SharePaidMessage is the payload of a payment.share_paid signal.
type SharePaidMessage struct {
	ReservationID string `json:"reservation_id"`
	ShareID       string `json:"share_id"`
}
