package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	StatusHold           ReservationStatus = "hold"
	StatusPendingPayment ReservationStatus = "pending_payment"
	StatusConfirmed      ReservationStatus = "confirmed"
	StatusCancelled      ReservationStatus = "cancelled"
	StatusExpired        ReservationStatus = "expired"
)

// OccupyingStatuses occupy their slot unconditionally. A hold occupies it
// only until hold_expires_at.
var OccupyingStatuses = []ReservationStatus{StatusPendingPayment, StatusConfirmed}

type PaymentMethod string

const (
	PaymentCash    PaymentMethod = "cash"
	PaymentSplit   PaymentMethod = "split"
	PaymentDigital PaymentMethod = "digital"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentSplit, PaymentDigital:
		return true
	}
	return false
}

type Owner struct {
	UserID         string `json:"user_id,omitempty"`
	GuestName      string `json:"guest_name,omitempty"`
	GuestPhone     string `json:"guest_phone,omitempty"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
}

type Participant struct {
	UserID string
	Name   string
}

type Share struct {
	ID            string     `json:"id"`
	ReservationID string     `json:"reservation_id"`
	UserID        string     `json:"user_id,omitempty"`
	Name          string     `json:"name,omitempty"`
	AmountCents   int64      `json:"amount_cents"`
	Paid          bool       `json:"paid"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type Reservation struct {
	ID            string            `json:"id"`
	CourtIDs      []string          `json:"court_ids"`
	Owner         Owner             `json:"owner"`
	StartAt       time.Time         `json:"start_at"`
	EndAt         time.Time         `json:"end_at"`
	TotalCents    int64             `json:"total_cents"`
	Status        ReservationStatus `json:"status"`
	PaymentMethod PaymentMethod     `json:"payment_method"`
	PartySize     int               `json:"party_size"`
	HoldExpiresAt *time.Time        `json:"hold_expires_at,omitempty"`
	SeriesID      *string           `json:"series_id,omitempty"`
	Shares        []*Share          `json:"shares"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// Overlaps is the half-open interval test: touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

func ValidateInterval(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrValidation)
	}
	if !end.After(start) {
		return fmt.Errorf("%w: end must be after start", ErrValidation)
	}
	return nil
}

// IsOccupying decides whether r blocks its courts at now, regardless of
// whether a sweep has already rewritten a stale hold.
func IsOccupying(r *Reservation, now time.Time) bool {
	switch r.Status {
	case StatusConfirmed, StatusPendingPayment:
		return true
	case StatusHold:
		return r.HoldExpiresAt != nil && now.Before(*r.HoldExpiresAt)
	default:
		return false
	}
}

func (r *Reservation) IsHoldExpired(now time.Time) bool {
	return r.Status == StatusHold && !IsOccupying(r, now)
}

func (r *Reservation) UsesCourt(courtID string) bool {
	for _, id := range r.CourtIDs {
		if id == courtID {
			return true
		}
	}
	return false
}

func (r *Reservation) AllSharesPaid() bool {
	if len(r.Shares) == 0 {
		return false
	}
	for _, s := range r.Shares {
		if !s.Paid {
			return false
		}
	}
	return true
}

func (r *Reservation) confirm(now time.Time) {
	r.Status = StatusConfirmed
	r.HoldExpiresAt = nil
	r.UpdatedAt = now
}

// Confirm applies a confirmation request. Cash confirms the booking as a
// whole; split and digital move it to pending payment until every share is
// paid.
func (r *Reservation) Confirm(method PaymentMethod, now time.Time) error {
	if !method.Valid() {
		return fmt.Errorf("%w: unknown payment method %q", ErrValidation, method)
	}

	switch r.Status {
	case StatusConfirmed:
		return nil
	case StatusHold:
		if r.IsHoldExpired(now) {
			return ErrHoldExpired
		}
	case StatusPendingPayment:
	case StatusExpired:
		return ErrHoldExpired
	default:
		return fmt.Errorf("%w: cannot confirm a %s reservation", ErrInvalidTransition, r.Status)
	}

	if method == PaymentCash {
		for _, s := range r.Shares {
			if !s.Paid {
				s.Paid = true
				s.PaidAt = &now
			}
		}
		if r.PaymentMethod == "" {
			r.PaymentMethod = PaymentCash
		}
		r.confirm(now)
		return nil
	}

	if r.Status == StatusPendingPayment {
		return nil
	}
	if r.PaymentMethod != PaymentSplit {
		r.PaymentMethod = method
	}
	if len(r.Shares) == 0 {
		r.Shares = []*Share{r.newShare(Participant{UserID: r.Owner.UserID, Name: r.Owner.GuestName}, now)}
		r.Shares[0].AmountCents = r.TotalCents
	}
	r.Status = StatusPendingPayment
	r.UpdatedAt = now
	if r.AllSharesPaid() {
		r.confirm(now)
	}
	return nil
}

// Cancel releases the slot. It reports false when r was already inert.
func (r *Reservation) Cancel(now time.Time) (bool, error) {
	switch r.Status {
	case StatusCancelled, StatusExpired:
		return false, nil
	case StatusHold, StatusPendingPayment:
		r.Status = StatusCancelled
		r.HoldExpiresAt = nil
		r.UpdatedAt = now
		return true, nil
	default:
		return false, fmt.Errorf("%w: cannot cancel a %s reservation", ErrInvalidTransition, r.Status)
	}
}

// Expire moves a stale hold to EXPIRED. Any other state is left untouched.
func (r *Reservation) Expire(now time.Time) bool {
	if !r.IsHoldExpired(now) {
		return false
	}
	r.Status = StatusExpired
	r.HoldExpiresAt = nil
	r.UpdatedAt = now
	return true
}

func (r *Reservation) ensureOpenForPayment(now time.Time) error {
	switch r.Status {
	case StatusHold:
		if r.IsHoldExpired(now) {
			return ErrHoldExpired
		}
		return nil
	case StatusPendingPayment:
		return nil
	case StatusExpired:
		return ErrHoldExpired
	default:
		return fmt.Errorf("%w: reservation is %s", ErrInvalidTransition, r.Status)
	}
}

// Join adds a participant share and re-divides the total equally.
func (r *Reservation) Join(p Participant, now time.Time) (*Share, error) {
	if r.PaymentMethod != PaymentSplit {
		return nil, ErrNotSplit
	}
	if err := r.ensureOpenForPayment(now); err != nil {
		return nil, err
	}
	if p.UserID == "" && p.Name == "" {
		return nil, fmt.Errorf("%w: participant user_id or name is required", ErrValidation)
	}
	if len(r.Shares) >= r.PartySize {
		return nil, ErrSharesFull
	}
	for _, s := range r.Shares {
		if s.Paid {
			return nil, fmt.Errorf("%w: shares are already being paid", ErrInvalidTransition)
		}
		if p.UserID != "" && s.UserID == p.UserID {
			return nil, ErrAlreadyJoined
		}
	}

	share := r.newShare(p, now)
	r.Shares = append(r.Shares, share)
	amounts := SplitEqually(r.TotalCents, len(r.Shares))
	for i, s := range r.Shares {
		s.AmountCents = amounts[i]
	}
	r.UpdatedAt = now
	return share, nil
}

// MarkSharePaid records a payment signal for one share. Paying the last open
// share confirms the reservation. It reports false for a repeated signal.
func (r *Reservation) MarkSharePaid(shareID string, now time.Time) (bool, error) {
	var share *Share
	for _, s := range r.Shares {
		if s.ID == shareID {
			share = s
			break
		}
	}
	if share == nil {
		return false, ErrShareNotFound
	}
	if share.Paid {
		return false, nil
	}
	if err := r.ensureOpenForPayment(now); err != nil {
		return false, err
	}

	share.Paid = true
	share.PaidAt = &now
	r.UpdatedAt = now
	if r.AllSharesPaid() {
		r.confirm(now)
	}
	return true, nil
}

func (r *Reservation) newShare(p Participant, now time.Time) *Share {
	return &Share{
		ID:            uuid.New().String(),
		ReservationID: r.ID,
		UserID:        p.UserID,
		Name:          p.Name,
		CreatedAt:     now,
	}
}

// SplitEqually divides total into n parts summing to total; leftover minor
// units go to the first parts.
func SplitEqually(total int64, n int) []int64 {
	if n <= 0 {
		return nil
	}
	out := make([]int64, n)
	base := total / int64(n)
	rem := total % int64(n)
	for i := range out {
		out[i] = base
		if int64(i) < rem {
			out[i]++
		}
	}
	return out
}

// NewHold builds a HOLD for the given courts. Split bookings start with the
// owner's share covering the whole amount.
func NewHold(courtIDs []string, owner Owner, start, end time.Time, total int64, method PaymentMethod, partySize int, ttl time.Duration, now time.Time) *Reservation {
	expires := now.Add(ttl)
	r := &Reservation{
		ID:            uuid.New().String(),
		CourtIDs:      courtIDs,
		Owner:         owner,
		StartAt:       start,
		EndAt:         end,
		TotalCents:    total,
		Status:        StatusHold,
		PaymentMethod: method,
		PartySize:     partySize,
		HoldExpiresAt: &expires,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if method == PaymentSplit {
		share := r.newShare(Participant{UserID: owner.UserID, Name: owner.GuestName}, now)
		share.AmountCents = total
		r.Shares = []*Share{share}
	}
	return r
}
