package domain

import "errors"

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrCourtNotFound       = errors.New("court not found")
	ErrRateRuleNotFound    = errors.New("rate rule not found")
	ErrShareNotFound       = errors.New("share not found")
)

var (
	ErrConflict          = errors.New("slot is no longer available")
	ErrHoldExpired       = errors.New("hold has expired")
	ErrInvalidTransition = errors.New("invalid reservation state transition")
	ErrSharesFull        = errors.New("all shares are taken")
	ErrAlreadyJoined     = errors.New("participant already joined")
	ErrNotSplit          = errors.New("reservation does not use split payment")
)

var (
	ErrPricingUnavailable = errors.New("no rate covers the requested interval")
)

var (
	ErrValidation = errors.New("validation error")
)
