package domain

import "time"

type HoldInput struct {
	CourtIDs      []string
	StartAt       time.Time
	EndAt         time.Time
	Owner         Owner
	PaymentMethod PaymentMethod
	PartySize     int
	// ExpectedTotal is the price the client was shown, if any.
	ExpectedTotal *int64
}

type SeriesInput struct {
	CourtID       string
	StartAt       time.Time
	EndAt         time.Time
	Owner         Owner
	PaymentMethod PaymentMethod
	PartySize     int
	Pattern       RecurrencePattern
}
