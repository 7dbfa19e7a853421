package domain

import (
	"fmt"
	"time"
)

type Frequency string

const FrequencyWeekly Frequency = "weekly"

type RecurrencePattern struct {
	Frequency     Frequency
	Interval      int
	Weekdays      []time.Weekday
	Until         *time.Time
	Count         int
	SkipConflicts bool
}

type Occurrence struct {
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	PriceCents int64     `json:"price_cents"`
	Conflict   bool      `json:"conflict"`
	IsValid    bool      `json:"is_valid"`
	Reason     string    `json:"reason,omitempty"`
}

type SeriesResult struct {
	SeriesID string         `json:"series_id"`
	Created  []*Reservation `json:"created"`
	Skipped  []Occurrence   `json:"skipped"`
}

// SeriesError lists the occurrences that prevented a series from being
// created. It matches ErrConflict.
type SeriesError struct {
	Occurrences []Occurrence
}

func (e *SeriesError) Error() string {
	return fmt.Sprintf("%d of the requested occurrences cannot be booked", len(e.Occurrences))
}

func (e *SeriesError) Unwrap() error {
	return ErrConflict
}
