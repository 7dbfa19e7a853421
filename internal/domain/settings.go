package domain

import "time"

// ClubSettings is the club-wide configuration the engine needs. It is built
// once from config and passed explicitly to pricing, availability and the
// reservation services.
type ClubSettings struct {
	Location       *time.Location
	OpenFrom       TimeOfDay
	OpenTo         TimeOfDay
	Granularity    time.Duration
	HoldTTL        time.Duration
	DefaultRate    *int64
	MaxPartySize   int
	MaxOccurrences int
}

func (s ClubSettings) Loc() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}

// WithinOperatingHours reports whether [start, end) fits inside the opening
// hours of the day start falls on.
func (s ClubSettings) WithinOperatingHours(start, end time.Time) bool {
	open := s.OpenFrom.On(start, s.Loc())
	closing := s.OpenTo.On(start, s.Loc())
	return !start.Before(open) && !end.After(closing)
}
