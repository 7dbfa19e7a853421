// Package recurrence expands a weekly pattern into concrete occurrences.
package recurrence

import (
	"fmt"
	"sort"
	"time"

	"github.com/stpnv0/CourtBooker/internal/domain"
)

// Window is one expanded occurrence before pricing and conflict checks.
type Window struct {
	Start time.Time
	End   time.Time
}

func Validate(p domain.RecurrencePattern, maxOccurrences int) error {
	if p.Frequency != "" && p.Frequency != domain.FrequencyWeekly {
		return fmt.Errorf("%w: unsupported frequency %q", domain.ErrValidation, p.Frequency)
	}
	if p.Interval < 0 {
		return fmt.Errorf("%w: interval must be at least 1", domain.ErrValidation)
	}
	if (p.Until == nil) == (p.Count == 0) {
		return fmt.Errorf("%w: exactly one of until or count is required", domain.ErrValidation)
	}
	if p.Count < 0 {
		return fmt.Errorf("%w: count must be positive", domain.ErrValidation)
	}
	if maxOccurrences > 0 && p.Count > maxOccurrences {
		return fmt.Errorf("%w: count exceeds the limit of %d occurrences", domain.ErrValidation, maxOccurrences)
	}
	for _, d := range p.Weekdays {
		if d < time.Sunday || d > time.Saturday {
			return fmt.Errorf("%w: weekday %d out of range", domain.ErrValidation, d)
		}
	}
	return nil
}

// Expand lists the occurrences of p anchored on [start, end). Weeks are
// counted from the Monday of the anchor's week in loc; every occurrence keeps
// the anchor's wall-clock start time and duration. Days before the anchor are
// never produced.
func Expand(p domain.RecurrencePattern, start, end time.Time, loc *time.Location, maxOccurrences int) ([]Window, error) {
	if err := domain.ValidateInterval(start, end); err != nil {
		return nil, err
	}
	if err := Validate(p, maxOccurrences); err != nil {
		return nil, err
	}
	if loc == nil {
		loc = time.UTC
	}

	interval := p.Interval
	if interval == 0 {
		interval = 1
	}
	anchor := start.In(loc)
	duration := end.Sub(start)
	days := weekdayOffsets(p.Weekdays, anchor.Weekday())

	anchorDay := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, loc)
	weekStart := anchorDay.AddDate(0, 0, -mondayOffset(anchor.Weekday()))

	var lastDay time.Time
	if p.Until != nil {
		u := p.Until.In(loc)
		lastDay = time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, loc)
	}

	var out []Window
	for week := 0; ; week += interval {
		base := weekStart.AddDate(0, 0, 7*week)
		if p.Until != nil && base.After(lastDay) {
			break
		}
		for _, off := range days {
			day := base.AddDate(0, 0, off)
			if day.Before(anchorDay) {
				continue
			}
			if p.Until != nil && day.After(lastDay) {
				break
			}
			s := time.Date(day.Year(), day.Month(), day.Day(), anchor.Hour(), anchor.Minute(), anchor.Second(), 0, loc)
			out = append(out, Window{Start: s, End: s.Add(duration)})
			if p.Count > 0 && len(out) == p.Count {
				return out, nil
			}
			if maxOccurrences > 0 && len(out) > maxOccurrences {
				return nil, fmt.Errorf("%w: pattern yields more than %d occurrences", domain.ErrValidation, maxOccurrences)
			}
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("%w: pattern yields no occurrences", domain.ErrValidation)
	}
	return out, nil
}

// mondayOffset is the number of days since Monday.
func mondayOffset(d time.Weekday) int {
	return (int(d) + 6) % 7
}

func weekdayOffsets(weekdays []time.Weekday, fallback time.Weekday) []int {
	if len(weekdays) == 0 {
		return []int{mondayOffset(fallback)}
	}
	seen := make(map[int]struct{}, len(weekdays))
	out := make([]int, 0, len(weekdays))
	for _, d := range weekdays {
		off := mondayOffset(d)
		if _, ok := seen[off]; ok {
			continue
		}
		seen[off] = struct{}{}
		out = append(out, off)
	}
	sort.Ints(out)
	return out
}
