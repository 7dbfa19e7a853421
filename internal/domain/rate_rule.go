package domain

import (
	"fmt"
	"sort"
	"time"
)

// TimeOfDay is a wall-clock offset from local midnight in minutes. 24:00 is
// allowed as an end-of-day marker.
type TimeOfDay int

const EndOfDay TimeOfDay = 24 * 60

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if s == "24:00" {
		return EndOfDay, nil
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid time of day %q, expected HH:MM", ErrValidation, s)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// On returns the instant of t on the calendar day of date, in loc.
func (t TimeOfDay) On(date time.Time, loc *time.Location) time.Time {
	y, mo, d := date.In(loc).Date()
	return time.Date(y, mo, d, int(t)/60, int(t)%60, 0, 0, loc)
}

// ScopeKind orders rule specificity: a higher kind always wins.
type ScopeKind int

const (
	ScopeGlobal ScopeKind = iota
	ScopeCourt
)

type Scope struct {
	Kind    ScopeKind
	CourtID string
}

func GlobalScope() Scope { return Scope{Kind: ScopeGlobal} }

func CourtScope(courtID string) Scope { return Scope{Kind: ScopeCourt, CourtID: courtID} }

func (s Scope) AppliesTo(courtID string) bool {
	return s.Kind == ScopeGlobal || s.CourtID == courtID
}

func (s Scope) String() string {
	if s.Kind == ScopeGlobal {
		return "global"
	}
	return "court:" + s.CourtID
}

type RateRule struct {
	ID              string         `json:"id"`
	CourtID         *string        `json:"court_id"`
	HourlyRateCents int64          `json:"hourly_rate_cents"`
	Weekdays        []time.Weekday `json:"weekdays"`
	StartTime       TimeOfDay      `json:"start_time"`
	EndTime         TimeOfDay      `json:"end_time"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (r RateRule) Scope() Scope {
	if r.CourtID == nil || *r.CourtID == "" {
		return GlobalScope()
	}
	return CourtScope(*r.CourtID)
}

func (r RateRule) AppliesOn(day time.Weekday) bool {
	for _, d := range r.Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

func (r RateRule) Validate() error {
	if r.HourlyRateCents < 0 {
		return fmt.Errorf("%w: hourly rate must not be negative", ErrValidation)
	}
	if len(r.Weekdays) == 0 {
		return fmt.Errorf("%w: at least one weekday is required", ErrValidation)
	}
	for _, d := range r.Weekdays {
		if d < time.Sunday || d > time.Saturday {
			return fmt.Errorf("%w: weekday %d out of range", ErrValidation, d)
		}
	}
	if r.StartTime < 0 || r.EndTime > EndOfDay {
		return fmt.Errorf("%w: rule times must lie within a single day", ErrValidation)
	}
	if r.EndTime <= r.StartTime {
		return fmt.Errorf("%w: end_time must be after start_time and must not cross midnight", ErrValidation)
	}
	return nil
}

// OverlapsWith reports whether both rules can price the same minute of the
// same court at the same specificity.
func (r RateRule) OverlapsWith(o RateRule) bool {
	if r.Scope() != o.Scope() {
		return false
	}
	if !(r.StartTime < o.EndTime && o.StartTime < r.EndTime) {
		return false
	}
	for _, d := range r.Weekdays {
		if o.AppliesOn(d) {
			return true
		}
	}
	return false
}

// RuleOverlaps maps every rule id to the ids it overlaps with.
func RuleOverlaps(rules []*RateRule) map[string][]string {
	out := make(map[string][]string)
	for i := range rules {
		for j := i + 1; j < len(rules); j++ {
			if rules[i].OverlapsWith(*rules[j]) {
				out[rules[i].ID] = append(out[rules[i].ID], rules[j].ID)
				out[rules[j].ID] = append(out[rules[j].ID], rules[i].ID)
			}
		}
	}
	for id := range out {
		sort.Strings(out[id])
	}
	return out
}

type RateRuleInput struct {
	CourtID         *string
	HourlyRateCents int64
	Weekdays        []time.Weekday
	StartTime       string
	EndTime         string
}

// RateRuleReport is a rule together with the ids of the rules it overlaps.
type RateRuleReport struct {
	*RateRule
	OverlapsWith []string `json:"overlaps_with"`
}
