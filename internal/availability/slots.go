// Package availability enumerates bookable start times for a day over an
// occupancy snapshot. Results are advisory: a slot can be taken between the
// query and the hold.
package availability

import (
	"fmt"
	"sort"
	"time"

	"github.com/stpnv0/CourtBooker/internal/domain"
)

const defaultGranularity = 30 * time.Minute

type Slot struct {
	Time   time.Time `json:"time"`
	Courts []string  `json:"courts"`
}

type Query struct {
	Date       time.Time
	Duration   time.Duration
	CourtCount int
}

func (q Query) Validate() error {
	if q.Date.IsZero() {
		return fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	if q.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", domain.ErrValidation)
	}
	if q.CourtCount < 1 {
		return fmt.Errorf("%w: courtCount must be at least 1", domain.ErrValidation)
	}
	return nil
}

type interval struct {
	start, end time.Time
}

// Slots returns every candidate start on q.Date at which q.CourtCount of the
// given courts are free for q.Duration. Courts are tried in name order and the
// first feasible set is reported. Candidates before now are skipped.
func Slots(settings domain.ClubSettings, courts []*domain.Court, occupancy []*domain.Reservation, q Query, now time.Time) ([]Slot, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	active := make([]*domain.Court, 0, len(courts))
	for _, c := range courts {
		if c.Active {
			active = append(active, c)
		}
	}
	sort.SliceStable(active, func(i, j int) bool { return active[i].Name < active[j].Name })

	slots := []Slot{}
	if len(active) < q.CourtCount {
		return slots, nil
	}

	busy := make(map[string][]interval, len(active))
	for _, r := range occupancy {
		if !domain.IsOccupying(r, now) {
			continue
		}
		for _, id := range r.CourtIDs {
			busy[id] = append(busy[id], interval{start: r.StartAt, end: r.EndAt})
		}
	}

	step := settings.Granularity
	if step <= 0 {
		step = defaultGranularity
	}
	loc := settings.Loc()
	opening := settings.OpenFrom.On(q.Date, loc)
	closing := settings.OpenTo.On(q.Date, loc)

	for start := opening; !start.Add(q.Duration).After(closing); start = start.Add(step) {
		if start.Before(now) {
			continue
		}
		end := start.Add(q.Duration)

		free := make([]string, 0, q.CourtCount)
		for _, c := range active {
			if isFree(busy[c.ID], start, end) {
				free = append(free, c.ID)
				if len(free) == q.CourtCount {
					break
				}
			}
		}
		if len(free) == q.CourtCount {
			slots = append(slots, Slot{Time: start, Courts: free})
		}
	}
	return slots, nil
}

func isFree(busy []interval, start, end time.Time) bool {
	for _, b := range busy {
		if domain.Overlaps(b.start, b.end, start, end) {
			return false
		}
	}
	return true
}

// DayBounds returns the instants between which reservations can affect the
// opening hours of date.
func DayBounds(settings domain.ClubSettings, date time.Time) (time.Time, time.Time) {
	loc := settings.Loc()
	return settings.OpenFrom.On(date, loc), settings.OpenTo.On(date, loc)
}
