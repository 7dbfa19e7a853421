// Package pricing resolves the price of a court interval against time-band
// rate rules. It is pure: rules and club settings are passed in.
package pricing

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/stpnv0/CourtBooker/internal/domain"
)

const secondsPerHour = 3600

// Segment is one priced, contiguous part of a quote. RuleID is empty when the
// club default rate was applied.
type Segment struct {
	CourtID     string    `json:"court_id"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	RateCents   int64     `json:"rate_cents"`
	AmountCents int64     `json:"amount_cents"`
	RuleID      string    `json:"rule_id,omitempty"`
}

type Quote struct {
	TotalCents int64     `json:"total_cents"`
	Breakdown  []Segment `json:"breakdown"`
	Warnings   []string  `json:"warnings,omitempty"`
}

type piece struct {
	start, end time.Time
	rule       *domain.RateRule
}

// Compare ranks two rules competing for the same minute: positive when a wins.
// Court-specific beats global; within the same specificity the most recently
// created rule wins, then the greater id.
func Compare(a, b *domain.RateRule) int {
	if ka, kb := a.Scope().Kind, b.Scope().Kind; ka != kb {
		return int(ka) - int(kb)
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		if a.CreatedAt.After(b.CreatedAt) {
			return 1
		}
		return -1
	}
	return strings.Compare(a.ID, b.ID)
}

// Select picks the winning rule among candidates. tied holds every other
// candidate of the winner's specificity, i.e. an unresolved overlap.
func Select(candidates []*domain.RateRule) (best *domain.RateRule, tied []*domain.RateRule) {
	for _, c := range candidates {
		if best == nil || Compare(c, best) > 0 {
			best = c
		}
	}
	if best == nil {
		return nil, nil
	}
	for _, c := range candidates {
		if c != best && c.Scope().Kind == best.Scope().Kind {
			tied = append(tied, c)
		}
	}
	return best, tied
}

// Resolve prices [start, end) on one court.
func Resolve(rules []*domain.RateRule, settings domain.ClubSettings, courtID string, start, end time.Time) (*Quote, error) {
	if err := domain.ValidateInterval(start, end); err != nil {
		return nil, err
	}
	warnings := newWarningSet()
	quote, err := resolve(rules, settings, courtID, start, end, warnings)
	if err != nil {
		return nil, err
	}
	quote.Warnings = warnings.list()
	return quote, nil
}

func resolve(rules []*domain.RateRule, settings domain.ClubSettings, courtID string, start, end time.Time, warnings *warningSet) (*Quote, error) {

	applicable := make([]*domain.RateRule, 0, len(rules))
	for _, r := range rules {
		if r.Scope().AppliesTo(courtID) {
			applicable = append(applicable, r)
		}
	}

	loc := settings.Loc()
	var pieces []piece

	cursor := start.In(loc)
	last := end.In(loc)
	for cursor.Before(last) {
		y, m, d := cursor.Date()
		nextDay := time.Date(y, m, d+1, 0, 0, 0, 0, loc)
		segEnd := nextDay
		if last.Before(segEnd) {
			segEnd = last
		}
		pieces = append(pieces, splitDay(applicable, cursor, segEnd, loc, warnings)...)
		cursor = segEnd
	}

	return price(merge(pieces), settings.DefaultRate, courtID)
}

// ResolveMany prices the same interval on several courts and sums the quotes.
// An overlap is reported once even when it affects every court.
func ResolveMany(rules []*domain.RateRule, settings domain.ClubSettings, courtIDs []string, start, end time.Time) (*Quote, error) {
	if len(courtIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one court is required", domain.ErrValidation)
	}
	if err := domain.ValidateInterval(start, end); err != nil {
		return nil, err
	}

	warnings := newWarningSet()
	total := &Quote{}
	for _, id := range courtIDs {
		q, err := resolve(rules, settings, id, start, end, warnings)
		if err != nil {
			return nil, err
		}
		total.TotalCents += q.TotalCents
		total.Breakdown = append(total.Breakdown, q.Breakdown...)
	}
	total.Warnings = warnings.list()
	return total, nil
}

// splitDay partitions [from, to), which lies within one local calendar day, at
// every rule boundary and resolves each part.
func splitDay(rules []*domain.RateRule, from, to time.Time, loc *time.Location, warnings *warningSet) []piece {
	weekday := from.Weekday()

	type band struct {
		rule       *domain.RateRule
		start, end time.Time
	}
	var bands []band
	cuts := []time.Time{from, to}
	for _, r := range rules {
		if !r.AppliesOn(weekday) {
			continue
		}
		bs, be := r.StartTime.On(from, loc), r.EndTime.On(from, loc)
		if !domain.Overlaps(bs, be, from, to) {
			continue
		}
		bands = append(bands, band{rule: r, start: bs, end: be})
		if bs.After(from) && bs.Before(to) {
			cuts = append(cuts, bs)
		}
		if be.After(from) && be.Before(to) {
			cuts = append(cuts, be)
		}
	}

	sort.Slice(cuts, func(i, j int) bool { return cuts[i].Before(cuts[j]) })

	var out []piece
	for i := 0; i+1 < len(cuts); i++ {
		a, b := cuts[i], cuts[i+1]
		if !a.Before(b) {
			continue
		}
		var candidates []*domain.RateRule
		for _, bd := range bands {
			if !bd.start.After(a) && !bd.end.Before(b) {
				candidates = append(candidates, bd.rule)
			}
		}
		best, tied := Select(candidates)
		if len(tied) > 0 {
			warnings.addOverlap(best, tied)
		}
		out = append(out, piece{start: a, end: b, rule: best})
	}
	return out
}

func merge(pieces []piece) []piece {
	var out []piece
	for _, p := range pieces {
		if n := len(out); n > 0 && out[n-1].rule == p.rule && out[n-1].end.Equal(p.start) {
			out[n-1].end = p.end
			continue
		}
		out = append(out, p)
	}
	return out
}

// price accrues each segment in rate-seconds and carries the sub-unit
// remainder into the next segment; the final remainder rounds half up.
func price(pieces []piece, defaultRate *int64, courtID string) (*Quote, error) {
	q := &Quote{Breakdown: make([]Segment, 0, len(pieces))}
	var carry int64
	for _, p := range pieces {
		seg := Segment{CourtID: courtID, Start: p.start, End: p.end}
		switch {
		case p.rule != nil:
			seg.RateCents = p.rule.HourlyRateCents
			seg.RuleID = p.rule.ID
		case defaultRate != nil:
			seg.RateCents = *defaultRate
		default:
			return nil, fmt.Errorf("%w: %s - %s",
				domain.ErrPricingUnavailable, p.start.Format(time.RFC3339), p.end.Format(time.RFC3339))
		}

		secs := int64(p.end.Sub(p.start) / time.Second)
		exact := secs*seg.RateCents + carry
		seg.AmountCents = exact / secondsPerHour
		carry = exact % secondsPerHour

		q.TotalCents += seg.AmountCents
		q.Breakdown = append(q.Breakdown, seg)
	}
	if n := len(q.Breakdown); n > 0 && carry*2 >= secondsPerHour {
		q.Breakdown[n-1].AmountCents++
		q.TotalCents++
	}
	return q, nil
}

type warningSet struct {
	seen  map[string]struct{}
	items []string
}

func newWarningSet() *warningSet {
	return &warningSet{seen: make(map[string]struct{})}
}

func (w *warningSet) addOverlap(best *domain.RateRule, tied []*domain.RateRule) {
	ids := []string{best.ID}
	for _, t := range tied {
		ids = append(ids, t.ID)
	}
	sort.Strings(ids)
	key := strings.Join(ids, ",")
	if _, ok := w.seen[key]; ok {
		return
	}
	w.seen[key] = struct{}{}
	w.items = append(w.items, fmt.Sprintf(
		"rate rules %s overlap at %s scope; applied %s", key, best.Scope(), best.ID))
}

func (w *warningSet) list() []string {
	return w.items
}
