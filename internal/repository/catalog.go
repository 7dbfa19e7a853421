package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"gorm.io/gorm"
)

type courtRow struct {
	ID        string `gorm:"primaryKey"`
	Name      string
	Active    bool
	CreatedAt time.Time
}

func (courtRow) TableName() string { return "courts" }

func (c courtRow) toDomain() *domain.Court {
	return &domain.Court{ID: c.ID, Name: c.Name, Active: c.Active, CreatedAt: c.CreatedAt.UTC()}
}

type rateRuleRow struct {
	ID              string `gorm:"primaryKey"`
	CourtID         *string
	HourlyRateCents int64
	Weekdays        pq.Int64Array `gorm:"type:bigint[]"`
	StartMinute     int
	EndMinute       int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (rateRuleRow) TableName() string { return "rate_rules" }

func newRateRuleRow(r *domain.RateRule) rateRuleRow {
	days := make(pq.Int64Array, 0, len(r.Weekdays))
	for _, d := range r.Weekdays {
		days = append(days, int64(d))
	}
	return rateRuleRow{
		ID:              r.ID,
		CourtID:         r.CourtID,
		HourlyRateCents: r.HourlyRateCents,
		Weekdays:        days,
		StartMinute:     int(r.StartTime),
		EndMinute:       int(r.EndTime),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func (r rateRuleRow) toDomain() *domain.RateRule {
	days := make([]time.Weekday, 0, len(r.Weekdays))
	for _, d := range r.Weekdays {
		days = append(days, time.Weekday(d))
	}
	return &domain.RateRule{
		ID:              r.ID,
		CourtID:         r.CourtID,
		HourlyRateCents: r.HourlyRateCents,
		Weekdays:        days,
		StartTime:       domain.TimeOfDay(r.StartMinute),
		EndTime:         domain.TimeOfDay(r.EndMinute),
		CreatedAt:       r.CreatedAt.UTC(),
		UpdatedAt:       r.UpdatedAt.UTC(),
	}
}

// CourtRepository keeps the court catalog. Courts are never deleted, only
// deactivated.
type CourtRepository struct {
	db *gorm.DB
}

func NewCourtRepo(db *gorm.DB) *CourtRepository {
	return &CourtRepository{db: db}
}

func (r *CourtRepository) Create(ctx context.Context, c *domain.Court) error {
	row := courtRow{ID: c.ID, Name: c.Name, Active: c.Active, CreatedAt: c.CreatedAt}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: court %q already exists", domain.ErrConflict, c.Name)
		}
		return fmt.Errorf("create court: %w", err)
	}
	return nil
}

func (r *CourtRepository) GetByID(ctx context.Context, id string) (*domain.Court, error) {
	if !validID(id) {
		return nil, domain.ErrCourtNotFound
	}

	var row courtRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCourtNotFound
		}
		return nil, fmt.Errorf("get court: %w", err)
	}
	return row.toDomain(), nil
}

func (r *CourtRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Court, error) {
	q := r.db.WithContext(ctx).Model(&courtRow{})
	if activeOnly {
		q = q.Where("active = ?", true)
	}

	var rows []courtRow
	if err := q.Order("name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list courts: %w", err)
	}

	out := make([]*domain.Court, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *CourtRepository) Deactivate(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrCourtNotFound
	}

	res := r.db.WithContext(ctx).Model(&courtRow{}).Where("id = ?", id).Update("active", false)
	if res.Error != nil {
		return fmt.Errorf("deactivate court: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrCourtNotFound
	}
	return nil
}

type RateRuleRepository struct {
	db *gorm.DB
}

func NewRateRuleRepo(db *gorm.DB) *RateRuleRepository {
	return &RateRuleRepository{db: db}
}

func (r *RateRuleRepository) Create(ctx context.Context, rule *domain.RateRule) error {
	row := newRateRuleRow(rule)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return translateRuleErr("create rate rule", rule, err)
	}
	return nil
}

func (r *RateRuleRepository) Update(ctx context.Context, rule *domain.RateRule) error {
	if !validID(rule.ID) {
		return domain.ErrRateRuleNotFound
	}

	row := newRateRuleRow(rule)
	res := r.db.WithContext(ctx).Model(&rateRuleRow{}).Where("id = ?", rule.ID).Updates(map[string]any{
		"court_id":          row.CourtID,
		"hourly_rate_cents": row.HourlyRateCents,
		"weekdays":          row.Weekdays,
		"start_minute":      row.StartMinute,
		"end_minute":        row.EndMinute,
		"updated_at":        row.UpdatedAt,
	})
	if res.Error != nil {
		return translateRuleErr("update rate rule", rule, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrRateRuleNotFound
	}
	return nil
}

func (r *RateRuleRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrRateRuleNotFound
	}

	res := r.db.WithContext(ctx).Delete(&rateRuleRow{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete rate rule: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrRateRuleNotFound
	}
	return nil
}

func (r *RateRuleRepository) GetByID(ctx context.Context, id string) (*domain.RateRule, error) {
	if !validID(id) {
		return nil, domain.ErrRateRuleNotFound
	}

	var row rateRuleRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRateRuleNotFound
		}
		return nil, fmt.Errorf("get rate rule: %w", err)
	}
	return row.toDomain(), nil
}

func (r *RateRuleRepository) List(ctx context.Context) ([]*domain.RateRule, error) {
	var rows []rateRuleRow
	if err := r.db.WithContext(ctx).Order("created_at").Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list rate rules: %w", err)
	}

	out := make([]*domain.RateRule, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func translateRuleErr(op string, rule *domain.RateRule, err error) error {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation, pgInvalidText:
			return fmt.Errorf("%w: rule %s references an unknown court", domain.ErrCourtNotFound, rule.ID)
		case pgUniqueViolation:
			return fmt.Errorf("%w: rule %s already exists", domain.ErrConflict, rule.ID)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
