package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgInvalidText         = "22P02"
)

const reservationColumns = `r.id, r.owner_user_id, r.guest_name, r.guest_phone, r.telegram_chat_id,
	r.start_at, r.end_at, r.total_cents, r.status, r.payment_method, r.party_size,
	r.hold_expires_at, r.series_id, r.created_at, r.updated_at,
	ARRAY(SELECT rc.court_id::text FROM reservation_courts rc
	      WHERE rc.reservation_id = r.id ORDER BY rc.court_id) AS court_ids`

// occupancy condition: confirmed and pending rows always block, holds only
// while hold_expires_at is in the future
const conflictQuery = `SELECT EXISTS (
	SELECT 1
	FROM reservation_courts rc
	JOIN reservations r ON r.id = rc.reservation_id
	WHERE rc.court_id = $1
	  AND r.start_at < $3 AND $2 < r.end_at
	  AND ($4::text = '' OR r.id::text <> $4::text)
	  AND (r.status = ANY($5) OR (r.status = $6 AND r.hold_expires_at > $7))
)`

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ReservationRepository) CreateHold(ctx context.Context, res *domain.Reservation, now time.Time) error {
	_, err := r.CreateBatch(ctx, []*domain.Reservation{res}, now, false)
	return err
}

// CreateBatch inserts reservations under a lock on every court involved, so
// two concurrent writers cannot both pass the conflict check for the same
// slot. Without skipConflicts the batch is all or nothing; with it, taken
// slots are left out and returned.
func (r *ReservationRepository) CreateBatch(ctx context.Context, rs []*domain.Reservation, now time.Time, skipConflicts bool) ([]*domain.Reservation, error) {
	if len(rs) == 0 {
		return nil, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockCourts(ctx, tx, rs); err != nil {
		return nil, err
	}

	var skipped []*domain.Reservation
	inserted := 0
	for _, res := range rs {
		err = ensureFree(ctx, tx, res, "", now)
		if errors.Is(err, domain.ErrConflict) && skipConflicts {
			skipped = append(skipped, res)
			continue
		}
		if err != nil {
			return nil, err
		}

		if err = insertReservation(ctx, tx, res); err != nil {
			return nil, err
		}
		inserted++
	}

	if inserted == 0 {
		return skipped, fmt.Errorf("%w: every requested slot is taken", domain.ErrConflict)
	}
	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return skipped, nil
}

// ensureFree checks every court of res against occupying reservations at
// now. The caller must hold the court locks.
func ensureFree(ctx context.Context, tx *sql.Tx, res *domain.Reservation, excludeID string, now time.Time) error {
	// Проверяем пересечения по каждому корту
	for _, courtID := range res.CourtIDs {
		var busy bool
		if err := tx.QueryRowContext(ctx, conflictQuery,
			courtID, res.StartAt, res.EndAt, excludeID,
			pq.Array(domain.OccupyingStatuses), domain.StatusHold, now,
		).Scan(&busy); err != nil {
			return fmt.Errorf("check conflict: %w", err)
		}
		if busy {
			return fmt.Errorf("%w: court %s is taken at %s", domain.ErrConflict, courtID, res.StartAt.Format(time.RFC3339))
		}
	}
	return nil
}

func lockCourts(ctx context.Context, tx *sql.Tx, rs []*domain.Reservation) error {
	seen := make(map[string]struct{})
	var ids []string
	for _, res := range rs {
		for _, id := range res.CourtIDs {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}
	// фиксированный порядок захвата исключает взаимные блокировки
	sort.Strings(ids)

	for _, id := range ids {
		if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, id); err != nil {
			return fmt.Errorf("lock court %s: %w", id, err)
		}
	}
	return nil
}

func insertReservation(ctx context.Context, tx *sql.Tx, res *domain.Reservation) error {
	query := `INSERT INTO reservations (id, owner_user_id, guest_name, guest_phone, telegram_chat_id,
				start_at, end_at, total_cents, status, payment_method, party_size,
				hold_expires_at, series_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := tx.ExecContext(ctx, query,
		res.ID, res.Owner.UserID, res.Owner.GuestName, res.Owner.GuestPhone, res.Owner.TelegramChatID,
		res.StartAt, res.EndAt, res.TotalCents, res.Status, res.PaymentMethod, res.PartySize,
		res.HoldExpiresAt, res.SeriesID, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: reservation %s already exists", domain.ErrConflict, res.ID)
		}
		return fmt.Errorf("insert reservation: %w", err)
	}

	for _, courtID := range res.CourtIDs {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO reservation_courts (reservation_id, court_id) VALUES ($1, $2)`,
			res.ID, courtID,
		)
		if err != nil {
			var pgErr *pq.Error
			if errors.As(err, &pgErr) && (pgErr.Code == pgForeignKeyViolation || pgErr.Code == pgInvalidText) {
				return fmt.Errorf("%w: %s", domain.ErrCourtNotFound, courtID)
			}
			return fmt.Errorf("insert reservation court: %w", err)
		}
	}

	return upsertShares(ctx, tx, res.Shares)
}

func upsertShares(ctx context.Context, tx *sql.Tx, shares []*domain.Share) error {
	query := `INSERT INTO reservation_shares (id, reservation_id, user_id, name, amount_cents, paid, paid_at, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  ON CONFLICT (id) DO UPDATE
			  SET amount_cents = EXCLUDED.amount_cents,
			      paid = EXCLUDED.paid,
			      paid_at = EXCLUDED.paid_at`
	for _, s := range shares {
		if _, err := tx.ExecContext(ctx, query,
			s.ID, s.ReservationID, s.UserID, s.Name, s.AmountCents, s.Paid, s.PaidAt, s.CreatedAt,
		); err != nil {
			return fmt.Errorf("upsert share: %w", err)
		}
	}
	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	if !validID(id) {
		return nil, domain.ErrReservationNotFound
	}
	query := `SELECT ` + reservationColumns + ` FROM reservations r WHERE r.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidText(err) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	if err = r.loadShares(ctx, r.query, []*domain.Reservation{res}); err != nil {
		return nil, err
	}
	return res, nil
}

// Transition locks the row, applies fn and persists the result. An error from
// fn rolls everything back. When fn turns a hold into a permanent booking, the
// courts are re-checked under the same locks CreateBatch takes, at the instant
// fn stamped into UpdatedAt.
func (r *ReservationRepository) Transition(ctx context.Context, id string, fn ports.TransitionFunc) (*domain.Reservation, error) {
	if !validID(id) {
		return nil, domain.ErrReservationNotFound
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Блокируем строку брони до конца транзакции
	query := `SELECT ` + reservationColumns + ` FROM reservations r WHERE r.id = $1 FOR UPDATE`
	res, err := scanReservation(tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidText(err) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("lock reservation: %w", err)
	}

	if err = r.loadShares(ctx, tx.QueryContext, []*domain.Reservation{res}); err != nil {
		return nil, err
	}

	// Живой холд может стать постоянной бронью, поэтому корты блокируются
	// так же, как при создании холда
	wasHold := res.Status == domain.StatusHold
	if wasHold {
		if err = lockCourts(ctx, tx, []*domain.Reservation{res}); err != nil {
			return nil, err
		}
	}

	if err = fn(res); err != nil {
		return nil, err
	}

	if wasHold && slices.Contains(domain.OccupyingStatuses, res.Status) {
		// кто-то занял слот, пока холд числился просроченным
		if err = ensureFree(ctx, tx, res, res.ID, res.UpdatedAt); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				return nil, fmt.Errorf("%w: %v", domain.ErrHoldExpired, err)
			}
			return nil, err
		}
	}

	update := `UPDATE reservations
			   SET status = $2, payment_method = $3, hold_expires_at = $4,
			       total_cents = $5, updated_at = $6
			   WHERE id = $1`
	if _, err = tx.ExecContext(ctx, update,
		res.ID, res.Status, res.PaymentMethod, res.HoldExpiresAt, res.TotalCents, res.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("update reservation: %w", err)
	}

	if err = upsertShares(ctx, tx, res.Shares); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return res, nil
}

func (r *ReservationRepository) HasConflict(ctx context.Context, courtID string, start, end time.Time, excludeID string, now time.Time) (bool, error) {
	if !validID(courtID) {
		return false, domain.ErrCourtNotFound
	}

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, conflictQuery,
		courtID, start, end, excludeID,
		pq.Array(domain.OccupyingStatuses), domain.StatusHold, now,
	)
	if err != nil {
		return false, fmt.Errorf("check conflict: %w", err)
	}

	var busy bool
	if err = row.Scan(&busy); err != nil {
		return false, fmt.Errorf("scan conflict: %w", err)
	}
	return busy, nil
}

// ListOccupying returns every reservation that blocks some court inside
// [from, to) at now. Shares are not loaded.
func (r *ReservationRepository) ListOccupying(ctx context.Context, from, to, now time.Time) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations r
			  WHERE r.start_at < $2 AND $1 < r.end_at
			    AND (r.status = ANY($3) OR (r.status = $4 AND r.hold_expires_at > $5))
			  ORDER BY r.start_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query,
		from, to, pq.Array(domain.OccupyingStatuses), domain.StatusHold, now,
	)
	if err != nil {
		return nil, fmt.Errorf("list occupying: %w", err)
	}
	return collectReservations(rows)
}

// ExpireHolds flips every stale hold to expired in one statement and returns
// the rows it changed.
func (r *ReservationRepository) ExpireHolds(ctx context.Context, now time.Time) ([]*domain.Reservation, error) {
	query := `WITH expired AS (
				UPDATE reservations
				SET status = $2, hold_expires_at = NULL, updated_at = $1
				WHERE status = $3 AND hold_expires_at <= $1
				RETURNING *
			  )
			  SELECT ` + reservationColumns + ` FROM expired r`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, now, domain.StatusExpired, domain.StatusHold)
	if err != nil {
		return nil, fmt.Errorf("expire holds: %w", err)
	}
	return collectReservations(rows)
}

func (r *ReservationRepository) ListBySeries(ctx context.Context, seriesID string) ([]*domain.Reservation, error) {
	if !validID(seriesID) {
		return nil, nil
	}

	query := `SELECT ` + reservationColumns + `
			  FROM reservations r
			  WHERE r.series_id = $1
			  ORDER BY r.start_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, seriesID)
	if err != nil {
		return nil, fmt.Errorf("list by series: %w", err)
	}

	res, err := collectReservations(rows)
	if err != nil {
		return nil, err
	}
	if err = r.loadShares(ctx, r.query, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *ReservationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations r
			  WHERE r.owner_user_id = $1
			  ORDER BY r.start_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list by user: %w", err)
	}

	res, err := collectReservations(rows)
	if err != nil {
		return nil, err
	}
	if err = r.loadShares(ctx, r.query, res); err != nil {
		return nil, err
	}
	return res, nil
}

type queryFunc func(ctx context.Context, query string, args ...any) (*sql.Rows, error)

func (r *ReservationRepository) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return r.db.QueryWithRetry(ctx, r.strategy, query, args...)
}

func (r *ReservationRepository) loadShares(ctx context.Context, q queryFunc, rs []*domain.Reservation) error {
	if len(rs) == 0 {
		return nil
	}

	byID := make(map[string]*domain.Reservation, len(rs))
	ids := make([]string, 0, len(rs))
	for _, res := range rs {
		byID[res.ID] = res
		ids = append(ids, res.ID)
	}

	query := `SELECT id, reservation_id, user_id, name, amount_cents, paid, paid_at, created_at
			  FROM reservation_shares
			  WHERE reservation_id = ANY($1::uuid[])
			  ORDER BY created_at, id`

	rows, err := q(ctx, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("load shares: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			s      domain.Share
			paidAt sql.NullTime
		)
		if err = rows.Scan(&s.ID, &s.ReservationID, &s.UserID, &s.Name,
			&s.AmountCents, &s.Paid, &paidAt, &s.CreatedAt,
		); err != nil {
			return fmt.Errorf("scan share: %w", err)
		}
		if paidAt.Valid {
			t := paidAt.Time.UTC()
			s.PaidAt = &t
		}
		s.CreatedAt = s.CreatedAt.UTC()
		if res, ok := byID[s.ReservationID]; ok {
			res.Shares = append(res.Shares, &s)
		}
	}

	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		res      domain.Reservation
		chatID   sql.NullInt64
		expires  sql.NullTime
		seriesID sql.NullString
	)
	if err := row.Scan(
		&res.ID, &res.Owner.UserID, &res.Owner.GuestName, &res.Owner.GuestPhone, &chatID,
		&res.StartAt, &res.EndAt, &res.TotalCents, &res.Status, &res.PaymentMethod, &res.PartySize,
		&expires, &seriesID, &res.CreatedAt, &res.UpdatedAt, pq.Array(&res.CourtIDs),
	); err != nil {
		return nil, err
	}

	if chatID.Valid {
		res.Owner.TelegramChatID = &chatID.Int64
	}
	if expires.Valid {
		t := expires.Time.UTC()
		res.HoldExpiresAt = &t
	}
	if seriesID.Valid {
		res.SeriesID = &seriesID.String
	}
	res.StartAt = res.StartAt.UTC()
	res.EndAt = res.EndAt.UTC()
	res.CreatedAt = res.CreatedAt.UTC()
	res.UpdatedAt = res.UpdatedAt.UTC()

	return &res, nil
}

func collectReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		item, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, item)
	}

	return res, rows.Err()
}

func isInvalidText(err error) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == pgInvalidText
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
