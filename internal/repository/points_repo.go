package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"doggyrank/internal/models"
)

type PointsSQLite struct {
	db *sql.DB
}

func NewPointsSQLite(db *sql.DB) *PointsSQLite {
	return &PointsSQLite{db: db}
}

var _ PointsRepo = (*PointsSQLite)(nil)

const (
	insertPointsSQL = `
		INSERT INTO points (user_id, dog_id, points, created_at, updated_at)
		VALUES (?, ?, 0, ?, ?)
		ON CONFLICT(user_id, dog_id) DO NOTHING
	`

	selectPointsSQL = `
		SELECT id, user_id, dog_id, points, created_at, updated_at
		FROM points WHERE user_id = ? AND dog_id = ?
	`

	// Single statement read-modify-write: concurrent votes on the same row
	// cannot overwrite each other.
	addPointsSQL = `UPDATE points SET points = points + ?, updated_at = ? WHERE id = ?`

	selectPointsByIDSQL = `
		SELECT id, user_id, dog_id, points, created_at, updated_at
		FROM points WHERE id = ?
	`

	listPointsByUserSQL = `
		SELECT p.id, p.user_id, p.dog_id, p.points, p.created_at, p.updated_at, d.breed
		FROM points p JOIN dogs d ON d.id = p.dog_id
		WHERE p.user_id = ?
		ORDER BY d.breed ASC
	`
)

func scanPoints(row interface{ Scan(...any) error }, p *models.Points, extra ...any) error {
	dest := append([]any{&p.ID, &p.UserID, &p.DogID, &p.Points, &p.CreatedAt, &p.UpdatedAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		return err
	}
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return nil
}

// FindOrCreate returns the (userID, dogID) row, creating it with zero points if absent.
func (r *PointsSQLite) FindOrCreate(ctx context.Context, userID, dogID int64) (models.Points, bool, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, insertPointsSQL, userID, dogID, now, now)
	if err != nil {
		return models.Points{}, false, fmt.Errorf("insert points user=%d dog=%d: %w", userID, dogID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return models.Points{}, false, fmt.Errorf("rows affected for points user=%d dog=%d: %w", userID, dogID, err)
	}

	var p models.Points
	if err := scanPoints(r.db.QueryRowContext(ctx, selectPointsSQL, userID, dogID), &p); err != nil {
		return models.Points{}, false, fmt.Errorf("select points user=%d dog=%d: %w", userID, dogID, err)
	}
	return p, n > 0, nil
}

// AddDelta atomically adds delta to the row's points and returns the new row.
// The update and the read-back share a transaction, so the returned total is
// the one this call produced.
func (r *PointsSQLite) AddDelta(ctx context.Context, id int64, delta int) (models.Points, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Points{}, fmt.Errorf("begin points update %d: %w", id, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	res, err := tx.ExecContext(ctx, addPointsSQL, delta, time.Now().UTC(), id)
	if err != nil {
		return models.Points{}, fmt.Errorf("update points %d by %d: %w", id, delta, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return models.Points{}, fmt.Errorf("rows affected for points %d: %w", id, err)
	}
	if n == 0 {
		return models.Points{}, fmt.Errorf("update points %d by %d: %w", id, delta, sql.ErrNoRows)
	}

	var p models.Points
	if err := scanPoints(tx.QueryRowContext(ctx, selectPointsByIDSQL, id), &p); err != nil {
		return models.Points{}, fmt.Errorf("select points %d: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return models.Points{}, fmt.Errorf("commit points update %d: %w", id, err)
	}
	return p, nil
}

// ListByUser returns every points row of the user joined with its breed.
func (r *PointsSQLite) ListByUser(ctx context.Context, userID int64) ([]models.BreedPoints, error) {
	rows, err := r.db.QueryContext(ctx, listPointsByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list points for user %d: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.BreedPoints, 0, 16)
	for rows.Next() {
		var bp models.BreedPoints
		if err := scanPoints(rows, &bp.Points, &bp.Breed); err != nil {
			return nil, fmt.Errorf("scan points for user %d: %w", userID, err)
		}
		out = append(out, bp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate points for user %d: %w", userID, err)
	}
	return out, nil
}
