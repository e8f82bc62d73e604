package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"doggyrank/internal/models"

	"github.com/google/uuid"
)

type VoteEventSQLite struct {
	db *sql.DB
}

func NewVoteEventSQLite(db *sql.DB) *VoteEventSQLite { return &VoteEventSQLite{db: db} }

var _ VoteEventRepo = (*VoteEventSQLite)(nil)

const (
	insertVoteEventSQL = `
		INSERT INTO vote_events (event_id, occurred_at, user_id, dog_id, breed, delta, points)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	selectVoteEventColumns = `SELECT seq, event_id, occurred_at, user_id, dog_id, breed, delta, points FROM vote_events`
	listVoteEventsAfterSQL = selectVoteEventColumns + ` WHERE seq > ? ORDER BY seq ASC LIMIT ?`
)

// Append inserts a new event. If EventID or OccurredAt are empty, they’re set.
func (r *VoteEventSQLite) Append(ctx context.Context, e models.VoteEvent) error {
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	} else {
		e.OccurredAt = e.OccurredAt.UTC()
	}

	_, err := r.db.ExecContext(ctx, insertVoteEventSQL,
		e.EventID,
		e.OccurredAt,
		e.UserID,
		e.DogID,
		strings.ToLower(strings.TrimSpace(e.Breed)),
		e.Delta,
		e.Points,
	)
	if err != nil {
		return fmt.Errorf("insert vote event %s: %w", e.EventID, err)
	}
	return nil
}

// List returns events filtered by [from, to] (inclusive) and/or breed, oldest first.
func (r *VoteEventSQLite) List(ctx context.Context, from, to time.Time, breed string) ([]models.VoteEvent, error) {
	var (
		conds []string
		args  []any
	)

	if !from.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, from.UTC())
	}
	if !to.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, to.UTC())
	}
	if breed = strings.ToLower(strings.TrimSpace(breed)); breed != "" {
		conds = append(conds, "breed = ?")
		args = append(args, breed)
	}

	q := selectVoteEventColumns
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY seq ASC"

	return r.query(ctx, q, args...)
}

// ListAfter returns up to limit events with a sequence number greater than seq.
func (r *VoteEventSQLite) ListAfter(ctx context.Context, seq int64, limit int) ([]models.VoteEvent, error) {
	return r.query(ctx, listVoteEventsAfterSQL, seq, limit)
}

func (r *VoteEventSQLite) query(ctx context.Context, q string, args ...any) ([]models.VoteEvent, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query vote events: %w", err)
	}
	defer rows.Close()

	out := make([]models.VoteEvent, 0, 64)
	for rows.Next() {
		var ev models.VoteEvent
		if err := rows.Scan(&ev.Seq, &ev.EventID, &ev.OccurredAt, &ev.UserID, &ev.DogID, &ev.Breed, &ev.Delta, &ev.Points); err != nil {
			return nil, fmt.Errorf("scan vote event: %w", err)
		}
		ev.OccurredAt = ev.OccurredAt.UTC()
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
