package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"doggyrank/internal/models"
)

type DogSQLite struct {
	db *sql.DB
}

func NewDogSQLite(db *sql.DB) *DogSQLite {
	return &DogSQLite{db: db}
}

var _ DogRepo = (*DogSQLite)(nil)

const (
	// The UNIQUE(breed) constraint makes concurrent first votes for a breed
	// converge on a single row.
	insertDogSQL        = `INSERT INTO dogs (breed, created_at) VALUES (?, ?) ON CONFLICT(breed) DO NOTHING`
	selectDogByBreedSQL = `SELECT id, breed FROM dogs WHERE breed = ?`
)

// FindOrCreate inserts the breed if missing and returns the stored row.
func (r *DogSQLite) FindOrCreate(ctx context.Context, breed string) (models.Dog, bool, error) {
	res, err := r.db.ExecContext(ctx, insertDogSQL, breed, time.Now().UTC())
	if err != nil {
		return models.Dog{}, false, fmt.Errorf("insert dog %q: %w", breed, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return models.Dog{}, false, fmt.Errorf("rows affected for dog %q: %w", breed, err)
	}

	var d models.Dog
	if err := r.db.QueryRowContext(ctx, selectDogByBreedSQL, breed).Scan(&d.ID, &d.Breed); err != nil {
		return models.Dog{}, false, fmt.Errorf("select dog %q: %w", breed, err)
	}
	return d, n > 0, nil
}
