package models

import "time"

// Points is the score one user has given one dog.
type Points struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	DogID     int64     `json:"dog_id"`
	Points    int       `json:"points"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BreedPoints is a Points row joined with its dog's breed.
type BreedPoints struct {
	Points
	Breed string `json:"breed"`
}
