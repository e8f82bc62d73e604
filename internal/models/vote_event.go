package models

import "time"

// VoteEvent is a single entry of the append-only vote log.
type VoteEvent struct {
	Seq        int64     `json:"seq"`
	EventID    string    `json:"event_id"`
	OccurredAt time.Time `json:"occurred_at"`
	UserID     int64     `json:"user_id"`
	DogID      int64     `json:"dog_id"`
	Breed      string    `json:"breed"`
	Delta      int       `json:"delta"`  // +5 up, -3 down
	Points     int       `json:"points"` // total after the vote
}
