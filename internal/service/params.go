package service

import "time"

// LogFilter supports vote history filtering by time range and breed.
type LogFilter struct {
	From  time.Time // inclusive; zero means no lower bound
	To    time.Time // inclusive; zero means no upper bound
	Breed string    // "" means any breed
}
