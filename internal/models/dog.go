package models

// Dog is a breed known to the registry. Breed is always lower-case.
type Dog struct {
	ID    int64  `json:"id"`
	Breed string `json:"breed"`
}
