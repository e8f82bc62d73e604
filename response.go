package doggyrank

// ErrorResponse is the body written when a request fails.
// Err carries the underlying error detail and is omitted for client-facing
// messages that must not leak internals.
type ErrorResponse struct {
	Message string `json:"message"`
	Err     string `json:"err,omitempty"`
}

// TokenResponse is returned by a successful sign-in.
type TokenResponse struct {
	Token string `json:"token"`
}

// DogImage is a random dog picture and the breed parsed from its URL.
type DogImage struct {
	URL   string `json:"url"`
	Breed string `json:"breed"`
}
