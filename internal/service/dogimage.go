package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	"doggyrank"
	"doggyrank/internal/metrics"
)

// DogAPIOptions configures the dog image API client.
type DogAPIOptions struct {
	BaseURL string
	Timeout time.Duration
}

const (
	defaultDogAPIBaseURL = "https://dog.ceo"
	defaultDogAPITimeout = 10 * time.Second
	randomImagePath      = "/api/breeds/image/random"
	dogAPIStatusSuccess  = "success"
)

// DogAPIClient talks to dog.ceo (or a compatible server).
type DogAPIClient struct {
	baseURL string
	client  *http.Client
}

func NewDogAPIClient(opts DogAPIOptions) *DogAPIClient {
	base := opts.BaseURL
	if base == "" {
		base = defaultDogAPIBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultDogAPITimeout
	}
	return &DogAPIClient{
		baseURL: base,
		client:  &http.Client{Timeout: timeout},
	}
}

type randomImageResponse struct {
	Message string `json:"message"` // image URL
	Status  string `json:"status"`
}

// RandomDog fetches a random image and derives the breed from its URL.
func (c *DogAPIClient) RandomDog(ctx context.Context) (doggyrank.DogImage, error) {
	img, err := c.randomDog(ctx)
	if err != nil {
		metrics.DogAPIRequestsTotal.WithLabelValues("error").Inc()
		return doggyrank.DogImage{}, fmt.Errorf("%w: %v", ErrDogAPIUnavailable, err)
	}
	metrics.DogAPIRequestsTotal.WithLabelValues("ok").Inc()
	return img, nil
}

func (c *DogAPIClient) randomDog(ctx context.Context) (doggyrank.DogImage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+randomImagePath, nil)
	if err != nil {
		return doggyrank.DogImage{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return doggyrank.DogImage{}, fmt.Errorf("get random image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return doggyrank.DogImage{}, fmt.Errorf("get random image: unexpected status %d", resp.StatusCode)
	}

	var body randomImageResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return doggyrank.DogImage{}, fmt.Errorf("decode random image: %w", err)
	}
	if body.Status != dogAPIStatusSuccess {
		return doggyrank.DogImage{}, fmt.Errorf("dog api status %q", body.Status)
	}

	breed, err := BreedFromImageURL(body.Message)
	if err != nil {
		return doggyrank.DogImage{}, err
	}
	return doggyrank.DogImage{URL: body.Message, Breed: breed}, nil
}

// BreedFromImageURL returns the directory holding the image, which dog.ceo
// names after the breed: https://images.dog.ceo/breeds/maltese/n02085936_10199.jpg -> maltese.
func BreedFromImageURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse image url %q: %w", raw, err)
	}
	dir := path.Dir(u.Path)
	breed := path.Base(dir)
	if breed == "." || breed == "/" || breed == "" {
		return "", fmt.Errorf("no breed in image url %q", raw)
	}
	return breed, nil
}
