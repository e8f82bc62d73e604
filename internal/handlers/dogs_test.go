package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"doggyrank"
	"doggyrank/internal/service"
)

func TestGetDog(t *testing.T) {
	img := doggyrank.DogImage{
		URL:   "https://images.dog.ceo/breeds/maltese/n02085936_10199.jpg",
		Breed: "maltese",
	}
	r := newTestRouter(&service.Service{DogImages: &mockDogImages{img: img}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/getdog", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var got doggyrank.DogImage
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if got != img {
		t.Fatalf("got %+v, want %+v", got, img)
	}
}

func TestGetDog_UpstreamFailure(t *testing.T) {
	r := newTestRouter(&service.Service{DogImages: &mockDogImages{err: service.ErrDogAPIUnavailable}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/getdog", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d", w.Code)
	}
	var out doggyrank.ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Message != msgDogFailed || out.Err != "" {
		t.Fatalf("unexpected body: %+v", out)
	}
}
