package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinema-api/internal/dto/response"
	"cinema-api/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeGenreService struct {
	usecase.GenreService
	genre *response.GenreResponse
}

func (s *fakeGenreService) GetGenreByID(ctx context.Context, id uuid.UUID) (*response.GenreResponse, error) {
	if s.genre == nil {
		return nil, usecase.ErrNotFound
	}
	return s.genre, nil
}

func genreRouter(service usecase.GenreService) *chi.Mux {
	handler := NewGenreHandler(service, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/api/genres/{id}", handler.GetGenreByID)
	return r
}

func TestGetGenreByIDNotFound(t *testing.T) {
	router := genreRouter(&fakeGenreService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/genres/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetGenreByIDMalformedID(t *testing.T) {
	router := genreRouter(&fakeGenreService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/genres/not-a-uuid", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetGenreByIDFound(t *testing.T) {
	id := uuid.NewString()
	router := genreRouter(&fakeGenreService{genre: &response.GenreResponse{ID: id, Name: "Drama"}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/genres/"+id, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Drama")
}
