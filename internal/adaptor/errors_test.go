package adaptor

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinema-api/internal/data/repository"
	"cinema-api/internal/usecase"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestHandleServiceErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"usecase not found", usecase.ErrNotFound, http.StatusNotFound},
		{"repository not found", fmt.Errorf("movie abc: %w", repository.ErrNotFound), http.StatusNotFound},
		{"seat taken", fmt.Errorf("row 1 seat 2: %w", repository.ErrSeatTaken), http.StatusConflict},
		{"already exists", repository.ErrAlreadyExists, http.StatusBadRequest},
		{"invalid credentials", usecase.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleServiceError(rec, zap.NewNop(), tc.err, "test")
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}
