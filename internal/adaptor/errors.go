package adaptor

import (
	"errors"
	"net/http"

	"cinema-api/internal/data/repository"
	"cinema-api/internal/usecase"
	"cinema-api/pkg/storage"
	"cinema-api/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps service errors onto the HTTP error taxonomy.
// Unknown errors are logged and masked as a plain 500.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, action string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.As(err, &validationErr):
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Fields)
	case errors.Is(err, usecase.ErrNotFound), errors.Is(err, repository.ErrNotFound):
		utils.ResponseNotFound(w, "Resource not found")
	case errors.Is(err, repository.ErrSeatTaken):
		utils.ResponseConflict(w, "One or more requested seats are already taken")
	case errors.Is(err, repository.ErrAlreadyExists):
		utils.ResponseBadRequest(w, "Resource already exists", nil)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		utils.ResponseUnauthorized(w, "Invalid credentials")
	case errors.Is(err, storage.ErrNotAnImage):
		utils.ResponseBadRequest(w, "Uploaded file is not a valid image", nil)
	default:
		log.Error("Unhandled service error", zap.Error(err), zap.String("action", action))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
