package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-api/internal/dto/request"
	"cinema-api/internal/usecase"
	"cinema-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieSessionHandler struct {
	service usecase.MovieSessionService
	log     *zap.Logger
}

func NewMovieSessionHandler(service usecase.MovieSessionService, log *zap.Logger) *MovieSessionHandler {
	return &MovieSessionHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie_session")),
	}
}

// GetSessions handles GET /api/movie_sessions with optional date
// (YYYY-MM-DD) and movie filters.
func (h *MovieSessionHandler) GetSessions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date := parseDateFilter(query.Get("date"))
	movieID := parseUUIDFilter(query.Get("movie"))

	sessions, err := h.service.GetSessions(r.Context(), date, movieID)
	if err != nil {
		handleServiceError(w, h.log, err, "get movie sessions")
		return
	}

	utils.ResponseSuccess(w, "Movie sessions retrieved successfully", sessions)
}

// GetSessionByID handles GET /api/movie_sessions/{id}
func (h *MovieSessionHandler) GetSessionByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseNotFound(w, "Resource not found")
		return
	}

	session, err := h.service.GetSessionByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get movie session by ID")
		return
	}

	utils.ResponseSuccess(w, "Movie session retrieved successfully", session)
}

// GetSessionSeats handles GET /api/movie_sessions/{id}/seats
func (h *MovieSessionHandler) GetSessionSeats(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseNotFound(w, "Resource not found")
		return
	}

	seats, err := h.service.GetSessionSeats(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get session seats")
		return
	}

	utils.ResponseSuccess(w, "Session seats retrieved successfully", seats)
}

// CreateSession handles POST /api/movie_sessions (staff only)
func (h *MovieSessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req request.MovieSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	session, err := h.service.CreateSession(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create movie session")
		return
	}

	utils.ResponseCreated(w, "Movie session created successfully", session)
}

// UpdateSession handles PUT /api/movie_sessions/{id} (staff only)
func (h *MovieSessionHandler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseNotFound(w, "Resource not found")
		return
	}

	var req request.MovieSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	session, err := h.service.UpdateSession(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update movie session")
		return
	}

	utils.ResponseSuccess(w, "Movie session updated successfully", session)
}
