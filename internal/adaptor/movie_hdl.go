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

type MovieHandler struct {
	service     usecase.MovieService
	maxUploadMB int
	log         *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, maxUploadMB int, log *zap.Logger) *MovieHandler {
	if maxUploadMB <= 0 {
		maxUploadMB = 5
	}
	return &MovieHandler{
		service:     service,
		maxUploadMB: maxUploadMB,
		log:         log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /api/movies with optional title, genres and actors
// filters. Filters combine with AND; malformed values are ignored.
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	title := query.Get("title")
	genreIDs := parseUUIDList(query.Get("genres"))
	actorIDs := parseUUIDList(query.Get("actors"))

	movies, err := h.service.GetMovies(r.Context(), title, genreIDs, actorIDs)
	if err != nil {
		handleServiceError(w, h.log, err, "get movies")
		return
	}

	utils.ResponseSuccess(w, "Movies retrieved successfully", movies)
}

// GetMovieByID handles GET /api/movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseNotFound(w, "Resource not found")
		return
	}

	movie, err := h.service.GetMovieByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get movie by ID")
		return
	}

	utils.ResponseSuccess(w, "Movie retrieved successfully", movie)
}

// CreateMovie handles POST /api/movies (staff only)
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create movie")
		return
	}

	utils.ResponseCreated(w, "Movie created successfully", movie)
}

// UpdateMovie handles PUT /api/movies/{id} (staff only)
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseNotFound(w, "Resource not found")
		return
	}

	var req request.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.UpdateMovie(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, "Movie updated successfully", movie)
}

// PatchMovie handles PATCH /api/movies/{id} (staff only)
func (h *MovieHandler) PatchMovie(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseNotFound(w, "Resource not found")
		return
	}

	var req request.MovieUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.PatchMovie(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "patch movie")
		return
	}

	utils.ResponseSuccess(w, "Movie updated successfully", movie)
}

// UploadImage handles POST /api/movies/{id}/upload-image (staff only). The poster
// arrives as the multipart field "image".
func (h *MovieHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseNotFound(w, "Resource not found")
		return
	}

	maxBytes := int64(h.maxUploadMB) << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(maxBytes); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart payload or file too large", nil)
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		utils.ResponseBadRequest(w, "Multipart field \"image\" is required", nil)
		return
	}
	defer file.Close()

	movie, err := h.service.UploadImage(r.Context(), id, file)
	if err != nil {
		handleServiceError(w, h.log, err, "upload movie image")
		return
	}

	utils.ResponseSuccess(w, "Movie image uploaded successfully", movie)
}
