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

type CinemaHallHandler struct {
	service usecase.CinemaHallService
	log     *zap.Logger
}

func NewCinemaHallHandler(service usecase.CinemaHallService, log *zap.Logger) *CinemaHallHandler {
	return &CinemaHallHandler{
		service: service,
		log:     log.With(zap.String("handler", "cinema_hall")),
	}
}

// GetCinemaHalls handles GET /api/cinema_halls
func (h *CinemaHallHandler) GetCinemaHalls(w http.ResponseWriter, r *http.Request) {
	halls, err := h.service.GetCinemaHalls(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get cinema halls")
		return
	}

	utils.ResponseSuccess(w, "Cinema halls retrieved successfully", halls)
}

// GetCinemaHallByID handles GET /api/cinema_halls/{id}
func (h *CinemaHallHandler) GetCinemaHallByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseNotFound(w, "Resource not found")
		return
	}

	hall, err := h.service.GetCinemaHallByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get cinema hall by ID")
		return
	}

	utils.ResponseSuccess(w, "Cinema hall retrieved successfully", hall)
}

// CreateCinemaHall handles POST /api/cinema_halls (staff only)
func (h *CinemaHallHandler) CreateCinemaHall(w http.ResponseWriter, r *http.Request) {
	var req request.CinemaHallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	hall, err := h.service.CreateCinemaHall(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create cinema hall")
		return
	}

	utils.ResponseCreated(w, "Cinema hall created successfully", hall)
}
