package wire

import (
	"cinema-api/internal/adaptor"
	"cinema-api/pkg/middleware"
	"cinema-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCinemaHall(r chi.Router, hallHandler *adaptor.CinemaHallHandler, config *utils.Config, log *zap.Logger) {
	r.Route("/api/cinema_halls", func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT.Secret, log))

		r.Get("/", hallHandler.GetCinemaHalls)
		r.Get("/{id}", hallHandler.GetCinemaHallByID)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Staff(log))
			r.Post("/", hallHandler.CreateCinemaHall)
		})
	})
}
