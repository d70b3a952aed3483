package wire

import (
	"cinema-api/internal/adaptor"
	"cinema-api/pkg/middleware"
	"cinema-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovieSession(r chi.Router, sessionHandler *adaptor.MovieSessionHandler, config *utils.Config, log *zap.Logger) {
	r.Route("/api/movie_sessions", func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT.Secret, log))

		r.Get("/", sessionHandler.GetSessions)
		r.Get("/{id}", sessionHandler.GetSessionByID)
		r.Get("/{id}/seats", sessionHandler.GetSessionSeats)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Staff(log))
			r.Post("/", sessionHandler.CreateSession)
			r.Put("/{id}", sessionHandler.UpdateSession)
		})
	})
}
