package wire

import (
	"cinema-api/internal/adaptor"
	"cinema-api/pkg/middleware"
	"cinema-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireGenre(r chi.Router, genreHandler *adaptor.GenreHandler, config *utils.Config, log *zap.Logger) {
	r.Route("/api/genres", func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT.Secret, log))

		r.Get("/", genreHandler.GetGenres)
		r.Get("/{id}", genreHandler.GetGenreByID)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Staff(log))
			r.Post("/", genreHandler.CreateGenre)
		})
	})
}
