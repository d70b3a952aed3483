package wire

import (
	"cinema-api/internal/adaptor"
	"cinema-api/pkg/middleware"
	"cinema-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler, config *utils.Config, log *zap.Logger) {
	r.Route("/api/movies", func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT.Secret, log))

		r.Get("/", movieHandler.GetMovies)
		r.Get("/{id}", movieHandler.GetMovieByID)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Staff(log))
			r.Post("/", movieHandler.CreateMovie)
			r.Put("/{id}", movieHandler.UpdateMovie)
			r.Patch("/{id}", movieHandler.PatchMovie)
			r.Post("/{id}/upload-image", movieHandler.UploadImage)
		})
	})
}
