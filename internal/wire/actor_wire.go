package wire

import (
	"cinema-api/internal/adaptor"
	"cinema-api/pkg/middleware"
	"cinema-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireActor(r chi.Router, actorHandler *adaptor.ActorHandler, config *utils.Config, log *zap.Logger) {
	r.Route("/api/actors", func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT.Secret, log))

		r.Get("/", actorHandler.GetActors)
		r.Get("/{id}", actorHandler.GetActorByID)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Staff(log))
			r.Post("/", actorHandler.CreateActor)
		})
	})
}
