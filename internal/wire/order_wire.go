package wire

import (
	"cinema-api/internal/adaptor"
	"cinema-api/pkg/middleware"
	"cinema-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(r chi.Router, orderHandler *adaptor.OrderHandler, config *utils.Config, log *zap.Logger) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT.Secret, log))

		r.Get("/", orderHandler.GetOrders)
		r.Post("/", orderHandler.CreateOrder)
	})
}
