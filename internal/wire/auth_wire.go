package wire

import (
	"cinema-api/internal/adaptor"
	"cinema-api/pkg/middleware"
	"cinema-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler, config *utils.Config, log *zap.Logger) {
	// Register, login and the refresh-token flows are the only anonymous
	// surface of the API. Revoking every session needs a live access token.
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/refresh", authHandler.Refresh)
		r.Post("/logout", authHandler.Logout)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(config.JWT.Secret, log))
			r.Post("/logout-all", authHandler.LogoutAll)
		})
	})
}
