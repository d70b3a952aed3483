package wire

import (
	"net/http"

	"cinema-api/internal/adaptor"
	"cinema-api/internal/usecase"
	"cinema-api/pkg/middleware"
	"cinema-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds the handler layer and hangs every route off the router.
func Wiring(service *usecase.Service, config *utils.Config, logger *zap.Logger) *App {
	handler := adaptor.NewHandler(service, config, logger)
	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	wireAuth(r, handler.Auth, config, logger)
	wireGenre(r, handler.Genre, config, logger)
	wireActor(r, handler.Actor, config, logger)
	wireCinemaHall(r, handler.CinemaHall, config, logger)
	wireMovie(r, handler.Movie, config, logger)
	wireMovieSession(r, handler.MovieSession, config, logger)
	wireOrder(r, handler.Order, config, logger)

	// Uploaded posters are served straight off the media dir.
	mediaServer := http.StripPrefix("/media/", http.FileServer(http.Dir(config.Media.Dir)))
	r.Get("/media/*", mediaServer.ServeHTTP)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
