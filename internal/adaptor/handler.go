package adaptor

import (
	"cinema-api/internal/usecase"
	"cinema-api/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth         *AuthHandler
	Genre        *GenreHandler
	Actor        *ActorHandler
	CinemaHall   *CinemaHallHandler
	Movie        *MovieHandler
	MovieSession *MovieSessionHandler
	Order        *OrderHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(service.Auth, log),
		Genre:        NewGenreHandler(service.Genre, log),
		Actor:        NewActorHandler(service.Actor, log),
		CinemaHall:   NewCinemaHallHandler(service.CinemaHall, log),
		Movie:        NewMovieHandler(service.Movie, config.Media.MaxUploadMB, log),
		MovieSession: NewMovieSessionHandler(service.MovieSession, log),
		Order:        NewOrderHandler(service.Order, log),
	}
}
