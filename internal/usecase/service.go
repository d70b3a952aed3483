package usecase

import (
	"cinema-api/internal/data/repository"
	"cinema-api/pkg/cache"
	"cinema-api/pkg/database"
	"cinema-api/pkg/storage"
	"cinema-api/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	Genre        GenreService
	Actor        ActorService
	CinemaHall   CinemaHallService
	Movie        MovieService
	MovieSession MovieSessionService
	Order        OrderService
}

func NewService(
	db database.PgxIface,
	repo *repository.Repository,
	seatCache *cache.SeatCache,
	images *storage.ImageStore,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:         NewAuthService(repo, config, log),
		Genre:        NewGenreService(repo.Genre, log),
		Actor:        NewActorService(repo.Actor, log),
		CinemaHall:   NewCinemaHallService(repo.CinemaHall, log),
		Movie:        NewMovieService(repo, images, log),
		MovieSession: NewMovieSessionService(repo, seatCache, log),
		Order:        NewOrderService(db, repo, seatCache, log),
	}
}
