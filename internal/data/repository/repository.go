package repository

import (
	"cinema-api/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	AuthSession  AuthSessionRepository
	Genre        GenreRepository
	Actor        ActorRepository
	CinemaHall   CinemaHallRepository
	Movie        MovieRepository
	MovieSession MovieSessionRepository
	Order        OrderRepository
	Ticket       TicketRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		AuthSession:  NewAuthSessionRepository(db, log),
		Genre:        NewGenreRepository(db, log),
		Actor:        NewActorRepository(db, log),
		CinemaHall:   NewCinemaHallRepository(db, log),
		Movie:        NewMovieRepository(db, log),
		MovieSession: NewMovieSessionRepository(db, log),
		Order:        NewOrderRepository(db, log),
		Ticket:       NewTicketRepository(db, log),
	}
}
