package usecase

import (
	"context"
	"time"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/data/repository"
	"cinema-api/internal/dto/request"
	"cinema-api/internal/dto/response"
	"cinema-api/pkg/cache"
	"cinema-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieSessionService interface {
	GetSessions(ctx context.Context, date *time.Time, movieID *uuid.UUID) ([]response.MovieSessionListResponse, error)
	GetSessionByID(ctx context.Context, id uuid.UUID) (*response.MovieSessionDetailResponse, error)
	CreateSession(ctx context.Context, req *request.MovieSessionRequest) (*response.MovieSessionDetailResponse, error)
	UpdateSession(ctx context.Context, id uuid.UUID, req *request.MovieSessionRequest) (*response.MovieSessionDetailResponse, error)
	GetSessionSeats(ctx context.Context, id uuid.UUID) (*response.SessionSeatsResponse, error)
}

type movieSessionService struct {
	repo      *repository.Repository
	seatCache *cache.SeatCache
	log       *zap.Logger
}

func NewMovieSessionService(repo *repository.Repository, seatCache *cache.SeatCache, log *zap.Logger) MovieSessionService {
	return &movieSessionService{
		repo:      repo,
		seatCache: seatCache,
		log:       log.With(zap.String("service", "movie_session")),
	}
}

func (s *movieSessionService) GetSessions(ctx context.Context, date *time.Time, movieID *uuid.UUID) ([]response.MovieSessionListResponse, error) {
	sessions, err := s.repo.MovieSession.FindAll(ctx, date, movieID)
	if err != nil {
		return nil, err
	}

	return response.SessionsToListResponse(sessions), nil
}

func (s *movieSessionService) GetSessionByID(ctx context.Context, id uuid.UUID) (*response.MovieSessionDetailResponse, error) {
	session, err := s.repo.MovieSession.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNotFound
	}

	return s.toDetail(ctx, session)
}

func (s *movieSessionService) CreateSession(ctx context.Context, req *request.MovieSessionRequest) (*response.MovieSessionDetailResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	showTime, movieID, hallID, err := s.resolveSessionFields(ctx, req)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session := &entity.MovieSession{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ShowTime:     showTime,
		MovieID:      movieID,
		CinemaHallID: hallID,
	}

	if err := s.repo.MovieSession.Create(ctx, session); err != nil {
		return nil, err
	}

	s.log.Info("Movie session created",
		zap.String("session_id", session.ID.String()),
		zap.String("movie_id", movieID.String()),
		zap.Time("show_time", showTime),
	)

	details, err := s.repo.MovieSession.FindByID(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	return s.toDetail(ctx, details)
}

func (s *movieSessionService) UpdateSession(ctx context.Context, id uuid.UUID, req *request.MovieSessionRequest) (*response.MovieSessionDetailResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	existing, err := s.repo.MovieSession.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	showTime, movieID, hallID, err := s.resolveSessionFields(ctx, req)
	if err != nil {
		return nil, err
	}

	session := &entity.MovieSession{
		Base: entity.Base{
			ID:        id,
			CreatedAt: existing.CreatedAt,
			UpdatedAt: time.Now().UTC(),
		},
		ShowTime:     showTime,
		MovieID:      movieID,
		CinemaHallID: hallID,
	}

	if err := s.repo.MovieSession.Update(ctx, session); err != nil {
		return nil, err
	}

	details, err := s.repo.MovieSession.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toDetail(ctx, details)
}

// GetSessionSeats returns the seating plan with taken places. The Redis
// entry is consulted first; on a miss the taken set is loaded from
// Postgres and cached for the next poll.
func (s *movieSessionService) GetSessionSeats(ctx context.Context, id uuid.UUID) (*response.SessionSeatsResponse, error) {
	hall, err := s.repo.CinemaHall.FindBySessionID(ctx, id)
	if err != nil {
		return nil, err
	}
	if hall == nil {
		return nil, ErrNotFound
	}

	seats, hit := s.seatCache.GetTakenSeats(ctx, id)
	if !hit {
		places, err := s.repo.Ticket.FindTakenPlaces(ctx, id)
		if err != nil {
			return nil, err
		}
		seats = make([]cache.SeatTuple, len(places))
		for i, place := range places {
			seats[i] = cache.SeatTuple{Row: place.Row, Seat: place.Seat}
		}
		s.seatCache.SetTakenSeats(ctx, id, seats)
	}

	taken := make([]response.SeatResponse, len(seats))
	for i, seat := range seats {
		taken[i] = response.SeatResponse{Row: seat.Row, Seat: seat.Seat}
	}

	return &response.SessionSeatsResponse{
		SessionID:        id.String(),
		Rows:             hall.Rows,
		SeatsInRow:       hall.SeatsInRow,
		Capacity:         hall.Capacity(),
		TakenPlaces:      taken,
		TicketsAvailable: hall.Capacity() - len(taken),
	}, nil
}

// resolveSessionFields parses the show time and verifies the movie and
// hall both exist before any write happens.
func (s *movieSessionService) resolveSessionFields(ctx context.Context, req *request.MovieSessionRequest) (time.Time, uuid.UUID, uuid.UUID, error) {
	showTime, err := time.Parse(time.RFC3339, req.ShowTime)
	if err != nil {
		return time.Time{}, uuid.Nil, uuid.Nil,
			NewFieldError("show_time", "must be an RFC 3339 timestamp, e.g. 2026-01-15T19:30:00Z")
	}

	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return time.Time{}, uuid.Nil, uuid.Nil, NewFieldError("movie", "%q is not a valid movie id", req.MovieID)
	}
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return time.Time{}, uuid.Nil, uuid.Nil, err
	}
	if movie == nil {
		return time.Time{}, uuid.Nil, uuid.Nil, NewFieldError("movie", "movie %s does not exist", req.MovieID)
	}

	hallID, err := uuid.Parse(req.CinemaHallID)
	if err != nil {
		return time.Time{}, uuid.Nil, uuid.Nil,
			NewFieldError("cinema_hall", "%q is not a valid cinema hall id", req.CinemaHallID)
	}
	hall, err := s.repo.CinemaHall.FindByID(ctx, hallID)
	if err != nil {
		return time.Time{}, uuid.Nil, uuid.Nil, err
	}
	if hall == nil {
		return time.Time{}, uuid.Nil, uuid.Nil,
			NewFieldError("cinema_hall", "cinema hall %s does not exist", req.CinemaHallID)
	}

	return showTime, movieID, hallID, nil
}

func (s *movieSessionService) toDetail(ctx context.Context, session *repository.SessionDetails) (*response.MovieSessionDetailResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, session.MovieID)
	if err != nil {
		return nil, err
	}
	hall, err := s.repo.CinemaHall.FindByID(ctx, session.CinemaHallID)
	if err != nil {
		return nil, err
	}
	if movie == nil || hall == nil {
		return nil, ErrNotFound
	}

	genres, err := s.repo.Genre.FindByMovieID(ctx, session.MovieID)
	if err != nil {
		return nil, err
	}
	actors, err := s.repo.Actor.FindByMovieID(ctx, session.MovieID)
	if err != nil {
		return nil, err
	}

	return &response.MovieSessionDetailResponse{
		ID:         session.ID.String(),
		ShowTime:   session.ShowTime,
		Movie:      response.MovieToListResponse(movie, genres, actors),
		CinemaHall: response.CinemaHallToResponse(hall),
	}, nil
}
