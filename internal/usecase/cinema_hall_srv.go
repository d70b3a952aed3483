package usecase

import (
	"context"
	"time"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/data/repository"
	"cinema-api/internal/dto/request"
	"cinema-api/internal/dto/response"
	"cinema-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CinemaHallService interface {
	GetCinemaHalls(ctx context.Context) ([]response.CinemaHallResponse, error)
	GetCinemaHallByID(ctx context.Context, id uuid.UUID) (*response.CinemaHallResponse, error)
	CreateCinemaHall(ctx context.Context, req *request.CinemaHallRequest) (*response.CinemaHallResponse, error)
}

type cinemaHallService struct {
	repo repository.CinemaHallRepository
	log  *zap.Logger
}

func NewCinemaHallService(repo repository.CinemaHallRepository, log *zap.Logger) CinemaHallService {
	return &cinemaHallService{
		repo: repo,
		log:  log.With(zap.String("service", "cinema_hall")),
	}
}

func (s *cinemaHallService) GetCinemaHalls(ctx context.Context) ([]response.CinemaHallResponse, error) {
	halls, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return response.CinemaHallsToResponse(halls), nil
}

func (s *cinemaHallService) GetCinemaHallByID(ctx context.Context, id uuid.UUID) (*response.CinemaHallResponse, error) {
	hall, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if hall == nil {
		return nil, ErrNotFound
	}

	resp := response.CinemaHallToResponse(hall)
	return &resp, nil
}

func (s *cinemaHallService) CreateCinemaHall(ctx context.Context, req *request.CinemaHallRequest) (*response.CinemaHallResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	hall := &entity.CinemaHall{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: time.Now().UTC(),
		},
		Name:       req.Name,
		Rows:       req.Rows,
		SeatsInRow: req.SeatsInRow,
	}

	if err := s.repo.Create(ctx, hall); err != nil {
		return nil, err
	}

	s.log.Info("Cinema hall created",
		zap.String("hall_id", hall.ID.String()),
		zap.String("name", hall.Name),
		zap.Int("capacity", hall.Capacity()),
	)

	resp := response.CinemaHallToResponse(hall)
	return &resp, nil
}
