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

type ActorService interface {
	GetActors(ctx context.Context) ([]response.ActorResponse, error)
	GetActorByID(ctx context.Context, id uuid.UUID) (*response.ActorResponse, error)
	CreateActor(ctx context.Context, req *request.ActorRequest) (*response.ActorResponse, error)
}

type actorService struct {
	repo repository.ActorRepository
	log  *zap.Logger
}

func NewActorService(repo repository.ActorRepository, log *zap.Logger) ActorService {
	return &actorService{
		repo: repo,
		log:  log.With(zap.String("service", "actor")),
	}
}

func (s *actorService) GetActors(ctx context.Context) ([]response.ActorResponse, error) {
	actors, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return response.ActorsToResponse(actors), nil
}

func (s *actorService) GetActorByID(ctx context.Context, id uuid.UUID) (*response.ActorResponse, error) {
	actor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, ErrNotFound
	}

	resp := response.ActorToResponse(actor)
	return &resp, nil
}

func (s *actorService) CreateActor(ctx context.Context, req *request.ActorRequest) (*response.ActorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	actor := &entity.Actor{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: time.Now().UTC(),
		},
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	if err := s.repo.Create(ctx, actor); err != nil {
		return nil, err
	}

	s.log.Info("Actor created",
		zap.String("actor_id", actor.ID.String()),
		zap.String("name", actor.FullName()),
	)

	resp := response.ActorToResponse(actor)
	return &resp, nil
}
