package usecase

import (
	"context"
	"io"
	"time"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/data/repository"
	"cinema-api/internal/dto/request"
	"cinema-api/internal/dto/response"
	"cinema-api/pkg/storage"
	"cinema-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context, title string, genreIDs, actorIDs []uuid.UUID) ([]response.MovieListResponse, error)
	GetMovieByID(ctx context.Context, id uuid.UUID) (*response.MovieDetailResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieDetailResponse, error)
	UpdateMovie(ctx context.Context, id uuid.UUID, req *request.MovieRequest) (*response.MovieDetailResponse, error)
	PatchMovie(ctx context.Context, id uuid.UUID, req *request.MovieUpdateRequest) (*response.MovieDetailResponse, error)
	UploadImage(ctx context.Context, id uuid.UUID, payload io.Reader) (*response.MovieDetailResponse, error)
}

type movieService struct {
	repo   *repository.Repository
	images *storage.ImageStore
	log    *zap.Logger
}

func NewMovieService(repo *repository.Repository, images *storage.ImageStore, log *zap.Logger) MovieService {
	return &movieService{
		repo:   repo,
		images: images,
		log:    log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context, title string, genreIDs, actorIDs []uuid.UUID) ([]response.MovieListResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx, title, genreIDs, actorIDs)
	if err != nil {
		return nil, err
	}

	out := make([]response.MovieListResponse, 0, len(movies))
	for _, movie := range movies {
		genres, actors, err := s.movieLinks(ctx, movie.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, response.MovieToListResponse(movie, genres, actors))
	}

	return out, nil
}

func (s *movieService) GetMovieByID(ctx context.Context, id uuid.UUID) (*response.MovieDetailResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrNotFound
	}

	return s.toDetail(ctx, movie)
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieDetailResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	genreIDs, err := s.resolveGenres(ctx, req.GenreIDs)
	if err != nil {
		return nil, err
	}
	actorIDs, err := s.resolveActors(ctx, req.ActorIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
	}

	if err := s.repo.Movie.Create(ctx, movie, genreIDs, actorIDs); err != nil {
		return nil, err
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
	)

	return s.toDetail(ctx, movie)
}

// UpdateMovie replaces every mutable field; missing genre/actor lists in
// the request clear the associations.
func (s *movieService) UpdateMovie(ctx context.Context, id uuid.UUID, req *request.MovieRequest) (*response.MovieDetailResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrNotFound
	}

	genreIDs, err := s.resolveGenres(ctx, req.GenreIDs)
	if err != nil {
		return nil, err
	}
	actorIDs, err := s.resolveActors(ctx, req.ActorIDs)
	if err != nil {
		return nil, err
	}
	if genreIDs == nil {
		genreIDs = []uuid.UUID{}
	}
	if actorIDs == nil {
		actorIDs = []uuid.UUID{}
	}

	movie.Title = req.Title
	movie.Description = req.Description
	movie.Duration = req.Duration
	movie.UpdatedAt = time.Now().UTC()

	if err := s.repo.Movie.Update(ctx, movie, genreIDs, actorIDs); err != nil {
		return nil, err
	}

	return s.toDetail(ctx, movie)
}

// PatchMovie changes only the fields present in the request. Omitted
// genre/actor lists leave the associations untouched.
func (s *movieService) PatchMovie(ctx context.Context, id uuid.UUID, req *request.MovieUpdateRequest) (*response.MovieDetailResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrNotFound
	}

	if req.Title != nil {
		movie.Title = *req.Title
	}
	if req.Description != nil {
		movie.Description = *req.Description
	}
	if req.Duration != nil {
		movie.Duration = *req.Duration
	}
	movie.UpdatedAt = time.Now().UTC()

	var genreIDs, actorIDs []uuid.UUID
	if req.GenreIDs != nil {
		if genreIDs, err = s.resolveGenres(ctx, req.GenreIDs); err != nil {
			return nil, err
		}
	}
	if req.ActorIDs != nil {
		if actorIDs, err = s.resolveActors(ctx, req.ActorIDs); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Movie.Update(ctx, movie, genreIDs, actorIDs); err != nil {
		return nil, err
	}

	return s.toDetail(ctx, movie)
}

// UploadImage stores the sniffed poster on disk and points the movie at
// it. A previous poster file is removed once the record is updated.
func (s *movieService) UploadImage(ctx context.Context, id uuid.UUID, payload io.Reader) (*response.MovieDetailResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrNotFound
	}

	name, err := s.images.SaveMovieImage(movie.ID, payload)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Movie.SetImage(ctx, movie.ID, name); err != nil {
		s.images.Remove(name)
		return nil, err
	}

	if movie.Image != nil {
		s.images.Remove(*movie.Image)
	}
	movie.Image = &name

	s.log.Info("Movie image uploaded",
		zap.String("movie_id", movie.ID.String()),
		zap.String("image", name),
	)

	return s.toDetail(ctx, movie)
}

func (s *movieService) movieLinks(ctx context.Context, movieID uuid.UUID) ([]*entity.Genre, []*entity.Actor, error) {
	genres, err := s.repo.Genre.FindByMovieID(ctx, movieID)
	if err != nil {
		return nil, nil, err
	}
	actors, err := s.repo.Actor.FindByMovieID(ctx, movieID)
	if err != nil {
		return nil, nil, err
	}
	return genres, actors, nil
}

func (s *movieService) toDetail(ctx context.Context, movie *entity.Movie) (*response.MovieDetailResponse, error) {
	genres, actors, err := s.movieLinks(ctx, movie.ID)
	if err != nil {
		return nil, err
	}

	resp := response.MovieToDetailResponse(movie, genres, actors)
	return &resp, nil
}

// resolveGenres parses the id strings and verifies every genre exists, so
// a movie can never point at a genre that is not in the catalog.
func (s *movieService) resolveGenres(ctx context.Context, raw []string) ([]uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(raw))
	for _, value := range raw {
		id, err := uuid.Parse(value)
		if err != nil {
			return nil, NewFieldError("genres", "%q is not a valid genre id", value)
		}
		genre, err := s.repo.Genre.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if genre == nil {
			return nil, NewFieldError("genres", "genre %s does not exist", value)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func (s *movieService) resolveActors(ctx context.Context, raw []string) ([]uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(raw))
	for _, value := range raw {
		id, err := uuid.Parse(value)
		if err != nil {
			return nil, NewFieldError("actors", "%q is not a valid actor id", value)
		}
		actor, err := s.repo.Actor.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if actor == nil {
			return nil, NewFieldError("actors", "actor %s does not exist", value)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
