package repository

import (
	"context"
	"fmt"
	"strings"

	"cinema-api/internal/data/entity"
	"cinema-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie, genreIDs, actorIDs []uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	FindAll(ctx context.Context, title string, genreIDs, actorIDs []uuid.UUID) ([]*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie, genreIDs, actorIDs []uuid.UUID) error
	SetImage(ctx context.Context, id uuid.UUID, image string) error
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

// Create inserts the movie row together with its genre and actor links in
// one transaction so a half-linked movie never becomes visible.
func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie, genreIDs, actorIDs []uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create movie: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO movies (id, title, description, duration, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = tx.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Description,
		movie.Duration,
		movie.Image,
		movie.CreatedAt,
		movie.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("create movie: %w", err)
	}

	if err := insertMovieLinks(ctx, tx, movie.ID, genreIDs, actorIDs); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create movie: %w", err)
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `
		SELECT id, title, description, duration, image, created_at, updated_at
		FROM movies
		WHERE id = $1
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.Duration,
		&movie.Image,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("find movie by id: %w", err)
	}

	return &movie, nil
}

// FindAll narrows the collection with whatever filters were supplied:
// case-insensitive title substring, any-of genre ids, any-of actor ids.
// Filter kinds combine with AND; empty filters are skipped.
func (r *movieRepository) FindAll(ctx context.Context, title string, genreIDs, actorIDs []uuid.UUID) ([]*entity.Movie, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, title, description, duration, image, created_at, updated_at
		FROM movies
		WHERE 1=1
	`)

	args := []interface{}{}
	argCount := 1

	if title != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND title ILIKE '%%' || $%d || '%%'", argCount))
		args = append(args, title)
		argCount++
	}

	if len(genreIDs) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(
			" AND id IN (SELECT movie_id FROM movie_genres WHERE genre_id = ANY($%d))", argCount))
		args = append(args, genreIDs)
		argCount++
	}

	if len(actorIDs) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(
			" AND id IN (SELECT movie_id FROM movie_actors WHERE actor_id = ANY($%d))", argCount))
		args = append(args, actorIDs)
		argCount++
	}

	queryBuilder.WriteString(" ORDER BY created_at, id")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find movies",
			zap.Error(err),
			zap.String("title_filter", title),
			zap.Int("genre_filters", len(genreIDs)),
			zap.Int("actor_filters", len(actorIDs)),
		)
		return nil, fmt.Errorf("find movies: %w", err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Description,
			&movie.Duration,
			&movie.Image,
			&movie.CreatedAt,
			&movie.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movie rows: %w", err)
	}

	return movies, nil
}

// Update rewrites the movie row and, when genreIDs/actorIDs are non-nil,
// replaces the corresponding links. A nil slice leaves the links untouched
// so partial updates do not wipe associations.
func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie, genreIDs, actorIDs []uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin update movie: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE movies
		SET title = $2, description = $3, duration = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := tx.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Description,
		movie.Duration,
		movie.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movie.ID.String()),
		)
		return fmt.Errorf("update movie: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %s: %w", movie.ID, ErrNotFound)
	}

	if genreIDs != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM movie_genres WHERE movie_id = $1`, movie.ID); err != nil {
			return fmt.Errorf("clear movie genres: %w", err)
		}
	}
	if actorIDs != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM movie_actors WHERE movie_id = $1`, movie.ID); err != nil {
			return fmt.Errorf("clear movie actors: %w", err)
		}
	}

	if err := insertMovieLinks(ctx, tx, movie.ID, genreIDs, actorIDs); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit update movie: %w", err)
	}

	return nil
}

func (r *movieRepository) SetImage(ctx context.Context, id uuid.UUID, image string) error {
	query := `UPDATE movies SET image = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, image)
	if err != nil {
		r.log.Error("Failed to set movie image",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return fmt.Errorf("set movie image: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %s: %w", id, ErrNotFound)
	}

	r.log.Info("Movie image updated",
		zap.String("movie_id", id.String()),
		zap.String("image", image),
	)
	return nil
}

func insertMovieLinks(ctx context.Context, tx pgx.Tx, movieID uuid.UUID, genreIDs, actorIDs []uuid.UUID) error {
	for _, genreID := range genreIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO movie_genres (movie_id, genre_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			movieID, genreID,
		)
		if err != nil {
			return fmt.Errorf("link genre %s: %w", genreID.String(), err)
		}
	}

	for _, actorID := range actorIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO movie_actors (movie_id, actor_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			movieID, actorID,
		)
		if err != nil {
			return fmt.Errorf("link actor %s: %w", actorID.String(), err)
		}
	}

	return nil
}
