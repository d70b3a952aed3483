package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cinema-api/internal/data/entity"
	"cinema-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// SessionDetails joins a movie session with the display fields the list
// and detail shapes need, plus the live taken-ticket count.
type SessionDetails struct {
	entity.MovieSession
	MovieTitle     string
	MovieImage     *string
	HallName       string
	HallRows       int
	HallSeatsInRow int
	TicketsTaken   int
}

// TicketsAvailable is the hall capacity minus sold tickets.
func (s SessionDetails) TicketsAvailable() int {
	return s.HallRows*s.HallSeatsInRow - s.TicketsTaken
}

type MovieSessionRepository interface {
	Create(ctx context.Context, session *entity.MovieSession) error
	FindByID(ctx context.Context, id uuid.UUID) (*SessionDetails, error)
	FindAll(ctx context.Context, date *time.Time, movieID *uuid.UUID) ([]*SessionDetails, error)
	Update(ctx context.Context, session *entity.MovieSession) error
}

type movieSessionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieSessionRepository(db database.PgxIface, log *zap.Logger) MovieSessionRepository {
	return &movieSessionRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie_session")),
	}
}

func (r *movieSessionRepository) Create(ctx context.Context, session *entity.MovieSession) error {
	query := `
		INSERT INTO movie_sessions (id, show_time, movie_id, cinema_hall_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		session.ID,
		session.ShowTime,
		session.MovieID,
		session.CinemaHallID,
		session.CreatedAt,
		session.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create movie session",
			zap.Error(err),
			zap.String("movie_id", session.MovieID.String()),
			zap.Time("show_time", session.ShowTime),
		)
		return fmt.Errorf("create movie session: %w", err)
	}

	return nil
}

const sessionDetailsSelect = `
	SELECT s.id, s.show_time, s.movie_id, s.cinema_hall_id, s.created_at, s.updated_at,
	       m.title, m.image,
	       h.name, h.rows, h.seats_in_row,
	       (SELECT COUNT(*) FROM tickets t WHERE t.movie_session_id = s.id) AS tickets_taken
	FROM movie_sessions s
	INNER JOIN movies m ON m.id = s.movie_id
	INNER JOIN cinema_halls h ON h.id = s.cinema_hall_id
`

func scanSessionDetails(row pgx.Row) (*SessionDetails, error) {
	var s SessionDetails
	err := row.Scan(
		&s.ID,
		&s.ShowTime,
		&s.MovieID,
		&s.CinemaHallID,
		&s.CreatedAt,
		&s.UpdatedAt,
		&s.MovieTitle,
		&s.MovieImage,
		&s.HallName,
		&s.HallRows,
		&s.HallSeatsInRow,
		&s.TicketsTaken,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *movieSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*SessionDetails, error) {
	query := sessionDetailsSelect + ` WHERE s.id = $1`

	session, err := scanSessionDetails(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie session by ID",
			zap.Error(err),
			zap.String("session_id", id.String()),
		)
		return nil, fmt.Errorf("find movie session by id: %w", err)
	}

	return session, nil
}

// FindAll applies the optional calendar-date and movie filters. The date
// filter matches the show_time's calendar day.
func (r *movieSessionRepository) FindAll(ctx context.Context, date *time.Time, movieID *uuid.UUID) ([]*SessionDetails, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(sessionDetailsSelect)
	queryBuilder.WriteString(" WHERE 1=1")

	args := []interface{}{}
	argCount := 1

	if date != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND s.show_time::date = $%d::date", argCount))
		args = append(args, *date)
		argCount++
	}

	if movieID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND s.movie_id = $%d", argCount))
		args = append(args, *movieID)
		argCount++
	}

	queryBuilder.WriteString(" ORDER BY s.show_time, s.id")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find movie sessions", zap.Error(err))
		return nil, fmt.Errorf("find movie sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*SessionDetails
	for rows.Next() {
		session, err := scanSessionDetails(rows)
		if err != nil {
			r.log.Error("Failed to scan movie session row", zap.Error(err))
			return nil, fmt.Errorf("scan movie session row: %w", err)
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movie session rows: %w", err)
	}

	return sessions, nil
}

func (r *movieSessionRepository) Update(ctx context.Context, session *entity.MovieSession) error {
	query := `
		UPDATE movie_sessions
		SET show_time = $2, movie_id = $3, cinema_hall_id = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		session.ID,
		session.ShowTime,
		session.MovieID,
		session.CinemaHallID,
		session.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update movie session",
			zap.Error(err),
			zap.String("session_id", session.ID.String()),
		)
		return fmt.Errorf("update movie session: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie session %s: %w", session.ID, ErrNotFound)
	}

	return nil
}
