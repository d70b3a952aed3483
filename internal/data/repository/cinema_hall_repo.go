package repository

import (
	"context"
	"fmt"

	"cinema-api/internal/data/entity"
	"cinema-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CinemaHallRepository interface {
	Create(ctx context.Context, hall *entity.CinemaHall) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CinemaHall, error)
	FindAll(ctx context.Context) ([]*entity.CinemaHall, error)
	FindBySessionID(ctx context.Context, sessionID uuid.UUID) (*entity.CinemaHall, error)
}

type cinemaHallRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCinemaHallRepository(db database.PgxIface, log *zap.Logger) CinemaHallRepository {
	return &cinemaHallRepository{
		db:  db,
		log: log.With(zap.String("repository", "cinema_hall")),
	}
}

func (r *cinemaHallRepository) Create(ctx context.Context, hall *entity.CinemaHall) error {
	query := `
		INSERT INTO cinema_halls (id, name, rows, seats_in_row, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query, hall.ID, hall.Name, hall.Rows, hall.SeatsInRow, hall.CreatedAt)
	if err != nil {
		r.log.Error("Failed to create cinema hall",
			zap.Error(err),
			zap.String("name", hall.Name),
		)
		return fmt.Errorf("create cinema hall: %w", err)
	}

	return nil
}

func (r *cinemaHallRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CinemaHall, error) {
	query := `SELECT id, name, rows, seats_in_row, created_at FROM cinema_halls WHERE id = $1`

	var hall entity.CinemaHall
	err := r.db.QueryRow(ctx, query, id).Scan(
		&hall.ID,
		&hall.Name,
		&hall.Rows,
		&hall.SeatsInRow,
		&hall.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find cinema hall by ID",
			zap.Error(err),
			zap.String("hall_id", id.String()),
		)
		return nil, fmt.Errorf("find cinema hall by id: %w", err)
	}

	return &hall, nil
}

func (r *cinemaHallRepository) FindAll(ctx context.Context) ([]*entity.CinemaHall, error) {
	query := `SELECT id, name, rows, seats_in_row, created_at FROM cinema_halls ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all cinema halls", zap.Error(err))
		return nil, fmt.Errorf("find cinema halls: %w", err)
	}
	defer rows.Close()

	var halls []*entity.CinemaHall
	for rows.Next() {
		var hall entity.CinemaHall
		if err := rows.Scan(&hall.ID, &hall.Name, &hall.Rows, &hall.SeatsInRow, &hall.CreatedAt); err != nil {
			r.log.Error("Failed to scan cinema hall row", zap.Error(err))
			return nil, fmt.Errorf("scan cinema hall row: %w", err)
		}
		halls = append(halls, &hall)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cinema hall rows: %w", err)
	}

	return halls, nil
}

// FindBySessionID resolves the hall a movie session plays in. The booking
// flow uses it for seat bounds checks.
func (r *cinemaHallRepository) FindBySessionID(ctx context.Context, sessionID uuid.UUID) (*entity.CinemaHall, error) {
	query := `
		SELECT h.id, h.name, h.rows, h.seats_in_row, h.created_at
		FROM cinema_halls h
		INNER JOIN movie_sessions s ON s.cinema_hall_id = h.id
		WHERE s.id = $1
	`

	var hall entity.CinemaHall
	err := r.db.QueryRow(ctx, query, sessionID).Scan(
		&hall.ID,
		&hall.Name,
		&hall.Rows,
		&hall.SeatsInRow,
		&hall.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find hall by session ID",
			zap.Error(err),
			zap.String("session_id", sessionID.String()),
		)
		return nil, fmt.Errorf("find hall by session id: %w", err)
	}

	return &hall, nil
}
