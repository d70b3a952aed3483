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

// TakenPlace is an occupied (row, seat) tuple within a session.
type TakenPlace struct {
	Row  int
	Seat int
}

type TicketRepository interface {
	// CreateBatchTx inserts all tickets of an order inside the booking
	// transaction. A unique violation on the seat constraint surfaces as
	// ErrSeatTaken and the caller must roll back.
	CreateBatchTx(ctx context.Context, tx pgx.Tx, tickets []*entity.Ticket) error
	FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.Ticket, error)
	FindTakenPlaces(ctx context.Context, sessionID uuid.UUID) ([]TakenPlace, error)
}

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

func (r *ticketRepository) CreateBatchTx(ctx context.Context, tx pgx.Tx, tickets []*entity.Ticket) error {
	if len(tickets) == 0 {
		return nil
	}

	query := `
		INSERT INTO tickets (id, order_id, movie_session_id, seat_row, seat_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, ticket := range tickets {
		_, err := tx.Exec(ctx, query,
			ticket.ID,
			ticket.OrderID,
			ticket.MovieSessionID,
			ticket.Row,
			ticket.Seat,
			ticket.CreatedAt,
		)
		if err != nil {
			if isConstraintViolation(err, database.UniqueSeatConstraint) {
				// Lost the race for this seat; the whole order fails.
				return fmt.Errorf("row %d seat %d: %w", ticket.Row, ticket.Seat, ErrSeatTaken)
			}
			r.log.Error("Failed to create ticket",
				zap.Error(err),
				zap.String("session_id", ticket.MovieSessionID.String()),
				zap.Int("row", ticket.Row),
				zap.Int("seat", ticket.Seat),
			)
			return fmt.Errorf("create ticket: %w", err)
		}
	}

	return nil
}

func (r *ticketRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.Ticket, error) {
	query := `
		SELECT id, order_id, movie_session_id, seat_row, seat_number, created_at
		FROM tickets
		WHERE order_id = $1
		ORDER BY seat_row, seat_number
	`

	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		r.log.Error("Failed to find tickets by order ID",
			zap.Error(err),
			zap.String("order_id", orderID.String()),
		)
		return nil, fmt.Errorf("find tickets by order id: %w", err)
	}
	defer rows.Close()

	var tickets []*entity.Ticket
	for rows.Next() {
		var ticket entity.Ticket
		err := rows.Scan(
			&ticket.ID,
			&ticket.OrderID,
			&ticket.MovieSessionID,
			&ticket.Row,
			&ticket.Seat,
			&ticket.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan ticket row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket row: %w", err)
		}
		tickets = append(tickets, &ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ticket rows: %w", err)
	}

	return tickets, nil
}

func (r *ticketRepository) FindTakenPlaces(ctx context.Context, sessionID uuid.UUID) ([]TakenPlace, error) {
	query := `
		SELECT seat_row, seat_number
		FROM tickets
		WHERE movie_session_id = $1
		ORDER BY seat_row, seat_number
	`

	rows, err := r.db.Query(ctx, query, sessionID)
	if err != nil {
		r.log.Error("Failed to find taken places",
			zap.Error(err),
			zap.String("session_id", sessionID.String()),
		)
		return nil, fmt.Errorf("find taken places: %w", err)
	}
	defer rows.Close()

	var places []TakenPlace
	for rows.Next() {
		var place TakenPlace
		if err := rows.Scan(&place.Row, &place.Seat); err != nil {
			r.log.Error("Failed to scan taken place row", zap.Error(err))
			return nil, fmt.Errorf("scan taken place row: %w", err)
		}
		places = append(places, place)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate taken place rows: %w", err)
	}

	return places, nil
}
