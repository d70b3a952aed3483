package entity

import "github.com/google/uuid"

// Ticket pins one (row, seat) place of a movie session to an order. The
// database enforces uniqueness of (movie_session_id, seat_row, seat_number).
type Ticket struct {
	BaseSimple
	OrderID        uuid.UUID `db:"order_id"`
	MovieSessionID uuid.UUID `db:"movie_session_id"`
	Row            int       `db:"seat_row"`
	Seat           int       `db:"seat_number"`
}
