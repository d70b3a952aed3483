package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors shared across repositories so higher layers can map
// storage outcomes to HTTP codes without string matching.
var (
	// ErrSeatTaken signals that the unique (movie_session, row, seat)
	// constraint rejected a ticket insert. The booking transaction must
	// roll back as a whole.
	ErrSeatTaken = errors.New("seat already booked for this session")

	// ErrAlreadyExists signals a unique-constraint violation on a catalog
	// record, e.g. a duplicate genre name or user email.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrNotFound signals that a write touched zero rows because the
	// target record does not exist.
	ErrNotFound = errors.New("record not found")
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// isConstraintViolation reports a unique violation on one named constraint.
func isConstraintViolation(err error, name string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == name
}
