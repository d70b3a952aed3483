package entity

import "github.com/google/uuid"

// Order is an atomic group of tickets purchased together by one user.
type Order struct {
	BaseSimple
	UserID uuid.UUID `db:"user_id"`
}
