package entity

import (
	"time"

	"github.com/google/uuid"
)

type MovieSession struct {
	Base
	ShowTime     time.Time `db:"show_time"`
	MovieID      uuid.UUID `db:"movie_id"`
	CinemaHallID uuid.UUID `db:"cinema_hall_id"`
}
