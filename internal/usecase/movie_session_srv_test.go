package usecase

import (
	"context"
	"testing"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetSessionSeats(t *testing.T) {
	sessionID := uuid.New()
	halls := &fakeHallRepo{halls: map[uuid.UUID]*entity.CinemaHall{
		sessionID: {
			BaseSimple: entity.BaseSimple{ID: uuid.New()},
			Name:       "Hall B",
			Rows:       4,
			SeatsInRow: 5,
		},
	}}
	tickets := &fakeTicketRepo{places: []repository.TakenPlace{
		{Row: 1, Seat: 1},
		{Row: 2, Seat: 4},
	}}

	service := NewMovieSessionService(
		&repository.Repository{CinemaHall: halls, Ticket: tickets},
		unreachableSeatCache(),
		zap.NewNop(),
	)

	seats, err := service.GetSessionSeats(context.Background(), sessionID)
	require.NoError(t, err)

	assert.Equal(t, sessionID.String(), seats.SessionID)
	assert.Equal(t, 4, seats.Rows)
	assert.Equal(t, 5, seats.SeatsInRow)
	assert.Equal(t, 20, seats.Capacity)
	require.Len(t, seats.TakenPlaces, 2)
	assert.Equal(t, 1, seats.TakenPlaces[0].Row)
	assert.Equal(t, 4, seats.TakenPlaces[1].Seat)
	assert.Equal(t, 18, seats.TicketsAvailable)
}

func TestGetSessionSeatsUnknownSession(t *testing.T) {
	service := NewMovieSessionService(
		&repository.Repository{
			CinemaHall: &fakeHallRepo{halls: map[uuid.UUID]*entity.CinemaHall{}},
			Ticket:     &fakeTicketRepo{},
		},
		unreachableSeatCache(),
		zap.NewNop(),
	)

	_, err := service.GetSessionSeats(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
