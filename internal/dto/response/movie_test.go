package response

import (
	"testing"
	"time"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func sampleMovie() (*entity.Movie, []*entity.Genre, []*entity.Actor) {
	image := "movie_poster.png"
	movie := &entity.Movie{
		Base:        entity.Base{ID: uuid.New()},
		Title:       "Arrival",
		Description: "First contact",
		Duration:    116,
		Image:       &image,
	}
	genres := []*entity.Genre{
		{BaseSimple: entity.BaseSimple{ID: uuid.New()}, Name: "Sci-Fi"},
		{BaseSimple: entity.BaseSimple{ID: uuid.New()}, Name: "Drama"},
	}
	actors := []*entity.Actor{
		{BaseSimple: entity.BaseSimple{ID: uuid.New()}, FirstName: "Amy", LastName: "Adams"},
	}
	return movie, genres, actors
}

func TestMovieToListResponseUsesDisplayNames(t *testing.T) {
	movie, genres, actors := sampleMovie()

	resp := MovieToListResponse(movie, genres, actors)

	assert.Equal(t, movie.ID.String(), resp.ID)
	assert.Equal(t, []string{"Sci-Fi", "Drama"}, resp.Genres)
	assert.Equal(t, []string{"Amy Adams"}, resp.Actors)
	if assert.NotNil(t, resp.Image) {
		assert.Equal(t, "/media/movie_poster.png", *resp.Image)
	}
}

func TestMovieToDetailResponseNestsObjects(t *testing.T) {
	movie, genres, actors := sampleMovie()

	resp := MovieToDetailResponse(movie, genres, actors)

	assert.Len(t, resp.Genres, 2)
	assert.Equal(t, genres[0].ID.String(), resp.Genres[0].ID)
	assert.Equal(t, "Sci-Fi", resp.Genres[0].Name)
	assert.Len(t, resp.Actors, 1)
	assert.Equal(t, "Amy Adams", resp.Actors[0].FullName)
}

func TestImageURL(t *testing.T) {
	assert.Nil(t, ImageURL(nil))

	empty := ""
	assert.Nil(t, ImageURL(&empty))

	name := "poster.jpg"
	url := ImageURL(&name)
	if assert.NotNil(t, url) {
		assert.Equal(t, "/media/poster.jpg", *url)
	}
}

func TestSessionToListResponse(t *testing.T) {
	showTime := time.Date(2026, 1, 15, 19, 30, 0, 0, time.UTC)
	session := &repository.SessionDetails{
		MovieSession: entity.MovieSession{
			Base:     entity.Base{ID: uuid.New()},
			ShowTime: showTime,
		},
		MovieTitle:     "Arrival",
		HallName:       "Hall A",
		HallRows:       10,
		HallSeatsInRow: 12,
		TicketsTaken:   7,
	}

	resp := SessionToListResponse(session)

	assert.Equal(t, session.ID.String(), resp.ID)
	assert.Equal(t, showTime, resp.ShowTime)
	assert.Equal(t, "Arrival", resp.MovieTitle)
	assert.Nil(t, resp.MovieImage)
	assert.Equal(t, "Hall A", resp.CinemaHallName)
	assert.Equal(t, 120, resp.CinemaHallCapacity)
	assert.Equal(t, 113, resp.TicketsAvailable)
}

func TestOrderToResponse(t *testing.T) {
	order := &entity.Order{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     uuid.New(),
	}
	tickets := []*entity.Ticket{
		{BaseSimple: entity.BaseSimple{ID: uuid.New()}, MovieSessionID: uuid.New(), Row: 3, Seat: 7},
	}

	resp := OrderToResponse(order, tickets)

	assert.Equal(t, order.ID.String(), resp.ID)
	if assert.Len(t, resp.Tickets, 1) {
		assert.Equal(t, 3, resp.Tickets[0].Row)
		assert.Equal(t, 7, resp.Tickets[0].Seat)
		assert.Equal(t, tickets[0].MovieSessionID.String(), resp.Tickets[0].MovieSessionID)
	}
}
