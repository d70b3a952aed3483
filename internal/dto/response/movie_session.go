package response

import (
	"time"

	"cinema-api/internal/data/repository"
)

// MovieSessionListResponse is the summary shape with display fields.
type MovieSessionListResponse struct {
	ID                 string    `json:"id"`
	ShowTime           time.Time `json:"show_time"`
	MovieTitle         string    `json:"movie_title"`
	MovieImage         *string   `json:"movie_image"`
	CinemaHallName     string    `json:"cinema_hall_name"`
	CinemaHallCapacity int       `json:"cinema_hall_capacity"`
	TicketsAvailable   int       `json:"tickets_available"`
}

// MovieSessionDetailResponse nests the full movie and hall objects.
type MovieSessionDetailResponse struct {
	ID         string             `json:"id"`
	ShowTime   time.Time          `json:"show_time"`
	Movie      MovieListResponse  `json:"movie"`
	CinemaHall CinemaHallResponse `json:"cinema_hall"`
}

type SeatResponse struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

// SessionSeatsResponse describes the seating state of one session.
type SessionSeatsResponse struct {
	SessionID        string         `json:"session_id"`
	Rows             int            `json:"rows"`
	SeatsInRow       int            `json:"seats_in_row"`
	Capacity         int            `json:"capacity"`
	TakenPlaces      []SeatResponse `json:"taken_places"`
	TicketsAvailable int            `json:"tickets_available"`
}

func SessionToListResponse(session *repository.SessionDetails) MovieSessionListResponse {
	return MovieSessionListResponse{
		ID:                 session.ID.String(),
		ShowTime:           session.ShowTime,
		MovieTitle:         session.MovieTitle,
		MovieImage:         ImageURL(session.MovieImage),
		CinemaHallName:     session.HallName,
		CinemaHallCapacity: session.HallRows * session.HallSeatsInRow,
		TicketsAvailable:   session.TicketsAvailable(),
	}
}

func SessionsToListResponse(sessions []*repository.SessionDetails) []MovieSessionListResponse {
	out := make([]MovieSessionListResponse, len(sessions))
	for i, session := range sessions {
		out[i] = SessionToListResponse(session)
	}
	return out
}
