package request

type MovieSessionRequest struct {
	ShowTime     string `json:"show_time" validate:"required"`
	MovieID      string `json:"movie" validate:"required,uuid4"`
	CinemaHallID string `json:"cinema_hall" validate:"required,uuid4"`
}
