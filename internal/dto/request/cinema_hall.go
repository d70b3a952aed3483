package request

type CinemaHallRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=100"`
	Rows       int    `json:"rows" validate:"required,gt=0"`
	SeatsInRow int    `json:"seats_in_row" validate:"required,gt=0"`
}
