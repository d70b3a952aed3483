package request

// TicketRequest asks for one seat tuple within a session.
type TicketRequest struct {
	MovieSessionID string `json:"movie_session" validate:"required,uuid4"`
	Row            int    `json:"row" validate:"required,gt=0"`
	Seat           int    `json:"seat" validate:"required,gt=0"`
}

// CreateOrderRequest books all listed tickets atomically: either the whole
// order succeeds or nothing is persisted.
type CreateOrderRequest struct {
	Tickets []TicketRequest `json:"tickets" validate:"required,min=1,dive"`
}
