package response

import (
	"time"

	"cinema-api/internal/data/entity"
)

type TicketResponse struct {
	ID             string `json:"id"`
	MovieSessionID string `json:"movie_session"`
	Row            int    `json:"row"`
	Seat           int    `json:"seat"`
}

type OrderResponse struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Tickets   []TicketResponse `json:"tickets"`
}

func TicketToResponse(ticket *entity.Ticket) TicketResponse {
	return TicketResponse{
		ID:             ticket.ID.String(),
		MovieSessionID: ticket.MovieSessionID.String(),
		Row:            ticket.Row,
		Seat:           ticket.Seat,
	}
}

func OrderToResponse(order *entity.Order, tickets []*entity.Ticket) OrderResponse {
	ticketResponses := make([]TicketResponse, len(tickets))
	for i, ticket := range tickets {
		ticketResponses[i] = TicketToResponse(ticket)
	}

	return OrderResponse{
		ID:        order.ID.String(),
		CreatedAt: order.CreatedAt,
		Tickets:   ticketResponses,
	}
}
