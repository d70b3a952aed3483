package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/data/repository"
	"cinema-api/internal/dto/request"
	"cinema-api/internal/dto/response"
	"cinema-api/pkg/cache"
	"cinema-api/pkg/database"
	"cinema-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, req *request.CreateOrderRequest) (*response.OrderResponse, error)
	GetOrders(ctx context.Context, userID uuid.UUID, page request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error)
}

type orderService struct {
	db        database.PgxIface
	repo      *repository.Repository
	seatCache *cache.SeatCache
	log       *zap.Logger
}

func NewOrderService(db database.PgxIface, repo *repository.Repository, seatCache *cache.SeatCache, log *zap.Logger) OrderService {
	return &orderService{
		db:        db,
		repo:      repo,
		seatCache: seatCache,
		log:       log.With(zap.String("service", "order")),
	}
}

// CreateOrder books every requested seat atomically. The order row and all
// ticket rows are written in one transaction; a seat lost to a concurrent
// order raises the unique constraint, the transaction rolls back, and
// ErrSeatTaken reaches the caller with no partial state left behind.
func (s *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	tickets, err := s.buildTickets(ctx, req.Tickets)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: time.Now().UTC(),
		},
		UserID: userID,
	}
	for _, ticket := range tickets {
		ticket.OrderID = order.ID
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin booking: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.repo.Order.CreateTx(ctx, tx, order); err != nil {
		return nil, err
	}
	if err := s.repo.Ticket.CreateBatchTx(ctx, tx, tickets); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit booking: %w", err)
	}

	for sessionID := range sessionSet(tickets) {
		s.seatCache.Invalidate(ctx, sessionID)
	}

	s.log.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Int("tickets", len(tickets)),
	)

	resp := response.OrderToResponse(order, tickets)
	return &resp, nil
}

func (s *orderService) GetOrders(ctx context.Context, userID uuid.UUID, page request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
	total, err := s.repo.Order.CountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	orders, err := s.repo.Order.FindByUserID(ctx, userID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	out := make([]response.OrderResponse, 0, len(orders))
	for _, order := range orders {
		tickets, err := s.repo.Ticket.FindByOrderID(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, response.OrderToResponse(order, tickets))
	}

	return response.NewPaginatedResponse(out, page.Page, page.Limit(), total), nil
}

// buildTickets turns the request into ticket rows, rejecting duplicate
// seat tuples within the request and seats outside the hall geometry.
func (s *orderService) buildTickets(ctx context.Context, reqs []request.TicketRequest) ([]*entity.Ticket, error) {
	type place struct {
		session uuid.UUID
		row     int
		seat    int
	}

	halls := make(map[uuid.UUID]*entity.CinemaHall)
	seen := make(map[place]bool)
	now := time.Now().UTC()

	tickets := make([]*entity.Ticket, 0, len(reqs))
	for i, req := range reqs {
		field := fmt.Sprintf("tickets[%d]", i)

		sessionID, err := uuid.Parse(req.MovieSessionID)
		if err != nil {
			return nil, NewFieldError(field, "%q is not a valid session id", req.MovieSessionID)
		}

		hall, ok := halls[sessionID]
		if !ok {
			hall, err = s.repo.CinemaHall.FindBySessionID(ctx, sessionID)
			if err != nil {
				return nil, err
			}
			if hall == nil {
				return nil, NewFieldError(field, "movie session %s does not exist", req.MovieSessionID)
			}
			halls[sessionID] = hall
		}

		if req.Row > hall.Rows || req.Seat > hall.SeatsInRow {
			return nil, NewFieldError(field,
				"seat (row %d, seat %d) is outside the hall plan of %d rows x %d seats",
				req.Row, req.Seat, hall.Rows, hall.SeatsInRow)
		}

		key := place{session: sessionID, row: req.Row, seat: req.Seat}
		if seen[key] {
			return nil, NewFieldError(field,
				"seat (row %d, seat %d) is requested more than once", req.Row, req.Seat)
		}
		seen[key] = true

		tickets = append(tickets, &entity.Ticket{
			BaseSimple: entity.BaseSimple{
				ID:        utils.GenerateUUID(),
				CreatedAt: now,
			},
			MovieSessionID: sessionID,
			Row:            req.Row,
			Seat:           req.Seat,
		})
	}

	return tickets, nil
}

func sessionSet(tickets []*entity.Ticket) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, 1)
	for _, ticket := range tickets {
		set[ticket.MovieSessionID] = struct{}{}
	}
	return set
}
