package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/data/repository"
	"cinema-api/internal/dto/request"
	"cinema-api/pkg/cache"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeTx satisfies pgx.Tx for the methods the booking flow touches.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (tx *fakeTx) Commit(ctx context.Context) error {
	tx.committed = true
	return nil
}

func (tx *fakeTx) Rollback(ctx context.Context) error {
	tx.rolledBack = true
	return nil
}

type fakeDB struct {
	tx *fakeTx
}

func (db *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (db *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (db *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("not implemented")
}

func (db *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	db.tx = &fakeTx{}
	return db.tx, nil
}

func (db *fakeDB) Ping(ctx context.Context) error { return nil }
func (db *fakeDB) Close()                         {}

type fakeHallRepo struct {
	repository.CinemaHallRepository
	halls map[uuid.UUID]*entity.CinemaHall
}

func (r *fakeHallRepo) FindBySessionID(ctx context.Context, sessionID uuid.UUID) (*entity.CinemaHall, error) {
	return r.halls[sessionID], nil
}

type fakeOrderRepo struct {
	repository.OrderRepository
	created *entity.Order
	err     error
}

func (r *fakeOrderRepo) CreateTx(ctx context.Context, tx pgx.Tx, order *entity.Order) error {
	if r.err != nil {
		return r.err
	}
	r.created = order
	return nil
}

type fakeTicketRepo struct {
	repository.TicketRepository
	created []*entity.Ticket
	places  []repository.TakenPlace
	err     error
}

func (r *fakeTicketRepo) FindTakenPlaces(ctx context.Context, sessionID uuid.UUID) ([]repository.TakenPlace, error) {
	return r.places, nil
}

func (r *fakeTicketRepo) CreateBatchTx(ctx context.Context, tx pgx.Tx, tickets []*entity.Ticket) error {
	if r.err != nil {
		return r.err
	}
	r.created = tickets
	return nil
}

// unreachableSeatCache degrades every Redis call to a no-op, which is the
// documented behavior when Redis is down.
func unreachableSeatCache() *cache.SeatCache {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: time.Millisecond,
		MaxRetries:  -1,
	})
	return cache.NewSeatCache(client, 1, zap.NewNop())
}

type orderFixture struct {
	db      *fakeDB
	halls   *fakeHallRepo
	orders  *fakeOrderRepo
	tickets *fakeTicketRepo
	service OrderService
}

func newOrderFixture() *orderFixture {
	f := &orderFixture{
		db:      &fakeDB{},
		halls:   &fakeHallRepo{halls: map[uuid.UUID]*entity.CinemaHall{}},
		orders:  &fakeOrderRepo{},
		tickets: &fakeTicketRepo{},
	}

	repo := &repository.Repository{
		CinemaHall: f.halls,
		Order:      f.orders,
		Ticket:     f.tickets,
	}
	f.service = NewOrderService(f.db, repo, unreachableSeatCache(), zap.NewNop())
	return f
}

func (f *orderFixture) addSession(rows, seatsInRow int) uuid.UUID {
	sessionID := uuid.New()
	f.halls.halls[sessionID] = &entity.CinemaHall{
		BaseSimple: entity.BaseSimple{ID: uuid.New()},
		Name:       "Hall A",
		Rows:       rows,
		SeatsInRow: seatsInRow,
	}
	return sessionID
}

func TestCreateOrderSuccess(t *testing.T) {
	f := newOrderFixture()
	sessionID := f.addSession(10, 12)
	userID := uuid.New()

	order, err := f.service.CreateOrder(context.Background(), userID, &request.CreateOrderRequest{
		Tickets: []request.TicketRequest{
			{MovieSessionID: sessionID.String(), Row: 1, Seat: 1},
			{MovieSessionID: sessionID.String(), Row: 1, Seat: 2},
		},
	})

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Len(t, order.Tickets, 2)

	require.NotNil(t, f.orders.created)
	assert.Equal(t, userID, f.orders.created.UserID)

	require.Len(t, f.tickets.created, 2)
	for _, ticket := range f.tickets.created {
		assert.Equal(t, f.orders.created.ID, ticket.OrderID)
		assert.Equal(t, sessionID, ticket.MovieSessionID)
	}

	require.NotNil(t, f.db.tx)
	assert.True(t, f.db.tx.committed)
}

func TestCreateOrderEmptyTickets(t *testing.T) {
	f := newOrderFixture()

	_, err := f.service.CreateOrder(context.Background(), uuid.New(), &request.CreateOrderRequest{})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "Tickets")
	assert.Nil(t, f.db.tx, "no transaction may start for an invalid request")
}

func TestCreateOrderSeatOutOfBounds(t *testing.T) {
	f := newOrderFixture()
	sessionID := f.addSession(5, 8)

	_, err := f.service.CreateOrder(context.Background(), uuid.New(), &request.CreateOrderRequest{
		Tickets: []request.TicketRequest{
			{MovieSessionID: sessionID.String(), Row: 6, Seat: 1},
		},
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "tickets[0]")
	assert.Nil(t, f.db.tx)
}

func TestCreateOrderSeatZeroRejected(t *testing.T) {
	f := newOrderFixture()
	sessionID := f.addSession(5, 8)

	_, err := f.service.CreateOrder(context.Background(), uuid.New(), &request.CreateOrderRequest{
		Tickets: []request.TicketRequest{
			{MovieSessionID: sessionID.String(), Row: 0, Seat: 1},
		},
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "Row")
	assert.Nil(t, f.db.tx)
}

func TestCreateOrderLastSeatInBoundsAccepted(t *testing.T) {
	f := newOrderFixture()
	sessionID := f.addSession(5, 8)

	_, err := f.service.CreateOrder(context.Background(), uuid.New(), &request.CreateOrderRequest{
		Tickets: []request.TicketRequest{
			{MovieSessionID: sessionID.String(), Row: 5, Seat: 8},
		},
	})

	require.NoError(t, err)
	require.Len(t, f.tickets.created, 1)
}

func TestCreateOrderDuplicateSeatInRequest(t *testing.T) {
	f := newOrderFixture()
	sessionID := f.addSession(5, 8)

	_, err := f.service.CreateOrder(context.Background(), uuid.New(), &request.CreateOrderRequest{
		Tickets: []request.TicketRequest{
			{MovieSessionID: sessionID.String(), Row: 2, Seat: 3},
			{MovieSessionID: sessionID.String(), Row: 2, Seat: 3},
		},
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "tickets[1]")
	assert.Nil(t, f.db.tx)
}

func TestCreateOrderUnknownSession(t *testing.T) {
	f := newOrderFixture()

	_, err := f.service.CreateOrder(context.Background(), uuid.New(), &request.CreateOrderRequest{
		Tickets: []request.TicketRequest{
			{MovieSessionID: uuid.NewString(), Row: 1, Seat: 1},
		},
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Nil(t, f.db.tx)
}

func TestCreateOrderSeatTakenRollsBack(t *testing.T) {
	f := newOrderFixture()
	sessionID := f.addSession(10, 12)
	f.tickets.err = fmt.Errorf("row 1 seat 1: %w", repository.ErrSeatTaken)

	_, err := f.service.CreateOrder(context.Background(), uuid.New(), &request.CreateOrderRequest{
		Tickets: []request.TicketRequest{
			{MovieSessionID: sessionID.String(), Row: 1, Seat: 1},
		},
	})

	require.ErrorIs(t, err, repository.ErrSeatTaken)
	require.NotNil(t, f.db.tx)
	assert.False(t, f.db.tx.committed)
	assert.True(t, f.db.tx.rolledBack)
}
