package repository

import (
	"context"
	"testing"
	"time"

	"cinema-api/internal/data/entity"
	"cinema-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// execTx satisfies pgx.Tx for the single Exec the ticket insert performs.
type execTx struct {
	pgx.Tx
	execErr error
	execs   int
}

func (tx *execTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	tx.execs++
	return pgconn.CommandTag{}, tx.execErr
}

func sampleTicket() *entity.Ticket {
	return &entity.Ticket{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now().UTC(),
		},
		OrderID:        uuid.New(),
		MovieSessionID: uuid.New(),
		Row:            3,
		Seat:           7,
	}
}

func TestCreateBatchTxSeatConstraintMapsToErrSeatTaken(t *testing.T) {
	tx := &execTx{execErr: &pgconn.PgError{
		Code:           "23505",
		ConstraintName: database.UniqueSeatConstraint,
	}}
	repo := NewTicketRepository(nil, zap.NewNop())

	err := repo.CreateBatchTx(context.Background(), tx, []*entity.Ticket{sampleTicket()})

	require.ErrorIs(t, err, ErrSeatTaken)
	assert.Contains(t, err.Error(), "row 3 seat 7")
}

func TestCreateBatchTxOtherConstraintIsNotSeatTaken(t *testing.T) {
	tx := &execTx{execErr: &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "tickets_pkey",
	}}
	repo := NewTicketRepository(nil, zap.NewNop())

	err := repo.CreateBatchTx(context.Background(), tx, []*entity.Ticket{sampleTicket()})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSeatTaken)
}

func TestCreateBatchTxStopsAtFirstFailure(t *testing.T) {
	tx := &execTx{execErr: &pgconn.PgError{
		Code:           "23505",
		ConstraintName: database.UniqueSeatConstraint,
	}}
	repo := NewTicketRepository(nil, zap.NewNop())

	err := repo.CreateBatchTx(context.Background(), tx, []*entity.Ticket{sampleTicket(), sampleTicket()})

	require.ErrorIs(t, err, ErrSeatTaken)
	assert.Equal(t, 1, tx.execs)
}

func TestCreateBatchTxEmptyInput(t *testing.T) {
	tx := &execTx{}
	repo := NewTicketRepository(nil, zap.NewNop())

	require.NoError(t, repo.CreateBatchTx(context.Background(), tx, nil))
	assert.Zero(t, tx.execs)
}
