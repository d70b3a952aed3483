package usecase

import (
	"context"
	"errors"
	"testing"

	"cinema-api/internal/data/repository"
	"cinema-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAuthSessionRepo struct {
	repository.AuthSessionRepository
	revokedAllFor []uuid.UUID
	revokeAllErr  error
}

func (f *fakeAuthSessionRepo) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	if f.revokeAllErr != nil {
		return f.revokeAllErr
	}
	f.revokedAllFor = append(f.revokedAllFor, userID)
	return nil
}

func TestLogoutAllRevokesEverySessionOfUser(t *testing.T) {
	sessions := &fakeAuthSessionRepo{}
	svc := NewAuthService(&repository.Repository{AuthSession: sessions}, &utils.Config{}, zap.NewNop())
	userID := uuid.New()

	require.NoError(t, svc.LogoutAll(context.Background(), userID))

	require.Len(t, sessions.revokedAllFor, 1)
	assert.Equal(t, userID, sessions.revokedAllFor[0])
}

func TestLogoutAllPropagatesRepositoryError(t *testing.T) {
	repoErr := errors.New("connection refused")
	sessions := &fakeAuthSessionRepo{revokeAllErr: repoErr}
	svc := NewAuthService(&repository.Repository{AuthSession: sessions}, &utils.Config{}, zap.NewNop())

	err := svc.LogoutAll(context.Background(), uuid.New())

	require.ErrorIs(t, err, repoErr)
	assert.Empty(t, sessions.revokedAllFor)
}
