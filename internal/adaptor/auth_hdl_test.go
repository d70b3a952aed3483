package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinema-api/internal/usecase"
	"cinema-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAuthService struct {
	usecase.AuthService
	loggedOutAll []uuid.UUID
}

func (f *fakeAuthService) LogoutAll(ctx context.Context, userID uuid.UUID) error {
	f.loggedOutAll = append(f.loggedOutAll, userID)
	return nil
}

func TestLogoutAllWithoutIdentityIsUnauthorized(t *testing.T) {
	svc := &fakeAuthService{}
	handler := NewAuthHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout-all", nil)
	rec := httptest.NewRecorder()
	handler.LogoutAll(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, svc.loggedOutAll)
}

func TestLogoutAllRevokesForAuthenticatedUser(t *testing.T) {
	svc := &fakeAuthService{}
	handler := NewAuthHandler(svc, zap.NewNop())
	userID := uuid.New()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout-all", nil)
	req = req.WithContext(utils.SetUserContext(req.Context(), userID, "user"))
	rec := httptest.NewRecorder()
	handler.LogoutAll(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, svc.loggedOutAll, 1)
	assert.Equal(t, userID, svc.loggedOutAll[0])
}
