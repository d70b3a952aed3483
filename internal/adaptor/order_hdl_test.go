package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cinema-api/internal/data/repository"
	"cinema-api/internal/dto/request"
	"cinema-api/internal/dto/response"
	"cinema-api/internal/usecase"
	"cinema-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeOrderService struct {
	usecase.OrderService
	order *response.OrderResponse
	err   error
}

func (s *fakeOrderService) CreateOrder(ctx context.Context, userID uuid.UUID, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.order, nil
}

func orderRequest(t *testing.T, authenticated bool) *http.Request {
	t.Helper()

	body := `{"tickets":[{"movie_session":"` + uuid.NewString() + `","row":1,"seat":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))

	if authenticated {
		ctx := utils.SetUserContext(req.Context(), uuid.New(), "user")
		req = req.WithContext(ctx)
	}

	return req
}

func TestCreateOrderHandlerUnauthenticated(t *testing.T) {
	handler := NewOrderHandler(&fakeOrderService{}, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.CreateOrder(rec, orderRequest(t, false))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateOrderHandlerSeatTaken(t *testing.T) {
	service := &fakeOrderService{err: fmt.Errorf("row 1 seat 1: %w", repository.ErrSeatTaken)}
	handler := NewOrderHandler(service, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.CreateOrder(rec, orderRequest(t, true))

	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Status)
}

func TestCreateOrderHandlerValidationError(t *testing.T) {
	service := &fakeOrderService{err: usecase.NewFieldError("tickets[0]", "seat is outside the hall plan")}
	handler := NewOrderHandler(service, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.CreateOrder(rec, orderRequest(t, true))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "tickets[0]")
}

func TestCreateOrderHandlerSuccess(t *testing.T) {
	service := &fakeOrderService{order: &response.OrderResponse{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Tickets:   []response.TicketResponse{{ID: uuid.NewString(), Row: 1, Seat: 1}},
	}}
	handler := NewOrderHandler(service, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.CreateOrder(rec, orderRequest(t, true))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Status)
	assert.NotNil(t, resp.Data)
}

func TestCreateOrderHandlerBadJSON(t *testing.T) {
	handler := NewOrderHandler(&fakeOrderService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader("{"))
	req = req.WithContext(utils.SetUserContext(req.Context(), uuid.New(), "user"))

	rec := httptest.NewRecorder()
	handler.CreateOrder(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
