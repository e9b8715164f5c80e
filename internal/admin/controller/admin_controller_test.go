package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"marblemanager/internal/domain"
	"marblemanager/internal/dto"
	apperrors "marblemanager/internal/errors"
)

type fakeOrderRepository struct {
	orders map[string]domain.Order
}

func (r *fakeOrderRepository) FindAll(_ context.Context) ([]domain.Order, error) {
	var out []domain.Order
	for _, order := range r.orders {
		out = append(out, order)
	}
	return out, nil
}

func (r *fakeOrderRepository) FindByID(_ context.Context, id string) (*domain.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("order with id " + id + " not found")
	}
	return &order, nil
}

func (r *fakeOrderRepository) UpdateStatus(_ context.Context, id string, status domain.PaymentStatus) error {
	order, ok := r.orders[id]
	if !ok {
		return apperrors.NewNotFoundError("order with id " + id + " not found")
	}
	order.PaymentStatus = status
	order.UpdatedAt = time.Now().UTC()
	r.orders[id] = order
	return nil
}

type fakeMetrics struct {
	transitions []string
}

func (m *fakeMetrics) IncrementStatusTransition(status string) {
	m.transitions = append(m.transitions, status)
}

func newTestRouter(repo *fakeOrderRepository, m *fakeMetrics) http.Handler {
	ctrl := NewAdminController(repo, m, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/admin/orders", ctrl.HandleListOrders)
	r.Patch("/admin/orders/{orderID}/status", ctrl.HandleUpdateStatus)
	return r
}

func seededRepo() *fakeOrderRepository {
	return &fakeOrderRepository{orders: map[string]domain.Order{
		"order-1": {ID: "order-1", PlanName: "Consultation Plan", FullName: "Asha Verma", Email: "asha@example.com", Phone: "9876543210", TotalAmount: 999, PaymentStatus: domain.PaymentStatusPending},
		"order-2": {ID: "order-2", PlanName: "Premium Plan", FullName: "Rahul Nair", Email: "rahul@example.com", Phone: "9123456789", TotalAmount: 4999, PaymentStatus: domain.PaymentStatusPaid},
		"order-3": {ID: "order-3", PlanName: "Full Service Plan", FullName: "Meera Iyer", Email: "meera@example.com", Phone: "8765432109", TotalAmount: 24999, PaymentStatus: domain.PaymentStatusConfirmed},
	}}
}

func TestHandleListOrders_StatsOverFullSet(t *testing.T) {
	router := newTestRouter(seededRepo(), &fakeMetrics{})

	req := httptest.NewRequest(http.MethodGet, "/admin/orders?search=premium&status=pending", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.AdminOrdersResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	// The premium order is paid, so the pending filter excludes it.
	assert.Empty(t, resp.Orders)

	// Aggregates always cover the full set.
	assert.Equal(t, 3, resp.Stats.TotalOrders)
	assert.Equal(t, 29998.0, resp.Stats.TotalRevenue)
	assert.Equal(t, 1, resp.Stats.PendingOrders)
	assert.Equal(t, 1, resp.Stats.ConfirmedOrders)
}

func TestHandleListOrders_Search(t *testing.T) {
	router := newTestRouter(seededRepo(), &fakeMetrics{})

	req := httptest.NewRequest(http.MethodGet, "/admin/orders?search=PREMIUM", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.AdminOrdersResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Orders, 1)
	assert.Equal(t, "order-2", resp.Orders[0].ID)
}

func TestHandleUpdateStatus_PendingToConfirmed(t *testing.T) {
	repo := seededRepo()
	m := &fakeMetrics{}
	router := newTestRouter(repo, m)

	body := strings.NewReader(`{"payment_status":"confirmed"}`)
	req := httptest.NewRequest(http.MethodPatch, "/admin/orders/order-1/status", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var updated dto.OrderDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&updated))
	assert.Equal(t, "confirmed", updated.PaymentStatus)

	// Persisted and reflected on the next read.
	stored := repo.orders["order-1"]
	assert.Equal(t, domain.PaymentStatusConfirmed, stored.PaymentStatus)
	assert.Equal(t, 999.0, stored.TotalAmount)
	assert.Equal(t, []string{"confirmed"}, m.transitions)
}

func TestHandleUpdateStatus_RegressionAllowed(t *testing.T) {
	repo := seededRepo()
	router := newTestRouter(repo, &fakeMetrics{})

	body := strings.NewReader(`{"payment_status":"pending"}`)
	req := httptest.NewRequest(http.MethodPatch, "/admin/orders/order-2/status", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.PaymentStatusPending, repo.orders["order-2"].PaymentStatus)
}

func TestHandleUpdateStatus_InvalidStatus(t *testing.T) {
	router := newTestRouter(seededRepo(), &fakeMetrics{})

	body := strings.NewReader(`{"payment_status":"refunded"}`)
	req := httptest.NewRequest(http.MethodPatch, "/admin/orders/order-1/status", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleUpdateStatus_UnknownOrder(t *testing.T) {
	router := newTestRouter(seededRepo(), &fakeMetrics{})

	body := strings.NewReader(`{"payment_status":"paid"}`)
	req := httptest.NewRequest(http.MethodPatch, "/admin/orders/missing/status", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
