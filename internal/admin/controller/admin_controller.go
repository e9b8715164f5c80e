package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"marblemanager/internal/admin/service"
	"marblemanager/internal/domain"
	"marblemanager/internal/dto"
	apperrors "marblemanager/internal/errors"
)

type OrderRepository interface {
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) error
}

type Metrics interface {
	IncrementStatusTransition(status string)
}

type AdminController struct {
	orders  OrderRepository
	metrics Metrics
	logger  *zap.Logger
}

func NewAdminController(orders OrderRepository, metrics Metrics, logger *zap.Logger) *AdminController {
	return &AdminController{
		orders:  orders,
		metrics: metrics,
		logger:  logger,
	}
}

// HandleListOrders serves the admin dashboard: one unfiltered read, then
// in-memory search/filter plus aggregates over the full set.
func (c *AdminController) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := c.orders.FindAll(r.Context())
	if err != nil {
		c.logger.Error("listing orders failed", zap.Error(err))
		c.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
		return
	}

	search := r.URL.Query().Get("search")
	status := r.URL.Query().Get("status")

	filtered := service.Filter(orders, search, status)
	stats := service.Aggregate(orders)

	c.writeJSON(w, http.StatusOK, dto.AdminOrdersResponse{
		Orders: dto.OrdersFromDomain(filtered),
		Stats: dto.OrderStats{
			TotalOrders:     stats.TotalOrders,
			TotalRevenue:    stats.TotalRevenue,
			PendingOrders:   stats.PendingOrders,
			ConfirmedOrders: stats.ConfirmedOrders,
		},
	})
}

// HandleUpdateStatus performs the manual transition an administrator
// makes after an out-of-band payment confirmation. Any status may be set
// at any time; a backwards move is logged but not rejected.
func (c *AdminController) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	var req dto.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "request body must be valid JSON")
		return
	}

	newStatus := domain.PaymentStatus(req.PaymentStatus)
	if !newStatus.Valid() {
		c.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "payment_status must be one of pending, paid, confirmed, failed")
		return
	}

	order, err := c.orders.FindByID(r.Context(), orderID)
	if err != nil {
		c.handleRepoError(w, err)
		return
	}

	if domain.IsRegression(order.PaymentStatus, newStatus) {
		c.logger.Warn("payment status regression",
			zap.String("orderId", orderID),
			zap.String("from", string(order.PaymentStatus)),
			zap.String("to", string(newStatus)),
		)
	}

	if err := c.orders.UpdateStatus(r.Context(), orderID, newStatus); err != nil {
		c.handleRepoError(w, err)
		return
	}

	c.metrics.IncrementStatusTransition(string(newStatus))
	c.logger.Info("payment status updated",
		zap.String("orderId", orderID),
		zap.String("status", string(newStatus)),
	)

	updated, err := c.orders.FindByID(r.Context(), orderID)
	if err != nil {
		c.handleRepoError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.OrderFromDomain(updated))
}

func (c *AdminController) handleRepoError(w http.ResponseWriter, err error) {
	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}

	c.logger.Error("unexpected error", zap.Error(err))
	c.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

func (c *AdminController) writeError(w http.ResponseWriter, status int, code, message string) {
	c.writeJSON(w, status, map[string]string{
		"error":   code,
		"message": message,
	})
}

func (c *AdminController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
