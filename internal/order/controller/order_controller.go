package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"marblemanager/internal/auth"
	"marblemanager/internal/domain"
	"marblemanager/internal/dto"
	apperrors "marblemanager/internal/errors"
	"marblemanager/internal/order/usecase"
	"marblemanager/internal/validation"
)

type CheckoutUseCase interface {
	CreateOrder(ctx context.Context, userID, planName string, totalAmount float64, fullName, email, phone string, projectAddress *string) (*domain.Order, error)
	ListOrders(ctx context.Context, userID string) ([]domain.Order, error)
	InstructionsForOrder(ctx context.Context, userID, orderID string) (*domain.Order, *usecase.PaymentInstructions, error)
}

type OrderController struct {
	useCase CheckoutUseCase
	logger  *zap.Logger
}

func NewOrderController(useCase CheckoutUseCase, logger *zap.Logger) *OrderController {
	return &OrderController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *OrderController) HandleCreateOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if validationErr := c.validateCreateOrderRequest(req); validationErr != nil {
		ve, _ := apperrors.IsValidationError(validationErr)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	var projectAddress *string
	if addr := strings.TrimSpace(req.ProjectAddress); addr != "" {
		projectAddress = &addr
	}

	order, err := c.useCase.CreateOrder(
		r.Context(),
		auth.UserID(r.Context()),
		strings.TrimSpace(req.PlanName),
		req.TotalAmount,
		strings.TrimSpace(req.FullName),
		strings.TrimSpace(req.Email),
		strings.TrimSpace(req.Phone),
		projectAddress,
	)
	if err != nil {
		c.handleUseCaseError(w, err, logger)
		return
	}

	_, instructions, err := c.useCase.InstructionsForOrder(r.Context(), order.UserID, order.ID)
	if err != nil {
		c.handleUseCaseError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, dto.CreateOrderResponse{
		Order:   dto.OrderFromDomain(order),
		Payment: instructionsDTO(instructions),
	})
}

func (c *OrderController) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := c.useCase.ListOrders(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		c.handleUseCaseError(w, err, c.logger)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string][]dto.OrderDTO{
		"orders": dto.OrdersFromDomain(orders),
	})
}

func (c *OrderController) HandlePaymentInstructions(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	order, instructions, err := c.useCase.InstructionsForOrder(r.Context(), auth.UserID(r.Context()), orderID)
	if err != nil {
		c.handleUseCaseError(w, err, c.logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.CreateOrderResponse{
		Order:   dto.OrderFromDomain(order),
		Payment: instructionsDTO(instructions),
	})
}

func (c *OrderController) validateCreateOrderRequest(req dto.CreateOrderRequest) error {
	var details []apperrors.ValidationDetail

	if strings.TrimSpace(req.PlanName) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "plan_name",
			Message: "plan_name is required",
		})
	}

	if req.TotalAmount < 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "total_amount",
			Message: "total_amount must be non-negative",
		})
	}

	if d := validation.FullName(req.FullName); d != nil {
		details = append(details, *d)
	}
	if d := validation.Email(req.Email); d != nil {
		details = append(details, *d)
	}
	if d := validation.Phone(req.Phone); d != nil {
		details = append(details, *d)
	}
	if d := validation.Address(req.ProjectAddress); d != nil {
		details = append(details, *d)
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}

func (c *OrderController) handleUseCaseError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": err.Error(),
		})
		return
	}

	if _, ok := apperrors.IsForbiddenError(err); ok {
		c.writeJSON(w, http.StatusForbidden, map[string]string{
			"error":   "FORBIDDEN",
			"message": err.Error(),
		})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

func instructionsDTO(in *usecase.PaymentInstructions) dto.PaymentInstructionsDTO {
	return dto.PaymentInstructionsDTO{
		UPIID:          in.UPIID,
		UPILink:        in.UPILink,
		QRCodeURL:      in.QRCodeURL,
		QRPlaceholder:  in.QRPlaceholder,
		WhatsAppURL:    in.WhatsAppURL,
		WhatsAppNumber: in.WhatsAppNumber,
		SupportPhone:   in.SupportPhone,
	}
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *OrderController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
