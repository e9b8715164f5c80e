package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"marblemanager/internal/domain"
	apperrors "marblemanager/internal/errors"
	"marblemanager/internal/payment"
	"marblemanager/internal/pricing"
)

type OrderRepository interface {
	Insert(ctx context.Context, order domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Order, error)
}

type Metrics interface {
	IncrementOrdersCreated()
}

// PaymentInstructions bundles everything the customer needs to pay
// manually and confirm out of band.
type PaymentInstructions struct {
	UPIID          string
	UPILink        string
	QRCodeURL      string
	QRPlaceholder  string
	WhatsAppURL    string
	WhatsAppNumber string
	SupportPhone   string
}

type CheckoutUseCase struct {
	orders         OrderRepository
	links          *payment.LinkBuilder
	metrics        Metrics
	logger         *zap.Logger
	whatsappNumber string
	supportPhone   string
	upiID          string
}

func NewCheckoutUseCase(
	orders OrderRepository,
	links *payment.LinkBuilder,
	metrics Metrics,
	logger *zap.Logger,
	whatsappNumber string,
	supportPhone string,
	upiID string,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		orders:         orders,
		links:          links,
		metrics:        metrics,
		logger:         logger,
		whatsappNumber: whatsappNumber,
		supportPhone:   supportPhone,
		upiID:          upiID,
	}
}

// CreateOrder records a checkout. Fields arrive already validated by the
// controller; the GST split is derived here from the tax-inclusive total.
// Every order starts in pending: there is no gateway callback, so a human
// administrator moves it forward after the customer confirms payment.
func (uc *CheckoutUseCase) CreateOrder(
	ctx context.Context,
	userID string,
	planName string,
	totalAmount float64,
	fullName, email, phone string,
	projectAddress *string,
) (*domain.Order, error) {
	base, gst := pricing.Split(totalAmount)
	now := time.Now().UTC()

	order := domain.Order{
		ID:             uuid.New().String(),
		UserID:         userID,
		PlanName:       planName,
		FullName:       fullName,
		Email:          email,
		Phone:          phone,
		ProjectAddress: projectAddress,
		BaseAmount:     base,
		GSTAmount:      gst,
		TotalAmount:    totalAmount,
		PaymentStatus:  domain.PaymentStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.orders.Insert(ctx, order); err != nil {
		return nil, err
	}

	uc.metrics.IncrementOrdersCreated()
	uc.logger.Info("order created",
		zap.String("orderId", order.ID),
		zap.String("plan", planName),
		zap.Float64("total", totalAmount),
	)

	return &order, nil
}

func (uc *CheckoutUseCase) ListOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	return uc.orders.FindByUserID(ctx, userID)
}

// InstructionsForOrder returns the payment artefacts for an order the
// caller owns.
func (uc *CheckoutUseCase) InstructionsForOrder(ctx context.Context, userID, orderID string) (*domain.Order, *PaymentInstructions, error) {
	order, err := uc.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}

	if order.UserID != userID {
		return nil, nil, apperrors.NewForbiddenError("order belongs to another user")
	}

	return order, uc.Instructions(order), nil
}

func (uc *CheckoutUseCase) Instructions(order *domain.Order) *PaymentInstructions {
	upiLink := uc.links.UPILink(order.ID, order.PlanName, order.TotalAmount)

	return &PaymentInstructions{
		UPIID:          uc.upiID,
		UPILink:        upiLink,
		QRCodeURL:      uc.links.QRCodeURL(upiLink),
		QRPlaceholder:  payment.PlaceholderQR,
		WhatsAppURL:    uc.links.WhatsAppLink(order.ID, order.PlanName, order.TotalAmount),
		WhatsAppNumber: uc.whatsappNumber,
		SupportPhone:   uc.supportPhone,
	}
}
