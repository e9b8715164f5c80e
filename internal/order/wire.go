package order

import (
	"database/sql"

	"go.uber.org/zap"

	"marblemanager/internal/config"
	"marblemanager/internal/metrics"
	"marblemanager/internal/order/controller"
	"marblemanager/internal/order/repository"
	"marblemanager/internal/order/usecase"
	"marblemanager/internal/payment"
)

func NewModule(db *sql.DB, cfg *config.Config, m *metrics.Metrics, logger *zap.Logger) *controller.OrderController {
	orderRepo := repository.NewMySQLOrderRepository(db)
	links := payment.NewLinkBuilder(cfg.Payment, cfg.Contact)

	checkout := usecase.NewCheckoutUseCase(
		orderRepo,
		links,
		m,
		logger,
		cfg.Contact.WhatsAppNumber,
		cfg.Contact.SupportPhone,
		cfg.Payment.UPIID,
	)

	return controller.NewOrderController(checkout, logger)
}
