package admin

import (
	"database/sql"

	"go.uber.org/zap"

	"marblemanager/internal/admin/controller"
	"marblemanager/internal/metrics"
	orderrepo "marblemanager/internal/order/repository"
)

func NewModule(db *sql.DB, m *metrics.Metrics, logger *zap.Logger) *controller.AdminController {
	orderRepo := orderrepo.NewMySQLOrderRepository(db)
	return controller.NewAdminController(orderRepo, m, logger)
}
