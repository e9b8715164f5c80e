package plan

import (
	"database/sql"

	"go.uber.org/zap"

	"marblemanager/internal/plan/controller"
	"marblemanager/internal/plan/repository"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.PlanController {
	planRepo := repository.NewMySQLPlanRepository(db)
	return controller.NewPlanController(planRepo, logger)
}
