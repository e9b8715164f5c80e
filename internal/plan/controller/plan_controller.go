package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"marblemanager/internal/domain"
	"marblemanager/internal/dto"
)

type PlanRepository interface {
	FindAll(ctx context.Context) ([]domain.Plan, error)
}

type PlanController struct {
	plans  PlanRepository
	logger *zap.Logger
}

func NewPlanController(plans PlanRepository, logger *zap.Logger) *PlanController {
	return &PlanController{
		plans:  plans,
		logger: logger,
	}
}

func (c *PlanController) HandleListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := c.plans.FindAll(r.Context())
	if err != nil {
		c.logger.Error("listing plans failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	c.writeJSON(w, http.StatusOK, map[string][]dto.PlanDTO{
		"plans": dto.PlansFromDomain(plans),
	})
}

func (c *PlanController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
