package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"marblemanager/internal/domain"
)

// MySQLPlanRepository reads the plan catalog. Plans are reference data
// seeded by operations; the application never writes this table.
type MySQLPlanRepository struct {
	db *sql.DB
}

func NewMySQLPlanRepository(db *sql.DB) *MySQLPlanRepository {
	return &MySQLPlanRepository{db: db}
}

func (r *MySQLPlanRepository) FindAll(ctx context.Context) ([]domain.Plan, error) {
	query := `
		SELECT id, name, price, period, features, is_popular, created_at, updated_at
		FROM plans
		ORDER BY price ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying plans: %w", err)
	}
	defer rows.Close()

	var plans []domain.Plan
	for rows.Next() {
		var plan domain.Plan
		var featuresJSON []byte

		err := rows.Scan(
			&plan.ID, &plan.Name, &plan.Price, &plan.Period,
			&featuresJSON, &plan.IsPopular, &plan.CreatedAt, &plan.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning plan row: %w", err)
		}

		if err := json.Unmarshal(featuresJSON, &plan.Features); err != nil {
			return nil, fmt.Errorf("decoding plan features: %w", err)
		}

		plans = append(plans, plan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plan rows: %w", err)
	}

	return plans, nil
}
