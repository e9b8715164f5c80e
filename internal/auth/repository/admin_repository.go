package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// MySQLAdminRepository answers the admin-membership check. A row in
// admin_users keyed by user id marks that user as authorized for the
// administrative view.
type MySQLAdminRepository struct {
	db *sql.DB
}

func NewMySQLAdminRepository(db *sql.DB) *MySQLAdminRepository {
	return &MySQLAdminRepository{db: db}
}

func (r *MySQLAdminRepository) IsAdmin(ctx context.Context, userID string) (bool, error) {
	query := `SELECT 1 FROM admin_users WHERE user_id = ?`

	var one int
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking admin membership: %w", err)
	}

	return true, nil
}
