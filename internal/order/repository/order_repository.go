package repository

import (
	"context"
	"database/sql"
	"fmt"

	"marblemanager/internal/domain"
	apperrors "marblemanager/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

const orderColumns = `id, user_id, plan_name, full_name, email, phone, project_address,
	       base_amount, gst_amount, total_amount, payment_status, notes,
	       created_at, updated_at`

func (r *MySQLOrderRepository) Insert(ctx context.Context, order domain.Order) error {
	query := `
		INSERT INTO orders (id, user_id, plan_name, full_name, email, phone, project_address,
		                    base_amount, gst_amount, total_amount, payment_status, notes,
		                    created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		order.ID, order.UserID, order.PlanName, order.FullName, order.Email, order.Phone,
		order.ProjectAddress, order.BaseAmount, order.GSTAmount, order.TotalAmount,
		string(order.PaymentStatus), order.Notes, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting order: %w", err)
	}

	return nil
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = ?`

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("order with id %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	return order, nil
}

func (r *MySQLOrderRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = ? ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("querying orders by user: %w", err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

// FindAll returns every order, newest first. The admin view filters and
// aggregates this set in memory; order volume is expected to stay small
// enough that a single unfiltered read is acceptable.
func (r *MySQLOrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying all orders: %w", err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

// UpdateStatus writes payment_status and updated_at. No other field is
// ever updated post-creation. Last write wins; there is no optimistic
// concurrency control.
func (r *MySQLOrderRepository) UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) error {
	query := `UPDATE orders SET payment_status = ?, updated_at = NOW() WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, string(status), id)
	if err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("order with id %s not found", id))
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	var status string

	err := row.Scan(
		&order.ID, &order.UserID, &order.PlanName, &order.FullName, &order.Email, &order.Phone,
		&order.ProjectAddress, &order.BaseAmount, &order.GSTAmount, &order.TotalAmount,
		&status, &order.Notes, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	order.PaymentStatus = domain.PaymentStatus(status)
	return &order, nil
}

func collectOrders(rows *sql.Rows) ([]domain.Order, error) {
	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		orders = append(orders, *order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, nil
}
