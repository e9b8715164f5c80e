package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the integration-test database. Expects a local MySQL
// with a 'marblemanager_test' schema; tests are skipped when it is not
// reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/marblemanager_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB empties the test tables and closes the connection.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"orders", "admin_users", "plans", "users"}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the schema used by integration tests.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createUsersTable := `
	CREATE TABLE IF NOT EXISTS users (
		id CHAR(36) NOT NULL PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		full_name VARCHAR(100) NOT NULL,
		phone VARCHAR(10) NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

	createAdminUsersTable := `
	CREATE TABLE IF NOT EXISTS admin_users (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		user_id CHAR(36) NOT NULL UNIQUE
	)`

	createPlansTable := `
	CREATE TABLE IF NOT EXISTS plans (
		id CHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		price DECIMAL(10,2) NOT NULL,
		period VARCHAR(50) NOT NULL,
		features JSON NOT NULL,
		is_popular TINYINT(1) NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`

	createOrdersTable := `
	CREATE TABLE IF NOT EXISTS orders (
		id CHAR(36) NOT NULL PRIMARY KEY,
		user_id CHAR(36) NOT NULL,
		plan_name VARCHAR(100) NOT NULL,
		full_name VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(10) NOT NULL,
		project_address VARCHAR(500),
		base_amount DECIMAL(10,2) NOT NULL,
		gst_amount DECIMAL(10,2) NOT NULL,
		total_amount DECIMAL(10,2) NOT NULL,
		payment_status VARCHAR(20) NOT NULL DEFAULT 'pending',
		notes TEXT,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_user (user_id),
		INDEX idx_status (payment_status)
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"users", createUsersTable},
		{"admin_users", createAdminUsersTable},
		{"plans", createPlansTable},
		{"orders", createOrdersTable},
	}

	for _, tbl := range tables {
		_, err := db.Exec(tbl.query)
		if err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}

// SeedPlans inserts the three service plans the marketing site offers.
func SeedPlans(t *testing.T, db *sql.DB) {
	plans := []struct {
		id       string
		name     string
		price    float64
		period   string
		features string
		popular  bool
	}{
		{
			"11111111-1111-1111-1111-111111111111", "Consultation Plan", 999, "session",
			`["30-minute Zoom consultation","Material recommendations","Vendor recommendations","Basic guidance and tips"]`, false,
		},
		{
			"22222222-2222-2222-2222-222222222222", "Premium Plan", 4999, "project",
			`["Everything in Consultation Plan","Complete sourcing assistance","Material finalization support","Quality confirmation","Vendor coordination","Multiple vendor comparisons"]`, true,
		},
		{
			"33333333-3333-3333-3333-333333333333", "Full Service Plan", 24999, "project",
			`["Everything in Premium Plan","Complete project management","Material quality checks","Price negotiation from your end","Final material selection","Transport support & coordination","Door-to-door delivery support","Installation guidance"]`, false,
		},
	}

	for _, p := range plans {
		_, err := db.Exec(`
			INSERT INTO plans (id, name, price, period, features, is_popular)
			VALUES (?, ?, ?, ?, ?, ?)
		`, p.id, p.name, p.price, p.period, p.features, p.popular)
		if err != nil {
			t.Fatalf("failed to seed plan %s: %v", p.name, err)
		}
	}
}
