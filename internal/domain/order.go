package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusConfirmed PaymentStatus = "confirmed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusConfirmed, PaymentStatusFailed:
		return true
	}
	return false
}

// statusRank orders the statuses along the intended lifecycle so that
// backwards moves can be detected. Transitions are not restricted; the
// admin may set any status at any time.
var statusRank = map[PaymentStatus]int{
	PaymentStatusPending:   0,
	PaymentStatusPaid:      1,
	PaymentStatusConfirmed: 2,
	PaymentStatusFailed:    2,
}

// IsRegression reports whether moving from one status to another walks the
// lifecycle backwards, e.g. paid back to pending. Used for logging only.
func IsRegression(from, to PaymentStatus) bool {
	return statusRank[to] < statusRank[from]
}

// Order is a single customer request for a service plan. Only
// PaymentStatus is ever updated after creation; orders are never deleted.
type Order struct {
	ID             string
	UserID         string
	PlanName       string
	FullName       string
	Email          string
	Phone          string
	ProjectAddress *string
	BaseAmount     float64
	GSTAmount      float64
	TotalAmount    float64
	PaymentStatus  PaymentStatus
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
