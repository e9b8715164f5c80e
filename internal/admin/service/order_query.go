package service

import (
	"strings"

	"marblemanager/internal/domain"
)

// StatusFilterAll disables status filtering, matching the "all" option in
// the admin view.
const StatusFilterAll = "all"

// Filter applies the admin search over an already-fetched order set: a
// case-insensitive substring match across name, email, phone, plan name
// and id (OR), combined with an exact status match (AND). Everything is
// re-derived from the full in-memory set on each call.
func Filter(orders []domain.Order, search, status string) []domain.Order {
	search = strings.ToLower(strings.TrimSpace(search))

	filtered := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		if search != "" && !matchesSearch(&order, search) {
			continue
		}
		if status != "" && status != StatusFilterAll && string(order.PaymentStatus) != status {
			continue
		}
		filtered = append(filtered, order)
	}

	return filtered
}

func matchesSearch(order *domain.Order, search string) bool {
	return strings.Contains(strings.ToLower(order.FullName), search) ||
		strings.Contains(strings.ToLower(order.Email), search) ||
		strings.Contains(order.Phone, search) ||
		strings.Contains(strings.ToLower(order.PlanName), search) ||
		strings.Contains(strings.ToLower(order.ID), search)
}

type Stats struct {
	TotalOrders     int
	TotalRevenue    float64
	PendingOrders   int
	ConfirmedOrders int
}

// Aggregate computes the dashboard numbers over the full order set.
// Revenue counts orders that are paid or confirmed.
func Aggregate(orders []domain.Order) Stats {
	stats := Stats{TotalOrders: len(orders)}

	for _, order := range orders {
		switch order.PaymentStatus {
		case domain.PaymentStatusPaid:
			stats.TotalRevenue += order.TotalAmount
		case domain.PaymentStatusConfirmed:
			stats.TotalRevenue += order.TotalAmount
			stats.ConfirmedOrders++
		case domain.PaymentStatusPending:
			stats.PendingOrders++
		}
	}

	return stats
}
