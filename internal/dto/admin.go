package dto

type UpdateStatusRequest struct {
	PaymentStatus string `json:"payment_status"`
}

// OrderStats aggregates are always computed over the full order set,
// not the filtered view.
type OrderStats struct {
	TotalOrders     int     `json:"total_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
	PendingOrders   int     `json:"pending_orders"`
	ConfirmedOrders int     `json:"confirmed_orders"`
}

type AdminOrdersResponse struct {
	Orders []OrderDTO `json:"orders"`
	Stats  OrderStats `json:"stats"`
}
