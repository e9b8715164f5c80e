package dto

import (
	"time"

	"marblemanager/internal/domain"
)

type CreateOrderRequest struct {
	PlanName       string  `json:"plan_name"`
	TotalAmount    float64 `json:"total_amount"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	ProjectAddress string  `json:"project_address,omitempty"`
}

type OrderDTO struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	PlanName       string    `json:"plan_name"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	ProjectAddress *string   `json:"project_address,omitempty"`
	BaseAmount     float64   `json:"base_amount"`
	GSTAmount      float64   `json:"gst_amount"`
	TotalAmount    float64   `json:"total_amount"`
	PaymentStatus  string    `json:"payment_status"`
	Notes          *string   `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func OrderFromDomain(o *domain.Order) OrderDTO {
	return OrderDTO{
		ID:             o.ID,
		UserID:         o.UserID,
		PlanName:       o.PlanName,
		FullName:       o.FullName,
		Email:          o.Email,
		Phone:          o.Phone,
		ProjectAddress: o.ProjectAddress,
		BaseAmount:     o.BaseAmount,
		GSTAmount:      o.GSTAmount,
		TotalAmount:    o.TotalAmount,
		PaymentStatus:  string(o.PaymentStatus),
		Notes:          o.Notes,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func OrdersFromDomain(orders []domain.Order) []OrderDTO {
	out := make([]OrderDTO, len(orders))
	for i := range orders {
		out[i] = OrderFromDomain(&orders[i])
	}
	return out
}

type PaymentInstructionsDTO struct {
	UPIID          string `json:"upi_id"`
	UPILink        string `json:"upi_link"`
	QRCodeURL      string `json:"qr_code_url"`
	QRPlaceholder  string `json:"qr_placeholder"`
	WhatsAppURL    string `json:"whatsapp_url"`
	WhatsAppNumber string `json:"whatsapp_number"`
	SupportPhone   string `json:"support_phone"`
}

type CreateOrderResponse struct {
	Order   OrderDTO               `json:"order"`
	Payment PaymentInstructionsDTO `json:"payment"`
}
