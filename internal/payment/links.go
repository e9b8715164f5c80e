// Package payment constructs the manual-payment artefacts handed to the
// customer after checkout: a UPI deep link, a QR image URL rendering that
// link, and a WhatsApp deep link carrying a prefilled confirmation
// message. Nothing here talks to a gateway; payment is completed out of
// band and confirmed by a human.
package payment

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"marblemanager/internal/config"
)

// PlaceholderQR is served alongside the QR image URL so clients have a
// fallback when the render service fails.
const PlaceholderQR = `data:image/svg+xml,%3Csvg xmlns="http://www.w3.org/2000/svg" width="300" height="300"%3E%3Crect width="300" height="300" fill="%23f0f0f0"/%3E%3Ctext x="50%25" y="50%25" text-anchor="middle" dy=".3em" fill="%23999"%3EQR Code%3C/text%3E%3C/svg%3E`

type LinkBuilder struct {
	payment config.PaymentConfig
	contact config.ContactConfig
}

func NewLinkBuilder(payment config.PaymentConfig, contact config.ContactConfig) *LinkBuilder {
	return &LinkBuilder{
		payment: payment,
		contact: contact,
	}
}

// UPILink builds the upi://pay deep link. The transaction reference is
// the order id, which is how an out-of-band payment is matched back to
// its order.
func (b *LinkBuilder) UPILink(orderID, planName string, amount float64) string {
	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%s&tr=%s&tn=%s",
		b.payment.UPIID,
		escape(b.payment.MerchantName),
		formatAmount(amount),
		orderID,
		escape("Payment for "+planName),
	)
}

// QRCodeURL returns the render-service URL for a payment link. The
// service is trusted to produce the image; render failures fall back to
// PlaceholderQR on the client side.
func (b *LinkBuilder) QRCodeURL(upiLink string) string {
	return fmt.Sprintf("%s?size=300x300&data=%s&margin=20",
		strings.TrimSuffix(b.payment.QRServiceURL, "?"),
		escape(upiLink),
	)
}

// WhatsAppLink opens a chat with the staff number, prefilled with the
// order confirmation message. No delivery confirmation is available.
func (b *LinkBuilder) WhatsAppLink(orderID, planName string, amount float64) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s",
		b.contact.WhatsAppNumber,
		escape(ConfirmationMessage(orderID, planName, amount)),
	)
}

// ConfirmationMessage is the text the customer sends after paying.
func ConfirmationMessage(orderID, planName string, amount float64) string {
	return fmt.Sprintf(`Hi! I have completed the payment for my order.

*Order Details:*
Order ID: %s
Plan: %s
Amount Paid: ₹%s

Please confirm my payment and activate my plan.

Thank you!`, orderID, planName, formatAmount(amount))
}

// formatAmount renders a currency value without trailing zeros, the way
// UPI apps expect it in the am parameter (4999 not 4999.00, 847.46 kept).
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// escape percent-encodes like encodeURIComponent: spaces become %20, not
// '+', which some UPI apps fail to decode.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
