package payment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"marblemanager/internal/config"
)

func testBuilder() *LinkBuilder {
	return NewLinkBuilder(
		config.PaymentConfig{
			UPIID:        "merchant@oksbi",
			MerchantName: "Marble Manager",
			QRServiceURL: "https://api.qrserver.com/v1/create-qr-code/",
		},
		config.ContactConfig{
			WhatsAppNumber: "919999999999",
			SupportPhone:   "918888888888",
		},
	)
}

func TestUPILink(t *testing.T) {
	b := testBuilder()

	link := b.UPILink("order-123", "Premium Plan", 4999)

	assert.Equal(t,
		"upi://pay?pa=merchant@oksbi&pn=Marble%20Manager&am=4999&tr=order-123&tn=Payment%20for%20Premium%20Plan",
		link,
	)
}

func TestUPILink_FractionalAmountKeepsDecimals(t *testing.T) {
	b := testBuilder()

	link := b.UPILink("order-123", "Premium Plan", 846.61)

	assert.Contains(t, link, "&am=846.61&")
	assert.NotContains(t, link, "am=846.610")
}

func TestUPILink_NoPlusEncoding(t *testing.T) {
	b := testBuilder()

	link := b.UPILink("order-123", "Full Service Plan", 24999)

	// Spaces must encode as %20; some UPI apps do not decode '+'.
	assert.NotContains(t, link, "+")
	assert.Contains(t, link, "tn=Payment%20for%20Full%20Service%20Plan")
}

func TestQRCodeURL(t *testing.T) {
	b := testBuilder()

	upiLink := b.UPILink("order-123", "Premium Plan", 4999)
	qrURL := b.QRCodeURL(upiLink)

	assert.True(t, strings.HasPrefix(qrURL, "https://api.qrserver.com/v1/create-qr-code/?size=300x300&data="))
	assert.True(t, strings.HasSuffix(qrURL, "&margin=20"))
	// The embedded link must itself be escaped.
	assert.Contains(t, qrURL, "upi%3A%2F%2Fpay")
	assert.NotContains(t, qrURL[len("https://"):], "://")
}

func TestWhatsAppLink(t *testing.T) {
	b := testBuilder()

	link := b.WhatsAppLink("order-123", "Premium Plan", 4999)

	assert.True(t, strings.HasPrefix(link, "https://wa.me/919999999999?text="))
	assert.Contains(t, link, "order-123")
	assert.NotContains(t, link, "+")
}

func TestConfirmationMessage(t *testing.T) {
	msg := ConfirmationMessage("order-123", "Premium Plan", 4999)

	assert.Contains(t, msg, "Order ID: order-123")
	assert.Contains(t, msg, "Plan: Premium Plan")
	assert.Contains(t, msg, "Amount Paid: ₹4999")
	assert.Contains(t, msg, "Please confirm my payment")
}

func TestPlaceholderQRIsDataURI(t *testing.T) {
	assert.True(t, strings.HasPrefix(PlaceholderQR, "data:image/svg+xml,"))
}
