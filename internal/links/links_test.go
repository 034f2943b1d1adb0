package links

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/chaunsagold/storefront/internal/orders"
	"github.com/stretchr/testify/assert"
)

func sampleOrder() orders.Order {
	return orders.Order{
		ID:       "CG-123456",
		Customer: orders.CustomerInfo{Name: "Ali Raza", Phone: "0300 1234567", Address: "House 1, Street 2, Lahore"},
		Items: []orders.OrderItem{
			{ProductID: "1", Name: "Chaunsa Standard Box", Unit: "4.5kg - 5kg Box", Price: 1500, Quantity: 2},
			{ProductID: "3", Name: "Bulk Mega Harvest", Unit: "13kg Mega Box", Price: 3000, Quantity: 1},
		},
		Total:     6000,
		Timestamp: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		Status:    orders.StatusPending,
	}
}

func TestWhatsAppOrderURL(t *testing.T) {
	link := WhatsAppOrderURL("923001234567", sampleOrder())

	assert.True(t, strings.HasPrefix(link, "https://wa.me/923001234567?text="))

	u, err := url.Parse(link)
	assert.NoError(t, err)
	text := u.Query().Get("text")
	assert.Contains(t, text, "Royal Order: Chaunsa Gold")
	assert.Contains(t, text, "Name: Ali Raza")
	assert.Contains(t, text, "1. *Chaunsa Standard Box*")
	assert.Contains(t, text, "Qty: 2 units (4.5kg - 5kg Box)")
	assert.Contains(t, text, "Sub: Rs. 3,000")
	assert.Contains(t, text, "Total Order Value: Rs. 6,000")
	assert.Contains(t, text, "Please confirm shipping and payment instructions.")
}

func TestGmailComposeURL(t *testing.T) {
	link := GmailComposeURL("orders@chaunsagold.pk", sampleOrder())

	u, err := url.Parse(link)
	assert.NoError(t, err)
	assert.Equal(t, "mail.google.com", u.Host)

	q := u.Query()
	assert.Equal(t, "cm", q.Get("view"))
	assert.Equal(t, "orders@chaunsagold.pk", q.Get("to"))
	assert.Contains(t, q.Get("su"), "NEW CHAUNSA ORDER: CG-123456")

	body := q.Get("body")
	assert.Contains(t, body, "ORDER ID: CG-123456")
	assert.Contains(t, body, "CUSTOMER: Ali Raza")
	assert.Contains(t, body, "2x Chaunsa Standard Box (4.5kg - 5kg Box) - Rs. 3000")
	assert.Contains(t, body, "TOTAL: Rs. 6,000")
}
