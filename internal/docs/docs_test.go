package docs

import (
	"bytes"
	"testing"
	"time"

	"github.com/chaunsagold/storefront/internal/orders"
	"github.com/stretchr/testify/assert"
)

func ledgerFixture() []orders.Order {
	return []orders.Order{
		{
			ID:       "CG-000002",
			Customer: orders.CustomerInfo{Name: "Sana T.", Phone: "0301 7654321", Address: "Flat 9\nKarachi", Notes: "Call before delivery"},
			Items: []orders.OrderItem{
				{ProductID: "4", Name: "XL Premium Sovereign Box", Unit: "4.5kg - 5kg XL Premium Box", Price: 4000, Quantity: 1},
			},
			Total:     4000,
			Timestamp: time.Date(2024, 6, 2, 9, 30, 0, 0, time.UTC),
			Status:    orders.StatusShipped,
		},
		{
			ID:       "CG-000001",
			Customer: orders.CustomerInfo{Name: "Ali", Phone: "0300 1234567", Address: "House 1"},
			Items: []orders.OrderItem{
				{ProductID: "1", Name: "Chaunsa Standard Box", Unit: "4.5kg - 5kg Box", Price: 1500, Quantity: 2},
			},
			Total:     3000,
			Timestamp: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
			Status:    orders.StatusPending,
		},
	}
}

func TestInvoicePDF(t *testing.T) {
	var buf bytes.Buffer
	err := InvoicePDF(&buf, ledgerFixture()[1])
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Greater(t, buf.Len(), 500)
}

func TestSummaryPDF(t *testing.T) {
	var buf bytes.Buffer
	err := SummaryPDF(&buf, ledgerFixture(), "All")
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))

	// empty filter label defaults to All and an empty list still renders
	buf.Reset()
	assert.NoError(t, SummaryPDF(&buf, nil, ""))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestOrdersCSV(t *testing.T) {
	var buf bytes.Buffer
	err := OrdersCSV(&buf, ledgerFixture())
	assert.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Order ID,Date,Customer,Phone,Address,Items,Total,Status")
	assert.Contains(t, out, "CG-000001")
	assert.Contains(t, out, "2x Chaunsa Standard Box")
	assert.Contains(t, out, "Flat 9 Karachi") // newlines flattened
	assert.Contains(t, out, "Shipped")
}
