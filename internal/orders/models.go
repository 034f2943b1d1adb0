package orders

import (
	"fmt"
	"strings"
	"time"
)

type CustomerInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes,omitempty"`
}

// OrderItem is a snapshot of a product line at checkout time. Later catalog
// edits never change what an already-submitted order says.
type OrderItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	Price     int    `json:"price"` // rupees per unit
	Quantity  int    `json:"quantity"`
}

func (it OrderItem) Subtotal() int { return it.Price * it.Quantity }

type Order struct {
	ID        string       `json:"order_id"`
	Customer  CustomerInfo `json:"customer"`
	Items     []OrderItem  `json:"items"`
	Total     int          `json:"total"`
	Timestamp time.Time    `json:"timestamp"`
	Status    Status       `json:"status"`
}

// NewOrderID derives a short order id from the submission time.
func NewOrderID(t time.Time) string {
	return fmt.Sprintf("CG-%06d", t.UnixMilli()%1_000_000)
}

// FormatRs renders a rupee amount with grouped thousands, e.g. 1500 -> "1,500".
func FormatRs(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
	}
	for i := pre; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
