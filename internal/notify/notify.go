// Package notify holds the fire-and-forget order collaborators. A Notifier
// returns nothing: failures are its own problem to log and swallow, so a dead
// webhook or broker can never block a checkout.
package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/chaunsagold/storefront/internal/orders"
)

type Notifier interface {
	NotifyOrder(ctx context.Context, o orders.Order)
}

// ItemSummary renders "2x Chaunsa Standard Box (4.5kg - 5kg Box), ..." for
// spreadsheet rows and event payloads.
func ItemSummary(o orders.Order) string {
	parts := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		parts = append(parts, fmt.Sprintf("%dx %s (%s)", it.Quantity, it.Name, it.Unit))
	}
	return strings.Join(parts, ", ")
}
