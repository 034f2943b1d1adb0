package docs

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/chaunsagold/storefront/internal/orders"
)

// OrdersCSV writes the raw database export, one row per order.
func OrdersCSV(w io.Writer, list []orders.Order) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Order ID", "Date", "Customer", "Phone", "Address", "Items", "Total", "Status"}); err != nil {
		return err
	}
	for _, o := range list {
		items := make([]string, 0, len(o.Items))
		for _, it := range o.Items {
			items = append(items, fmt.Sprintf("%dx %s", it.Quantity, it.Name))
		}
		row := []string{
			o.ID,
			o.Timestamp.Format("2006-01-02 15:04:05"),
			o.Customer.Name,
			o.Customer.Phone,
			strings.ReplaceAll(o.Customer.Address, "\n", " "),
			strings.Join(items, "; "),
			fmt.Sprintf("%d", o.Total),
			string(o.Status),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
