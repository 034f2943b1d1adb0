// Package links builds the checkout handoff deep links. Neither channel
// confirms delivery; the links just open a pre-filled composer.
package links

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/chaunsagold/storefront/internal/orders"
)

// WhatsAppOrderURL builds a wa.me link that opens the chat composer with the
// full order summary.
func WhatsAppOrderURL(number string, o orders.Order) string {
	var b strings.Builder
	b.WriteString("*Royal Order: Chaunsa Gold*\n\n")
	b.WriteString("*Customer Details:*\n")
	fmt.Fprintf(&b, "Name: %s\n", o.Customer.Name)
	fmt.Fprintf(&b, "Phone: %s\n", o.Customer.Phone)
	fmt.Fprintf(&b, "Address: %s\n\n", o.Customer.Address)
	b.WriteString("*Order Selection:*\n")
	for i, it := range o.Items {
		fmt.Fprintf(&b, "\n%d. *%s*\n   Qty: %d units (%s)\n   Sub: Rs. %s\n",
			i+1, it.Name, it.Quantity, it.Unit, orders.FormatRs(it.Subtotal()))
	}
	fmt.Fprintf(&b, "\n*Total Order Value: Rs. %s*\n\n", orders.FormatRs(o.Total))
	b.WriteString("Please confirm shipping and payment instructions.")

	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(b.String()))
}

// GmailComposeURL builds the Gmail web composer link so the order mail goes
// out from the customer's own Google account.
func GmailComposeURL(recipient string, o orders.Order) string {
	var items strings.Builder
	for _, it := range o.Items {
		fmt.Fprintf(&items, "• %dx %s (%s) - Rs. %d\n", it.Quantity, it.Name, it.Unit, it.Subtotal())
	}

	body := fmt.Sprintf("ORDER ID: %s\nCUSTOMER: %s\nPHONE: %s\nADDRESS: %s\n\nITEMS:\n%s\nTOTAL: Rs. %s",
		o.ID, o.Customer.Name, o.Customer.Phone, o.Customer.Address,
		items.String(), orders.FormatRs(o.Total))

	q := url.Values{}
	q.Set("view", "cm")
	q.Set("fs", "1")
	q.Set("to", recipient)
	q.Set("su", fmt.Sprintf("👑 NEW CHAUNSA ORDER: %s", o.ID))
	q.Set("body", body)
	return "https://mail.google.com/mail/?" + q.Encode()
}
