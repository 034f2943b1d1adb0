// Package docs renders downloadable order documents: the single-order
// invoice, the filtered ledger summary and the raw CSV export.
package docs

import (
	"fmt"
	"io"

	"github.com/chaunsagold/storefront/internal/orders"
	"github.com/jung-kurt/gofpdf"
)

// InvoicePDF writes a formatted invoice for one order.
func InvoicePDF(w io.Writer, o orders.Order) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// branding
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(245, 158, 11)
	pdf.Cell(0, 10, "CHAUNSA GOLD")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(107, 114, 128)
	pdf.Cell(0, 6, "Premium Mango Harvest - Order Invoice")
	pdf.Ln(14)

	pdf.SetTextColor(31, 41, 55)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, "Order "+o.ID)
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Date: "+o.Timestamp.Format("02 Jan 2006 15:04"))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Status: "+string(o.Status))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, "Deliver To")
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, o.Customer.Name)
	pdf.Ln(6)
	pdf.Cell(0, 6, o.Customer.Phone)
	pdf.Ln(6)
	pdf.MultiCell(0, 6, o.Customer.Address, "", "L", false)
	if o.Customer.Notes != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, "Notes: "+o.Customer.Notes, "", "L", false)
	}
	pdf.Ln(6)

	// item table
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(31, 41, 55)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(80, 8, "Product", "", 0, "L", true, 0, "")
	pdf.CellFormat(45, 8, "Quantity", "", 0, "L", true, 0, "")
	pdf.CellFormat(30, 8, "Unit Price", "", 0, "R", true, 0, "")
	pdf.CellFormat(30, 8, "Total", "", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(31, 41, 55)
	fill := false
	for _, it := range o.Items {
		pdf.SetFillColor(243, 244, 246)
		pdf.CellFormat(80, 7, it.Name, "", 0, "L", fill, 0, "")
		pdf.CellFormat(45, 7, fmt.Sprintf("%d x %s", it.Quantity, it.Unit), "", 0, "L", fill, 0, "")
		pdf.CellFormat(30, 7, "Rs. "+orders.FormatRs(it.Price), "", 0, "R", fill, 0, "")
		pdf.CellFormat(30, 7, "Rs. "+orders.FormatRs(it.Subtotal()), "", 1, "R", fill, 0, "")
		fill = !fill
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(155, 9, "Grand Total", "", 0, "R", false, 0, "")
	pdf.CellFormat(30, 9, "Rs. "+orders.FormatRs(o.Total), "", 1, "R", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(156, 163, 175)
	pdf.Cell(0, 5, "Thank you for choosing Chaunsa Gold. Direct from the orchards to your table.")

	return pdf.Output(w)
}

// SummaryPDF writes the tabular ledger report for the given filter, ending
// with the computed revenue total.
func SummaryPDF(w io.Writer, list []orders.Order, filterLabel string) error {
	if filterLabel == "" {
		filterLabel = orders.FilterAll
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(245, 158, 11)
	pdf.Cell(0, 10, "CHAUNSA GOLD - Order Ledger")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(107, 114, 128)
	pdf.Cell(0, 6, fmt.Sprintf("Filter: %s | Records: %d", filterLabel, len(list)))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(245, 158, 11)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(25, 8, "ID", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 8, "Date", "1", 0, "L", true, 0, "")
	pdf.CellFormat(45, 8, "Customer", "1", 0, "L", true, 0, "")
	pdf.CellFormat(35, 8, "Phone", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 8, "Status", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 8, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(31, 41, 55)
	for _, o := range list {
		pdf.CellFormat(25, 7, o.ID, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, o.Timestamp.Format("2006-01-02"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 7, o.Customer.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, o.Customer.Phone, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, string(o.Status), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, "Rs. "+orders.FormatRs(o.Total), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(155, 9, "Total Revenue", "", 0, "R", false, 0, "")
	pdf.CellFormat(30, 9, "Rs. "+orders.FormatRs(orders.TotalRevenue(list)), "", 1, "R", false, 0, "")

	return pdf.Output(w)
}
