// Package receipt renders a pickup order into a downloadable PDF
// bill.
package receipt

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"grosirku-be/internal/metrics"
	"grosirku-be/internal/order"

	"github.com/jung-kurt/gofpdf"
)

// ShopInfo is the static header and payment block printed on every
// receipt.
type ShopInfo struct {
	Name        string
	Address     string
	PaymentNote string
}

type Renderer struct {
	shop ShopInfo
}

func NewRenderer(shop ShopInfo) *Renderer {
	return &Renderer{shop: shop}
}

const timeLayout = "2006-01-02 03:04 PM"

// Render produces the PDF bill for an order.
func (r *Renderer) Render(o *order.Order) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	// Shop header.
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(44, 62, 80)
	pdf.CellFormat(0, 7, r.shop.Name, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, line := range strings.Split(r.shop.Address, "\n") {
		pdf.CellFormat(0, 4.5, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	// Order details.
	details := [][2]string{
		{"Order ID:", strconv.FormatInt(o.ID, 10)},
		{"Date:", o.CreatedAt.Format(timeLayout)},
		{"Customer Name:", o.CustomerName},
		{"Phone:", o.CustomerPhone},
		{"Pickup Time:", o.PickupTime.Format(timeLayout)},
		{"Status:", strings.ToUpper(string(o.Status))},
	}
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range details {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(236, 240, 241)
		pdf.CellFormat(50, 9, row[0], "1", 0, "L", true, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 9, row[1], "1", 1, "L", false, 0, "")
	}
	pdf.Ln(8)

	// Items table.
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(52, 152, 219)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(80, 10, "Item", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 10, "Quantity", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 10, "Price", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 10, "Subtotal", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for i, item := range o.Items {
		fill := i%2 == 1
		pdf.SetFillColor(248, 249, 250)
		pdf.CellFormat(80, 8, item.ProductName, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(35, 8, FormatQuantity(item.Quantity, item.UnitType), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("$%.2f", item.UnitPrice), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("$%.2f", item.Subtotal()), "1", 1, "C", fill, 0, "")
	}
	pdf.Ln(6)

	// Total.
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(39, 174, 96)
	pdf.CellFormat(0, 10, fmt.Sprintf("TOTAL: $%.2f", o.TotalAmount), "", 1, "R", false, 0, "")
	pdf.Ln(6)

	// Payment block.
	if r.shop.PaymentNote != "" {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(44, 62, 80)
		pdf.CellFormat(0, 6, "Payment Information:", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		note := strings.ReplaceAll(r.shop.PaymentNote, "{order_id}", strconv.FormatInt(o.ID, 10))
		pdf.MultiCell(0, 5, note, "", "L", false)
		pdf.Ln(6)
	}

	// Footer.
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 6,
		"Thank you for your order! Please arrive at the scheduled pickup time.",
		"", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	metrics.ReceiptsRendered.Inc()
	return buf.Bytes(), nil
}

// Filename is the attachment name offered to the browser.
func Filename(orderID int64) string {
	return fmt.Sprintf("bill_order_%d.pdf", orderID)
}

// FormatQuantity renders a quantity for display. Weight-based items
// under one kilogram read better in grams; count-based items drop the
// decimal point when whole.
func FormatQuantity(quantity float64, unitType string) string {
	if unitType == "kg" {
		if quantity >= 1 && quantity == float64(int64(quantity)) {
			return fmt.Sprintf("%d kg", int64(quantity))
		}
		if quantity < 1 {
			return fmt.Sprintf("%dg", int64(quantity*1000))
		}
		return fmt.Sprintf("%v kg", quantity)
	}

	if quantity == float64(int64(quantity)) {
		return strconv.FormatInt(int64(quantity), 10)
	}
	return strconv.FormatFloat(quantity, 'f', -1, 64)
}
