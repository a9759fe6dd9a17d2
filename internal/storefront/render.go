package storefront

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/nikolayk812/storefront-demo/internal/domain"
)

// Render writes the screen of the current stage.
func (t *Terminal) Render() {
	switch t.ctrl.Stage() {
	case domain.StageCatalog:
		t.renderCatalog()
	case domain.StageDelivery:
		t.renderDelivery()
	case domain.StagePayment:
		t.renderPayment()
	}
}

func (t *Terminal) renderCatalog() {
	header := "=== " + t.title + " ==="
	if n := t.ctrl.ItemCount(); n > 0 {
		header += fmt.Sprintf("  [cart: %d]", n)
	}
	fmt.Fprintln(t.out, header)

	tw := tabwriter.NewWriter(t.out, 0, 4, 2, ' ', 0)
	for _, p := range t.ctrl.Products() {
		inCart := ""
		if qty := t.ctrl.Quantity(p.ID); qty > 0 {
			inCart = fmt.Sprintf("x%d", qty)
		}
		fmt.Fprintf(tw, "[%d]\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Price, inCart, p.Description)
	}
	tw.Flush()

	if len(t.ctrl.Cart()) > 0 {
		fmt.Fprintf(t.out, "Cart total: %s  (type \"checkout\" to proceed to delivery)\n", t.ctrl.TotalAmount())
	}
}

func (t *Terminal) renderDelivery() {
	fmt.Fprintln(t.out, "=== Delivery Details ===")

	tw := tabwriter.NewWriter(t.out, 0, 4, 2, ' ', 0)
	for _, line := range t.ctrl.Lines() {
		fmt.Fprintf(tw, "%s\tQuantity: %d\t%s\n", line.Product.Name, line.Quantity, line.Subtotal)
	}
	tw.Flush()

	fields := []struct {
		label string
		value string
	}{
		{"Full Name", t.form.FullName},
		{"Email Address", t.form.Email},
		{"Phone Number", t.form.Phone},
		{"Delivery Address", t.form.Address},
		{"Additional Notes", t.form.Notes},
	}
	for _, f := range fields {
		value := f.value
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(t.out, "%-17s %s\n", f.label+":", value)
	}

	fmt.Fprintf(t.out, "Total Amount: %s\n", t.ctrl.TotalAmount())
	fmt.Fprintln(t.out, strings.Join([]string{`"pay" to proceed to payment`, `"back" to shop`}, ", "))
}

func (t *Terminal) renderPayment() {
	fmt.Fprintln(t.out, "=== Payment ===")
	fmt.Fprintf(t.out, "QR code: %s\n", t.payment.QRImage)
	fmt.Fprintf(t.out, "Total Amount: %s\n", t.ctrl.TotalAmount())
	fmt.Fprintln(t.out, "Scan the QR code to pay using UPI")
	fmt.Fprintf(t.out, "UPI ID: %s\n", t.payment.UPIID)
	fmt.Fprintln(t.out, `"complete" to complete the order, "back" to delivery`)
}
