package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopeasy/storefront/internal/models"
)

func renderProducts(w io.Writer, products []models.Product) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tSTOCK\tCATEGORY")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%d\t%s\n", p.ID, p.Name, p.Price, p.Stock, p.Category.Name)
	}
	tw.Flush()
}

func renderCart(w io.Writer, lines []models.CartLine, summary models.CartSummary) {
	if len(lines) == 0 {
		fmt.Fprintln(w, "Your cart is empty.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PRODUCT\tNAME\tQTY\tPRICE\tSUBTOTAL")
	for _, l := range lines {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.2f\t%.2f\n",
			l.Product.ID, l.Product.Name, l.Quantity, l.Product.Price,
			float64(l.Quantity)*l.Product.Price)
	}
	tw.Flush()
	fmt.Fprintf(w, "\n%d items, total %.2f\n", summary.TotalItems, summary.TotalAmount)
}

func renderOrders(w io.Writer, orders []models.Order) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ORDER\tSTATUS\tPAYMENT\tTOTAL\tPLACED")
	for _, o := range orders {
		fmt.Fprintf(tw, "%s\t%s\t%s/%s\t%.2f\t%s\n",
			o.OrderNumber, o.Status, o.PaymentDetails.Method, o.PaymentDetails.Status,
			o.TotalAmount, o.CreatedAt.Format("2006-01-02 15:04"))
	}
	tw.Flush()
}

func renderOrder(w io.Writer, o *models.Order) {
	fmt.Fprintf(w, "Order %s (%s)\n", o.OrderNumber, o.Status)
	fmt.Fprintf(w, "Payment: %s (%s)\n", o.PaymentDetails.Method, o.PaymentDetails.Status)
	fmt.Fprintf(w, "Ship to: %s, %s, %s %s, %s\n",
		o.ShippingAddress.Street, o.ShippingAddress.City, o.ShippingAddress.State,
		o.ShippingAddress.ZipCode, o.ShippingAddress.Country)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tQTY\tPRICE")
	for _, item := range o.Items {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\n", item.Product.Name, item.Quantity, item.Price)
	}
	tw.Flush()
	fmt.Fprintf(w, "Total: %.2f\n", o.TotalAmount)
}
