// Package notification forwards new-order summaries to the shop operator.
// Delivery is best-effort: a failed notification never fails the order.
package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/ArtytL/loh2-site/internal/domain"
)

type Notifier interface {
	OrderCreated(ctx context.Context, order domain.Order) error
}

// BuildOrderSummary renders an order as the plain-text block sent to the
// operator.
func BuildOrderSummary(order domain.Order) string {
	lines := []string{
		fmt.Sprintf("New order %s", order.ID),
		"--------------------",
		fmt.Sprintf("Customer: %s", valueOrDash(order.Customer.Name)),
		fmt.Sprintf("Email: %s", valueOrDash(order.Customer.Email)),
		fmt.Sprintf("Phone: %s", valueOrDash(order.Customer.Phone)),
		fmt.Sprintf("Address: %s", valueOrDash(order.Customer.Address)),
	}
	if order.Customer.Note != "" {
		lines = append(lines, fmt.Sprintf("Note: %s", order.Customer.Note))
	}

	lines = append(lines, "", "Items:", "--------------------")

	var subtotal float64
	for _, item := range order.Items {
		sum := float64(item.Qty) * item.UnitPrice
		subtotal += sum
		lines = append(lines, fmt.Sprintf("- [%s] %s (%s) x %d = %.2f",
			valueOrDash(item.ProductID), valueOrDash(item.Title), item.MediaType, item.Qty, sum))
	}

	lines = append(lines,
		"--------------------",
		fmt.Sprintf("Subtotal: %.2f", subtotal),
		fmt.Sprintf("Shipping: %.2f", order.ShippingFee),
		fmt.Sprintf("Total: %.2f", order.GrandTotal),
	)

	return strings.Join(lines, "\n")
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
