package service

import "github.com/ArtytL/loh2-site/internal/domain"

// Totals are always computed server-side; a client-supplied total is never
// trusted.

func LineTotal(item domain.OrderItem) float64 {
	return float64(item.Qty) * item.UnitPrice
}

func Subtotal(items []domain.OrderItem) float64 {
	var sum float64
	for _, item := range items {
		sum += LineTotal(item)
	}
	return sum
}

// ShippingFee applies the flat rate once per non-empty order.
func ShippingFee(items []domain.OrderItem, flatRate float64) float64 {
	if len(items) == 0 {
		return 0
	}
	return flatRate
}

func GrandTotal(items []domain.OrderItem, flatRate float64) float64 {
	return Subtotal(items) + ShippingFee(items, flatRate)
}
