package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ArtytL/loh2-site/internal/domain"
)

func TestGrandTotal(t *testing.T) {
	items := []domain.OrderItem{
		{Qty: 2, UnitPrice: 150},
		{Qty: 1, UnitPrice: 300},
	}

	assert.Equal(t, float64(300), LineTotal(items[0]))
	assert.Equal(t, float64(600), Subtotal(items))
	assert.Equal(t, float64(50), ShippingFee(items, 50))
	assert.Equal(t, float64(650), GrandTotal(items, 50))
}

func TestEmptyCartHasNoShipping(t *testing.T) {
	assert.Equal(t, float64(0), ShippingFee(nil, 50))
	assert.Equal(t, float64(0), GrandTotal(nil, 50))
}

func TestSingleFlatRatePerOrder(t *testing.T) {
	one := []domain.OrderItem{{Qty: 1, UnitPrice: 100}}
	many := []domain.OrderItem{
		{Qty: 1, UnitPrice: 100},
		{Qty: 3, UnitPrice: 80},
		{Qty: 2, UnitPrice: 60},
	}

	assert.Equal(t, ShippingFee(one, 50), ShippingFee(many, 50), "flat rate is independent of item count")
}
