package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"merchstore/internal/domain"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestComputeSubtotal_Empty(t *testing.T) {
	got := ComputeSubtotal(NewCart())
	assert.True(t, got.IsZero())
	assert.Equal(t, "0.00", got.StringFixed(2))
}

func TestComputeSubtotal_ExactToTheCent(t *testing.T) {
	c := NewCart()
	c.add(domain.LineItem{ProductID: "a", Color: "x", Size: "s", UnitPrice: dec("0.10"), Quantity: 3})
	c.add(domain.LineItem{ProductID: "b", Color: "x", Size: "s", UnitPrice: dec("0.20"), Quantity: 1})
	c.add(domain.LineItem{ProductID: "c", Color: "x", Size: "s", UnitPrice: dec("19.99"), Quantity: 7})

	// 0.30 + 0.20 + 139.93
	assert.True(t, ComputeSubtotal(c).Equal(dec("140.43")), "got %s", ComputeSubtotal(c))
}

func TestComputeTotal(t *testing.T) {
	sub := dec("50.00")

	none := ComputeTotal(sub, DiscountState{})
	assert.True(t, none.Discount.IsZero())
	assert.True(t, none.Total.Equal(sub))

	applied := ComputeTotal(sub, DiscountState{Applied: true})
	assert.True(t, applied.Discount.Equal(dec("20")))
	assert.True(t, applied.Total.Equal(dec("30")))
	assert.True(t, applied.Subtotal.Equal(sub))
}

func TestComputeTotal_NoPrematureRounding(t *testing.T) {
	// 12.00 * 0.40 = 4.80 and 0.05 * 0.40 = 0.02 exactly
	got := ComputeTotal(dec("12.05"), DiscountState{Applied: true})
	assert.Equal(t, "4.82", got.Discount.StringFixed(2))
	assert.Equal(t, "7.23", got.Total.StringFixed(2))
	assert.True(t, got.Discount.Add(got.Total).Equal(dec("12.05")))
}

func TestComputeTotal_NeverNegative(t *testing.T) {
	got := ComputeTotal(decimal.Zero, DiscountState{Applied: true})
	assert.False(t, got.Total.IsNegative())
}
