package cart

import (
	"github.com/shopspring/decimal"

	"merchstore/internal/domain"
)

// DiscountPercent is the student discount, in percent of the subtotal.
const DiscountPercent = 40

var discountRate = decimal.New(DiscountPercent, -2)

// ComputeSubtotal sums unit price times quantity over all lines without rounding.
func ComputeSubtotal(c *Cart) decimal.Decimal {
	subtotal := decimal.Zero
	for _, it := range c.items {
		subtotal = subtotal.Add(it.LineTotal())
	}
	return subtotal
}

// ComputeTotal applies the discount, if any, to subtotal.
func ComputeTotal(subtotal decimal.Decimal, d DiscountState) domain.Totals {
	discount := decimal.Zero
	if d.Applied {
		discount = subtotal.Mul(discountRate)
	}
	return domain.Totals{
		Subtotal: subtotal,
		Discount: discount,
		Total:    subtotal.Sub(discount),
	}
}
