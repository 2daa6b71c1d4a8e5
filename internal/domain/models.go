package domain

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item. Immutable for the lifetime of the process.
type Product struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Type   string          `json:"type"`
	Price  decimal.Decimal `json:"price"`
	Colors []string        `json:"colors"`
	Sizes  []string        `json:"sizes"`
	// Stock is optional; nil means in stock.
	Stock *int64 `json:"stock,omitempty"`
	Image string `json:"image"`
}

// Available reports whether the product can be added to a cart.
func (p Product) Available() bool {
	return p.Stock == nil || *p.Stock > 0
}

func (p Product) HasColor(color string) bool { return slices.Contains(p.Colors, color) }

func (p Product) HasSize(size string) bool { return slices.Contains(p.Sizes, size) }

// LineKey identifies a cart line: one per product, color and size.
type LineKey struct {
	ProductID string `json:"product_id"`
	Color     string `json:"color"`
	Size      string `json:"size"`
}

func (k LineKey) String() string {
	return fmt.Sprintf("%s-%s-%s", k.ProductID, k.Color, k.Size)
}

// LineItem is a cart entry. UnitPrice is the catalog price at the time of the first add.
type LineItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Color     string          `json:"color"`
	Size      string          `json:"size"`
	Quantity  int64           `json:"quantity"`
}

func (li LineItem) Key() LineKey {
	return LineKey{ProductID: li.ProductID, Color: li.Color, Size: li.Size}
}

// LineTotal is unit price times quantity, unrounded.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(li.Quantity))
}

// Totals is the priced view of a cart.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// Receipt snapshot captured at checkout
type Receipt struct {
	ID              string          `json:"id"`
	SessionID       string          `json:"session_id"`
	Items           []LineItem      `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Discount        decimal.Decimal `json:"discount"`
	Total           decimal.Decimal `json:"total"`
	DiscountApplied bool            `json:"discount_applied"`
	CreatedAt       time.Time       `json:"created_at"`
}
