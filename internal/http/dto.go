package httpapi

import (
	"fmt"
	"time"

	"merchstore/internal/domain"
	"merchstore/internal/service"
)

// Money is always rendered with two decimals.

type productResp struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Price     string   `json:"price"`
	Colors    []string `json:"colors"`
	Sizes     []string `json:"sizes"`
	Stock     *int64   `json:"stock,omitempty"`
	Available bool     `json:"available"`
	Image     string   `json:"image"`
}

func newProductResp(p domain.Product) productResp {
	return productResp{
		ID:        p.ID,
		Name:      p.Name,
		Type:      p.Type,
		Price:     p.Price.StringFixed(2),
		Colors:    p.Colors,
		Sizes:     p.Sizes,
		Stock:     p.Stock,
		Available: p.Available(),
		Image:     p.Image,
	}
}

type lineResp struct {
	Key       string `json:"key"`
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	Quantity  int64  `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

func newLineResp(it domain.LineItem) lineResp {
	return lineResp{
		Key:       it.Key().String(),
		ProductID: it.ProductID,
		Name:      it.Name,
		Color:     it.Color,
		Size:      it.Size,
		Quantity:  it.Quantity,
		UnitPrice: it.UnitPrice.StringFixed(2),
		LineTotal: it.LineTotal().StringFixed(2),
	}
}

func newLines(items []domain.LineItem) []lineResp {
	out := make([]lineResp, 0, len(items))
	for _, it := range items {
		out = append(out, newLineResp(it))
	}
	return out
}

type cartResp struct {
	SessionID       string     `json:"session_id"`
	Items           []lineResp `json:"items"`
	Subtotal        string     `json:"subtotal"`
	DiscountApplied bool       `json:"discount_applied"`
	Discount        string     `json:"discount"`
	Total           string     `json:"total"`
}

func newCartResp(v *service.CartView) cartResp {
	return cartResp{
		SessionID:       v.SessionID,
		Items:           newLines(v.Items),
		Subtotal:        v.Subtotal.StringFixed(2),
		DiscountApplied: v.DiscountApplied,
		Discount:        v.Discount.StringFixed(2),
		Total:           v.Total.StringFixed(2),
	}
}

type addItemResp struct {
	Message string   `json:"message"`
	Item    lineResp `json:"item"`
	Added   int64    `json:"added"`
	Cart    cartResp `json:"cart"`
}

func newAddItemResp(r *service.AddItemResult) addItemResp {
	return addItemResp{
		Message: fmt.Sprintf("Added %d x %s (%s, %s) to cart!", r.Added, r.Item.Name, r.Item.Color, r.Item.Size),
		Item:    newLineResp(r.Item),
		Added:   r.Added,
		Cart:    newCartResp(r.Cart),
	}
}

type discountResp struct {
	Message string   `json:"message"`
	Cart    cartResp `json:"cart"`
}

type receiptResp struct {
	ID              string     `json:"id"`
	SessionID       string     `json:"session_id"`
	Items           []lineResp `json:"items"`
	Subtotal        string     `json:"subtotal"`
	DiscountApplied bool       `json:"discount_applied"`
	Discount        string     `json:"discount"`
	Total           string     `json:"total"`
	CreatedAt       string     `json:"created_at"`
	Message         string     `json:"message,omitempty"`
}

func newReceiptResp(r *domain.Receipt) receiptResp {
	return receiptResp{
		ID:              r.ID,
		SessionID:       r.SessionID,
		Items:           newLines(r.Items),
		Subtotal:        r.Subtotal.StringFixed(2),
		DiscountApplied: r.DiscountApplied,
		Discount:        r.Discount.StringFixed(2),
		Total:           r.Total.StringFixed(2),
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
	}
}

type errorResp struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
