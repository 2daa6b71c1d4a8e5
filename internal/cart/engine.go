package cart

import (
	"fmt"

	"go.uber.org/zap"

	"merchstore/internal/catalog"
	"merchstore/internal/domain"
)

// Bounds for a single add; the accumulated line quantity is not capped.
const (
	MinQuantity = 1
	MaxQuantity = 10
)

// Engine applies cart and pricing operations to a Session. It holds no
// session state of its own.
type Engine struct {
	catalog catalog.Catalog
	logger  *zap.Logger
}

func NewEngine(c catalog.Catalog, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{catalog: c, logger: logger}
}

func (e *Engine) Catalog() catalog.Catalog { return e.catalog }

// AddResult is the line after the add plus the quantity that was added.
type AddResult struct {
	Item  domain.LineItem
	Added int64
}

// AddItem validates the selection against the catalog and merges it into the cart.
// The session is left untouched when an error is returned.
func (e *Engine) AddItem(s *Session, productID, color, size string, quantity int64) (AddResult, error) {
	p, err := e.catalog.Get(productID)
	if err != nil {
		return AddResult{}, err
	}
	if !p.Available() {
		return AddResult{}, fmt.Errorf("%w: %s", ErrOutOfStock, p.Name)
	}
	if !p.HasColor(color) {
		return AddResult{}, fmt.Errorf("%w: color %q not offered for %s", ErrInvalidSelection, color, p.ID)
	}
	if !p.HasSize(size) {
		return AddResult{}, fmt.Errorf("%w: size %q not offered for %s", ErrInvalidSelection, size, p.ID)
	}
	if quantity < MinQuantity || quantity > MaxQuantity {
		return AddResult{}, fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidQuantity, quantity, MinQuantity, MaxQuantity)
	}

	line := s.Cart.add(domain.LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Color:     color,
		Size:      size,
		Quantity:  quantity,
	})
	e.logger.Info("item added",
		zap.String("session_id", s.ID),
		zap.String("key", line.Key().String()),
		zap.Int64("added", quantity),
		zap.Int64("quantity", line.Quantity),
	)
	return AddResult{Item: line, Added: quantity}, nil
}

// RemoveItem deletes the line for key. Missing keys are ignored.
func (e *Engine) RemoveItem(s *Session, key domain.LineKey) bool {
	removed := s.Cart.remove(key)
	if removed {
		e.logger.Info("item removed", zap.String("session_id", s.ID), zap.String("key", key.String()))
	}
	return removed
}

// ApplyDiscount overwrites the discount flag with the result of validating raw.
// An invalid id revokes a previously applied discount and returns ErrInvalidFormat.
func (e *Engine) ApplyDiscount(s *Session, raw string) error {
	s.Discount.Applied = ValidateStudentID(raw)
	e.logger.Info("discount attempt",
		zap.String("session_id", s.ID),
		zap.Bool("applied", s.Discount.Applied),
	)
	if !s.Discount.Applied {
		return ErrInvalidFormat
	}
	return nil
}

// Totals prices the session's cart.
func (e *Engine) Totals(s *Session) domain.Totals {
	return ComputeTotal(ComputeSubtotal(s.Cart), s.Discount)
}

// Checkout snapshots the cart into a receipt and resets the session.
// An empty cart yields a zero receipt.
func (e *Engine) Checkout(s *Session) domain.Receipt {
	totals := e.Totals(s)
	receipt := domain.Receipt{
		SessionID:       s.ID,
		Items:           s.Cart.Items(),
		Subtotal:        totals.Subtotal,
		Discount:        totals.Discount,
		Total:           totals.Total,
		DiscountApplied: s.Discount.Applied,
	}
	s.reset()
	e.logger.Info("checkout",
		zap.String("session_id", s.ID),
		zap.Int("lines", len(receipt.Items)),
		zap.String("total", receipt.Total.StringFixed(2)),
	)
	return receipt
}
