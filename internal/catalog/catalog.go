package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"merchstore/internal/domain"
)

// ErrNotFound is returned for an unknown product id
var ErrNotFound = errors.New("product not found")

// ErrInvalidProduct is returned when a catalog definition is malformed
var ErrInvalidProduct = errors.New("invalid product")

// Catalog is the read-only product source used by the cart engine.
type Catalog interface {
	Get(id string) (*domain.Product, error)
	List() []domain.Product
}

// Static is an immutable in-memory catalog. Products keep their definition order.
type Static struct {
	order []string
	byID  map[string]domain.Product
}

var _ Catalog = (*Static)(nil)

// New validates products and builds a catalog from them.
func New(products []domain.Product) (*Static, error) {
	c := &Static{
		order: make([]string, 0, len(products)),
		byID:  make(map[string]domain.Product, len(products)),
	}
	for _, p := range products {
		if err := validate(p); err != nil {
			return nil, err
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidProduct, p.ID)
		}
		c.order = append(c.order, p.ID)
		c.byID[p.ID] = clone(p)
	}
	return c, nil
}

func (c *Static) Get(id string) (*domain.Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	cp := clone(p)
	return &cp, nil
}

func (c *Static) List() []domain.Product {
	out := make([]domain.Product, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, clone(c.byID[id]))
	}
	return out
}

func validate(p domain.Product) error {
	switch {
	case p.ID == "":
		return fmt.Errorf("%w: empty id", ErrInvalidProduct)
	case p.Name == "":
		return fmt.Errorf("%w: %q has no name", ErrInvalidProduct, p.ID)
	case p.Price.IsNegative():
		return fmt.Errorf("%w: %q has negative price", ErrInvalidProduct, p.ID)
	case len(p.Colors) == 0:
		return fmt.Errorf("%w: %q has no colors", ErrInvalidProduct, p.ID)
	case len(p.Sizes) == 0:
		return fmt.Errorf("%w: %q has no sizes", ErrInvalidProduct, p.ID)
	case p.Stock != nil && *p.Stock < 0:
		return fmt.Errorf("%w: %q has negative stock", ErrInvalidProduct, p.ID)
	}
	return nil
}

// clone detaches slices and the stock pointer so callers cannot mutate the catalog
func clone(p domain.Product) domain.Product {
	p.Colors = slices.Clone(p.Colors)
	p.Sizes = slices.Clone(p.Sizes)
	if p.Stock != nil {
		s := *p.Stock
		p.Stock = &s
	}
	return p
}

func stock(n int64) *int64 { return &n }

// Default returns the store's built-in catalog.
func Default() *Static {
	c, err := New([]domain.Product{
		{
			ID: "tshirt1", Name: "SUTD Classic Tee", Type: "T-Shirt",
			Price:  decimal.RequireFromString("25.00"),
			Colors: []string{"Black", "White", "Grey"},
			Sizes:  []string{"S", "M", "L", "XL"},
			Image:  "/assets/shirt1.jpeg",
		},
		{
			ID: "socks1", Name: "SUTD Ankle Socks", Type: "Socks",
			Price:  decimal.RequireFromString("12.00"),
			Colors: []string{"White", "Black"},
			Sizes:  []string{"One Size"},
			Image:  "https://placehold.co/400x400/333333/FFFFFF?text=SUTD+Socks",
		},
		{
			ID: "jacket1", Name: "SUTD Windbreaker", Type: "Jacket",
			Price:  decimal.RequireFromString("65.00"),
			Colors: []string{"Black", "Blue"},
			Sizes:  []string{"S", "M", "L", "XL"},
			Image:  "https://placehold.co/400x400/333333/FFFFFF?text=SUTD+Jacket",
		},
		{
			ID: "jacket2", Name: "SUTD Bomber Jacket", Type: "Jacket",
			Price:  decimal.RequireFromString("80.00"),
			Colors: []string{"Olive Green"},
			Sizes:  []string{"M", "L"},
			Stock:  stock(0),
			Image:  "https://placehold.co/400x400/CCCCCC/FFFFFF?text=Out+of+Stock",
		},
	})
	if err != nil {
		panic(err)
	}
	return c
}
