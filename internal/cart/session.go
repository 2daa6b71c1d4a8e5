package cart

import (
	"slices"

	"merchstore/internal/domain"
)

// Cart holds at most one line item per LineKey. Items are listed in the order
// their key was first added.
type Cart struct {
	items map[domain.LineKey]*domain.LineItem
	order []domain.LineKey
}

func NewCart() *Cart {
	return &Cart{items: make(map[domain.LineKey]*domain.LineItem)}
}

func (c *Cart) Len() int { return len(c.order) }

func (c *Cart) Get(key domain.LineKey) (domain.LineItem, bool) {
	it, ok := c.items[key]
	if !ok {
		return domain.LineItem{}, false
	}
	return *it, true
}

// Items returns copies of the line items in display order.
func (c *Cart) Items() []domain.LineItem {
	out := make([]domain.LineItem, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, *c.items[k])
	}
	return out
}

// add merges quantity into an existing line or appends item as a new one.
func (c *Cart) add(item domain.LineItem) domain.LineItem {
	key := item.Key()
	if existing, ok := c.items[key]; ok {
		existing.Quantity += item.Quantity
		return *existing
	}
	cp := item
	c.items[key] = &cp
	c.order = append(c.order, key)
	return cp
}

func (c *Cart) remove(key domain.LineKey) bool {
	if _, ok := c.items[key]; !ok {
		return false
	}
	delete(c.items, key)
	c.order = slices.DeleteFunc(c.order, func(k domain.LineKey) bool { return k == key })
	return true
}

func (c *Cart) clone() *Cart {
	cp := NewCart()
	for _, k := range c.order {
		it := *c.items[k]
		cp.items[k] = &it
		cp.order = append(cp.order, k)
	}
	return cp
}

// DiscountState reflects the latest student id validation attempt.
type DiscountState struct {
	Applied bool
}

// Session is the per-shopper state the engine operates on.
type Session struct {
	ID       string
	Cart     *Cart
	Discount DiscountState
}

func NewSession(id string) *Session {
	return &Session{ID: id, Cart: NewCart()}
}

// Clone returns a deep copy safe to hand out of a repository.
func (s *Session) Clone() *Session {
	return &Session{ID: s.ID, Cart: s.Cart.clone(), Discount: s.Discount}
}

func (s *Session) reset() {
	s.Cart = NewCart()
	s.Discount = DiscountState{}
}
