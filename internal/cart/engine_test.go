package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merchstore/internal/catalog"
	"merchstore/internal/domain"
)

func setup(t *testing.T) (*Engine, *Session) {
	t.Helper()
	return NewEngine(catalog.Default(), nil), NewSession("s1")
}

func TestAddItem_MergesSameKey(t *testing.T) {
	e, s := setup(t)

	total := int64(0)
	for _, q := range []int64{2, 5, 10, 1} {
		res, err := e.AddItem(s, "tshirt1", "Black", "M", q)
		require.NoError(t, err)
		total += q
		assert.Equal(t, q, res.Added)
		assert.Equal(t, total, res.Item.Quantity)
	}

	require.Equal(t, 1, s.Cart.Len())
	item, ok := s.Cart.Get(domain.LineKey{ProductID: "tshirt1", Color: "Black", Size: "M"})
	require.True(t, ok)
	assert.Equal(t, int64(18), item.Quantity, "accumulated quantity is not capped")
}

func TestAddItem_DistinctKeysKeepOrder(t *testing.T) {
	e, s := setup(t)

	_, err := e.AddItem(s, "socks1", "White", "One Size", 1)
	require.NoError(t, err)
	_, err = e.AddItem(s, "tshirt1", "Black", "M", 1)
	require.NoError(t, err)
	_, err = e.AddItem(s, "tshirt1", "Black", "L", 1)
	require.NoError(t, err)
	_, err = e.AddItem(s, "socks1", "White", "One Size", 2)
	require.NoError(t, err)

	items := s.Cart.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "socks1-White-One Size", items[0].Key().String())
	assert.Equal(t, int64(3), items[0].Quantity)
	assert.Equal(t, "tshirt1-Black-M", items[1].Key().String())
	assert.Equal(t, "tshirt1-Black-L", items[2].Key().String())
}

func TestAddItem_SnapshotsPrice(t *testing.T) {
	e, s := setup(t)
	res, err := e.AddItem(s, "jacket1", "Blue", "XL", 1)
	require.NoError(t, err)
	assert.Equal(t, "SUTD Windbreaker", res.Item.Name)
	assert.True(t, res.Item.UnitPrice.Equal(dec("65")))
}

func TestAddItem_Errors(t *testing.T) {
	cases := []struct {
		name                 string
		product, color, size string
		qty                  int64
		want                 error
	}{
		{"unknown product", "hoodie9", "Black", "M", 1, catalog.ErrNotFound},
		{"out of stock", "jacket2", "Olive Green", "M", 1, ErrOutOfStock},
		{"bad size", "tshirt1", "Black", "XXL", 1, ErrInvalidSelection},
		{"bad color", "tshirt1", "Pink", "M", 1, ErrInvalidSelection},
		{"zero qty", "tshirt1", "Black", "M", 0, ErrInvalidQuantity},
		{"negative qty", "tshirt1", "Black", "M", -3, ErrInvalidQuantity},
		{"too many", "tshirt1", "Black", "M", 11, ErrInvalidQuantity},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, s := setup(t)
			_, err := e.AddItem(s, "socks1", "Black", "One Size", 1)
			require.NoError(t, err)
			before := s.Cart.Items()

			_, err = e.AddItem(s, c.product, c.color, c.size, c.qty)
			assert.ErrorIs(t, err, c.want)
			assert.Equal(t, before, s.Cart.Items(), "cart must be unchanged")
		})
	}
}

func TestRemoveItem_Idempotent(t *testing.T) {
	e, s := setup(t)
	_, err := e.AddItem(s, "tshirt1", "Black", "M", 1)
	require.NoError(t, err)
	_, err = e.AddItem(s, "socks1", "White", "One Size", 1)
	require.NoError(t, err)

	key := domain.LineKey{ProductID: "tshirt1", Color: "Black", Size: "M"}
	assert.True(t, e.RemoveItem(s, key))
	once := s.Cart.Items()
	assert.False(t, e.RemoveItem(s, key))
	assert.Equal(t, once, s.Cart.Items())
	require.Len(t, once, 1)
	assert.Equal(t, "socks1", once[0].ProductID)
}

func TestApplyDiscount_LatestWins(t *testing.T) {
	e, s := setup(t)

	require.NoError(t, e.ApplyDiscount(s, "1010123"))
	assert.True(t, s.Discount.Applied)

	require.NoError(t, e.ApplyDiscount(s, "1010456"), "a different valid id keeps the flag")
	assert.True(t, s.Discount.Applied)

	assert.ErrorIs(t, e.ApplyDiscount(s, "1010abc"), ErrInvalidFormat)
	assert.False(t, s.Discount.Applied)
}

func TestCheckoutScenario(t *testing.T) {
	e, s := setup(t)

	_, err := e.AddItem(s, "tshirt1", "Black", "M", 2)
	require.NoError(t, err)
	assert.Equal(t, "50.00", e.Totals(s).Subtotal.StringFixed(2))

	require.NoError(t, e.ApplyDiscount(s, "1010001"))
	totals := e.Totals(s)
	assert.Equal(t, "20.00", totals.Discount.StringFixed(2))
	assert.Equal(t, "30.00", totals.Total.StringFixed(2))

	r := e.Checkout(s)
	assert.Equal(t, "30.00", r.Total.StringFixed(2))
	assert.Equal(t, "s1", r.SessionID)
	assert.True(t, r.DiscountApplied)
	require.Len(t, r.Items, 1)
	assert.Equal(t, int64(2), r.Items[0].Quantity)

	assert.Equal(t, 0, s.Cart.Len())
	assert.False(t, s.Discount.Applied)
}

func TestCheckout_EmptyCart(t *testing.T) {
	e, s := setup(t)
	r := e.Checkout(s)
	assert.Empty(t, r.Items)
	assert.True(t, r.Total.IsZero())
	assert.False(t, r.DiscountApplied)
}

func TestCheckout_ReceiptDetachedFromSession(t *testing.T) {
	e, s := setup(t)
	_, err := e.AddItem(s, "tshirt1", "White", "S", 1)
	require.NoError(t, err)
	r := e.Checkout(s)

	_, err = e.AddItem(s, "tshirt1", "White", "S", 4)
	require.NoError(t, err)
	assert.Equal(t, int64(1), r.Items[0].Quantity)
}

func TestSessionClone(t *testing.T) {
	e, s := setup(t)
	_, err := e.AddItem(s, "tshirt1", "Grey", "L", 1)
	require.NoError(t, err)

	cp := s.Clone()
	_, err = e.AddItem(cp, "tshirt1", "Grey", "L", 1)
	require.NoError(t, err)

	orig, _ := s.Cart.Get(domain.LineKey{ProductID: "tshirt1", Color: "Grey", Size: "L"})
	assert.Equal(t, int64(1), orig.Quantity)
}
