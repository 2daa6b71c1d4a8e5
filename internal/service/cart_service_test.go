package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"merchstore/internal/cart"
	"merchstore/internal/catalog"
	"merchstore/internal/domain"
	"merchstore/internal/events"
	"merchstore/internal/events/eventsmock"
	"merchstore/internal/repository"
)

func setup(t *testing.T, pub events.Publisher) *CartService {
	t.Helper()
	store := repository.NewMemoryStore()
	receipts := repository.NewMemoryReceipts(store)
	engine := cart.NewEngine(catalog.Default(), nil)
	return NewCartService(engine, store, receipts, pub, nil)
}

func TestCartService_AddRemove(t *testing.T) {
	ctx := context.Background()
	cs := setup(t, nil)

	v, err := cs.CreateSession(ctx)
	require.NoError(t, err)
	assert.Empty(t, v.Items)
	assert.True(t, v.Subtotal.IsZero())

	res, err := cs.AddItem(ctx, v.SessionID, "tshirt1", "Black", "M", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Added)
	assert.Equal(t, "50.00", res.Cart.Subtotal.StringFixed(2))

	res, err = cs.AddItem(ctx, v.SessionID, "tshirt1", "Black", "M", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Item.Quantity)
	assert.Equal(t, int64(1), res.Added)

	key := domain.LineKey{ProductID: "tshirt1", Color: "Black", Size: "M"}
	v, err = cs.RemoveItem(ctx, v.SessionID, key)
	require.NoError(t, err)
	assert.Empty(t, v.Items)

	v, err = cs.RemoveItem(ctx, v.SessionID, key)
	require.NoError(t, err, "removing a missing line is not an error")
	assert.Empty(t, v.Items)
}

func TestCartService_AddItem_ErrorLeavesCart(t *testing.T) {
	ctx := context.Background()
	cs := setup(t, nil)
	v, _ := cs.CreateSession(ctx)

	_, err := cs.AddItem(ctx, v.SessionID, "jacket2", "Olive Green", "M", 1)
	assert.ErrorIs(t, err, cart.ErrOutOfStock)

	_, err = cs.AddItem(ctx, v.SessionID, "tshirt1", "Black", "XXL", 1)
	assert.ErrorIs(t, err, cart.ErrInvalidSelection)

	got, err := cs.GetCart(ctx, v.SessionID)
	require.NoError(t, err)
	assert.Empty(t, got.Items)
}

func TestCartService_UnknownSession(t *testing.T) {
	ctx := context.Background()
	cs := setup(t, nil)

	_, err := cs.GetCart(ctx, "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = cs.AddItem(ctx, "nope", "tshirt1", "Black", "M", 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = cs.Checkout(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCartService_ApplyDiscount(t *testing.T) {
	ctx := context.Background()
	cs := setup(t, nil)
	v, _ := cs.CreateSession(ctx)
	_, err := cs.AddItem(ctx, v.SessionID, "tshirt1", "Black", "M", 2)
	require.NoError(t, err)

	v, err = cs.ApplyDiscount(ctx, v.SessionID, "1010001")
	require.NoError(t, err)
	assert.True(t, v.DiscountApplied)
	assert.Equal(t, "20.00", v.Discount.StringFixed(2))
	assert.Equal(t, "30.00", v.Total.StringFixed(2))

	v, err = cs.ApplyDiscount(ctx, v.SessionID, "101012")
	assert.ErrorIs(t, err, cart.ErrInvalidFormat)
	require.NotNil(t, v)
	assert.False(t, v.DiscountApplied)
	assert.Equal(t, "50.00", v.Total.StringFixed(2))
}

func TestCartService_CheckoutPublishesReceipt(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	pub := eventsmock.NewMockPublisher(ctrl)
	cs := setup(t, pub)

	v, _ := cs.CreateSession(ctx)
	_, err := cs.AddItem(ctx, v.SessionID, "tshirt1", "Black", "M", 2)
	require.NoError(t, err)
	_, err = cs.ApplyDiscount(ctx, v.SessionID, "1010001")
	require.NoError(t, err)

	var published domain.Receipt
	pub.EXPECT().PublishReceipt(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r domain.Receipt) error {
		published = r
		return nil
	})

	r, err := cs.Checkout(ctx, v.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "30.00", r.Total.StringFixed(2))
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, r.ID, published.ID)

	after, err := cs.GetCart(ctx, v.SessionID)
	require.NoError(t, err)
	assert.Empty(t, after.Items)
	assert.False(t, after.DiscountApplied)

	stored, err := cs.GetReceipt(ctx, r.ID)
	require.NoError(t, err)
	assert.True(t, stored.Total.Equal(r.Total))
}

func TestCartService_CheckoutSurvivesPublishFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	pub := eventsmock.NewMockPublisher(ctrl)
	cs := setup(t, pub)

	v, _ := cs.CreateSession(ctx)
	pub.EXPECT().PublishReceipt(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	r, err := cs.Checkout(ctx, v.SessionID)
	require.NoError(t, err)
	assert.True(t, r.Total.IsZero(), "empty cart checks out with a zero receipt")
}

func TestCartService_ReceiptsAndEndSession(t *testing.T) {
	ctx := context.Background()
	cs := setup(t, nil)

	v, err := cs.CreateSession(ctx)
	require.NoError(t, err)
	other, err := cs.CreateSession(ctx)
	require.NoError(t, err)

	_, err = cs.AddItem(ctx, v.SessionID, "socks1", "White", "One Size", 1)
	require.NoError(t, err)
	first, err := cs.Checkout(ctx, v.SessionID)
	require.NoError(t, err)
	second, err := cs.Checkout(ctx, v.SessionID)
	require.NoError(t, err)
	_, err = cs.Checkout(ctx, other.SessionID)
	require.NoError(t, err)

	list, err := cs.ListReceipts(ctx, v.SessionID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
	assert.Equal(t, "12.00", list[0].Total.StringFixed(2))

	require.NoError(t, cs.EndSession(ctx, v.SessionID))
	_, err = cs.GetCart(ctx, v.SessionID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = cs.ListReceipts(ctx, v.SessionID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, cs.EndSession(ctx, v.SessionID), repository.ErrNotFound)

	kept, err := cs.GetReceipt(ctx, first.ID)
	require.NoError(t, err, "receipts outlive their session")
	assert.Equal(t, first.ID, kept.ID)
}
