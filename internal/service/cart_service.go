package service

import (
	"context"

	"go.uber.org/zap"

	"merchstore/internal/cart"
	"merchstore/internal/domain"
	"merchstore/internal/events"
	"merchstore/internal/repository"
)

// CartView is a priced snapshot of a session's cart
type CartView struct {
	SessionID       string            `json:"session_id"`
	Items           []domain.LineItem `json:"items"`
	DiscountApplied bool              `json:"discount_applied"`
	domain.Totals
}

// AddItemResult carries the merged line and the quantity just added
type AddItemResult struct {
	Item  domain.LineItem
	Added int64
	Cart  *CartView
}

// CartService runs engine operations against stored sessions and records receipts
type CartService struct {
	engine    *cart.Engine
	sessions  repository.SessionRepository
	receipts  repository.ReceiptRepository
	publisher events.Publisher
	logger    *zap.Logger
}

func NewCartService(engine *cart.Engine, sessions repository.SessionRepository, receipts repository.ReceiptRepository, publisher events.Publisher, logger *zap.Logger) *CartService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartService{engine: engine, sessions: sessions, receipts: receipts, publisher: publisher, logger: logger}
}

func (s *CartService) view(sess *cart.Session) *CartView {
	return &CartView{
		SessionID:       sess.ID,
		Items:           sess.Cart.Items(),
		DiscountApplied: sess.Discount.Applied,
		Totals:          s.engine.Totals(sess),
	}
}

// CreateSession starts an empty cart
func (s *CartService) CreateSession(ctx context.Context) (*CartView, error) {
	sess, err := s.sessions.Create(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("session created", zap.String("session_id", sess.ID))
	return s.view(sess), nil
}

// EndSession drops the session. Receipts from its checkouts are kept.
func (s *CartService) EndSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrInvalidInput
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return err
	}
	s.logger.Info("session ended", zap.String("session_id", sessionID))
	return nil
}

func (s *CartService) GetCart(ctx context.Context, sessionID string) (*CartView, error) {
	if sessionID == "" {
		return nil, ErrInvalidInput
	}
	sess, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

// AddItem adds quantity of a product variant; on error the cart is unchanged
func (s *CartService) AddItem(ctx context.Context, sessionID, productID, color, size string, quantity int64) (*AddItemResult, error) {
	if sessionID == "" {
		return nil, ErrInvalidInput
	}
	var res *AddItemResult
	err := s.sessions.WithSession(ctx, sessionID, func(ctx context.Context, sess *cart.Session) error {
		added, err := s.engine.AddItem(sess, productID, color, size, quantity)
		if err != nil {
			return err
		}
		res = &AddItemResult{Item: added.Item, Added: added.Added, Cart: s.view(sess)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// RemoveItem is a no-op for lines not in the cart
func (s *CartService) RemoveItem(ctx context.Context, sessionID string, key domain.LineKey) (*CartView, error) {
	if sessionID == "" {
		return nil, ErrInvalidInput
	}
	var v *CartView
	err := s.sessions.WithSession(ctx, sessionID, func(ctx context.Context, sess *cart.Session) error {
		s.engine.RemoveItem(sess, key)
		v = s.view(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// ApplyDiscount validates studentID and overwrites the discount flag. On an invalid
// id the returned view shows the cleared flag alongside cart.ErrInvalidFormat.
func (s *CartService) ApplyDiscount(ctx context.Context, sessionID, studentID string) (*CartView, error) {
	if sessionID == "" {
		return nil, ErrInvalidInput
	}
	var v *CartView
	var discountErr error
	err := s.sessions.WithSession(ctx, sessionID, func(ctx context.Context, sess *cart.Session) error {
		discountErr = s.engine.ApplyDiscount(sess, studentID)
		v = s.view(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return v, discountErr
}

// Checkout stores a receipt, clears the session and announces the receipt.
// Publishing failures are logged only; the checkout has already happened.
func (s *CartService) Checkout(ctx context.Context, sessionID string) (*domain.Receipt, error) {
	if sessionID == "" {
		return nil, ErrInvalidInput
	}
	var receipt domain.Receipt
	err := s.sessions.WithSession(ctx, sessionID, func(ctx context.Context, sess *cart.Session) error {
		receipt = s.engine.Checkout(sess)
		return s.receipts.Create(ctx, &receipt)
	})
	if err != nil {
		return nil, err
	}

	if err := s.publisher.PublishReceipt(ctx, receipt); err != nil {
		s.logger.Warn("receipt not published", zap.String("receipt_id", receipt.ID), zap.Error(err))
	}
	return &receipt, nil
}

func (s *CartService) GetReceipt(ctx context.Context, id string) (*domain.Receipt, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return s.receipts.GetByID(ctx, id)
}

// ListReceipts returns the receipts of a live session, oldest first.
func (s *CartService) ListReceipts(ctx context.Context, sessionID string) ([]domain.Receipt, error) {
	if sessionID == "" {
		return nil, ErrInvalidInput
	}
	if _, err := s.sessions.GetByID(ctx, sessionID); err != nil {
		return nil, err
	}
	return s.receipts.ListBySession(ctx, sessionID)
}
