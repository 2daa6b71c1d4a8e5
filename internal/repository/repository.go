package repository

import (
	"context"
	"errors"

	"merchstore/internal/cart"
	"merchstore/internal/domain"
)

// ErrNotFound is returned when a session or receipt does not exist
var ErrNotFound = errors.New("not found")

// SessionRepository stores shopper sessions. Sessions live only as long as the process.
type SessionRepository interface {
	Create(ctx context.Context) (*cart.Session, error)
	GetByID(ctx context.Context, id string) (*cart.Session, error)
	Delete(ctx context.Context, id string) error
	// WithSession runs fn with exclusive access to the stored session.
	// Changes made by fn are kept even when fn returns an error.
	WithSession(ctx context.Context, id string, fn func(ctx context.Context, s *cart.Session) error) error
}

// ReceiptRepository stores checkout receipts
type ReceiptRepository interface {
	Create(ctx context.Context, r *domain.Receipt) error
	GetByID(ctx context.Context, id string) (*domain.Receipt, error)
	ListBySession(ctx context.Context, sessionID string) ([]domain.Receipt, error)
}
