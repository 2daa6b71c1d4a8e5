package repository

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"merchstore/internal/cart"
	"merchstore/internal/domain"
)

// MemoryStore in-memory storage for sessions and receipts
type MemoryStore struct {
	mu           sync.RWMutex
	sessionsByID map[string]*cart.Session
	receiptsByID map[string]domain.Receipt
	receiptOrder []string
	now          func() time.Time
	newID        func() string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessionsByID: make(map[string]*cart.Session),
		receiptsByID: make(map[string]domain.Receipt),
		now:          func() time.Time { return time.Now().UTC() },
		newID:        func() string { return uuid.NewString() },
	}
}

// transaction-aware locking helpers
type txKey struct{}

func isTx(ctx context.Context) bool {
	v := ctx.Value(txKey{})
	if v == nil {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

func (m *MemoryStore) rlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RLock()
	}
}
func (m *MemoryStore) runlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RUnlock()
	}
}
func (m *MemoryStore) wlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Lock()
	}
}
func (m *MemoryStore) wunlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Unlock()
	}
}

var _ SessionRepository = (*MemoryStore)(nil)

// SessionRepository implementation
func (m *MemoryStore) Create(ctx context.Context) (*cart.Session, error) {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	s := cart.NewSession(m.newID())
	m.sessionsByID[s.ID] = s
	return s.Clone(), nil
}

func (m *MemoryStore) GetByID(ctx context.Context, id string) (*cart.Session, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	s, ok := m.sessionsByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	// return copy
	return s.Clone(), nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	if _, ok := m.sessionsByID[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessionsByID, id)
	return nil
}

// WithSession holds the write lock for the duration of fn; the context passed to fn is
// marked so repository calls inside fn skip their own locking.
func (m *MemoryStore) WithSession(ctx context.Context, id string, fn func(ctx context.Context, s *cart.Session) error) error {
	if isTx(ctx) {
		return m.withSession(ctx, id, fn)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.withSession(context.WithValue(ctx, txKey{}, true), id, fn)
}

func (m *MemoryStore) withSession(ctx context.Context, id string, fn func(ctx context.Context, s *cart.Session) error) error {
	s, ok := m.sessionsByID[id]
	if !ok {
		return ErrNotFound
	}
	return fn(ctx, s)
}

// ReceiptRepository implementation on wrapper type
type MemoryReceipts struct{ store *MemoryStore }

func NewMemoryReceipts(store *MemoryStore) *MemoryReceipts { return &MemoryReceipts{store: store} }

var _ ReceiptRepository = (*MemoryReceipts)(nil)

func (mr *MemoryReceipts) Create(ctx context.Context, r *domain.Receipt) error {
	mr.store.wlock(ctx)
	defer mr.store.wunlock(ctx)
	r.ID = mr.store.newID()
	r.CreatedAt = mr.store.now()
	cp := *r
	cp.Items = slices.Clone(r.Items)
	mr.store.receiptsByID[r.ID] = cp
	mr.store.receiptOrder = append(mr.store.receiptOrder, r.ID)
	return nil
}

func (mr *MemoryReceipts) GetByID(ctx context.Context, id string) (*domain.Receipt, error) {
	mr.store.rlock(ctx)
	defer mr.store.runlock(ctx)
	r, ok := mr.store.receiptsByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := r
	cp.Items = slices.Clone(r.Items)
	return &cp, nil
}

func (mr *MemoryReceipts) ListBySession(ctx context.Context, sessionID string) ([]domain.Receipt, error) {
	mr.store.rlock(ctx)
	defer mr.store.runlock(ctx)
	out := make([]domain.Receipt, 0)
	for _, id := range mr.store.receiptOrder {
		r := mr.store.receiptsByID[id]
		if r.SessionID != sessionID {
			continue
		}
		r.Items = slices.Clone(r.Items)
		out = append(out, r)
	}
	return out, nil
}
