package events

//go:generate mockgen -destination=eventsmock/publisher.go -package=eventsmock merchstore/internal/events Publisher

import (
	"context"

	"merchstore/internal/domain"
)

// Publisher announces completed checkouts to downstream consumers.
type Publisher interface {
	PublishReceipt(ctx context.Context, r domain.Receipt) error
}

// NopPublisher drops every receipt. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishReceipt(context.Context, domain.Receipt) error { return nil }
