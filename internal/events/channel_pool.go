package events

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// ErrPoolExhausted is returned when every channel is checked out.
var ErrPoolExhausted = errors.New("no channels available in pool")

// Channel is the part of *amqp.Channel the publisher uses.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
	Close() error
}

var _ Channel = (*amqp.Channel)(nil)

// ChannelPool keeps a fixed set of AMQP channels on one connection, each with
// the receipts queue declared.
type ChannelPool struct {
	conn     io.Closer
	open     func() (Channel, error)
	channels chan Channel
	mu       sync.Mutex
	closed   bool
	logger   *zap.Logger
}

func NewChannelPool(url, queueName string, size int, logger *zap.Logger) (*ChannelPool, error) {
	if size <= 0 {
		return nil, fmt.Errorf("channel pool size must be positive, got %d", size)
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}
	open := func() (Channel, error) {
		ch, err := conn.Channel()
		if err != nil {
			return nil, err
		}
		// durable, not auto-deleted, not exclusive
		if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
			ch.Close()
			return nil, fmt.Errorf("declare queue: %w", err)
		}
		return ch, nil
	}

	pool, err := newChannelPool(conn, open, size, logger)
	if err != nil {
		return nil, err
	}
	pool.logger.Info("rabbitmq channel pool ready", zap.Int("size", size), zap.String("queue", queueName))
	return pool, nil
}

// newChannelPool fills a pool of size channels from open. conn, if set, is
// closed with the pool.
func newChannelPool(conn io.Closer, open func() (Channel, error), size int, logger *zap.Logger) (*ChannelPool, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	pool := &ChannelPool{
		conn:     conn,
		open:     open,
		channels: make(chan Channel, size),
		logger:   logger,
	}
	for i := 0; i < size; i++ {
		ch, err := open()
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("create channel %d: %w", i, err)
		}
		pool.channels <- ch
	}
	return pool, nil
}

// Get takes a channel from the pool, replacing it if the broker closed it.
func (p *ChannelPool) Get() (Channel, error) {
	select {
	case ch, ok := <-p.channels:
		if !ok {
			return nil, ErrPoolExhausted
		}
		if ch.IsClosed() {
			return p.open()
		}
		return ch, nil
	default:
		return nil, ErrPoolExhausted
	}
}

// Put returns ch to the pool, closing it when the pool is full or shut down.
func (p *ChannelPool) Put(ch Channel) {
	if ch == nil || ch.IsClosed() {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		ch.Close()
		return
	}
	select {
	case p.channels <- ch:
	default:
		ch.Close()
	}
}

func (p *ChannelPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true

	close(p.channels)
	for ch := range p.channels {
		ch.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	p.logger.Info("rabbitmq channel pool closed")
}
