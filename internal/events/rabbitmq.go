package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"merchstore/internal/domain"
)

const publishTimeout = 5 * time.Second

// ReceiptMessage is the JSON body published for each checkout. Amounts are
// rounded to cents.
type ReceiptMessage struct {
	ReceiptID       string        `json:"receipt_id"`
	SessionID       string        `json:"session_id"`
	Items           []MessageLine `json:"items"`
	Subtotal        string        `json:"subtotal"`
	Discount        string        `json:"discount"`
	Total           string        `json:"total"`
	DiscountApplied bool          `json:"discount_applied"`
	CreatedAt       time.Time     `json:"created_at"`
}

type MessageLine struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	Quantity  int64  `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

func NewReceiptMessage(r domain.Receipt) ReceiptMessage {
	lines := make([]MessageLine, 0, len(r.Items))
	for _, it := range r.Items {
		lines = append(lines, MessageLine{
			ProductID: it.ProductID,
			Name:      it.Name,
			Color:     it.Color,
			Size:      it.Size,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.StringFixed(2),
		})
	}
	return ReceiptMessage{
		ReceiptID:       r.ID,
		SessionID:       r.SessionID,
		Items:           lines,
		Subtotal:        r.Subtotal.StringFixed(2),
		Discount:        r.Discount.StringFixed(2),
		Total:           r.Total.StringFixed(2),
		DiscountApplied: r.DiscountApplied,
		CreatedAt:       r.CreatedAt,
	}
}

// AMQPPublisher publishes receipts to a RabbitMQ queue via the default exchange.
type AMQPPublisher struct {
	pool      *ChannelPool
	queueName string
	logger    *zap.Logger
}

var _ Publisher = (*AMQPPublisher)(nil)

func NewAMQPPublisher(pool *ChannelPool, queueName string, logger *zap.Logger) *AMQPPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AMQPPublisher{pool: pool, queueName: queueName, logger: logger}
}

func (p *AMQPPublisher) PublishReceipt(ctx context.Context, r domain.Receipt) error {
	ch, err := p.pool.Get()
	if err != nil {
		return fmt.Errorf("get channel: %w", err)
	}
	defer p.pool.Put(ch)

	body, err := json.Marshal(NewReceiptMessage(r))
	if err != nil {
		return fmt.Errorf("marshal receipt: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = ch.PublishWithContext(ctx, "", p.queueName, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    r.ID,
		Timestamp:    r.CreatedAt,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish receipt: %w", err)
	}

	p.logger.Info("receipt published", zap.String("receipt_id", r.ID), zap.String("queue", p.queueName))
	return nil
}
