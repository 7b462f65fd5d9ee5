package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// Event subjects
const (
	OrderCreated       = "order.created"
	OrderStatusUpdated = "order.status.updated"
)

// OrderCreatedEvent 是 order.created 事件的負載
type OrderCreatedEvent struct {
	OrderID       int       `json:"order_id"`
	BuyerID       int       `json:"buyer_id"`
	BuyerEmail    string    `json:"buyer_email"`
	TransactionID string    `json:"transaction_id"`
	Amount        float64   `json:"amount"`
	CreatedAt     time.Time `json:"created_at"`
}

// OrderStatusUpdatedEvent 是 order.status.updated 事件的負載
type OrderStatusUpdatedEvent struct {
	OrderID    int       `json:"order_id"`
	BuyerID    int       `json:"buyer_id"`
	BuyerEmail string    `json:"buyer_email"`
	Status     string    `json:"status"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Publisher 定義事件發布介面
type Publisher interface {
	Publish(ctx context.Context, subject string, data any) error
	Close() error
}

// NATSPublisher 透過 NATS 發布事件
type NATSPublisher struct {
	conn *nats.Conn
}

func NewNATSPublisher(url string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &NATSPublisher{conn: conn}, nil
}

func (n *NATSPublisher) Publish(_ context.Context, subject string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}
	return n.conn.Publish(subject, payload)
}

func (n *NATSPublisher) Close() error {
	n.conn.Close()
	return nil
}

// NoopPublisher 在未設定 NATS 時使用，丟棄所有事件
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, any) error { return nil }
func (NoopPublisher) Close() error                               { return nil }

// FakePublisher 供測試記錄發布內容
type FakePublisher struct {
	PublishFn func(ctx context.Context, subject string, data any) error
	CloseFn   func() error
}

func (f *FakePublisher) Publish(ctx context.Context, subject string, data any) error {
	if f.PublishFn != nil {
		return f.PublishFn(ctx, subject, data)
	}
	return nil
}

func (f *FakePublisher) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}
