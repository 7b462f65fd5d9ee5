package notify

import (
	"context"
	"log"
	"time"

	"gocart/internal/events"
	"gocart/internal/mailer"
	"gocart/internal/model"
	"gocart/internal/worker"
)

// Notifier 將訂單通知（事件 + 信件）丟進 worker pool 非同步送出
// handler 不需等待 NATS 或郵件服務的 I/O
type Notifier struct {
	pool   worker.Pool
	pub    events.Publisher
	mailer mailer.Mailer
}

func New(pool worker.Pool, pub events.Publisher, m mailer.Mailer) *Notifier {
	return &Notifier{pool: pool, pub: pub, mailer: m}
}

// OrderCreated 發布 order.created 事件並寄出確認信
func (n *Notifier) OrderCreated(order model.Order, buyer model.User) {
	evt := events.OrderCreatedEvent{
		OrderID:       order.ID,
		BuyerID:       buyer.ID,
		BuyerEmail:    buyer.Email,
		TransactionID: order.TransactionID,
		Amount:        order.Amount,
		CreatedAt:     order.CreatedAt,
	}
	n.pool.Submit(func() {
		if err := n.pub.Publish(context.Background(), events.OrderCreated, evt); err != nil {
			log.Printf("publish %s failed: %v", events.OrderCreated, err)
		}
		if err := n.mailer.SendOrderConfirmation(buyer.Email, buyer.Name, order.ID, order.Amount); err != nil {
			log.Printf("order confirmation mail failed: %v", err)
		}
	})
}

// OrderStatusChanged 發布 order.status.updated 事件並通知買家
func (n *Notifier) OrderStatusChanged(order model.Order, buyer model.User, status string) {
	evt := events.OrderStatusUpdatedEvent{
		OrderID:    order.ID,
		BuyerID:    buyer.ID,
		BuyerEmail: buyer.Email,
		Status:     status,
		UpdatedAt:  time.Now(),
	}
	n.pool.Submit(func() {
		if err := n.pub.Publish(context.Background(), events.OrderStatusUpdated, evt); err != nil {
			log.Printf("publish %s failed: %v", events.OrderStatusUpdated, err)
		}
		if err := n.mailer.SendOrderStatusUpdate(buyer.Email, buyer.Name, order.ID, status); err != nil {
			log.Printf("order status mail failed: %v", err)
		}
	})
}
