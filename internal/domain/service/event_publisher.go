package service

import (
	"context"
)

// PurchaseEvent represents a completed purchase published for async consumers
type PurchaseEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	OrderID     string `json:"order_id"`
	UserID      string `json:"user_id"`
	CompanyID   string `json:"company_id,omitempty"`
	TotalAmount string `json:"total_amount"`
	ItemCount   int    `json:"item_count"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPurchaseEvent publishes a completed purchase for async processing
	PublishPurchaseEvent(ctx context.Context, event *PurchaseEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
