package service

import (
	"context"
)

// PromotionEvent represents a sale-book upload to be processed by the promo worker
type PromotionEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	PromotionID string `json:"promotion_id"`
	Title       string `json:"title"`
	PageCount   int    `json:"page_count"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPromotionEvent publishes a promotion event for async processing
	PublishPromotionEvent(ctx context.Context, event *PromotionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
