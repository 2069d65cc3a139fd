package ports

import (
	"context"

	"github.com/amaris/catalog-api/internal/core/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) error
	ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]domain.Notification, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, id, userID string) error
	MarkAllRead(ctx context.Context, userID string) error
}

// QuoteNotificationInput identifies a freshly submitted quote to fan out to
// the staff inboxes.
type QuoteNotificationInput struct {
	QuoteID      string
	CustomerName string
}

// NotificationDispatcher enqueues fan-out work for asynchronous delivery.
type NotificationDispatcher interface {
	Enqueue(input QuoteNotificationInput)
}

type NotificationService interface {
	// FanOutQuote inserts one notification per admin/sales user.
	FanOutQuote(ctx context.Context, input QuoteNotificationInput) error
	ListForUser(ctx context.Context, userID string, unreadOnly bool) ([]domain.Notification, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, id, userID string) error
	MarkAllRead(ctx context.Context, userID string) error
}
