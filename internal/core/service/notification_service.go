package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/amaris/catalog-api/internal/core/domain"
	"github.com/amaris/catalog-api/internal/core/ports"
)

// NotificationService maintains per-user staff inboxes.
type NotificationService struct {
	notifications ports.NotificationRepository
	users         ports.UserRepository
	log           zerolog.Logger
}

func NewNotificationService(notifications ports.NotificationRepository, users ports.UserRepository, log zerolog.Logger) *NotificationService {
	return &NotificationService{notifications: notifications, users: users, log: log}
}

// FanOutQuote inserts one notification per admin/sales user for a newly
// submitted quote. A failed insert for one recipient does not stop the rest;
// the first error is reported after the loop completes.
func (s *NotificationService) FanOutQuote(ctx context.Context, input ports.QuoteNotificationInput) error {
	staff, err := s.users.ListByRoles(ctx, domain.RoleAdmin, domain.RoleSales)
	if err != nil {
		return fmt.Errorf("fan out quote %s: %w", input.QuoteID, err)
	}

	var firstErr error
	delivered := 0
	for _, user := range staff {
		notification := &domain.Notification{
			ID:        uuid.NewString(),
			UserID:    user.ID,
			Title:     "New Quote Request",
			Message:   "A new quote has been submitted by " + input.CustomerName,
			Type:      "info",
			Link:      "/admin/quotes/" + input.QuoteID,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.notifications.Create(ctx, notification); err != nil {
			s.log.Error().Err(err).Str("quote_id", input.QuoteID).Str("user_id", user.ID).Msg("notification insert failed")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		delivered++
	}

	s.log.Info().Str("quote_id", input.QuoteID).Int("recipients", delivered).Msg("quote notifications fanned out")
	return firstErr
}

func (s *NotificationService) ListForUser(ctx context.Context, userID string, unreadOnly bool) ([]domain.Notification, error) {
	return s.notifications.ListByUser(ctx, userID, unreadOnly)
}

func (s *NotificationService) CountUnread(ctx context.Context, userID string) (int64, error) {
	return s.notifications.CountUnread(ctx, userID)
}

// MarkRead marks a single notification as read. The userID scope prevents
// one user from acknowledging another user's notifications.
func (s *NotificationService) MarkRead(ctx context.Context, id, userID string) error {
	return s.notifications.MarkRead(ctx, id, userID)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	return s.notifications.MarkAllRead(ctx, userID)
}
