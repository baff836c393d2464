package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"peerskill/api/internal/models"
)

type NotificationService struct {
	notifications NotificationLog
	log           zerolog.Logger
}

func NewNotificationService(notifications NotificationLog, log zerolog.Logger) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		log:           log,
	}
}

// ListFor returns the inbox for the given email. Notifications carry rating
// history, so only the owner (case-folded) or an admin may read them.
func (s *NotificationService) ListFor(ctx context.Context, caller models.User, email string) ([]models.Notification, error) {
	if caller.Role != models.UserRoleAdmin && !strings.EqualFold(caller.Email, email) {
		return nil, ErrIdentityMismatch
	}
	return s.notifications.ListByEmail(ctx, email)
}

// MarkRead flips the read flag for the given ids. An empty set is a no-op.
func (s *NotificationService) MarkRead(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return s.notifications.MarkRead(ctx, ids)
}
