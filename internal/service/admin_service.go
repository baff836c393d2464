package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

type AdminService struct {
	users         UserDirectory
	requests      RequestLog
	sessions      SessionLog
	notifications NotificationLog
	log           zerolog.Logger
}

func NewAdminService(
	users UserDirectory,
	requests RequestLog,
	sessions SessionLog,
	notifications NotificationLog,
	log zerolog.Logger,
) *AdminService {
	return &AdminService{
		users:         users,
		requests:      requests,
		sessions:      sessions,
		notifications: notifications,
		log:           log,
	}
}

// DeleteUser removes the account and every record referencing its email.
// The store holds no foreign keys between the collections, so the cascade
// is performed here: requests and notifications by the user's email,
// sessions where the user is either party, then the user row itself.
func (s *AdminService) DeleteUser(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	if err := s.requests.DeleteByEmail(ctx, user.Email); err != nil {
		return fmt.Errorf("cascade skill requests: %w", err)
	}
	if err := s.sessions.DeleteByParticipant(ctx, user.Email); err != nil {
		return fmt.Errorf("cascade sessions: %w", err)
	}
	if err := s.notifications.DeleteByEmail(ctx, user.Email); err != nil {
		return fmt.Errorf("cascade notifications: %w", err)
	}
	if err := s.users.DeleteByEmail(ctx, user.Email); err != nil {
		return err
	}

	s.log.Info().Str("email", user.Email).Msg("user deleted with cascade")
	return nil
}

// SetSkillPoints replaces a user's balance with an admin-chosen value.
func (s *AdminService) SetSkillPoints(ctx context.Context, email string, points int) error {
	if points < 0 {
		return fmt.Errorf("%w: points must not be negative", ErrInvalidInput)
	}
	return s.users.SetSkillPoints(ctx, email, points)
}
