package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"peerskill/api/internal/config"
	"peerskill/api/internal/ids"
	"peerskill/api/internal/meeting"
	"peerskill/api/internal/models"
)

type SessionService struct {
	users    UserDirectory
	sessions SessionLog
	cfg      *config.AppConfig
	log      zerolog.Logger
}

func NewSessionService(users UserDirectory, sessions SessionLog, cfg *config.AppConfig, log zerolog.Logger) *SessionService {
	return &SessionService{
		users:    users,
		sessions: sessions,
		cfg:      cfg,
		log:      log,
	}
}

type ScheduleInput struct {
	CallerEmail    string
	SchedulerEmail string
	PeerEmail      string
	Skill          string
	DateTime       string
}

// Schedule creates a session with a freshly generated meeting link. The
// claimed scheduler must be the authenticated caller. There is no conflict
// detection between overlapping sessions.
func (s *SessionService) Schedule(ctx context.Context, input ScheduleInput) (models.Session, error) {
	if input.SchedulerEmail == "" || input.PeerEmail == "" || input.Skill == "" || input.DateTime == "" {
		return models.Session{}, fmt.Errorf("%w: scheduler, peer, skill and dateTime are required", ErrInvalidInput)
	}

	if !strings.EqualFold(input.SchedulerEmail, input.CallerEmail) {
		return models.Session{}, ErrIdentityMismatch
	}

	if _, err := s.users.FindByEmail(ctx, input.SchedulerEmail); err != nil {
		return models.Session{}, err
	}
	if _, err := s.users.FindByEmail(ctx, input.PeerEmail); err != nil {
		return models.Session{}, err
	}

	link, err := meeting.NewLink(s.cfg.Meeting.LinkBase)
	if err != nil {
		return models.Session{}, err
	}

	session := models.Session{
		ID:             ids.New(),
		SchedulerEmail: input.SchedulerEmail,
		PeerEmail:      input.PeerEmail,
		Skill:          input.Skill,
		DateTime:       input.DateTime,
		Link:           link,
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return models.Session{}, err
	}

	s.log.Info().
		Str("scheduler", session.SchedulerEmail).
		Str("peer", session.PeerEmail).
		Str("skill", session.Skill).
		Msg("session scheduled")
	return session, nil
}
