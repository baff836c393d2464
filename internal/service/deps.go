package service

import (
	"context"

	"peerskill/api/internal/models"
)

// The services depend on narrow store interfaces instead of the concrete
// pgx repositories so the domain rules can be exercised against fakes.

type UserDirectory interface {
	Create(ctx context.Context, user models.User) error
	FindByEmail(ctx context.Context, email string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	ListOthers(ctx context.Context, email string) ([]models.User, error)
	TopBySkillPoints(ctx context.Context, limit int) ([]models.User, error)
	UpdateProfile(ctx context.Context, email string, update models.ProfileUpdate) error
	SetAvatarURL(ctx context.Context, id string, url string) error
	SetSkillPoints(ctx context.Context, email string, points int) error
	CompareAndSetRating(ctx context.Context, id string, seenReviews int, rating float64, pointsDelta int) (bool, error)
	DeleteByEmail(ctx context.Context, email string) error
}

type RequestLog interface {
	Create(ctx context.Context, request models.SkillRequest) error
	List(ctx context.Context) ([]models.SkillRequest, error)
	DeleteByEmail(ctx context.Context, email string) error
}

type SessionLog interface {
	Create(ctx context.Context, session models.Session) error
	ListByParticipant(ctx context.Context, email string) ([]models.Session, error)
	List(ctx context.Context) ([]models.Session, error)
	DeleteByParticipant(ctx context.Context, email string) error
}

type NotificationLog interface {
	Create(ctx context.Context, notification models.Notification) error
	ListByEmail(ctx context.Context, email string) ([]models.Notification, error)
	MarkRead(ctx context.Context, ids []string) error
	DeleteByEmail(ctx context.Context, email string) error
}
