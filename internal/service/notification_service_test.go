package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"peerskill/api/internal/models"
)

func seededNotifications() *fakeNotifications {
	return &fakeNotifications{notifications: []models.Notification{
		{ID: "n1", Email: "ada@example.com", Message: "You received a 5-star rating. +10 skill points."},
		{ID: "n2", Email: "bea@example.com", Message: "You received a 3-star rating. +10 skill points."},
	}}
}

func TestListFor_OwnInboxOnly(t *testing.T) {
	t.Parallel()

	svc := NewNotificationService(seededNotifications(), zerolog.Nop())
	caller := models.User{Email: "ada@example.com", Role: models.UserRoleUser}

	_, err := svc.ListFor(context.Background(), caller, "bea@example.com")
	if !errors.Is(err, ErrIdentityMismatch) {
		t.Fatalf("reading another user's inbox must fail with ErrIdentityMismatch, got %v", err)
	}
}

func TestListFor_OwnerCaseFolded(t *testing.T) {
	t.Parallel()

	svc := NewNotificationService(seededNotifications(), zerolog.Nop())
	caller := models.User{Email: "Ada@Example.com", Role: models.UserRoleUser}

	got, err := svc.ListFor(context.Background(), caller, "ADA@EXAMPLE.COM")
	if err != nil {
		t.Fatalf("case difference alone must not block the owner: %v", err)
	}
	if len(got) != 1 || got[0].ID != "n1" {
		t.Fatalf("expected ada's single notification, got %+v", got)
	}
}

func TestListFor_AdminReadsAnyInbox(t *testing.T) {
	t.Parallel()

	svc := NewNotificationService(seededNotifications(), zerolog.Nop())
	caller := models.User{Email: "admin@peerskill.app", Role: models.UserRoleAdmin}

	got, err := svc.ListFor(context.Background(), caller, "bea@example.com")
	if err != nil {
		t.Fatalf("admin read error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "n2" {
		t.Fatalf("expected bea's single notification, got %+v", got)
	}
}

func TestMarkRead(t *testing.T) {
	t.Parallel()

	notifications := seededNotifications()
	svc := NewNotificationService(notifications, zerolog.Nop())
	ctx := context.Background()

	if err := svc.MarkRead(ctx, nil); err != nil {
		t.Fatalf("empty id set must be a no-op, got %v", err)
	}

	if err := svc.MarkRead(ctx, []string{"n1"}); err != nil {
		t.Fatalf("MarkRead error: %v", err)
	}
	if !notifications.notifications[0].Read {
		t.Fatal("n1 should be marked read")
	}
	if notifications.notifications[1].Read {
		t.Fatal("n2 must stay unread")
	}
}
