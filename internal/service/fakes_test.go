package service

import (
	"context"
	"sort"
	"strings"

	"peerskill/api/internal/models"
	"peerskill/api/internal/repository"
)

// In-memory stand-ins for the pgx repositories. They reproduce the store
// semantics the services rely on: case-folded email matching and the
// compare-and-set rating update.

type fakeUsers struct {
	users      []models.User
	casRejects int
	findCalls  int
}

func (f *fakeUsers) Create(_ context.Context, user models.User) error {
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (models.User, error) {
	f.findCalls++
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return models.User{}, repository.ErrUserNotFound
}

func (f *fakeUsers) List(_ context.Context) ([]models.User, error) {
	return append([]models.User(nil), f.users...), nil
}

func (f *fakeUsers) ListOthers(_ context.Context, email string) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		if !strings.EqualFold(u.Email, email) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUsers) TopBySkillPoints(_ context.Context, limit int) ([]models.User, error) {
	out := append([]models.User(nil), f.users...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SkillPoints > out[j].SkillPoints
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeUsers) UpdateProfile(_ context.Context, email string, update models.ProfileUpdate) error {
	for i, u := range f.users {
		if !strings.EqualFold(u.Email, email) {
			continue
		}
		if update.Name != nil {
			u.Name = *update.Name
		}
		if update.Contact != nil {
			u.Contact = *update.Contact
		}
		if update.Teach != nil {
			u.Teach = *update.Teach
		}
		if update.Learn != nil {
			u.Learn = *update.Learn
		}
		if update.StudyYear != nil {
			u.StudyYear = *update.StudyYear
		}
		if update.Branch != nil {
			u.Branch = *update.Branch
		}
		if update.AvatarURL != nil {
			u.AvatarURL = update.AvatarURL
		}
		f.users[i] = u
		return nil
	}
	return repository.ErrUserNotFound
}

func (f *fakeUsers) SetAvatarURL(_ context.Context, id string, url string) error {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users[i].AvatarURL = &url
			return nil
		}
	}
	return repository.ErrUserNotFound
}

func (f *fakeUsers) SetSkillPoints(_ context.Context, email string, points int) error {
	for i := range f.users {
		if strings.EqualFold(f.users[i].Email, email) {
			f.users[i].SkillPoints = points
			return nil
		}
	}
	return repository.ErrUserNotFound
}

func (f *fakeUsers) CompareAndSetRating(_ context.Context, id string, seenReviews int, rating float64, pointsDelta int) (bool, error) {
	if f.casRejects > 0 {
		f.casRejects--
		return false, nil
	}
	for i := range f.users {
		if f.users[i].ID != id || f.users[i].Reviews != seenReviews {
			continue
		}
		f.users[i].Rating = rating
		f.users[i].Reviews++
		f.users[i].SkillPoints += pointsDelta
		return true, nil
	}
	return false, nil
}

func (f *fakeUsers) DeleteByEmail(_ context.Context, email string) error {
	for i, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return repository.ErrUserNotFound
}

type fakeRequests struct {
	requests []models.SkillRequest
}

func (f *fakeRequests) Create(_ context.Context, request models.SkillRequest) error {
	f.requests = append(f.requests, request)
	return nil
}

func (f *fakeRequests) List(_ context.Context) ([]models.SkillRequest, error) {
	return append([]models.SkillRequest(nil), f.requests...), nil
}

func (f *fakeRequests) DeleteByEmail(_ context.Context, email string) error {
	kept := f.requests[:0]
	for _, r := range f.requests {
		if !strings.EqualFold(r.Email, email) {
			kept = append(kept, r)
		}
	}
	f.requests = kept
	return nil
}

type fakeSessions struct {
	sessions []models.Session
}

func (f *fakeSessions) Create(_ context.Context, session models.Session) error {
	f.sessions = append(f.sessions, session)
	return nil
}

func (f *fakeSessions) ListByParticipant(_ context.Context, email string) ([]models.Session, error) {
	var out []models.Session
	for _, s := range f.sessions {
		if strings.EqualFold(s.SchedulerEmail, email) || strings.EqualFold(s.PeerEmail, email) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSessions) List(_ context.Context) ([]models.Session, error) {
	return append([]models.Session(nil), f.sessions...), nil
}

func (f *fakeSessions) DeleteByParticipant(_ context.Context, email string) error {
	kept := f.sessions[:0]
	for _, s := range f.sessions {
		if !strings.EqualFold(s.SchedulerEmail, email) && !strings.EqualFold(s.PeerEmail, email) {
			kept = append(kept, s)
		}
	}
	f.sessions = kept
	return nil
}

type fakeNotifications struct {
	notifications []models.Notification
}

func (f *fakeNotifications) Create(_ context.Context, notification models.Notification) error {
	f.notifications = append(f.notifications, notification)
	return nil
}

func (f *fakeNotifications) ListByEmail(_ context.Context, email string) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range f.notifications {
		if strings.EqualFold(n.Email, email) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotifications) MarkRead(_ context.Context, ids []string) error {
	idSet := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}
	for i := range f.notifications {
		if _, ok := idSet[f.notifications[i].ID]; ok {
			f.notifications[i].Read = true
		}
	}
	return nil
}

func (f *fakeNotifications) DeleteByEmail(_ context.Context, email string) error {
	kept := f.notifications[:0]
	for _, n := range f.notifications {
		if !strings.EqualFold(n.Email, email) {
			kept = append(kept, n)
		}
	}
	f.notifications = kept
	return nil
}
