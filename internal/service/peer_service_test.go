package service

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"peerskill/api/internal/cache"
	"peerskill/api/internal/models"
)

func newPeerService(users *fakeUsers) *PeerService {
	return NewPeerService(users, cache.NewLeaderboardCache(nil), testConfig(), zerolog.Nop())
}

func TestRecommend_SubstringContainment(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{users: []models.User{
		{ID: "a", Email: "a@example.com", Learn: []string{"python"}},
		{ID: "b", Email: "b@example.com", Teach: []string{"Python Basics"}},
		{ID: "c", Email: "c@example.com", Teach: []string{"Woodworking"}},
	}}
	svc := newPeerService(users)

	peers, err := svc.Recommend(context.Background(), "a@example.com")
	if err != nil {
		t.Fatalf("Recommend error: %v", err)
	}
	if len(peers) != 1 || peers[0].Email != "b@example.com" {
		t.Fatalf("expected only b@example.com, got %+v", peers)
	}
}

func TestRecommend_UnknownRequesterIsEmpty(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{users: []models.User{
		{ID: "b", Email: "b@example.com", Teach: []string{"Go"}},
	}}
	svc := newPeerService(users)

	peers, err := svc.Recommend(context.Background(), "ghost@example.com")
	if err != nil {
		t.Fatalf("unknown requester must not error: %v", err)
	}
	if len(peers) != 0 {
		t.Fatalf("unknown requester must yield empty result, got %+v", peers)
	}
}

func TestRecommend_EmptyLearnSetIsEmpty(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{users: []models.User{
		{ID: "a", Email: "a@example.com"},
		{ID: "b", Email: "b@example.com", Teach: []string{"Go"}},
	}}
	svc := newPeerService(users)

	peers, err := svc.Recommend(context.Background(), "a@example.com")
	if err != nil {
		t.Fatalf("Recommend error: %v", err)
	}
	if len(peers) != 0 {
		t.Fatal("empty learn set must not fall back to recommending everyone")
	}
}

func TestRandomPeers_NeverIncludesRequester(t *testing.T) {
	t.Parallel()

	seed := []models.User{{ID: "me", Email: "me@example.com"}}
	for _, e := range []string{"b", "c", "d", "e", "f", "g", "h"} {
		seed = append(seed, models.User{ID: e, Email: e + "@example.com"})
	}
	svc := newPeerService(&fakeUsers{users: seed})

	for i := 0; i < 10; i++ {
		peers, err := svc.RandomPeers(context.Background(), "ME@example.com")
		if err != nil {
			t.Fatalf("RandomPeers error: %v", err)
		}
		if len(peers) != 5 {
			t.Fatalf("expected 5 peers, got %d", len(peers))
		}
		for _, p := range peers {
			if strings.EqualFold(p.Email, "me@example.com") {
				t.Fatal("requester leaked into random peers")
			}
		}
	}
}

func TestSearch_BlankQueryIsEmpty(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{users: []models.User{
		{ID: "b", Email: "b@example.com", Name: "Bea", Branch: "CSE"},
	}}
	svc := newPeerService(users)

	peers, err := svc.Search(context.Background(), "a@example.com", "  ")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(peers) != 0 {
		t.Fatal("blank query must not return all users")
	}
}

func TestLeaderboard_TopFiveByPoints(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{users: []models.User{
		{ID: "a", Email: "a@example.com", SkillPoints: 10},
		{ID: "b", Email: "b@example.com", SkillPoints: 90},
		{ID: "c", Email: "c@example.com", SkillPoints: 50},
		{ID: "d", Email: "d@example.com", SkillPoints: 70},
		{ID: "e", Email: "e@example.com", SkillPoints: 30},
		{ID: "f", Email: "f@example.com", SkillPoints: 20},
	}}
	svc := newPeerService(users)

	top, err := svc.Leaderboard(context.Background())
	if err != nil {
		t.Fatalf("Leaderboard error: %v", err)
	}
	if len(top) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(top))
	}
	for i := 1; i < len(top); i++ {
		if top[i].SkillPoints > top[i-1].SkillPoints {
			t.Fatalf("leaderboard not descending: %+v", top)
		}
	}
	if top[0].Email != "b@example.com" {
		t.Fatalf("expected b@example.com on top, got %s", top[0].Email)
	}
}
