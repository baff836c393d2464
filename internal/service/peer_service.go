package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"peerskill/api/internal/cache"
	"peerskill/api/internal/config"
	"peerskill/api/internal/matching"
	"peerskill/api/internal/models"
	"peerskill/api/internal/repository"
)

type PeerService struct {
	users       UserDirectory
	leaderboard *cache.LeaderboardCache
	cfg         *config.AppConfig
	log         zerolog.Logger
}

func NewPeerService(users UserDirectory, leaderboard *cache.LeaderboardCache, cfg *config.AppConfig, log zerolog.Logger) *PeerService {
	return &PeerService{
		users:       users,
		leaderboard: leaderboard,
		cfg:         cfg,
		log:         log,
	}
}

// Recommend returns peers teaching something the requester wants to learn.
// An unknown requester or an empty learn set yields an empty sequence, not
// an error.
func (s *PeerService) Recommend(ctx context.Context, email string) ([]models.User, error) {
	requester, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if len(requester.Learn) == 0 {
		return nil, nil
	}

	candidates, err := s.users.ListOthers(ctx, requester.Email)
	if err != nil {
		return nil, err
	}

	return matching.Recommend(requester, candidates, matching.ModeSubstring), nil
}

func (s *PeerService) RandomPeers(ctx context.Context, email string) ([]models.User, error) {
	candidates, err := s.users.ListOthers(ctx, email)
	if err != nil {
		return nil, err
	}
	return matching.RandomPeers(candidates, email, s.cfg.Matching.RandomPeerCount), nil
}

func (s *PeerService) Search(ctx context.Context, email, query string) ([]models.User, error) {
	candidates, err := s.users.ListOthers(ctx, email)
	if err != nil {
		return nil, err
	}
	return matching.SearchProfiles(candidates, email, query), nil
}

// Leaderboard reads the cached snapshot when present, otherwise recomputes
// from the store and repopulates the cache.
func (s *PeerService) Leaderboard(ctx context.Context) ([]models.User, error) {
	if users, ok := s.leaderboard.Get(ctx); ok {
		return users, nil
	}

	users, err := s.users.TopBySkillPoints(ctx, s.cfg.Matching.LeaderboardSize)
	if err != nil {
		return nil, err
	}

	if err := s.leaderboard.Set(ctx, users); err != nil {
		s.log.Debug().Err(err).Msg("leaderboard cache set failed")
	}
	return users, nil
}

// RefreshLeaderboard recomputes the snapshot unconditionally. The cron job
// calls this.
func (s *PeerService) RefreshLeaderboard(ctx context.Context) error {
	users, err := s.users.TopBySkillPoints(ctx, s.cfg.Matching.LeaderboardSize)
	if err != nil {
		return err
	}
	return s.leaderboard.Set(ctx, users)
}
