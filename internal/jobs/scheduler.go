package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// LeaderboardRefresher is satisfied by service.PeerService.
type LeaderboardRefresher interface {
	RefreshLeaderboard(ctx context.Context) error
}

// Scheduler keeps the cached leaderboard snapshot warm. Everything it does
// is best-effort: a failed refresh only means the next read falls through
// to the database.
type Scheduler struct {
	cron  *cron.Cron
	peers LeaderboardRefresher
	log   zerolog.Logger
}

func NewScheduler(peers LeaderboardRefresher, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:  cron.New(cron.WithSeconds()),
		peers: peers,
		log:   log,
	}
}

func (s *Scheduler) Start() error {
	if s.peers == nil {
		return nil
	}

	if _, err := s.cron.AddFunc("0 */5 * * * *", s.refreshLeaderboard); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop waits for running jobs to drain, bounded by a short timeout.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
	}
}

func (s *Scheduler) refreshLeaderboard() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.peers.RefreshLeaderboard(ctx); err != nil {
		s.log.Warn().Err(err).Msg("leaderboard refresh failed")
	}
}
