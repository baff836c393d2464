package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"peerskill/api/internal/ids"
	"peerskill/api/internal/models"
)

// RatingBonusPoints is the flat skill-point reward per rating event,
// independent of the rating value.
const RatingBonusPoints = 10

const ratingRetryAttempts = 3

type RatingService struct {
	users         UserDirectory
	notifications NotificationLog
	log           zerolog.Logger
}

func NewRatingService(users UserDirectory, notifications NotificationLog, log zerolog.Logger) *RatingService {
	return &RatingService{
		users:         users,
		notifications: notifications,
		log:           log,
	}
}

type RatingResult struct {
	NewRating float64
	NewPoints int
}

// NextRating is the weighted running average, rounded to one decimal place.
func NextRating(old float64, reviews int, rating float64) float64 {
	next := (old*float64(reviews) + rating) / float64(reviews+1)
	return math.Round(next*10) / 10
}

// Apply records one rating event against the target. The update is applied
// with an optimistic compare-and-set keyed on the review counter, so two
// concurrent raters never lose an update.
func (s *RatingService) Apply(ctx context.Context, raterEmail, targetEmail string, rating float64) (RatingResult, error) {
	if rating < 1 || rating > 5 {
		return RatingResult{}, ErrInvalidRating
	}
	if strings.EqualFold(raterEmail, targetEmail) {
		return RatingResult{}, ErrSelfRating
	}

	for attempt := 0; attempt < ratingRetryAttempts; attempt++ {
		target, err := s.users.FindByEmail(ctx, targetEmail)
		if err != nil {
			return RatingResult{}, err
		}

		newRating := NextRating(target.Rating, target.Reviews, rating)
		applied, err := s.users.CompareAndSetRating(ctx, target.ID, target.Reviews, newRating, RatingBonusPoints)
		if err != nil {
			return RatingResult{}, err
		}
		if !applied {
			continue
		}

		s.notify(ctx, target.Email, rating)
		return RatingResult{
			NewRating: newRating,
			NewPoints: target.SkillPoints + RatingBonusPoints,
		}, nil
	}

	return RatingResult{}, fmt.Errorf("rating update contended for %s", targetEmail)
}

func (s *RatingService) notify(ctx context.Context, email string, rating float64) {
	message := fmt.Sprintf("You received a %s-star rating. +%d skill points.",
		strconv.FormatFloat(rating, 'f', -1, 64), RatingBonusPoints)

	err := s.notifications.Create(ctx, models.Notification{
		ID:      ids.New(),
		Email:   email,
		Message: message,
	})
	if err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("rating notification failed")
	}
}
