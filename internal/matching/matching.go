// Package matching holds the peer-selection policies. Everything here is a
// pure function over loaded user records so the policies stay testable
// without a database.
package matching

import (
	"math/rand"
	"strings"

	"peerskill/api/internal/models"
)

// Mode selects how a learn label is compared against a teach label.
type Mode int

const (
	// ModeSubstring is the default policy: a candidate teaching
	// "Python Basics" matches a learner looking for "python". High recall,
	// low precision ("java" also matches "javascript").
	ModeSubstring Mode = iota
	// ModeExact requires the folded labels to be equal.
	ModeExact
)

// LabelMatches reports whether a single teach label satisfies a single learn
// label under the given mode. Comparison is case-insensitive in both modes.
func LabelMatches(teach, learn string, mode Mode) bool {
	teach = strings.ToLower(strings.TrimSpace(teach))
	learn = strings.ToLower(strings.TrimSpace(learn))
	if teach == "" || learn == "" {
		return false
	}

	if mode == ModeExact {
		return teach == learn
	}
	return strings.Contains(teach, learn)
}

// TeachesAny reports whether any teach label satisfies any learn label.
func TeachesAny(teach []string, learn []string, mode Mode) bool {
	for _, l := range learn {
		for _, t := range teach {
			if LabelMatches(t, l, mode) {
				return true
			}
		}
	}
	return false
}

// Recommend filters candidates down to those teaching something the
// requester wants to learn. The requester is excluded and candidate order is
// preserved. An empty learn set yields an empty result rather than falling
// back to "everyone".
func Recommend(requester models.User, candidates []models.User, mode Mode) []models.User {
	if len(requester.Learn) == 0 {
		return nil
	}

	var matched []models.User
	for _, candidate := range candidates {
		if strings.EqualFold(candidate.Email, requester.Email) {
			continue
		}
		if TeachesAny(candidate.Teach, requester.Learn, mode) {
			matched = append(matched, candidate)
		}
	}
	return matched
}

// RandomPeers returns up to n candidates drawn uniformly (Fisher-Yates),
// never including the requester.
func RandomPeers(candidates []models.User, requesterEmail string, n int) []models.User {
	pool := make([]models.User, 0, len(candidates))
	for _, candidate := range candidates {
		if strings.EqualFold(candidate.Email, requesterEmail) {
			continue
		}
		pool = append(pool, candidate)
	}

	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if len(pool) > n {
		pool = pool[:n]
	}
	return pool
}

// SearchProfiles matches a free-text query against name, teach labels,
// branch and study year, case-insensitively. A blank query yields an empty
// result, not every user.
func SearchProfiles(candidates []models.User, requesterEmail, query string) []models.User {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var matched []models.User
	for _, candidate := range candidates {
		if strings.EqualFold(candidate.Email, requesterEmail) {
			continue
		}
		if profileContains(candidate, query) {
			matched = append(matched, candidate)
		}
	}
	return matched
}

func profileContains(u models.User, query string) bool {
	if strings.Contains(strings.ToLower(u.Name), query) {
		return true
	}
	for _, t := range u.Teach {
		if strings.Contains(strings.ToLower(t), query) {
			return true
		}
	}
	if strings.Contains(strings.ToLower(u.Branch), query) {
		return true
	}
	return strings.Contains(strings.ToLower(u.StudyYear), query)
}
