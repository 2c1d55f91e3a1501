package matching

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/reawakn/matchengine/pkg/errors"
)

// Config drives the compatibility scorer.
type Config struct {
	// MatchThreshold is the similarity at or above which a pairing is
	// considered worth scheduling.
	MatchThreshold float64
	// DefaultSessionCount is used when the best teach skill carries no
	// positive teaching-hours estimate.
	DefaultSessionCount int
	// CacheTTL bounds how long a computed pair score stays warm.
	CacheTTL time.Duration
}

// Service quantifies how well one user's desire to learn matches another
// user's ability to teach.
type Service struct {
	cfg    Config
	skills SkillRepository
	cache  ScoreCache
	logger *slog.Logger
}

// NewService constructs the scorer.
func NewService(cfg Config, skills SkillRepository, cache ScoreCache, logger *slog.Logger) *Service {
	return &Service{
		cfg:    cfg,
		skills: skills,
		cache:  cache,
		logger: logger.With("component", "matching.service"),
	}
}

// Compare scores the pair in both directions and classifies match-worthiness.
// When the pair is match-worthy the result also names the best teach skill
// and how many sessions its owner estimated for it.
func (s *Service) Compare(ctx context.Context, userA, userB uuid.UUID) (MatchResult, error) {
	key, canonical := pairKey(userA, userB)
	if s.cache != nil {
		if cached, found, err := s.cache.Get(ctx, key); err == nil && found {
			return orient(cached, canonical), nil
		} else if err != nil {
			s.logger.Warn("score cache read failed", "error", err)
		}
	}

	profileA, err := s.loadProfile(ctx, userA)
	if err != nil {
		return MatchResult{}, err
	}
	profileB, err := s.loadProfile(ctx, userB)
	if err != nil {
		return MatchResult{}, err
	}

	result := s.score(profileA, profileB)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, orient(result, canonical), s.cfg.CacheTTL); err != nil {
			s.logger.Warn("score cache write failed", "error", err)
		}
	}
	return result, nil
}

// Refresh drops any cached score for the pair so the next Compare recomputes.
func (s *Service) Refresh(ctx context.Context, userA, userB uuid.UUID) error {
	if s.cache == nil {
		return nil
	}
	key, _ := pairKey(userA, userB)
	if err := s.cache.Invalidate(ctx, key); err != nil {
		return apperrors.Wrap("storage_error", "failed to invalidate score cache", err)
	}
	return nil
}

func (s *Service) loadProfile(ctx context.Context, userID uuid.UUID) (Profile, error) {
	records, err := s.skills.ListByUser(ctx, userID)
	if err != nil {
		return Profile{}, apperrors.Wrap("storage_error", "failed to load skills", err)
	}
	return BuildProfile(records), nil
}

func (s *Service) score(a, b Profile) MatchResult {
	result := MatchResult{
		LearnScore: MaxSimilarity(a.LearnVectors(), b.TeachVectors()),
		TeachScore: MaxSimilarity(a.TeachVectors(), b.LearnVectors()),
	}
	result.MatchWorthy = result.BestScore() >= s.cfg.MatchThreshold
	if !result.MatchWorthy {
		return result
	}

	// The teach record sits on whichever side scored the stronger direction.
	var teachSkill ProfileSkill
	var ok bool
	if result.LearnScore >= result.TeachScore {
		_, teachSkill, ok = bestPair(a.LearnSkills, b.TeachSkills)
	} else {
		_, teachSkill, ok = bestPair(b.LearnSkills, a.TeachSkills)
	}
	if ok {
		result.Skill = teachSkill.Skill
		result.SessionCount = teachSkill.TeachingHours
	}
	if result.SessionCount <= 0 {
		result.SessionCount = s.cfg.DefaultSessionCount
	}
	return result
}

// pairKey is order independent so A-vs-B and B-vs-A share a cache entry.
// canonical reports whether (a, b) already is the sorted order the cached
// entry is oriented to.
func pairKey(a, b uuid.UUID) (key string, canonical bool) {
	x, y := a.String(), b.String()
	canonical = x <= y
	if !canonical {
		x, y = y, x
	}
	return strings.Join([]string{x, y}, ":"), canonical
}

// orient converts a result between query order and canonical cache order.
// The directional scores transpose when the orders differ; MatchWorthy,
// Skill, and SessionCount are symmetric and pass through.
func orient(r MatchResult, canonical bool) MatchResult {
	if canonical {
		return r
	}
	r.LearnScore, r.TeachScore = r.TeachScore, r.LearnScore
	return r
}
