package scheduling

import "time"

// PlanConfig holds the spaced-selection tuning knobs. The constants are
// empirically chosen, so they are exposed as configuration.
type PlanConfig struct {
	// IdealSessionGap is the preferred spacing between consecutive sessions.
	IdealSessionGap time.Duration
	// GapTolerance is the window around the target start that still earns a
	// perfect gap-fit score.
	GapTolerance time.Duration
	// GapDecay is how much additional deviation drives the gap-fit to zero.
	GapDecay time.Duration
	// GapWeight and ScoreWeight combine gap fit with the slot's own rank
	// score when choosing the next session.
	GapWeight   float64
	ScoreWeight float64
}

// PlanSessions greedily selects up to n slots that are both high scoring
// and spread apart in time, rather than the top-n by raw score (which
// could cluster every session on one day). Greedy is good enough here:
// the pool is tens to low hundreds of slots and responsiveness matters
// more than exact optimality. The result preserves selection order and
// annotates each slot with its 1-based rank.
func PlanSessions(cfg PlanConfig, ranked []ScoredSlot, n int) RankedPlan {
	if n <= 0 || len(ranked) == 0 {
		return nil
	}

	pool := make([]ScoredSlot, len(ranked))
	copy(pool, ranked)

	// ranked arrives best-first, so the opener is simply the head.
	plan := RankedPlan{{ScoredSlot: pool[0], Rank: 1}}
	pool = pool[1:]

	for len(plan) < n && len(pool) > 0 {
		target := plan[len(plan)-1].EndUTC.Add(cfg.IdealSessionGap)

		bestIdx := 0
		bestCombined := -1.0
		for i, candidate := range pool {
			combined := cfg.GapWeight*gapFit(cfg, candidate.StartUTC, target) + cfg.ScoreWeight*candidate.Score
			if combined > bestCombined {
				bestCombined = combined
				bestIdx = i
			}
		}

		plan = append(plan, PlannedSlot{ScoredSlot: pool[bestIdx], Rank: len(plan) + 1})
		pool = append(pool[:bestIdx], pool[bestIdx+1:]...)
	}
	return plan
}

// gapFit is 1.0 within the tolerance band around the target start and
// decays linearly to zero over the following GapDecay of deviation.
func gapFit(cfg PlanConfig, start, target time.Time) float64 {
	deviation := start.Sub(target)
	if deviation < 0 {
		deviation = -deviation
	}
	if deviation <= cfg.GapTolerance {
		return 1.0
	}
	excess := deviation - cfg.GapTolerance
	if excess >= cfg.GapDecay {
		return 0
	}
	return 1 - float64(excess)/float64(cfg.GapDecay)
}
