// Package selector picks the breakthrough template best matching the moment,
// balancing novelty against a small pool.
//
// Selection is a live decision and deliberately unseeded; only the mutation
// of the chosen template is reproducible, via the seed recorded with it.
package selector

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/lumenpath/breakthrough/catalog"
	"github.com/lumenpath/breakthrough/parameter"
)

// Result carries the mutated instance plus selection diagnostics
type Result struct {
	Variant  catalog.MutatedVariant
	PoolSize int     // eligible candidates after hard filters
	Weight   float64 // weight the winner held in the draw
}

// Selector weights and draws from the catalog
type Selector struct {
	logger *zap.Logger
}

// New creates a selector; logger may be nil
func New(logger *zap.Logger) *Selector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Selector{logger: logger}
}

// Select picks one template for the given context, mutates it with a fresh
// seed, and returns the playable instance
func (s *Selector) Select(ctx Context) Result {
	pool := eligible(ctx)
	if len(pool) == 0 {
		// Hard filters emptied the pool; fall back rather than fail
		s.logger.Warn("selection pool empty after filters, using fallback",
			zap.String("tier", string(ctx.QualityTier)),
			zap.Bool("reducedMotion", ctx.ReducedMotion))
		return Result{Variant: s.SelectFallback(ctx.QualityTier), PoolSize: 0}
	}

	weights := make([]float64, len(pool))
	var total float64
	for i, v := range pool {
		w := weigh(v, ctx)
		weights[i] = w
		total += w
	}

	idx := draw(weights, total)
	chosen := pool[idx]

	seed := catalog.GenerateSeed()
	mutated := catalog.Mutate(chosen, seed)

	s.logger.Debug("variant selected",
		zap.String("variant", chosen.ID),
		zap.Uint32("seed", seed),
		zap.Int("pool", len(pool)),
		zap.Float64("weight", weights[idx]))

	return Result{Variant: mutated, PoolSize: len(pool), Weight: weights[idx]}
}

// SelectFallback ignores all weighting and returns a guaranteed-safe instance
// It never fails: the catalog's fallback set is validated non-empty
func (s *Selector) SelectFallback(tier catalog.QualityTier) catalog.MutatedVariant {
	pool := catalog.Fallbacks()
	if len(pool) == 0 {
		pool = catalog.LowTier()
	}
	if len(pool) == 0 {
		pool = catalog.All()
	}
	chosen := pool[rand.Intn(len(pool))]
	return catalog.Mutate(chosen, catalog.GenerateSeed())
}

// eligible applies the hard constraints before any weighting
func eligible(ctx Context) []catalog.BaseVariant {
	var pool []catalog.BaseVariant
	for _, v := range catalog.All() {
		if ctx.ReducedMotion && (v.Intensity != catalog.IntensityLow || v.Curve != catalog.CurveEase) {
			continue
		}
		if ctx.QualityTier == catalog.TierLow && !v.LowTierSafe {
			continue
		}
		pool = append(pool, v)
	}
	return pool
}

// weigh computes one candidate's draw weight from the soft factors:
// recency avoidance, fatigue protection, and context affinity
func weigh(v catalog.BaseVariant, ctx Context) float64 {
	w := parameter.WeightBase

	// Recency avoidance: strong down-weight, never exclusion
	for i, id := range ctx.RecentVariantIDs {
		if id != v.ID {
			continue
		}
		if i == 0 {
			w *= parameter.WeightBackToBack
		} else {
			w *= parameter.WeightRecentRepeat
		}
		break
	}

	// Fatigue protection: after a run of intense plays, favor quieter bands
	if fatigued(ctx.RecentIntensities) {
		switch v.Intensity {
		case catalog.IntensityLow:
			w *= parameter.WeightFatigueLow
		case catalog.IntensityMedium:
			w *= parameter.WeightFatigueMedium
		case catalog.IntensityHigh:
			w *= parameter.WeightFatigueHigh
		case catalog.IntensityExtreme:
			w *= parameter.WeightFatigueExtreme
		}
	}

	// Context affinity
	if ctx.frictionDominant {
		switch v.Class {
		case catalog.ClassRelease, catalog.ClassResolve, catalog.ClassCourage:
			w *= parameter.WeightFrictionAffinity
		}
	}
	if ctx.TypeHint != "" && v.Class == ctx.TypeHint {
		w *= parameter.WeightTypeHintMatch
	}

	return w
}

// fatigued reports whether recent plays carry enough high/extreme intensity
// to trigger protection
func fatigued(recent []catalog.Intensity) bool {
	window := recent
	if len(window) > parameter.FatigueWindow {
		window = window[:parameter.FatigueWindow]
	}
	intense := 0
	for _, i := range window {
		if i == catalog.IntensityHigh || i == catalog.IntensityExtreme {
			intense++
		}
	}
	return intense >= parameter.FatigueTriggerCount
}

// draw performs the weighted random pick
func draw(weights []float64, total float64) int {
	if total <= 0 {
		return rand.Intn(len(weights))
	}
	r := rand.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return i
		}
	}
	return len(weights) - 1
}
