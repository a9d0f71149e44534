package selector

import (
	"testing"
	"time"

	"github.com/lumenpath/breakthrough/catalog"
	"github.com/lumenpath/breakthrough/history"
)

func valent(typ string, v float64) Entity {
	return Entity{Type: typ, Valence: v, HasValence: true}
}

// TestBuildContextSentiment verifies mean valence and the no-signal convention
func TestBuildContextSentiment(t *testing.T) {
	ctx := BuildContext([]Entity{
		valent("goal", 0.8),
		valent("person", -0.2),
		{Type: "place"}, // no valence, excluded from the mean
	}, "", catalog.TierMid, false, nil)

	if !ctx.HasSentiment {
		t.Fatal("expected sentiment signal")
	}
	want := (0.8 - 0.2) / 2
	if diff := ctx.Sentiment - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("sentiment = %v, want %v", ctx.Sentiment, want)
	}

	empty := BuildContext(nil, "", catalog.TierMid, false, nil)
	if empty.HasSentiment {
		t.Error("empty snapshot must not report sentiment")
	}
	if empty.Sentiment != 0 {
		t.Errorf("absent sentiment should read zero-valued, got %v", empty.Sentiment)
	}

	// A genuinely neutral snapshot is a signal, distinct from absence
	neutral := BuildContext([]Entity{valent("goal", 0)}, "", catalog.TierMid, false, nil)
	if !neutral.HasSentiment || neutral.Sentiment != 0 {
		t.Error("zero valence must register as a real sentiment of 0")
	}
}

// TestBuildContextFriction verifies friction intensity and dominance
func TestBuildContextFriction(t *testing.T) {
	ctx := BuildContext([]Entity{
		valent(EntityTypeFriction, -0.9),
		valent(EntityTypeFriction, -0.5),
		valent("goal", 0.4),
	}, "", catalog.TierMid, false, nil)

	want := (0.9 + 0.5) / 2
	if diff := ctx.FrictionIntensity - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("friction intensity = %v, want %v", ctx.FrictionIntensity, want)
	}
	if !ctx.frictionDominant {
		t.Error("2 of 3 friction entities should dominate")
	}

	calm := BuildContext([]Entity{valent("goal", 0.4)}, "", catalog.TierMid, false, nil)
	if calm.frictionDominant || calm.FrictionIntensity != 0 {
		t.Error("frictionless snapshot misreported friction")
	}
}

// TestReducedMotionFilter verifies the hard accessibility constraint
func TestReducedMotionFilter(t *testing.T) {
	pool := eligible(Context{QualityTier: catalog.TierHigh, ReducedMotion: true})
	if len(pool) == 0 {
		t.Fatal("reduced-motion pool must not be empty")
	}
	for _, v := range pool {
		if v.Intensity != catalog.IntensityLow || v.Curve != catalog.CurveEase {
			t.Errorf("reduced motion admitted %s (intensity=%s curve=%s)", v.ID, v.Intensity, v.Curve)
		}
	}
}

// TestLowTierFilter verifies low-quality devices only see safe templates
func TestLowTierFilter(t *testing.T) {
	pool := eligible(Context{QualityTier: catalog.TierLow})
	if len(pool) == 0 {
		t.Fatal("low-tier pool must not be empty")
	}
	for _, v := range pool {
		if !v.LowTierSafe {
			t.Errorf("low tier admitted unsafe template %s", v.ID)
		}
	}
}

// TestRecencyAvoidance verifies recently played variants are rarely re-picked
func TestRecencyAvoidance(t *testing.T) {
	log := history.NewLog(history.NewMemoryStore(), nil)
	all := catalog.All()
	recent := make(map[string]bool)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		log.Record(history.Entry{
			VariantID: all[i].ID,
			Intensity: catalog.IntensityLow, // keep fatigue out of this test
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		})
		recent[all[i].ID] = true
	}

	s := New(nil)
	repeats := 0
	trials := 400
	for i := 0; i < trials; i++ {
		ctx := BuildContext(nil, "", catalog.TierHigh, false, log)
		res := s.Select(ctx)
		if recent[res.Variant.ID] {
			repeats++
		}
	}

	// 10 heavily damped candidates vs 26 at base weight: expect well under half
	if repeats*2 >= trials {
		t.Errorf("recent variants won %d/%d selections, want well below 50%%", repeats, trials)
	}
}

// TestFatigueProtection verifies weight shifts after an intense streak
func TestFatigueProtection(t *testing.T) {
	ctx := Context{
		RecentIntensities: []catalog.Intensity{
			catalog.IntensityExtreme, catalog.IntensityHigh, catalog.IntensityHigh,
		},
	}
	if !fatigued(ctx.RecentIntensities) {
		t.Fatal("3 intense plays in window should trigger fatigue")
	}

	low := catalog.BaseVariant{ID: "l", Intensity: catalog.IntensityLow}
	extreme := catalog.BaseVariant{ID: "e", Intensity: catalog.IntensityExtreme}
	if weigh(low, ctx) <= weigh(extreme, ctx) {
		t.Error("fatigue should favor low intensity over extreme")
	}

	if fatigued([]catalog.Intensity{catalog.IntensityHigh, catalog.IntensityLow}) {
		t.Error("a single intense play must not trigger fatigue")
	}
}

// TestContextAffinity verifies hint and friction class boosts
func TestContextAffinity(t *testing.T) {
	hinted := Context{TypeHint: catalog.ClassCourage}
	match := catalog.BaseVariant{ID: "m", Class: catalog.ClassCourage, Intensity: catalog.IntensityMedium}
	other := catalog.BaseVariant{ID: "o", Class: catalog.ClassFlow, Intensity: catalog.IntensityMedium}
	if weigh(match, hinted) <= weigh(other, hinted) {
		t.Error("type hint should boost matching class")
	}

	frictional := Context{frictionDominant: true}
	release := catalog.BaseVariant{ID: "r", Class: catalog.ClassRelease, Intensity: catalog.IntensityMedium}
	if weigh(release, frictional) <= weigh(other, frictional) {
		t.Error("friction dominance should boost release-shaped classes")
	}
}

// TestSelectFallbackNeverFails verifies the fallback path for every tier
func TestSelectFallbackNeverFails(t *testing.T) {
	s := New(nil)
	for _, tier := range []catalog.QualityTier{catalog.TierLow, catalog.TierMid, catalog.TierHigh} {
		v := s.SelectFallback(tier)
		if v.ID == "" {
			t.Fatalf("fallback for tier %s returned empty variant", tier)
		}
		if !v.IsFallback {
			t.Errorf("fallback for tier %s picked non-fallback template %s", tier, v.ID)
		}
		if v.FinalParticleCount <= 0 || v.FinalDuration <= 0 {
			t.Errorf("fallback %s has unusable resolved values", v.ID)
		}
	}
}

// TestSelectReturnsMutatedInstance verifies the selection output is playable
func TestSelectReturnsMutatedInstance(t *testing.T) {
	s := New(nil)
	res := s.Select(BuildContext(nil, "", catalog.TierMid, false, nil))
	if res.PoolSize == 0 {
		t.Error("unconstrained selection should have a full pool")
	}
	v := res.Variant
	if v.ID == "" || v.FinalDuration <= 0 || v.FinalParticleCount <= 0 || len(v.FinalColors) == 0 {
		t.Errorf("selected variant not fully resolved: %+v", v)
	}
	if catalog.Mutate(v.BaseVariant, v.Seed).FinalDuration != v.FinalDuration {
		t.Error("recorded seed does not reproduce the instance")
	}
}
