package catalog

import (
	"testing"
)

// TestCatalogIntegrity validates the authored template set
func TestCatalogIntegrity(t *testing.T) {
	all := All()
	if len(all) < 30 {
		t.Fatalf("expected at least 30 templates, got %d", len(all))
	}

	seen := make(map[string]bool)
	for _, v := range all {
		if v.ID == "" || v.Name == "" {
			t.Errorf("template with empty identity: %+v", v)
		}
		if seen[v.ID] {
			t.Errorf("duplicate template ID %s", v.ID)
		}
		seen[v.ID] = true

		for name, r := range map[string]Range{
			"duration":  v.Bounds.Duration,
			"particles": v.Bounds.Particles,
			"speed":     v.Bounds.Speed,
			"scale":     v.Bounds.Scale,
		} {
			if r.Min <= 0 || r.Max < r.Min {
				t.Errorf("%s: invalid %s bounds [%v, %v]", v.ID, name, r.Min, r.Max)
			}
		}
		if _, ok := moodPalettes[v.ColorMood]; !ok {
			t.Errorf("%s: unknown color mood %q", v.ID, v.ColorMood)
		}
	}

	classes := []Class{
		ClassReveal, ClassRelease, ClassReframe, ClassResolve,
		ClassCourage, ClassBoundary, ClassChoice, ClassIntegration,
		ClassClarity, ClassEmergence, ClassFlow, ClassSpark,
	}
	for _, c := range classes {
		if len(ByClass(c)) == 0 {
			t.Errorf("class %s has no templates", c)
		}
	}
}

// TestFallbacksAreSafe verifies fallback templates satisfy every hard constraint
// so SelectFallback can never produce an ineligible instance
func TestFallbacksAreSafe(t *testing.T) {
	fb := Fallbacks()
	if len(fb) == 0 {
		t.Fatal("catalog has no fallback templates")
	}
	for _, v := range fb {
		if !v.LowTierSafe {
			t.Errorf("fallback %s is not low-tier safe", v.ID)
		}
		if v.Intensity != IntensityLow {
			t.Errorf("fallback %s has intensity %s, want low", v.ID, v.Intensity)
		}
		if v.Curve != CurveEase {
			t.Errorf("fallback %s has curve %s, want ease", v.ID, v.Curve)
		}
	}
}

// TestAccessors exercises the read-only lookup paths
func TestAccessors(t *testing.T) {
	if _, ok := ByID("reveal_unveiling"); !ok {
		t.Error("ByID missed a known template")
	}
	if _, ok := ByID("no_such_variant"); ok {
		t.Error("ByID returned a result for an unknown ID")
	}

	for _, v := range LowTier() {
		if !v.LowTierSafe {
			t.Errorf("LowTier returned unsafe template %s", v.ID)
		}
	}
	for _, v := range ByIntensity(IntensityExtreme) {
		if v.Intensity != IntensityExtreme {
			t.Errorf("ByIntensity returned %s with intensity %s", v.ID, v.Intensity)
		}
	}

	// All must return a copy, not the backing array
	a := All()
	a[0].ID = "clobbered"
	if b := All(); b[0].ID == "clobbered" {
		t.Error("All exposes the internal template slice")
	}
}
