// Package catalog holds the static breakthrough template registry and the
// deterministic mutation that expands a template into a playable instance.
//
// Templates are authored constants. Variety comes from Mutate, which derives
// all concrete playback values from a 32-bit seed; the same seed always
// produces the same instance.
package catalog

// All returns every template, in authored order
func All() []BaseVariant {
	out := make([]BaseVariant, len(variants))
	copy(out, variants)
	return out
}

// ByID returns the template with the given ID
func ByID(id string) (BaseVariant, bool) {
	for _, v := range variants {
		if v.ID == id {
			return v, true
		}
	}
	return BaseVariant{}, false
}

// ByClass returns all templates of one class
func ByClass(c Class) []BaseVariant {
	var out []BaseVariant
	for _, v := range variants {
		if v.Class == c {
			out = append(out, v)
		}
	}
	return out
}

// ByIntensity returns all templates in one intensity band
func ByIntensity(i Intensity) []BaseVariant {
	var out []BaseVariant
	for _, v := range variants {
		if v.Intensity == i {
			out = append(out, v)
		}
	}
	return out
}

// LowTier returns templates safe for low-capability devices
func LowTier() []BaseVariant {
	var out []BaseVariant
	for _, v := range variants {
		if v.LowTierSafe {
			out = append(out, v)
		}
	}
	return out
}

// Fallbacks returns the guaranteed-safe templates used when selection
// is unavailable; the authored set always contains at least one
func Fallbacks() []BaseVariant {
	var out []BaseVariant
	for _, v := range variants {
		if v.IsFallback {
			out = append(out, v)
		}
	}
	return out
}
