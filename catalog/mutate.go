package catalog

import (
	"time"

	"github.com/lumenpath/breakthrough/parameter"
)

// Mutate deterministically expands a template into a playable instance.
//
// All derived values are linear interpolations between the template's declared
// bounds using successive draws from one seeded mulberry32 stream. The draw
// order is a compatibility contract — duration, particle count, speed, scale,
// palette seed, audio intensity, audio offset, extra visuals, then one hue
// draw per palette color. Reordering the draws silently changes every
// instance ever derived, so it must never change.
func Mutate(v BaseVariant, seed uint32) MutatedVariant {
	s := newStream(seed)

	durationMS := s.lerp(v.Bounds.Duration)
	particles := s.lerp(v.Bounds.Particles)
	speed := s.lerp(v.Bounds.Speed)
	scale := s.lerp(v.Bounds.Scale)

	knobs := MutationKnobs{
		SpeedMultiplier: speed,
		ScaleMultiplier: scale,
	}
	knobs.PaletteSeed = s.intn(parameter.PaletteSeedSpace)
	knobs.AudioIntensity = s.lerp(Range{Min: parameter.AudioIntensityMin, Max: parameter.AudioIntensityMax})
	knobs.AudioOffset = s.lerp(Range{Min: 0, Max: parameter.AudioOffsetMaxSeconds})
	knobs.ExtraVisuals = s.intn(parameter.ExtraVisualsMax + 1)

	base := paletteFor(v.ColorMood)
	colors := make([]string, len(base))
	for i, hex := range base {
		deg := s.lerp(Range{Min: -parameter.HueJitterDegrees, Max: parameter.HueJitterDegrees})
		colors[i] = rotateHue(hex, deg)
	}

	return MutatedVariant{
		BaseVariant:        v,
		Mutation:           knobs,
		Seed:               seed,
		FinalDuration:      time.Duration(durationMS) * time.Millisecond,
		FinalParticleCount: int(particles),
		FinalColors:        colors,
	}
}
