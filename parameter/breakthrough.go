package parameter

import (
	"time"
)

// Playback Lifecycle
const (
	// SettleDuration is the pause between a natural completion and finalization
	SettleDuration = 300 * time.Millisecond

	// MaxPlaybackDuration force-completes any run the presentation layer never ends
	MaxPlaybackDuration = 15 * time.Second

	// PlaySupersedePollInterval paces the wait for a superseded run to finalize
	PlaySupersedePollInterval = 10 * time.Millisecond
)

// Frame-Rate Safety Net
const (
	// FPSCheckInterval is the cadence of the sustained-framerate check
	FPSCheckInterval = 500 * time.Millisecond

	// FPSHistoryCap bounds the sample ring buffer (~1s at 60fps)
	FPSHistoryCap = 60

	// FPSWindowSize is the number of recent samples averaged per check
	FPSWindowSize = 30

	// FPSSafeModeThreshold is the mean framerate below which safe mode triggers
	FPSSafeModeThreshold = 30.0
)

// History
const (
	// HistoryCap bounds the persisted play log; oldest entries evicted first
	HistoryCap = 50

	// RecencyWindow is how many recent plays the selector down-weights
	RecencyWindow = 10

	// FatigueWindow is how many recent plays the fatigue check inspects
	FatigueWindow = 5

	// FatigueTriggerCount is how many high/extreme plays within FatigueWindow
	// flip the selector into fatigue protection
	FatigueTriggerCount = 3
)

// Selection Weights
const (
	// WeightBase is every eligible candidate's starting weight
	WeightBase = 1.0

	// WeightRecentRepeat scales candidates played within RecencyWindow
	WeightRecentRepeat = 0.15

	// WeightBackToBack scales the immediately previous play
	// Near-zero rather than zero: repeats stay possible when the pool is small
	WeightBackToBack = 0.02

	// WeightFatigueLow boosts low-intensity candidates under fatigue
	WeightFatigueLow = 2.0

	// WeightFatigueMedium boosts medium-intensity candidates under fatigue
	WeightFatigueMedium = 1.5

	// WeightFatigueHigh damps high-intensity candidates under fatigue
	WeightFatigueHigh = 0.5

	// WeightFatigueExtreme damps extreme-intensity candidates under fatigue
	WeightFatigueExtreme = 0.25

	// WeightFrictionAffinity boosts release/resolve/courage classes when
	// friction-typed entities dominate the snapshot
	WeightFrictionAffinity = 2.5

	// WeightTypeHintMatch boosts candidates matching an explicit type hint
	WeightTypeHintMatch = 3.0

	// FrictionDominanceRatio is the entity fraction above which friction dominates
	FrictionDominanceRatio = 0.5
)

// Mutation
const (
	// HueJitterDegrees bounds the per-color hue rotation (±)
	HueJitterDegrees = 15.0

	// AudioIntensityMin/Max bound the derived audio intensity knob
	AudioIntensityMin = 0.55
	AudioIntensityMax = 1.0

	// AudioOffsetMaxSeconds bounds the derived audio start offset
	AudioOffsetMaxSeconds = 2.0

	// ExtraVisualsMax caps the derived count of optional flourish layers
	ExtraVisualsMax = 3

	// PaletteSeedSpace is the derived palette seed's value range
	PaletteSeedSpace = 1000
)
