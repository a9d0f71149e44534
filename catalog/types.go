package catalog

import (
	"time"
)

// Class categorizes the emotional arc a sequence expresses
type Class string

const (
	ClassReveal      Class = "reveal"
	ClassRelease     Class = "release"
	ClassReframe     Class = "reframe"
	ClassResolve     Class = "resolve"
	ClassCourage     Class = "courage"
	ClassBoundary    Class = "boundary"
	ClassChoice      Class = "choice"
	ClassIntegration Class = "integration"
	ClassClarity     Class = "clarity"
	ClassEmergence   Class = "emergence"
	ClassFlow        Class = "flow"
	ClassSpark       Class = "spark"
)

// Intensity bands a sequence's visual/emotional load
type Intensity string

const (
	IntensityLow     Intensity = "low"
	IntensityMedium  Intensity = "medium"
	IntensityHigh    Intensity = "high"
	IntensityExtreme Intensity = "extreme"
)

// QualityTier is a coarse device-capability bucket
type QualityTier string

const (
	TierLow  QualityTier = "low"
	TierMid  QualityTier = "mid"
	TierHigh QualityTier = "high"
)

// ColorMood selects the base palette family
type ColorMood string

const (
	MoodEmber   ColorMood = "ember"
	MoodOcean   ColorMood = "ocean"
	MoodAurora  ColorMood = "aurora"
	MoodDawn    ColorMood = "dawn"
	MoodVioleta ColorMood = "violet"
	MoodVerdant ColorMood = "verdant"
	MoodMono    ColorMood = "mono"
)

// AudioMood selects the sonic character of a sequence
type AudioMood string

const (
	AudioCalm    AudioMood = "calm"
	AudioUplift  AudioMood = "uplift"
	AudioSurge   AudioMood = "surge"
	AudioShimmer AudioMood = "shimmer"
	AudioPulse   AudioMood = "pulse"
	AudioDrone   AudioMood = "drone"
)

// ParticlePattern names the motion archetype the renderer executes
type ParticlePattern string

const (
	PatternBurst    ParticlePattern = "burst"
	PatternSpiral   ParticlePattern = "spiral"
	PatternCascade  ParticlePattern = "cascade"
	PatternOrbit    ParticlePattern = "orbit"
	PatternWave     ParticlePattern = "wave"
	PatternBloom    ParticlePattern = "bloom"
	PatternDrift    ParticlePattern = "drift"
	PatternShatter  ParticlePattern = "shatter"
	PatternConverge ParticlePattern = "converge"
	PatternRibbon   ParticlePattern = "ribbon"
)

// CameraArchetype names the camera move paired with a sequence
type CameraArchetype string

const (
	CameraPullback CameraArchetype = "pullback"
	CameraOrbit    CameraArchetype = "orbit"
	CameraRise     CameraArchetype = "rise"
	CameraDolly    CameraArchetype = "dolly"
	CameraSweep    CameraArchetype = "sweep"
	CameraStatic   CameraArchetype = "static"
)

// CurveProfile names the easing applied to camera and particle timing
type CurveProfile string

const (
	CurveEase    CurveProfile = "ease"
	CurveEaseIn  CurveProfile = "easeIn"
	CurveEaseOut CurveProfile = "easeOut"
	CurveSpring  CurveProfile = "spring"
	CurveLinear  CurveProfile = "linear"
)

// Range bounds a single mutable parameter
type Range struct {
	Min float64
	Max float64
}

// MutationBounds declares per-template limits for derived playback values
// Duration is in milliseconds; Particles is a count; Speed and Scale are multipliers
type MutationBounds struct {
	Duration  Range
	Particles Range
	Speed     Range
	Scale     Range
}

// BaseVariant is an immutable hand-authored sequence template
// Defined once at build time, never mutated
type BaseVariant struct {
	ID          string
	Name        string
	Description string

	Class     Class
	Intensity Intensity
	ColorMood ColorMood
	AudioMood AudioMood

	Duration      time.Duration
	ParticleCount int

	Pattern ParticlePattern
	Camera  CameraArchetype
	Curve   CurveProfile

	Tags []string

	LowTierSafe bool
	IsFallback  bool

	Bounds MutationBounds
}

// MutationKnobs holds per-instance parameters derived from a template and a seed
type MutationKnobs struct {
	PaletteSeed     int
	AudioIntensity  float64
	AudioOffset     float64
	SpeedMultiplier float64
	ScaleMultiplier float64
	ExtraVisuals    int
}

// MutatedVariant is a playable instance: template plus resolved concrete values
// This is the only type the presentation layer renders
type MutatedVariant struct {
	BaseVariant

	Mutation MutationKnobs
	Seed     uint32

	FinalDuration      time.Duration
	FinalParticleCount int
	FinalColors        []string
}
