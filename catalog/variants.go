package catalog

import (
	"time"
)

// variants is the authored template set
// Three templates per class; bounds keep every derived instance renderable
// on the tier the template targets
var variants = []BaseVariant{
	// --- reveal ---
	{
		ID:            "reveal_unveiling",
		Name:          "The Unveiling",
		Description:   "A slow curtain of light peels back to expose a hidden constellation",
		Class:         ClassReveal,
		Intensity:     IntensityMedium,
		ColorMood:     MoodAurora,
		AudioMood:     AudioShimmer,
		Duration:      6500 * time.Millisecond,
		ParticleCount: 900,
		Pattern:       PatternCascade,
		Camera:        CameraPullback,
		Curve:         CurveEaseOut,
		Tags:          []string{"insight", "discovery", "gentle"},
		LowTierSafe:   true,
		Bounds: MutationBounds{
			Duration:  Range{5500, 8000},
			Particles: Range{600, 1200},
			Speed:     Range{0.8, 1.2},
			Scale:     Range{0.9, 1.3},
		},
	},
	{
		ID:            "reveal_first_light",
		Name:          "First Light",
		Description:   "Dawn breaks across a dark field, particles igniting row by row",
		Class:         ClassReveal,
		Intensity:     IntensityLow,
		ColorMood:     MoodDawn,
		AudioMood:     AudioCalm,
		Duration:      5000 * time.Millisecond,
		ParticleCount: 500,
		Pattern:       PatternWave,
		Camera:        CameraRise,
		Curve:         CurveEase,
		Tags:          []string{"insight", "soft", "morning"},
		LowTierSafe:   true,
		Bounds: MutationBounds{
			Duration:  Range{4200, 6500},
			Particles: Range{350, 700},
			Speed:     Range{0.7, 1.1},
			Scale:     Range{0.8, 1.2},
		},
	},
	{
		ID:            "reveal_depth_charge",
		Name:          "Depth Charge",
		Description:   "A buried truth detonates upward through layered sediment of light",
		Class:         ClassReveal,
		Intensity:     IntensityHigh,
		ColorMood:     MoodOcean,
		AudioMood:     AudioSurge,
		Duration:      7000 * time.Millisecond,
		ParticleCount: 1800,
		Pattern:       PatternBurst,
		Camera:        CameraDolly,
		Curve:         CurveSpring,
		Tags:          []string{"insight", "sudden", "powerful"},
		Bounds: MutationBounds{
			Duration:  Range{6000, 9000},
			Particles: Range{1400, 2400},
			Speed:     Range{1.0, 1.6},
			Scale:     Range{1.0, 1.5},
		},
	},

	// --- release ---
	{
		ID:            "release_exhale",
		Name:          "The Long Exhale",
		Description:   "Held tension dissolves outward as drifting motes on a slow wind",
		Class:         ClassRelease,
		Intensity:     IntensityLow,
		ColorMood:     MoodVerdant,
		AudioMood:     AudioCalm,
		Duration:      6000 * time.Millisecond,
		ParticleCount: 600,
		Pattern:       PatternDrift,
		Camera:        CameraStatic,
		Curve:         CurveEase,
		Tags:          []string{"letting-go", "breath", "gentle"},
		LowTierSafe:   true,
		Bounds: MutationBounds{
			Duration:  Range{5000, 8000},
			Particles: Range{400, 800},
			Speed:     Range{0.6, 1.0},
			Scale:     Range{0.9, 1.2},
		},
	},
	{
		ID:            "release_unburdening",
		Name:          "Unburdening",
		Description:   "A dense core sheds glowing shards that rise and thin into open sky",
		Class:         ClassRelease,
		Intensity:     IntensityMedium,
		ColorMood:     MoodOcean,
		AudioMood:     AudioUplift,
		Duration:      6800 * time.Millisecond,
		ParticleCount: 1100,
		Pattern:       PatternBloom,
		Camera:        CameraRise,
		Curve:         CurveEaseOut,
		Tags:          []string{"letting-go", "weight", "ascent"},
		LowTierSafe:   true,
		Bounds: MutationBounds{
			Duration:  Range{5800, 8200},
			Particles: Range{800, 1500},
			Speed:     Range{0.8, 1.3},
			Scale:     Range{0.9, 1.4},
		},
	},
	{
		ID:            "release_breaking_storm",
		Name:          "Breaking Storm",
		Description:   "A pressure front shatters into rain that washes the frame clean",
		Class:         ClassRelease,
		Intensity:     IntensityExtreme,
		ColorMood:     MoodVioleta,
		AudioMood:     AudioSurge,
		Duration:      8000 * time.Millisecond,
		ParticleCount: 2600,
		Pattern:       PatternShatter,
		Camera:        CameraSweep,
		Curve:         CurveSpring,
		Tags:          []string{"letting-go", "catharsis", "storm"},
		Bounds: MutationBounds{
			Duration:  Range{7000, 10000},
			Particles: Range{2000, 3200},
			Speed:     Range{1.2, 1.8},
			Scale:     Range{1.1, 1.6},
		},
	},

	// --- reframe ---
	{
		ID:            "reframe_parallax",
		Name:          "Parallax Shift",
		Description:   "The same scene re-lit from a new angle, colors trading places",
		Class:         ClassReframe,
		Intensity:     IntensityMedium,
		ColorMood:     MoodAurora,
		AudioMood:     AudioShimmer,
		Duration:      6200 * time.Millisecond,
		ParticleCount: 950,
		Pattern:       PatternOrbit,
		Camera:        CameraOrbit,
		Curve:         CurveEase,
		Tags:          []string{"perspective", "rotation", "shift"},
		LowTierSafe:   true,
		Bounds: MutationBounds{
			Duration:  Range{5400, 7600},
			Particles: Range{700, 1300},
			Speed:     Range{0.8, 1.2},
			Scale:     Range{0.9, 1.3},
		},
	},
	{
		ID:            "reframe_inversion",
		Name:          "Inversion",
		Description:   "Figure and ground swap: the dark mass was the doorway all along",
		Class:         ClassReframe,
		Intensity:     IntensityHigh,
		ColorMood:     MoodMono,
		AudioMood:     AudioPulse,
		Duration:      7200 * time.Millisecond,
		ParticleCount: 1600,
		Pattern:       PatternConverge,
		Camera:        CameraDolly,
		Curve:         CurveEaseIn,
		Tags:          []string{"perspective", "contrast", "dramatic"},
		Bounds: MutationBounds{
			Duration:  Range{6200, 8800},
			Particles: Range{1200, 2100},
			Speed:     Range{1.0, 1.5},
			Scale:     Range{1.0, 1.4},
		},
	},
	{
		ID:            "reframe_soft_turn",
		Name:          "Soft Turn",
		Description:   "A ribbon of light folds back on itself and keeps going, changed",
		Class:         ClassReframe,
		Intensity:     IntensityLow,
		ColorMood:     MoodDawn,
		AudioMood:     AudioCalm,
		Duration:      5200 * time.Millisecond,
		ParticleCount: 450,
		Pattern:       PatternRibbon,
		Camera:        CameraStatic,
		Curve:         CurveEase,
		Tags:          []string{"perspective", "gentle", "fold"},
		LowTierSafe:   true,
		Bounds: MutationBounds{
			Duration:  Range{4400, 6600},
			Particles: Range{300, 650},
			Speed:     Range{0.7, 1.0},
			Scale:     Range{0.8, 1.1},
		},
	},

	// --- resolve ---
	{
		ID:            "resolve_keystone",
		Name:          "Keystone",
		Description:   "Scattered fragments lock into an arch that holds its own weight",
		Class:         ClassResolve,
		Intensity:     IntensityMedium,
		ColorMood:     MoodEmber,
		AudioMood:     AudioUplift,
		Duration:      6600 * time.Millisecond,
		ParticleCount: 1000,
		Pattern:       PatternConverge,
		Camera:        CameraPullback,
		Curve:         CurveEaseOut,
		Tags:          []string{"resolution", "structure", "settling"},
		LowTierSafe:   true,
		Bounds: MutationBounds{
			Duration:  Range{5600, 8000},
			Particles: Range{750, 1350},
			Speed:     Range{0.8, 1.2},
			Scale:     Range{0.9, 1.3},
		},
	},
	{
		ID:            "resolve_quiet_anchor",
		Name:          "Quiet Anchor",
		Description:   "A single point of warm light steadies a slowly circling field",
		Class:         ClassResolve,
		Intensity:     IntensityLow,
		ColorMood:     MoodEmber,
		AudioMood:     AudioDrone,
		Duration:      5600 * time.Millisecond,
		ParticleCount: 550,
		Pattern:       PatternOrbit,
		Camera:        CameraStatic,
		Curve:         CurveEase,
		Tags:          []string{"resolution", "calm", "center"},
		LowTierSafe:   true,
		Bounds: MutationBounds{
			Duration:  Range{4800, 7000},
			Particles: Range{400, 750},
			Speed:     Range{0.6, 0.9},
			Scale:     Range{0.8, 1.1},
		},
	},
	{
		ID:            "resolve_thunderhead",
		Name:          "Thunderhead Settles",
		Description:   "A roiling storm cell collapses into a still, luminous column",
		Class:         ClassResolve,
		Intensity:     IntensityHigh,
		ColorMood:     MoodVioleta,
		AudioMood:     AudioSurge,
		Duration:      7400 * time.Millisecond,
		ParticleCount: 1900,
		Pattern:       PatternConverge,
		Camera:        CameraRise,
		Curve:         CurveSpring,
		Tags:          []string{"resolution", "storm", "power"},
		Bounds: MutationBounds{
			Duration:  Range{6400, 9200},
			Particles: Range{1500, 2500},
			Speed:     Range{1.0, 1.6},
			Scale:     Range{1.0, 1.5},
		},
	},

	// --- courage ---
	{
		ID:            "courage_ignition",
		Name:          "Ignition",
		Description:   "A hesitant spark catches, flares, and strides forward as flame",
		Class:         ClassCourage,
		Intensity:     IntensityHigh,
		ColorMood:     MoodEmber,
		AudioMood:     AudioSurge,
		Duration:      6800 * time.Millisecond,
		ParticleCount: 1700,
		Pattern:       PatternBurst,
		Camera:        CameraDolly,
		Curve:         CurveEaseIn,
		Tags:          []string{"bravery", "fire", "forward"},
		Bounds: MutationBounds{
			Duration:  Range{5800, 8400},
			Particles: Range{1300, 2200},
			Speed:     Range{1.1, 1.6},
			Scale:     Range{1.0, 1.4},
		},
	},
	{
		ID:            "courage_threshold",
		Name:          "The Threshold",
		Description:   "A doorway of light approached one slow step at a time, then crossed",
		Class:         ClassCourage,
		Intensity:     IntensityMedium,
		ColorMood:     MoodAurora,
		AudioMood:     AudioPulse,
		Duration:      6400 * time.Millisecond,
		ParticleCount: 1050,
		Pattern:       PatternCascade,
		Camera:        CameraDolly,
		Curve:         CurveEase,
		Tags:          []string{"bravery", "doorway", "crossing"},
		LowTierSafe:   true,
		Bounds: MutationBounds{
			Duration:  Range{5400, 7800},
			Particles: Range{800, 1400},
			Speed:     Range{0.9, 1.3},
			Scale:     Range{0.9, 1.3},
		},
	},
	{
		ID:            "courage_small_flame",
		Name:          "Small Flame",
		Description:   "One candle refuses the dark, and the dark makes room",
		Class:         ClassCourage,
		Intensity:     IntensityLow,
		ColorMood:     MoodEmber,
		AudioMood:     AudioCalm,
		Duration:      5400 * time.Millisecond,
		ParticleCount: 480,
		Pattern:       PatternDrift,
		Camera:        CameraStatic,
		Curve:         CurveEase,
		Tags:          []string{"bravery", "gentle", "steadfast"},
		LowTierSafe:   true,
		Bounds: MutationBounds{
			Duration:  Range{4600, 6800},
			Particles: Range{320, 640},
			Speed:     Range{0.6, 1.0},
			Scale:     Range{0.8, 1.1},
		},
	},

	// --- boundary ---
	{
		ID:            "boundary_perimeter",
		Name:          "Perimeter of Light",
		Description:   "A clean line draws itself around what matters and holds",
		Class:         ClassBoundary,
		Intensity:     IntensityMedium,
		ColorMood:     MoodOcean,
		AudioMood:     AudioPulse,
		Duration:      6200 * time.Millisecond,
		ParticleCount: 900,
		Pattern:       PatternRibbon,
		Camera:        CameraOrbit,
		Curve:         CurveEaseOut,
		Tags:          []string{"limits", "protection", "line"},
		LowTierSafe:   true,
		Bounds: MutationBounds{
			Duration:  Range{5200, 7600},
			Particles: Range{650, 1200},
			Speed:     Range{0.8, 1.2},
			Scale:     Range{0.9, 1.3},
		},
	},
	{
		ID:            "boundary_gate_closes",
		Name:          "The Gate Closes",
		Description:   "Heavy panels of light swing shut against a battering wind",
		Class:         ClassBoundary,
		Intensity:     IntensityHigh,
		ColorMood:     MoodMono,
		AudioMood:     AudioSurge,
		Duration:      7000 * time.Millisecond,
		ParticleCount: 1500,
		Pattern:       PatternWave,
		Camera:        CameraSweep,
		Curve:         CurveEaseIn,
		Tags:          []string{"limits", "protection", "firm"},
		Bounds: MutationBounds{
			Duration:  Range{6000, 8600},
			Particles: Range{1100, 2000},
			Speed:     Range{1.0, 1.5},
			Scale:     Range{1.0, 1.4},
		},
	},
	{
		ID:            "boundary_tide_line",
		Name:          "Tide Line",
		Description:   "Waves reach, the sand marks how far, and the water honors it",
		Class:         ClassBoundary,
		Intensity:     IntensityLow,
		ColorMood:     MoodOcean,
		AudioMood:     AudioCalm,
		Duration:      5800 * time.Millisecond,
		ParticleCount: 520,
		Pattern:       PatternWave,
		Camera:        CameraStatic,
		Curve:         CurveEase,
		Tags:          []string{"limits", "gentle", "rhythm"},
		LowTierSafe:   true,
		Bounds: MutationBounds{
			Duration:  Range{5000, 7200},
			Particles: Range{360, 700},
			Speed:     Range{0.6, 1.0},
			Scale:     Range{0.8, 1.2},
		},
	},

	// --- choice ---
	{
		ID:            "choice_fork",
		Name:          "The Fork",
		Description:   "Two rivers of light diverge; one brightens as it is chosen",
		Class:         ClassChoice,
		Intensity:     IntensityMedium,
		ColorMood:     MoodAurora,
		AudioMood:     AudioUplift,
		Duration:      6400 * time.Millisecond,
		ParticleCount: 1000,
		Pattern:       PatternCascade,
		Camera:        CameraPullback,
		Curve:         CurveEase,
		Tags:          []string{"decision", "paths", "divergence"},
		LowTierSafe:   true,
		Bounds: MutationBounds{
			Duration:  Range{5400, 7800},
			Particles: Range{750, 1350},
			Speed:     Range{0.8, 1.2},
			Scale:     Range{0.9, 1.3},
		},
	},
	{
		ID:            "choice_cut_rope",
		Name:          "Cut Rope",
		Description:   "A taut line snaps and everything held in tension springs true",
		Class:         ClassChoice,
		Intensity:     IntensityHigh,
		ColorMood:     MoodEmber,
		AudioMood:     AudioPulse,
		Duration:      6600 * time.Millisecond,
		ParticleCount: 1600,
		Pattern:       PatternShatter,
		Camera:        CameraDolly,
		Curve:         CurveSpring,
		Tags:          []string{"decision", "decisive", "snap"},
		Bounds: MutationBounds{
			Duration:  Range{5600, 8200},
			Particles: Range{1200, 2100},
			Speed:     Range{1.1, 1.6},
			Scale:     Range{1.0, 1.4},
		},
	},
	{
		ID:            "choice_compass_still",
		Name:          "Compass Stills",
		Description:   "A spinning needle slows, wavers, and settles on its heading",
		Class:         ClassChoice,
		Intensity:     IntensityLow,
		ColorMood:     MoodMono,
		AudioMood:     AudioDrone,
		Duration:      5600 * time.Millisecond,
		ParticleCount: 460,
		Pattern:       PatternOrbit,
		Camera:        CameraStatic,
		Curve:         CurveEase,
		Tags:          []string{"decision", "calm", "direction"},
		LowTierSafe:   true,
		Bounds: MutationBounds{
			Duration:  Range{4800, 7000},
			Particles: Range{320, 620},
			Speed:     Range{0.6, 0.9},
			Scale:     Range{0.8, 1.1},
		},
	},

	// --- integration ---
	{
		ID:            "integration_weave",
		Name:          "The Weave",
		Description:   "Separate threads cross, catch, and come up as one bright cloth",
		Class:         ClassIntegration,
		Intensity:     IntensityMedium,
		ColorMood:     MoodVerdant,
		AudioMood:     AudioShimmer,
		Duration:      6800 * time.Millisecond,
		ParticleCount: 1100,
		Pattern:       PatternRibbon,
		Camera:        CameraOrbit,
		Curve:         CurveEaseOut,
		Tags:          []string{"wholeness", "threads", "union"},
		LowTierSafe:   true,
		Bounds: MutationBounds{
			Duration:  Range{5800, 8400},
			Particles: Range{850, 1450},
			Speed:     Range{0.8, 1.2},
			Scale:     Range{0.9, 1.3},
		},
	},
	{
		ID:            "integration_confluence",
		Name:          "Confluence",
		Description:   "Two currents meet hard, churn white, and run on deeper together",
		Class:         ClassIntegration,
		Intensity:     IntensityHigh,
		ColorMood:     MoodOcean,
		AudioMood:     AudioSurge,
		Duration:      7200 * time.Millisecond,
		ParticleCount: 1800,
		Pattern:       PatternConverge,
		Camera:        CameraSweep,
		Curve:         CurveEaseIn,
		Tags:          []string{"wholeness", "rivers", "merging"},
		Bounds: MutationBounds{
			Duration:  Range{6200, 8800},
			Particles: Range{1400, 2300},
			Speed:     Range{1.0, 1.5},
			Scale:     Range{1.0, 1.4},
		},
	},
	{
		ID:            "integration_mosaic",
		Name:          "Quiet Mosaic",
		Description:   "Small tiles of color find their places without being forced",
		Class:         ClassIntegration,
		Intensity:     IntensityLow,
		ColorMood:     MoodDawn,
		AudioMood:     AudioCalm,
		Duration:      6000 * time.Millisecond,
		ParticleCount: 560,
		Pattern:       PatternBloom,
		Camera:        CameraStatic,
		Curve:         CurveEase,
		Tags:          []string{"wholeness", "gentle", "assembly"},
		LowTierSafe:   true,
		Bounds: MutationBounds{
			Duration:  Range{5200, 7400},
			Particles: Range{400, 720},
			Speed:     Range{0.6, 1.0},
			Scale:     Range{0.8, 1.2},
		},
	},

	// --- clarity ---
	{
		ID:            "clarity_still_water",
		Name:          "Still Water",
		Description:   "Ripples fade until the surface gives back a clean reflection",
		Class:         ClassClarity,
		Intensity:     IntensityLow,
		ColorMood:     MoodOcean,
		AudioMood:     AudioCalm,
		Duration:      5500 * time.Millisecond,
		ParticleCount: 400,
		Pattern:       PatternWave,
		Camera:        CameraStatic,
		Curve:         CurveEase,
		Tags:          []string{"clear", "calm", "mirror"},
		LowTierSafe:   true,
		IsFallback:    true,
		Bounds: MutationBounds{
			Duration:  Range{4800, 6600},
			Particles: Range{280, 520},
			Speed:     Range{0.6, 0.9},
			Scale:     Range{0.8, 1.1},
		},
	},
	{
		ID:            "clarity_lens",
		Name:          "The Lens",
		Description:   "A blurred field racks into focus, one plane at a time",
		Class:         ClassClarity,
		Intensity:     IntensityMedium,
		ColorMood:     MoodMono,
		AudioMood:     AudioShimmer,
		Duration:      6200 * time.Millisecond,
		ParticleCount: 850,
		Pattern:       PatternConverge,
		Camera:        CameraDolly,
		Curve:         CurveEaseOut,
		Tags:          []string{"clear", "focus", "sharpen"},
		LowTierSafe:   true,
		Bounds: MutationBounds{
			Duration:  Range{5200, 7600},
			Particles: Range{600, 1150},
			Speed:     Range{0.8, 1.2},
			Scale:     Range{0.9, 1.2},
		},
	},
	{
		ID:            "clarity_fog_lifts",
		Name:          "Fog Lifts",
		Description:   "A valley emerges from mist in long, patient strokes of light",
		Class:         ClassClarity,
		Intensity:     IntensityLow,
		ColorMood:     MoodDawn,
		AudioMood:     AudioDrone,
		Duration:      6000 * time.Millisecond,
		ParticleCount: 480,
		Pattern:       PatternDrift,
		Camera:        CameraRise,
		Curve:         CurveEase,
		Tags:          []string{"clear", "gentle", "emergence"},
		LowTierSafe:   true,
		IsFallback:    true,
		Bounds: MutationBounds{
			Duration:  Range{5200, 7200},
			Particles: Range{340, 620},
			Speed:     Range{0.6, 0.9},
			Scale:     Range{0.8, 1.1},
		},
	},

	// --- emergence ---
	{
		ID:            "emergence_chrysalis",
		Name:          "Chrysalis",
		Description:   "A sealed form cracks along bright seams and opens into wings",
		Class:         ClassEmergence,
		Intensity:     IntensityMedium,
		ColorMood:     MoodAurora,
		AudioMood:     AudioUplift,
		Duration:      6800 * time.Millisecond,
		ParticleCount: 1050,
		Pattern:       PatternBloom,
		Camera:        CameraPullback,
		Curve:         CurveSpring,
		Tags:          []string{"becoming", "transformation", "wings"},
		LowTierSafe:   true,
		Bounds: MutationBounds{
			Duration:  Range{5800, 8400},
			Particles: Range{800, 1400},
			Speed:     Range{0.8, 1.3},
			Scale:     Range{0.9, 1.4},
		},
	},
	{
		ID:            "emergence_breach",
		Name:          "The Breach",
		Description:   "Something vast surfaces from deep water in a single arc",
		Class:         ClassEmergence,
		Intensity:     IntensityExtreme,
		ColorMood:     MoodOcean,
		AudioMood:     AudioSurge,
		Duration:      7800 * time.Millisecond,
		ParticleCount: 2400,
		Pattern:       PatternBurst,
		Camera:        CameraSweep,
		Curve:         CurveEaseIn,
		Tags:          []string{"becoming", "vast", "surfacing"},
		Bounds: MutationBounds{
			Duration:  Range{6800, 9800},
			Particles: Range{1900, 3000},
			Speed:     Range{1.2, 1.8},
			Scale:     Range{1.1, 1.6},
		},
	},
	{
		ID:            "emergence_seedling",
		Name:          "Seedling",
		Description:   "A green thread noses through dark soil toward a warm blur of sun",
		Class:         ClassEmergence,
		Intensity:     IntensityLow,
		ColorMood:     MoodVerdant,
		AudioMood:     AudioCalm,
		Duration:      5800 * time.Millisecond,
		ParticleCount: 440,
		Pattern:       PatternRibbon,
		Camera:        CameraRise,
		Curve:         CurveEase,
		Tags:          []string{"becoming", "gentle", "growth"},
		LowTierSafe:   true,
		Bounds: MutationBounds{
			Duration:  Range{5000, 7200},
			Particles: Range{300, 600},
			Speed:     Range{0.6, 1.0},
			Scale:     Range{0.8, 1.2},
		},
	},

	// --- flow ---
	{
		ID:            "flow_slipstream",
		Name:          "Slipstream",
		Description:   "Effort falls away; the field moves as one body downriver",
		Class:         ClassFlow,
		Intensity:     IntensityMedium,
		ColorMood:     MoodOcean,
		AudioMood:     AudioShimmer,
		Duration:      7000 * time.Millisecond,
		ParticleCount: 1200,
		Pattern:       PatternWave,
		Camera:        CameraSweep,
		Curve:         CurveEase,
		Tags:          []string{"ease", "current", "unison"},
		LowTierSafe:   true,
		Bounds: MutationBounds{
			Duration:  Range{6000, 8600},
			Particles: Range{900, 1550},
			Speed:     Range{0.9, 1.3},
			Scale:     Range{0.9, 1.3},
		},
	},
	{
		ID:            "flow_murmuration",
		Name:          "Murmuration",
		Description:   "A thousand points bank and fold like starlings at dusk",
		Class:         ClassFlow,
		Intensity:     IntensityHigh,
		ColorMood:     MoodVioleta,
		AudioMood:     AudioPulse,
		Duration:      7600 * time.Millisecond,
		ParticleCount: 2000,
		Pattern:       PatternSpiral,
		Camera:        CameraOrbit,
		Curve:         CurveEaseOut,
		Tags:          []string{"ease", "flock", "dusk"},
		Bounds: MutationBounds{
			Duration:  Range{6600, 9200},
			Particles: Range{1600, 2600},
			Speed:     Range{1.0, 1.5},
			Scale:     Range{1.0, 1.4},
		},
	},
	{
		ID:            "flow_lazy_river",
		Name:          "Lazy River",
		Description:   "Slow eddies of warm light carry the eye without asking anything",
		Class:         ClassFlow,
		Intensity:     IntensityLow,
		ColorMood:     MoodDawn,
		AudioMood:     AudioCalm,
		Duration:      6200 * time.Millisecond,
		ParticleCount: 500,
		Pattern:       PatternDrift,
		Camera:        CameraStatic,
		Curve:         CurveEase,
		Tags:          []string{"ease", "gentle", "warm"},
		LowTierSafe:   true,
		IsFallback:    true,
		Bounds: MutationBounds{
			Duration:  Range{5400, 7600},
			Particles: Range{360, 660},
			Speed:     Range{0.6, 0.9},
			Scale:     Range{0.8, 1.1},
		},
	},

	// --- spark ---
	{
		ID:            "spark_first_star",
		Name:          "First Star",
		Description:   "One point ignites in an empty sky and the sky is different now",
		Class:         ClassSpark,
		Intensity:     IntensityLow,
		ColorMood:     MoodMono,
		AudioMood:     AudioShimmer,
		Duration:      5200 * time.Millisecond,
		ParticleCount: 380,
		Pattern:       PatternBurst,
		Camera:        CameraStatic,
		Curve:         CurveEase,
		Tags:          []string{"beginning", "single", "night"},
		LowTierSafe:   true,
		Bounds: MutationBounds{
			Duration:  Range{4400, 6400},
			Particles: Range{260, 500},
			Speed:     Range{0.7, 1.0},
			Scale:     Range{0.8, 1.1},
		},
	},
	{
		ID:            "spark_chain_reaction",
		Name:          "Chain Reaction",
		Description:   "A single flash hops point to point until the lattice is alight",
		Class:         ClassSpark,
		Intensity:     IntensityHigh,
		ColorMood:     MoodAurora,
		AudioMood:     AudioPulse,
		Duration:      6600 * time.Millisecond,
		ParticleCount: 1700,
		Pattern:       PatternCascade,
		Camera:        CameraPullback,
		Curve:         CurveEaseIn,
		Tags:          []string{"beginning", "cascade", "electric"},
		Bounds: MutationBounds{
			Duration:  Range{5600, 8200},
			Particles: Range{1300, 2200},
			Speed:     Range{1.1, 1.6},
			Scale:     Range{1.0, 1.4},
		},
	},
	{
		ID:            "spark_ember_bed",
		Name:          "Ember Bed",
		Description:   "Banked coals breathe brighter with each pass of low wind",
		Class:         ClassSpark,
		Intensity:     IntensityMedium,
		ColorMood:     MoodEmber,
		AudioMood:     AudioDrone,
		Duration:      6000 * time.Millisecond,
		ParticleCount: 900,
		Pattern:       PatternDrift,
		Camera:        CameraDolly,
		Curve:         CurveEaseOut,
		Tags:          []string{"beginning", "warmth", "patient"},
		LowTierSafe:   true,
		Bounds: MutationBounds{
			Duration:  Range{5200, 7400},
			Particles: Range{650, 1200},
			Speed:     Range{0.8, 1.2},
			Scale:     Range{0.9, 1.3},
		},
	},
}
