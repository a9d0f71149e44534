package catalog

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// moodPalettes maps each color mood to its base four-color palette
// Hex values are the authored anchors; Mutate rotates their hue per instance
var moodPalettes = map[ColorMood][]string{
	MoodEmber:   {"#ff6b35", "#f7931e", "#ffd23f", "#e84545"},
	MoodOcean:   {"#1b6ca8", "#3fbac2", "#7de2d1", "#0a417a"},
	MoodAurora:  {"#00e5a0", "#3ddad7", "#8b5cf6", "#2de1c2"},
	MoodDawn:    {"#ffb6b9", "#fae3d9", "#ffd3b5", "#ff8c94"},
	MoodVioleta: {"#7c3aed", "#a78bfa", "#c4b5fd", "#5b21b6"},
	MoodVerdant: {"#2d6a4f", "#52b788", "#95d5b2", "#1b4332"},
	MoodMono:    {"#e5e7eb", "#9ca3af", "#6b7280", "#f9fafb"},
}

// paletteFor returns the base palette for a mood, or the mono palette when
// the mood is unknown (templates are validated in tests, renderers are not)
func paletteFor(mood ColorMood) []string {
	if p, ok := moodPalettes[mood]; ok {
		return p
	}
	return moodPalettes[MoodMono]
}

// rotateHue shifts a hex color's hue by deg degrees in HSL space
// Invalid hex input is returned unchanged
func rotateHue(hex string, deg float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	h, s, l := c.Hsl()
	h = math.Mod(h+deg+360.0, 360.0)
	return colorful.Hsl(h, s, l).Clamped().Hex()
}
