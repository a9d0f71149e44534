package main

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lumenpath/breakthrough/catalog"
	"github.com/lumenpath/breakthrough/director"
)

const (
	frameInterval = 16 * time.Millisecond // ~60 FPS
	aspectRatio   = 2.1                   // terminal cells are taller than wide
)

var particleGlyphs = []rune("•*·+")

// particle is a stateless seed; its position is a pure function of elapsed
// time, so resizes and frame drops never desynchronize the animation
type particle struct {
	angle float64 // radians, launch direction or column position
	speed float64 // 0.5 .. 1.5 individual variation
	phase float64 // 0 .. 1 temporal offset
	color int
	glyph rune
}

type playbackRenderer struct {
	screen  tcell.Screen
	variant *catalog.MutatedVariant

	particles []particle
	colors    []colorful.Color

	width, height int
}

func newPlaybackRenderer(screen tcell.Screen, v *catalog.MutatedVariant) *playbackRenderer {
	r := &playbackRenderer{screen: screen, variant: v}
	r.width, r.height = screen.Size()

	for _, hex := range v.FinalColors {
		c, err := colorful.Hex(hex)
		if err != nil {
			c = colorful.Color{R: 1, G: 1, B: 1}
		}
		r.colors = append(r.colors, c)
	}
	if len(r.colors) == 0 {
		r.colors = []colorful.Color{{R: 1, G: 1, B: 1}}
	}

	r.particles = make([]particle, v.FinalParticleCount)
	for i := range r.particles {
		r.particles[i] = particle{
			angle: rand.Float64() * 2 * math.Pi,
			speed: 0.5 + rand.Float64(),
			phase: rand.Float64(),
			color: i % len(r.colors),
			glyph: particleGlyphs[i%len(particleGlyphs)],
		}
	}
	return r
}

func (r *playbackRenderer) resize() {
	r.width, r.height = r.screen.Size()
}

// envelope shapes global brightness over the timeline: rise, hold, fade
// The template's curve profile skews where the peak sits
func (r *playbackRenderer) envelope(progress float64) float64 {
	p := math.Max(0, math.Min(1, progress))
	switch r.variant.Curve {
	case catalog.CurveEaseIn:
		p = p * p
	case catalog.CurveEaseOut:
		p = 1 - (1-p)*(1-p)
	case catalog.CurveSpring:
		p = math.Min(1, p*(1+0.3*math.Sin(p*math.Pi*3)))
	case catalog.CurveEase:
		p = p * p * (3 - 2*p)
	}
	return math.Sin(p * math.Pi)
}

// position computes a particle's cell coordinates at elapsed seconds
func (r *playbackRenderer) position(p particle, t, progress float64) (float64, float64) {
	v := r.variant
	cx := float64(r.width) / 2
	cy := float64(r.height) / 2
	maxR := math.Min(float64(r.width)/aspectRatio, float64(r.height)) / 2 * v.Mutation.ScaleMultiplier
	ts := t * v.Mutation.SpeedMultiplier * p.speed

	var px, py float64
	switch v.Pattern {
	case catalog.PatternBurst:
		rad := ts * maxR * 0.6
		px, py = math.Cos(p.angle)*rad, math.Sin(p.angle)*rad
	case catalog.PatternShatter:
		rad := ts * maxR * 1.2
		px = math.Cos(p.angle) * rad
		py = math.Sin(p.angle)*rad + ts*ts*2 // gravity pulls fragments down
	case catalog.PatternSpiral:
		rad := math.Mod(ts*0.4+p.phase, 1) * maxR
		a := p.angle + ts*2
		px, py = math.Cos(a)*rad, math.Sin(a)*rad
	case catalog.PatternOrbit:
		rad := (0.3 + 0.7*p.phase) * maxR
		a := p.angle + ts
		px, py = math.Cos(a)*rad, math.Sin(a)*rad
	case catalog.PatternConverge:
		rad := (1 - progress) * maxR
		px, py = math.Cos(p.angle)*rad, math.Sin(p.angle)*rad
	case catalog.PatternBloom:
		eased := 1 - (1-progress)*(1-progress)
		rad := eased * (0.4 + 0.6*p.phase) * maxR
		px, py = math.Cos(p.angle)*rad, math.Sin(p.angle)*rad
	case catalog.PatternCascade:
		col := p.angle / (2 * math.Pi) * float64(r.width)
		row := math.Mod(p.phase*float64(r.height)+ts*float64(r.height)*0.3, float64(r.height))
		return col, row
	case catalog.PatternWave:
		col := math.Mod(p.phase*float64(r.width)+ts*float64(r.width)*0.1, float64(r.width))
		return col, cy + math.Sin(col/float64(r.width)*4*math.Pi+ts)*maxR*0.6
	case catalog.PatternRibbon:
		col := math.Mod(p.phase*float64(r.width)+ts*float64(r.width)*0.15, float64(r.width))
		return col, cy + math.Sin(col/float64(r.width)*2*math.Pi+p.angle)*maxR*0.5
	case catalog.PatternDrift:
		px = math.Cos(p.angle)*p.phase*maxR + math.Sin(ts+p.phase*7)*2
		py = math.Sin(p.angle)*p.phase*maxR + math.Cos(ts*0.7+p.phase*5)*1.5
	default:
		rad := ts * maxR * 0.5
		px, py = math.Cos(p.angle)*rad, math.Sin(p.angle)*rad
	}
	return cx + px*aspectRatio, cy + py
}

// frame draws one animation frame
func (r *playbackRenderer) frame(elapsed time.Duration, state director.State) {
	v := r.variant
	t := elapsed.Seconds()
	progress := float64(elapsed) / float64(v.FinalDuration)
	brightness := r.envelope(progress)

	r.screen.Clear()

	count := len(r.particles)
	if state.IsSafeMode {
		count /= 2
	}
	for _, p := range r.particles[:count] {
		x, y := r.position(p, t, progress)
		ix, iy := int(x), int(y)
		if ix < 0 || ix >= r.width || iy < 1 || iy >= r.height-1 {
			continue
		}
		c := r.colors[p.color]
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(
			int32(c.R*brightness*255),
			int32(c.G*brightness*255),
			int32(c.B*brightness*255)))
		r.screen.SetContent(ix, iy, p.glyph, nil, style)
	}

	if !state.IsSafeMode {
		r.drawRings(t, brightness)
	}
	r.drawHUD(elapsed, state)
	r.screen.Show()
}

// drawRings renders the extra visual layers as expanding outlines
func (r *playbackRenderer) drawRings(t, brightness float64) {
	v := r.variant
	cx := float64(r.width) / 2
	cy := float64(r.height) / 2
	maxR := math.Min(float64(r.width)/aspectRatio, float64(r.height)) / 2

	dim := tcell.StyleDefault.Foreground(tcell.NewRGBColor(
		int32(brightness*90), int32(brightness*90), int32(brightness*110)))

	for ring := 0; ring < v.Mutation.ExtraVisuals; ring++ {
		rad := math.Mod(t*0.25+float64(ring)/float64(v.Mutation.ExtraVisuals+1), 1) * maxR
		steps := int(rad * 12)
		for s := 0; s < steps; s++ {
			a := float64(s) / float64(steps) * 2 * math.Pi
			ix := int(cx + math.Cos(a)*rad*aspectRatio)
			iy := int(cy + math.Sin(a)*rad)
			if ix >= 0 && ix < r.width && iy >= 1 && iy < r.height-1 {
				r.screen.SetContent(ix, iy, '·', nil, dim)
			}
		}
	}
}

func (r *playbackRenderer) drawHUD(elapsed time.Duration, state director.State) {
	v := r.variant

	var fps float64
	if n := len(state.FPSHistory); n > 0 {
		fps = state.FPSHistory[n-1]
	}
	top := fmt.Sprintf(" %s  %s/%s  seed %d  %.1fs / %.1fs  %3.0f fps",
		v.Name, v.Class, v.Intensity, v.Seed,
		elapsed.Seconds(), v.FinalDuration.Seconds(), fps)
	if state.IsSafeMode {
		top += "  [SAFE MODE]"
	}
	r.putText(0, 0, top, tcell.StyleDefault.Foreground(tcell.ColorGray))
	r.putText(0, r.height-1, " esc/q abort   c complete   s safe mode",
		tcell.StyleDefault.Foreground(tcell.ColorGray))
}

func (r *playbackRenderer) putText(x, y int, s string, style tcell.Style) {
	for i, ch := range s {
		if x+i >= r.width {
			break
		}
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// runPlayback drives the frame loop until the director reports a terminal
// state, returning the outcome message
func runPlayback(screen tcell.Screen, d *director.Director, v *catalog.MutatedVariant, done <-chan string) string {
	r := newPlaybackRenderer(screen, v)

	keys := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case keys <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	start := time.Now()
	last := start
	completed := false

	for {
		select {
		case outcome := <-done:
			return outcome

		case ev := <-keys:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC,
					ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
					d.Abort("user_skip")
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'c':
					d.Complete()
				case ev.Key() == tcell.KeyRune && ev.Rune() == 's':
					d.TriggerSafeMode()
				}
			case *tcell.EventResize:
				r.resize()
			}

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if dt > 0 {
				d.ReportFPS(1.0 / dt.Seconds())
			}
			elapsed := now.Sub(start)
			if !completed && elapsed >= v.FinalDuration {
				completed = true
				d.Complete()
			}
			r.frame(elapsed, d.GetState())
		}
	}
}
