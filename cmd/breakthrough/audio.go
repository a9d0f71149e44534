package main

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lumenpath/breakthrough/catalog"
)

const audioSampleRate = beep.SampleRate(44100)

// waveType defines oscillator wave shapes
type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveSaw
	waveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     waveType
	rate     beep.SampleRate
}

func newOscillator(freq float64, duration time.Duration, wave waveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case waveSaw:
			val = 2.0 * (o.phase - 0.5)
		case waveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is handled by muting the streamer
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// moodCue plays a short synthesized sting matching a sequence's audio mood
type moodCue struct {
	rate beep.SampleRate
	ok   bool
}

func initAudio() (*moodCue, error) {
	if err := speaker.Init(audioSampleRate, audioSampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &moodCue{rate: audioSampleRate, ok: true}, nil
}

// Play schedules the mood cue, honoring the mutation's intensity and offset
// Safe to call on a nil or failed receiver
func (m *moodCue) Play(v *catalog.MutatedVariant) {
	if m == nil || !m.ok {
		return
	}
	cue := buildMoodCue(v.AudioMood, m.rate)
	if cue == nil {
		return
	}
	cue = newVolume(cue, v.Mutation.AudioIntensity)
	if v.Mutation.AudioOffset > 0 {
		delay := time.Duration(v.Mutation.AudioOffset * float64(time.Second))
		cue = beep.Seq(beep.Silence(m.rate.N(delay)), cue)
	}
	speaker.Play(cue)
}

// Close shuts the speaker down; safe on a nil receiver
func (m *moodCue) Close() {
	if m != nil && m.ok {
		speaker.Close()
	}
}

func buildMoodCue(mood catalog.AudioMood, rate beep.SampleRate) beep.Streamer {
	switch mood {
	case catalog.AudioCalm:
		osc := newOscillator(220.0, 1500*time.Millisecond, waveSine, rate)
		return newEnvelope(osc, 1500*time.Millisecond, 400*time.Millisecond, 800*time.Millisecond, rate)

	case catalog.AudioUplift:
		// Two ascending notes (A4 then E5)
		n1 := newOscillator(440.0, 350*time.Millisecond, waveSine, rate)
		n2 := newOscillator(659.26, 600*time.Millisecond, waveSine, rate)
		return beep.Seq(
			newEnvelope(n1, 350*time.Millisecond, 20*time.Millisecond, 150*time.Millisecond, rate),
			newEnvelope(n2, 600*time.Millisecond, 20*time.Millisecond, 400*time.Millisecond, rate),
		)

	case catalog.AudioSurge:
		osc := newOscillator(160.0, 900*time.Millisecond, waveSaw, rate)
		return newEnvelope(osc, 900*time.Millisecond, 300*time.Millisecond, 200*time.Millisecond, rate)

	case catalog.AudioShimmer:
		// Fundamental with a quiet upper partial
		fund := newOscillator(880.0, 1200*time.Millisecond, waveSine, rate)
		over := newOscillator(1318.51, 1200*time.Millisecond, waveSine, rate)
		return beep.Mix(
			newVolume(newEnvelope(fund, 1200*time.Millisecond, 50*time.Millisecond, 900*time.Millisecond, rate), 0.7),
			newVolume(newEnvelope(over, 1200*time.Millisecond, 50*time.Millisecond, 900*time.Millisecond, rate), 0.3),
		)

	case catalog.AudioPulse:
		n := func() beep.Streamer {
			osc := newOscillator(330.0, 140*time.Millisecond, waveSquare, rate)
			return newEnvelope(osc, 140*time.Millisecond, 5*time.Millisecond, 60*time.Millisecond, rate)
		}
		gap := beep.Silence(rate.N(90 * time.Millisecond))
		return beep.Seq(n(), gap, n(), gap, n())

	case catalog.AudioDrone:
		osc := newOscillator(110.0, 2*time.Second, waveSine, rate)
		return newEnvelope(osc, 2*time.Second, 600*time.Millisecond, time.Second, rate)

	default:
		return nil
	}
}
