package catalog

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"time"
)

// stream is a mulberry32 pseudo-random generator
// 32-bit integer state, no external entropy after seeding; the draw sequence
// for a given seed is stable across runs and platforms
type stream struct {
	state uint32
}

func newStream(seed uint32) *stream {
	return &stream{state: seed}
}

// next returns the next float in [0, 1)
func (s *stream) next() float64 {
	s.state += 0x6D2B79F5
	z := s.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)
	return float64(z^(z>>14)) / 4294967296.0
}

// lerp maps the next draw onto [min, max]
func (s *stream) lerp(r Range) float64 {
	return r.Min + s.next()*(r.Max-r.Min)
}

// intn maps the next draw onto [0, n)
func (s *stream) intn(n int) int {
	if n <= 0 {
		return 0
	}
	v := int(s.next() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}

// GenerateSeed produces a fresh, effectively-unique 32-bit seed
// Unlike mutation draws, seeds need no reproducibility, so a high-entropy
// source is preferred; the clock fallback covers entropy exhaustion
func GenerateSeed() uint32 {
	var buf [4]byte
	if _, err := cryptorand.Read(buf[:]); err == nil {
		return binary.LittleEndian.Uint32(buf[:])
	}
	return uint32(time.Now().UnixNano())
}
