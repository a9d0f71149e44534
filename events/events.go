// Package events defines the analytics surface of the breakthrough engine.
//
// Events are best-effort telemetry: sinks are fire-and-forget and a failing
// sink must never affect playback.
package events

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lumenpath/breakthrough/catalog"
)

// Type identifies an analytics event
type Type string

const (
	// TypeStarted fires when playback begins
	TypeStarted Type = "started"

	// TypeCompleted fires on natural or forced completion
	TypeCompleted Type = "completed"

	// TypeAborted fires when a run ends early; Error carries the reason
	TypeAborted Type = "aborted"

	// TypeFallback fires when safe mode engages
	TypeFallback Type = "fallback"

	// TypeFPSDip fires when the sustained-framerate check trips
	TypeFPSDip Type = "fps_dip"
)

// Event is the payload delivered to the analytics sink
type Event struct {
	ID          string
	Type        Type
	VariantID   string
	Seed        uint32
	Intensity   catalog.Intensity
	QualityTier catalog.QualityTier
	Elapsed     time.Duration
	AvgFPS      float64
	MinFPS      float64
	Error       string
	Timestamp   time.Time
}

// New stamps a fresh event of the given type
func New(t Type) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      t,
		Timestamp: time.Now(),
	}
}

// Sink receives analytics events
// Implementations may block or fail; Dispatch isolates callers from both
type Sink interface {
	Report(Event)
}

// Dispatch delivers an event to the sink, swallowing panics
// Transport failure is logged and invisible to the caller
func Dispatch(sink Sink, logger *zap.Logger, e Event) {
	if sink == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil && logger != nil {
			logger.Warn("analytics sink failed",
				zap.String("event", string(e.Type)),
				zap.Any("panic", r))
		}
	}()
	sink.Report(e)
}

// NopSink discards all events
type NopSink struct{}

// Report implements Sink
func (NopSink) Report(Event) {}

// LogSink writes events to a structured logger
type LogSink struct {
	Logger *zap.Logger
}

// Report implements Sink
func (s LogSink) Report(e Event) {
	if s.Logger == nil {
		return
	}
	s.Logger.Info("breakthrough event",
		zap.String("id", e.ID),
		zap.String("type", string(e.Type)),
		zap.String("variant", e.VariantID),
		zap.Uint32("seed", e.Seed),
		zap.String("intensity", string(e.Intensity)),
		zap.String("tier", string(e.QualityTier)),
		zap.Duration("elapsed", e.Elapsed),
		zap.Float64("avgFps", e.AvgFPS),
		zap.Float64("minFps", e.MinFPS),
		zap.String("error", e.Error),
	)
}
