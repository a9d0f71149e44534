package events

import (
	"testing"

	"go.uber.org/zap"
)

type captureSink struct {
	got []Event
}

func (s *captureSink) Report(e Event) {
	s.got = append(s.got, e)
}

type panicSink struct{}

func (panicSink) Report(Event) {
	panic("sink exploded")
}

// TestNewStampsIdentity verifies each event gets a unique ID and a timestamp
func TestNewStampsIdentity(t *testing.T) {
	a := New(TypeStarted)
	b := New(TypeStarted)

	if a.ID == "" || b.ID == "" {
		t.Fatal("event ID not set")
	}
	if a.ID == b.ID {
		t.Error("event IDs must be unique")
	}
	if a.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
	if a.Type != TypeStarted {
		t.Errorf("type = %q, want %q", a.Type, TypeStarted)
	}
}

// TestDispatchDelivers verifies normal delivery
func TestDispatchDelivers(t *testing.T) {
	sink := &captureSink{}
	e := New(TypeCompleted)
	e.VariantID = "clarity_still_water"

	Dispatch(sink, zap.NewNop(), e)

	if len(sink.got) != 1 {
		t.Fatalf("delivered %d events, want 1", len(sink.got))
	}
	if sink.got[0].VariantID != "clarity_still_water" {
		t.Errorf("variant = %q", sink.got[0].VariantID)
	}
}

// TestDispatchSwallowsPanic verifies a failing sink never reaches the caller
func TestDispatchSwallowsPanic(t *testing.T) {
	Dispatch(panicSink{}, zap.NewNop(), New(TypeAborted))
	Dispatch(panicSink{}, nil, New(TypeAborted)) // nil logger must also survive
}

// TestDispatchNilSink verifies a nil sink is a no-op
func TestDispatchNilSink(t *testing.T) {
	Dispatch(nil, zap.NewNop(), New(TypeFPSDip))
}

// TestLogSinkNilLogger verifies the logging sink tolerates missing wiring
func TestLogSinkNilLogger(t *testing.T) {
	LogSink{}.Report(New(TypeFallback))
}
