package director

import (
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/lumenpath/breakthrough/catalog"
	"github.com/lumenpath/breakthrough/config"
	"github.com/lumenpath/breakthrough/events"
	"github.com/lumenpath/breakthrough/history"
)

// recordingSink captures analytics events for assertions
type recordingSink struct {
	mu     sync.Mutex
	events []events.Event
}

func (s *recordingSink) Report(e events.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

func (s *recordingSink) count(t events.Type) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, e := range s.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// panickingSink simulates a broken analytics transport
type panickingSink struct{}

func (panickingSink) Report(events.Event) { panic("transport down") }

type fixture struct {
	d     *Director
	clock *MockClock
	sink  *recordingSink
	hist  *history.Log
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	clock := NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	sink := &recordingSink{}
	hist := history.NewLog(history.NewMemoryStore(), nil)
	d := New(Options{
		Config:  config.Default(),
		Clock:   clock,
		History: hist,
		Sink:    sink,
	})
	return &fixture{d: d, clock: clock, sink: sink, hist: hist}
}

// TestPrewarmTransitionsToReady verifies idle → prewarming → ready
func TestPrewarmTransitionsToReady(t *testing.T) {
	f := newFixture(t)

	v := f.d.Prewarm(nil, "", catalog.TierMid, false)
	if v.ID == "" || v.FinalDuration <= 0 {
		t.Fatalf("prewarm returned unusable variant: %+v", v)
	}
	if got := f.d.GetState().Phase; got != PhaseReady {
		t.Errorf("phase after prewarm = %s, want ready", got)
	}
	if f.d.GetState().CurrentVariant != nil {
		t.Error("prewarm must not set the current variant")
	}
}

// TestPrewarmDisabledShortCircuits verifies the kill-switch path
func TestPrewarmDisabledShortCircuits(t *testing.T) {
	f := newFixture(t)
	cfg := config.Default()
	cfg.Enabled = false
	f.d.cfg = cfg

	v := f.d.Prewarm(nil, catalog.ClassCourage, catalog.TierHigh, false)
	if !v.IsFallback {
		t.Errorf("disabled engine prewarmed non-fallback variant %s", v.ID)
	}
	if got := f.d.GetState().Phase; got != PhaseReady {
		t.Errorf("phase = %s, want ready", got)
	}
}

// TestPlayUsesPrewarmedVariant verifies prewarm cache consumption
func TestPlayUsesPrewarmedVariant(t *testing.T) {
	f := newFixture(t)

	v := f.d.Prewarm(nil, "", catalog.TierMid, false)
	f.d.Play(nil, "")

	st := f.d.GetState()
	if st.Phase != PhasePlaying {
		t.Fatalf("phase = %s, want playing", st.Phase)
	}
	if st.CurrentVariant == nil || st.CurrentVariant.ID != v.ID || st.CurrentVariant.Seed != v.Seed {
		t.Error("play did not use the prewarmed variant")
	}
	if st.IsSafeMode {
		t.Error("prewarmed play must not start in safe mode")
	}
}

// TestPlayWithoutPrewarmFlagsSafeMode verifies the unexpected-path fallback
func TestPlayWithoutPrewarmFlagsSafeMode(t *testing.T) {
	f := newFixture(t)

	f.d.Play(nil, catalog.TierLow)

	st := f.d.GetState()
	if st.Phase != PhasePlaying {
		t.Fatalf("phase = %s, want playing", st.Phase)
	}
	if !st.IsSafeMode {
		t.Error("skipping prewarm should start playback in safe mode")
	}
	if !st.CurrentVariant.IsFallback {
		t.Errorf("expected fallback variant, got %s", st.CurrentVariant.ID)
	}
}

// TestPlayIdempotent verifies a second play aborts the first exactly once
func TestPlayIdempotent(t *testing.T) {
	f := newFixture(t)

	var aborts []string
	var completes int
	f.d.SetCallbacks(Callbacks{
		OnAbort:    func(reason string) { aborts = append(aborts, reason) },
		OnComplete: func(catalog.MutatedVariant) { completes++ },
	})

	f.d.Play(nil, "")
	f.d.Play(nil, "")

	if len(aborts) != 1 || aborts[0] != ReasonNewPlayRequested {
		t.Errorf("expected exactly one abort with %q, got %v", ReasonNewPlayRequested, aborts)
	}
	if completes != 0 {
		t.Errorf("supersede must not complete, got %d completions", completes)
	}
	st := f.d.GetState()
	if st.Phase != PhasePlaying || st.CurrentVariant == nil {
		t.Fatal("second play did not start")
	}
	if f.sink.count(events.TypeStarted) != 2 {
		t.Errorf("expected 2 started events, got %d", f.sink.count(events.TypeStarted))
	}
}

// TestReportFPSGating verifies samples only accumulate while playing
func TestReportFPSGating(t *testing.T) {
	f := newFixture(t)

	f.d.ReportFPS(60)
	if n := len(f.d.GetState().FPSHistory); n != 0 {
		t.Errorf("idle fps report stored %d samples", n)
	}

	f.d.Play(nil, "")
	for i := 0; i < 10; i++ {
		f.d.ReportFPS(60)
	}
	if n := len(f.d.GetState().FPSHistory); n != 10 {
		t.Errorf("fps history length = %d, want 10", n)
	}

	for i := 0; i < 100; i++ {
		f.d.ReportFPS(60)
	}
	if n := len(f.d.GetState().FPSHistory); n != 60 {
		t.Errorf("fps ring exceeded cap: %d", n)
	}
}

// TestSafeModeOnSustainedLowFPS verifies the frame-rate safety net
func TestSafeModeOnSustainedLowFPS(t *testing.T) {
	f := newFixture(t)

	f.d.Prewarm(nil, "", catalog.TierMid, false)
	f.d.Play(nil, "")
	for i := 0; i < 35; i++ {
		f.d.ReportFPS(20)
	}
	f.clock.Advance(500 * time.Millisecond)

	if !f.d.IsSafeMode() {
		t.Error("sustained 20fps did not trigger safe mode")
	}
	if f.sink.count(events.TypeFPSDip) != 1 {
		t.Errorf("expected 1 fps_dip event, got %d", f.sink.count(events.TypeFPSDip))
	}
	if f.sink.count(events.TypeFallback) != 1 {
		t.Errorf("expected 1 fallback event, got %d", f.sink.count(events.TypeFallback))
	}
}

// TestNoSafeModeAtHealthyFPS verifies 60fps never degrades
func TestNoSafeModeAtHealthyFPS(t *testing.T) {
	f := newFixture(t)

	f.d.Prewarm(nil, "", catalog.TierMid, false)
	f.d.Play(nil, "")
	for i := 0; i < 60; i++ {
		f.d.ReportFPS(60)
	}
	f.clock.Advance(3 * time.Second)

	if f.d.IsSafeMode() {
		t.Error("healthy framerate triggered safe mode")
	}
}

// TestAbortDuringPlayback verifies the user-skip path
func TestAbortDuringPlayback(t *testing.T) {
	f := newFixture(t)

	var abortReason string
	var completes int
	f.d.SetCallbacks(Callbacks{
		OnAbort:    func(reason string) { abortReason = reason },
		OnComplete: func(catalog.MutatedVariant) { completes++ },
	})

	f.d.Play(nil, "")
	f.d.Abort("user_skip")

	if abortReason != "user_skip" {
		t.Errorf("abort reason = %q, want user_skip", abortReason)
	}
	if completes != 0 {
		t.Error("abort must not fire completion")
	}
	st := f.d.GetState()
	if st.Phase != PhaseIdle || st.CurrentVariant != nil {
		t.Errorf("post-abort state not reset: phase=%s variant=%v", st.Phase, st.CurrentVariant)
	}
}

// TestAbortWhileIdleIsNoop verifies abort outside a run does nothing
func TestAbortWhileIdleIsNoop(t *testing.T) {
	f := newFixture(t)

	calls := 0
	f.d.SetCallbacks(Callbacks{OnAbort: func(string) { calls++ }})
	f.d.Abort("user_skip")

	if calls != 0 {
		t.Errorf("idle abort fired %d callbacks", calls)
	}
	if f.sink.count(events.TypeAborted) != 0 {
		t.Error("idle abort emitted an analytics event")
	}
}

// TestContextLost verifies render-context loss always aborts, never completes
func TestContextLost(t *testing.T) {
	f := newFixture(t)

	var abortReason string
	var completes int
	f.d.SetCallbacks(Callbacks{
		OnAbort:    func(reason string) { abortReason = reason },
		OnComplete: func(catalog.MutatedVariant) { completes++ },
	})

	// No-op while idle
	f.d.HandleContextLost()
	if abortReason != "" {
		t.Fatal("idle context loss fired a callback")
	}

	f.d.Play(nil, "")
	f.d.HandleContextLost()

	if abortReason != ReasonContextLost {
		t.Errorf("abort reason = %q, want %q", abortReason, ReasonContextLost)
	}
	if completes != 0 {
		t.Error("context loss must never complete")
	}
	st := f.d.GetState()
	if st.Phase != PhaseIdle {
		t.Errorf("phase = %s, want idle", st.Phase)
	}
	if st.Err != "" || st.CurrentVariant != nil {
		t.Errorf("state not fully cleaned: err=%q variant=%v", st.Err, st.CurrentVariant)
	}
}

// TestMaxDurationForcesComplete verifies no playback can hang indefinitely
func TestMaxDurationForcesComplete(t *testing.T) {
	f := newFixture(t)

	var completes int
	f.d.SetCallbacks(Callbacks{OnComplete: func(catalog.MutatedVariant) { completes++ }})

	f.d.Prewarm(nil, "", catalog.TierMid, false)
	f.d.Play(nil, "")
	f.clock.Advance(16 * time.Second) // past the 15s guard plus settle

	if completes != 1 {
		t.Fatalf("expected forced completion, got %d completions", completes)
	}
	if got := f.d.GetState().Phase; got != PhaseIdle {
		t.Errorf("phase = %s, want idle", got)
	}
	entries := f.hist.Entries()
	if len(entries) != 1 || !entries[0].Completed {
		t.Errorf("forced completion not recorded as success: %+v", entries)
	}
}

// TestCompleteSettlesThenFinalizes verifies the natural completion path
func TestCompleteSettlesThenFinalizes(t *testing.T) {
	f := newFixture(t)

	var completed *catalog.MutatedVariant
	f.d.SetCallbacks(Callbacks{OnComplete: func(v catalog.MutatedVariant) { completed = &v }})

	pre := f.d.Prewarm(nil, "", catalog.TierMid, false)
	f.d.Play(nil, "")
	f.d.Complete()

	if got := f.d.GetState().Phase; got != PhaseSettling {
		t.Fatalf("phase after complete = %s, want settling", got)
	}
	if completed != nil {
		t.Fatal("completion fired before settle elapsed")
	}

	f.clock.Advance(300 * time.Millisecond)

	if completed == nil || completed.ID != pre.ID {
		t.Fatal("completion callback missing or wrong variant")
	}
	if got := f.d.GetState().Phase; got != PhaseIdle {
		t.Errorf("phase = %s, want idle", got)
	}
}

// TestCompleteOutsidePlaybackIsNoop verifies misuse is ignored
func TestCompleteOutsidePlaybackIsNoop(t *testing.T) {
	f := newFixture(t)

	calls := 0
	f.d.SetCallbacks(Callbacks{OnComplete: func(catalog.MutatedVariant) { calls++ }})
	f.d.Complete()
	f.clock.Advance(time.Second)

	if calls != 0 {
		t.Errorf("idle complete fired %d callbacks", calls)
	}
	if got := f.d.GetState().Phase; got != PhaseIdle {
		t.Errorf("phase = %s, want idle", got)
	}
}

// TestHistoryRecordsAttempts verifies failures are logged, not only successes
func TestHistoryRecordsAttempts(t *testing.T) {
	f := newFixture(t)

	f.d.Play(nil, "")
	f.d.Abort("user_skip")

	entries := f.hist.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Completed {
		t.Error("aborted run recorded as completed")
	}
	if !e.WasSafeMode {
		t.Error("no-prewarm safe-mode flag not recorded")
	}
	if e.VariantID == "" {
		t.Errorf("entry missing identity: %+v", e)
	}
}

// TestPhaseChangeSequence verifies onPhaseChange fires on every transition
func TestPhaseChangeSequence(t *testing.T) {
	f := newFixture(t)

	var phases []Phase
	f.d.SetCallbacks(Callbacks{OnPhaseChange: func(p Phase) { phases = append(phases, p) }})

	f.d.Prewarm(nil, "", catalog.TierMid, false)
	f.d.Play(nil, "")
	f.d.Complete()
	f.clock.Advance(time.Second)

	want := []Phase{PhasePrewarming, PhaseReady, PhasePlaying, PhaseSettling, PhaseCleanup, PhaseIdle}
	if !reflect.DeepEqual(phases, want) {
		t.Errorf("phase sequence = %v, want %v", phases, want)
	}
}

// TestDisposeLeavesPristineState verifies full teardown
func TestDisposeLeavesPristineState(t *testing.T) {
	f := newFixture(t)

	calls := 0
	f.d.SetCallbacks(Callbacks{
		OnAbort:       func(string) { calls++ },
		OnComplete:    func(catalog.MutatedVariant) { calls++ },
		OnPhaseChange: func(Phase) {},
	})
	f.d.Prewarm(nil, "", catalog.TierMid, false)
	f.d.Play(nil, "")
	f.d.Dispose()

	got := f.d.GetState()
	if !reflect.DeepEqual(got, (State{Phase: PhaseIdle})) {
		t.Errorf("disposed state not pristine: %+v", got)
	}

	// Callbacks are cleared: subsequent lifecycle produces no invocations
	before := calls
	f.d.Play(nil, "")
	f.d.Complete()
	f.clock.Advance(time.Second)
	if calls != before {
		t.Errorf("disposed director still fires callbacks (%d new)", calls-before)
	}
}

// TestAnalyticsFailureInvisible verifies a broken sink cannot affect playback
func TestAnalyticsFailureInvisible(t *testing.T) {
	clock := NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	d := New(Options{Clock: clock, Sink: panickingSink{}})

	var completes int
	d.SetCallbacks(Callbacks{OnComplete: func(catalog.MutatedVariant) { completes++ }})

	d.Prewarm(nil, "", catalog.TierMid, false)
	d.Play(nil, "")
	d.Complete()
	clock.Advance(time.Second)

	if completes != 1 {
		t.Errorf("playback affected by sink failure: %d completions", completes)
	}
	if got := d.GetState().Phase; got != PhaseIdle {
		t.Errorf("phase = %s, want idle", got)
	}
}

// TestSelectorPanicFallsBack verifies prewarm honors the never-throw contract
func TestSelectorPanicFallsBack(t *testing.T) {
	f := newFixture(t)

	// A nil selector panics inside Select (logger deref) but SelectFallback
	// touches no receiver state, so the recover path still yields a variant
	f.d.sel = nil
	v := f.d.Prewarm(nil, "", "", false)
	if v.ID == "" || !v.IsFallback {
		t.Errorf("prewarm did not recover to a fallback: %+v", v)
	}
	if got := f.d.GetState().Phase; got != PhaseReady {
		t.Errorf("phase = %s, want ready", got)
	}
}

// TestDefaultSingleton verifies the factory/reset pair
func TestDefaultSingleton(t *testing.T) {
	ResetDefault()
	a := Default()
	if a != Default() {
		t.Error("Default returned distinct instances")
	}
	ResetDefault()
	if a == Default() {
		t.Error("ResetDefault did not drop the instance")
	}
	ResetDefault()
}
