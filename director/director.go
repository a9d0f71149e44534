// Package director owns the breakthrough playback lifecycle.
//
// The Director renders nothing. It prewarms a variant, announces phase
// transitions, accepts frame-rate telemetry from the presentation layer,
// degrades to safe mode under sustained low framerate, enforces a hard
// maximum duration, and finalizes every run exactly once — committing it to
// history, firing one terminal callback, and resetting to idle.
//
// Every public method either returns a usable value or ends in a callback;
// no method panics or surfaces an error to the presentation layer.
package director

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/lumenpath/breakthrough/catalog"
	"github.com/lumenpath/breakthrough/config"
	"github.com/lumenpath/breakthrough/events"
	"github.com/lumenpath/breakthrough/history"
	"github.com/lumenpath/breakthrough/parameter"
	"github.com/lumenpath/breakthrough/selector"
)

// Phase names one lifecycle state
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhasePrewarming Phase = "prewarming"
	PhaseReady      Phase = "ready"
	PhasePlaying    Phase = "playing"
	PhaseSettling   Phase = "settling"
	PhaseCleanup    Phase = "cleanup" // transient, resolves to idle within the same call
)

// Machine-readable abort reasons the engine itself produces
const (
	ReasonNewPlayRequested = "new_play_requested"
	ReasonContextLost      = "webgl_context_lost"
	ReasonDisposed         = "disposed"
)

// State is an immutable snapshot of the director
// CurrentVariant is non-nil iff Phase is playing, settling, or cleanup
type State struct {
	Phase          Phase
	CurrentVariant *catalog.MutatedVariant
	StartTime      time.Time
	Err            string
	FPSHistory     []float64
	IsSafeMode     bool
}

// Callbacks are the director's outbound event slots
// SetCallbacks replaces all three at once; each is optional
type Callbacks struct {
	OnComplete    func(catalog.MutatedVariant)
	OnAbort       func(reason string)
	OnPhaseChange func(Phase)
}

// Options configures a Director; zero values get working defaults
type Options struct {
	Config   config.Config
	Clock    Clock
	Selector *selector.Selector
	History  *history.Log
	Sink     events.Sink
	Logger   *zap.Logger
}

// Director is the playback lifecycle state machine
// One instance should be wired to a given presentation surface
type Director struct {
	mu sync.Mutex

	cfg    config.Config
	clock  Clock
	sel    *selector.Selector
	hist   *history.Log
	sink   events.Sink
	logger *zap.Logger

	phase      Phase
	current    *catalog.MutatedVariant
	prewarmed  *catalog.MutatedVariant
	startTime  time.Time
	err        string
	fpsHistory []float64
	safeMode   bool
	tier       catalog.QualityTier

	fpsTask    Task
	maxTask    Task
	settleTask Task

	callbacks Callbacks

	// pending holds callback and sink invocations queued under the lock,
	// flushed after release so user code can safely re-enter the director
	pending []func()
}

// New creates a Director
func New(opts Options) *Director {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Clock == nil {
		opts.Clock = NewSystemClock()
	}
	if opts.Selector == nil {
		opts.Selector = selector.New(opts.Logger)
	}
	if opts.History == nil {
		opts.History = history.NewLog(history.NewMemoryStore(), opts.Logger)
	}
	if opts.Sink == nil {
		opts.Sink = events.NopSink{}
	}
	if opts.Config.Playback.MaxDuration == 0 {
		opts.Config = config.Default()
	}
	return &Director{
		cfg:    opts.Config,
		clock:  opts.Clock,
		sel:    opts.Selector,
		hist:   opts.History,
		sink:   opts.Sink,
		logger: opts.Logger,
		phase:  PhaseIdle,
		tier:   catalog.TierMid,
	}
}

// GetState returns a snapshot copy, never the live state
func (d *Director) GetState() State {
	d.mu.Lock()
	defer d.mu.Unlock()

	s := State{
		Phase:      d.phase,
		StartTime:  d.startTime,
		Err:        d.err,
		IsSafeMode: d.safeMode,
		FPSHistory: append([]float64(nil), d.fpsHistory...),
	}
	if d.current != nil {
		v := *d.current
		s.CurrentVariant = &v
	}
	return s
}

// SetCallbacks replaces all three callback slots
func (d *Director) SetCallbacks(cb Callbacks) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.callbacks = cb
}

// IsSafeMode reports whether degraded rendering has been requested
func (d *Director) IsSafeMode() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.safeMode
}

// CurrentVariant returns a copy of the variant in flight, or nil
func (d *Director) CurrentVariant() *catalog.MutatedVariant {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.current == nil {
		return nil
	}
	v := *d.current
	return &v
}

// Prewarm selects and mutates a variant ahead of playback
//
// It never fails: when the engine is disabled or selection errors, the
// guaranteed-safe fallback is cached instead. Transitions idle → prewarming
// → ready; called in any other phase it refreshes the cache without
// touching the phase.
func (d *Director) Prewarm(entities []selector.Entity, typeHint catalog.Class, tier catalog.QualityTier, reducedMotion bool) catalog.MutatedVariant {
	d.mu.Lock()
	defer d.unlockAndNotify()

	if tier != "" {
		d.tier = tier
	}
	if d.phase == PhaseIdle {
		d.setPhaseLocked(PhasePrewarming)
	}

	variant := d.selectSafely(entities, typeHint, reducedMotion)
	d.prewarmed = &variant

	if d.phase == PhasePrewarming {
		d.setPhaseLocked(PhaseReady)
	}
	return variant
}

// selectSafely runs selection under the never-throw contract
func (d *Director) selectSafely(entities []selector.Entity, typeHint catalog.Class, reducedMotion bool) (variant catalog.MutatedVariant) {
	if !d.cfg.Enabled {
		d.logger.Info("breakthrough engine disabled, prewarming fallback")
		return d.sel.SelectFallback(d.tier)
	}

	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("selection failed, using fallback", zap.Any("panic", r))
			variant = d.sel.SelectFallback(d.tier)
		}
	}()

	ctx := selector.BuildContext(entities, typeHint, d.tier, reducedMotion, d.hist)
	return d.sel.Select(ctx).Variant
}

// Play starts playback of the given variant, the prewarmed one, or a fresh
// fallback, in that order of preference
//
// Idempotent under rapid repeated calls: an in-flight run is aborted with
// reason "new_play_requested" and fully finalized before the new run starts.
// Reaching the fallback path (no variant, no prewarm) flags safe mode, since
// skipping prewarm indicates an unexpected caller path.
func (d *Director) Play(variant *catalog.MutatedVariant, tier catalog.QualityTier) {
	d.mu.Lock()
	defer d.unlockAndNotify()

	if d.phase == PhasePlaying || d.phase == PhaseSettling {
		d.emitLocked(events.TypeAborted, ReasonNewPlayRequested)
		d.finalizeLocked(false, ReasonNewPlayRequested)
	}

	// Cleanup resolves synchronously today; the poll guards a future async
	// finalize path without busy-waiting
	for d.phase == PhaseCleanup {
		pending := d.pending
		d.pending = nil
		d.mu.Unlock()
		for _, fn := range pending {
			fn()
		}
		d.clock.Sleep(parameter.PlaySupersedePollInterval)
		d.mu.Lock()
	}

	if tier != "" {
		d.tier = tier
	}

	chosen := variant
	if chosen == nil {
		chosen = d.prewarmed
	}
	unexpectedPath := false
	if chosen == nil {
		v := d.sel.SelectFallback(d.tier)
		chosen = &v
		unexpectedPath = true
	}

	cv := *chosen
	d.current = &cv
	d.prewarmed = nil
	d.fpsHistory = d.fpsHistory[:0]
	d.err = ""
	d.safeMode = unexpectedPath
	d.startTime = d.clock.Now()
	d.setPhaseLocked(PhasePlaying)

	d.fpsTask = d.clock.TickFunc(d.cfg.Safety.FPSCheckInterval.Std(), d.checkFPS)
	d.maxTask = d.clock.AfterFunc(d.cfg.Playback.MaxDuration.Std(), d.onMaxDuration)

	d.emitLocked(events.TypeStarted, "")
}

// ReportFPS appends one frame-rate sample; no-op outside playback
func (d *Director) ReportFPS(fps float64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.phase != PhasePlaying {
		return
	}
	d.fpsHistory = append(d.fpsHistory, fps)
	if len(d.fpsHistory) > parameter.FPSHistoryCap {
		d.fpsHistory = d.fpsHistory[len(d.fpsHistory)-parameter.FPSHistoryCap:]
	}
}

// Complete ends the run naturally: settling, then finalization as a success
// Calling it outside playback is a logged no-op
func (d *Director) Complete() {
	d.mu.Lock()
	defer d.unlockAndNotify()
	d.completeLocked()
}

func (d *Director) completeLocked() {
	if d.phase != PhasePlaying {
		d.logger.Warn("complete called outside playback", zap.String("phase", string(d.phase)))
		return
	}
	d.setPhaseLocked(PhaseSettling)
	d.settleTask = d.clock.AfterFunc(d.cfg.Playback.SettleDuration.Std(), d.onSettleElapsed)
}

func (d *Director) onSettleElapsed() {
	d.mu.Lock()
	defer d.unlockAndNotify()
	if d.phase != PhaseSettling {
		return
	}
	d.emitLocked(events.TypeCompleted, "")
	d.finalizeLocked(true, "")
}

// Abort ends the run as a failure with a machine-readable reason
// No-op when already idle or mid-cleanup
func (d *Director) Abort(reason string) {
	d.mu.Lock()
	defer d.unlockAndNotify()
	d.abortLocked(reason)
}

func (d *Director) abortLocked(reason string) {
	if d.phase == PhaseIdle || d.phase == PhaseCleanup {
		return
	}
	d.emitLocked(events.TypeAborted, reason)
	d.finalizeLocked(false, reason)
}

// TriggerSafeMode requests degraded rendering; idempotent, playing-only
// It changes no rendering itself — the presentation layer polls IsSafeMode
func (d *Director) TriggerSafeMode() {
	d.mu.Lock()
	defer d.unlockAndNotify()
	d.triggerSafeModeLocked()
}

func (d *Director) triggerSafeModeLocked() {
	if d.phase != PhasePlaying || d.safeMode {
		return
	}
	d.safeMode = true
	d.emitLocked(events.TypeFallback, "")
}

// HandleContextLost reacts to a lost render context: always an abort with
// reason "webgl_context_lost", never a completion; no-op outside playback
func (d *Director) HandleContextLost() {
	d.mu.Lock()
	defer d.unlockAndNotify()

	if d.phase != PhasePlaying {
		return
	}
	d.logger.Warn("render context lost during playback")
	d.abortLocked(ReasonContextLost)
}

// Dispose tears the director down completely: any in-flight run is aborted,
// timers are cleared, callbacks and the prewarm cache are dropped, and the
// state returns to the pristine initial snapshot
func (d *Director) Dispose() {
	d.mu.Lock()
	defer d.unlockAndNotify()

	d.abortLocked(ReasonDisposed)
	d.stopTimersLocked()
	d.prewarmed = nil
	d.callbacks = Callbacks{}
	d.resetLocked()
	// Phase is already idle; reset again without notifications so a
	// disposed director is indistinguishable from a new one
	d.phase = PhaseIdle
}

// checkFPS is the sustained-framerate safety net, run on the check interval
// while playing
func (d *Director) checkFPS() {
	d.mu.Lock()
	defer d.unlockAndNotify()

	if d.phase != PhasePlaying {
		return
	}
	if len(d.fpsHistory) < parameter.FPSWindowSize {
		return
	}

	window := d.fpsHistory[len(d.fpsHistory)-parameter.FPSWindowSize:]
	var sum float64
	for _, f := range window {
		sum += f
	}
	mean := sum / float64(len(window))

	if mean < d.cfg.Safety.FPSThreshold && !d.safeMode {
		d.logger.Warn("sustained low framerate",
			zap.Float64("mean", mean),
			zap.Float64("threshold", d.cfg.Safety.FPSThreshold))
		d.emitLocked(events.TypeFPSDip, "")
		d.triggerSafeModeLocked()
	}
}

// onMaxDuration force-completes a run the presentation layer never ended
func (d *Director) onMaxDuration() {
	d.mu.Lock()
	defer d.unlockAndNotify()

	if d.phase != PhasePlaying {
		return
	}
	d.logger.Warn("max playback duration reached, forcing completion",
		zap.Duration("max", d.cfg.Playback.MaxDuration.Std()))
	d.completeLocked()
}

// finalizeLocked is the single exit path for every run
// Always transitions through cleanup, records the attempt to history,
// queues exactly one terminal callback, and resets to idle
func (d *Director) finalizeLocked(completed bool, reason string) {
	d.setPhaseLocked(PhaseCleanup)
	d.err = reason
	d.stopTimersLocked()

	if d.current != nil {
		d.hist.Record(history.Entry{
			VariantID:   d.current.ID,
			Seed:        d.current.Seed,
			Intensity:   d.current.Intensity,
			QualityTier: d.tier,
			Completed:   completed,
			WasSafeMode: d.safeMode,
			Timestamp:   d.clock.Now(),
		})
	}

	variant := d.current
	cb := d.callbacks
	if completed {
		if cb.OnComplete != nil && variant != nil {
			v := *variant
			d.pending = append(d.pending, func() { cb.OnComplete(v) })
		}
	} else {
		if cb.OnAbort != nil {
			d.pending = append(d.pending, func() { cb.OnAbort(reason) })
		}
	}

	d.resetLocked()
	d.setPhaseLocked(PhaseIdle)
}

// resetLocked restores the initial state snapshot (phase handled by caller)
func (d *Director) resetLocked() {
	d.current = nil
	d.startTime = time.Time{}
	d.err = ""
	d.fpsHistory = nil
	d.safeMode = false
}

func (d *Director) stopTimersLocked() {
	for _, t := range []Task{d.fpsTask, d.maxTask, d.settleTask} {
		if t != nil {
			t.Stop()
		}
	}
	d.fpsTask, d.maxTask, d.settleTask = nil, nil, nil
}

// setPhaseLocked transitions phase and queues the change notification
func (d *Director) setPhaseLocked(p Phase) {
	if d.phase == p {
		return
	}
	d.phase = p
	if cb := d.callbacks.OnPhaseChange; cb != nil {
		d.pending = append(d.pending, func() { cb(p) })
	}
}

// emitLocked queues an analytics event carrying the current run's telemetry
func (d *Director) emitLocked(t events.Type, errStr string) {
	e := events.New(t)
	if d.current != nil {
		e.VariantID = d.current.ID
		e.Seed = d.current.Seed
		e.Intensity = d.current.Intensity
	}
	e.QualityTier = d.tier
	if !d.startTime.IsZero() {
		e.Elapsed = d.clock.Now().Sub(d.startTime)
	}
	e.AvgFPS, e.MinFPS = fpsStats(d.fpsHistory)
	e.Error = errStr

	sink, logger := d.sink, d.logger
	d.pending = append(d.pending, func() { events.Dispatch(sink, logger, e) })
}

// unlockAndNotify flushes queued callbacks after releasing the lock
// Queued order is preserved: phase changes, analytics, then terminal callbacks
// in the order they were produced
func (d *Director) unlockAndNotify() {
	pending := d.pending
	d.pending = nil
	d.mu.Unlock()
	for _, fn := range pending {
		fn()
	}
}

func fpsStats(samples []float64) (avg, min float64) {
	if len(samples) == 0 {
		return 0, 0
	}
	min = samples[0]
	var sum float64
	for _, f := range samples {
		sum += f
		if f < min {
			min = f
		}
	}
	return sum / float64(len(samples)), min
}
