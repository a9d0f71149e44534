package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lumenpath/breakthrough/catalog"
	"github.com/lumenpath/breakthrough/director"
	"github.com/lumenpath/breakthrough/events"
	"github.com/lumenpath/breakthrough/selector"
)

var (
	demoVariantID string
	demoSeed      uint32
	demoTier      string
	demoHint      string
	demoReduced   bool
	demoMute      bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Play a sequence in the terminal",
	Long: `Play a breakthrough sequence in the terminal.

Without flags, the selector picks a template and the mutation seed is
random. Keys during playback:
  esc / q  - abort
  c        - complete early
  s        - force safe mode`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&demoVariantID, "variant", "", "play a specific template instead of selecting one")
	demoCmd.Flags().Uint32Var(&demoSeed, "seed", 0, "mutation seed (0 picks a random seed)")
	demoCmd.Flags().StringVar(&demoTier, "tier", "mid", "device quality tier (low, mid, high)")
	demoCmd.Flags().StringVar(&demoHint, "hint", "", "class hint biasing selection (reveal, release, ...)")
	demoCmd.Flags().BoolVar(&demoReduced, "reduced-motion", false, "restrict selection to low-intensity ease templates")
	demoCmd.Flags().BoolVar(&demoMute, "mute", false, "skip the audio mood cue")
}

func runDemo(cmd *cobra.Command, args []string) error {
	log, closeStore, err := openHistory()
	if err != nil {
		return err
	}
	defer closeStore()

	tier := catalog.QualityTier(demoTier)

	d := director.New(director.Options{
		Config:   cfg,
		Selector: selector.New(logger),
		History:  log,
		Sink:     events.LogSink{Logger: logger},
		Logger:   logger,
	})
	defer d.Dispose()

	done := make(chan string, 1)
	d.SetCallbacks(director.Callbacks{
		OnComplete: func(v catalog.MutatedVariant) { done <- "completed" },
		OnAbort:    func(reason string) { done <- "aborted (" + reason + ")" },
	})

	// An explicit --variant bypasses selection; otherwise prewarm picks one
	var passed *catalog.MutatedVariant
	if demoVariantID != "" {
		base, ok := catalog.ByID(demoVariantID)
		if !ok {
			return fmt.Errorf("unknown variant %q", demoVariantID)
		}
		seed := demoSeed
		if seed == 0 {
			seed = catalog.GenerateSeed()
		}
		mutated := catalog.Mutate(base, seed)
		passed = &mutated
	} else {
		d.Prewarm(nil, catalog.Class(demoHint), tier, demoReduced)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	var cue *moodCue
	if !demoMute {
		cue, err = initAudio()
		if err != nil {
			// Non-fatal, the demo can run silent
			logger.Warn("audio initialization failed", zap.Error(err))
		}
	}
	defer cue.Close()

	d.Play(passed, tier)
	variant := d.CurrentVariant()
	if variant == nil {
		return fmt.Errorf("playback did not start")
	}
	cue.Play(variant)

	outcome := runPlayback(screen, d, variant, done)

	screen.Fini()
	fmt.Printf("%s (%s, seed %d): %s\n", variant.Name, variant.ID, variant.Seed, outcome)
	return nil
}
