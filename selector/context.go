package selector

import (
	"math"

	"github.com/lumenpath/breakthrough/catalog"
	"github.com/lumenpath/breakthrough/history"
	"github.com/lumenpath/breakthrough/parameter"
)

// EntityTypeFriction marks entities representing unresolved tension
// Friction-dominant snapshots bias selection toward release-shaped classes
const EntityTypeFriction = "friction"

// Entity is one element of the caller's contextual snapshot
// HasValence distinguishes "neutral" from "no signal"; entities without
// valence are excluded from sentiment
type Entity struct {
	Type       string
	Label      string
	Valence    float64
	HasValence bool
}

// Context is the ephemeral input to one selection call
type Context struct {
	Entities      []Entity
	TypeHint      catalog.Class // empty when the caller gives no hint
	QualityTier   catalog.QualityTier
	ReducedMotion bool

	// Sentiment is the mean valence of valence-bearing entities
	// HasSentiment is false when no entity carries valence: zero is a valid
	// sentiment and must not be conflated with absence
	Sentiment    float64
	HasSentiment bool

	// FrictionIntensity is the mean absolute valence of friction entities
	FrictionIntensity float64
	frictionDominant  bool

	// RecentVariantIDs and RecentIntensities mirror the history log,
	// most recent first
	RecentVariantIDs  []string
	RecentIntensities []catalog.Intensity
}

// BuildContext assembles a selection context from the entity snapshot and
// the play history; log may be nil
func BuildContext(entities []Entity, typeHint catalog.Class, tier catalog.QualityTier, reducedMotion bool, log *history.Log) Context {
	ctx := Context{
		Entities:      entities,
		TypeHint:      typeHint,
		QualityTier:   tier,
		ReducedMotion: reducedMotion,
	}

	var valenceSum float64
	var valenceCount int
	var frictionSum float64
	var frictionCount int

	for _, e := range entities {
		if e.HasValence {
			valenceSum += e.Valence
			valenceCount++
		}
		if e.Type == EntityTypeFriction {
			frictionCount++
			if e.HasValence {
				frictionSum += math.Abs(e.Valence)
			} else {
				frictionSum += 1.0 // typed friction without valence counts at full strength
			}
		}
	}

	if valenceCount > 0 {
		ctx.Sentiment = valenceSum / float64(valenceCount)
		ctx.HasSentiment = true
	}
	if frictionCount > 0 {
		ctx.FrictionIntensity = frictionSum / float64(frictionCount)
	}
	if len(entities) > 0 {
		ctx.frictionDominant = float64(frictionCount)/float64(len(entities)) > parameter.FrictionDominanceRatio
	}

	if log != nil {
		ctx.RecentVariantIDs = log.RecentIDs(parameter.RecencyWindow)
		for _, e := range log.Entries() {
			ctx.RecentIntensities = append(ctx.RecentIntensities, e.Intensity)
			if len(ctx.RecentIntensities) >= parameter.RecencyWindow {
				break
			}
		}
	}

	return ctx
}
