package road

import (
	"fmt"
	"math/rand/v2"
)

// pcgStream is mixed into the seed to pick the PCG stream.
const pcgStream = 0x9e3779b97f4a7c15

// CurvatureGenerator produces new segment offsets with long, consistent turns.
// A turn is held for TurnPersistence spawns before a new one is drawn.
//
// It is not safe for concurrent use; spawns must happen in order.
type CurvatureGenerator struct {
	CurrentTurn     float64
	FramesRemaining int

	src *rand.PCG
	rng *rand.Rand
}

// NewCurvatureGenerator returns a generator seeded for a reproducible road.
func NewCurvatureGenerator(seed uint64) *CurvatureGenerator {
	src := rand.NewPCG(seed, seed^pcgStream)
	return &CurvatureGenerator{
		src: src,
		rng: rand.New(src),
	}
}

// Next returns the offset of the segment following prevOffset.
// influence is the steering bias for this spawn, in [-1, 1] scaled units.
func (g *CurvatureGenerator) Next(prevOffset, influence float64) float64 {
	if g.FramesRemaining <= 0 {
		g.CurrentTurn = g.uniform(-SegmentRandomTurn, SegmentRandomTurn)
		g.CurrentTurn += influence * SegmentPlayerInfluence
		g.FramesRemaining = TurnPersistence
	}
	g.FramesRemaining--

	return clampOffset(prevOffset + g.CurrentTurn)
}

func (g *CurvatureGenerator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// RandomState returns the serialized state of the random source.
func (g *CurvatureGenerator) RandomState() ([]byte, error) {
	b, err := g.src.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("failed to encode random state: %w", err)
	}
	return b, nil
}

// SetRandomState restores a random source saved with RandomState.
func (g *CurvatureGenerator) SetRandomState(state []byte) error {
	if err := g.src.UnmarshalBinary(state); err != nil {
		return fmt.Errorf("failed to decode random state: %w", err)
	}
	return nil
}

func clampOffset(v float64) float64 {
	return max(-MaxOffset, min(MaxOffset, v))
}
