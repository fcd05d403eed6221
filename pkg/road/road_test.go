package road

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tickBit/fly-game/pkg/projection"
)

func TestInitialSegments(t *testing.T) {
	s := InitialSegments()
	for i := range s {
		assert.InDelta(t, math.Sin(float64(i)*0.12)*40, s[i], 1e-12, "segment %d", i)
	}
}

func TestCurvaturePersistence(t *testing.T) {
	g := NewCurvatureGenerator(7)

	g.Next(0, 0.4)
	first := g.CurrentTurn
	assert.Equal(t, TurnPersistence-1, g.FramesRemaining)

	for call := 2; call <= TurnPersistence; call++ {
		g.Next(0, 0.4)
		require.Equal(t, first, g.CurrentTurn, "call %d", call)
	}
	assert.Equal(t, 0, g.FramesRemaining)

	// call 121 draws a new turn and restarts the window
	g.Next(0, 0.4)
	assert.Equal(t, TurnPersistence-1, g.FramesRemaining)
	assert.NotEqual(t, first, g.CurrentTurn)
}

func TestCurvatureTurnRange(t *testing.T) {
	tests := []struct {
		name      string
		influence float64
	}{
		{"no steering", 0},
		{"steer left", -0.4},
		{"steer right", 0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewCurvatureGenerator(99)
			bias := tt.influence * SegmentPlayerInfluence
			for n := 0; n < 50; n++ {
				g.FramesRemaining = 0
				g.Next(0, tt.influence)
				assert.GreaterOrEqual(t, g.CurrentTurn, bias-SegmentRandomTurn)
				assert.LessOrEqual(t, g.CurrentTurn, bias+SegmentRandomTurn)
			}
		})
	}
}

func TestGeneratorClampsOffset(t *testing.T) {
	g := NewCurvatureGenerator(1)
	g.CurrentTurn = 50
	g.FramesRemaining = 10

	assert.Equal(t, MaxOffset, g.Next(880, 0))

	g.CurrentTurn = -50
	assert.Equal(t, -MaxOffset, g.Next(-880, 0))
}

func TestGeneratorDeterministic(t *testing.T) {
	a := NewCurvatureGenerator(42)
	b := NewCurvatureGenerator(42)

	prevA, prevB := 0.0, 0.0
	for n := 0; n < 500; n++ {
		prevA = a.Next(prevA, 0.4)
		prevB = b.Next(prevB, 0.4)
		require.Equal(t, prevA, prevB, "spawn %d", n)
	}
}

func TestRandomStateRoundTrip(t *testing.T) {
	a := NewCurvatureGenerator(5)
	for n := 0; n < 300; n++ {
		a.Next(0, 0)
	}

	state, err := a.RandomState()
	require.NoError(t, err)

	b := NewCurvatureGenerator(12345)
	require.NoError(t, b.SetRandomState(state))
	b.CurrentTurn = a.CurrentTurn
	b.FramesRemaining = a.FramesRemaining

	for n := 0; n < 300; n++ {
		require.Equal(t, a.Next(10, -0.4), b.Next(10, -0.4))
	}
}

func TestAdvance(t *testing.T) {
	t.Run("below one unit keeps segments", func(t *testing.T) {
		r := NewRoad(1)
		before := r.Segments

		cam := r.Advance(0.9, 0)
		assert.InDelta(t, 0.9, cam, 1e-12)
		assert.Equal(t, before, r.Segments)
	})

	t.Run("one unit recycles one segment", func(t *testing.T) {
		r := NewRoad(1)
		before := r.Segments

		cam := r.Advance(1.35, 0)
		assert.InDelta(t, 0.35, cam, 1e-12)
		for i := 0; i < NumSegments-1; i++ {
			assert.Equal(t, before[i+1], r.Segments[i])
		}
		spawned := r.Segments[NumSegments-1]
		assert.InDelta(t, before[NumSegments-1]+r.Generator.CurrentTurn, spawned, 1e-9)
	})

	t.Run("fast camera recycles several", func(t *testing.T) {
		r := NewRoad(1)
		before := r.Segments

		cam := r.Advance(3.5, 0)
		assert.InDelta(t, 0.5, cam, 1e-12)
		assert.Equal(t, before[3], r.Segments[0])
		assert.Equal(t, TurnPersistence-3, r.Generator.FramesRemaining)
	})
}

func TestAdvanceKeepsBounds(t *testing.T) {
	r := NewRoad(3)
	cam := 0.0
	for tick := 0; tick < 20000; tick++ {
		cam += 0.45
		cam = r.Advance(cam, 0.4)
		for i, off := range r.Segments {
			require.LessOrEqual(t, math.Abs(off), MaxOffset, "tick %d segment %d", tick, i)
		}
	}
	assert.Len(t, r.Segments, NumSegments)
}

func TestShift(t *testing.T) {
	r := NewRoad(1)
	r.Segments[0] = 898
	r.Segments[1] = 10

	r.Shift(-5)
	assert.Equal(t, MaxOffset, r.Segments[0])
	assert.Equal(t, 15.0, r.Segments[1])

	r.Shift(5)
	assert.Equal(t, 895.0, r.Segments[0])
	assert.Equal(t, 10.0, r.Segments[1])
}

func TestResetKeepsGeneratorState(t *testing.T) {
	r := NewRoad(1)
	r.Advance(5, 0)
	turn, frames := r.Generator.CurrentTurn, r.Generator.FramesRemaining

	r.Reset()
	assert.Equal(t, InitialSegments(), r.Segments)
	assert.Equal(t, turn, r.Generator.CurrentTurn)
	assert.Equal(t, frames, r.Generator.FramesRemaining)
}

func TestLaneEdges(t *testing.T) {
	vp := projection.DefaultViewport()
	var segs Segments
	segs[12] = 30

	e := LaneEdges(&segs, 0.45, 100, 12, vp)
	require.True(t, e.OK)
	assert.Equal(t, 12, e.Index)

	s := projection.Scale(12 - 0.45)
	center := 400 + 30 + 100*s*Parallax
	assert.InDelta(t, center-RoadWidth*s*0.5, e.Left, 1e-9)
	assert.InDelta(t, center+RoadWidth*s*0.5, e.Right, 1e-9)
	assert.InDelta(t, RoadWidth*s, e.Width(), 1e-9)
	assert.True(t, e.Contains(center))
	assert.False(t, e.Contains(e.Left))
	assert.False(t, e.Contains(e.Right))
}

func TestLaneEdgesOutOfRange(t *testing.T) {
	vp := projection.DefaultViewport()
	segs := InitialSegments()

	tests := []struct {
		name      string
		cam       float64
		lookahead float64
	}{
		{"behind camera", 0, 0.5},
		{"past far end", 0.2, 80},
		{"negative", 0, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := LaneEdges(&segs, tt.cam, 0, tt.lookahead, vp)
			assert.False(t, e.OK)
		})
	}
}

func TestQuadAt(t *testing.T) {
	vp := projection.DefaultViewport()
	segs := InitialSegments()

	_, ok := QuadAt(&segs, 1, 0.45, 0, vp)
	assert.False(t, ok, "near plane behind the camera")

	q, ok := QuadAt(&segs, 12, 0.45, 0, vp)
	require.True(t, ok)
	assert.Equal(t, 12, q.Far.Index)
	assert.Equal(t, 11, q.Near.Index)
	assert.Less(t, q.FarY, q.NearY, "far edge is higher on screen")
	assert.Less(t, q.Far.Width(), q.Near.Width())
	assert.True(t, q.Dashed)

	q, ok = QuadAt(&segs, 15, 0.45, 0, vp)
	require.True(t, ok)
	assert.False(t, q.Dashed)

	// the far edge of the lookahead quad is exactly what LaneEdges reports
	q, _ = QuadAt(&segs, 12, 0.45, 42, vp)
	e := LaneEdges(&segs, 0.45, 42, 12, vp)
	assert.Equal(t, e, q.Far)
}
