package road

import (
	"math"

	"github.com/tickBit/fly-game/pkg/projection"
)

// Edges is the projected road cross-section at one segment.
type Edges struct {
	Left, Right float64
	Center      float64
	Scale       float64
	Index       int
	// OK is false when the lookahead falls outside the segment sequence.
	OK bool
}

// Width returns the projected road width.
func (e Edges) Width() float64 {
	return e.Right - e.Left
}

// Contains reports whether x lies strictly between the road edges.
func (e Edges) Contains(x float64) bool {
	return e.Left < x && x < e.Right
}

// Project returns the screen-space edges of segment i seen from cameraPos.
// The caller guarantees 0 <= i < NumSegments.
func Project(segments *Segments, i int, cameraPos, shipX float64, vp projection.Viewport) Edges {
	s := projection.Scale(float64(i) - cameraPos)
	center := vp.CenterX() + segments[i] + shipX*s*Parallax
	half := RoadWidth * s * 0.5

	return Edges{
		Left:   center - half,
		Right:  center + half,
		Center: center,
		Scale:  s,
		Index:  i,
		OK:     true,
	}
}

// LaneEdges returns the road edges lookahead segments ahead of the camera.
// The renderer's debug overlay and the boundary check both use it so they
// never disagree.
func LaneEdges(segments *Segments, cameraPos, shipX, lookahead float64, vp projection.Viewport) Edges {
	i := int(math.Floor(cameraPos + lookahead))
	if i < 1 || i >= NumSegments {
		return Edges{Index: i}
	}
	return Project(segments, i, cameraPos, shipX, vp)
}

// Quad is the screen trapezoid between a far segment and the one in front.
type Quad struct {
	Far, Near Edges
	FarY      float64
	NearY     float64
	// Dashed is true when the centerline is painted on this quad.
	Dashed bool
}

// QuadAt projects the trapezoid between segment i and i-1. ok is false when
// the near plane is at or behind the camera.
func QuadAt(segments *Segments, i int, cameraPos, shipX float64, vp projection.Viewport) (q Quad, ok bool) {
	if i < 1 || i >= NumSegments {
		return Quad{}, false
	}
	if float64(i-1)-cameraPos <= 0 {
		return Quad{}, false
	}

	far := Project(segments, i, cameraPos, shipX, vp)
	near := Project(segments, i-1, cameraPos, shipX, vp)

	return Quad{
		Far:    far,
		Near:   near,
		FarY:   vp.ScreenY(far.Scale),
		NearY:  vp.ScreenY(near.Scale),
		Dashed: i%DashPeriod < DashOn,
	}, true
}
