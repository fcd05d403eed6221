// Package road owns the segment sequence, its procedural generation and the
// projected geometry of each segment.
package road

import "math"

// Segments holds the lateral offset of each road segment. Index i sits at
// depth i - cameraPos, so index 0 is behind the camera and the last index is
// the farthest.
type Segments [NumSegments]float64

// InitialSegments returns the gentle S-bend every run starts on.
func InitialSegments() Segments {
	var s Segments
	for i := range s {
		s[i] = math.Sin(float64(i)*seedFrequency) * seedAmplitude
	}
	return s
}

// Road is the scrolling segment sequence and the generator feeding it.
type Road struct {
	Segments  Segments
	Generator *CurvatureGenerator
}

// NewRoad creates a road with the initial bend and a seeded generator.
func NewRoad(seed uint64) *Road {
	return &Road{
		Segments:  InitialSegments(),
		Generator: NewCurvatureGenerator(seed),
	}
}

// Reset restores the initial bend. The generator keeps its turn state.
func (r *Road) Reset() {
	r.Segments = InitialSegments()
}

// Advance recycles one segment per whole unit of camera travel and returns
// the remaining fractional camera position. Each recycle drops the passed
// segment and spawns a new one beyond the farthest.
func (r *Road) Advance(cameraPos, influence float64) float64 {
	for cameraPos >= 1.0 {
		cameraPos -= 1.0
		last := r.Segments[NumSegments-1]
		copy(r.Segments[:], r.Segments[1:])
		r.Segments[NumSegments-1] = r.Generator.Next(last, influence)
	}
	return cameraPos
}

// Shift moves every segment by -delta, keeping offsets in bounds.
func (r *Road) Shift(delta float64) {
	if delta == 0 {
		return
	}
	for i := range r.Segments {
		r.Segments[i] = clampOffset(r.Segments[i] - delta)
	}
}
