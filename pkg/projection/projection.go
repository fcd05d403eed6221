// Package projection maps road depth to perspective scale and screen rows.
package projection

const (
	// DepthFactor controls how quickly the road shrinks toward the horizon.
	DepthFactor = 0.06
	// Epsilon keeps Scale finite at depth 0.
	Epsilon = 0.001

	// HorizonRatio is the fraction of the screen height taken by the sky band.
	HorizonRatio = 0.25
)

// Default screen size in logical pixels.
const (
	ScreenWidth  = 800
	ScreenHeight = 600
)

// Scale returns the perspective scale factor for a plane at the given depth.
// Larger depth gives a smaller scale.
func Scale(depth float64) float64 {
	return 1.0 / (depth*DepthFactor + Epsilon)
}

// Viewport describes the logical canvas the road is projected onto.
type Viewport struct {
	Width  int
	Height int
}

// DefaultViewport returns the 800x600 viewport the physics are tuned for.
func DefaultViewport() Viewport {
	return Viewport{Width: ScreenWidth, Height: ScreenHeight}
}

// Horizon returns the screen row where the sky ends.
func (v Viewport) Horizon() int {
	return int(float64(v.Height) * HorizonRatio)
}

// CenterX returns the horizontal screen centre, rounded down.
func (v Viewport) CenterX() float64 {
	return float64(v.Width / 2)
}

// ScreenY returns the screen row of a depth plane with the given scale.
// Scale 1 lands on the horizon row counted up from the bottom (450 on a
// 600-row screen) and scale 0 on the top edge. Rows grow with scale, so
// close planes (scale above 1) fall below the screen and the farthest
// segments end inside the sky band.
func (v Viewport) ScreenY(scale float64) float64 {
	h := float64(v.Height)
	horizon := float64(v.Horizon())
	return h - (horizon + (1-scale)*(h-horizon))
}
