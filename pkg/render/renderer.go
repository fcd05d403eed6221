package render

import (
	"image/color"
	"math"

	"github.com/tickBit/fly-game/pkg/background"
	"github.com/tickBit/fly-game/pkg/projection"
	"github.com/tickBit/fly-game/pkg/road"
)

// Ship sprite placement.
const (
	ShipSize       = 96
	ShipBottomGap  = 60
	ShipSpeedAngle = -3.0

	bobFrequency = 0.004 // per millisecond
	bobAmplitude = 2.0
)

// Debug overlay.
const (
	edgeLineWidth = 3
	shipLineWidth = 2
)

var (
	Black       = color.RGBA{0, 0, 0, 255}
	DashColor   = color.RGBA{255, 220, 0, 255}
	EdgeColor   = color.RGBA{255, 50, 50, 255}
	ShipLineCol = color.RGBA{255, 255, 0, 255}
)

// Frame is an immutable view of the world for one draw.
type Frame struct {
	Segments  road.Segments
	CameraPos float64
	ShipX     float64
	ShipSpeed float64
	// ElapsedMs drives the idle bob of the ship.
	ElapsedMs float64
	Debug     bool
	// GameOver freezes the frame; debug lines are only drawn in play.
	GameOver bool
	// Edges is the lookahead cross-section used by the boundary check.
	Edges road.Edges
}

// Renderer draws frames back to front.
type Renderer struct {
	Viewport projection.Viewport
	Sprite   Sprite

	sky      []color.RGBA
	vignette []uint8
}

// NewRenderer creates a renderer for the viewport. sprite may be nil, in
// which case no ship is drawn.
func NewRenderer(vp projection.Viewport, sprite Sprite) *Renderer {
	bg := background.NewGenerator(vp.Width, vp.Height)
	return &Renderer{
		Viewport: vp,
		Sprite:   sprite,
		sky:      bg.Sky(vp.Horizon()),
		vignette: bg.Vignette(),
	}
}

// Draw paints one full frame.
func (r *Renderer) Draw(dst Surface, f *Frame) {
	w, h := float64(r.Viewport.Width), float64(r.Viewport.Height)
	dst.FillRect(0, 0, w, h, Black)

	r.drawSky(dst)
	r.drawRoad(dst, f)
	r.drawVignette(dst)
	r.drawShip(dst, f)

	if f.Debug && !f.GameOver {
		r.drawDebug(dst, f)
	}
}

func (r *Renderer) drawSky(dst Surface) {
	w := float64(r.Viewport.Width)
	for y, c := range r.sky {
		dst.FillRect(0, float64(y), w, 1, c)
	}
}

func (r *Renderer) drawRoad(dst Surface, f *Frame) {
	pts := make([]Point, 4)

	for i := road.NumSegments - 1; i > 0; i-- {
		q, ok := road.QuadAt(&f.Segments, i, f.CameraPos, f.ShipX, r.Viewport)
		if !ok {
			continue
		}

		pts[0] = Point{q.Near.Left, q.NearY}
		pts[1] = Point{q.Near.Right, q.NearY}
		pts[2] = Point{q.Far.Right, q.FarY}
		pts[3] = Point{q.Far.Left, q.FarY}
		dst.FillPolygon(pts, RoadShade(q.Far.Scale))

		if q.Dashed {
			lwFar := DashHalfWidth(q.Far)
			lwNear := DashHalfWidth(q.Near)
			pts[0] = Point{q.Near.Center - lwNear, q.NearY}
			pts[1] = Point{q.Near.Center + lwNear, q.NearY}
			pts[2] = Point{q.Far.Center + lwFar, q.FarY}
			pts[3] = Point{q.Far.Center - lwFar, q.FarY}
			dst.FillPolygon(pts, DashColor)
		}
	}
}

func (r *Renderer) drawVignette(dst Surface) {
	h := float64(r.Viewport.Height)
	for x, a := range r.vignette {
		dst.Overlay(float64(x), 0, 1, h, color.NRGBA{0, 0, 0, a})
	}
}

func (r *Renderer) drawShip(dst Surface, f *Frame) {
	if r.Sprite == nil {
		return
	}
	x, y := ShipPosition(r.Viewport, f.ShipX)
	dst.Blit(r.Sprite, x, y, ShipSize, ShipSize, ShipAngle(f.ShipSpeed, f.ElapsedMs))
}

func (r *Renderer) drawDebug(dst Surface, f *Frame) {
	if !f.Edges.OK {
		return
	}
	h := float64(r.Viewport.Height)
	shipX := r.Viewport.CenterX() + f.ShipX

	dst.Line(f.Edges.Left, 0, f.Edges.Left, h, edgeLineWidth, EdgeColor)
	dst.Line(f.Edges.Right, 0, f.Edges.Right, h, edgeLineWidth, EdgeColor)
	dst.Line(shipX, 0, shipX, h, shipLineWidth, ShipLineCol)
}

// RoadShade returns the grey of a road quad from the scale of its far edge.
// Quads close to the camera scale past 1 and fade toward black.
func RoadShade(scale float64) color.RGBA {
	v := max(0, min(255, int(110+(1-scale)*80)))
	return color.RGBA{uint8(v), uint8(v), uint8(v), 255}
}

// DashHalfWidth returns the centerline half-width at a cross-section.
func DashHalfWidth(e road.Edges) float64 {
	return max(2, (e.Width()/2)*0.07)
}

// ShipPosition returns the top-left corner of the ship sprite.
func ShipPosition(vp projection.Viewport, shipX float64) (x, y float64) {
	x = float64(vp.Width/2 + int(shipX) - ShipSize/2)
	y = float64(vp.Height - ShipSize - ShipBottomGap)
	return x, y
}

// ShipAngle returns the sprite tilt in degrees: banking against the lateral
// speed plus a slow idle bob.
func ShipAngle(speed, elapsedMs float64) float64 {
	return speed*ShipSpeedAngle + math.Sin(elapsedMs*bobFrequency)*bobAmplitude
}
