package ui

import (
	"fmt"
	"image/color"

	"github.com/tickBit/fly-game/pkg/render"
)

const (
	hudSize    = 12
	hudX       = 16
	hudY       = 20
	hudSpacing = 16

	// NoticeTicks is how long a notice stays on screen.
	NoticeTicks = 120
)

var (
	HUDColor    = color.RGBA{200, 200, 200, 255}
	NoticeColor = color.RGBA{150, 200, 255, 255}
)

// Readout is the debug information shown while the debug key is held.
type Readout struct {
	Tick       uint64
	State      string
	CameraPos  float64
	ShipX      float64
	ShipSpeed  float64
	TurnMemory float64
	Turn       float64
	TurnFrames int
	EdgeIndex  int
	EdgeLeft   float64
	EdgeRight  float64
}

// Lines formats the readout one value per line.
func (r Readout) Lines() []string {
	return []string{
		fmt.Sprintf("tick %d  %s", r.Tick, r.State),
		fmt.Sprintf("cam %.2f", r.CameraPos),
		fmt.Sprintf("ship %.1f  speed %.2f", r.ShipX, r.ShipSpeed),
		fmt.Sprintf("memory %.3f", r.TurnMemory),
		fmt.Sprintf("turn %.2f  for %d", r.Turn, r.TurnFrames),
		fmt.Sprintf("edge[%d] %.0f..%.0f", r.EdgeIndex, r.EdgeLeft, r.EdgeRight),
	}
}

// DrawReadout draws the debug readout in the top-left corner.
func DrawReadout(dst render.Surface, r Readout) {
	for i, line := range r.Lines() {
		dst.Text(line, hudX, float64(hudY+i*hudSpacing), hudSize, render.AlignLeft, HUDColor)
	}
}

// Notice is a short message that fades after NoticeTicks.
type Notice struct {
	Text string
	ttl  int
}

// Show replaces the current notice.
func (n *Notice) Show(text string) {
	n.Text = text
	n.ttl = NoticeTicks
}

// Update counts the notice down by one tick.
func (n *Notice) Update() {
	if n.ttl > 0 {
		n.ttl--
	}
}

// Visible reports whether the notice should still be drawn.
func (n *Notice) Visible() bool {
	return n.ttl > 0
}

// Draw renders the notice near the bottom of the screen.
func (n *Notice) Draw(dst render.Surface) {
	if !n.Visible() {
		return
	}
	width, height := dst.Size()
	dst.Text(n.Text, float64(width)/2, float64(height)-24, hudSize, render.AlignCenter, NoticeColor)
}
