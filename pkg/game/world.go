// Package game ties the road, the ship and the player's input into a run.
package game

import (
	"log"

	"github.com/tickBit/fly-game/pkg/input"
	"github.com/tickBit/fly-game/pkg/models"
	"github.com/tickBit/fly-game/pkg/projection"
	"github.com/tickBit/fly-game/pkg/render"
	"github.com/tickBit/fly-game/pkg/road"
	"github.com/tickBit/fly-game/pkg/ui"
	"github.com/tickBit/fly-game/pkg/vehicle"
)

// Lookahead is the depth, in segments, at which the ship is checked
// against the road edges.
const Lookahead = 12

// TicksPerSecond is the fixed simulation rate.
const TicksPerSecond = 60

// World is the complete simulation state of one run.
type World struct {
	Road      *road.Road
	Physics   vehicle.Physics
	CameraPos float64
	State     State
	Debug     bool
	// Ticks counts simulated PLAY ticks and drives the ship's idle bob.
	Ticks    uint64
	Viewport projection.Viewport
	// Edges is the cross-section used by the last boundary check.
	Edges road.Edges
}

// NewWorld starts a run on a road generated from seed.
func NewWorld(seed uint64) *World {
	w := &World{
		Road:     road.NewRoad(seed),
		State:    StatePlay,
		Viewport: projection.DefaultViewport(),
	}
	w.Edges = w.laneEdges()
	return w
}

// Reset starts the run over. The road generator keeps its turn state.
func (w *World) Reset() {
	w.Road.Reset()
	w.CameraPos = 0
	w.Physics.Reset()
	w.State = StatePlay
	w.Edges = w.laneEdges()
	log.Printf("Run reset at tick %d", w.Ticks)
}

// Tick advances the world by one fixed step.
func (w *World) Tick(in input.Intent) {
	w.Debug = in.Debug
	if in.Reset {
		w.Reset()
	}
	if w.State != StatePlay {
		return
	}

	w.Step(in.Steer)
	w.Ticks++
	w.CheckBoundary()
}

// Step moves the camera and the ship forward one tick.
func (w *World) Step(steer vehicle.Steer) {
	w.Physics.SenseCurvature(&w.Road.Segments)

	w.CameraPos += vehicle.CameraSpeed
	w.CameraPos = w.Road.Advance(w.CameraPos, vehicle.Influence(steer))

	w.Physics.Drive(steer)
	w.Road.Shift(vehicle.RoadShift(steer))
}

// CheckBoundary ends the run when the ship is not strictly between the road
// edges at the lookahead depth. It reports whether the run just ended.
func (w *World) CheckBoundary() bool {
	w.Edges = w.laneEdges()
	if !w.Edges.OK {
		return false
	}

	shipX := w.Viewport.CenterX() + w.Physics.Ship.X
	if w.Edges.Contains(shipX) {
		return false
	}

	w.State = StateGameOver
	log.Printf("Left the road at tick %d: ship %.1f outside %.1f..%.1f",
		w.Ticks, shipX, w.Edges.Left, w.Edges.Right)
	return true
}

func (w *World) laneEdges() road.Edges {
	return road.LaneEdges(&w.Road.Segments, w.CameraPos, w.Physics.Ship.X, Lookahead, w.Viewport)
}

// Frame returns a copy of everything the renderer needs.
func (w *World) Frame() render.Frame {
	return render.Frame{
		Segments:  w.Road.Segments,
		CameraPos: w.CameraPos,
		ShipX:     w.Physics.Ship.X,
		ShipSpeed: w.Physics.Ship.Speed,
		ElapsedMs: float64(w.Ticks) * 1000 / TicksPerSecond,
		Debug:     w.Debug,
		GameOver:  w.State == StateGameOver,
		Edges:     w.Edges,
	}
}

// Readout returns the debug values shown on screen.
func (w *World) Readout() ui.Readout {
	return ui.Readout{
		Tick:       w.Ticks,
		State:      w.State.String(),
		CameraPos:  w.CameraPos,
		ShipX:      w.Physics.Ship.X,
		ShipSpeed:  w.Physics.Ship.Speed,
		TurnMemory: w.Physics.TurnMemory,
		Turn:       w.Road.Generator.CurrentTurn,
		TurnFrames: w.Road.Generator.FramesRemaining,
		EdgeIndex:  w.Edges.Index,
		EdgeLeft:   w.Edges.Left,
		EdgeRight:  w.Edges.Right,
	}
}

// Snapshot captures the world so a run can be resumed exactly.
func (w *World) Snapshot() (*models.Snapshot, error) {
	rs, err := w.Road.Generator.RandomState()
	if err != nil {
		return nil, err
	}
	return &models.Snapshot{
		Version:         models.SnapshotVersion,
		Tick:            w.Ticks,
		State:           w.State.String(),
		Segments:        append([]float64(nil), w.Road.Segments[:]...),
		CameraPos:       w.CameraPos,
		ShipX:           w.Physics.Ship.X,
		ShipSpeed:       w.Physics.Ship.Speed,
		TurnMemory:      w.Physics.TurnMemory,
		CurrentTurn:     w.Road.Generator.CurrentTurn,
		FramesRemaining: w.Road.Generator.FramesRemaining,
		RandomState:     rs,
	}, nil
}

// Restore replaces the world with a snapshot. The world is left untouched
// when the snapshot is invalid.
func (w *World) Restore(s *models.Snapshot) error {
	if err := s.Validate(); err != nil {
		return err
	}
	state, err := ParseState(s.State)
	if err != nil {
		return err
	}
	if err := w.Road.Generator.SetRandomState(s.RandomState); err != nil {
		return err
	}

	w.Ticks = s.Tick
	w.State = state
	copy(w.Road.Segments[:], s.Segments)
	w.CameraPos = s.CameraPos
	w.Physics.Ship = vehicle.Ship{X: s.ShipX, Speed: s.ShipSpeed}
	w.Physics.TurnMemory = s.TurnMemory
	w.Road.Generator.CurrentTurn = s.CurrentTurn
	w.Road.Generator.FramesRemaining = s.FramesRemaining
	w.Edges = w.laneEdges()

	log.Printf("Restored run at tick %d (%s)", w.Ticks, w.State)
	return nil
}
