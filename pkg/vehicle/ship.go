package vehicle

import "github.com/tickBit/fly-game/pkg/road"

// Ship is the player's lateral state.
type Ship struct {
	X     float64 // offset from screen centre, bounded to ±ShipMaxX
	Speed float64 // lateral speed, damped each tick
}

// Physics owns the ship and the smoothed road curvature pulling it sideways.
type Physics struct {
	Ship       Ship
	TurnMemory float64
}

// Reset puts the ship back in the centre at rest and forgets the curvature.
func (p *Physics) Reset() {
	p.Ship = Ship{}
	p.TurnMemory = 0
}

// RoadTurn estimates the road curvature just ahead of the camera.
func RoadTurn(segments *road.Segments) float64 {
	return (segments[curvatureNear] - segments[curvatureFar]) * CurvatureSampleScale
}

// SenseCurvature folds the current road curvature into the curvature memory.
func (p *Physics) SenseCurvature(segments *road.Segments) {
	p.TurnMemory = p.TurnMemory*(1-TurnSmoothing) + RoadTurn(segments)*TurnSmoothing
}

// Drive applies one tick of steering and drift to the ship.
//
// The steering impulse is applied twice: once before the move and once
// after. Only the first moves the ship this tick; the second carries into
// next tick's speed.
func (p *Physics) Drive(steer Steer) {
	s := &p.Ship

	s.Speed += steer.Float() * SteerForce
	s.Speed -= s.Speed * Drag
	s.Speed *= SpeedRetention

	s.X += s.Speed + p.TurnMemory*TurnPull
	s.X = max(-ShipMaxX, min(ShipMaxX, s.X))

	s.Speed += steer.Float() * SteerForce
	s.Speed -= s.Speed * Drag
}

// Influence returns the road generator bias for a steering signal.
func Influence(steer Steer) float64 {
	return steer.Float() * PlayerInfluenceScale
}

// RoadShift returns how far the road slides against the steering this tick.
func RoadShift(steer Steer) float64 {
	return steer.Float() * RoadShiftPerSteer
}
