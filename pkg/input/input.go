// Package input turns player controls into per-tick intents.
package input

import "github.com/tickBit/fly-game/pkg/vehicle"

// Intent is one tick's worth of player input.
type Intent struct {
	Steer vehicle.Steer
	Debug bool // held
	Reset bool // edge, on release
	Save  bool // edge
	Load  bool // edge
	Quit  bool
}

// Source produces the intent for the next tick.
type Source interface {
	Poll() Intent
}

// Script replays a fixed list of intents, then idles.
type Script struct {
	Intents []Intent
	pos     int
}

// NewScript returns a source that replays intents in order.
func NewScript(intents ...Intent) *Script {
	return &Script{Intents: intents}
}

// Poll returns the next scripted intent, or the zero intent when exhausted.
func (s *Script) Poll() Intent {
	if s.pos >= len(s.Intents) {
		return Intent{}
	}
	in := s.Intents[s.pos]
	s.pos++
	return in
}

// Repeat returns n copies of in.
func Repeat(in Intent, n int) []Intent {
	out := make([]Intent, n)
	for i := range out {
		out[i] = in
	}
	return out
}

// resolveSteer picks a direction from how long each arrow has been held;
// zero means not held. With both held, the most recent press wins.
func resolveSteer(leftHeld, rightHeld int) vehicle.Steer {
	switch {
	case leftHeld > 0 && rightHeld > 0:
		if leftHeld <= rightHeld {
			return vehicle.SteerLeft
		}
		return vehicle.SteerRight
	case leftHeld > 0:
		return vehicle.SteerLeft
	case rightHeld > 0:
		return vehicle.SteerRight
	default:
		return vehicle.SteerNone
	}
}
