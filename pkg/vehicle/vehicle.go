// Package vehicle implements the ship's steering physics and its coupling to
// road curvature.
package vehicle

// Steer is the discrete steering signal for one tick.
type Steer int

const (
	SteerLeft  Steer = -1
	SteerNone  Steer = 0
	SteerRight Steer = 1
)

// Float returns the signal as a multiplier.
func (s Steer) Float() float64 {
	return float64(s)
}

func (s Steer) String() string {
	switch s {
	case SteerLeft:
		return "left"
	case SteerRight:
		return "right"
	default:
		return "none"
	}
}

// Tuning is per tick at 60 Hz.
const (
	CameraSpeed = 0.45

	ShipMaxX       = 320.0
	SteerForce     = 0.8
	Drag           = 0.12
	SpeedRetention = 0.4

	// TurnSmoothing is the weight of the newest curvature sample.
	TurnSmoothing = 0.12
	// TurnPull converts curvature memory into lateral drift per tick.
	TurnPull = 14.0
	// CurvatureSampleScale converts the offset difference of two near
	// segments into a curvature estimate.
	CurvatureSampleScale = 0.01

	// PlayerInfluenceScale converts steer into road generator influence.
	PlayerInfluenceScale = 0.4
	// RoadShiftPerSteer is how far the road slides against the steering.
	RoadShiftPerSteer = 5.0
)

// Near segments sampled for the curvature estimate.
const (
	curvatureNear = 2
	curvatureFar  = 5
)
