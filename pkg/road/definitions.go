package road

// Road layout.
const (
	NumSegments = 80
	RoadWidth   = 420.0

	// MaxOffset bounds every segment's lateral offset.
	MaxOffset = 900.0

	// Parallax shifts each segment against the ship position, weighted by
	// its projected scale, so the camera appears to follow the ship.
	Parallax = -0.7
)

// Curvature generation.
const (
	// SegmentRandomTurn bounds the random per-segment turn.
	SegmentRandomTurn = 2.0
	// SegmentPlayerInfluence scales the steering bias added to a new turn.
	SegmentPlayerInfluence = 7.5
	// TurnPersistence is how many spawns a chosen turn is held for.
	TurnPersistence = 120
)

// Initial road shape.
const (
	seedFrequency = 0.12
	seedAmplitude = 40.0
)

// Centerline dashes: DashOn segments painted out of every DashPeriod.
const (
	DashPeriod = 6
	DashOn     = 3
)
