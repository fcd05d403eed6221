// Package models holds the serializable form of a running game.
package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/tickBit/fly-game/pkg/road"
	"github.com/tickBit/fly-game/pkg/vehicle"
)

// SnapshotVersion is bumped whenever the saved layout changes.
const SnapshotVersion = 1

// ErrVersion is returned when a snapshot was written by another layout.
var ErrVersion = errors.New("unsupported snapshot version")

// ErrInvalid is returned when a snapshot holds values a running game can
// never reach.
var ErrInvalid = errors.New("invalid snapshot")

// Snapshot captures everything needed to resume a run tick-for-tick.
type Snapshot struct {
	Version int    `json:"version"`
	Tick    uint64 `json:"tick"`
	State   string `json:"state"`

	Segments  []float64 `json:"segments"`
	CameraPos float64   `json:"camera_pos"`

	ShipX      float64 `json:"ship_x"`
	ShipSpeed  float64 `json:"ship_speed"`
	TurnMemory float64 `json:"turn_memory"`

	CurrentTurn     float64 `json:"current_turn"`
	FramesRemaining int     `json:"frames_remaining"`
	RandomState     []byte  `json:"random_state"`

	SavedAt time.Time `json:"saved_at,omitempty"`
}

// SaveToFile saves the snapshot to a JSON file
func (s *Snapshot) SaveToFile(filename string) error {
	s.SavedAt = time.Now()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// LoadFromFile loads a snapshot from a JSON file
func LoadFromFile(filename string) (*Snapshot, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks the version and that every value is one the simulation
// can produce.
func (s *Snapshot) Validate() error {
	if s.Version != SnapshotVersion {
		return fmt.Errorf("%w: %d", ErrVersion, s.Version)
	}

	if len(s.Segments) != road.NumSegments {
		return fmt.Errorf("%w: %d segments, want %d", ErrInvalid, len(s.Segments), road.NumSegments)
	}
	for i, off := range s.Segments {
		if !finite(off) || math.Abs(off) > road.MaxOffset {
			return fmt.Errorf("%w: segment %d offset %v", ErrInvalid, i, off)
		}
	}
	if !finite(s.CameraPos) || s.CameraPos < 0 || s.CameraPos >= 1 {
		return fmt.Errorf("%w: camera position %v", ErrInvalid, s.CameraPos)
	}
	if !finite(s.ShipX) || math.Abs(s.ShipX) > vehicle.ShipMaxX {
		return fmt.Errorf("%w: ship x %v", ErrInvalid, s.ShipX)
	}
	if !finite(s.ShipSpeed) || !finite(s.TurnMemory) || !finite(s.CurrentTurn) {
		return fmt.Errorf("%w: non-finite ship or turn state", ErrInvalid)
	}
	if s.FramesRemaining < 0 || s.FramesRemaining > road.TurnPersistence {
		return fmt.Errorf("%w: frames remaining %d", ErrInvalid, s.FramesRemaining)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
