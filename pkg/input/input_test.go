package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tickBit/fly-game/pkg/vehicle"
)

func TestResolveSteer(t *testing.T) {
	tests := []struct {
		name        string
		left, right int
		want        vehicle.Steer
	}{
		{"nothing held", 0, 0, vehicle.SteerNone},
		{"left", 4, 0, vehicle.SteerLeft},
		{"right", 0, 1, vehicle.SteerRight},
		{"right pressed later", 30, 2, vehicle.SteerRight},
		{"left pressed later", 2, 30, vehicle.SteerLeft},
		{"same tick", 1, 1, vehicle.SteerLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveSteer(tt.left, tt.right))
		})
	}
}

func TestScript(t *testing.T) {
	s := NewScript(append(Repeat(Intent{Steer: vehicle.SteerLeft}, 2), Intent{Reset: true})...)

	assert.Equal(t, vehicle.SteerLeft, s.Poll().Steer)
	assert.Equal(t, vehicle.SteerLeft, s.Poll().Steer)
	assert.True(t, s.Poll().Reset)
	assert.Equal(t, Intent{}, s.Poll())
	assert.Equal(t, Intent{}, s.Poll())
}
