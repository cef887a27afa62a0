package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeCost(t *testing.T) {
	tests := []struct {
		name            string
		durationHours   float64
		discountPercent float64
		expected        float64
	}{
		{
			name:            "no discount",
			durationHours:   5,
			discountPercent: 0,
			expected:        50,
		},
		{
			name:            "20 percent discount",
			durationHours:   12,
			discountPercent: 20,
			expected:        96,
		},
		{
			name:            "50 percent discount",
			durationHours:   80,
			discountPercent: 50,
			expected:        400,
		},
		{
			name:            "full discount",
			durationHours:   10,
			discountPercent: 100,
			expected:        0,
		},
		{
			name:            "fractional duration",
			durationHours:   1.5,
			discountPercent: 0,
			expected:        15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost := ComputeCost(tt.durationHours, tt.discountPercent)
			assert.InDelta(t, tt.expected, cost, 1e-9)
		})
	}
}

func TestMeetsMinHours(t *testing.T) {
	tests := []struct {
		name          string
		durationHours float64
		minHours      float64
		expected      bool
	}{
		{
			name:          "zero threshold always passes",
			durationHours: 0.5,
			minHours:      0,
			expected:      true,
		},
		{
			name:          "duration above threshold",
			durationHours: 12,
			minHours:      10,
			expected:      true,
		},
		{
			name:          "duration equal to threshold passes",
			durationHours: 10,
			minHours:      10,
			expected:      true,
		},
		{
			name:          "duration below threshold",
			durationHours: 9.99,
			minHours:      10,
			expected:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MeetsMinHours(tt.durationHours, tt.minHours))
		})
	}
}

func TestMinHoursNotMetError_Message(t *testing.T) {
	err := &MinHoursNotMetError{MinHours: 24}
	assert.Equal(t, "reservation does not meet promotion minimum hours: 24", err.Error())

	err = &MinHoursNotMetError{MinHours: 1.5}
	assert.Equal(t, "reservation does not meet promotion minimum hours: 1.5", err.Error())
}
