package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseScoringMode(t *testing.T) {
	tests := []struct {
		in   string
		want ScoringMode
		ok   bool
	}{
		{"", ScoringDepth, true},
		{"depth", ScoringDepth, true},
		{"flat", ScoringFlat, true},
		{"steep", ScoringDepth, false},
	}
	for _, tt := range tests {
		got, ok := ParseScoringMode(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

func TestStateNames(t *testing.T) {
	assert.Equal(t, "Climbing", Climbing.String())
	assert.Equal(t, "Goto", Goto.String())
	assert.Equal(t, "Unknown", PlayerStateID(99).String())
}

func TestBandsFitTheGrowth(t *testing.T) {
	// Levels grow by whole rooms so bands stay aligned.
	assert.Zero(t, int(Level.GrowHeight)%int(Level.RoomHeight))
	assert.Zero(t, int(Level.BaseHeight)%int(Level.RoomHeight))
}
