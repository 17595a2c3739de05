package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapacityClassification(t *testing.T) {
	tests := []struct {
		taskCount int64
		level     CapacityLevel
		pct       int
	}{
		{0, CapacityGreen, 0},
		{1, CapacityGreen, 10},
		{3, CapacityGreen, 30},
		{4, CapacityOrange, 40},
		{6, CapacityOrange, 60},
		{7, CapacityRed, 70},
		{10, CapacityRed, 100},
		{15, CapacityRed, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.level, CapacityLevelFor(tt.taskCount), "level for %d tasks", tt.taskCount)
		assert.Equal(t, tt.pct, CapacityPercentage(tt.taskCount), "percentage for %d tasks", tt.taskCount)
	}
}

func TestCapacityOutputsAreIndependent(t *testing.T) {
	// The band flips to red at 7 while the percentage is still 70; the two
	// scales must not be derived from one another.
	assert.Equal(t, CapacityRed, CapacityLevelFor(7))
	assert.Equal(t, 70, CapacityPercentage(7))

	assert.Equal(t, CapacityOrange, CapacityLevelFor(4))
	assert.Equal(t, 40, CapacityPercentage(4))
}

func TestProjectStatusValid(t *testing.T) {
	assert.True(t, StatusInProgress.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.False(t, ProjectStatus("Archived").Valid())
	assert.False(t, ProjectStatus("").Valid())
}
