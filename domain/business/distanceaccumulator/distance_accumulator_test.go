package distanceaccumulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceAccumulator(t *testing.T) {
	accumulator := NewDistanceAccumulator()

	_, err := accumulator.GetAverageDistance()
	assert.ErrorIs(t, err, ErrEmptyAccumulator)

	accumulator.UpdateAccumulator(1.5)
	accumulator.UpdateAccumulator(2.5)
	accumulator.Skip()

	average, err := accumulator.GetAverageDistance()
	require.NoError(t, err)
	assert.Equal(t, 2.0, average)
	assert.Equal(t, 2, accumulator.Counter)
	assert.Equal(t, 1, accumulator.Skipped)
}
