package util

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrequencyRange(t *testing.T) {
	low, high := FrequencyRange(2.6, -11, 23.9, 0)
	assert.Equal(t, -11.0, low)
	assert.Equal(t, 23.9, high)

	low, high = FrequencyRange()
	assert.True(t, math.IsInf(low, 1))
	assert.True(t, math.IsInf(high, -1))
}

func TestNyquistMargin(t *testing.T) {
	assert.Equal(t, 0.0, NyquistMargin(48, 24))
	assert.Equal(t, 0.0, NyquistMargin(48, -24))
	assert.Equal(t, 21.0, NyquistMargin(48, -3))
}

func TestTimeOperationMicroseconds(t *testing.T) {
	want := errors.New("boom")
	elapsed, err := TimeOperationMicroseconds(func() error { return want })
	assert.Equal(t, want, err)
	assert.GreaterOrEqual(t, elapsed, int64(0))
}
