package ifrange

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepCenterFreq(t *testing.T) {
	assert.Equal(t, 76.0, DefaultSweep.CenterFreq(0))
	assert.InDelta(t, 76.1, DefaultSweep.CenterFreq(1), epsilon)
	assert.InDelta(t, 95.9, DefaultSweep.CenterFreq(199), epsilon)
	assert.Equal(t, 76+float64(199)/200*20, DefaultSweep.CenterFreq(199))
}

func TestDefaultSweep(t *testing.T) {
	points, err := DefaultSweep.Run(DefaultSampleRate)
	require.NoError(t, err)
	require.Len(t, points, 200)

	first := points[0]
	assert.Equal(t, 0, first.Step)
	assert.Equal(t, 76.0, first.CenterFreq)
	assert.Equal(t, 3, first.IndexHigh)
	assert.Equal(t, 3, first.IndexLow)
	assert.InDelta(t, 2.6, first.ErrorHigh, epsilon)
	assert.InDelta(t, 2.8, first.ErrorLow, epsilon)

	last := points[199]
	assert.Equal(t, 199, last.Step)
	assert.InDelta(t, 95.9, last.CenterFreq, epsilon)
	errHigh, errLow, err := FrequencyErrorRange(DefaultSampleRate, last.CenterFreq)
	require.NoError(t, err)
	assert.Equal(t, errHigh, last.ErrorHigh)
	assert.Equal(t, errLow, last.ErrorLow)
	assert.Equal(t, 4, last.IndexHigh)
	assert.InDelta(t, 10.8, last.ErrorHigh, epsilon)
	assert.InDelta(t, 11.0, last.ErrorLow, epsilon)

	for i, p := range points {
		assert.Equal(t, i, p.Step)
		assert.LessOrEqual(t, p.ErrorHigh, DefaultSampleRate/2)
		assert.GreaterOrEqual(t, p.ErrorHigh, -DefaultSampleRate/2)
		assert.LessOrEqual(t, p.ErrorLow, DefaultSampleRate/2)
		assert.GreaterOrEqual(t, p.ErrorLow, -DefaultSampleRate/2)
	}
}

func TestSweepRestartable(t *testing.T) {
	a, err := DefaultSweep.Run(DefaultSampleRate)
	require.NoError(t, err)
	b, err := DefaultSweep.Run(DefaultSampleRate)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSweepInvalid(t *testing.T) {
	tests := []struct {
		name  string
		fs    float64
		sweep Sweep
	}{
		{"zero fs", 0, DefaultSweep},
		{"negative fs", -48, DefaultSweep},
		{"no steps", 48, Sweep{Start: 76, End: 96}},
		{"image band below first zone", 48, Sweep{Start: 0, End: 96, Steps: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := NewCalculator().Run(tt.fs, tt.sweep)
			assert.Nil(t, points)
			assert.True(t, errors.Is(err, ErrInvalidArgument), "got %v", err)
		})
	}
}

func TestCalculatorWithPlan(t *testing.T) {
	calc := NewCalculator(WithPlan(Plan{IntermediateFreq: 10.7}))
	points, err := calc.Run(48, Sweep{Start: 76, End: 96, Steps: 2})
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, points[0].ErrorHigh, points[0].ErrorLow)
	assert.InDelta(t, 2.7, points[0].ErrorHigh, epsilon)
}
