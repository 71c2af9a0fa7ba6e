package viz

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
)

func TestSweepPlotterEmpty(t *testing.T) {
	sp := NewSweepPlotter("empty", 48)
	_, err := sp.WriteTo(&bytes.Buffer{})
	assert.Error(t, err)
}

func TestSweepPlotter(t *testing.T) {
	sp := NewSweepPlotter("residuals", 48)
	var title string
	sp.AddPlotOption(func(p *plot.Plot) { title = p.Title.Text })
	sp.AddPlotOption(WithTitle("renamed"))

	for i := 0; i < 20; i++ {
		fc := 76 + float64(i)
		sp.Append(fc, float64(i)-10, float64(i)-9.8)
	}
	assert.Equal(t, 20, sp.Len())
	assert.Equal(t, "residuals", sp.Name())

	var buf bytes.Buffer
	n, err := sp.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
	assert.Equal(t, "residuals", title)
}
