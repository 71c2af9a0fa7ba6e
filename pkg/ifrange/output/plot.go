package output

import (
	"io"

	"github.com/norasector/ifrange/pkg/dsp/viz"
	"github.com/norasector/ifrange/pkg/ifrange"
)

// PlotWriter renders the sweep as a PNG image.
type PlotWriter struct {
	Title string
}

func (p *PlotWriter) Write(w io.Writer, fs float64, points []ifrange.Point) error {
	sp := viz.NewSweepPlotter(p.Title, fs)
	for _, pt := range points {
		sp.Append(pt.CenterFreq, pt.ErrorHigh, pt.ErrorLow)
	}
	_, err := sp.WriteTo(w)
	return err
}
