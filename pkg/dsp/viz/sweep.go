package viz

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

var nyquistColor = color.RGBA{R: 255, G: 64, B: 64, A: 255}

// SweepPlotter draws the folded image band edges against center frequency.
type SweepPlotter struct {
	name        string
	fs          float64
	fc          []float64
	high        []float64
	low         []float64
	plotOptions []PlotOptions
}

func NewSweepPlotter(name string, fs float64) *SweepPlotter {
	return &SweepPlotter{
		name: name,
		fs:   fs,
	}
}

func (sp *SweepPlotter) Name() string {
	return sp.name
}

func (sp *SweepPlotter) Append(fc, errHigh, errLow float64) {
	sp.fc = append(sp.fc, fc)
	sp.high = append(sp.high, errHigh)
	sp.low = append(sp.low, errLow)
}

func (sp *SweepPlotter) Len() int {
	return len(sp.fc)
}

func (sp *SweepPlotter) AddPlotOption(opt PlotOptions) {
	sp.plotOptions = append(sp.plotOptions, opt)
}

func (sp *SweepPlotter) series(ys []float64) plotter.XYs {
	ret := make(plotter.XYs, len(sp.fc))
	for i := range sp.fc {
		ret[i] = plotter.XY{X: sp.fc[i], Y: ys[i]}
	}
	return ret
}

func (sp *SweepPlotter) nyquistLine(sign float64) (*plotter.Line, error) {
	lo, hi := sp.fc[0], sp.fc[len(sp.fc)-1]
	l, err := plotter.NewLine(plotter.XYs{
		{X: lo, Y: sign * sp.fs / 2},
		{X: hi, Y: sign * sp.fs / 2},
	})
	if err != nil {
		return nil, err
	}
	l.Color = nyquistColor
	l.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	return l, nil
}

// WriteTo renders the collected series as a PNG.
func (sp *SweepPlotter) WriteTo(w io.Writer) (int64, error) {
	if len(sp.fc) == 0 {
		return 0, fmt.Errorf("%s: nothing to plot", sp.name)
	}

	p := plotWithDefaults()

	p.Title.Text = sp.name
	p.Y.Label.Text = "Residual (MHz)"
	p.Y.Min = -sp.fs / 2
	p.Y.Max = sp.fs / 2
	p.X.Label.Text = "fc (MHz)"

	for _, opt := range sp.plotOptions {
		opt(p)
	}

	grid := plotter.NewGrid()
	p.Add(grid)

	for _, sign := range []float64{1, -1} {
		l, err := sp.nyquistLine(sign)
		if err != nil {
			return 0, err
		}
		p.Add(l)
	}

	if err := plotutil.AddLinePoints(p,
		"high", sp.series(sp.high),
		"low", sp.series(sp.low),
	); err != nil {
		return 0, err
	}

	wt, err := p.WriterTo(8*vg.Inch, 6*vg.Inch, "png")
	if err != nil {
		return 0, err
	}
	return wt.WriteTo(w)
}
