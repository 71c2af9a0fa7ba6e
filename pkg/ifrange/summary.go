package ifrange

import (
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/norasector/ifrange/pkg/util"
)

type ColumnSummary struct {
	Min  float64 `yaml:"min" json:"min"`
	Max  float64 `yaml:"max" json:"max"`
	Mean float64 `yaml:"mean" json:"mean"`
	Std  float64 `yaml:"std" json:"std"`
}

type Summary struct {
	Count int           `yaml:"count" json:"count"`
	High  ColumnSummary `yaml:"high" json:"high"`
	Low   ColumnSummary `yaml:"low" json:"low"`
	// Tightest is the point whose image band edge comes closest to fs/2.
	Tightest Point   `yaml:"tightest" json:"tightest"`
	Margin   float64 `yaml:"margin" json:"margin"`
}

// Summarize reduces a sweep computed at fs. It returns a zero Summary for an
// empty sweep.
func Summarize(fs float64, points []Point) Summary {
	if len(points) == 0 {
		return Summary{}
	}

	high := make([]float64, len(points))
	low := make([]float64, len(points))
	margins := make([]float64, len(points))
	for i, p := range points {
		high[i] = p.ErrorHigh
		low[i] = p.ErrorLow
		margins[i] = util.NyquistMargin(fs, p.ErrorHigh)
		if m := util.NyquistMargin(fs, p.ErrorLow); m < margins[i] {
			margins[i] = m
		}
	}

	tightest := floats.MinIdx(margins)
	return Summary{
		Count:    len(points),
		High:     summarizeColumn(high),
		Low:      summarizeColumn(low),
		Tightest: points[tightest],
		Margin:   margins[tightest],
	}
}

func summarizeColumn(col []float64) ColumnSummary {
	lo, hi := util.FrequencyRange(col...)
	mean, std := stat.MeanStdDev(col, nil)
	return ColumnSummary{Min: lo, Max: hi, Mean: mean, Std: std}
}

func (s Summary) MarshalZerologObject(e *zerolog.Event) {
	e.Int("count", s.Count).
		Float64("high_min", s.High.Min).
		Float64("high_max", s.High.Max).
		Float64("high_mean", s.High.Mean).
		Float64("low_min", s.Low.Min).
		Float64("low_max", s.Low.Max).
		Float64("low_mean", s.Low.Mean).
		Float64("tightest_fc", s.Tightest.CenterFreq).
		Float64("margin", s.Margin)
}
