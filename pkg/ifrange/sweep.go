package ifrange

import (
	"math"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Sweep steps the center frequency linearly from Start toward End. End itself
// is never reached: step i lands on Start + i/Steps*(End-Start).
type Sweep struct {
	Start float64 `yaml:"start" json:"start"`
	End   float64 `yaml:"end" json:"end"`
	Steps int     `yaml:"steps" json:"steps"`
}

// DefaultSweep covers the 76-96 MHz FM broadcast band.
var DefaultSweep = Sweep{Start: 76, End: 96, Steps: 200}

// Point is a single line of sweep output.
type Point struct {
	Step       int     `yaml:"step" json:"step"`
	CenterFreq float64 `yaml:"center_freq" json:"center_freq"`
	IndexHigh  int     `yaml:"index_high" json:"index_high"`
	ErrorHigh  float64 `yaml:"error_high" json:"error_high"`
	IndexLow   int     `yaml:"index_low" json:"index_low"`
	ErrorLow   float64 `yaml:"error_low" json:"error_low"`
}

func (s Sweep) Validate() error {
	if s.Steps <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "sweep steps %d must be positive", s.Steps)
	}
	for _, f := range []float64{s.Start, s.End} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return errors.Wrapf(ErrInvalidArgument, "sweep endpoint %v must be finite", f)
		}
	}
	return nil
}

func (s Sweep) CenterFreq(i int) float64 {
	return s.Start + float64(i)/float64(s.Steps)*(s.End-s.Start)
}

type Calculator struct {
	plan   Plan
	logger zerolog.Logger
}

type CalculatorOption func(c *Calculator)

func WithPlan(p Plan) CalculatorOption {
	return func(c *Calculator) {
		c.plan = p
	}
}

func WithLogger(logger zerolog.Logger) CalculatorOption {
	return func(c *Calculator) {
		c.logger = logger
	}
}

func NewCalculator(opts ...CalculatorOption) *Calculator {
	c := &Calculator{
		plan:   DefaultPlan,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run computes every step of the sweep against fs. Arguments are checked
// before the first step so a bad configuration never produces partial output.
func (c *Calculator) Run(fs float64, s Sweep) ([]Point, error) {
	if err := CheckSampleRate(fs); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Float64("fs", fs).
		Float64("start", s.Start).
		Float64("end", s.End).
		Int("steps", s.Steps).
		Msg("starting sweep")

	ret := make([]Point, 0, s.Steps)
	for i := 0; i < s.Steps; i++ {
		fc := s.CenterFreq(i)
		r, err := c.plan.Harmonics(fs, fc)
		if err != nil {
			return nil, errors.Wrapf(err, "step %d", i)
		}
		ret = append(ret, Point{
			Step:       i,
			CenterFreq: fc,
			IndexHigh:  r.IndexHigh,
			ErrorHigh:  r.ErrorHigh,
			IndexLow:   r.IndexLow,
			ErrorLow:   r.ErrorLow,
		})
	}

	return ret, nil
}

// Run sweeps s with the default plan.
func (s Sweep) Run(fs float64) ([]Point, error) {
	return NewCalculator().Run(fs, s)
}
