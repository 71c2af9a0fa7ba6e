package ifrange

import (
	"math"

	"github.com/pkg/errors"
)

const (
	// DefaultSampleRate is the modulator rate (192 MHz) decimated by 4.
	DefaultSampleRate = 192.0 / 4

	// IntermediateFreq is the FM broadcast IF in MHz (JIS C6421).
	IntermediateFreq = 10.7

	// HalfBandwidth is half the IF channel width in MHz.
	HalfBandwidth = 0.1

	// maxHarmonic bounds the harmonic index so k*fs stays exact in a float64.
	maxHarmonic = 1 << 53
)

// ErrInvalidArgument is returned for inputs that would otherwise make the
// harmonic search loop forever or produce meaningless results.
var ErrInvalidArgument = errors.New("invalid argument")

// Plan describes the IF image band produced for a given center frequency.
type Plan struct {
	IntermediateFreq float64 `yaml:"intermediate_freq" json:"intermediate_freq"`
	HalfBandwidth    float64 `yaml:"half_bandwidth" json:"half_bandwidth"`
}

var DefaultPlan = Plan{
	IntermediateFreq: IntermediateFreq,
	HalfBandwidth:    HalfBandwidth,
}

func (p Plan) UpperBoundHigh(fc float64) float64 {
	return 2*fc - p.IntermediateFreq + p.HalfBandwidth
}

func (p Plan) UpperBoundLow(fc float64) float64 {
	return 2*fc - p.IntermediateFreq - p.HalfBandwidth
}

// UpperBounds returns both edges of the image band for fc.
func (p Plan) UpperBounds(fc float64) (fh, fl float64) {
	return p.UpperBoundHigh(fc), p.UpperBoundLow(fc)
}

// FrequencyErrorRange folds both edges of the image band for fc against fs
// and returns the residual of each, high edge first.
func (p Plan) FrequencyErrorRange(fs, fc float64) (errHigh, errLow float64, err error) {
	r, err := p.Harmonics(fs, fc)
	if err != nil {
		return 0, 0, err
	}
	return r.ErrorHigh, r.ErrorLow, nil
}

// Harmonics is FrequencyErrorRange that also keeps the harmonic indices.
func (p Plan) Harmonics(fs, fc float64) (Result, error) {
	fh, fl := p.UpperBounds(fc)

	i, errHigh, err := AliasOffset(fs, fh)
	if err != nil {
		return Result{}, errors.Wrapf(err, "upper edge %v of fc %v", fh, fc)
	}
	j, errLow, err := AliasOffset(fs, fl)
	if err != nil {
		return Result{}, errors.Wrapf(err, "lower edge %v of fc %v", fl, fc)
	}

	return Result{
		IndexHigh: i,
		ErrorHigh: errHigh,
		IndexLow:  j,
		ErrorLow:  errLow,
	}, nil
}

// Result holds the folded image band edges for a single center frequency.
type Result struct {
	IndexHigh int
	ErrorHigh float64
	IndexLow  int
	ErrorLow  float64
}

func UpperBoundHigh(fc float64) float64 {
	return DefaultPlan.UpperBoundHigh(fc)
}

func UpperBoundLow(fc float64) float64 {
	return DefaultPlan.UpperBoundLow(fc)
}

func FrequencyErrorRange(fs, fc float64) (errHigh, errLow float64, err error) {
	return DefaultPlan.FrequencyErrorRange(fs, fc)
}

// ImageOffset is the distance of f below the first harmonic of fs.
func ImageOffset(fs, f float64) float64 {
	return fs - f
}

// CheckSampleRate returns ErrInvalidArgument unless fs is finite and positive.
func CheckSampleRate(fs float64) error {
	if math.IsNaN(fs) || math.IsInf(fs, 0) || fs <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "sampling frequency %v must be finite and positive", fs)
	}
	return nil
}

// AliasOffset finds the smallest k >= 1 with |k*fs - target| <= fs/2 and
// returns k together with the signed residual k*fs - target.
//
// Targets below fs/2 have no such k and are rejected, as are non-positive or
// non-finite sampling frequencies.
func AliasOffset(fs, target float64) (int, float64, error) {
	if err := CheckSampleRate(fs); err != nil {
		return 0, 0, err
	}
	if math.IsNaN(target) || math.IsInf(target, 0) {
		return 0, 0, errors.Wrapf(ErrInvalidArgument, "target frequency %v must be finite", target)
	}

	half := fs / 2
	ratio := target / fs
	if ratio < 0 {
		return 0, 0, errors.Wrapf(ErrInvalidArgument, "target frequency %v is negative", target)
	}
	if ratio > maxHarmonic {
		return 0, 0, errors.Wrapf(ErrInvalidArgument, "target frequency %v is beyond harmonic range of %v", target, fs)
	}

	// Every k below ratio-1.5 is more than a full period short of target, so
	// the search can start there without skipping the smallest match.
	start := 1
	if skip := int(math.Floor(ratio - 1.5)); skip > start {
		start = skip
	}
	limit := int(math.Floor(ratio+0.5)) + 1

	for k := start; k <= limit; k++ {
		residual := float64(k)*fs - target
		if math.Abs(residual) <= half {
			return k, residual, nil
		}
	}

	return 0, 0, errors.Wrapf(ErrInvalidArgument, "target frequency %v is below the first nyquist zone of %v", target, fs)
}
