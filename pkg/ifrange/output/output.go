package output

import (
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/norasector/ifrange/pkg/ifrange"
)

// Writer renders a computed sweep.
type Writer interface {
	// Write emits points computed at sampling frequency fs to w.
	Write(w io.Writer, fs float64, points []ifrange.Point) error
}

type WriterFunc func(w io.Writer, fs float64, points []ifrange.Point) error

func (f WriterFunc) Write(w io.Writer, fs float64, points []ifrange.Point) error {
	return f(w, fs, points)
}

// New returns the writer registered for format.
func New(format string) (Writer, error) {
	switch format {
	case "", "plain":
		return WriterFunc(writePlain), nil
	case "csv":
		return WriterFunc(writeCSV), nil
	case "json":
		return WriterFunc(writeJSON), nil
	case "yaml":
		return WriterFunc(writeYAML), nil
	case "table":
		return WriterFunc(writeTable), nil
	case "png":
		return &PlotWriter{Title: "IF image band residuals"}, nil
	}
	return nil, errors.Wrapf(ifrange.ErrInvalidArgument, "unknown output format %q", format)
}

// FormatFloat prints f in the shortest form that parses back to f.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
