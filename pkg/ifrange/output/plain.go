package output

import (
	"bufio"
	"io"

	"github.com/norasector/ifrange/pkg/ifrange"
)

// PlainLine formats a point as (centerFrequency, [errorHigh, errorLow]).
func PlainLine(p ifrange.Point) string {
	return "(" + FormatFloat(p.CenterFreq) + ", [" + FormatFloat(p.ErrorHigh) + ", " + FormatFloat(p.ErrorLow) + "])"
}

func writePlain(w io.Writer, _ float64, points []ifrange.Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		if _, err := bw.WriteString(PlainLine(p) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
