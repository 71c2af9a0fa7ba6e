package output

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"gopkg.in/yaml.v2"

	"github.com/norasector/ifrange/pkg/ifrange"
)

var csvHeader = []string{"step", "center_freq", "index_high", "error_high", "index_low", "error_low"}

func record(p ifrange.Point) []string {
	return []string{
		strconv.Itoa(p.Step),
		FormatFloat(p.CenterFreq),
		strconv.Itoa(p.IndexHigh),
		FormatFloat(p.ErrorHigh),
		strconv.Itoa(p.IndexLow),
		FormatFloat(p.ErrorLow),
	}
}

func writeCSV(w io.Writer, _ float64, points []ifrange.Point) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, p := range points {
		if err := cw.Write(record(p)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, _ float64, points []ifrange.Point) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(points)
}

func writeYAML(w io.Writer, _ float64, points []ifrange.Point) error {
	b, err := yaml.Marshal(points)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
