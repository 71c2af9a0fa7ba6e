package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/norasector/ifrange/pkg/ifrange"
)

func writeTable(w io.Writer, fs float64, points []ifrange.Point) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Step", "fc", "k high", "Error high", "k low", "Error low"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetCaption(true, "fs = "+FormatFloat(fs))
	for _, p := range points {
		table.Append(record(p))
	}
	table.Render()
	return nil
}
