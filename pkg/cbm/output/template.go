package output

import (
	"encoding/csv"
	"io"
)

// TemplateFileName is the suggested name of the sample input file.
const TemplateFileName = "sample_bins_template.csv"

// templateRows is a small sample input with an identifier and usage column.
var templateRows = [][]string{
	{"BinID", "Height_cm", "Width_cm", "Depth_cm", "Usage"},
	{"B001", "10", "30", "30", "drawer"},
	{"B002", "12", "20", "30", "non-drawer"},
	{"B003", "8", "25", "30", "drawer"},
}

// WriteTemplate writes the sample input template as CSV.
func WriteTemplate(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(templateRows); err != nil {
		return err
	}
	return cw.Error()
}
