package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/ukaji3/cbmcalc-go/pkg/cbm/models"
)

// WriteCSV writes records with the same columns as the CBM sheet.
func WriteCSV(w io.Writer, records []models.Record, withUsage bool) error {
	cw := csv.NewWriter(w)

	header := []string{"BinID", "Height_cm", "Width_cm", "Depth_cm", "CBM_m3"}
	if withUsage {
		header = append(header, "Usage")
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{r.ID, formatFloat(r.HeightCM), formatFloat(r.WidthCM), formatFloat(r.DepthCM), formatFloat(r.VolumeM3)}
		if withUsage {
			row = append(row, r.Usage)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
