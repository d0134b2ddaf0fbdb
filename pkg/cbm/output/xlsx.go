package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/cbmcalc-go/pkg/cbm/models"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the exported workbook.
const (
	SheetSummary      = "Summary"
	SheetCBM          = "CBM"
	SheetSmallBins    = "Small_Bins"
	SheetUsageSummary = "Usage_Summary"
	SheetDistribution = "Distribution"
)

// highlightColor fills rows at or below the small-bin threshold.
const highlightColor = "#FFEB9C"

// styles holds the style ids shared by the record sheets.
type styles struct {
	header          int
	volume          int
	highlight       int
	highlightVolume int
}

// WriteXLSX writes the report as an xlsx workbook.
func WriteXLSX(w io.Writer, rep *models.Report) error {
	f, err := BuildWorkbook(rep)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Write(w)
}

// BuildWorkbook lays out the report in a new workbook: all records, the
// small bins, and when available the usage breakdown and volume distribution
// with their charts.
func BuildWorkbook(rep *models.Report) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := buildWorkbook(f, rep); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func buildWorkbook(f *excelize.File, rep *models.Report) error {
	st, err := newStyles(f, rep.Decimals)
	if err != nil {
		return err
	}

	if err := f.SetSheetName(f.GetSheetName(0), SheetCBM); err != nil {
		return err
	}
	if err := writeRecords(f, SheetCBM, rep.Records, rep, st, true); err != nil {
		return fmt.Errorf("writing %s: %w", SheetCBM, err)
	}

	if _, err := f.NewSheet(SheetSmallBins); err != nil {
		return err
	}
	if err := writeRecords(f, SheetSmallBins, rep.SmallBins, rep, st, false); err != nil {
		return fmt.Errorf("writing %s: %w", SheetSmallBins, err)
	}

	if len(rep.ByUsage) > 0 {
		if err := writeUsageSummary(f, rep.ByUsage, st); err != nil {
			return fmt.Errorf("writing %s: %w", SheetUsageSummary, err)
		}
	}

	if len(rep.Histogram) > 0 {
		if err := writeDistribution(f, rep.Histogram, rep.Decimals, st); err != nil {
			return fmt.Errorf("writing %s: %w", SheetDistribution, err)
		}
	}

	if err := writeSummary(f, rep, st); err != nil {
		return fmt.Errorf("writing %s: %w", SheetSummary, err)
	}

	f.SetActiveSheet(0)
	return nil
}

func newStyles(f *excelize.File, decimals int) (styles, error) {
	var st styles
	var err error
	numFmt := volumeFormat(decimals)
	fill := excelize.Fill{Type: "pattern", Color: []string{highlightColor}, Pattern: 1}

	if st.header, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err != nil {
		return st, err
	}
	if st.volume, err = f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt}); err != nil {
		return st, err
	}
	if st.highlight, err = f.NewStyle(&excelize.Style{Fill: fill}); err != nil {
		return st, err
	}
	if st.highlightVolume, err = f.NewStyle(&excelize.Style{Fill: fill, CustomNumFmt: &numFmt}); err != nil {
		return st, err
	}
	return st, nil
}

// volumeFormat returns a number format showing decimals fractional digits.
func volumeFormat(decimals int) string {
	if decimals <= 0 {
		return "0"
	}
	return "0." + strings.Repeat("0", decimals)
}

// cellFloat returns v, or its text form when v is infinite or NaN, which
// spreadsheet number cells cannot hold.
func cellFloat(v float64) interface{} {
	if !models.IsFinite(v) {
		return formatFloat(v)
	}
	return v
}

// recordHeader returns the column titles of a record sheet.
func recordHeader(withUsage bool) []interface{} {
	header := []interface{}{"BinID", "Height_cm", "Width_cm", "Depth_cm", "CBM_m3"}
	if withUsage {
		header = append(header, "Usage")
	}
	return header
}

func writeRecords(f *excelize.File, sheet string, records []models.Record, rep *models.Report, st styles, highlight bool) error {
	header := recordHeader(rep.HasUsage)
	if err := writeHeader(f, sheet, header, st); err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}

	for i, r := range records {
		rowNum := i + 2
		values := []interface{}{r.ID, cellFloat(r.HeightCM), cellFloat(r.WidthCM), cellFloat(r.DepthCM), cellFloat(r.VolumeM3)}
		if rep.HasUsage {
			values = append(values, r.Usage)
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", rowNum), &values); err != nil {
			return err
		}

		rowStyle, volStyle := 0, st.volume
		if highlight && r.VolumeM3 <= rep.Threshold {
			rowStyle, volStyle = st.highlight, st.highlightVolume
		}
		if rowStyle != 0 {
			if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("%s%d", lastCol, rowNum), rowStyle); err != nil {
				return err
			}
		}
		volCell := fmt.Sprintf("E%d", rowNum)
		if err := f.SetCellStyle(sheet, volCell, volCell, volStyle); err != nil {
			return err
		}
	}

	if len(records) > 0 {
		ref := fmt.Sprintf("A1:%s%d", lastCol, len(records)+1)
		if err := f.AutoFilter(sheet, ref, nil); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheet, "A", lastCol, 14)
}

func writeHeader(f *excelize.File, sheet string, header []interface{}, st styles) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", st.header); err != nil {
		return err
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func writeUsageSummary(f *excelize.File, groups []models.UsageGroup, st styles) error {
	if _, err := f.NewSheet(SheetUsageSummary); err != nil {
		return err
	}
	header := []interface{}{"Usage", "Total_CBM", "Avg_CBM", "Count"}
	if err := writeHeader(f, SheetUsageSummary, header, st); err != nil {
		return err
	}
	for i, g := range groups {
		values := []interface{}{g.Usage, g.TotalCBM, g.AverageCBM, g.Count}
		if err := f.SetSheetRow(SheetUsageSummary, fmt.Sprintf("A%d", i+2), &values); err != nil {
			return err
		}
	}
	last := len(groups) + 1
	if err := f.SetCellStyle(SheetUsageSummary, "B2", fmt.Sprintf("C%d", last), st.volume); err != nil {
		return err
	}

	return f.AddChart(SheetUsageSummary, "F2", &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       SheetUsageSummary + "!$B$1",
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", SheetUsageSummary, last),
			Values:     fmt.Sprintf("%s!$B$2:$B$%d", SheetUsageSummary, last),
		}},
		Title: []excelize.RichTextRun{{Text: "Total CBM by Usage"}},
	})
}

func writeDistribution(f *excelize.File, hist []models.HistogramBin, decimals int, st styles) error {
	if _, err := f.NewSheet(SheetDistribution); err != nil {
		return err
	}
	header := []interface{}{"Range_m3", "Lower_m3", "Upper_m3", "Count"}
	if err := writeHeader(f, SheetDistribution, header, st); err != nil {
		return err
	}
	prec := decimals + 1
	for i, b := range hist {
		label := fmt.Sprintf("%.*f-%.*f", prec, b.Lower, prec, b.Upper)
		values := []interface{}{label, b.Lower, b.Upper, b.Count}
		if err := f.SetSheetRow(SheetDistribution, fmt.Sprintf("A%d", i+2), &values); err != nil {
			return err
		}
	}
	last := len(hist) + 1

	return f.AddChart(SheetDistribution, "F2", &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       SheetDistribution + "!$D$1",
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", SheetDistribution, last),
			Values:     fmt.Sprintf("%s!$D$2:$D$%d", SheetDistribution, last),
		}},
		Title: []excelize.RichTextRun{{Text: "CBM distribution (m³)"}},
	})
}

func writeSummary(f *excelize.File, rep *models.Report, st styles) error {
	if _, err := f.NewSheet(SheetSummary); err != nil {
		return err
	}
	header := []interface{}{"Metric", "Value"}
	if err := writeHeader(f, SheetSummary, header, st); err != nil {
		return err
	}

	s, b := rep.Summary, rep.Summary.Box
	rows := [][]interface{}{
		{"Total bins", s.TotalBins},
		{"Non-finite bins", s.NonFiniteBins},
		{fmt.Sprintf("Bins with CBM <= %g m³", rep.Threshold), len(rep.SmallBins)},
		{"Total CBM (m³)", s.TotalCBM},
		{"Average CBM (m³)", s.AverageCBM},
		{"Median CBM (m³)", s.MedianCBM},
		{"Min CBM (m³)", b.Min},
		{"Q1 CBM (m³)", b.Q1},
		{"Q3 CBM (m³)", b.Q3},
		{"Max CBM (m³)", b.Max},
		{"Lower whisker (m³)", b.LowerWhisker},
		{"Upper whisker (m³)", b.UpperWhisker},
		{"Outliers", b.Outliers},
	}
	for i, row := range rows {
		if err := f.SetSheetRow(SheetSummary, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}
	// rows 5 to 13 hold volumes
	if err := f.SetCellStyle(SheetSummary, "B5", "B13", st.volume); err != nil {
		return err
	}
	return f.SetColWidth(SheetSummary, "A", "A", 26)
}
