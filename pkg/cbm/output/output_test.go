package output

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/cbmcalc-go/pkg/cbm/models"
	"github.com/xuri/excelize/v2"
	"go.yaml.in/yaml/v3"
)

func sampleReport() *models.Report {
	records := []models.Record{
		{ResultRow: models.ResultRow{ID: "B001", HeightCM: 10, WidthCM: 30, DepthCM: 30, VolumeM3: 0.009}, Usage: "drawer"},
		{ResultRow: models.ResultRow{ID: "B002", HeightCM: 40, WidthCM: 50, DepthCM: 60, VolumeM3: 0.12}, Usage: "bulk"},
	}
	return &models.Report{
		Source:    "bins.csv",
		Decimals:  3,
		Threshold: 0.05,
		HasUsage:  true,
		Summary: models.Summary{
			TotalBins: 2, TotalCBM: 0.129, AverageCBM: 0.0645, MedianCBM: 0.0645,
			Box: models.Box{Min: 0.009, Q1: 0.03675, Median: 0.0645, Q3: 0.09225, Max: 0.12, LowerWhisker: 0.009, UpperWhisker: 0.12},
		},
		Records:   records,
		SmallBins: records[:1],
		ByUsage: []models.UsageGroup{
			{Usage: "bulk", TotalCBM: 0.12, AverageCBM: 0.12, Count: 1},
			{Usage: "drawer", TotalCBM: 0.009, AverageCBM: 0.009, Count: 1},
		},
		Histogram: []models.HistogramBin{
			{Lower: 0.009, Upper: 0.0645, Count: 1},
			{Lower: 0.0645, Upper: 0.12, Count: 1},
		},
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleReport()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetCBM, SheetSmallBins, SheetUsageSummary, SheetDistribution, SheetSummary}, f.GetSheetList())

	rows, err := f.GetRows(SheetCBM, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"BinID", "Height_cm", "Width_cm", "Depth_cm", "CBM_m3", "Usage"}, rows[0])
	assert.Equal(t, "B002", rows[2][0])
	assert.Equal(t, "0.12", rows[2][4])

	small, err := f.GetRows(SheetSmallBins)
	require.NoError(t, err)
	require.Len(t, small, 2)
	assert.Equal(t, "B001", small[1][0])

	// Small bins are highlighted on the CBM sheet only.
	highlighted, err := f.GetCellStyle(SheetCBM, "A2")
	require.NoError(t, err)
	plain, err := f.GetCellStyle(SheetCBM, "A3")
	require.NoError(t, err)
	assert.NotEqual(t, highlighted, plain)

	usage, err := f.GetRows(SheetUsageSummary)
	require.NoError(t, err)
	require.Len(t, usage, 3)
	assert.Equal(t, "bulk", usage[1][0])

	summary, err := f.GetRows(SheetSummary, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, summary, 14)
	assert.Equal(t, []string{"Total bins", "2"}, summary[1])
	assert.Equal(t, []string{"Outliers", "0"}, summary[13])
	assert.Equal(t, "Upper whisker (m³)", summary[12][0])
	assert.Equal(t, "0.12", summary[12][1])
}

func TestWriteXLSX_NonFinite(t *testing.T) {
	rep := sampleReport()
	rep.Records[1].VolumeM3 = math.Inf(1)
	rep.Records[1].HeightCM = math.Inf(1)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, rep))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetCBM)
	require.NoError(t, err)
	assert.Equal(t, "+Inf", rows[2][1])
	assert.Equal(t, "+Inf", rows[2][4])
}

func TestWriteXLSX_NoUsage(t *testing.T) {
	rep := sampleReport()
	rep.HasUsage = false
	rep.ByUsage = nil
	rep.Histogram = nil

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, rep))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetCBM, SheetSmallBins, SheetSummary}, f.GetSheetList())
	rows, err := f.GetRows(SheetCBM)
	require.NoError(t, err)
	assert.Len(t, rows[0], 5)
}

func TestToJSON_NonFinite(t *testing.T) {
	rep := sampleReport()
	rep.Records[0].VolumeM3 = math.NaN()
	rep.Records[1].DepthCM = math.Inf(-1)

	data, err := ToJSON(rep, false)
	require.NoError(t, err)

	var decoded struct {
		Records []map[string]interface{} `json:"records"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Nil(t, decoded.Records[0]["cbm_m3"])
	assert.Equal(t, "drawer", decoded.Records[0]["usage"])
	assert.Nil(t, decoded.Records[1]["depth_cm"])
	assert.Equal(t, 0.12, decoded.Records[1]["cbm_m3"])
}

func TestVolumeFormat(t *testing.T) {
	assert.Equal(t, "0", volumeFormat(0))
	assert.Equal(t, "0.000", volumeFormat(3))
	assert.Equal(t, "0.000000", volumeFormat(6))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleReport().Records, true))

	want := "BinID,Height_cm,Width_cm,Depth_cm,CBM_m3,Usage\n" +
		"B001,10,30,30,0.009,drawer\n" +
		"B002,40,50,60,0.12,bulk\n"
	assert.Equal(t, want, buf.String())

	buf.Reset()
	require.NoError(t, WriteCSV(&buf, nil, false))
	assert.Equal(t, "BinID,Height_cm,Width_cm,Depth_cm,CBM_m3\n", buf.String())
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(sampleReport(), false)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	records := decoded["records"].([]interface{})
	first := records[0].(map[string]interface{})
	assert.Equal(t, "B001", first["bin_id"])
	assert.Equal(t, 0.009, first["cbm_m3"])
	assert.Equal(t, "drawer", first["usage"])

	pretty, err := ToJSON(sampleReport(), true)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"source\": \"bins.csv\"")
}

func TestToYAML(t *testing.T) {
	data, err := ToYAML(sampleReport())
	require.NoError(t, err)

	var decoded struct {
		Records []struct {
			ID     string  `yaml:"bin_id"`
			Volume float64 `yaml:"cbm_m3"`
			Usage  string  `yaml:"usage"`
		} `yaml:"records"`
	}
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Len(t, decoded.Records, 2)
	assert.Equal(t, "B002", decoded.Records[1].ID)
	assert.Equal(t, 0.12, decoded.Records[1].Volume)
	assert.Equal(t, "bulk", decoded.Records[1].Usage)
}

func TestWriteTemplate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTemplate(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "BinID,Height_cm,Width_cm,Depth_cm,Usage", lines[0])
	assert.Equal(t, "B002,12,20,30,non-drawer", lines[2])
}
