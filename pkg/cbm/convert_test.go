package cbm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/cbmcalc-go/pkg/cbm/models"
)

// num builds a row of Number cells.
func num(vs ...float64) []models.Cell {
	cells := make([]models.Cell, len(vs))
	for i, v := range vs {
		cells[i] = models.NumberCell(v)
	}
	return cells
}

var hwd = ColumnMapping{Height: "Height", Width: "Width", Depth: "Depth"}

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		headers  []string
		rows     [][]models.Cell
		mapping  ColumnMapping
		decimals int
		wantIDs  []string
		wantVols []float64
	}{
		{
			name:     "rounds to three decimals",
			headers:  []string{"Height", "Width", "Depth"},
			rows:     [][]models.Cell{num(10, 30, 30), num(12, 20, 30)},
			mapping:  hwd,
			decimals: 3,
			wantIDs:  []string{"Row1", "Row2"},
			wantVols: []float64{0.009, 0.007},
		},
		{
			name:     "zero decimals",
			headers:  []string{"Height", "Width", "Depth"},
			rows:     [][]models.Cell{num(100, 100, 100)},
			mapping:  hwd,
			decimals: 0,
			wantIDs:  []string{"Row1"},
			wantVols: []float64{1},
		},
		{
			name:    "numeric identifiers are stringified",
			headers: []string{"BinID", "Height", "Width", "Depth"},
			rows: [][]models.Cell{
				num(101, 10, 10, 10),
				num(102, 20, 20, 20),
			},
			mapping:  ColumnMapping{Identifier: "BinID", Height: "Height", Width: "Width", Depth: "Depth"},
			decimals: 3,
			wantIDs:  []string{"101", "102"},
			wantVols: []float64{0.001, 0.008},
		},
		{
			name:    "text dimensions are coerced",
			headers: []string{"BinID", "H", "W", "D"},
			rows: [][]models.Cell{
				{models.TextCell("B001"), models.TextCell("10"), models.TextCell(" 30 "), models.TextCell("3e1")},
			},
			mapping:  ColumnMapping{Identifier: "BinID", Height: "H", Width: "W", Depth: "D"},
			decimals: 4,
			wantIDs:  []string{"B001"},
			wantVols: []float64{0.009},
		},
		{
			name:     "identifier column not in table synthesizes ids",
			headers:  []string{"Height", "Width", "Depth"},
			rows:     [][]models.Cell{num(10, 10, 10), num(10, 10, 10), num(10, 10, 10)},
			mapping:  ColumnMapping{Identifier: "BinID", Height: "Height", Width: "Width", Depth: "Depth"},
			decimals: 3,
			wantIDs:  []string{"Row1", "Row2", "Row3"},
			wantVols: []float64{0.001, 0.001, 0.001},
		},
		{
			name:     "half to even",
			headers:  []string{"Height", "Width", "Depth"},
			rows:     [][]models.Cell{num(250, 100, 100), num(350, 100, 100), num(50, 100, 100)},
			mapping:  hwd,
			decimals: 0,
			wantIDs:  []string{"Row1", "Row2", "Row3"},
			wantVols: []float64{2, 4, 0},
		},
		{
			name:     "empty table",
			headers:  []string{"Height", "Width", "Depth"},
			mapping:  hwd,
			decimals: 3,
			wantIDs:  []string{},
			wantVols: []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := models.NewTable(tt.headers, tt.rows)

			rows, err := Convert(table, tt.mapping, tt.decimals)
			require.NoError(t, err)
			require.Len(t, rows, len(tt.rows))

			ids := make([]string, len(rows))
			vols := make([]float64, len(rows))
			for i, r := range rows {
				ids[i] = r.ID
				vols[i] = r.VolumeM3
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.wantVols, vols)
		})
	}
}

func TestConvert_KeepsDimensionsAndOrder(t *testing.T) {
	table := models.NewTable(
		[]string{"Depth", "Width", "Height"},
		[][]models.Cell{num(30, 30, 10), num(30, 20, 12), num(40, 40, 40)},
	)

	rows, err := Convert(table, hwd, 6)
	require.NoError(t, err)

	want := []models.ResultRow{
		{ID: "Row1", HeightCM: 10, WidthCM: 30, DepthCM: 30, VolumeM3: 0.009},
		{ID: "Row2", HeightCM: 12, WidthCM: 20, DepthCM: 30, VolumeM3: 0.0072},
		{ID: "Row3", HeightCM: 40, WidthCM: 40, DepthCM: 40, VolumeM3: 0.064},
	}
	assert.Equal(t, want, rows)
}

func TestConvert_VolumeMatchesFormula(t *testing.T) {
	dims := [][3]float64{{10, 30, 30}, {12.5, 20, 30.2}, {33.3, 41.7, 18.9}, {100, 100, 100}}
	rows := make([][]models.Cell, len(dims))
	for i, d := range dims {
		rows[i] = num(d[0], d[1], d[2])
	}
	table := models.NewTable([]string{"Height", "Width", "Depth"}, rows)

	for decimals := 0; decimals <= MaxDecimals; decimals++ {
		got, err := Convert(table, hwd, decimals)
		require.NoError(t, err)
		for i, d := range dims {
			want := RoundHalfEven(d[0]*d[1]*d[2]/1_000_000, decimals)
			assert.Equal(t, want, got[i].VolumeM3, "decimals=%d row=%d", decimals, i+1)
		}
	}
}

func TestConvert_SixDecimalsKeepsPrecision(t *testing.T) {
	table := models.NewTable([]string{"Height", "Width", "Depth"}, [][]models.Cell{
		num(12.5, 20, 30.2),
		num(10, 30, 30),
		num(45, 60, 80),
	})

	rows, err := Convert(table, hwd, 6)
	require.NoError(t, err)
	assert.InDelta(t, 0.00755, rows[0].VolumeM3, 1e-15)
	assert.InDelta(t, 0.009, rows[1].VolumeM3, 1e-15)
	assert.InDelta(t, 0.216, rows[2].VolumeM3, 1e-15)
}

func TestConvert_Idempotent(t *testing.T) {
	table := models.NewTable([]string{"BinID", "Height", "Width", "Depth"}, [][]models.Cell{
		{models.TextCell("A"), models.NumberCell(10), models.NumberCell(20), models.NumberCell(30)},
		{models.TextCell("B"), models.TextCell("15.5"), models.NumberCell(22), models.NumberCell(31)},
	})
	mapping := ColumnMapping{Identifier: "BinID", Height: "Height", Width: "Width", Depth: "Depth"}

	first, err := Convert(table, mapping, 3)
	require.NoError(t, err)
	second, err := Convert(table, mapping, 3)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestConvert_MissingColumn(t *testing.T) {
	tests := []struct {
		name       string
		mapping    ColumnMapping
		wantRole   string
		wantColumn string
	}{
		{"height", ColumnMapping{Height: "H", Width: "Width", Depth: "Depth"}, "height", "H"},
		{"width", ColumnMapping{Height: "Height", Width: "W", Depth: "Depth"}, "width", "W"},
		{"depth", ColumnMapping{Height: "Height", Width: "Width", Depth: "D"}, "depth", "D"},
		{"first missing is reported", ColumnMapping{Height: "Height", Width: "W", Depth: "D"}, "width", "W"},
	}

	table := models.NewTable([]string{"Height", "Width", "Depth"}, [][]models.Cell{
		{models.TextCell("not checked"), models.NumberCell(1), models.NumberCell(1)},
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := Convert(table, tt.mapping, 3)
			assert.Nil(t, rows)
			require.ErrorIs(t, err, ErrMissingColumn)
			assert.NotErrorIs(t, err, ErrNonNumericDimension)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, MissingColumn, verr.Kind)
			assert.Equal(t, tt.wantRole, verr.Role)
			assert.Equal(t, tt.wantColumn, verr.Column)
			assert.Contains(t, verr.Error(), tt.wantColumn)
		})
	}
}

func TestConvert_NonNumericDimension(t *testing.T) {
	tests := []struct {
		name      string
		rows      [][]models.Cell
		wantRow   int
		wantCol   string
		wantValue string
		wantCount int
	}{
		{
			name: "text cell",
			rows: [][]models.Cell{
				num(10, 30, 30),
				{models.NumberCell(12), models.TextCell("abc"), models.NumberCell(30)},
			},
			wantRow:   2,
			wantCol:   "Width",
			wantValue: "abc",
			wantCount: 1,
		},
		{
			name: "missing cell",
			rows: [][]models.Cell{
				{models.NumberCell(10), models.NumberCell(30), models.MissingCell()},
			},
			wantRow:   1,
			wantCol:   "Depth",
			wantValue: "",
			wantCount: 1,
		},
		{
			name: "several bad cells report the first",
			rows: [][]models.Cell{
				num(10, 30, 30),
				num(10, 30, 30),
				{models.TextCell("x"), models.MissingCell(), models.NumberCell(1)},
				{models.NumberCell(1), models.NumberCell(1), models.TextCell("y")},
			},
			wantRow:   3,
			wantCol:   "Height",
			wantValue: "x",
			wantCount: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := models.NewTable([]string{"Height", "Width", "Depth"}, tt.rows)

			rows, err := Convert(table, hwd, 3)
			assert.Nil(t, rows)
			require.ErrorIs(t, err, ErrNonNumericDimension)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, NonNumericDimension, verr.Kind)
			assert.Equal(t, tt.wantRow, verr.Row)
			assert.Equal(t, tt.wantCol, verr.Column)
			assert.Equal(t, tt.wantValue, verr.Value)
			assert.Equal(t, tt.wantCount, verr.Count)
		})
	}
}

func TestRoundHalfEven(t *testing.T) {
	tests := []struct {
		v        float64
		decimals int
		want     float64
	}{
		{0.5, 0, 0},
		{1.5, 0, 2},
		{2.5, 0, 2},
		{-2.5, 0, -2},
		{0.25, 1, 0.2},
		{0.75, 1, 0.8},
		{0.0072, 3, 0.007},
		{0.009, 3, 0.009},
		{1.23456789, 6, 1.234568},
	}

	for _, tt := range tests {
		got := RoundHalfEven(tt.v, tt.decimals)
		if got != tt.want {
			t.Errorf("RoundHalfEven(%v, %d) = %v, want %v", tt.v, tt.decimals, got, tt.want)
		}
	}
}

func TestConvert_RaggedTable(t *testing.T) {
	table := &models.Table{Columns: []models.Column{
		{Name: "Height", Cells: num(10, 12)},
		{Name: "Width", Cells: num(30, 20)},
		{Name: "Depth", Cells: num(30)},
	}}

	rows, err := Convert(table, hwd, 3)
	assert.Nil(t, rows)
	assert.ErrorIs(t, err, models.ErrRaggedTable)
}
