package cbm

import (
	"fmt"
	"math"

	"github.com/ukaji3/cbmcalc-go/pkg/cbm/models"
)

// CubicCentimetresPerCubicMetre converts cm³ to m³.
const CubicCentimetresPerCubicMetre = 1_000_000.0

// dimension pairs a role with its mapped column.
type dimension struct {
	role   string
	column string
}

// Convert computes the volume of every row of table. It fails with a
// *ValidationError, never a partial result, when a dimension column is
// missing or any dimension cell cannot be read as a number. Tables whose
// columns differ in length are rejected with models.ErrRaggedTable.
// Decimals is expected to be in 0..MaxDecimals.
func Convert(table *models.Table, mapping ColumnMapping, decimals int) ([]models.ResultRow, error) {
	dims := []dimension{
		{"height", mapping.Height},
		{"width", mapping.Width},
		{"depth", mapping.Depth},
	}
	cols := make([]*models.Column, len(dims))
	for i, d := range dims {
		col, ok := table.Column(d.column)
		if !ok {
			return nil, &ValidationError{Kind: MissingColumn, Role: d.role, Column: d.column}
		}
		cols[i] = col
	}
	if err := table.CheckShape(); err != nil {
		return nil, err
	}

	n := table.Len()
	ids := identifiers(table, mapping.Identifier, n)

	// values[i] holds height, width, depth of row i
	values := make([][3]float64, n)
	var bad *ValidationError
	for r := 0; r < n; r++ {
		for i, col := range cols {
			v, ok := col.Cells[r].Float()
			if !ok {
				if bad == nil {
					bad = &ValidationError{
						Kind:   NonNumericDimension,
						Role:   dims[i].role,
						Column: dims[i].column,
						Row:    r + 1,
						Value:  col.Cells[r].String(),
					}
				}
				bad.Count++
				continue
			}
			values[r][i] = v
		}
	}
	if bad != nil {
		return nil, bad
	}

	rows := make([]models.ResultRow, n)
	for r, v := range values {
		rows[r] = models.ResultRow{
			ID:       ids[r],
			HeightCM: v[0],
			WidthCM:  v[1],
			DepthCM:  v[2],
			VolumeM3: RoundHalfEven(v[0]*v[1]*v[2]/CubicCentimetresPerCubicMetre, decimals),
		}
	}
	return rows, nil
}

// identifiers returns the string form of the identifier column, or
// "Row1", "Row2", ... when no such column is mapped or present.
func identifiers(table *models.Table, column string, n int) []string {
	ids := make([]string, n)
	if column != "" {
		if col, ok := table.Column(column); ok {
			for r := range ids {
				ids[r] = col.Cells[r].String()
			}
			return ids
		}
	}
	for r := range ids {
		ids[r] = fmt.Sprintf("Row%d", r+1)
	}
	return ids
}

// RoundHalfEven rounds v to decimals fractional digits, resolving ties to
// the even neighbour.
func RoundHalfEven(v float64, decimals int) float64 {
	if decimals == 0 {
		return math.RoundToEven(v)
	}
	scale := math.Pow(10, float64(decimals))
	return math.RoundToEven(v*scale) / scale
}
