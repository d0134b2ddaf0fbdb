package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/cbmcalc-go/pkg/cbm/models"
)

// BuildTable turns raw rows into a table. Blank rows and the empty columns
// around the data are ignored; the first remaining row is the header.
func BuildTable(rows [][]string) (*models.Table, error) {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil, ErrEmptyTable
	}

	var header []string
	if minCol < len(rows[minRow]) {
		header = rows[minRow][minCol:min(maxCol+1, len(rows[minRow]))]
	}
	headers := NormalizeHeaders(header, maxCol-minCol+1)

	data := make([][]models.Cell, 0, maxRow-minRow)
	for rowIdx := minRow + 1; rowIdx <= maxRow; rowIdx++ {
		if isBlank(rows[rowIdx]) {
			continue
		}
		data = append(data, parseRow(rows[rowIdx], minCol, maxCol))
	}

	return models.NewTable(headers, data), nil
}

// NormalizeHeaders trims header names, names blank headers "Unnamed: <i>"
// and suffixes repeated names with ".1", ".2", ... The result has width entries.
func NormalizeHeaders(header []string, width int) []string {
	names := make([]string, width)
	seen := make(map[string]int, width)
	for i := range names {
		name := ""
		if i < len(header) {
			name = strings.TrimSpace(header[i])
		}
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		base := name
		for seen[name] > 0 {
			name = fmt.Sprintf("%s.%d", base, seen[base])
			seen[base]++
		}
		seen[name]++
		names[i] = name
	}
	return names
}

// findDataBounds finds the bounding box of non-blank cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if strings.TrimSpace(cell) != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
