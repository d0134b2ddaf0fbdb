package parser

import (
	"strings"

	"github.com/ukaji3/cbmcalc-go/pkg/cbm/models"
)

// naValues are cell texts read as missing values.
var naValues = map[string]bool{
	"":         true,
	"#N/A":     true,
	"#N/A N/A": true,
	"#NA":      true,
	"-1.#IND":  true,
	"-1.#QNAN": true,
	"-NaN":     true,
	"-nan":     true,
	"1.#IND":   true,
	"1.#QNAN":  true,
	"<NA>":     true,
	"N/A":      true,
	"NA":       true,
	"NULL":     true,
	"NaN":      true,
	"None":     true,
	"n/a":      true,
	"nan":      true,
	"null":     true,
}

// ParseValue converts raw cell text into a typed cell.
// Blank and NA markers become Missing, numbers become Number (keeping the
// source text), anything else is Text.
func ParseValue(s string) models.Cell {
	trimmed := strings.TrimSpace(s)
	if naValues[trimmed] {
		return models.MissingCell()
	}
	if f, ok := models.ParseNumber(trimmed); ok {
		return models.Cell{Kind: models.Number, Num: f, Raw: trimmed}
	}
	return models.TextCell(s)
}

// parseRow converts one row of raw texts, limited to columns [minCol, maxCol].
func parseRow(row []string, minCol, maxCol int) []models.Cell {
	cells := make([]models.Cell, maxCol-minCol+1)
	for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
		cells[colIdx-minCol] = ParseValue(row[colIdx])
	}
	return cells
}
