package cbm

import "slices"

// Default column names looked up by DefaultMapping.
const (
	DefaultIdentifierColumn = "BinID"
	DefaultHeightColumn     = "Height"
	DefaultWidthColumn      = "Width"
	DefaultDepthColumn      = "Depth"
	DefaultUsageColumn      = "Usage"
)

// ColumnMapping assigns table columns to semantic roles.
type ColumnMapping struct {
	// Height, Width and Depth name the dimension columns (required).
	Height string `json:"height" yaml:"height"`
	Width  string `json:"width" yaml:"width"`
	Depth  string `json:"depth" yaml:"depth"`
	// Identifier names the bin id column. Empty synthesizes "Row<n>" ids.
	Identifier string `json:"id,omitempty" yaml:"id,omitempty"`
	// Usage names an auxiliary label column. It is not read by Convert.
	Usage string `json:"usage,omitempty" yaml:"usage,omitempty"`
}

// DefaultMapping picks columns by their conventional names. Dimensions
// without a conventional column fall back to position: height to the first
// column, width to the second and depth to the third when they exist.
func DefaultMapping(columns []string) ColumnMapping {
	var m ColumnMapping
	if len(columns) == 0 {
		return m
	}
	if slices.Contains(columns, DefaultIdentifierColumn) {
		m.Identifier = DefaultIdentifierColumn
	}
	if slices.Contains(columns, DefaultUsageColumn) {
		m.Usage = DefaultUsageColumn
	}
	m.Height = pick(columns, DefaultHeightColumn, 0)
	m.Width = pick(columns, DefaultWidthColumn, 1)
	m.Depth = pick(columns, DefaultDepthColumn, 2)
	return m
}

// Merge returns m with every non-empty field of override applied.
func (m ColumnMapping) Merge(override ColumnMapping) ColumnMapping {
	if override.Height != "" {
		m.Height = override.Height
	}
	if override.Width != "" {
		m.Width = override.Width
	}
	if override.Depth != "" {
		m.Depth = override.Depth
	}
	if override.Identifier != "" {
		m.Identifier = override.Identifier
	}
	if override.Usage != "" {
		m.Usage = override.Usage
	}
	return m
}

func pick(columns []string, name string, pos int) string {
	if slices.Contains(columns, name) {
		return name
	}
	if pos < len(columns) {
		return columns[pos]
	}
	return columns[0]
}
