package cbm

import (
	"path/filepath"

	"github.com/ukaji3/cbmcalc-go/pkg/cbm/models"
	"github.com/ukaji3/cbmcalc-go/pkg/cbm/parser"
	"github.com/ukaji3/cbmcalc-go/pkg/cbm/report"
)

// Calculate reads the bin table in path and builds a volume report.
func Calculate(path string, opts Options) (*models.Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	table, err := parser.ReadFile(path, parser.ReadOptions{
		Sheet:     opts.Sheet,
		Encoding:  opts.Encoding,
		Delimiter: opts.Delimiter,
	})
	if err != nil {
		return nil, NewInputError(path, err)
	}

	rep, err := CalculateTable(table, opts)
	if err != nil {
		return nil, err
	}
	rep.Source = filepath.Base(path)
	return rep, nil
}

// CalculateTable converts an in-memory table and builds a volume report.
// The column mapping is the default mapping for the table's columns with
// opts.Mapping applied on top.
func CalculateTable(table *models.Table, opts Options) (*models.Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	mapping := ResolveMapping(table, opts.Mapping)
	rows, err := Convert(table, mapping, opts.Decimals)
	if err != nil {
		return nil, err
	}

	hasUsage := mapping.Usage != "" && table.HasColumn(mapping.Usage)
	records := report.Records(rows, table, mapping.Usage)
	return report.Build(records, hasUsage, opts.Decimals, opts.Threshold, opts.HistogramBins), nil
}

// ResolveMapping returns the default mapping of table with override applied.
func ResolveMapping(table *models.Table, override ColumnMapping) ColumnMapping {
	return DefaultMapping(table.ColumnNames()).Merge(override)
}
