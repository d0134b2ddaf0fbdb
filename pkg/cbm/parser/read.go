// Package parser reads bin dimension tables from spreadsheet and delimited text files.
package parser

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/cbmcalc-go/pkg/cbm/models"
)

// ReadOptions configures table acquisition.
type ReadOptions struct {
	// Sheet selects the xlsx worksheet. Empty means the first sheet.
	Sheet string
	// Encoding is the character encoding of delimited text (default UTF-8).
	Encoding string
	// Delimiter is the field separator of delimited text (default ',').
	Delimiter rune
}

func (o ReadOptions) delimiter() rune {
	if o.Delimiter == 0 {
		return ','
	}
	return o.Delimiter
}

// ReadFile reads the table in path, choosing the reader from the file extension.
func ReadFile(path string, opts ReadOptions) (*models.Table, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".xlsx", ".xlsm", ".csv", ".txt", ".tsv":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	switch ext {
	case ".xlsx", ".xlsm":
		return ReadXLSX(f, opts.Sheet)
	case ".tsv":
		if opts.Delimiter == 0 {
			opts.Delimiter = '\t'
		}
	}
	return ReadCSV(f, opts)
}
