// Package cbm converts bin dimensions in centimetres into volumes in cubic metres.
package cbm

import "fmt"

const (
	// DefaultDecimals is the default rounding precision of volumes.
	DefaultDecimals = 3
	// MaxDecimals is the largest supported rounding precision.
	MaxDecimals = 6
	// DefaultThreshold is the default small-bin limit in cubic metres.
	DefaultThreshold = 0.05
	// DefaultHistogramBins is the default number of distribution buckets.
	DefaultHistogramBins = 30
)

// Options configures a calculation run.
type Options struct {
	// Decimals is the number of fractional digits kept in volumes (0..6).
	Decimals int
	// Threshold marks bins with a volume at or below it as small.
	Threshold float64
	// Mapping overrides the default column mapping. Empty fields keep the default.
	Mapping ColumnMapping
	// Sheet selects the worksheet of an xlsx input. Empty means the first sheet.
	Sheet string
	// Encoding is the character encoding of delimited text input.
	Encoding string
	// Delimiter is the field separator of delimited text input. Zero picks one from the file extension.
	Delimiter rune
	// HistogramBins is the number of buckets of the volume distribution.
	HistogramBins int
}

// DefaultOptions returns default calculation options.
func DefaultOptions() Options {
	return Options{
		Decimals:      DefaultDecimals,
		Threshold:     DefaultThreshold,
		HistogramBins: DefaultHistogramBins,
	}
}

// Validate checks the option ranges.
func (o Options) Validate() error {
	if o.Decimals < 0 || o.Decimals > MaxDecimals {
		return fmt.Errorf("%w: decimals must be between 0 and %d, got %d", ErrInvalidOptions, MaxDecimals, o.Decimals)
	}
	if o.Threshold < 0 {
		return fmt.Errorf("%w: threshold must not be negative, got %g", ErrInvalidOptions, o.Threshold)
	}
	if o.HistogramBins <= 0 {
		return fmt.Errorf("%w: histogram bins must be positive, got %d", ErrInvalidOptions, o.HistogramBins)
	}
	return nil
}
