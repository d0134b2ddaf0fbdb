package models

// Summary holds the headline figures of a calculation. Volumes that are
// not finite (overflowing or undefined products) are counted in
// NonFiniteBins and left out of every other statistic.
type Summary struct {
	TotalBins     int     `json:"total_bins" yaml:"total_bins"`
	NonFiniteBins int     `json:"non_finite_bins,omitempty" yaml:"non_finite_bins,omitempty"`
	TotalCBM      float64 `json:"total_cbm_m3" yaml:"total_cbm_m3"`
	AverageCBM    float64 `json:"average_cbm_m3" yaml:"average_cbm_m3"`
	MedianCBM     float64 `json:"median_cbm_m3" yaml:"median_cbm_m3"`
	Box           Box     `json:"box" yaml:"box"`
}

// Box holds the five-number summary drawn by a box plot. Quartiles use
// linear interpolation between closest ranks; whiskers reach the furthest
// volumes within 1.5 IQR of the quartiles.
type Box struct {
	Min          float64 `json:"min_cbm_m3" yaml:"min_cbm_m3"`
	Q1           float64 `json:"q1_cbm_m3" yaml:"q1_cbm_m3"`
	Median       float64 `json:"median_cbm_m3" yaml:"median_cbm_m3"`
	Q3           float64 `json:"q3_cbm_m3" yaml:"q3_cbm_m3"`
	Max          float64 `json:"max_cbm_m3" yaml:"max_cbm_m3"`
	LowerWhisker float64 `json:"lower_whisker_cbm_m3" yaml:"lower_whisker_cbm_m3"`
	UpperWhisker float64 `json:"upper_whisker_cbm_m3" yaml:"upper_whisker_cbm_m3"`
	Outliers     int     `json:"outliers" yaml:"outliers"`
}

// UsageGroup aggregates the bins sharing a usage label. Bins without a
// label form a group with an empty Usage. Count includes bins with a
// non-finite volume, the totals do not.
type UsageGroup struct {
	Usage      string  `json:"usage" yaml:"usage"`
	TotalCBM   float64 `json:"total_cbm_m3" yaml:"total_cbm_m3"`
	AverageCBM float64 `json:"average_cbm_m3" yaml:"average_cbm_m3"`
	Count      int     `json:"count" yaml:"count"`
}

// HistogramBin is one equal-width bucket of the volume distribution.
type HistogramBin struct {
	// Lower is the inclusive lower bound in cubic metres.
	Lower float64 `json:"lower" yaml:"lower"`
	// Upper is the exclusive upper bound, inclusive for the last bin.
	Upper float64 `json:"upper" yaml:"upper"`
	Count int     `json:"count" yaml:"count"`
}

// Report is the complete outcome of a calculation run.
type Report struct {
	// Source is the input file name (no path).
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	// Decimals is the rounding precision applied to volumes.
	Decimals int `json:"decimals" yaml:"decimals"`
	// Threshold is the small-bin volume limit in cubic metres.
	Threshold float64 `json:"threshold_cbm_m3" yaml:"threshold_cbm_m3"`
	// HasUsage reports whether a usage column was mapped.
	HasUsage  bool           `json:"has_usage" yaml:"has_usage"`
	Summary   Summary        `json:"summary" yaml:"summary"`
	Records   []Record       `json:"records" yaml:"records"`
	SmallBins []Record       `json:"small_bins" yaml:"small_bins"`
	ByUsage   []UsageGroup   `json:"by_usage,omitempty" yaml:"by_usage,omitempty"`
	Histogram []HistogramBin `json:"histogram,omitempty" yaml:"histogram,omitempty"`
}
