// Package report aggregates computed bin volumes for display and export.
package report

import (
	"math"
	"slices"
	"sort"

	"github.com/ukaji3/cbmcalc-go/pkg/cbm/models"
)

// Records pairs every result row with the usage label of the same source
// row. An empty or unknown usage column leaves Usage blank.
func Records(rows []models.ResultRow, table *models.Table, usageColumn string) []models.Record {
	records := make([]models.Record, len(rows))
	var usage *models.Column
	if usageColumn != "" {
		usage, _ = table.Column(usageColumn)
	}
	for i, row := range rows {
		records[i].ResultRow = row
		if usage != nil && i < len(usage.Cells) {
			records[i].Usage = usage.Cells[i].String()
		}
	}
	return records
}

// Summarize computes the headline figures and box plot statistics over
// the finite volumes. Empty input yields zeros.
func Summarize(records []models.Record) models.Summary {
	s := models.Summary{TotalBins: len(records)}
	volumes := finiteVolumes(records)
	s.NonFiniteBins = len(records) - len(volumes)
	if len(volumes) == 0 {
		return s
	}
	for _, v := range volumes {
		s.TotalCBM += v
	}
	s.AverageCBM = s.TotalCBM / float64(len(volumes))
	s.Box = boxStats(volumes)
	s.MedianCBM = s.Box.Median
	return s
}

// SmallBins returns the records with a volume at or below threshold, in input order.
func SmallBins(records []models.Record, threshold float64) []models.Record {
	small := make([]models.Record, 0)
	for _, r := range records {
		if r.VolumeM3 <= threshold {
			small = append(small, r)
		}
	}
	return small
}

// ByUsage groups records by usage label, sorted by label. Records with a
// blank label form their own group so the group totals add up to the
// summary total.
func ByUsage(records []models.Record) []models.UsageGroup {
	index := make(map[string]int)
	finite := make(map[string]int)
	var groups []models.UsageGroup
	for _, r := range records {
		i, ok := index[r.Usage]
		if !ok {
			i = len(groups)
			index[r.Usage] = i
			groups = append(groups, models.UsageGroup{Usage: r.Usage})
		}
		groups[i].Count++
		if r.Finite() {
			groups[i].TotalCBM += r.VolumeM3
			finite[r.Usage]++
		}
	}
	for i := range groups {
		if n := finite[groups[i].Usage]; n > 0 {
			groups[i].AverageCBM = groups[i].TotalCBM / float64(n)
		}
	}
	sort.Slice(groups, func(a, b int) bool {
		return groups[a].Usage < groups[b].Usage
	})
	return groups
}

// Histogram splits the range of finite volumes into equal-width bins. The
// maximum volume is counted in the last bin; when all volumes are equal, or
// the range is too wide to split, a single bin is returned.
func Histogram(records []models.Record, bins int) []models.HistogramBin {
	volumes := finiteVolumes(records)
	if len(volumes) == 0 || bins <= 0 {
		return nil
	}
	lo, hi := slices.Min(volumes), slices.Max(volumes)
	width := (hi - lo) / float64(bins)
	if width == 0 || !models.IsFinite(width) {
		return []models.HistogramBin{{Lower: lo, Upper: hi, Count: len(volumes)}}
	}

	hist := make([]models.HistogramBin, bins)
	for i := range hist {
		hist[i].Lower = lo + float64(i)*width
		hist[i].Upper = lo + float64(i+1)*width
	}
	hist[bins-1].Upper = hi
	for _, v := range volumes {
		i := int((v - lo) / width)
		i = max(0, min(i, bins-1))
		hist[i].Count++
	}
	return hist
}

// Build assembles a report from the records of one calculation.
func Build(records []models.Record, hasUsage bool, decimals int, threshold float64, bins int) *models.Report {
	rep := &models.Report{
		Decimals:  decimals,
		Threshold: threshold,
		HasUsage:  hasUsage,
		Summary:   Summarize(records),
		Records:   records,
		SmallBins: SmallBins(records, threshold),
		Histogram: Histogram(records, bins),
	}
	if hasUsage {
		rep.ByUsage = ByUsage(records)
	}
	return rep
}

// finiteVolumes returns the finite volumes of records in input order.
func finiteVolumes(records []models.Record) []float64 {
	volumes := make([]float64, 0, len(records))
	for _, r := range records {
		if r.Finite() {
			volumes = append(volumes, r.VolumeM3)
		}
	}
	return volumes
}

// boxStats computes the box plot statistics of non-empty volumes.
func boxStats(volumes []float64) models.Box {
	sorted := slices.Clone(volumes)
	slices.Sort(sorted)

	b := models.Box{
		Min:    sorted[0],
		Q1:     quantile(sorted, 0.25),
		Median: quantile(sorted, 0.5),
		Q3:     quantile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}
	iqr := b.Q3 - b.Q1
	lowFence, highFence := b.Q1-1.5*iqr, b.Q3+1.5*iqr
	b.LowerWhisker, b.UpperWhisker = b.Max, b.Min
	for _, v := range sorted {
		if v < lowFence || v > highFence {
			b.Outliers++
			continue
		}
		b.LowerWhisker = math.Min(b.LowerWhisker, v)
		b.UpperWhisker = math.Max(b.UpperWhisker, v)
	}
	return b
}

// quantile interpolates linearly between the closest ranks of sorted.
func quantile(sorted []float64, p float64) float64 {
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	return sorted[lo] + (pos-float64(lo))*(sorted[hi]-sorted[lo])
}
