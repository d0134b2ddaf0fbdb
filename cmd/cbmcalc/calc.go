package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/cbmcalc-go/pkg/cbm"
	"github.com/ukaji3/cbmcalc-go/pkg/cbm/models"
	"github.com/ukaji3/cbmcalc-go/pkg/cbm/output"
)

var (
	outputPath string
	xlsxPath   string
	format     string
	pretty     bool
)

var calcCmd = &cobra.Command{
	Use:   "calc [input]",
	Short: "Calculate bin volumes from an xlsx or CSV file",
	Long: `calc reads bin dimensions (cm) from an xlsx or CSV file and prints the
volume of every bin in cubic metres together with a summary.

Columns are mapped by name (BinID, Height, Width, Depth, Usage) unless
overridden with the --*-col flags or the columns section of the config file.`,
	Args: cobra.ExactArgs(1),
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().Int("decimals", cbm.DefaultDecimals, "round CBM to this many decimal places (0-6)")
	calcCmd.Flags().Float64("threshold", cbm.DefaultThreshold, "highlight bins with CBM <= threshold (m³)")
	calcCmd.Flags().Int("bins", cbm.DefaultHistogramBins, "number of histogram buckets")
	calcCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file path (default: stdout)")
	calcCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "also write the results workbook to this path")
	calcCmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json, yaml, or csv")
	calcCmd.Flags().BoolVar(&pretty, "pretty", false, "pretty-print JSON output")
	addInputFlags(calcCmd)

	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	opts, err := optionsFromConfig()
	if err != nil {
		return err
	}

	rep, err := cbm.Calculate(inputPath, opts)
	if err != nil {
		var verr *cbm.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("error calculating CBM: %w", err)
		}
		return err
	}
	logf("Calculated %d bins from %s", rep.Summary.TotalBins, rep.Source)

	if outputPath != "" {
		if err := writeReportFile(outputPath, rep); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if err := writeReport(cmd.OutOrStdout(), rep); err != nil {
		return err
	}

	if xlsxPath != "" {
		if err := writeWorkbook(xlsxPath, rep); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
		logf("Workbook written to %s", xlsxPath)
	}
	return nil
}

func writeReport(w io.Writer, rep *models.Report) error {
	switch format {
	case "text":
		return printText(w, rep)
	case "json":
		data, err := output.ToJSON(rep, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		data, err := output.ToYAML(rep)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		_, err = w.Write(data)
		return err
	case "csv":
		return output.WriteCSV(w, rep.Records, rep.HasUsage)
	default:
		return fmt.Errorf("invalid format: %s (must be text, json, yaml, or csv)", format)
	}
}

func writeReportFile(path string, rep *models.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeReport(f, rep); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeWorkbook(path string, rep *models.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := output.WriteXLSX(f, rep); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printText(w io.Writer, rep *models.Report) error {
	d := rep.Decimals
	s := rep.Summary

	fmt.Fprintln(w, "High-level summary")
	fmt.Fprintf(w, "  Total bins:        %d\n", s.TotalBins)
	fmt.Fprintf(w, "  Total CBM (m³):    %.*f\n", d, s.TotalCBM)
	fmt.Fprintf(w, "  Average CBM (m³):  %.*f\n", d, s.AverageCBM)
	fmt.Fprintf(w, "  Median CBM (m³):   %.*f\n", d, s.MedianCBM)
	if s.NonFiniteBins > 0 {
		fmt.Fprintf(w, "  Non-finite bins:   %d (excluded from statistics)\n", s.NonFiniteBins)
	}
	fmt.Fprintf(w, "  Bins with CBM <= %g m³: %d\n", rep.Threshold, len(rep.SmallBins))

	fmt.Fprintln(w, "\nResults")
	for _, r := range rep.Records {
		mark := " "
		if r.VolumeM3 <= rep.Threshold {
			mark = "*"
		}
		line := fmt.Sprintf("%s %-12s %8g %8g %8g  %.*f", mark, r.ID, r.HeightCM, r.WidthCM, r.DepthCM, d, r.VolumeM3)
		if rep.HasUsage {
			line += "  " + r.Usage
		}
		fmt.Fprintln(w, line)
	}

	b := s.Box
	fmt.Fprintln(w, "\nDistribution (box plot)")
	fmt.Fprintf(w, "  min %.*f  q1 %.*f  median %.*f  q3 %.*f  max %.*f\n", d, b.Min, d, b.Q1, d, b.Median, d, b.Q3, d, b.Max)
	fmt.Fprintf(w, "  whiskers %.*f .. %.*f  outliers %d\n", d, b.LowerWhisker, d, b.UpperWhisker, b.Outliers)

	if len(rep.ByUsage) > 0 {
		fmt.Fprintln(w, "\nBreakdown by usage")
		for _, g := range rep.ByUsage {
			fmt.Fprintf(w, "  %-12s total %.*f  avg %.*f  count %d\n", orNone(g.Usage), d, g.TotalCBM, d, g.AverageCBM, g.Count)
		}
	}
	return nil
}
