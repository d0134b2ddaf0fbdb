package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/ukaji3/cbmcalc-go/pkg/cbm"
)

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"decimals":   "decimals",
	"threshold":  "threshold",
	"bins":       "bins",
	"sheet":      "sheet",
	"encoding":   "encoding",
	"delimiter":  "delimiter",
	"id-col":     "columns.id",
	"height-col": "columns.height",
	"width-col":  "columns.width",
	"depth-col":  "columns.depth",
	"usage-col":  "columns.usage",
}

func init() {
	viper.SetDefault("decimals", cbm.DefaultDecimals)
	viper.SetDefault("threshold", cbm.DefaultThreshold)
	viper.SetDefault("bins", cbm.DefaultHistogramBins)
	viper.SetDefault("encoding", "utf-8")
}

// addInputFlags registers the flags controlling how input tables are read
// and mapped.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("sheet", "", "worksheet to read from xlsx input (default: first sheet)")
	cmd.Flags().String("encoding", "utf-8", "character encoding of CSV input (e.g. utf-8, latin1, windows-1252)")
	cmd.Flags().String("delimiter", "", `CSV field delimiter (default "," or tab for .tsv)`)
	cmd.Flags().String("id-col", "", "bin id column (default: BinID if present, else Row<n>)")
	cmd.Flags().String("height-col", "", "height column in cm (default: Height, else first column)")
	cmd.Flags().String("width-col", "", "width column in cm (default: Width, else second column)")
	cmd.Flags().String("depth-col", "", "depth column in cm (default: Depth, else third column)")
	cmd.Flags().String("usage-col", "", "optional usage column (default: Usage if present)")
	cmd.PreRunE = bindFlags
}

// bindFlags binds the flags of the running command to their configuration
// keys, so flags override config file and environment values.
func bindFlags(cmd *cobra.Command, args []string) error {
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || err != nil {
			return
		}
		err = viper.BindPFlag(key, f)
	})
	return err
}

// optionsFromConfig builds calculation options from the merged configuration.
func optionsFromConfig() (cbm.Options, error) {
	opts := cbm.DefaultOptions()
	opts.Decimals = viper.GetInt("decimals")
	opts.Threshold = viper.GetFloat64("threshold")
	opts.HistogramBins = viper.GetInt("bins")
	opts.Sheet = viper.GetString("sheet")
	opts.Encoding = viper.GetString("encoding")
	opts.Mapping = cbm.ColumnMapping{
		Identifier: viper.GetString("columns.id"),
		Height:     viper.GetString("columns.height"),
		Width:      viper.GetString("columns.width"),
		Depth:      viper.GetString("columns.depth"),
		Usage:      viper.GetString("columns.usage"),
	}

	delim, err := parseDelimiter(viper.GetString("delimiter"))
	if err != nil {
		return opts, err
	}
	opts.Delimiter = delim

	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

// parseDelimiter accepts a single character or one of "tab", "\t".
func parseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case "tab", `\t`:
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("invalid delimiter %q: must be a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
