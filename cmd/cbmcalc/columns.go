package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/cbmcalc-go/pkg/cbm"
	"github.com/ukaji3/cbmcalc-go/pkg/cbm/parser"
)

var columnsCmd = &cobra.Command{
	Use:   "columns [input]",
	Short: "List the columns of an input file and the default mapping",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := optionsFromConfig()
		if err != nil {
			return err
		}
		table, err := parser.ReadFile(args[0], parser.ReadOptions{
			Sheet:     opts.Sheet,
			Encoding:  opts.Encoding,
			Delimiter: opts.Delimiter,
		})
		if err != nil {
			return cbm.NewInputError(args[0], err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d rows, %d columns\n", table.Len(), len(table.Columns))
		for i, name := range table.ColumnNames() {
			fmt.Fprintf(out, "  %2d  %s\n", i+1, name)
		}

		m := cbm.ResolveMapping(table, opts.Mapping)
		fmt.Fprintln(out, "\nMapping:")
		fmt.Fprintf(out, "  id:     %s\n", orNone(m.Identifier))
		fmt.Fprintf(out, "  height: %s\n", m.Height)
		fmt.Fprintf(out, "  width:  %s\n", m.Width)
		fmt.Fprintf(out, "  depth:  %s\n", m.Depth)
		fmt.Fprintf(out, "  usage:  %s\n", orNone(m.Usage))
		return nil
	},
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func init() {
	addInputFlags(columnsCmd)

	rootCmd.AddCommand(columnsCmd)
}
