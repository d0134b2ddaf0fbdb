package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/cbmcalc-go/pkg/cbm/output"
)

var templateOutput string

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Write a sample CSV input template",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if templateOutput == "" || templateOutput == "-" {
			return output.WriteTemplate(cmd.OutOrStdout())
		}

		f, err := os.Create(templateOutput)
		if err != nil {
			return fmt.Errorf("failed to create template: %w", err)
		}
		if err := output.WriteTemplate(f); err != nil {
			f.Close()
			return fmt.Errorf("failed to write template: %w", err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Template written to", templateOutput)
		return nil
	},
}

func init() {
	templateCmd.Flags().StringVarP(&templateOutput, "output", "o", output.TemplateFileName, "output file path (- for stdout)")

	rootCmd.AddCommand(templateCmd)
}
