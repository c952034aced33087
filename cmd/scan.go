package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var scanJSON bool

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan [site...]",
	Short: "Scan site spools and report their queues",
	Long:  `Lists the C. and D. directories of each site, reconciles them into a queue and prints what changed per site.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), args)
		if err != nil {
			return err
		}
		defer a.close()

		sums, err := a.service.ScanAll(cmd.Context())
		if err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}

		if scanJSON {
			return writeJSON(cmd.OutOrStdout(), sums)
		}
		for _, s := range sums {
			fmt.Fprintln(cmd.OutOrStdout(), scanLine(s))
		}
		return nil
	},
}

func init() {
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "Output JSON")
	RootCmd.AddCommand(scanCmd)
}
