package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats [site...]",
	Short: "Print queue statistics per site",
	Long:  `Scans each site and prints mail, news, missing and invalid batch counts together with the size of the spool.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), args)
		if err != nil {
			return err
		}
		defer a.close()

		sums, err := a.service.ScanAll(cmd.Context())
		if err != nil {
			return fmt.Errorf("stats failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderSummaries(sums))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(statsCmd)
}
