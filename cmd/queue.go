package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// queueCmd represents the queue command
var queueCmd = &cobra.Command{
	Use:   "queue <site>",
	Short: "List the batches queued for a site",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), args)
		if err != nil {
			return err
		}
		defer a.close()

		if _, err := a.service.Scan(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}
		entities, err := a.service.Entities(args[0])
		if err != nil {
			return err
		}

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), entities)
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderEntities(entities))
		return nil
	},
}

func init() {
	queueCmd.Flags().Bool("json", false, "Output JSON")
	RootCmd.AddCommand(queueCmd)
}
