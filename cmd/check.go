package cmd

import (
	"errors"
	"fmt"

	"spoolq/core/uucp"

	"github.com/spf13/cobra"
)

var (
	checkStrict bool
	checkJSON   bool
)

// errDamaged is returned by check --strict when any site is damaged.
var errDamaged = errors.New("damaged spool")

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [site...]",
	Short: "Check site spools for damaged batches",
	Long:  `Scans each site and prints its verdict: empty, clean, or damaged with the number of batches missing a D. or a C. file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), args)
		if err != nil {
			return err
		}
		defer a.close()

		sums, err := a.service.ScanAll(cmd.Context())
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}

		damaged := 0
		for _, s := range sums {
			if s.State.Kind == uucp.StateDamaged {
				damaged++
			}
		}

		if checkJSON {
			if err := writeJSON(cmd.OutOrStdout(), sums); err != nil {
				return err
			}
		} else {
			for _, s := range sums {
				fmt.Fprintln(cmd.OutOrStdout(), checkLine(s))
			}
		}

		if checkStrict && damaged > 0 {
			return fmt.Errorf("%w: %d of %d sites", errDamaged, damaged, len(sums))
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "Exit with an error when any site is damaged")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Output JSON")
	RootCmd.AddCommand(checkCmd)
}
