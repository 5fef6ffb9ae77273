package commands

import (
	"github.com/spf13/cobra"
)

var topLimit int

func init() {
	topCmd.Flags().IntVarP(&topLimit, "limit", "n", 0, "Number of rows to show, overrides anne.top_limit.")
	rootCmd.AddCommand(topCmd)
}

var topCmd = &cobra.Command{
	Use:   "top [-n <rows>]",
	Short: "Show the top of the coop ranking.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if topLimit > 0 {
			cfg.Anne.TopLimit = topLimit
		}
		client, err := newAnneClient()
		if err != nil {
			return err
		}
		results, err := client.Top(cmd.Context())
		if err != nil {
			return describe(err)
		}
		renderResults(results)
		return nil
	},
}
