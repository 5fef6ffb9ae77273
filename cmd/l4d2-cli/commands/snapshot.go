package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"l4d2stats/internal/components/telemetry"
	"l4d2stats/internal/scrapers/daidai"

	"github.com/spf13/cobra"
)

var snapshotOut string

func init() {
	snapshotCmd.Flags().StringVarP(&snapshotOut, "out", "o", "snapshot.png", "Where to write the PNG.")
	rootCmd.AddCommand(snapshotCmd)
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <name | steam id> [-o <path/to/out.png>]",
	Short: "Render a player page of the daidai stats site to a PNG.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshotter := daidai.NewSnapshotter(cfg.Daidai, telemetry.SlogAPI{})

		png, err := snapshotter.Snapshot(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return describe(err)
		}
		err = os.WriteFile(snapshotOut, png, 0644)
		if err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
		slog.Info("wrote snapshot", "path", snapshotOut, "bytes", len(png))
		return nil
	},
}
