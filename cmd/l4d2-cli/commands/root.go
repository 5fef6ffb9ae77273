package commands

import (
	"context"
	"fmt"
	"os"

	"l4d2stats/internal/components/telemetry"
	"l4d2stats/internal/scrapers/anne"
	"l4d2stats/internal/scrapers/daidai"
	"l4d2stats/lib/configutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type Config struct {
	Anne   anne.Options   `json:"anne" envPrefix:"ANNE_"`
	Daidai daidai.Options `json:"daidai" envPrefix:"DAIDAI_"`
}

var (
	configPath string
	verbose    bool
	dumpDir    string
)

var cfg Config

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.json5", "The config file to read, a .local variant overrides it.")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug reports and every request.")
	rootCmd.PersistentFlags().StringVar(&dumpDir, "dump", "", "Write a transcript of every response to this directory.")
}

var rootCmd = &cobra.Command{
	Use:   "l4d2-cli",
	Short: "l4d2-cli looks up Left 4 Dead 2 player statistics from community stats sites.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		telemetry.InitSlog(verbose)

		var err error
		cfg, err = configutil.Load[Config](configPath)
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		if dumpDir != "" {
			cfg.Anne.HTTP.DumpDir = dumpDir
		}
		return nil
	},
	SilenceUsage: true,
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newAnneClient() (*anne.Client, error) {
	return anne.NewClient(cfg.Anne, telemetry.SlogAPI{})
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}
