package commands

import (
	"strings"

	"l4d2stats/internal/errcode"
	"l4d2stats/internal/scrapers/anne"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(searchCmd)
}

func renderResults(results []anne.SearchResult) {
	t := newTable()
	t.AppendHeader(table.Row{"Rank", "Name", "Score", "Play time", "Last seen", "Steam ID"})
	for _, r := range results {
		t.AppendRow(table.Row{r.Rank, r.Name, r.Score, r.PlayTime, r.LastSeen, r.SteamID})
	}
	t.Render()
}

var searchCmd = &cobra.Command{
	Use:   "search <keyword...>",
	Short: "Search players by name, showing the top 5 matches.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAnneClient()
		if err != nil {
			return err
		}
		results, err := client.SearchPlayers(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return describe(err)
		}
		renderResults(results)
		return nil
	},
}

// describe turns err into the message a user of the bot would see.
func describe(err error) error {
	return &userError{message: errcode.Describe(err), err: err}
}

type userError struct {
	message string
	err     error
}

func (e *userError) Error() string {
	return e.message
}

func (e *userError) Unwrap() error {
	return e.err
}
