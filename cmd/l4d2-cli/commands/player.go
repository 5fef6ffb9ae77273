package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strings"

	"l4d2stats/internal/scrapers/anne"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	playerJSON    bool
	playerSummary bool
)

func init() {
	playerCmd.Flags().BoolVar(&playerJSON, "json", false, "Print the record as JSON.")
	playerCmd.Flags().BoolVar(&playerSummary, "summary", false, "Print the plain text reply the chat bot sends.")
	rootCmd.AddCommand(playerCmd)
}

func renderRecord(record anne.PlayerRecord) {
	fmt.Println(record.KillSummary)

	sections := []struct {
		title string
		value any
	}{
		{"Info", record.Info},
		{"Detail", record.Detail},
		{"Errors", record.Errors},
		{"Infected averages", record.InfectedAverages},
		{"Survivor", record.Survivor},
		{"Infected", record.Infected},
	}
	for _, section := range sections {
		t := newTable()
		t.SetTitle(section.title)
		for _, kv := range fieldsOf(section.value) {
			t.AppendRow(table.Row{kv[0], kv[1]})
		}
		t.Render()
	}
}

// fieldsOf lists the string fields of a sub-record in declaration order,
// labelled by their json tags.
func fieldsOf(value any) [][2]string {
	v := reflect.ValueOf(value)
	if v.Kind() != reflect.Struct {
		return nil
	}
	var ordered [][2]string
	for i := 0; i < v.NumField(); i++ {
		field := v.Type().Field(i)
		if !field.IsExported() || field.Type.Kind() != reflect.String {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = field.Name
		}
		ordered = append(ordered, [2]string{strings.ReplaceAll(name, "_", " "), v.Field(i).String()})
	}
	return ordered
}

var playerCmd = &cobra.Command{
	Use:   "player <steam id | name>",
	Short: "Show the full statistics of a player.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAnneClient()
		if err != nil {
			return err
		}
		record, err := client.PlayerDetail(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return describe(err)
		}

		switch {
		case playerJSON:
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(record)
		case playerSummary:
			fmt.Print(anne.Summary(record))
		default:
			renderRecord(record)
		}
		return nil
	},
}
