package commands

import (
	"strconv"

	"l4d2stats/internal/errcode"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(errorsCmd)
}

var errorsCmd = &cobra.Command{
	Use:   "errors [code...]",
	Short: "Print the user-facing message of error codes, every known code when none are given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		codes := errcode.Known()
		if len(args) > 0 {
			codes = codes[:0:0]
			for _, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return err
				}
				codes = append(codes, errcode.Code(n))
			}
		}

		t := newTable()
		t.AppendHeader(table.Row{"Code", "Message"})
		for _, code := range codes {
			t.AppendRow(table.Row{int(code), errcode.Message(code)})
		}
		t.Render()
		return nil
	},
}
