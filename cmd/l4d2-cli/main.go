package main

import (
	"l4d2stats/cmd/l4d2-cli/commands"
	"l4d2stats/lib/serviceutil"
)

func main() {
	commands.ExecuteContext(serviceutil.SignalContext())
}
