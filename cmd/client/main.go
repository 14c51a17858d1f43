package main

import (
	"github.com/bornholm/mustdo/internal/command"
	"github.com/bornholm/mustdo/internal/command/auth"
	"github.com/bornholm/mustdo/internal/command/tasks"
	"github.com/bornholm/mustdo/internal/command/tui"

	_ "time/tzdata"
)

func main() {
	command.Main(
		"mustdo", "a mustdo client tool",
		auth.Command(),
		tasks.Command(),
		tui.Command(),
	)
}
