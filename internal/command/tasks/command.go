package tasks

import (
	"github.com/urfave/cli/v2"
)

const (
	flagDue   = "due"
	flagTitle = "title"
	flagNoDue = "no-due"
	flagYes   = "yes"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:    "tasks",
		Aliases: []string{"t"},
		Usage:   "Manage tasks",
		Subcommands: []*cli.Command{
			listCommand(),
			addCommand(),
			completeCommand("done", "Mark a task as completed", true),
			completeCommand("undo", "Mark a task as not completed", false),
			editCommand(),
			removeCommand(),
		},
	}
}
