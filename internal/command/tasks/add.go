package tasks

import (
	"fmt"
	"strings"

	"github.com/bornholm/mustdo/internal/command/common"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func addCommand() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Create a task",
		ArgsUsage: "<title>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagDue,
				Aliases: []string{"d"},
				Usage:   "Due date (YYYY-MM-DD)",
			},
		},
		Action: func(cCtx *cli.Context) error {
			title := strings.Join(cCtx.Args().Slice(), " ")

			dueDate, err := common.ParseDueDate(cCtx.String(flagDue))
			if err != nil {
				return errors.WithStack(err)
			}

			c, _, err := common.GetAuthenticatedClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			task, err := c.CreateTask(cCtx.Context, title, dueDate)
			if err != nil {
				return errors.WithStack(err)
			}

			fmt.Fprintf(cCtx.App.Writer, "Added %s \"%s\"\n", task.ID(), task.Title())

			return nil
		},
	}
}
