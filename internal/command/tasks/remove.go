package tasks

import (
	"fmt"

	"github.com/bornholm/mustdo/internal/command/common"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func removeCommand() *cli.Command {
	return &cli.Command{
		Name:      "rm",
		Aliases:   []string{"delete"},
		Usage:     "Delete a task",
		ArgsUsage: "<task-id>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    flagYes,
				Aliases: []string{"y"},
				Usage:   "Do not ask for confirmation",
			},
		},
		Action: func(cCtx *cli.Context) error {
			c, _, err := common.GetAuthenticatedClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			task, err := common.ResolveTask(cCtx.Context, c, cCtx.Args().First())
			if err != nil {
				return errors.WithStack(err)
			}

			out := cCtx.App.Writer

			if !cCtx.Bool(flagYes) {
				confirmed, err := common.Confirm(cCtx.App.Reader, out, fmt.Sprintf("Are you sure you want to delete \"%s\"?", task.Title()))
				if err != nil {
					return errors.WithStack(err)
				}

				if !confirmed {
					fmt.Fprintln(out, "Aborted")
					return nil
				}
			}

			if err := c.DeleteTask(cCtx.Context, task.ID()); err != nil {
				return errors.WithStack(err)
			}

			fmt.Fprintln(out, "Task deleted successfully")

			return nil
		},
	}
}
