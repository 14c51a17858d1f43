package tasks

import (
	"fmt"

	"github.com/bornholm/mustdo/internal/command/common"
	"github.com/bornholm/mustdo/internal/core/model"
	"github.com/bornholm/mustdo/internal/core/port"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func completeCommand(name string, usage string, completed bool) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "<task-id>",
		Action: func(cCtx *cli.Context) error {
			task, err := updateTask(cCtx, model.PatchCompleted(completed))
			if err != nil {
				return errors.WithStack(err)
			}

			state := "open"
			if task.Completed() {
				state = "completed"
			}

			fmt.Fprintf(cCtx.App.Writer, "\"%s\" is now %s\n", task.Title(), state)

			return nil
		},
	}
}

func editCommand() *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Change the title or the due date of a task",
		ArgsUsage: "<task-id>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagTitle,
				Aliases: []string{"t"},
				Usage:   "New title",
			},
			&cli.StringFlag{
				Name:    flagDue,
				Aliases: []string{"d"},
				Usage:   "New due date (YYYY-MM-DD)",
			},
			&cli.BoolFlag{
				Name:  flagNoDue,
				Usage: "Remove the due date",
			},
		},
		Action: func(cCtx *cli.Context) error {
			var patch model.TaskPatch

			if cCtx.IsSet(flagTitle) {
				title := cCtx.String(flagTitle)
				patch.Title = &title
			}

			switch {
			case cCtx.Bool(flagNoDue) && cCtx.IsSet(flagDue):
				return errors.WithStack(port.NewValidationError("--due and --no-due cannot be used together"))
			case cCtx.Bool(flagNoDue):
				patch.DueDate = model.Some[*model.Date](nil)
			case cCtx.IsSet(flagDue):
				dueDate, err := common.ParseDueDate(cCtx.String(flagDue))
				if err != nil {
					return errors.WithStack(err)
				}
				patch.DueDate = model.Some(dueDate)
			}

			if patch.IsEmpty() {
				return errors.WithStack(port.NewValidationError("Nothing to update, use --title, --due or --no-due"))
			}

			task, err := updateTask(cCtx, patch)
			if err != nil {
				return errors.WithStack(err)
			}

			fmt.Fprintf(cCtx.App.Writer, "Updated \"%s\"\n", task.Title())

			return nil
		},
	}
}

func updateTask(cCtx *cli.Context, patch model.TaskPatch) (model.Task, error) {
	c, _, err := common.GetAuthenticatedClient(cCtx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	task, err := common.ResolveTask(cCtx.Context, c, cCtx.Args().First())
	if err != nil {
		return nil, errors.WithStack(err)
	}

	updated, err := c.UpdateTask(cCtx.Context, task.ID(), patch)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return updated, nil
}
