package tasks

import (
	"fmt"

	"github.com/bornholm/mustdo/internal/command/common"
	"github.com/bornholm/mustdo/internal/ui"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func listCommand() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List tasks, must-do first",
		Flags: []cli.Flag{
			common.TimezoneFlag(),
		},
		Action: func(cCtx *cli.Context) error {
			c, _, err := common.GetAuthenticatedClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			loc, err := common.GetTimezone(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			overview, err := c.Overview(cCtx.Context, loc)
			if err != nil {
				return errors.WithStack(err)
			}

			fmt.Fprintln(cCtx.App.Writer, ui.RenderOverview(overview, ui.WithTaskIDs(true), ui.WithCreatedAt(overview.Now)))

			return nil
		},
	}
}
