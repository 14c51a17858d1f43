package tui

import (
	"github.com/bornholm/mustdo/internal/command/common"
	"github.com/bornholm/mustdo/internal/ui"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "tui",
		Usage: "Browse and edit tasks interactively",
		Flags: []cli.Flag{
			common.TimezoneFlag(),
		},
		Action: func(cCtx *cli.Context) error {
			c, sess, err := common.GetAuthenticatedClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			loc, err := common.GetTimezone(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			if err := ui.Run(cCtx.Context, c, loc, sess.Username); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}
