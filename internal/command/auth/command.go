package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/mustdo/internal/command/common"
	"github.com/bornholm/mustdo/internal/core/model"
	"github.com/bornholm/mustdo/internal/session"
	"github.com/bornholm/mustdo/pkg/client"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagUsername = "username"
	flagPassword = "password"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage the user session",
		Subcommands: []*cli.Command{
			credentialsCommand("register", "Create an account and log in", "User created successfully", (*client.Client).Register),
			credentialsCommand("login", "Log in with an existing account", "Login successful", (*client.Client).Login),
			logoutCommand(),
			whoamiCommand(),
		},
	}
}

func credentialsFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagUsername,
			Aliases: []string{"u"},
			EnvVars: []string{"MUSTDO_CLI_USERNAME"},
			Usage:   "Account username (prompted when empty)",
		},
		&cli.StringFlag{
			Name:    flagPassword,
			Aliases: []string{"p"},
			EnvVars: []string{"MUSTDO_CLI_PASSWORD"},
			Usage:   "Account password (prompted when empty)",
		},
	}
}

func credentialsCommand(name, usage, message string, authenticate authenticateFunc) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Flags: credentialsFlags(),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context
			out := cCtx.App.Writer

			username := cCtx.String(flagUsername)
			if username == "" {
				var err error
				username, err = common.Prompt(cCtx.App.Reader, out, "Username: ")
				if err != nil {
					return errors.WithStack(err)
				}
			}

			password := cCtx.String(flagPassword)
			if password == "" {
				var err error
				password, err = common.PromptPassword(out, "Password: ")
				if err != nil {
					return errors.WithStack(err)
				}
			}

			c, server, err := common.GetClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			sess, err := authenticate(c, ctx, username, password)
			if err != nil {
				return errors.WithStack(err)
			}

			if err := common.GetSessionStore(cCtx).Save(session.FromModel(server, sess)); err != nil {
				return errors.Wrap(err, "could not save session")
			}

			slog.DebugContext(ctx, "session saved", slog.String("username", sess.User.Username()), slog.Time("expiresAt", sess.ExpiresAt))

			fmt.Fprintln(out, message)
			fmt.Fprintf(out, "Logged in as %s\n", sess.User.Username())

			return nil
		},
	}
}

func logoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "Close the current session",
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context
			out := cCtx.App.Writer

			c, _, err := common.GetAuthenticatedClient(cCtx)
			if err != nil {
				if errors.Is(err, session.ErrNoSession) {
					fmt.Fprintln(out, "Not logged in")
					return nil
				}

				return errors.WithStack(err)
			}

			if err := c.Logout(ctx); err != nil {
				slog.WarnContext(ctx, "could not notify server of logout", slogx.Error(err))
			}

			if err := common.GetSessionStore(cCtx).Clear(); err != nil {
				return errors.Wrap(err, "could not clear session")
			}

			fmt.Fprintln(out, "Logged out")

			return nil
		},
	}
}

func whoamiCommand() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "Display the current session",
		Action: func(cCtx *cli.Context) error {
			sess, err := common.GetSessionStore(cCtx).Load()
			if err != nil {
				return errors.WithStack(err)
			}

			out := cCtx.App.Writer

			fmt.Fprintf(out, "Username: %s\n", sess.Username)
			fmt.Fprintf(out, "Server:   %s\n", sess.Server)

			if !sess.ExpiresAt.IsZero() {
				fmt.Fprintf(out, "Expires:  %s (%s)\n", humanize.Time(sess.ExpiresAt), sess.ExpiresAt.Local().Format(time.RFC1123))
			}

			return nil
		},
	}
}

type authenticateFunc func(c *client.Client, ctx context.Context, username, password string) (*model.Session, error)
