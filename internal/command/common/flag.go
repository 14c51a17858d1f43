package common

import (
	"net/url"
	"time"

	"github.com/bornholm/mustdo/internal/session"
	"github.com/bornholm/mustdo/pkg/client"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	ParamServer     = "server"
	ParamLogLevel   = "log-level"
	ParamDebug      = "debug"
	ParamKeyring    = "keyring"
	ParamSessionDir = "session-dir"
	ParamTimezone   = "tz"
)

const DefaultServer = "http://localhost:5001"

func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    ParamServer,
			Aliases: []string{"s"},
			Value:   DefaultServer,
			EnvVars: []string{"MUSTDO_CLI_SERVER"},
			Usage:   "Mustdo server base url",
		},
		&cli.BoolFlag{
			Name:    ParamDebug,
			Value:   false,
			EnvVars: []string{"MUSTDO_CLI_DEBUG"},
			Usage:   "Toggle debug mode",
		},
		&cli.StringFlag{
			Name:    ParamLogLevel,
			EnvVars: []string{"MUSTDO_CLI_LOG_LEVEL"},
			Usage:   "Set logging level",
			Value:   "warn",
		},
		&cli.BoolFlag{
			Name:    ParamKeyring,
			Value:   false,
			EnvVars: []string{"MUSTDO_CLI_KEYRING"},
			Usage:   "Store the session token in the system keyring",
		},
		&cli.StringFlag{
			Name:    ParamSessionDir,
			EnvVars: []string{"MUSTDO_CLI_SESSION_DIR"},
			Usage:   "Directory of the session file (defaults to the user configuration directory)",
		},
	}
}

func TimezoneFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    ParamTimezone,
		EnvVars: []string{"MUSTDO_CLI_TZ"},
		Usage:   "Time zone used to classify due dates (defaults to the local time zone)",
	}
}

func GetTimezone(ctx *cli.Context) (*time.Location, error) {
	name := ctx.String(ParamTimezone)
	if name == "" {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Wrapf(err, "unknown time zone '%s'", name)
	}

	return loc, nil
}

func GetSessionStore(ctx *cli.Context) *session.Store {
	funcs := []session.OptionFunc{
		session.WithKeyring(ctx.Bool(ParamKeyring)),
	}

	if dir := ctx.String(ParamSessionDir); dir != "" {
		funcs = append(funcs, session.WithDir(dir))
	}

	return session.NewStore(funcs...)
}

// GetClient returns an anonymous client targeting the --server url.
func GetClient(ctx *cli.Context) (*client.Client, string, error) {
	rawServerURL := ctx.String(ParamServer)

	serverURL, err := url.Parse(rawServerURL)
	if err != nil {
		return nil, "", errors.WithStack(err)
	}

	return client.New(
		client.WithBaseURL(serverURL),
	), rawServerURL, nil
}

// GetAuthenticatedClient loads the current session and returns a client
// using its token. The session's server is used unless --server is set.
func GetAuthenticatedClient(ctx *cli.Context) (*client.Client, *session.Session, error) {
	sess, err := GetSessionStore(ctx).Load()
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	rawServerURL := sess.Server
	if ctx.IsSet(ParamServer) || rawServerURL == "" {
		rawServerURL = ctx.String(ParamServer)
	}

	serverURL, err := url.Parse(rawServerURL)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	return client.New(
		client.WithBaseURL(serverURL),
		client.WithToken(sess.Token),
	), sess, nil
}
