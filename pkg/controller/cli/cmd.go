package cli

import (
	"os"

	"github.com/ska-dan/notify/pkg/controller/cli/config"
	"github.com/ska-dan/notify/pkg/domain/types"
	"github.com/ska-dan/notify/pkg/utils/logging"
	"github.com/urfave/cli/v2"
)

func Run(argv []string) error {
	var (
		logLevel  string
		logFormat string

		sentryCfg config.Sentry
	)

	app := cli.App{
		Name:    "skadan-notify",
		Usage:   "Push notification dispatcher for SKA-DAN chat messages",
		Version: types.AppVersion,

		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level (debug, info, warn, error)",
				EnvVars:     []string{"SKADAN_NOTIFY_LOG_LEVEL"},
				Destination: &logLevel,
				Value:       "info",
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Log format (console, json)",
				EnvVars:     []string{"SKADAN_NOTIFY_LOG_FORMAT"},
				Destination: &logFormat,
				Value:       "console",
			},
		}, sentryCfg.Flags()...),

		Before: func(c *cli.Context) error {
			if err := logging.Configure(os.Stdout, logLevel, logFormat); err != nil {
				return err
			}
			if err := sentryCfg.Configure(); err != nil {
				return err
			}
			return nil
		},

		Commands: []*cli.Command{
			cmdServe(),
			cmdDispatch(),
		},
	}

	if err := app.Run(argv); err != nil {
		logging.Default().Error("exit with failure", "err", err)
		return err
	}

	return nil
}
