package cli

import (
	"encoding/json"
	"io"
	"os"

	"github.com/m-mizutani/goerr"
	"github.com/ska-dan/notify/pkg/controller/cli/config"
	"github.com/ska-dan/notify/pkg/domain/model"
	"github.com/ska-dan/notify/pkg/utils/ctxutil"
	"github.com/ska-dan/notify/pkg/utils/logging"
	"github.com/urfave/cli/v2"
)

func cmdDispatch() *cli.Command {
	var (
		eventPath string

		fcmCfg config.FCM
		dbCfg  config.Database
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "event",
			Usage:       "Path to a database trigger event JSON, or - for stdin",
			Aliases:     []string{"e"},
			Destination: &eventPath,
			Value:       "-",
		},
	}
	flags = append(flags, fcmCfg.Flags()...)
	flags = append(flags, dbCfg.Flags()...)

	return &cli.Command{
		Name:  "dispatch",
		Usage: "Dispatch push notifications for one message event and print the result",
		Flags: flags,

		Action: func(c *cli.Context) error {
			var r io.Reader = os.Stdin
			if eventPath != "-" {
				fd, err := os.Open(eventPath)
				if err != nil {
					return goerr.Wrap(err, "failed to open event file").With("path", eventPath)
				}
				defer fd.Close()
				r = fd
			}

			event, err := model.DecodeTriggerEvent(r)
			if err != nil {
				return err
			}

			db, err := dbCfg.Open()
			if err != nil {
				return err
			}
			defer db.Close()

			ctx := ctxutil.WithLogger(c.Context, logging.With("event", eventPath))
			result, err := newUseCases(db, &dbCfg, &fcmCfg).HandleMessageEvent(ctx, event)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(c.App.Writer)
			enc.SetIndent("", "  ")
			if err := enc.Encode(result); err != nil {
				return goerr.Wrap(err, "failed to write result")
			}
			return nil
		},
	}
}
