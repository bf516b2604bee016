package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/opac"
	"github.com/ska-dan/notify/pkg/controller/cli/config"
	"github.com/ska-dan/notify/pkg/controller/server"
	"github.com/ska-dan/notify/pkg/utils/logging"
	"github.com/urfave/cli/v2"
)

func cmdServe() *cli.Command {
	var (
		addr          string
		triggerSecret string
		policyFiles   cli.StringSlice

		fcmCfg config.FCM
		dbCfg  config.Database
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Aliases:     []string{"a"},
			EnvVars:     []string{"SKADAN_NOTIFY_ADDR"},
			Destination: &addr,
			Value:       "127.0.0.1:8080",
		},
		&cli.StringFlag{
			Name:        "trigger-jwt-secret",
			Usage:       "HS256 secret of bearer JWTs sent by the database webhook. Requests are not authenticated if empty",
			EnvVars:     []string{"SKADAN_NOTIFY_TRIGGER_JWT_SECRET"},
			Destination: &triggerSecret,
		},
		&cli.StringSliceFlag{
			Name:        "policy-file",
			Usage:       "Rego policy file path evaluated as data.auth",
			Aliases:     []string{"p"},
			EnvVars:     []string{"SKADAN_NOTIFY_POLICY_FILE"},
			Destination: &policyFiles,
		},
	}
	flags = append(flags, fcmCfg.Flags()...)
	flags = append(flags, dbCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Usage:   "Start HTTP server receiving message insert events",
		Aliases: []string{"s"},
		Flags:   flags,

		Action: func(c *cli.Context) error {
			logging.Default().Info("starting server",
				"addr", addr,
				"fcm", &fcmCfg,
				"database", &dbCfg,
				"policy_files", policyFiles.Value(),
			)

			db, err := dbCfg.Open()
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.PingContext(c.Context); err != nil {
				return goerr.Wrap(err, "failed to connect database").With("database", &dbCfg)
			}

			var serverOptions []server.Option
			if triggerSecret != "" {
				serverOptions = append(serverOptions, server.WithTriggerSecret(triggerSecret))
			}
			if len(policyFiles.Value()) > 0 {
				policy, err := opac.New(opac.Files(policyFiles.Value()...))
				if err != nil {
					return goerr.Wrap(err, "failed to load policy files").With("files", policyFiles.Value())
				}
				serverOptions = append(serverOptions, server.WithPolicy(policy))
			}

			uc := newUseCases(db, &dbCfg, &fcmCfg)

			s := &http.Server{
				Addr:              addr,
				ReadHeaderTimeout: 3 * time.Second,
				Handler:           server.New(uc, serverOptions...),
			}

			errCh := make(chan error, 1)

			go func() {
				if err := s.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to listen")
				}
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			select {
			case sig := <-sigCh:
				logging.Default().Info("shutting down server", "signal", sig)
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := s.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server").With("signal", sig)
				}

			case err := <-errCh:
				return err
			}

			return nil
		},
	}
}
