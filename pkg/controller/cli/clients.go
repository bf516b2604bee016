package cli

import (
	"database/sql"

	"github.com/ska-dan/notify/pkg/controller/cli/config"
	"github.com/ska-dan/notify/pkg/infra"
	"github.com/ska-dan/notify/pkg/usecase"
)

func newUseCases(db *sql.DB, dbCfg *config.Database, fcmCfg *config.FCM) *usecase.UseCases {
	clients := infra.New(
		infra.WithUserStore(dbCfg.UserStore(db)),
		infra.WithSecretStore(fcmCfg.SecretStore()),
		infra.WithCredential(fcmCfg.Credential()),
		infra.WithMessaging(fcmCfg.Messaging()),
	)

	return usecase.New(
		usecase.WithClients(clients),
		usecase.WithMaxConcurrency(fcmCfg.MaxConcurrency()),
	)
}
