package config

import (
	"database/sql"
	"log/slog"
	"net/url"

	"github.com/m-mizutani/goerr"
	"github.com/ska-dan/notify/pkg/infra/postgres"
	"github.com/urfave/cli/v2"
)

const databaseCategory = "Database"

type Database struct {
	url        string
	usersTable string
}

func (x *Database) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "database-url",
			Usage:       "PostgreSQL connection URL of the users table",
			Category:    databaseCategory,
			EnvVars:     []string{"SKADAN_NOTIFY_DATABASE_URL", "DATABASE_URL"},
			Destination: &x.url,
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "users-table",
			Usage:       "Table holding id, name and fcmToken of users",
			Category:    databaseCategory,
			EnvVars:     []string{"SKADAN_NOTIFY_USERS_TABLE"},
			Destination: &x.usersTable,
			Value:       postgres.DefaultUsersTable,
		},
	}
}

// Open returns a lazily connected pool. Callers ping it when they want to
// fail fast.
func (x *Database) Open() (*sql.DB, error) {
	db, err := sql.Open("postgres", x.url)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open database").With("host", x.host())
	}
	return db, nil
}

func (x *Database) UserStore(db *sql.DB) *postgres.Store {
	return postgres.New(db, postgres.WithUsersTable(x.usersTable))
}

func (x *Database) host() string {
	u, err := url.Parse(x.url)
	if err != nil {
		return ""
	}
	return u.Host
}

func (x *Database) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("host", x.host()),
		slog.String("users_table", x.usersTable),
	)
}
