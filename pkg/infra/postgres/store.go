package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/m-mizutani/goerr"
	"github.com/ska-dan/notify/pkg/domain/model"
	"github.com/ska-dan/notify/pkg/domain/types"
)

const DefaultUsersTable = "users"

// Store reads users and their push tokens from the application's users table.
type Store struct {
	db    *sql.DB
	table string
}

type Option func(*Store)

func WithUsersTable(table string) Option {
	return func(x *Store) {
		x.table = table
	}
}

func New(db *sql.DB, options ...Option) *Store {
	store := &Store{
		db:    db,
		table: DefaultUsersTable,
	}
	for _, opt := range options {
		opt(store)
	}
	return store
}

func (x *Store) tableName() string {
	return pq.QuoteIdentifier(x.table)
}

func (x *Store) GetUsersExcept(ctx context.Context, userID string) ([]string, error) {
	query := fmt.Sprintf(`SELECT id FROM %s WHERE id <> $1`, x.tableName())
	rows, err := x.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, goerr.Wrap(types.ErrStoreQuery.Wrap(err), "failed to fetch users").With("table", x.table)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, goerr.Wrap(types.ErrStoreQuery.Wrap(err), "failed to scan user id")
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(types.ErrStoreQuery.Wrap(err), "failed to iterate users")
	}

	return ids, nil
}

func (x *Store) GetTokensFor(ctx context.Context, userIDs []string) ([]model.Recipient, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT id, name, "fcmToken" FROM %s WHERE id = ANY($1) AND "fcmToken" IS NOT NULL`, x.tableName())
	rows, err := x.db.QueryContext(ctx, query, pq.Array(userIDs))
	if err != nil {
		return nil, goerr.Wrap(types.ErrStoreQuery.Wrap(err), "failed to fetch push tokens").With("table", x.table)
	}
	defer rows.Close()

	var recipients []model.Recipient
	for rows.Next() {
		var (
			r    model.Recipient
			name sql.NullString
		)
		if err := rows.Scan(&r.ID, &name, &r.FCMToken); err != nil {
			return nil, goerr.Wrap(types.ErrStoreQuery.Wrap(err), "failed to scan recipient")
		}
		r.Name = name.String
		recipients = append(recipients, r)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(types.ErrStoreQuery.Wrap(err), "failed to iterate recipients")
	}

	return recipients, nil
}
