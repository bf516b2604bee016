package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/m-mizutani/gt"
	"github.com/ska-dan/notify/pkg/domain/model"
	"github.com/ska-dan/notify/pkg/infra/postgres"
	"github.com/ska-dan/notify/pkg/utils/testutil"
)

func setupStore(t *testing.T) *postgres.Store {
	dsn := testutil.LoadEnv(t, "TEST_POSTGRES_URL")

	db := gt.R1(sql.Open("postgres", dsn)).NoError(t)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	table := fmt.Sprintf("users_test_%d", time.Now().UnixNano())
	quoted := pq.QuoteIdentifier(table)

	gt.R1(db.ExecContext(ctx, fmt.Sprintf(`CREATE TABLE %s (id TEXT PRIMARY KEY, name TEXT, "fcmToken" TEXT)`, quoted))).NoError(t)
	t.Cleanup(func() {
		db.ExecContext(context.Background(), fmt.Sprintf(`DROP TABLE %s`, quoted))
	})

	gt.R1(db.ExecContext(ctx, fmt.Sprintf(`INSERT INTO %s (id, name, "fcmToken") VALUES
		('u1', 'Alice', 'T1'),
		('u2', 'Bob', 'T2'),
		('u3', 'Carol', NULL),
		('u4', NULL, 'T4')`, quoted))).NoError(t)

	return postgres.New(db, postgres.WithUsersTable(table))
}

func TestGetUsersExcept(t *testing.T) {
	store := setupStore(t)

	ids := gt.R1(store.GetUsersExcept(context.Background(), "u1")).NoError(t)
	slices.Sort(ids)
	gt.Equal(t, ids, []string{"u2", "u3", "u4"})
}

func TestGetTokensFor(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	t.Run("null tokens are excluded", func(t *testing.T) {
		recipients := gt.R1(store.GetTokensFor(ctx, []string{"u2", "u3", "u4"})).NoError(t)
		slices.SortFunc(recipients, func(a, b model.Recipient) int {
			if a.ID < b.ID {
				return -1
			}
			return 1
		})
		gt.Equal(t, recipients, []model.Recipient{
			{ID: "u2", Name: "Bob", FCMToken: "T2"},
			{ID: "u4", Name: "", FCMToken: "T4"},
		})
	})

	t.Run("no ids", func(t *testing.T) {
		recipients := gt.R1(store.GetTokensFor(ctx, nil)).NoError(t)
		gt.A(t, recipients).Length(0)
	})

	t.Run("unknown ids", func(t *testing.T) {
		recipients := gt.R1(store.GetTokensFor(ctx, []string{"nobody"})).NoError(t)
		gt.A(t, recipients).Length(0)
	})
}
