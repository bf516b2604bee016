package cli_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/ska-dan/notify/pkg/controller/cli"
	"github.com/ska-dan/notify/pkg/domain/types"
)

// Never dialed: both cases finish before the user store is queried.
const unreachableDatabase = "postgres://skadan@127.0.0.1:1/skadan?sslmode=disable"

func TestDispatchIgnoresUpdate(t *testing.T) {
	gt.NoError(t, cli.Run([]string{
		"skadan-notify",
		"--log-format", "json",
		"dispatch",
		"--database-url", unreachableDatabase,
		"--event", "testdata/update_event.json",
	}))
}

func TestDispatchWithoutServiceAccount(t *testing.T) {
	t.Setenv("FCM_SERVICE_ACCOUNT", "")
	t.Setenv("SKADAN_NOTIFY_SERVICE_ACCOUNT", "")

	err := cli.Run([]string{
		"skadan-notify",
		"--log-format", "json",
		"dispatch",
		"--database-url", unreachableDatabase,
		"--event", "testdata/insert_event.json",
	})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrConfig))
}

func TestDispatchEventFileNotFound(t *testing.T) {
	gt.Error(t, cli.Run([]string{
		"skadan-notify",
		"dispatch",
		"--database-url", unreachableDatabase,
		"--event", "testdata/no_such_event.json",
	}))
}

func TestInvalidLogLevel(t *testing.T) {
	gt.Error(t, cli.Run([]string{
		"skadan-notify",
		"--log-level", "verbose",
		"dispatch",
		"--database-url", unreachableDatabase,
		"--event", "testdata/update_event.json",
	}))
}
