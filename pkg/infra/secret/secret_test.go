package secret_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/ska-dan/notify/pkg/domain/types"
	"github.com/ska-dan/notify/pkg/infra/secret"
)

func TestServiceAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("inline value", func(t *testing.T) {
		raw := gt.R1(secret.New(`{"project_id":"p"}`, "").ServiceAccount(ctx)).NoError(t)
		gt.Equal(t, string(raw), `{"project_id":"p"}`)
	})

	t.Run("file takes precedence and is re-read", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sa.json")
		gt.NoError(t, os.WriteFile(path, []byte(`{"v":1}`), 0600))

		store := secret.New(`{"inline":true}`, path)
		gt.Equal(t, string(gt.R1(store.ServiceAccount(ctx)).NoError(t)), `{"v":1}`)

		gt.NoError(t, os.WriteFile(path, []byte(`{"v":2}`), 0600))
		gt.Equal(t, string(gt.R1(store.ServiceAccount(ctx)).NoError(t)), `{"v":2}`)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := secret.New("", "").ServiceAccount(ctx)
		gt.True(t, errors.Is(err, types.ErrConfig))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := secret.New("", filepath.Join(t.TempDir(), "nothing.json")).ServiceAccount(ctx)
		gt.True(t, errors.Is(err, types.ErrConfig))
	})
}
