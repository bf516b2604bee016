package secret

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr"
	"github.com/ska-dan/notify/pkg/domain/types"
)

// Store hands out the service account JSON from either an inline value or a
// file. The file is re-read on every call so rotated keys are picked up
// without a restart.
type Store struct {
	value string
	path  string
}

func New(value, path string) *Store {
	return &Store{value: value, path: path}
}

func (x *Store) ServiceAccount(ctx context.Context) ([]byte, error) {
	if x.path != "" {
		raw, err := os.ReadFile(x.path)
		if err != nil {
			return nil, goerr.Wrap(types.ErrConfig.Wrap(err), "failed to read service account file").With("path", x.path)
		}
		return raw, nil
	}

	if x.value == "" {
		return nil, goerr.Wrap(types.ErrConfig, "service account secret is not configured")
	}
	return []byte(x.value), nil
}
