package model

import (
	"encoding/json"
	"log/slog"

	"github.com/m-mizutani/goerr"
	"github.com/ska-dan/notify/pkg/domain/types"
)

// ServiceAccount is the subset of a Google service account key file needed to
// mint FCM access tokens.
type ServiceAccount struct {
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key" masq:"secret"`
	ProjectID   string `json:"project_id"`
	TokenURI    string `json:"token_uri"`
}

func ParseServiceAccount(raw []byte) (*ServiceAccount, error) {
	var sa ServiceAccount
	if err := json.Unmarshal(raw, &sa); err != nil {
		return nil, goerr.Wrap(types.ErrConfig.Wrap(err), "service account is not valid JSON")
	}

	var missing []string
	if sa.ClientEmail == "" {
		missing = append(missing, "client_email")
	}
	if sa.PrivateKey == "" {
		missing = append(missing, "private_key")
	}
	if sa.ProjectID == "" {
		missing = append(missing, "project_id")
	}
	if len(missing) > 0 {
		return nil, goerr.Wrap(types.ErrConfig, "service account lacks required fields").With("missing", missing)
	}

	return &sa, nil
}

func (x *ServiceAccount) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("client_email", x.ClientEmail),
		slog.String("project_id", x.ProjectID),
	)
}
