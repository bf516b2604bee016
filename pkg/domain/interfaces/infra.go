package interfaces

import (
	"context"

	"github.com/m-mizutani/opac"
	"github.com/ska-dan/notify/pkg/domain/model"
	"golang.org/x/oauth2"
)

//go:generate moq -out ../mock/infra.go -pkg mock . UserStore SecretStore Credential Messaging Policy

// UserStore looks up notification recipients.
type UserStore interface {
	// GetUsersExcept returns IDs of every known user other than userID.
	GetUsersExcept(ctx context.Context, userID string) ([]string, error)
	// GetTokensFor returns users among userIDs that have a push token registered.
	GetTokensFor(ctx context.Context, userIDs []string) ([]model.Recipient, error)
}

// SecretStore provides the raw service account JSON. It is read once per
// invocation and never cached by callers.
type SecretStore interface {
	ServiceAccount(ctx context.Context) ([]byte, error)
}

type Credential interface {
	AccessToken(ctx context.Context, sa *model.ServiceAccount) (*oauth2.Token, error)
}

type Messaging interface {
	Send(ctx context.Context, token *oauth2.Token, projectID string, msg *model.PushMessage) error
}

type Policy interface {
	Query(ctx context.Context, query string, input, output any, options ...opac.QueryOption) error
}
