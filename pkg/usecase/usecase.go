package usecase

import (
	"github.com/ska-dan/notify/pkg/domain/interfaces"
	"github.com/ska-dan/notify/pkg/infra"
)

type UseCases struct {
	store     interfaces.UserStore
	secrets   interfaces.SecretStore
	cred      interfaces.Credential
	messaging interfaces.Messaging

	// maxConcurrency caps in-flight sends per event. Zero means unlimited.
	maxConcurrency int
}

func New(options ...Option) *UseCases {
	uc := &UseCases{}
	for _, option := range options {
		option(uc)
	}

	return uc
}

type Option func(*UseCases)

// WithClients sets every external service from a bundle. Individual options
// given after it override the bundled ones.
func WithClients(clients *infra.Clients) Option {
	return func(uc *UseCases) {
		uc.store = clients.UserStore()
		uc.secrets = clients.SecretStore()
		uc.cred = clients.Credential()
		uc.messaging = clients.Messaging()
	}
}

func WithUserStore(store interfaces.UserStore) Option {
	return func(uc *UseCases) {
		uc.store = store
	}
}

func WithSecretStore(secrets interfaces.SecretStore) Option {
	return func(uc *UseCases) {
		uc.secrets = secrets
	}
}

func WithCredential(cred interfaces.Credential) Option {
	return func(uc *UseCases) {
		uc.cred = cred
	}
}

func WithMessaging(messaging interfaces.Messaging) Option {
	return func(uc *UseCases) {
		uc.messaging = messaging
	}
}

func WithMaxConcurrency(n int) Option {
	return func(uc *UseCases) {
		uc.maxConcurrency = n
	}
}
