package infra

import "github.com/ska-dan/notify/pkg/domain/interfaces"

// Clients bundles the external services a dispatch depends on.
type Clients struct {
	users     interfaces.UserStore
	secrets   interfaces.SecretStore
	cred      interfaces.Credential
	messaging interfaces.Messaging
}

func (x *Clients) UserStore() interfaces.UserStore     { return x.users }
func (x *Clients) SecretStore() interfaces.SecretStore { return x.secrets }
func (x *Clients) Credential() interfaces.Credential   { return x.cred }
func (x *Clients) Messaging() interfaces.Messaging     { return x.messaging }

func New(options ...Option) *Clients {
	clients := &Clients{}
	for _, option := range options {
		option(clients)
	}

	return clients
}

type Option func(*Clients)

func WithUserStore(users interfaces.UserStore) Option {
	return func(clients *Clients) {
		clients.users = users
	}
}

func WithSecretStore(secrets interfaces.SecretStore) Option {
	return func(clients *Clients) {
		clients.secrets = secrets
	}
}

func WithCredential(cred interfaces.Credential) Option {
	return func(clients *Clients) {
		clients.cred = cred
	}
}

func WithMessaging(messaging interfaces.Messaging) Option {
	return func(clients *Clients) {
		clients.messaging = messaging
	}
}
