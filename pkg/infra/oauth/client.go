package oauth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/goerr"
	"github.com/ska-dan/notify/pkg/domain/model"
	"github.com/ska-dan/notify/pkg/domain/types"
	"golang.org/x/oauth2"
)

const grantTypeJWTBearer = "urn:ietf:params:oauth:grant-type:jwt-bearer"

// Client exchanges service account assertions for access tokens. It keeps no
// token cache; every call performs a fresh exchange.
type Client struct {
	endpoint   string
	httpClient *http.Client
	now        func() time.Time
}

type Option func(*Client)

// WithEndpoint overrides the token endpoint. Without it the service account's
// token_uri is used, falling back to Google's default endpoint.
func WithEndpoint(endpoint string) Option {
	return func(x *Client) {
		x.endpoint = endpoint
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

func WithClock(now func() time.Time) Option {
	return func(x *Client) {
		x.now = now
	}
}

func New(options ...Option) *Client {
	client := &Client{
		httpClient: http.DefaultClient,
		now:        time.Now,
	}
	for _, opt := range options {
		opt(client)
	}
	return client
}

type tokenResponse struct {
	AccessToken      string `json:"access_token" masq:"secret"`
	TokenType        string `json:"token_type"`
	ExpiresIn        int64  `json:"expires_in"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (x *Client) tokenEndpoint(sa *model.ServiceAccount) string {
	switch {
	case x.endpoint != "":
		return x.endpoint
	case sa.TokenURI != "":
		return sa.TokenURI
	default:
		return types.DefaultTokenEndpoint
	}
}

func (x *Client) AccessToken(ctx context.Context, sa *model.ServiceAccount) (*oauth2.Token, error) {
	endpoint := x.tokenEndpoint(sa)
	now := x.now()
	claims := NewClaims(sa.ClientEmail, endpoint, now)

	key, err := ParsePrivateKey(sa.PrivateKey)
	if err != nil {
		return nil, err
	}
	assertion, err := SignAssertion(claims, key)
	if err != nil {
		return nil, err
	}

	form := url.Values{
		"grant_type": {grantTypeJWTBearer},
		"assertion":  {assertion},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, goerr.Wrap(types.ErrCredential.Wrap(err), "failed to create token request").With("endpoint", endpoint)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(types.ErrCredential.Wrap(err), "failed to request access token").With("endpoint", endpoint)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(types.ErrCredential.Wrap(err), "failed to read token response").With("status", resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return nil, goerr.Wrap(types.ErrCredential.Wrap(err), "token response is not JSON").
			With("status", resp.StatusCode).
			With("body", string(body))
	}
	if tr.AccessToken == "" {
		return nil, goerr.Wrap(types.ErrCredential, "token response has no access_token").
			With("status", resp.StatusCode).
			With("error", tr.Error).
			With("error_description", tr.ErrorDescription)
	}

	expiry := time.Unix(claims.Expiry, 0)
	if tr.ExpiresIn > 0 {
		expiry = now.Add(time.Duration(tr.ExpiresIn) * time.Second)
	}

	return &oauth2.Token{
		AccessToken: tr.AccessToken,
		TokenType:   tr.TokenType,
		Expiry:      expiry,
	}, nil
}
