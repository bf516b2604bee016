package oauth

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jws"
	"github.com/m-mizutani/goerr"
	"github.com/ska-dan/notify/pkg/domain/types"
)

// assertionLifetime is the maximum lifetime Google accepts for a JWT-bearer assertion.
const assertionLifetime = time.Hour

// Claims is the payload of a JWT-bearer assertion (RFC 7523).
type Claims struct {
	Issuer   string `json:"iss"`
	Scope    string `json:"scope"`
	Audience string `json:"aud"`
	IssuedAt int64  `json:"iat"`
	Expiry   int64  `json:"exp"`
}

func NewClaims(issuer, audience string, now time.Time) Claims {
	return Claims{
		Issuer:   issuer,
		Scope:    types.MessagingScope,
		Audience: audience,
		IssuedAt: now.Unix(),
		Expiry:   now.Add(assertionLifetime).Unix(),
	}
}

// ParsePrivateKey imports a PEM encoded PKCS#8 RSA private key.
func ParsePrivateKey(pemKey string) (jwk.Key, error) {
	// Keys copied from a JSON file into an environment variable often keep
	// their newlines escaped.
	pemKey = strings.ReplaceAll(pemKey, `\n`, "\n")

	key, err := jwk.ParseKey([]byte(pemKey), jwk.WithPEM(true))
	if err != nil {
		return nil, goerr.Wrap(types.ErrCredential.Wrap(err), "failed to parse private key")
	}
	if _, ok := key.(jwk.RSAPrivateKey); !ok {
		return nil, goerr.Wrap(types.ErrCredential, "private key is not an RSA private key").With("kty", key.KeyType())
	}

	return key, nil
}

// SignAssertion serializes claims as a compact RS256 JWS with a `typ: JWT` header.
func SignAssertion(claims Claims, key jwk.Key) (string, error) {
	payload, err := json.Marshal(claims)
	if err != nil {
		return "", goerr.Wrap(types.ErrCredential.Wrap(err), "failed to marshal assertion claims")
	}

	hdr := jws.NewHeaders()
	if err := hdr.Set(jws.TypeKey, "JWT"); err != nil {
		return "", goerr.Wrap(types.ErrCredential.Wrap(err))
	}

	signed, err := jws.Sign(payload, jws.WithKey(jwa.RS256, key, jws.WithProtectedHeaders(hdr)))
	if err != nil {
		return "", goerr.Wrap(types.ErrCredential.Wrap(err), "failed to sign assertion")
	}

	return string(signed), nil
}
