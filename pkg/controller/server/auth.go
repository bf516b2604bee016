package server

import (
	"net/http"
	"strings"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/goerr"
	"github.com/ska-dan/notify/pkg/domain/interfaces"
	"github.com/ska-dan/notify/pkg/domain/model"
	"github.com/ska-dan/notify/pkg/domain/types"
	"github.com/ska-dan/notify/pkg/utils/ctxutil"
)

type middlewareFunc func(next http.Handler) http.Handler

func trimToken(token string) string {
	e := min(len(token), 8)
	return token[:e] + "..."
}

func validateTriggerToken(r *http.Request, secret []byte) (map[string]any, error) {
	hdr := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(hdr) != 2 || hdr[0] != "Bearer" {
		return nil, goerr.Wrap(types.ErrAuthFailed, "no bearer token")
	}

	token, err := jwt.ParseString(hdr[1], jwt.WithKey(jwa.HS256, secret))
	if err != nil {
		return nil, goerr.Wrap(types.ErrAuthFailed.Wrap(err), "failed to verify trigger token").With("token", trimToken(hdr[1]))
	}

	claims, err := token.AsMap(r.Context())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to convert JWT token to map").With("token", trimToken(hdr[1]))
	}

	return claims, nil
}

func authTriggerToken(secret []byte) middlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := validateTriggerToken(r, secret)
			if err != nil {
				handleError(w, r, err)
				return
			}

			r = r.WithContext(ctxutil.WithTriggerClaims(r.Context(), claims))
			next.ServeHTTP(w, r)
		})
	}
}

func authWithPolicy(policy interfaces.Policy) middlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			input := model.AuthQueryInput{
				Method: r.Method,
				Path:   r.URL.Path,
				Header: map[string]string{},
			}

			for key := range r.Header {
				input.Header[key] = r.Header.Get(key)
			}

			if claims := ctxutil.TriggerClaims(r.Context()); claims != nil {
				input.Auth.Claims = claims
			}

			var output model.AuthQueryOutput
			if err := policy.Query(r.Context(), "data.auth", input, &output); err != nil {
				handleError(w, r, err)
				return
			}
			ctxutil.Logger(r.Context()).Debug("auth query result", "input", input, "output", output)

			if !output.Allow {
				handleError(w, r, types.ErrForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
