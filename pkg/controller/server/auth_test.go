package server_test

import (
	"bytes"
	"context"
	_ "embed"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/opac"
	"github.com/ska-dan/notify/pkg/controller/server"
	"github.com/ska-dan/notify/pkg/domain/mock"
	"github.com/ska-dan/notify/pkg/domain/model"
	"github.com/ska-dan/notify/pkg/utils/ctxutil"
)

//go:embed testdata/policy_auth.rego
var policyAuth string

const testTriggerSecret = "super-secret-jwt-token-with-at-least-32-characters"

func signTriggerToken(t *testing.T, secret, role string, exp time.Time) string {
	t.Helper()
	token := gt.R1(jwt.NewBuilder().
		Issuer("supabase").
		Claim("role", role).
		IssuedAt(time.Now()).
		Expiration(exp).
		Build()).NoError(t)

	signed := gt.R1(jwt.Sign(token, jwt.WithKey(jwa.HS256, []byte(secret)))).NoError(t)
	return string(signed)
}

func TestTriggerTokenAuth(t *testing.T) {
	type testCase struct {
		authHeader func(t *testing.T) string
		policy     bool
		expectCode int
		expectCall int
	}

	runTest := func(tc testCase) func(t *testing.T) {
		return func(t *testing.T) {
			var gotClaims map[string]any
			ucMock := &mock.UseCasesMock{
				HandleMessageEventFunc: func(ctx context.Context, event *model.TriggerEvent) (*model.DispatchResult, error) {
					gotClaims = ctxutil.TriggerClaims(ctx)
					return &model.DispatchResult{Status: model.DispatchIgnored}, nil
				},
			}

			options := []server.Option{server.WithTriggerSecret(testTriggerSecret)}
			if tc.policy {
				policy := gt.R1(opac.New(opac.Data(map[string]string{"auth": policyAuth}))).NoError(t)
				options = append(options, server.WithPolicy(policy))
			}

			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte(`{"type":"UPDATE"}`)))
			if tc.authHeader != nil {
				req.Header.Set("Authorization", tc.authHeader(t))
			}

			w := httptest.NewRecorder()
			server.New(ucMock, options...).ServeHTTP(w, req)

			gt.Equal(t, w.Code, tc.expectCode)
			gt.A(t, ucMock.HandleMessageEventCalls()).Length(tc.expectCall)
			if tc.expectCall > 0 {
				gt.Equal(t, gotClaims["iss"], any("supabase"))
			}
		}
	}

	t.Run("valid token", runTest(testCase{
		authHeader: func(t *testing.T) string {
			return "Bearer " + signTriggerToken(t, testTriggerSecret, "service_role", time.Now().Add(time.Hour))
		},
		expectCode: http.StatusOK,
		expectCall: 1,
	}))

	t.Run("without token", runTest(testCase{
		expectCode: http.StatusUnauthorized,
	}))

	t.Run("wrong secret", runTest(testCase{
		authHeader: func(t *testing.T) string {
			return "Bearer " + signTriggerToken(t, "another-secret-another-secret-another", "service_role", time.Now().Add(time.Hour))
		},
		expectCode: http.StatusUnauthorized,
	}))

	t.Run("expired token", runTest(testCase{
		authHeader: func(t *testing.T) string {
			return "Bearer " + signTriggerToken(t, testTriggerSecret, "service_role", time.Now().Add(-time.Hour))
		},
		expectCode: http.StatusUnauthorized,
	}))

	t.Run("policy allows service role", runTest(testCase{
		authHeader: func(t *testing.T) string {
			return "Bearer " + signTriggerToken(t, testTriggerSecret, "service_role", time.Now().Add(time.Hour))
		},
		policy:     true,
		expectCode: http.StatusOK,
		expectCall: 1,
	}))

	t.Run("policy rejects anon role", runTest(testCase{
		authHeader: func(t *testing.T) string {
			return "Bearer " + signTriggerToken(t, testTriggerSecret, "anon", time.Now().Add(time.Hour))
		},
		policy:     true,
		expectCode: http.StatusForbidden,
	}))
}

func TestPolicyWithoutTriggerSecret(t *testing.T) {
	ucMock := &mock.UseCasesMock{
		HandleMessageEventFunc: func(ctx context.Context, event *model.TriggerEvent) (*model.DispatchResult, error) {
			return &model.DispatchResult{Status: model.DispatchIgnored}, nil
		},
	}
	policyMock := &mock.PolicyMock{
		QueryFunc: func(ctx context.Context, query string, input, output any, options ...opac.QueryOption) error {
			out, ok := output.(*model.AuthQueryOutput)
			gt.True(t, ok)
			in, ok := input.(model.AuthQueryInput)
			gt.True(t, ok)
			out.Allow = in.Header["X-Client-Info"] == "supabase-db-webhook"
			return nil
		},
	}

	mux := server.New(ucMock, server.WithPolicy(policyMock))

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte(`{"type":"UPDATE"}`)))
	req.Header.Set("X-Client-Info", "supabase-db-webhook")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	gt.Equal(t, w.Code, http.StatusOK)

	req = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte(`{"type":"UPDATE"}`)))
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	gt.Equal(t, w.Code, http.StatusForbidden)

	gt.A(t, policyMock.QueryCalls()).Length(2)
	gt.Equal(t, policyMock.QueryCalls()[0].Query, "data.auth")
	gt.A(t, ucMock.HandleMessageEventCalls()).Length(1)
}
