package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ska-dan/notify/pkg/domain/interfaces"
	"github.com/ska-dan/notify/pkg/domain/model"
	"github.com/ska-dan/notify/pkg/domain/types"
	"github.com/ska-dan/notify/pkg/utils/ctxutil"
	"github.com/ska-dan/notify/pkg/utils/errutil"
)

type config struct {
	policy        interfaces.Policy
	triggerSecret []byte
}

type Option func(*config)

func WithPolicy(policy interfaces.Policy) Option {
	return func(cfg *config) {
		cfg.policy = policy
	}
}

// WithTriggerSecret requires trigger requests to carry a bearer JWT signed
// with secret using HS256.
func WithTriggerSecret(secret string) Option {
	return func(cfg *config) {
		cfg.triggerSecret = []byte(secret)
	}
}

func New(uc interfaces.UseCases, options ...Option) http.Handler {
	var cfg config
	for _, opt := range options {
		opt(&cfg)
	}

	route := chi.NewRouter()
	route.Use(cors)
	route.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK:" + types.AppVersion))
	})
	route.Group(func(r chi.Router) {
		r.Use(logger)
		if cfg.triggerSecret != nil {
			r.Use(authTriggerToken(cfg.triggerSecret))
		}
		if cfg.policy != nil {
			r.Use(authWithPolicy(cfg.policy))
		}

		r.Post("/", handleTrigger(uc))
		r.Post("/send-notification", handleTrigger(uc))
	})

	return route
}

type dispatchResponse struct {
	Success bool `json:"success"`
	Sent    int  `json:"sent"`
	Failed  int  `json:"failed"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func handleError(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError
	var xErr types.Error
	if errors.As(err, &xErr) {
		code = xErr.Code()
	}

	if code >= http.StatusInternalServerError {
		errutil.Handle(r.Context(), "failed to handle trigger", err)
	} else {
		ctxutil.Logger(r.Context()).Warn("rejected trigger", "code", code, "error", err)
	}

	writeJSON(w, code, errorResponse{Error: err.Error()})
}

func handleTrigger(uc interfaces.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		event, err := model.DecodeTriggerEvent(r.Body)
		if err != nil {
			handleError(w, r, err)
			return
		}

		// Sends already in flight must finish even if the caller hangs up.
		ctx := context.WithoutCancel(r.Context())
		result, err := uc.HandleMessageEvent(ctx, event)
		if err != nil {
			handleError(w, r, err)
			return
		}

		switch result.Status {
		case model.DispatchCompleted:
			writeJSON(w, http.StatusOK, dispatchResponse{
				Success: true,
				Sent:    result.Succeeded,
				Failed:  result.Failed,
			})
		default:
			writeJSON(w, http.StatusOK, messageResponse{Message: result.Message})
		}
	}
}
