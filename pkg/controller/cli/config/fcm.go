package config

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ska-dan/notify/pkg/domain/types"
	"github.com/ska-dan/notify/pkg/infra/fcm"
	"github.com/ska-dan/notify/pkg/infra/oauth"
	"github.com/ska-dan/notify/pkg/infra/secret"
	"github.com/urfave/cli/v2"
)

const fcmCategory = "FCM"

type FCM struct {
	serviceAccount     string
	serviceAccountFile string
	tokenEndpoint      string
	fcmEndpoint        string
	clickAction        string
	webPushIcon        string
	maxConcurrency     int
	timeout            time.Duration
}

func (x *FCM) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "service-account",
			Usage:       "Service account JSON of the Firebase project",
			Category:    fcmCategory,
			EnvVars:     []string{"SKADAN_NOTIFY_SERVICE_ACCOUNT", "FCM_SERVICE_ACCOUNT"},
			Destination: &x.serviceAccount,
		},
		&cli.StringFlag{
			Name:        "service-account-file",
			Usage:       "Path to service account JSON file, read on every dispatch. Takes precedence over --service-account",
			Category:    fcmCategory,
			EnvVars:     []string{"SKADAN_NOTIFY_SERVICE_ACCOUNT_FILE"},
			Destination: &x.serviceAccountFile,
		},
		&cli.StringFlag{
			Name:        "token-endpoint",
			Usage:       "OAuth token endpoint. Defaults to token_uri of the service account, then " + types.DefaultTokenEndpoint,
			Category:    fcmCategory,
			EnvVars:     []string{"SKADAN_NOTIFY_TOKEN_ENDPOINT"},
			Destination: &x.tokenEndpoint,
		},
		&cli.StringFlag{
			Name:        "fcm-endpoint",
			Usage:       "FCM API base URL",
			Category:    fcmCategory,
			EnvVars:     []string{"SKADAN_NOTIFY_FCM_ENDPOINT"},
			Destination: &x.fcmEndpoint,
			Value:       types.DefaultFCMEndpoint,
		},
		&cli.StringFlag{
			Name:        "android-click-action",
			Usage:       "Click action of Android notifications",
			Category:    fcmCategory,
			EnvVars:     []string{"SKADAN_NOTIFY_ANDROID_CLICK_ACTION"},
			Destination: &x.clickAction,
			Value:       types.DefaultAndroidClickAction,
		},
		&cli.StringFlag{
			Name:        "webpush-icon",
			Usage:       "Icon path of web push notifications",
			Category:    fcmCategory,
			EnvVars:     []string{"SKADAN_NOTIFY_WEBPUSH_ICON"},
			Destination: &x.webPushIcon,
			Value:       types.DefaultWebPushIcon,
		},
		&cli.IntFlag{
			Name:        "max-concurrency",
			Usage:       "Maximum number of in-flight sends per event, 0 means unlimited",
			Category:    fcmCategory,
			EnvVars:     []string{"SKADAN_NOTIFY_MAX_CONCURRENCY"},
			Destination: &x.maxConcurrency,
		},
		&cli.DurationFlag{
			Name:        "http-timeout",
			Usage:       "Timeout of each request to the token endpoint and FCM",
			Category:    fcmCategory,
			EnvVars:     []string{"SKADAN_NOTIFY_HTTP_TIMEOUT"},
			Destination: &x.timeout,
			Value:       30 * time.Second,
		},
	}
}

func (x *FCM) httpClient() *http.Client {
	return &http.Client{Timeout: x.timeout}
}

func (x *FCM) SecretStore() *secret.Store {
	return secret.New(x.serviceAccount, x.serviceAccountFile)
}

func (x *FCM) Credential() *oauth.Client {
	options := []oauth.Option{
		oauth.WithHTTPClient(x.httpClient()),
	}
	if x.tokenEndpoint != "" {
		options = append(options, oauth.WithEndpoint(x.tokenEndpoint))
	}
	return oauth.New(options...)
}

func (x *FCM) Messaging() *fcm.Client {
	return fcm.New(
		fcm.WithEndpoint(x.fcmEndpoint),
		fcm.WithHTTPClient(x.httpClient()),
		fcm.WithAndroidClickAction(x.clickAction),
		fcm.WithWebPushIcon(x.webPushIcon),
	)
}

func (x *FCM) MaxConcurrency() int { return x.maxConcurrency }

func (x *FCM) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("service_account", x.serviceAccount != ""),
		slog.String("service_account_file", x.serviceAccountFile),
		slog.String("token_endpoint", x.tokenEndpoint),
		slog.String("fcm_endpoint", x.fcmEndpoint),
		slog.String("android_click_action", x.clickAction),
		slog.String("webpush_icon", x.webPushIcon),
		slog.Int("max_concurrency", x.maxConcurrency),
		slog.Duration("http_timeout", x.timeout),
	)
}
