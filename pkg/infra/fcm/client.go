package fcm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/goerr"
	"github.com/ska-dan/notify/pkg/domain/model"
	"github.com/ska-dan/notify/pkg/domain/types"
	"golang.org/x/oauth2"
	fcmapi "google.golang.org/api/fcm/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const androidPriorityHigh = "HIGH"

// Client sends notifications through the FCM HTTP v1 API. Each Send uses the
// access token it is given; the client holds no credentials of its own.
type Client struct {
	endpoint    string
	base        *http.Client
	clickAction string
	webIcon     string
}

type Option func(*Client)

func WithEndpoint(endpoint string) Option {
	return func(x *Client) {
		x.endpoint = endpoint
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(x *Client) {
		x.base = client
	}
}

func WithAndroidClickAction(action string) Option {
	return func(x *Client) {
		x.clickAction = action
	}
}

func WithWebPushIcon(icon string) Option {
	return func(x *Client) {
		x.webIcon = icon
	}
}

func New(options ...Option) *Client {
	client := &Client{
		endpoint:    types.DefaultFCMEndpoint,
		base:        http.DefaultClient,
		clickAction: types.DefaultAndroidClickAction,
		webIcon:     types.DefaultWebPushIcon,
	}
	for _, opt := range options {
		opt(client)
	}
	return client
}

func (x *Client) Send(ctx context.Context, token *oauth2.Token, projectID string, msg *model.PushMessage) error {
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(token),
			Base:   x.base.Transport,
		},
		Timeout: x.base.Timeout,
	}

	svc, err := fcmapi.NewService(ctx,
		option.WithHTTPClient(httpClient),
		option.WithEndpoint(x.endpoint),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to create FCM service")
	}

	message, err := x.buildMessage(msg)
	if err != nil {
		return err
	}

	req := &fcmapi.SendMessageRequest{Message: message}
	if _, err := svc.Projects.Messages.Send("projects/"+projectID, req).Context(ctx).Do(); err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			return goerr.Wrap(err, "FCM rejected message").
				With("status", apiErr.Code).
				With("body", apiErr.Body)
		}
		return goerr.Wrap(err, "failed to send FCM message")
	}

	return nil
}

func (x *Client) buildMessage(msg *model.PushMessage) (*fcmapi.Message, error) {
	webNotification, err := json.Marshal(map[string]string{"icon": x.webIcon})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal webpush notification")
	}

	data := msg.Data
	if data == nil {
		data = map[string]string{}
	}

	return &fcmapi.Message{
		Token: msg.Token,
		Notification: &fcmapi.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: data,
		Android: &fcmapi.AndroidConfig{
			Priority: androidPriorityHigh,
			Notification: &fcmapi.AndroidNotification{
				Sound:       "default",
				ClickAction: x.clickAction,
			},
		},
		Webpush: &fcmapi.WebpushConfig{
			Notification: googleapi.RawMessage(webNotification),
		},
	}, nil
}
