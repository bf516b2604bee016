package usecase

import (
	"maps"

	"github.com/ska-dan/notify/pkg/domain/model"
)

const (
	maxBodyLength = 100
	ellipsis      = "..."

	broadcastTitle = "New message in case"
)

type notificationContent struct {
	title string
	body  string
	data  map[string]string
}

func newNotificationContent(msg *model.MessageEvent) notificationContent {
	title := broadcastTitle
	if msg.IsTargeted() {
		title = "Message from " + msg.UserName
	}

	return notificationContent{
		title: title,
		body:  truncateBody(msg.Text),
		data: map[string]string{
			"messageId": msg.ID,
			"sagId":     msg.SagID,
			"senderId":  msg.UserID,
		},
	}
}

func truncateBody(text string) string {
	runes := []rune(text)
	if len(runes) <= maxBodyLength {
		return text
	}
	return string(runes[:maxBodyLength]) + ellipsis
}

func (x notificationContent) messageFor(r model.Recipient) *model.PushMessage {
	return &model.PushMessage{
		Token: r.FCMToken,
		Title: x.title,
		Body:  x.body,
		Data:  maps.Clone(x.data),
	}
}
