package usecase

import (
	"context"
	"slices"

	"github.com/ska-dan/notify/pkg/domain/model"
)

const (
	reasonNoRecipients = "No recipients"
	reasonNoTokens     = "No recipients with FCM tokens"
)

// resolveRecipients returns dispatch-eligible recipients of msg. When nobody
// is eligible it returns a human readable reason instead.
func (x *UseCases) resolveRecipients(ctx context.Context, msg *model.MessageEvent) ([]model.Recipient, string, error) {
	var ids []string
	if msg.IsTargeted() {
		ids = []string{msg.TargetUserID}
	} else {
		users, err := x.store.GetUsersExcept(ctx, msg.UserID)
		if err != nil {
			return nil, "", err
		}
		ids = users
	}

	ids = slices.DeleteFunc(ids, func(id string) bool {
		return id == "" || id == msg.UserID
	})
	if len(ids) == 0 {
		return nil, reasonNoRecipients, nil
	}

	rows, err := x.store.GetTokensFor(ctx, ids)
	if err != nil {
		return nil, "", err
	}

	requested := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		requested[id] = struct{}{}
	}

	recipients := slices.DeleteFunc(rows, func(r model.Recipient) bool {
		_, ok := requested[r.ID]
		return r.FCMToken == "" || r.ID == msg.UserID || !ok
	})
	if len(recipients) == 0 {
		return nil, reasonNoTokens, nil
	}

	return recipients, "", nil
}
