package usecase

import (
	"context"

	"github.com/m-mizutani/goerr"
	"github.com/ska-dan/notify/pkg/domain/model"
	"github.com/ska-dan/notify/pkg/domain/types"
	"github.com/ska-dan/notify/pkg/utils/ctxutil"
)

func (x *UseCases) HandleMessageEvent(ctx context.Context, event *model.TriggerEvent) (*model.DispatchResult, error) {
	logger := ctxutil.Logger(ctx)

	if event.Type != types.EventInsert {
		logger.Debug("ignore non-INSERT event", "type", event.Type, "table", event.Table)
		return &model.DispatchResult{
			Status:  model.DispatchIgnored,
			Message: "Ignored non-INSERT event",
		}, nil
	}
	if event.Record == nil {
		return nil, goerr.Wrap(types.ErrInvalidInput, "INSERT event has no record")
	}

	msg := event.Record
	logger = logger.With("message_id", msg.ID)
	logger.Info("processing message", "sender", msg.UserID, "targeted", msg.IsTargeted())

	raw, err := x.secrets.ServiceAccount(ctx)
	if err != nil {
		return nil, err
	}
	sa, err := model.ParseServiceAccount(raw)
	if err != nil {
		return nil, err
	}

	token, err := x.cred.AccessToken(ctx, sa)
	if err != nil {
		return nil, err
	}

	recipients, noneReason, err := x.resolveRecipients(ctx, msg)
	if err != nil {
		return nil, err
	}
	if len(recipients) == 0 {
		logger.Info("no recipients", "reason", noneReason)
		return &model.DispatchResult{
			Status:  model.DispatchNoRecipients,
			Message: noneReason,
		}, nil
	}

	content := newNotificationContent(msg)
	outcomes := x.dispatch(ctxutil.WithLogger(ctx, logger), token, sa.ProjectID, recipients, content)
	result := model.NewDispatchResult(outcomes)

	logger.Info("notifications sent", "succeeded", result.Succeeded, "failed", result.Failed)
	return result, nil
}
