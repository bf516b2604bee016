package usecase

import (
	"context"

	"github.com/ska-dan/notify/pkg/domain/model"
	"github.com/ska-dan/notify/pkg/utils/ctxutil"
	"golang.org/x/oauth2"
	"golang.org/x/sync/errgroup"
)

// dispatch sends one notification per recipient concurrently and waits for
// all of them. A failed send never cancels or skips its siblings.
func (x *UseCases) dispatch(ctx context.Context, token *oauth2.Token, projectID string, recipients []model.Recipient, content notificationContent) []model.DispatchOutcome {
	logger := ctxutil.Logger(ctx)
	outcomes := make([]model.DispatchOutcome, len(recipients))

	var eg errgroup.Group
	if x.maxConcurrency > 0 {
		eg.SetLimit(x.maxConcurrency)
	}

	for i, r := range recipients {
		eg.Go(func() error {
			err := x.messaging.Send(ctx, token, projectID, content.messageFor(r))
			if err != nil {
				logger.Warn("failed to send push notification", "recipient", r.ID, "error", err)
			}
			outcomes[i] = model.DispatchOutcome{RecipientID: r.ID, Err: err}
			return nil
		})
	}
	_ = eg.Wait()

	return outcomes
}
