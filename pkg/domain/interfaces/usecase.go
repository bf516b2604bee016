package interfaces

import (
	"context"

	"github.com/ska-dan/notify/pkg/domain/model"
)

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCases

type UseCases interface {
	HandleMessageEvent(ctx context.Context, event *model.TriggerEvent) (*model.DispatchResult, error)
}
