package model

import (
	"encoding/json"
	"io"

	"github.com/m-mizutani/goerr"
	"github.com/ska-dan/notify/pkg/domain/types"
)

// TriggerEvent is the body of a database change webhook.
type TriggerEvent struct {
	Type      string          `json:"type"`
	Table     string          `json:"table"`
	Schema    string          `json:"schema"`
	Record    *MessageEvent   `json:"record"`
	OldRecord json.RawMessage `json:"old_record,omitempty"`
}

func DecodeTriggerEvent(r io.Reader) (*TriggerEvent, error) {
	var ev TriggerEvent
	if err := json.NewDecoder(r).Decode(&ev); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidInput.Wrap(err))
	}
	return &ev, nil
}

// MessageEvent is a row of the messages table.
type MessageEvent struct {
	ID           string `json:"id"`
	UserID       string `json:"userId"`
	UserName     string `json:"userName"`
	Text         string `json:"text"`
	TargetUserID string `json:"targetUserId,omitempty"`
	SagID        string `json:"sagId,omitempty"`
}

// IsTargeted reports whether the message is addressed to a single user
// instead of being broadcast to everyone in the case.
func (x *MessageEvent) IsTargeted() bool {
	return x.TargetUserID != ""
}
