package model

// PushMessage is a single notification addressed to one device token.
type PushMessage struct {
	Token string `masq:"secret"`
	Title string
	Body  string
	Data  map[string]string
}

type DispatchOutcome struct {
	RecipientID string
	Err         error
}

func (x DispatchOutcome) OK() bool { return x.Err == nil }

type DispatchStatus string

const (
	DispatchIgnored      DispatchStatus = "ignored"
	DispatchNoRecipients DispatchStatus = "no_recipients"
	DispatchCompleted    DispatchStatus = "completed"
)

type DispatchResult struct {
	Status    DispatchStatus `json:"status"`
	Message   string         `json:"message,omitempty"`
	Succeeded int            `json:"sent"`
	Failed    int            `json:"failed"`
}

func NewDispatchResult(outcomes []DispatchOutcome) *DispatchResult {
	result := &DispatchResult{Status: DispatchCompleted}
	for _, outcome := range outcomes {
		if outcome.OK() {
			result.Succeeded++
		} else {
			result.Failed++
		}
	}
	return result
}
