// Package lexv2 models the Lex V2 code-hook wire format: the inbound turn
// event delivered per user utterance and the outbound turn-control response.
// Dialog actions are a closed set of typed variants, not loose maps.
package lexv2

// Invocation sources carried on a turn event.
const (
	SourceDialogCodeHook      = "DialogCodeHook"
	SourceFulfillmentCodeHook = "FulfillmentCodeHook"
)

// Intent states used on outbound responses.
const (
	IntentStateFulfilled = "Fulfilled"
	IntentStateFailed    = "Failed"
)

// ConfirmationNone is the default confirmation state of a closed intent.
const ConfirmationNone = "None"

// TurnEvent is the inbound request for one conversation turn. It is read-only
// input for the duration of a dispatch.
type TurnEvent struct {
	SessionState     TurnSessionState `json:"sessionState"`
	SessionID        string           `json:"sessionId"`
	InvocationSource string           `json:"invocationSource"`
	InputTranscript  string           `json:"inputTranscript"`
}

type TurnSessionState struct {
	Intent            Intent            `json:"intent"`
	SessionAttributes map[string]string `json:"sessionAttributes,omitempty"`
}

// Intent is the classified purpose of the current utterance together with its
// slot map and fulfillment state.
type Intent struct {
	Name              string           `json:"name"`
	Slots             map[string]*Slot `json:"slots,omitempty"`
	State             string           `json:"state,omitempty"`
	ConfirmationState string           `json:"confirmationState,omitempty"`
}

// Slot is a named parameter the platform is collecting. Value may be nil when
// the slot has not been filled yet.
type Slot struct {
	Shape string     `json:"shape,omitempty"`
	Value *SlotValue `json:"value,omitempty"`
}

// SlotValue holds the user-entered text and zero or more resolver candidates.
type SlotValue struct {
	OriginalValue    string   `json:"originalValue,omitempty"`
	InterpretedValue string   `json:"interpretedValue,omitempty"`
	ResolvedValues   []string `json:"resolvedValues,omitempty"`
}

// Attributes returns the session attributes of the event, never nil. Handlers
// mutate the returned map and thread it into the outbound response.
func (e *TurnEvent) Attributes() map[string]string {
	if e.SessionState.SessionAttributes == nil {
		e.SessionState.SessionAttributes = make(map[string]string)
	}
	return e.SessionState.SessionAttributes
}

// Slot returns the named slot or nil when absent.
func (e *TurnEvent) Slot(name string) *Slot {
	return e.SessionState.Intent.Slots[name]
}
