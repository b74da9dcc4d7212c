package lexv2

// DialogActionType is the closed set of turn-control directives.
type DialogActionType string

const (
	ActionElicitSlot   DialogActionType = "ElicitSlot"
	ActionElicitIntent DialogActionType = "ElicitIntent"
	ActionDelegate     DialogActionType = "Delegate"
	ActionClose        DialogActionType = "Close"
)

// Message content types.
const (
	ContentPlainText         = "PlainText"
	ContentImageResponseCard = "ImageResponseCard"
)

// Active-context shape shared by ElicitSlot and Delegate responses.
const (
	contextName        = "intentContext"
	contextTTLSeconds  = 86400
	contextTurnsToLive = 20
)

// Response is the outbound turn-control object. Exactly one is returned per
// dispatch.
type Response struct {
	SessionState ResponseSessionState `json:"sessionState"`
	Messages     []Message            `json:"messages,omitempty"`
}

type ResponseSessionState struct {
	ActiveContexts    []ActiveContext   `json:"activeContexts,omitempty"`
	SessionAttributes map[string]string `json:"sessionAttributes,omitempty"`
	DialogAction      DialogAction      `json:"dialogAction"`
	Intent            *Intent           `json:"intent,omitempty"`
}

type DialogAction struct {
	Type         DialogActionType `json:"type"`
	SlotToElicit string           `json:"slotToElicit,omitempty"`
}

type ActiveContext struct {
	Name              string            `json:"name"`
	ContextAttributes map[string]string `json:"contextAttributes"`
	TimeToLive        ContextTTL        `json:"timeToLive"`
}

type ContextTTL struct {
	TimeToLiveInSeconds int `json:"timeToLiveInSeconds"`
	TurnsToLive         int `json:"turnsToLive"`
}

type Message struct {
	ContentType       string             `json:"contentType"`
	Content           string             `json:"content,omitempty"`
	ImageResponseCard *ImageResponseCard `json:"imageResponseCard,omitempty"`
}

type ImageResponseCard struct {
	Title   string   `json:"title"`
	Buttons []Button `json:"buttons"`
}

type Button struct {
	Text  string `json:"text"`
	Value string `json:"value"`
}

func intentContext(attributes map[string]string) []ActiveContext {
	if attributes == nil {
		attributes = map[string]string{}
	}
	return []ActiveContext{
		{
			Name:              contextName,
			ContextAttributes: attributes,
			TimeToLive: ContextTTL{
				TimeToLiveInSeconds: contextTTLSeconds,
				TurnsToLive:         contextTurnsToLive,
			},
		},
	}
}

func plainText(message string) Message {
	return Message{ContentType: ContentPlainText, Content: message}
}

// ElicitSlot directs the platform to re-prompt the user for one slot of the
// given intent.
func ElicitSlot(sessionAttrs, contextAttrs map[string]string, intent Intent, slotToElicit, message string) *Response {
	return &Response{
		SessionState: ResponseSessionState{
			ActiveContexts:    intentContext(contextAttrs),
			SessionAttributes: sessionAttrs,
			DialogAction: DialogAction{
				Type:         ActionElicitSlot,
				SlotToElicit: slotToElicit,
			},
			Intent: &intent,
		},
		Messages: []Message{plainText(message)},
	}
}

// ElicitIntent prompts the user for their next intent alongside a fixed
// suggestion card. Used both as the generic fallback prompt and to relay a
// language-model reply.
func ElicitIntent(sessionAttrs map[string]string, message string) *Response {
	return &Response{
		SessionState: ResponseSessionState{
			SessionAttributes: sessionAttrs,
			DialogAction:      DialogAction{Type: ActionElicitIntent},
		},
		Messages: []Message{
			plainText(message),
			{
				ContentType: ContentImageResponseCard,
				ImageResponseCard: &ImageResponseCard{
					Title: "How can I help you?",
					Buttons: []Button{
						{Text: "Emergency Helpline", Value: "Emergency Helpline"},
						{Text: "Ask Alex Buddy", Value: "What kind of questions can Alex Buddy answer?"},
					},
				},
			},
		},
	}
}

// Delegate hands the turn back to the platform's own intent-resolution logic.
func Delegate(sessionAttrs, contextAttrs map[string]string, intent Intent, message string) *Response {
	resp := &Response{
		SessionState: ResponseSessionState{
			ActiveContexts:    intentContext(contextAttrs),
			SessionAttributes: sessionAttrs,
			DialogAction:      DialogAction{Type: ActionDelegate},
			Intent:            &intent,
		},
	}
	if message != "" {
		resp.Messages = []Message{plainText(message)}
	}
	return resp
}

// Close marks the intent fulfilled and ends the turn with a final message.
// Slots and confirmation state are preserved; confirmation defaults to "None".
func Close(sessionAttrs map[string]string, intent Intent, message string) *Response {
	confirmation := intent.ConfirmationState
	if confirmation == "" {
		confirmation = ConfirmationNone
	}
	closed := Intent{
		Name:              intent.Name,
		Slots:             intent.Slots,
		State:             IntentStateFulfilled,
		ConfirmationState: confirmation,
	}
	return &Response{
		SessionState: ResponseSessionState{
			SessionAttributes: sessionAttrs,
			DialogAction:      DialogAction{Type: ActionClose},
			Intent:            &closed,
		},
		Messages: []Message{plainText(message)},
	}
}
