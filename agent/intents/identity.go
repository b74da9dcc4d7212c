package intents

import (
	"context"
	"fmt"

	lexv2x "alexbuddy/agent/lexv2"
)

// SessionAttrUserName is where the confirmed username is carried across turns.
const SessionAttrUserName = "UserName"

const identitySlotUserName = "UserName"

// IdentityHandler verifies the user's identity by collecting a username slot.
// It performs no format validation and no cross-check against the account
// store; it only records the confirmed name in the session attributes.
type IdentityHandler struct{}

func NewIdentityHandler() IdentityHandler {
	return IdentityHandler{}
}

func (IdentityHandler) Handle(_ context.Context, ev *lexv2x.TurnEvent) (*lexv2x.Response, error) {
	attrs := ev.Attributes()
	intent := ev.SessionState.Intent

	username, ok := ev.Slot(identitySlotUserName).Resolve()
	if !ok {
		return lexv2x.ElicitSlot(
			attrs,
			map[string]string{},
			intent,
			identitySlotUserName,
			"Please provide your username to proceed.",
		), nil
	}

	attrs[SessionAttrUserName] = username
	return lexv2x.ElicitIntent(
		attrs,
		fmt.Sprintf("Thank you for confirming your username and PIN, %s. How are you doing? Is everything going well?", username),
	), nil
}
