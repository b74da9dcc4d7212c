package intents

import (
	"context"

	lexv2x "alexbuddy/agent/lexv2"
)

const helplineSlotSelection = "Selection"

const helplineMenu = "What type of support do you need? Please select one option from below:\n" +
	"1. General Support\n" +
	"2. Suicide Prevention\n" +
	"3. Young People\n" +
	"4. LGBTQ+ Support\n" +
	"5. Urgent Help"

const helplineNotUnderstood = "I didn’t understand that. Please reply with 1, 2, 3, 4, or 5."

var helplineResources = map[string]string{
	"1": "**General Mental Health Support**:\n- Samaritans: Call 116 123 (24/7)\n- NHS 111: Call 111 (24/7)",
	"2": "**Suicide Prevention**:\n- National Suicide Prevention Helpline: Call 0800 689 5652\n- Papyrus HOPELINEUK: Call 0800 068 4141",
	"3": "**Support for Young People**:\n- Childline: Call 0800 1111 (24/7)\n- Shout Crisis Text Line: Text 'YM' to 85258",
	"4": "**LGBTQ+ Support**:\n- Switchboard: Call 0300 330 0630 (10am-10pm)\n- Text 'SHOUT' to 85258 (24/7)",
	"5": "**Urgent Help**:\n- Call 999 for immediate danger\n- Visit A&E for emergency mental health support",
}

// HelplineHandler serves the single-level emergency helpline menu. Without a
// selection it re-prompts with the five options; with one it closes the turn,
// falling back to a "didn't understand" message for anything outside 1-5.
// There is no re-prompt loop: a malformed selection still closes the intent.
type HelplineHandler struct{}

func NewHelplineHandler() HelplineHandler {
	return HelplineHandler{}
}

func (HelplineHandler) Handle(_ context.Context, ev *lexv2x.TurnEvent) (*lexv2x.Response, error) {
	attrs := ev.Attributes()
	intent := ev.SessionState.Intent

	selection, ok := ev.Slot(helplineSlotSelection).Resolve()
	if !ok {
		return lexv2x.ElicitSlot(
			attrs,
			map[string]string{},
			intent,
			helplineSlotSelection,
			helplineMenu,
		), nil
	}

	message, known := helplineResources[selection]
	if !known {
		message = helplineNotUnderstood
	}
	return lexv2x.Close(attrs, intent, message), nil
}
