package lexv2

import "testing"

func TestElicitSlotShape(t *testing.T) {
	t.Parallel()

	attrs := map[string]string{"UserName": "alex"}
	intent := Intent{Name: "VerifyIdentity"}

	resp := ElicitSlot(attrs, map[string]string{}, intent, "UserName", "Please provide your username to proceed.")

	if resp.SessionState.DialogAction.Type != ActionElicitSlot {
		t.Fatalf("dialog action = %q, want ElicitSlot", resp.SessionState.DialogAction.Type)
	}
	if resp.SessionState.DialogAction.SlotToElicit != "UserName" {
		t.Fatalf("slotToElicit = %q, want UserName", resp.SessionState.DialogAction.SlotToElicit)
	}
	if len(resp.SessionState.ActiveContexts) != 1 {
		t.Fatalf("expected one active context, got %d", len(resp.SessionState.ActiveContexts))
	}
	actx := resp.SessionState.ActiveContexts[0]
	if actx.Name != "intentContext" {
		t.Fatalf("context name = %q, want intentContext", actx.Name)
	}
	if actx.TimeToLive.TimeToLiveInSeconds != 86400 || actx.TimeToLive.TurnsToLive != 20 {
		t.Fatalf("context ttl = %+v, want 86400s/20 turns", actx.TimeToLive)
	}
	if resp.SessionState.Intent == nil || resp.SessionState.Intent.Name != "VerifyIdentity" {
		t.Fatalf("intent = %+v, want VerifyIdentity", resp.SessionState.Intent)
	}
	if len(resp.Messages) != 1 || resp.Messages[0].ContentType != ContentPlainText {
		t.Fatalf("messages = %+v, want one plain text message", resp.Messages)
	}
}

func TestElicitIntentCarriesSuggestionCard(t *testing.T) {
	t.Parallel()

	resp := ElicitIntent(map[string]string{}, "How can I help?")

	if resp.SessionState.DialogAction.Type != ActionElicitIntent {
		t.Fatalf("dialog action = %q, want ElicitIntent", resp.SessionState.DialogAction.Type)
	}
	if len(resp.Messages) != 2 {
		t.Fatalf("expected plain message plus card, got %d messages", len(resp.Messages))
	}
	card := resp.Messages[1]
	if card.ContentType != ContentImageResponseCard || card.ImageResponseCard == nil {
		t.Fatalf("second message is not an image response card: %+v", card)
	}
	if len(card.ImageResponseCard.Buttons) != 2 {
		t.Fatalf("expected two buttons, got %d", len(card.ImageResponseCard.Buttons))
	}
	if card.ImageResponseCard.Buttons[0].Text != "Emergency Helpline" {
		t.Fatalf("button[0] = %q, want Emergency Helpline", card.ImageResponseCard.Buttons[0].Text)
	}
	if card.ImageResponseCard.Buttons[1].Text != "Ask Alex Buddy" {
		t.Fatalf("button[1] = %q, want Ask Alex Buddy", card.ImageResponseCard.Buttons[1].Text)
	}
}

func TestDelegateShape(t *testing.T) {
	t.Parallel()

	resp := Delegate(map[string]string{}, map[string]string{}, Intent{Name: "BookSession"}, "")

	if resp.SessionState.DialogAction.Type != ActionDelegate {
		t.Fatalf("dialog action = %q, want Delegate", resp.SessionState.DialogAction.Type)
	}
	if len(resp.SessionState.ActiveContexts) != 1 {
		t.Fatalf("expected one active context, got %d", len(resp.SessionState.ActiveContexts))
	}
	if len(resp.Messages) != 0 {
		t.Fatalf("expected no messages for empty delegate message, got %d", len(resp.Messages))
	}
}

func TestCloseDefaultsConfirmationState(t *testing.T) {
	t.Parallel()

	slots := map[string]*Slot{
		"Selection": {Value: &SlotValue{OriginalValue: "2"}},
	}
	resp := Close(map[string]string{}, Intent{Name: "Emergencyhelpline", Slots: slots}, "done")

	if resp.SessionState.DialogAction.Type != ActionClose {
		t.Fatalf("dialog action = %q, want Close", resp.SessionState.DialogAction.Type)
	}
	closed := resp.SessionState.Intent
	if closed == nil {
		t.Fatal("closed intent is nil")
	}
	if closed.State != IntentStateFulfilled {
		t.Fatalf("intent state = %q, want Fulfilled", closed.State)
	}
	if closed.ConfirmationState != ConfirmationNone {
		t.Fatalf("confirmation state = %q, want None", closed.ConfirmationState)
	}
	if closed.Slots["Selection"] == nil {
		t.Fatal("slots were not preserved on close")
	}
}

func TestClosePreservesExplicitConfirmationState(t *testing.T) {
	t.Parallel()

	resp := Close(nil, Intent{Name: "Emergencyhelpline", ConfirmationState: "Confirmed"}, "done")

	if got := resp.SessionState.Intent.ConfirmationState; got != "Confirmed" {
		t.Fatalf("confirmation state = %q, want Confirmed", got)
	}
}
