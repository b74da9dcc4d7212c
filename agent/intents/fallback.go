package intents

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	lexv2x "alexbuddy/agent/lexv2"
)

// FallbackHandler routes any utterance that matched no scripted intent through
// the language-model agent.
type FallbackHandler struct {
	invoker AgentInvoker
}

func NewFallbackHandler(invoker AgentInvoker) (*FallbackHandler, error) {
	if invoker == nil {
		return nil, errors.New("agent invoker is required")
	}
	return &FallbackHandler{invoker: invoker}, nil
}

// Handle sends the raw transcript to the agent on the initial dialog hook and
// relays the reply. On any other invocation source the turn is delegated back
// to the platform with the session attributes unchanged, so every path yields
// a directive.
func (h *FallbackHandler) Handle(ctx context.Context, ev *lexv2x.TurnEvent) (*lexv2x.Response, error) {
	attrs := ev.Attributes()

	if ev.InvocationSource != lexv2x.SourceDialogCodeHook {
		return lexv2x.Delegate(attrs, map[string]string{}, ev.SessionState.Intent, ""), nil
	}

	reply, err := h.invoker.Invoke(ctx, ev.InputTranscript, ev.SessionID)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("session_id", ev.SessionID).
		Str("intent", ev.SessionState.Intent.Name).
		Msg("buddy agent replied")

	return lexv2x.ElicitIntent(attrs, reply), nil
}
