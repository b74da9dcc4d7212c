// Package intents holds one handler per supported intent. Each handler is a
// small decision procedure over the current slot and session state that emits
// exactly one turn-control directive.
package intents

import (
	"context"

	lexv2x "alexbuddy/agent/lexv2"
)

// Handler fulfills one conversation turn for a single intent.
type Handler interface {
	Handle(ctx context.Context, ev *lexv2x.TurnEvent) (*lexv2x.Response, error)
}

// AgentInvoker forwards a free-text prompt to the language-model agent.
type AgentInvoker interface {
	Invoke(ctx context.Context, prompt, sessionID string) (string, error)
}
