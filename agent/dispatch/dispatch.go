// Package dispatch maps an inbound turn's intent name onto its handler.
package dispatch

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	intentsx "alexbuddy/agent/intents"
	lexv2x "alexbuddy/agent/lexv2"
)

// Supported scripted intent names. Anything else takes the fallback route.
const (
	IntentVerifyIdentity    = "VerifyIdentity"
	IntentEmergencyHelpline = "Emergencyhelpline"
)

// Route is the closed set of dispatch targets.
type Route string

const (
	RouteVerifyIdentity    Route = "verify_identity"
	RouteEmergencyHelpline Route = "emergency_helpline"
	RouteFallback          Route = "fallback"
)

// RouteFor classifies an intent name. Total: unknown names route to fallback,
// so dispatch itself can never fail on the intent name.
func RouteFor(intentName string) Route {
	switch intentName {
	case IntentVerifyIdentity:
		return RouteVerifyIdentity
	case IntentEmergencyHelpline:
		return RouteEmergencyHelpline
	default:
		return RouteFallback
	}
}

// Dispatcher routes one turn event to the handler for its intent. Missing
// handlers are a construction-time error, not a runtime branch.
type Dispatcher struct {
	handlers map[Route]intentsx.Handler
}

func New(identity, helpline, fallback intentsx.Handler) (*Dispatcher, error) {
	handlers := map[Route]intentsx.Handler{
		RouteVerifyIdentity:    identity,
		RouteEmergencyHelpline: helpline,
		RouteFallback:          fallback,
	}
	for route, h := range handlers {
		if h == nil {
			return nil, errors.New("no handler for route " + string(route))
		}
	}
	return &Dispatcher{handlers: handlers}, nil
}

// Dispatch handles exactly one conversation turn, synchronously, to
// completion. Handler errors surface unchanged.
func (d *Dispatcher) Dispatch(ctx context.Context, ev *lexv2x.TurnEvent) (*lexv2x.Response, error) {
	if ev == nil {
		return nil, errors.New("turn event is nil")
	}

	route := RouteFor(ev.SessionState.Intent.Name)
	log.Debug().
		Str("session_id", ev.SessionID).
		Str("intent", ev.SessionState.Intent.Name).
		Str("route", string(route)).
		Msg("dispatching turn")

	return d.handlers[route].Handle(ctx, ev)
}
