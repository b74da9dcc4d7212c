package contract

import "context"

// Generator is a prompt-in, text-out language-generation service. The maximum
// output length is fixed at client construction, not per call.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// MemoryStore keeps the per-session conversation transcript.
type MemoryStore interface {
	Append(ctx context.Context, sessionID string, rec ConversationRecord) error
	History(ctx context.Context, sessionID string) ([]ConversationRecord, error)
}

// AccountStore looks up existing users by username. None of the intent
// handlers consult it; it exists for the surrounding platform and is only
// health-checked by this service.
type AccountStore interface {
	Lookup(ctx context.Context, username string) (*Account, error)
	Ping(ctx context.Context) error
}
