// Package buddy invokes the language-model agent behind free-text turns and
// maintains the session's conversation memory around each invocation.
package buddy

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	contractx "alexbuddy/agent/contract"
)

var (
	ErrEmptyPrompt    = errors.New("prompt is empty")
	ErrInvalidSession = errors.New("session id is empty")
)

// Option customizes an Invoker.
type Option func(*Invoker)

func WithClock(now func() time.Time) Option {
	return func(iv *Invoker) {
		if now != nil {
			iv.now = now
		}
	}
}

func WithLocation(loc *time.Location) Option {
	return func(iv *Invoker) {
		if loc != nil {
			iv.location = loc
		}
	}
}

// Invoker is the adapter between a free-text turn and the generation service.
// One Invoke call records the human turn, produces a memory-grounded reply,
// and stores a recap of that reply as the assistant's turn.
type Invoker struct {
	generator contractx.Generator
	memory    contractx.MemoryStore
	now       func() time.Time
	location  *time.Location
}

func New(generator contractx.Generator, memory contractx.MemoryStore, opts ...Option) (*Invoker, error) {
	if generator == nil {
		return nil, errors.New("generator is required")
	}
	if memory == nil {
		return nil, errors.New("memory store is required")
	}

	iv := &Invoker{
		generator: generator,
		memory:    memory,
		now:       time.Now,
		location:  time.UTC,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(iv)
		}
	}
	return iv, nil
}

// Invoke runs one agent turn. Failures of the memory store or the generation
// service are not recovered here; they propagate to the caller.
//
// Side effect on success: the session transcript grows by one human-tagged
// record (the prompt) and exactly one assistant-tagged record (the recap of
// the reply). The returned text is the full reply, never the recap.
func (iv *Invoker) Invoke(ctx context.Context, prompt, sessionID string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}
	if strings.TrimSpace(sessionID) == "" {
		return "", ErrInvalidSession
	}

	if err := iv.memory.Append(ctx, sessionID, contractx.ConversationRecord{
		Role:      contractx.RoleHuman,
		Content:   prompt,
		CreatedAt: iv.timestamp(),
	}); err != nil {
		return "", fmt.Errorf("record human turn: %w", err)
	}

	history, err := iv.memory.History(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("read conversation memory: %w", err)
	}

	reply, err := iv.generator.Generate(ctx, renderPrompt(history))
	if err != nil {
		return "", err
	}

	recap, err := iv.generator.Generate(ctx, summaryPrompt(reply))
	if err != nil {
		return "", err
	}

	if err := iv.memory.Append(ctx, sessionID, contractx.ConversationRecord{
		Role:      contractx.RoleAssistant,
		Content:   recap,
		CreatedAt: iv.timestamp(),
	}); err != nil {
		return "", fmt.Errorf("record assistant turn: %w", err)
	}

	return reply, nil
}

func (iv *Invoker) timestamp() time.Time {
	return iv.now().In(iv.location)
}
