package ai

import (
	"context"
)

// Provider is the contract for the upstream completion service.
// It supports chat-style messages, declared tools, and forcing the model to
// invoke a named tool instead of choosing freely.
type Provider interface {
	Complete(ctx context.Context, req Request) (*Completion, error)
}
