package ports

import (
	"context"

	"llm-game-gen/internal/types"
)

// LLMPort is a chat-completion backend. Implementations are constructed
// per request with a concrete model and host; Chat sends the full
// conversation and returns the assistant reply as plain text.
type LLMPort interface {
	Chat(ctx context.Context, messages []types.ChatMessage) (string, error)
}

// BackendConfig selects and configures an LLM backend.
type BackendConfig struct {
	Backend     types.BackendKind
	Model       string
	Host        string
	Temperature float64
}

// LLMFactory builds a backend client from config. The app layer holds a
// factory rather than a client so that backend selection stays a runtime
// decision.
type LLMFactory func(ctx context.Context, cfg BackendConfig) (LLMPort, error)
