package app

import (
	"context"
	"time"

	"llm-game-gen/internal/adapters"
	"llm-game-gen/internal/ports"
	"llm-game-gen/internal/types"
)

type Service struct {
	Store    ports.PackStorePort
	Lockfile ports.LockfilePort
	Specs    ports.PackSpecPort
	NewLLM   ports.LLMFactory
	Clock    func() time.Time
}

func NewService() Service {
	return Service{
		Store:    adapters.NewPackStoreAdapter(),
		Lockfile: adapters.NewLockFileAdapter(),
		Specs:    adapters.NewPackSpecAdapter(),
		NewLLM:   newBackend,
		Clock:    time.Now,
	}
}

func newBackend(ctx context.Context, cfg ports.BackendConfig) (ports.LLMPort, error) {
	switch cfg.Backend {
	case types.BackendGemini:
		return adapters.NewGeminiAdapter(ctx, cfg.Model, cfg.Temperature)
	default:
		return adapters.NewOllamaAdapter(cfg.Host, cfg.Model, cfg.Temperature)
	}
}
