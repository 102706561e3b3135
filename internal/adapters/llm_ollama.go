package adapters

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/ollama/ollama/api"

	"llm-game-gen/internal/types"
)

// OllamaAdapter talks to a local Ollama server. Requests are
// non-streaming and set keep-alive to zero so the model is unloaded
// after each generation.
type OllamaAdapter struct {
	client      *api.Client
	model       string
	temperature float64
}

func NewOllamaAdapter(host string, model string, temperature float64) (*OllamaAdapter, error) {
	var client *api.Client
	if strings.TrimSpace(host) == "" {
		fromEnv, err := api.ClientFromEnvironment()
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create ollama client").
				WithCause(err)
		}
		client = fromEnv
	} else {
		base, err := url.Parse(host)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("invalid ollama host").
				WithCause(err)
		}
		client = api.NewClient(base, http.DefaultClient)
	}
	return &OllamaAdapter{client: client, model: model, temperature: temperature}, nil
}

func (a *OllamaAdapter) Chat(ctx context.Context, messages []types.ChatMessage) (string, error) {
	converted := make([]api.Message, 0, len(messages))
	for _, message := range messages {
		converted = append(converted, api.Message{
			Role:    string(message.Role),
			Content: message.Content,
		})
	}
	stream := false
	request := &api.ChatRequest{
		Model:     a.model,
		Messages:  converted,
		Stream:    &stream,
		KeepAlive: &api.Duration{Duration: 0},
		Options:   map[string]any{"temperature": a.temperature},
	}
	var reply strings.Builder
	err := a.client.Chat(ctx, request, func(response api.ChatResponse) error {
		reply.WriteString(response.Message.Content)
		return nil
	})
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("ollama chat failed").
			WithCause(err)
	}
	return reply.String(), nil
}
