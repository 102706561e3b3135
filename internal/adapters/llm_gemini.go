package adapters

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	genai "google.golang.org/genai"

	"llm-game-gen/internal/types"
)

// GeminiAdapter is a thin wrapper around the official genai client,
// available as an alternative to the default Ollama backend. The API
// key is read from the environment by the genai client itself.
type GeminiAdapter struct {
	client      *genai.Client
	model       string
	temperature float64
}

func NewGeminiAdapter(ctx context.Context, model string, temperature float64) (*GeminiAdapter, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create gemini client").
			WithCause(err)
	}
	return &GeminiAdapter{client: client, model: model, temperature: temperature}, nil
}

func (a *GeminiAdapter) Chat(ctx context.Context, messages []types.ChatMessage) (string, error) {
	var contents []*genai.Content
	config := &genai.GenerateContentConfig{ResponseMIMEType: "application/json"}
	if a.temperature > 0 {
		temperature := float32(a.temperature)
		config.Temperature = &temperature
	}
	for _, message := range messages {
		switch message.Role {
		case types.RoleSystem:
			config.SystemInstruction = &genai.Content{
				Parts: []*genai.Part{{Text: message.Content}},
			}
		case types.RoleAssistant:
			contents = append(contents, &genai.Content{
				Role:  "model",
				Parts: []*genai.Part{{Text: message.Content}},
			})
		default:
			contents = append(contents, &genai.Content{
				Role:  "user",
				Parts: []*genai.Part{{Text: message.Content}},
			})
		}
	}
	response, err := a.client.Models.GenerateContent(ctx, a.model, contents, config)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("gemini chat failed").
			WithCause(err)
	}
	if len(response.Candidates) == 0 || response.Candidates[0].Content == nil ||
		len(response.Candidates[0].Content.Parts) == 0 {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("gemini returned an empty candidate")
	}
	return response.Candidates[0].Content.Parts[0].Text, nil
}
