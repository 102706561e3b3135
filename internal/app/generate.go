package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"llm-game-gen/internal/core"
	"llm-game-gen/internal/ports"
	"llm-game-gen/internal/types"
)

const defaultAttempts = 3
const defaultModel = "llama3.2"

// Generation uses the original project's sampling temperature.
const defaultTemperature = 0.69

// Generate asks the configured LLM backend for a new game-data pack,
// decoding its reply and feeding decode failures back to the model for
// repair until the reply validates or the attempt budget runs out. The
// accepted document is written to the data dir; the lock file is not
// touched, so a `lock` run must follow.
func (s Service) Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error) {
	spec := types.PackSpec{}
	if strings.TrimSpace(req.SpecPath) != "" {
		loaded, err := s.Specs.LoadPack(req.SpecPath)
		if err != nil {
			return GenerateResult{}, err
		}
		spec = loaded
	}
	dataDir := firstNonEmpty(req.DataDir, spec.Defaults.DataDir)
	if dataDir == "" {
		return GenerateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("data dir is required")
	}

	generation := spec.Generation
	if strings.TrimSpace(req.Theme) != "" {
		generation.Theme = req.Theme
	}
	if req.Rooms > 0 {
		generation.Rooms = req.Rooms
	}
	if req.Items > 0 {
		generation.Items = req.Items
	}
	attempts := req.Attempts
	if attempts <= 0 {
		attempts = generation.Attempts
	}
	if attempts <= 0 {
		attempts = defaultAttempts
	}

	llm, err := s.NewLLM(ctx, backendConfig(req, spec))
	if err != nil {
		return GenerateResult{}, err
	}

	messages := []types.ChatMessage{
		{Role: types.RoleSystem, Content: core.SystemPrompt()},
		{Role: types.RoleUser, Content: core.GenerationPrompt(generation)},
	}
	var document []byte
	var data types.GameData
	var lastErr error
	used := 0
	for attempt := 1; attempt <= attempts; attempt++ {
		used = attempt
		reply, err := llm.Chat(ctx, messages)
		if err != nil {
			return GenerateResult{}, err
		}
		decoded, doc, decodeErr := decodeReply(reply)
		if decodeErr == nil {
			document = doc
			data = decoded
			break
		}
		lastErr = decodeErr
		log.Warn().Int("attempt", attempt).Err(decodeErr).
			Msg("model reply rejected, asking for a repair")
		messages = append(messages,
			types.ChatMessage{Role: types.RoleAssistant, Content: reply},
			types.ChatMessage{Role: types.RoleUser, Content: core.RepairPrompt(decodeErr)},
		)
	}
	if document == nil {
		return GenerateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("model did not produce valid game data in %d attempts", attempts)).
			WithCause(lastErr)
	}

	name := strings.TrimSpace(req.Output)
	if name == "" {
		name = fmt.Sprintf("generated-%s.json", s.Clock().UTC().Format("20060102-150405"))
	} else if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	packPath := filepath.Join(dataDir, name)
	if err := s.Store.WritePack(packPath, document); err != nil {
		return GenerateResult{}, err
	}
	log.Info().Str("pack", packPath).Int("attempts", used).Msg("generated game data pack")
	return GenerateResult{
		PackPath: packPath,
		Attempts: used,
		Rooms:    len(data.Rooms),
		Items:    countItems(data),
	}, nil
}

func decodeReply(reply string) (types.GameData, []byte, error) {
	document, err := core.ExtractJSON(reply)
	if err != nil {
		return types.GameData{}, nil, err
	}
	data, err := core.DecodeGameData(document)
	if err != nil {
		return types.GameData{}, nil, err
	}
	return data, document, nil
}

func backendConfig(req GenerateRequest, spec types.PackSpec) ports.BackendConfig {
	backend := types.BackendKind(firstNonEmpty(req.Backend, spec.Defaults.Backend, string(types.BackendOllama)))
	model := firstNonEmpty(req.Model, spec.Defaults.Model, defaultModel)
	temperature := spec.Generation.Temperature
	if temperature <= 0 {
		temperature = defaultTemperature
	}
	return ports.BackendConfig{
		Backend:     backend,
		Model:       model,
		Host:        firstNonEmpty(req.Host, spec.Defaults.Host),
		Temperature: temperature,
	}
}

func countItems(data types.GameData) int {
	total := 0
	for _, room := range data.Rooms {
		total += len(room.Items)
	}
	return total
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
