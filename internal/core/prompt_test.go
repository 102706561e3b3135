package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"llm-game-gen/internal/types"
)

func TestGenerationPromptDefaults(t *testing.T) {
	prompt := GenerationPrompt(types.Generation{})
	assert.Contains(t, prompt, "6 rooms")
	assert.Contains(t, prompt, "5 items")
	assert.NotContains(t, prompt, "Theme:")
}

func TestGenerationPromptWithTheme(t *testing.T) {
	prompt := GenerationPrompt(types.Generation{Theme: "abandoned lighthouse", Rooms: 4, Items: 3})
	assert.Contains(t, prompt, "4 rooms")
	assert.Contains(t, prompt, "3 items")
	assert.Contains(t, prompt, "Theme: abandoned lighthouse.")
}

func TestExtractJSONBareObject(t *testing.T) {
	doc, err := ExtractJSON(`  {"rooms": []}  `)
	require.NoError(t, err)
	assert.Equal(t, `{"rooms": []}`, string(doc))
}

func TestExtractJSONStripsFences(t *testing.T) {
	doc, err := ExtractJSON("```json\n{\"rooms\": []}\n```")
	require.NoError(t, err)
	assert.Equal(t, `{"rooms": []}`, string(doc))
}

func TestExtractJSONSkipsChatter(t *testing.T) {
	doc, err := ExtractJSON("Sure! Here is your game:\n{\"rooms\": [{\"roomName\": \"A\"}]}\nEnjoy!")
	require.NoError(t, err)
	assert.Equal(t, `{"rooms": [{"roomName": "A"}]}`, string(doc))
}

func TestExtractJSONNoObject(t *testing.T) {
	_, err := ExtractJSON("I cannot help with that.")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no json object")
}

func TestRepairPromptQuotesDecodeError(t *testing.T) {
	_, err := DecodeGameData([]byte(`{"rooms": []}`))
	require.Error(t, err)
	prompt := RepairPrompt(err)
	assert.Contains(t, prompt, "non-empty `rooms` array")
	assert.Contains(t, prompt, "corrected JSON document")
}
