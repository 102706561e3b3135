package types

type SpecKind string

const (
	SpecKindPack SpecKind = "pack"
)

type BackendKind string

const (
	BackendOllama BackendKind = "ollama"
	BackendGemini BackendKind = "gemini"
)

type MessageRole string

const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// ChatMessage is one turn of an LLM conversation.
type ChatMessage struct {
	Role    MessageRole
	Content string
}
