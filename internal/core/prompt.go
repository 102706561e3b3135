package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"llm-game-gen/internal/types"
)

const defaultRooms = 6
const defaultItems = 5

// systemPrompt teaches the model the exact wire format the decoder
// accepts. Keep it in sync with the schemas in decoder.go.
const systemPrompt = `You are a game designer producing data for a small text adventure.
Reply with a single JSON document and nothing else: no prose, no markdown fences.

The document is an object with one field, "rooms", a non-empty array of room objects.
A room object has:
  "roomName": non-empty string, unique across rooms
  "roomDescription": non-empty string
  "roomStart": boolean, true for exactly one room
  "roomItems": array of item objects (may be empty or omitted)
  "roomRequirements": array of item names the player must carry to enter (may be omitted)
  "roomConnections": array of room names reachable from this room (may be omitted)
An item object has:
  "itemName": non-empty string, unique across items
  "itemDescription": non-empty string
  "itemObjective": boolean, true for exactly one item in the whole document

Every name in "roomConnections" must match a roomName in the document, and every
name in "roomRequirements" must match an itemName placed in some other room.
The starting room must be able to reach the objective: connections form a path,
and every required item is obtainable before it is needed.`

// SystemPrompt returns the instruction message for game generation.
func SystemPrompt() string {
	return systemPrompt
}

// GenerationPrompt builds the user request from the pack's generation
// settings. Zero values fall back to a small default world.
func GenerationPrompt(opts types.Generation) string {
	rooms := opts.Rooms
	if rooms <= 0 {
		rooms = defaultRooms
	}
	items := opts.Items
	if items <= 0 {
		items = defaultItems
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a game with %d rooms and %d items.", rooms, items)
	if strings.TrimSpace(opts.Theme) != "" {
		fmt.Fprintf(&b, " Theme: %s.", strings.TrimSpace(opts.Theme))
	}
	b.WriteString(" Place the objective item away from the starting room, and gate at" +
		" least one connection behind a requirement item.")
	return b.String()
}

// RepairPrompt asks the model to fix its previous reply, quoting the
// decode error it caused.
func RepairPrompt(decodeErr error) string {
	return fmt.Sprintf("Your previous reply was rejected: %s. "+
		"Send the corrected JSON document, and nothing else.", errorMessage(decodeErr))
}

// ExtractJSON pulls the JSON document out of a model reply. Models
// asked for bare JSON still wrap it in markdown fences or chatter
// often enough that the raw reply cannot be decoded directly.
func ExtractJSON(reply string) ([]byte, error) {
	trimmed := strings.TrimSpace(reply)
	if fenced, ok := stripFences(trimmed); ok {
		trimmed = fenced
	}
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start < 0 || end <= start {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("reply contains no json object")
	}
	return []byte(trimmed[start : end+1]), nil
}

func stripFences(reply string) (string, bool) {
	if !strings.HasPrefix(reply, "```") {
		return "", false
	}
	body := strings.TrimPrefix(reply, "```json")
	body = strings.TrimPrefix(body, "```")
	if idx := strings.LastIndex(body, "```"); idx >= 0 {
		body = body[:idx]
	}
	return strings.TrimSpace(body), true
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
