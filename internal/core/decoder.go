package core

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"llm-game-gen/internal/types"
)

// The wire format is a single JSON document: a root object holding a
// `rooms` array of room objects, each of which may embed item objects.
// Rooms reference each other (`roomConnections`) and items
// (`roomRequirements`) by name, and the references may point forward to
// rooms and items that appear later in the array.

var rootKeys = map[string]struct{}{
	"rooms": {},
}

var roomKeys = map[string]struct{}{
	"roomStart":        {},
	"roomName":         {},
	"roomDescription":  {},
	"roomItems":        {},
	"roomRequirements": {},
	"roomConnections":  {},
}

var itemKeys = map[string]struct{}{
	"itemObjective":   {},
	"itemName":        {},
	"itemDescription": {},
}

type objectKind int

const (
	kindUnknown objectKind = iota
	kindRoot
	kindRoom
	kindItem
)

// pendingRefs carries a room's by-name references until every room and
// item has been decoded, so forward references resolve.
type pendingRefs struct {
	room         *types.Room
	requirements []string
	connections  []string
}

type gameDataDecoder struct {
	rooms     []*types.Room
	roomRefs  map[string]*types.Room
	itemRefs  map[string]types.Item
	objective *types.Item
	starting  *types.Room
	pending   []pendingRefs
}

// DecodeGameData decodes and validates a game-data JSON document,
// resolving room connections and item requirements by name.
func DecodeGameData(data []byte) (types.GameData, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil {
		return types.GameData{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unable to parse game data json").
			WithCause(err)
	}
	if kind, err := classifyObject(root); err != nil {
		return types.GameData{}, err
	} else if kind != kindRoot {
		return types.GameData{}, gameDataError("the top-level json object must hold a `rooms` array")
	}

	var rawRooms []json.RawMessage
	if raw, ok := root["rooms"]; ok {
		if err := json.Unmarshal(raw, &rawRooms); err != nil {
			return types.GameData{}, gameDataError("there must be a non-empty `rooms` array")
		}
	}
	if len(rawRooms) == 0 {
		return types.GameData{}, gameDataError("there must be a non-empty `rooms` array")
	}

	decoder := &gameDataDecoder{
		roomRefs: map[string]*types.Room{},
		itemRefs: map[string]types.Item{},
	}
	for _, rawRoom := range rawRooms {
		if err := decoder.decodeRoom(rawRoom); err != nil {
			return types.GameData{}, err
		}
	}
	decoder.resolve()

	if decoder.objective == nil {
		return types.GameData{}, gameDataError("there must be at least one item with `itemObjective` set to `true`")
	}
	if decoder.starting == nil {
		return types.GameData{}, gameDataError("there must be at least one room with `roomStart` set to `true`")
	}
	return types.GameData{
		Rooms:        decoder.rooms,
		Objective:    *decoder.objective,
		StartingRoom: decoder.starting,
	}, nil
}

func (d *gameDataDecoder) decodeRoom(raw json.RawMessage) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return gameDataError("each array element in `rooms` must be a room object")
	}
	kind, err := classifyObject(fields)
	if err != nil {
		return err
	}
	if kind != kindRoom {
		return gameDataError("each array element in `rooms` must be a room object")
	}

	name, err := requiredString(fields, "roomName", "each room must have a non-empty `roomName` string")
	if err != nil {
		return err
	}
	description, err := requiredString(fields, "roomDescription", "each room must have a non-empty `roomDescription` string")
	if err != nil {
		return err
	}
	room := &types.Room{Name: name, Description: description}

	start, err := optionalBool(fields, "roomStart", fmt.Sprintf("in room `%s`, the field `roomStart` must be a boolean", name))
	if err != nil {
		return err
	}
	if start {
		if d.starting != nil {
			return gameDataError("there must be only one room with `roomStart` set to `true`")
		}
		d.starting = room
	}

	if raw, ok := fields["roomItems"]; ok {
		var rawItems []json.RawMessage
		if err := json.Unmarshal(raw, &rawItems); err != nil {
			return gameDataError(fmt.Sprintf("in room `%s`, the field `roomItems` must be an array", name))
		}
		for _, rawItem := range rawItems {
			item, err := d.decodeItem(rawItem, name)
			if err != nil {
				return err
			}
			room.Items = append(room.Items, item)
		}
	}

	requirements, err := optionalStringArray(fields, "roomRequirements", name)
	if err != nil {
		return err
	}
	connections, err := optionalStringArray(fields, "roomConnections", name)
	if err != nil {
		return err
	}

	d.pending = append(d.pending, pendingRefs{
		room:         room,
		requirements: requirements,
		connections:  connections,
	})
	d.roomRefs[name] = room
	d.rooms = append(d.rooms, room)
	return nil
}

func (d *gameDataDecoder) decodeItem(raw json.RawMessage, roomName string) (types.Item, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return types.Item{}, gameDataError(fmt.Sprintf("in room `%s`, each element of `roomItems` must be an item object", roomName))
	}
	kind, err := classifyObject(fields)
	if err != nil {
		return types.Item{}, err
	}
	if kind != kindItem {
		return types.Item{}, gameDataError(fmt.Sprintf("in room `%s`, each element of `roomItems` must be an item object", roomName))
	}

	name, err := requiredString(fields, "itemName", "each item must have a non-empty `itemName` string")
	if err != nil {
		return types.Item{}, err
	}
	description, err := requiredString(fields, "itemDescription", "each item must have a non-empty `itemDescription` string")
	if err != nil {
		return types.Item{}, err
	}
	item := types.Item{Name: name, Description: description}

	objective, err := optionalBool(fields, "itemObjective", fmt.Sprintf("in item `%s`, the field `itemObjective` must be a boolean", name))
	if err != nil {
		return types.Item{}, err
	}
	if objective {
		if d.objective != nil {
			return types.Item{}, gameDataError("there must be only one item with `itemObjective` set to `true`")
		}
		d.objective = &item
	}
	d.itemRefs[name] = item
	return item, nil
}

// resolve wires up by-name references once the whole document has been
// decoded. Self-connections, references to unknown names, and
// requirements already present in the room's own item list are dropped.
func (d *gameDataDecoder) resolve() {
	for _, refs := range d.pending {
		room := refs.room
		for _, target := range refs.connections {
			if target == room.Name {
				continue
			}
			connected, ok := d.roomRefs[target]
			if !ok {
				log.Debug().Str("room", room.Name).Str("connection", target).
					Msg("dropping connection to unknown room")
				continue
			}
			room.Connections = append(room.Connections, connected)
		}
		for _, target := range refs.requirements {
			item, ok := d.itemRefs[target]
			if !ok {
				log.Debug().Str("room", room.Name).Str("requirement", target).
					Msg("dropping requirement for unknown item")
				continue
			}
			if containsItem(room.Items, item) {
				continue
			}
			room.Requirements = append(room.Requirements, item)
		}
	}
}

// classifyObject matches an object's key set against the three schemas.
// A key set that is a subset of exactly the root, room, or item keys
// identifies the object; anything else is an error naming the unknown
// fields when there are any.
func classifyObject(fields map[string]json.RawMessage) (objectKind, error) {
	if len(fields) == 0 {
		return kindUnknown, gameDataError("each json object must not be empty")
	}
	if subsetOf(fields, rootKeys) {
		return kindRoot, nil
	}
	if subsetOf(fields, roomKeys) {
		return kindRoom, nil
	}
	if subsetOf(fields, itemKeys) {
		return kindItem, nil
	}
	var unknown []string
	for key := range fields {
		if !knownKey(key) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return kindUnknown, gameDataError(fmt.Sprintf("unknown field(s) in the json object: %s", strings.Join(unknown, ", ")))
	}
	return kindUnknown, gameDataError("json object contains fields of another object type")
}

func subsetOf(fields map[string]json.RawMessage, schema map[string]struct{}) bool {
	for key := range fields {
		if _, ok := schema[key]; !ok {
			return false
		}
	}
	return true
}

func knownKey(key string) bool {
	if _, ok := rootKeys[key]; ok {
		return true
	}
	if _, ok := roomKeys[key]; ok {
		return true
	}
	_, ok := itemKeys[key]
	return ok
}

func requiredString(fields map[string]json.RawMessage, key string, msg string) (string, error) {
	raw, ok := fields[key]
	if !ok {
		return "", gameDataError(msg)
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil || strings.TrimSpace(value) == "" {
		return "", gameDataError(msg)
	}
	return value, nil
}

func optionalBool(fields map[string]json.RawMessage, key string, msg string) (bool, error) {
	raw, ok := fields[key]
	if !ok {
		return false, nil
	}
	var value bool
	if err := json.Unmarshal(raw, &value); err != nil {
		return false, gameDataError(msg)
	}
	return value, nil
}

func optionalStringArray(fields map[string]json.RawMessage, key string, roomName string) ([]string, error) {
	raw, ok := fields[key]
	if !ok {
		return nil, nil
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, gameDataError(fmt.Sprintf("in room `%s`, the field `%s` must be an array of strings", roomName, key))
	}
	for _, value := range values {
		if strings.TrimSpace(value) == "" {
			return nil, gameDataError(fmt.Sprintf("in room `%s`, each element of `%s` must be a non-empty string", roomName, key))
		}
	}
	return values, nil
}

func containsItem(items []types.Item, item types.Item) bool {
	for _, candidate := range items {
		if candidate == item {
			return true
		}
	}
	return false
}

func gameDataError(msg string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(msg)
}
