package core

import (
	"fmt"
	"strings"

	"llm-game-gen/internal/types"
)

// Player tracks a run of the game: the room the player is in, the item
// they are hunting for, and what they carry. Indices in Go and TakeItem
// are 1-based, matching the numbered listings from CheckRooms and
// CheckItems.
type Player struct {
	current   *types.Room
	objective types.Item
	inventory []types.Item
}

func NewPlayer(data types.GameData) *Player {
	return &Player{
		current:   data.StartingRoom,
		objective: data.Objective,
	}
}

// CurrentRoom returns the room the player is in.
func (p *Player) CurrentRoom() *types.Room {
	return p.current
}

// CheckRooms lists the rooms connected to the current room.
func (p *Player) CheckRooms() string {
	var lines []string
	for idx, room := range p.current.Connections {
		lines = append(lines, fmt.Sprintf("%d. %s", idx+1, room.Name))
	}
	if len(lines) == 0 {
		return "There are no connected rooms. You are stuck."
	}
	return strings.Join(lines, "\n")
}

// CheckItems lists the items lying in the current room.
func (p *Player) CheckItems() string {
	var lines []string
	for idx, item := range p.current.Items {
		lines = append(lines, fmt.Sprintf("%d. %s", idx+1, item))
	}
	if len(lines) == 0 {
		return fmt.Sprintf("There are no items in `%s`.", p.current.Name)
	}
	return strings.Join(lines, "\n")
}

// CheckInventory lists what the player carries.
func (p *Player) CheckInventory() string {
	var lines []string
	for _, item := range p.inventory {
		lines = append(lines, fmt.Sprintf("* %s", item))
	}
	if len(lines) == 0 {
		return "There are no items in the inventory."
	}
	return strings.Join(lines, "\n")
}

// Go moves the player through the connection with the given 1-based
// index. Movement is blocked unless every requirement item of the
// target room is in the inventory.
func (p *Player) Go(idx int) string {
	if idx < 1 || idx > len(p.current.Connections) {
		return fmt.Sprintf("There is no connection with index %d.", idx)
	}
	next := p.current.Connections[idx-1]
	canGo := true
	var required []string
	for _, item := range next.Requirements {
		required = append(required, fmt.Sprintf("`%s`", item.Name))
		if !p.carries(item) {
			canGo = false
		}
	}
	if !canGo {
		return fmt.Sprintf("You can't go to `%s`, you need: %s.", next.Name, strings.Join(required, ", "))
	}
	p.current = next
	return fmt.Sprintf("You went to: %s", p.current)
}

// TakeItem removes the item with the given 1-based index from the
// current room. Taking the objective ends the game; anything else goes
// into the inventory.
func (p *Player) TakeItem(idx int) (string, bool) {
	if idx < 1 || idx > len(p.current.Items) {
		return fmt.Sprintf("There is no item with index %d.", idx), false
	}
	item := p.current.Items[idx-1]
	p.current.Items = append(p.current.Items[:idx-1], p.current.Items[idx:]...)
	if item == p.objective {
		return fmt.Sprintf("You found `%s`!", p.objective.Name), true
	}
	p.inventory = append(p.inventory, item)
	return fmt.Sprintf("You took `%s`.", item.Name), false
}

func (p *Player) carries(item types.Item) bool {
	for _, carried := range p.inventory {
		if carried == item {
			return true
		}
	}
	return false
}
