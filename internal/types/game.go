package types

import "fmt"

// Item is a takeable object in the game world. Items compare by value:
// two items are the same item when both name and description match.
type Item struct {
	Name        string
	Description string
}

func (i Item) String() string {
	return fmt.Sprintf("%s - %s.", i.Name, i.Description)
}

// Room is a node in the world graph. Connections hold pointers so that
// decoded rooms share identity: taking an item out of a room is visible
// from every room connected to it.
type Room struct {
	Name         string
	Description  string
	Items        []Item
	Requirements []Item
	Connections  []*Room
}

func (r *Room) String() string {
	return fmt.Sprintf("%s - %s.", r.Name, r.Description)
}

// GameData is a fully decoded, reference-resolved game world.
type GameData struct {
	Rooms        []*Room
	Objective    Item
	StartingRoom *Room
}
