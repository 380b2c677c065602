package location

// Location is one of the three top-level menu contexts.
type Location int

const (
	TownSquare Location = iota
	Graveyard
	Room
)

// All returns every location in menu order.
func All() []Location {
	return []Location{TownSquare, Graveyard, Room}
}

// Start is where every session begins.
func Start() Location {
	return TownSquare
}

func (l Location) String() string {
	switch l {
	case TownSquare:
		return "town_square"
	case Graveyard:
		return "graveyard"
	case Room:
		return "room"
	}
	return "unknown"
}

// Title is the heading shown above the location's menu.
func (l Location) Title() string {
	switch l {
	case TownSquare:
		return "== Town Square =="
	case Graveyard:
		return "== Graveyard =="
	case Room:
		return "== Your Safehouse =="
	}
	return ""
}

// Valid reports whether l is one of the known locations.
func (l Location) Valid() bool {
	return l >= TownSquare && l <= Room
}
