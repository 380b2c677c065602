package location

// Art returns the banner drawn under the location's title.
func (l Location) Art() string {
	switch l {
	case TownSquare:
		return townSquareArt
	case Graveyard:
		return graveyardArt
	case Room:
		return roomArt
	}
	return ""
}

const townSquareArt = `
╔════════════════════════════════════════════════════════════╗
║                             △ Neon Agora △                 ║
║  ╱╲ ╱╲ ╱╲    Plasma lanterns flicker above chrome cobbles  ║
║  ╲╱ ╲╱ ╲╱    Couriers barter packets, drones hum overhead  ║
╚════════════════════════════════════════════════════════════╝
`

const graveyardArt = `
╔════════════════════════════════════════════════════════════╗
║                     ☠ Crypt of Lost Processes ☠            ║
║  ┌─┐ ┌─┐ ┌─┐   Tomb relays glow with cold teal sigils      ║
║  └─┘ └─┘ └─┘   Binary incense drifts between obelisks      ║
╚════════════════════════════════════════════════════════════╝
`

const roomArt = `
╔════════════════════════════════════════════════════════════╗
║                      ◎ Safehouse 7 ◎                       ║
║  Neon vines crawl along carbon walls. A chest hums softly, ║
║  the closet door hides a dozen launchers, and the window   ║
║  overlooks a rain-soaked skyline.                          ║
╚════════════════════════════════════════════════════════════╝
`
