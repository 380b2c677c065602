package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/syntaxjak/Legend-of-the-Red-Desktop/internal/console"
	"github.com/syntaxjak/Legend-of-the-Red-Desktop/internal/screensaver"
	"github.com/syntaxjak/Legend-of-the-Red-Desktop/pkg/character"
	"github.com/syntaxjak/Legend-of-the-Red-Desktop/pkg/command"
	"github.com/syntaxjak/Legend-of-the-Red-Desktop/pkg/loadout"
	"github.com/syntaxjak/Legend-of-the-Red-Desktop/pkg/location"
	"github.com/syntaxjak/Legend-of-the-Red-Desktop/pkg/progression"
)

// ErrUnknownLocation is returned when the cursor points outside the known locations.
var ErrUnknownLocation = errors.New("unknown location")

const farewell = "Until next time, traveler."

// Game owns the session: where the operator is, who they are, and how
// actions reach the outside world.
type Game struct {
	location  location.Location
	config    *loadout.Config
	character *character.Character
	con       *console.Console
	runner    command.Runner
	log       *slog.Logger

	home          string
	splash        bool
	sleepInterval time.Duration
}

// New creates a game at the town square.
func New(cfg *loadout.Config, ch *character.Character, con *console.Console, runner command.Runner) *Game {
	if cfg == nil {
		cfg = &loadout.Config{}
	}
	if ch == nil {
		ch = character.New(cfg, "")
	}
	return &Game{
		location:      location.Start(),
		config:        cfg,
		character:     ch,
		con:           con,
		runner:        runner,
		log:           slog.Default(),
		splash:        true,
		sleepInterval: screensaver.Interval,
	}
}

// WithLogger sets the logger used for launch and config diagnostics.
func (g *Game) WithLogger(log *slog.Logger) *Game {
	if log != nil {
		g.log = log
	}
	return g
}

// WithHome sets the home directory searched for tombs.
func (g *Game) WithHome(home string) *Game {
	g.home = home
	return g
}

// WithSplash toggles the splash screen shown before the first menu.
func (g *Game) WithSplash(enabled bool) *Game {
	g.splash = enabled
	return g
}

// WithSleepInterval overrides the built-in screensaver frame cadence.
func (g *Game) WithSleepInterval(d time.Duration) *Game {
	g.sleepInterval = d
	return g
}

// Location is the current menu context.
func (g *Game) Location() location.Location {
	return g.location
}

// Character is the operator's dossier.
func (g *Game) Character() *character.Character {
	return g.character
}

// Run drives the menus until the operator quits, input runs out or ctx is
// done. Only a terminal I/O failure is returned as an error.
func (g *Game) Run(ctx context.Context) error {
	g.con.StopOn(ctx)

	keepPlaying := true
	if g.splash {
		ok, err := g.showSplash()
		if err != nil {
			return err
		}
		keepPlaying = ok
	}

	for keepPlaying {
		next, ok, err := g.handle(ctx, g.location)
		if err != nil {
			return err
		}
		if next != g.location {
			g.log.Debug("Moved", "from", g.location.String(), "to", next.String())
		}
		g.location = next
		keepPlaying = ok && ctx.Err() == nil
	}

	if ctx.Err() != nil {
		g.log.Debug("Session interrupted", "location", g.location.String())
	}
	g.con.Println(farewell)
	return nil
}

// handle runs the menu loop of loc and returns the next location and whether
// to keep playing.
func (g *Game) handle(ctx context.Context, loc location.Location) (location.Location, bool, error) {
	if !loc.Valid() {
		return loc, false, fmt.Errorf("%w: %d", ErrUnknownLocation, int(loc))
	}
	switch loc {
	case location.TownSquare:
		return g.handleTownSquare(ctx)
	case location.Graveyard:
		return g.handleGraveyard(ctx)
	default:
		return g.handleRoom(ctx)
	}
}

func (g *Game) handleTownSquare(ctx context.Context) (location.Location, bool, error) {
	for {
		g.showLocation(location.TownSquare)
		g.con.Option("G", "Go to the graveyard")
		g.con.Option("R", "Return to your room")
		g.con.Option("X", "Examine your dossier")
		g.con.Option("Q", "Quit the adventure")

		choice, ok, err := g.con.ReadChoice()
		if err != nil {
			return location.TownSquare, false, err
		}
		if !ok {
			return location.TownSquare, false, nil
		}

		switch choice {
		case 'g':
			return location.Graveyard, true, nil
		case 'r':
			return location.Room, true, nil
		case 'x':
			if keep, err := g.characterSheet(); err != nil || !keep {
				return location.TownSquare, false, err
			}
		case 'q':
			return location.TownSquare, false, nil
		default:
			g.con.Println("That action is not available.")
		}
	}
}

func (g *Game) handleGraveyard(ctx context.Context) (location.Location, bool, error) {
	for {
		g.showLocation(location.Graveyard)
		g.con.Option("S", "Search for encrypted tombs")
		g.con.Option("T", "Trek back to the town square")
		g.con.Option("X", "Examine your dossier")
		g.con.Option("Q", "Quit the adventure")

		choice, ok, err := g.con.ReadChoice()
		if err != nil {
			return location.Graveyard, false, err
		}
		if !ok {
			return location.Graveyard, false, nil
		}

		keep := true
		switch choice {
		case 's':
			keep, err = g.act(ctx, loadout.SearchTombs, progression.RewardMedium, true)
		case 't':
			return location.TownSquare, true, nil
		case 'x':
			keep, err = g.characterSheet()
		case 'q':
			return location.Graveyard, false, nil
		default:
			g.con.Println("Bones do not respond to that command.")
		}
		if err != nil || !keep {
			return location.Graveyard, false, err
		}
	}
}

func (g *Game) handleRoom(ctx context.Context) (location.Location, bool, error) {
	for {
		g.showLocation(location.Room)
		g.con.Option("M", "Mail: check the courier satchel")
		g.con.Option("C", "Computer: boot the virtual mainframe")
		g.con.Option("H", "Hardware chest: deploy network tools")
		g.con.Option("O", "Open the neon closet (games)")
		g.con.Option("E", "Explore the world grid")
		g.con.Option("L", "Lay down for a short rest")
		g.con.Option("B", "Bedtime: start the screensaver")
		g.con.Option("T", "Town square awaits")
		g.con.Option("X", "Examine your dossier")
		g.con.Option("Q", "Quit the adventure")

		choice, ok, err := g.con.ReadChoice()
		if err != nil {
			return location.Room, false, err
		}
		if !ok {
			return location.Room, false, nil
		}

		keep := true
		switch choice {
		case 'm':
			keep, err = g.act(ctx, loadout.CheckMail, progression.RewardSmall, true)
		case 'c':
			keep, err = g.act(ctx, loadout.ComputerTerminal, progression.RewardSmall, true)
		case 'h':
			err = g.openChest()
			if err == nil {
				g.reward(progression.RewardMedium)
			}
		case 'o':
			keep, err = g.act(ctx, loadout.ClosetLauncher, progression.RewardSmall, true)
		case 'e':
			keep, err = g.act(ctx, loadout.ExploreWorld, progression.RewardSmall, true)
		case 'l':
			keep, err = g.act(ctx, loadout.LayDown, progression.RewardSmall, true)
		case 'b':
			keep, err = g.act(ctx, loadout.ActivateScreensaver, progression.RewardMedium, false)
		case 't':
			return location.TownSquare, true, nil
		case 'x':
			keep, err = g.characterSheet()
		case 'q':
			return location.Room, false, nil
		default:
			g.con.Println("The room remains silent.")
		}
		if err != nil || !keep {
			return location.Room, false, err
		}
	}
}

// act dispatches action, grants xp and, for actions that only print, waits
// for ENTER so the output survives the next redraw.
func (g *Game) act(ctx context.Context, action loadout.Action, xp int, pause bool) (bool, error) {
	if err := g.dispatch(ctx, action); err != nil {
		return false, err
	}
	g.reward(xp)
	if !pause {
		return true, nil
	}
	return g.con.Pause()
}

// reward grants XP and reports either the level-up or the progress made.
func (g *Game) reward(amount int) {
	if amount == 0 {
		return
	}
	if level, leveled := g.character.GainXP(amount); leveled {
		g.log.Info("Level up", "level", level)
		g.con.Highlight(fmt.Sprintf("You feel your skills sharpen. Level up! (Lv %d)", level))
		return
	}
	g.con.Info(fmt.Sprintf("You gain %d XP. (%d/%d)", amount, g.character.XP, g.character.Threshold()))
}

func (g *Game) showLocation(loc location.Location) {
	g.con.Clear()
	g.con.Println("")
	g.con.Heading(loc.Title())
	g.con.Art(loc.Art())
}

func (g *Game) showSplash() (bool, error) {
	g.con.Clear()
	g.con.Art(splashArt)
	return g.con.WaitForEnter("Press ENTER to enter the Neon Agora...")
}
