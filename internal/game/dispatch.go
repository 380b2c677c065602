package game

import (
	"context"
	"strconv"
	"strings"

	"github.com/syntaxjak/Legend-of-the-Red-Desktop/internal/logger"
	"github.com/syntaxjak/Legend-of-the-Red-Desktop/internal/screensaver"
	"github.com/syntaxjak/Legend-of-the-Red-Desktop/pkg/loadout"
)

// actionText holds what an action says when its command fails to start and
// when it has no command at all.
type actionText struct {
	launchFailure string
	unconfigured  string
}

var actionTexts = map[loadout.Action]actionText{
	loadout.CheckMail: {
		launchFailure: "Unable to launch mail command",
		unconfigured:  "No mail command configured. Add one under [actions] -> check_mail in lord_config.toml.",
	},
	loadout.ComputerTerminal: {
		launchFailure: "The cyberdeck refuses to boot",
		unconfigured:  "No computer command configured. Assign actions.computer_terminal to launch VMware, virt-manager, etc.",
	},
	loadout.ClosetLauncher: {
		launchFailure: "Unable to open the neon closet",
		unconfigured:  "No closet launcher configured. Set actions.closet_launcher to your preferred game hub.",
	},
	loadout.ExploreWorld: {
		launchFailure: "Exploration systems failed to boot",
		unconfigured:  "No exploration route configured. Point actions.explore_world at a browser like Firefox.",
	},
	loadout.LayDown: {
		launchFailure: "Unable to start short rest command",
		unconfigured:  "You stretch out on the cot. A moment of calm washes over you.",
	},
	loadout.ActivateScreensaver: {
		launchFailure: "Unable to start screensaver command",
	},
}

// dispatch runs the configured command for action or its built-in fallback.
// Launch failures are reported to the operator, not returned.
func (g *Game) dispatch(ctx context.Context, action loadout.Action) error {
	if action == loadout.SearchTombs {
		return g.searchTombs(ctx)
	}

	argv, ok := g.config.Command(action)
	if !ok {
		if action == loadout.ActivateScreensaver {
			return g.sleep(ctx)
		}
		g.con.Hint(actionTexts[action].unconfigured)
		return nil
	}

	g.spawn(string(action), argv, actionTexts[action].launchFailure)
	return nil
}

// spawn starts argv without waiting for it and reports a failed launch.
func (g *Game) spawn(name string, argv []string, failurePrefix string) {
	if err := g.runner.Spawn(argv); err != nil {
		logger.WithError(g.log, err).Debug("Failed to launch command", "action", name, "command", strings.Join(argv, " "))
		g.con.Errorf("%s: %v", failurePrefix, err)
		return
	}
	g.log.Debug("Launched command", "action", name, "command", strings.Join(argv, " "))
}

// searchTombs captures the configured search command's output, falling back
// to the built-in scan when nothing is configured or the command cannot start.
func (g *Game) searchTombs(ctx context.Context) error {
	argv, ok := g.config.Command(loadout.SearchTombs)
	if !ok {
		g.scanTombs()
		return nil
	}

	output, err := g.runner.Capture(ctx, argv)
	if err != nil {
		logger.WithError(g.log, err).Debug("Configured tomb search failed", "command", strings.Join(argv, " "))
		g.con.Errorf("Failed to run configured search: %v", err)
		g.scanTombs()
		return nil
	}

	if strings.TrimSpace(output) == "" {
		g.con.Println("The command completed without output.")
		return nil
	}
	g.con.Println(output)
	return nil
}

func (g *Game) scanTombs() {
	g.con.Println("You sift through dusty ledgers, looking for .tomb vaults...")
	g.con.Println("")

	groups := FindTombs(TombSearchPaths(g.home))
	if len(groups) == 0 {
		g.con.Hint("No tombs were discovered. Configure a search command in lord_config.toml if you rely on the tomb CLI.")
		return
	}
	for _, group := range groups {
		g.con.Println(group.Dir + ":")
		for _, path := range group.Paths {
			g.con.Println("  - " + path)
		}
		g.con.Println("")
	}
}

// sleep runs the built-in screensaver until the operator presses ENTER.
func (g *Game) sleep(ctx context.Context) error {
	wake := func() error {
		_, _, err := g.con.ReadRawLine()
		return err
	}
	return screensaver.New(g.con.Out()).
		WithInterval(g.sleepInterval).
		Run(ctx, wake)
}

// openChest shows the chest tool submenu until the operator backs out.
func (g *Game) openChest() error {
	tools := g.config.ChestTools()
	if len(tools) == 0 {
		g.con.Hint("The chest is empty. Populate [[actions.chest_tools]] entries in lord_config.toml.")
		return nil
	}

	for {
		g.con.Clear()
		g.con.Println("")
		g.con.Heading("== Tech Chest ==")
		for i, tool := range tools {
			g.con.Option(strconv.Itoa(i+1), tool.Name)
		}
		g.con.Option("Q", "Return to the room")

		input, ok, err := g.con.ReadLine()
		if err != nil {
			return err
		}
		if !ok || strings.EqualFold(input, "q") {
			return nil
		}
		if input == "" {
			continue
		}

		slot, err := strconv.Atoi(input)
		if err != nil || slot < 1 || slot > len(tools) {
			g.con.Println("The chest stays locked unless you choose a valid slot.")
			continue
		}
		tool := tools[slot-1]
		g.spawn(tool.Name, tool.Command, "Failed to launch "+tool.Name)
	}
}
