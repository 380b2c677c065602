package loadout

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the config file looked up in the working directory.
const FileName = "lord_config.toml"

// Action names a configurable external command slot.
type Action string

const (
	// SearchTombs lists tomb vaults from the graveyard.
	SearchTombs Action = "search_tombs"
	// CheckMail opens the mail client.
	CheckMail Action = "check_mail"
	// ActivateScreensaver replaces the built-in screensaver.
	ActivateScreensaver Action = "activate_screensaver"
	// ComputerTerminal opens a shell or terminal emulator.
	ComputerTerminal Action = "computer_terminal"
	// LayDown locks or suspends the desktop.
	LayDown Action = "lay_down"
	// ClosetLauncher opens the application launcher.
	ClosetLauncher Action = "closet_launcher"
	// ExploreWorld opens the browser.
	ExploreWorld Action = "explore_world"
	// GrinWallet backs the Grin Wallet pocket item.
	GrinWallet Action = "grin_wallet"
)

// Actions lists every action slot in display order.
func Actions() []Action {
	return []Action{
		SearchTombs,
		CheckMail,
		ActivateScreensaver,
		ComputerTerminal,
		LayDown,
		ClosetLauncher,
		ExploreWorld,
		GrinWallet,
	}
}

var (
	// DefaultClothing is worn when the config lists no clothing.
	DefaultClothing = []string{
		"Aurora-weave jacket",
		"Carbon-thread boots",
		"Holographic lapel pin",
	}

	// DefaultGrinWalletCommand backs the wallet pocket when grin_wallet is unconfigured.
	DefaultGrinWalletCommand = []string{"grin-wallet"}
)

// Config is the user's lord_config.toml. It is read once and never mutated.
type Config struct {
	Actions   ActionsConfig   `toml:"actions"`
	Character CharacterConfig `toml:"character"`
}

// ActionsConfig maps action slots to argument vectors. A nil or empty vector
// leaves the slot unconfigured.
type ActionsConfig struct {
	SearchTombs         []string       `toml:"search_tombs"`
	CheckMail           []string       `toml:"check_mail"`
	ActivateScreensaver []string       `toml:"activate_screensaver"`
	ComputerTerminal    []string       `toml:"computer_terminal"`
	LayDown             []string       `toml:"lay_down"`
	ChestTools          []NamedCommand `toml:"chest_tools"`
	ClosetLauncher      []string       `toml:"closet_launcher"`
	ExploreWorld        []string       `toml:"explore_world"`
	GrinWallet          []string       `toml:"grin_wallet"`
}

// CharacterConfig holds cosmetic character attributes.
type CharacterConfig struct {
	Clothing []string `toml:"clothing"`
}

// NamedCommand is a chest tool entry.
type NamedCommand struct {
	Name    string   `toml:"name"`
	Command []string `toml:"command"`
}

// Valid reports whether the tool has a non-blank name and a command to run.
func (n NamedCommand) Valid() bool {
	return strings.TrimSpace(n.Name) != "" && len(n.Command) > 0
}

// Command returns the argv configured for action. ok is false when the slot
// is absent or empty.
func (c *Config) Command(action Action) (argv []string, ok bool) {
	switch action {
	case SearchTombs:
		argv = c.Actions.SearchTombs
	case CheckMail:
		argv = c.Actions.CheckMail
	case ActivateScreensaver:
		argv = c.Actions.ActivateScreensaver
	case ComputerTerminal:
		argv = c.Actions.ComputerTerminal
	case LayDown:
		argv = c.Actions.LayDown
	case ClosetLauncher:
		argv = c.Actions.ClosetLauncher
	case ExploreWorld:
		argv = c.Actions.ExploreWorld
	case GrinWallet:
		argv = c.Actions.GrinWallet
	}
	if len(argv) == 0 {
		return nil, false
	}
	return argv, true
}

// ChestTools returns the valid chest tools in config order.
func (c *Config) ChestTools() []NamedCommand {
	tools := make([]NamedCommand, 0, len(c.Actions.ChestTools))
	for _, tool := range c.Actions.ChestTools {
		if tool.Valid() {
			tools = append(tools, tool)
		}
	}
	return tools
}

// Clothing returns the configured clothing or the defaults when none is set.
func (c *Config) Clothing() []string {
	if len(c.Character.Clothing) == 0 {
		return append([]string(nil), DefaultClothing...)
	}
	return append([]string(nil), c.Character.Clothing...)
}

// CandidatePaths lists config files in lookup order. explicit is tried first
// when set; the per-user file is skipped when home is empty.
func CandidatePaths(explicit, home string) []string {
	var paths []string
	if explicit != "" {
		paths = append(paths, explicit)
	}
	paths = append(paths, FileName)
	if home != "" {
		paths = append(paths, filepath.Join(home, ".config", "lord", "config.toml"))
	}
	return paths
}

// Parse decodes a config document. Warnings describe keys that were ignored.
func Parse(data []byte) (*Config, []string, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, nil, err
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, nil, err
	}
	return &cfg, unknownKeys(doc), nil
}

// Loaded is the outcome of Load.
type Loaded struct {
	Config   *Config
	Source   string   // path the config came from, empty for defaults
	Warnings []string // ignored keys in Source
	Errors   []error  // candidates that existed but could not be read or parsed
}

// Load returns the first candidate that parses. Missing files are skipped
// silently; unreadable or malformed files are recorded in Errors for the
// caller to report, and skipped. When no candidate loads the default config
// is returned.
func Load(paths []string, log *slog.Logger) *Loaded {
	if log == nil {
		log = slog.Default()
	}

	res := &Loaded{}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				log.Debug("Failed to read config", "path", path, "error", err)
				res.Errors = append(res.Errors, fmt.Errorf("read %s: %w", path, err))
			}
			continue
		}

		cfg, warnings, err := Parse(data)
		if err != nil {
			log.Debug("Failed to parse config", "path", path, "error", err)
			res.Errors = append(res.Errors, fmt.Errorf("failed to parse %s: %w", path, err))
			continue
		}

		for _, w := range warnings {
			log.Warn("Ignoring config key", "path", path, "detail", w)
		}
		log.Debug("Loaded config", "path", path)

		res.Config = cfg
		res.Source = path
		res.Warnings = warnings
		return res
	}

	log.Debug("No config file found, using defaults")
	res.Config = &Config{}
	return res
}
