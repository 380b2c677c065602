package character

import (
	"strings"
	"unicode"

	"github.com/syntaxjak/Legend-of-the-Red-Desktop/pkg/loadout"
	"github.com/syntaxjak/Legend-of-the-Red-Desktop/pkg/progression"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultName is used when no identity candidate yields a usable name.
const DefaultName = "Traveler"

// PocketItem is a character inventory entry that may launch a command.
type PocketItem struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Command     []string `json:"command,omitempty"` // nil means ornamental
}

// Usable reports whether selecting the item launches something.
func (p PocketItem) Usable() bool {
	return len(p.Command) > 0
}

// GrinWallet builds the wallet pocket, falling back to the default grin-wallet
// binary when no command is configured.
func GrinWallet(argv []string) PocketItem {
	if len(argv) == 0 {
		argv = loadout.DefaultGrinWalletCommand
	}
	return PocketItem{
		Name:        "Grin Wallet",
		Description: "Shielded grin-wallet client",
		Command:     append([]string(nil), argv...),
	}
}

// Character is the operator's dossier for the current session.
type Character struct {
	Name     string       `json:"name"`
	Clothing []string     `json:"clothing"`
	Pockets  []PocketItem `json:"pockets"`
	progression.Progression
}

// New creates a level 1 character dressed and equipped from cfg.
func New(cfg *loadout.Config, name string) *Character {
	if cfg == nil {
		cfg = &loadout.Config{}
	}
	if strings.TrimSpace(name) == "" {
		name = DefaultName
	}

	wallet, _ := cfg.Command(loadout.GrinWallet)
	return &Character{
		Name:        name,
		Clothing:    cfg.Clothing(),
		Pockets:     []PocketItem{GrinWallet(wallet)},
		Progression: progression.New(),
	}
}

// Pocket returns the pocket at the 1-based slot.
func (c *Character) Pocket(slot int) (PocketItem, bool) {
	if slot < 1 || slot > len(c.Pockets) {
		return PocketItem{}, false
	}
	return c.Pockets[slot-1], true
}

// DeriveName formats the first candidate that produces a non-empty name.
func DeriveName(candidates ...string) string {
	for _, candidate := range candidates {
		if name := FormatName(candidate); name != "" {
			return name
		}
	}
	return DefaultName
}

// FormatName splits raw on hyphens, underscores and whitespace and title-cases
// each part. "MY-HOST_name" becomes "My Host Name".
func FormatName(raw string) string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '-' || r == '_' || unicode.IsSpace(r)
	})
	if len(parts) == 0 {
		return ""
	}

	caser := cases.Title(language.Und)
	for i, part := range parts {
		parts[i] = caser.String(part)
	}
	return strings.Join(parts, " ")
}
