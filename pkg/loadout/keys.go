package loadout

import (
	"fmt"
	"slices"
	"sort"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how far a typo may be from a known key.
const maxSuggestDistance = 3

var (
	topLevelKeys  = []string{"actions", "character"}
	characterKeys = []string{"clothing"}
)

func actionKeys() []string {
	keys := make([]string, 0, len(Actions())+1)
	for _, a := range Actions() {
		keys = append(keys, string(a))
	}
	return append(keys, "chest_tools")
}

// unknownKeys returns one warning per key the decoder would ignore.
func unknownKeys(doc map[string]any) []string {
	var warnings []string
	warnings = append(warnings, checkTable("", doc, topLevelKeys)...)
	if actions, ok := doc["actions"].(map[string]any); ok {
		warnings = append(warnings, checkTable("actions.", actions, actionKeys())...)
	}
	if character, ok := doc["character"].(map[string]any); ok {
		warnings = append(warnings, checkTable("character.", character, characterKeys)...)
	}
	return warnings
}

func checkTable(prefix string, table map[string]any, known []string) []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	var warnings []string
	for _, name := range names {
		if slices.Contains(known, name) {
			continue
		}
		if s := Suggest(name, known); s != "" {
			warnings = append(warnings, fmt.Sprintf("unknown key %s%s (did you mean %s%s?)", prefix, name, prefix, s))
			continue
		}
		warnings = append(warnings, fmt.Sprintf("unknown key %s%s", prefix, name))
	}
	return warnings
}

// Suggest returns the known key closest to name, or "" when none is close enough.
func Suggest(name string, known []string) string {
	best := ""
	bestDist := maxSuggestDistance + 1
	for _, k := range known {
		d := levenshtein.ComputeDistance(name, k)
		if d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}
