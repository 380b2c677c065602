package game

import (
	"io/fs"
	"os"
	"path/filepath"
)

// TombGroup lists the tombs found in one search directory.
type TombGroup struct {
	Dir   string
	Paths []string
}

// TombSearchPaths returns the directories scanned when no search command is
// configured. The home entries are omitted when home is unknown.
func TombSearchPaths(home string) []string {
	paths := []string{"tombs", "vaults"}
	if home != "" {
		paths = append(paths,
			filepath.Join(home, "tombs"),
			filepath.Join(home, ".local", "share", "tombs"),
		)
	}
	return paths
}

// FindTombs scans dirs for *.tomb entries and subdirectories. Directories that
// cannot be read are skipped, and directories without matches are left out.
func FindTombs(dirs []string) []TombGroup {
	var groups []TombGroup
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}

		var matches []string
		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			if filepath.Ext(entry.Name()) == ".tomb" || isDir(path, entry) {
				matches = append(matches, path)
			}
		}
		if len(matches) > 0 {
			groups = append(groups, TombGroup{Dir: dir, Paths: matches})
		}
	}
	return groups
}

// isDir follows symlinks so a linked vault directory still counts.
func isDir(path string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
