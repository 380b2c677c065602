package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/syntaxjak/Legend-of-the-Red-Desktop/internal/config"
	"github.com/syntaxjak/Legend-of-the-Red-Desktop/pkg/loadout"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) > 1 {
		return fmt.Errorf("usage: lord-check [config.toml]")
	}

	paths := args
	if len(paths) == 0 {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		identity, err := config.LoadIdentity()
		if err != nil {
			return err
		}
		paths = loadout.CandidatePaths(cfg.ConfigPath, identity.Home)
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) && len(args) == 0 {
				continue
			}
			return fmt.Errorf("failed to read file %s: %w", path, err)
		}

		fmt.Fprintf(out, "Validating %s...\n", path)
		cfg, warnings, err := loadout.Parse(data)
		if err != nil {
			return fmt.Errorf("file %s contains invalid TOML: %w", path, err)
		}
		report(out, cfg, warnings)
		return nil
	}

	fmt.Fprintf(out, "No config file found in: %s\n", strings.Join(paths, ", "))
	fmt.Fprintln(out, "Built-in defaults will be used.")
	return nil
}

func report(out io.Writer, cfg *loadout.Config, warnings []string) {
	fmt.Fprintln(out, "Actions:")
	for _, action := range loadout.Actions() {
		if argv, ok := cfg.Command(action); ok {
			fmt.Fprintf(out, "  %-22s %s\n", action, strings.Join(argv, " "))
			continue
		}
		fmt.Fprintf(out, "  %-22s (built-in)\n", action)
	}

	fmt.Fprintln(out, "Chest tools:")
	if len(cfg.Actions.ChestTools) == 0 {
		fmt.Fprintln(out, "  (none)")
	}
	for i, tool := range cfg.Actions.ChestTools {
		if tool.Valid() {
			fmt.Fprintf(out, "  %d. %s: %s\n", i+1, tool.Name, strings.Join(tool.Command, " "))
			continue
		}
		fmt.Fprintf(out, "  %d. skipped (needs a name and a command)\n", i+1)
	}

	fmt.Fprintf(out, "Clothing: %s\n", strings.Join(cfg.Clothing(), ", "))

	for _, w := range warnings {
		fmt.Fprintf(out, "warning: %s\n", w)
	}
	if len(warnings) == 0 {
		fmt.Fprintln(out, "Config file is valid!")
	}
}
