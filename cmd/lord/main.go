package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/syntaxjak/Legend-of-the-Red-Desktop/internal/config"
	"github.com/syntaxjak/Legend-of-the-Red-Desktop/internal/console"
	"github.com/syntaxjak/Legend-of-the-Red-Desktop/internal/game"
	"github.com/syntaxjak/Legend-of-the-Red-Desktop/internal/logger"
	"github.com/syntaxjak/Legend-of-the-Red-Desktop/pkg/character"
	"github.com/syntaxjak/Legend-of-the-Red-Desktop/pkg/command"
	"github.com/syntaxjak/Legend-of-the-Red-Desktop/pkg/loadout"
)

// version is injected at build time.
var version = "dev"

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("Legend of the Red Desktop %s\n", version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "An error occurred: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	identity, err := config.LoadIdentity()
	if err != nil {
		return err
	}

	log := logger.WithSession(logger.Setup(cfg), logger.NewSessionID())

	con := console.New(os.Stdin, os.Stdout, os.Stderr)

	loaded := loadout.Load(loadout.CandidatePaths(cfg.ConfigPath, identity.Home), log)
	for _, problem := range loaded.Errors {
		con.Errorf("%v", problem)
	}
	log.Debug("Configuration ready", "source", loaded.Source, "warnings", len(loaded.Warnings))

	ch := character.New(loaded.Config, character.DeriveName(identity.NameCandidates()...))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g := game.New(loaded.Config, ch, con, command.NewExecRunner(log)).
		WithLogger(log).
		WithHome(identity.Home).
		WithSplash(cfg.Splash)

	return g.Run(ctx)
}
