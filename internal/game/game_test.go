package game

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syntaxjak/Legend-of-the-Red-Desktop/internal/console"
	"github.com/syntaxjak/Legend-of-the-Red-Desktop/pkg/character"
	"github.com/syntaxjak/Legend-of-the-Red-Desktop/pkg/command"
	"github.com/syntaxjak/Legend-of-the-Red-Desktop/pkg/loadout"
	"github.com/syntaxjak/Legend-of-the-Red-Desktop/pkg/location"
)

type testGame struct {
	game   *Game
	runner *command.MockRunner
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

func newTestGame(t *testing.T, input string, cfg *loadout.Config) *testGame {
	t.Helper()
	return newTestGameFrom(t, strings.NewReader(input), cfg)
}

func newTestGameFrom(t *testing.T, in io.Reader, cfg *loadout.Config) *testGame {
	t.Helper()
	if cfg == nil {
		cfg = &loadout.Config{}
	}
	var out, errOut bytes.Buffer
	runner := command.NewMockRunner()
	g := New(cfg, character.New(cfg, "Neo"), console.New(in, &out, &errOut), runner).
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))).
		WithHome(t.TempDir()).
		WithSplash(false).
		WithSleepInterval(time.Millisecond)
	return &testGame{game: g, runner: runner, out: &out, errOut: &errOut}
}

func (tg *testGame) run(t *testing.T) {
	t.Helper()
	require.NoError(t, tg.game.Run(context.Background()))
	assert.True(t, strings.HasSuffix(tg.out.String(), farewell+"\n"), "output should end with the farewell")
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("terminal hung up") }

func TestRun_EndOfInputQuits(t *testing.T) {
	tg := newTestGame(t, "", nil)
	tg.run(t)
	assert.Equal(t, location.TownSquare, tg.game.Location())
	assert.Empty(t, tg.errOut.String())
}

func TestRun_TownSquareTransitions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected location.Location
	}{
		{"lowercase g", "g\n", location.Graveyard},
		{"uppercase G", "G\n", location.Graveyard},
		{"leading space", " g\n", location.Graveyard},
		{"room", "r\n", location.Room},
		{"room and back", "r\nt\n", location.TownSquare},
		{"graveyard then room", "g\nt\nr\n", location.Room},
		{"quit stays", "q\ng\n", location.TownSquare},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tg := newTestGame(t, tt.input, nil)
			tg.run(t)
			assert.Equal(t, tt.expected, tg.game.Location())
		})
	}
}

func TestRun_UnrecognizedInputRedisplays(t *testing.T) {
	tg := newTestGame(t, "z\nq\n", nil)
	tg.run(t)

	out := tg.out.String()
	assert.Equal(t, location.TownSquare, tg.game.Location())
	assert.Contains(t, out, "That action is not available.")
	assert.Equal(t, 2, strings.Count(out, "== Town Square =="))
}

func TestRun_RejectionMessages(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"g\nz\n", "Bones do not respond to that command."},
		{"r\nz\n", "The room remains silent."},
	}

	for _, tt := range tests {
		tg := newTestGame(t, tt.input, nil)
		tg.run(t)
		assert.Contains(t, tg.out.String(), tt.expected)
	}
}

func TestRun_BlankLineQuits(t *testing.T) {
	tg := newTestGame(t, "\ng\n", nil)
	tg.run(t)
	assert.Equal(t, location.TownSquare, tg.game.Location())
}

func TestRun_TerminalFailure(t *testing.T) {
	tg := newTestGameFrom(t, brokenReader{}, nil)

	err := tg.game.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal hung up")
	assert.NotContains(t, tg.out.String(), farewell)
}

func TestRun_CancelledContextEndsSession(t *testing.T) {
	in, feed := io.Pipe()
	t.Cleanup(func() { feed.Close() })
	tg := newTestGameFrom(t, in, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- tg.game.Run(ctx) }()

	_, err := feed.Write([]byte("g\n"))
	require.NoError(t, err)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run kept waiting for input after the context was cancelled")
	}
	assert.True(t, strings.HasSuffix(tg.out.String(), farewell+"\n"), "output should end with the farewell")
}

func TestRun_Splash(t *testing.T) {
	tg := newTestGame(t, "\nq\n", nil)
	tg.game.WithSplash(true)
	tg.run(t)
	assert.Contains(t, tg.out.String(), "Press ENTER to enter the Neon Agora...")
	assert.Contains(t, tg.out.String(), "== Town Square ==")

	tg = newTestGame(t, "", nil)
	tg.game.WithSplash(true)
	tg.run(t)
	assert.NotContains(t, tg.out.String(), "== Town Square ==")
}

func TestHandle_EveryLocationHasAHandler(t *testing.T) {
	for _, loc := range location.All() {
		tg := newTestGame(t, "", nil)
		next, keep, err := tg.game.handle(context.Background(), loc)
		require.NoError(t, err, "location %s", loc)
		assert.False(t, keep)
		assert.Equal(t, loc, next)
		assert.Contains(t, tg.out.String(), loc.Title())
	}
}

func TestHandle_UnknownLocation(t *testing.T) {
	tg := newTestGame(t, "", nil)
	_, keep, err := tg.game.handle(context.Background(), location.Location(7))
	assert.ErrorIs(t, err, ErrUnknownLocation)
	assert.False(t, keep)
}

func TestReward(t *testing.T) {
	tg := newTestGame(t, "", nil)

	tg.game.reward(0)
	assert.Empty(t, tg.out.String(), "a zero reward says nothing")

	tg.game.reward(5)
	assert.Contains(t, tg.out.String(), "You gain 5 XP. (5/25)")

	tg.game.character.XP = 20
	tg.game.reward(10)
	assert.Contains(t, tg.out.String(), "You feel your skills sharpen. Level up! (Lv 2)")
	assert.Equal(t, 2, tg.game.character.Level)
	assert.Equal(t, 5, tg.game.character.XP)
}

func TestGraveyard_BuiltinSearch(t *testing.T) {
	tg := newTestGame(t, "g\ns\n\nq\n", nil)
	home := t.TempDir()
	tombs := filepath.Join(home, "tombs")
	require.NoError(t, os.MkdirAll(filepath.Join(tombs, "crypt"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tombs, "secrets.tomb"), nil, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tombs, "notes.txt"), nil, 0o600))
	tg.game.WithHome(home)

	tg.run(t)

	out := tg.out.String()
	assert.Contains(t, out, "You sift through dusty ledgers")
	assert.Contains(t, out, tombs+":")
	assert.Contains(t, out, "  - "+filepath.Join(tombs, "crypt"))
	assert.Contains(t, out, "  - "+filepath.Join(tombs, "secrets.tomb"))
	assert.NotContains(t, out, "notes.txt")
	assert.Contains(t, out, "You gain 10 XP. (10/25)")
	assert.Contains(t, out, "Press ENTER to continue...")
	assert.Equal(t, 10, tg.game.character.XP)
}

func TestGraveyard_BuiltinSearchFindsNothing(t *testing.T) {
	tg := newTestGame(t, "g\ns\n", nil)
	tg.run(t)
	assert.Contains(t, tg.out.String(), "No tombs were discovered.")
}

func TestGraveyard_ConfiguredSearch(t *testing.T) {
	cfg := &loadout.Config{Actions: loadout.ActionsConfig{SearchTombs: []string{"tomb", "list"}}}

	t.Run("prints captured output", func(t *testing.T) {
		tg := newTestGame(t, "g\ns\n\n", cfg)
		tg.runner.CaptureFunc = func(ctx context.Context, argv []string) (string, error) {
			return "vault-1.tomb\nvault-2.tomb\n", nil
		}
		tg.run(t)

		assert.Equal(t, [][]string{{"tomb", "list"}}, tg.runner.Captured())
		assert.Empty(t, tg.runner.Spawned())
		assert.Contains(t, tg.out.String(), "vault-1.tomb\nvault-2.tomb\n")
		assert.NotContains(t, tg.out.String(), "You sift through dusty ledgers")
	})

	t.Run("blank output", func(t *testing.T) {
		tg := newTestGame(t, "g\ns\n\n", cfg)
		tg.runner.CaptureFunc = func(ctx context.Context, argv []string) (string, error) {
			return " \n", nil
		}
		tg.run(t)
		assert.Contains(t, tg.out.String(), "The command completed without output.")
	})

	t.Run("launch failure falls back to scan", func(t *testing.T) {
		tg := newTestGame(t, "g\ns\n\n", cfg)
		tg.runner.CaptureFunc = func(ctx context.Context, argv []string) (string, error) {
			return "", errors.New("exec: \"tomb\": executable file not found in $PATH")
		}
		var logs bytes.Buffer
		tg.game.WithLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn})))
		tg.run(t)

		assert.Empty(t, logs.String())
		assert.Contains(t, tg.errOut.String(), "Failed to run configured search: exec: \"tomb\"")
		assert.Contains(t, tg.out.String(), "You sift through dusty ledgers")
		assert.Contains(t, tg.out.String(), "You gain 10 XP.")
	})
}

func TestRoom_UnconfiguredActions(t *testing.T) {
	tests := []struct {
		key      string
		expected string
	}{
		{"m", "No mail command configured."},
		{"c", "No computer command configured."},
		{"o", "No closet launcher configured."},
		{"e", "No exploration route configured."},
		{"l", "You stretch out on the cot."},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			tg := newTestGame(t, "r\n"+tt.key+"\n\nq\n", nil)
			tg.run(t)

			out := tg.out.String()
			assert.Contains(t, out, tt.expected)
			assert.Contains(t, out, "You gain 5 XP. (5/25)")
			assert.Contains(t, out, "Press ENTER to continue...")
			assert.Empty(t, tg.runner.Spawned())
		})
	}
}

func TestRoom_ConfiguredActionsSpawn(t *testing.T) {
	cfg := &loadout.Config{Actions: loadout.ActionsConfig{
		CheckMail:           []string{"mutt"},
		ComputerTerminal:    []string{"virt-manager"},
		ClosetLauncher:      []string{"steam"},
		ExploreWorld:        []string{"firefox", "https://example.org"},
		LayDown:             []string{"systemctl", "suspend"},
		ActivateScreensaver: []string{"cmatrix"},
	}}

	tests := []struct {
		key      string
		argv     []string
		xp       int
		pauses   bool
		keysLeft string
	}{
		{"m", []string{"mutt"}, 5, true, "\n"},
		{"c", []string{"virt-manager"}, 5, true, "\n"},
		{"o", []string{"steam"}, 5, true, "\n"},
		{"e", []string{"firefox", "https://example.org"}, 5, true, "\n"},
		{"l", []string{"systemctl", "suspend"}, 5, true, "\n"},
		{"b", []string{"cmatrix"}, 10, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			tg := newTestGame(t, "r\n"+tt.key+"\n"+tt.keysLeft+"q\n", cfg)
			tg.run(t)

			assert.Equal(t, [][]string{tt.argv}, tg.runner.Spawned())
			assert.Equal(t, tt.xp, tg.game.character.XP)
			assert.Equal(t, tt.pauses, strings.Contains(tg.out.String(), "Press ENTER to continue..."))
			assert.Equal(t, location.Room, tg.game.Location())
		})
	}
}

func TestRoom_LaunchFailureIsReported(t *testing.T) {
	cfg := &loadout.Config{Actions: loadout.ActionsConfig{CheckMail: []string{"mutt"}}}
	tg := newTestGame(t, "r\nm\n\nq\n", cfg)
	tg.runner.SpawnFunc = func(argv []string) error {
		return errors.New("exec: \"mutt\": executable file not found in $PATH")
	}

	var logs bytes.Buffer
	tg.game.WithLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn})))

	tg.run(t)

	assert.Contains(t, tg.errOut.String(), "Unable to launch mail command: exec: \"mutt\"")
	assert.Contains(t, tg.out.String(), "You gain 5 XP.")
	assert.Empty(t, logs.String(), "the console report is the only one shown at the default level")
}

func TestRoom_EndOfInputDuringPause(t *testing.T) {
	tg := newTestGame(t, "r\nm\n", nil)
	tg.run(t)
	assert.Equal(t, 1, strings.Count(tg.out.String(), "Press ENTER to continue..."))
}

func TestRoom_BuiltinScreensaver(t *testing.T) {
	tg := newTestGame(t, "r\nb\n\nq\n", nil)
	tg.run(t)

	out := tg.out.String()
	assert.Contains(t, out, "You lie down in bed.")
	assert.Contains(t, out, "You awaken feeling oddly refreshed.")
	assert.Contains(t, out, "You gain 10 XP. (10/25)")
	assert.NotContains(t, out, "Press ENTER to continue...")
	assert.Empty(t, tg.runner.Spawned())
}

func TestRoom_Chest(t *testing.T) {
	cfg := &loadout.Config{Actions: loadout.ActionsConfig{ChestTools: []loadout.NamedCommand{
		{Name: "", Command: []string{"x"}},
		{Name: "Scanner", Command: []string{"nmap"}},
		{Name: "Bad", Command: []string{}},
	}}}

	tg := newTestGame(t, "r\nh\n2\n0\n-1\nabc\n\n1\nQ\nq\n", cfg)
	tg.run(t)

	out := tg.out.String()
	assert.Equal(t, 4, strings.Count(out, "The chest stays locked unless you choose a valid slot."))
	assert.Equal(t, [][]string{{"nmap"}}, tg.runner.Spawned())
	assert.Contains(t, out, "Scanner")
	assert.NotContains(t, out, "Bad")
	assert.Contains(t, out, "You gain 10 XP. (10/25)")
	assert.NotContains(t, out, "Press ENTER to continue...")
	assert.Equal(t, location.Room, tg.game.Location())
}

func TestRoom_ChestLaunchFailureKeepsMenuOpen(t *testing.T) {
	cfg := &loadout.Config{Actions: loadout.ActionsConfig{ChestTools: []loadout.NamedCommand{
		{Name: "Scanner", Command: []string{"nmap"}},
	}}}
	tg := newTestGame(t, "r\nh\n1\n1\nq\nq\n", cfg)
	tg.runner.SpawnFunc = func(argv []string) error { return errors.New("permission denied") }

	tg.run(t)

	assert.Equal(t, 2, strings.Count(tg.errOut.String(), "Failed to launch Scanner: permission denied"))
	assert.Len(t, tg.runner.Spawned(), 2)
}

func TestRoom_ChestEmpty(t *testing.T) {
	tg := newTestGame(t, "r\nh\nq\n", nil)
	tg.run(t)

	out := tg.out.String()
	assert.Contains(t, out, "The chest is empty.")
	assert.NotContains(t, out, "== Tech Chest ==")
	assert.Contains(t, out, "You gain 10 XP.")
}

func TestRoom_ChestEndOfInput(t *testing.T) {
	cfg := &loadout.Config{Actions: loadout.ActionsConfig{ChestTools: []loadout.NamedCommand{
		{Name: "Scanner", Command: []string{"nmap"}},
	}}}
	tg := newTestGame(t, "r\nh\n", cfg)
	tg.run(t)
	assert.Contains(t, tg.out.String(), "== Tech Chest ==")
}
