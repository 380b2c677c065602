package command

import (
	"context"
	"sync"
)

// MockRunner is a mock implementation of Runner for testing
type MockRunner struct {
	SpawnFunc   func(argv []string) error
	CaptureFunc func(ctx context.Context, argv []string) (string, error)

	// Track calls for testing
	SpawnCalls   [][]string
	CaptureCalls [][]string

	mu sync.Mutex // protects all fields above
}

// NewMockRunner creates a new mock runner
func NewMockRunner() *MockRunner {
	return &MockRunner{
		SpawnCalls:   make([][]string, 0),
		CaptureCalls: make([][]string, 0),
	}
}

// Spawn records argv and delegates to SpawnFunc when set
func (m *MockRunner) Spawn(argv []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SpawnCalls = append(m.SpawnCalls, append([]string(nil), argv...))

	if len(argv) == 0 {
		return ErrEmptyCommand
	}
	if m.SpawnFunc != nil {
		return m.SpawnFunc(argv)
	}
	return nil
}

// Capture records argv and delegates to CaptureFunc when set
func (m *MockRunner) Capture(ctx context.Context, argv []string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CaptureCalls = append(m.CaptureCalls, append([]string(nil), argv...))

	if len(argv) == 0 {
		return "", ErrEmptyCommand
	}
	if m.CaptureFunc != nil {
		return m.CaptureFunc(ctx, argv)
	}
	return "", nil
}

// Spawned returns a copy of the recorded Spawn calls
func (m *MockRunner) Spawned() [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]string(nil), m.SpawnCalls...)
}

// Captured returns a copy of the recorded Capture calls
func (m *MockRunner) Captured() [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]string(nil), m.CaptureCalls...)
}
