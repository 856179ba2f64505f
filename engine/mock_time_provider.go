package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a controllable TimeProvider for tests
// With a non-zero step every Now call advances the mock after reading it
type MockTimeProvider struct {
	mu      sync.Mutex
	current time.Time
	step    time.Duration
}

// NewMockTimeProvider creates a mock time provider frozen at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{current: start}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.current
	m.current = m.current.Add(m.step)
	return now
}

// SetTime sets the current time for the mock
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = t
}

// Advance advances the current time by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}

// AutoStep makes every subsequent Now call advance the mock by d; zero freezes it again
func (m *MockTimeProvider) AutoStep(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.step = d
}
