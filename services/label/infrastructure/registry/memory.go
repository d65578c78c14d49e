// Package registry provides Registry implementations for the internal code
// generator: an in-process default and a Redis-backed variant for
// multi-instance deployments.
package registry

import "sync"

// Memory is a mutex-guarded in-process registry. Uniqueness holds for the
// lifetime of the process, matching the engine's session-scoped guarantee.
type Memory struct {
	mu    sync.Mutex
	codes map[string]struct{}
}

// NewMemory returns an empty in-process registry.
func NewMemory() *Memory {
	return &Memory{codes: make(map[string]struct{})}
}

var (
	defaultOnce sync.Once
	defaultReg  *Memory
)

// Default returns the process-wide registry singleton. Both the label and
// product contexts mint internal codes, and session uniqueness must hold
// across them, so in-process mode shares one instance.
func Default() *Memory {
	defaultOnce.Do(func() { defaultReg = NewMemory() })
	return defaultReg
}

// Add inserts code and reports true, or reports false if already present.
// Check-and-insert happens under one lock so concurrent minting stays unique.
func (m *Memory) Add(code string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.codes[code]; ok {
		return false
	}
	m.codes[code] = struct{}{}
	return true
}

// Contains reports whether code was added this session.
func (m *Memory) Contains(code string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.codes[code]
	return ok
}

// Clear drops all codes.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.codes = make(map[string]struct{})
}
