package barcode

import (
	"errors"
	"sync"
	"testing"

	labeldomain "github.com/ghuser/labelpress/services/label/domain"
)

// memoryRegistry is a minimal in-process Registry for tests. The production
// implementations live in services/label/infrastructure/registry.
type memoryRegistry map[string]struct{}

func (m memoryRegistry) Add(code string) bool {
	if _, ok := m[code]; ok {
		return false
	}
	m[code] = struct{}{}
	return true
}
func (m memoryRegistry) Contains(code string) bool { _, ok := m[code]; return ok }
func (m memoryRegistry) Clear() {
	for k := range m {
		delete(m, k)
	}
}

// lockedRegistry is a mutex-guarded Registry for concurrency tests, matching
// the atomic check-and-insert contract of the production implementations.
type lockedRegistry struct {
	mu    sync.Mutex
	codes map[string]struct{}
}

func (l *lockedRegistry) Add(code string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.codes[code]; ok {
		return false
	}
	l.codes[code] = struct{}{}
	return true
}

func (l *lockedRegistry) Contains(code string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.codes[code]
	return ok
}

func (l *lockedRegistry) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.codes = make(map[string]struct{})
}

// fullRegistry rejects every insert, simulating exhaustion.
type fullRegistry struct{}

func (fullRegistry) Add(string) bool      { return false }
func (fullRegistry) Contains(string) bool { return true }
func (fullRegistry) Clear()               {}

func TestGenerate(t *testing.T) {
	t.Run("starts with prefix and has a valid shape", func(t *testing.T) {
		g := NewGenerator(memoryRegistry{})
		code, err := g.Generate("SP")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(code) != len("SP")+10 {
			t.Fatalf("expected 10-digit suffix, got %q", code)
		}
		if !IsValidInternalCode(code, "SP") {
			t.Fatalf("generated code %q is not a valid internal code", code)
		}
		if format, ok := Detect(code, "SP"); !ok || format != SymbologyInternal {
			t.Fatalf("Detect(%q) = %v, %v; want INTERNAL", code, format, ok)
		}
	})

	t.Run("sequential calls yield distinct values", func(t *testing.T) {
		g := NewGenerator(memoryRegistry{})
		seen := make(map[string]struct{})
		for i := 0; i < 50; i++ {
			code, err := g.Generate("SP")
			if err != nil {
				t.Fatalf("call %d: unexpected error: %v", i, err)
			}
			if _, dup := seen[code]; dup {
				t.Fatalf("call %d: duplicate code %q", i, code)
			}
			seen[code] = struct{}{}
		}
	})

	t.Run("records generated codes", func(t *testing.T) {
		g := NewGenerator(memoryRegistry{})
		code, err := g.Generate("SP")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !g.IsGenerated(code) {
			t.Error("expected IsGenerated true for minted code")
		}
		if g.IsGenerated("SP0000000000") {
			t.Error("expected IsGenerated false for foreign code")
		}
	})

	t.Run("clear resets the session", func(t *testing.T) {
		g := NewGenerator(memoryRegistry{})
		code, _ := g.Generate("SP")
		g.Clear()
		if g.IsGenerated(code) {
			t.Error("expected registry to be empty after Clear")
		}
	})

	t.Run("concurrent callers mint distinct codes", func(t *testing.T) {
		// One Generator is shared across HTTP handlers, so minting must be
		// safe under concurrency. Volume stays below the 100 codes a single
		// millisecond can hold, so no goroutine can exhaust its attempts.
		const (
			goroutines = 8
			perG       = 10
		)
		g := NewGenerator(&lockedRegistry{codes: make(map[string]struct{})})

		var wg sync.WaitGroup
		codes := make(chan string, goroutines*perG)
		errs := make(chan error, goroutines*perG)
		for i := 0; i < goroutines; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < perG; j++ {
					code, err := g.Generate("SP")
					if err != nil {
						errs <- err
						return
					}
					codes <- code
				}
			}()
		}
		wg.Wait()
		close(codes)
		close(errs)

		for err := range errs {
			t.Fatalf("concurrent mint failed: %v", err)
		}
		seen := make(map[string]struct{})
		for code := range codes {
			if _, dup := seen[code]; dup {
				t.Fatalf("duplicate code %q minted concurrently", code)
			}
			seen[code] = struct{}{}
		}
		if len(seen) != goroutines*perG {
			t.Fatalf("expected %d codes, got %d", goroutines*perG, len(seen))
		}
	})

	t.Run("exhausted registry fails after bounded attempts", func(t *testing.T) {
		g := NewGenerator(fullRegistry{})
		_, err := g.Generate("SP")
		if !errors.Is(err, labeldomain.ErrRegistryExhausted) {
			t.Fatalf("expected ErrRegistryExhausted, got %v", err)
		}
	})
}

func TestIsValidInternalCode(t *testing.T) {
	cases := []struct {
		code string
		want bool
	}{
		{"SP1234567890", true},
		{"SP12345678", true},  // legacy 8-digit suffix
		{"SP123456789", true}, // 9-digit suffix
		{"SP1234567", false},
		{"SP12345678901", false},
		{"SP12345678a", false},
		{"XX1234567890", false},
		{"1234567890", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsValidInternalCode(tc.code, "SP"); got != tc.want {
			t.Errorf("IsValidInternalCode(%q) = %v, want %v", tc.code, got, tc.want)
		}
	}
}
