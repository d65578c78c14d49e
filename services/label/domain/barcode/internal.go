package barcode

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	labeldomain "github.com/ghuser/labelpress/services/label/domain"
)

// maxMintAttempts bounds the regenerate loop in Generate. Exceeding it means
// the registry is exhausted or the random source is broken — a fatal
// condition, not a retryable one.
const maxMintAttempts = 100

// Registry tracks internal codes minted during the current session.
// Add must be an atomic check-and-insert so the uniqueness guarantee holds
// under concurrent callers. Implementations live in infrastructure.
type Registry interface {
	// Add inserts code and reports true, or reports false if it was
	// already present. Check-and-insert is one critical section.
	Add(code string) bool

	// Contains reports whether code was minted this session.
	Contains(code string) bool

	// Clear resets the registry (test isolation, session reset).
	Clear()
}

// Generator mints unique, prefixed internal identifiers. Safe for concurrent
// use: the registry guards its own state and the rand source is mutex-guarded
// (math/rand.Rand is not goroutine-safe).
// The zero value is not usable; construct with NewGenerator.
type Generator struct {
	reg  Registry
	now  func() time.Time
	mu   sync.Mutex
	rand *rand.Rand
}

// NewGenerator returns a Generator backed by the given registry.
func NewGenerator(reg Registry) *Generator {
	return &Generator{
		reg:  reg,
		now:  time.Now,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Generate mints a code of the form prefix + T + R, where T is the
// least-significant 8 digits of the current time in milliseconds and R is a
// 2-digit zero-padded random decimal. On a registry collision it regenerates
// (fresh timestamp read, fresh random draw) up to maxMintAttempts times, then
// fails with ErrRegistryExhausted.
func (g *Generator) Generate(prefix string) (string, error) {
	for attempt := 0; attempt < maxMintAttempts; attempt++ {
		g.mu.Lock()
		draw := g.rand.Intn(100)
		g.mu.Unlock()
		code := fmt.Sprintf("%s%08d%02d",
			prefix,
			g.now().UnixMilli()%100000000,
			draw,
		)
		if g.reg.Add(code) {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w: %d attempts with prefix %q", labeldomain.ErrRegistryExhausted, maxMintAttempts, prefix)
}

// IsGenerated reports whether code was minted this session.
func (g *Generator) IsGenerated(code string) bool {
	return g.reg.Contains(code)
}

// Clear resets the underlying registry.
func (g *Generator) Clear() {
	g.reg.Clear()
}

// IsValidInternalCode reports whether code is prefix followed by 8–10 decimal
// digits. The widened 8–10 range keeps codes from historical batches with
// longer suffixes classifiable.
func IsValidInternalCode(code, prefix string) bool {
	if prefix == "" || !strings.HasPrefix(code, prefix) {
		return false
	}
	suffix := code[len(prefix):]
	return len(suffix) >= 8 && len(suffix) <= 10 && isDigits(suffix)
}
