package symbol

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/scaryPonens/binance-mcp/internal/domain"
)

const csvHeader = "crypto_name,symbol"

// ActivityRecorder is the slice of the activity log the store needs to
// report a failed table load.
type ActivityRecorder interface {
	Record(message string)
}

// Store maps lowercase aliases to canonical trading symbols, backed by a
// CSV table on disk. The table is read once, on the first resolution, and
// cached for the life of the process; a restart picks up external edits.
type Store struct {
	path     string
	activity ActivityRecorder

	mu       sync.Mutex
	loaded   bool
	mappings map[string]string
}

// NewStore creates a store over the CSV table at path. If no table exists,
// Seed (or the first Load) writes the built-in default table. activity may
// be nil.
func NewStore(path string, activity ActivityRecorder) *Store {
	return &Store{path: path, activity: activity}
}

// Seed writes the built-in alias table to disk if no table exists yet.
// An existing table, even an empty one, is left untouched.
func (s *Store) Seed() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat symbol table: %w", err)
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create symbol table: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"crypto_name", "symbol"}); err != nil {
		return fmt.Errorf("write symbol table header: %w", err)
	}
	for _, e := range defaultEntries {
		if err := w.Write([]string{e.Alias, e.Symbol}); err != nil {
			return fmt.Errorf("write symbol table row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// Load returns the alias mapping, reading and caching the table on first
// call. A missing or unreadable table degrades to an empty mapping and a
// single activity-log entry; it never fails the caller.
func (s *Store) Load() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.mappings
	}

	s.mappings = make(map[string]string)
	s.loaded = true

	if err := s.Seed(); err != nil {
		s.record(fmt.Sprintf("Error seeding symbol table: %v", err))
	}

	f, err := os.Open(s.path)
	if err != nil {
		s.record(fmt.Sprintf("Error loading symbol mappings: %v", err))
		return s.mappings
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		s.record(fmt.Sprintf("Error loading symbol mappings: %v", err))
		return s.mappings
	}

	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		alias := strings.ToLower(strings.TrimSpace(row[0]))
		sym := strings.TrimSpace(row[1])
		if alias == "" || sym == "" || alias == "crypto_name" {
			continue
		}
		s.mappings[alias] = sym
	}

	return s.mappings
}

// Resolve normalizes free-form input to a canonical trading symbol. Known
// aliases map through the table; anything else is uppercased and treated
// as an exchange symbol the caller already knows. Never fails.
func (s *Store) Resolve(input string) string {
	if sym, ok := s.Load()[strings.ToLower(strings.TrimSpace(input))]; ok {
		return sym
	}
	return strings.ToUpper(strings.TrimSpace(input))
}

// CSV renders the cached mapping back into the table's wire format, for
// the symbol_map resource. Seeded entries keep their on-disk order when
// the table came from the default seed.
func (s *Store) CSV() string {
	mappings := s.Load()

	var b strings.Builder
	b.WriteString(csvHeader + "\n")

	seen := make(map[string]bool, len(mappings))
	for _, e := range defaultEntries {
		if sym, ok := mappings[e.Alias]; ok {
			fmt.Fprintf(&b, "%s,%s\n", e.Alias, sym)
			seen[e.Alias] = true
		}
	}
	for alias, sym := range mappings {
		if !seen[alias] {
			fmt.Fprintf(&b, "%s,%s\n", alias, sym)
		}
	}
	return b.String()
}

// Entries returns the built-in default table, for callers that need the
// seed list without touching disk.
func Entries() []domain.SymbolEntry {
	out := make([]domain.SymbolEntry, len(defaultEntries))
	copy(out, defaultEntries)
	return out
}

func (s *Store) record(msg string) {
	if s.activity != nil {
		s.activity.Record(msg)
	}
}
