package activity

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestMemoryLogRecordsInOrder(t *testing.T) {
	t.Parallel()

	l := NewMemoryLog(10)
	l.Record("first")
	l.Record("second")
	l.Record("third")

	entries := l.Recent(0)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, want := range []string{"first", "second", "third"} {
		if !strings.HasSuffix(entries[i], ": "+want) {
			t.Fatalf("entry %d = %q, expected suffix %q", i, entries[i], want)
		}
	}
}

func TestMemoryLogEntriesAreTimestamped(t *testing.T) {
	t.Parallel()

	l := NewMemoryLog(10)
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return fixed }

	l.Record("hello")
	entries := l.Recent(1)
	if entries[0] != "2025-06-01T12:00:00Z: hello" {
		t.Fatalf("unexpected entry: %q", entries[0])
	}
}

func TestMemoryLogEvictsOldestAtCapacity(t *testing.T) {
	t.Parallel()

	l := NewMemoryLog(3)
	for _, msg := range []string{"a", "b", "c", "d", "e"} {
		l.Record(msg)
	}

	entries := l.Recent(0)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if !strings.HasSuffix(entries[0], ": c") || !strings.HasSuffix(entries[2], ": e") {
		t.Fatalf("unexpected window: %v", entries)
	}
}

func TestMemoryLogRecentLimit(t *testing.T) {
	t.Parallel()

	l := NewMemoryLog(10)
	for _, msg := range []string{"a", "b", "c"} {
		l.Record(msg)
	}

	entries := l.Recent(2)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if !strings.HasSuffix(entries[0], ": b") || !strings.HasSuffix(entries[1], ": c") {
		t.Fatalf("unexpected window: %v", entries)
	}
}

func TestFileLogAppendsAndReadsBack(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "activity.log")
	l := NewFileLog(path)
	l.Record("one")
	l.Record("two")

	entries := l.Recent(0)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if !strings.HasSuffix(entries[0], ": one") || !strings.HasSuffix(entries[1], ": two") {
		t.Fatalf("unexpected entries: %v", entries)
	}

	// A fresh handle over the same file sees everything already written.
	reopened := NewFileLog(path)
	reopened.Record("three")
	entries = reopened.Recent(0)
	if len(entries) != 3 || !strings.HasSuffix(entries[2], ": three") {
		t.Fatalf("unexpected entries after reopen: %v", entries)
	}
}

func TestFileLogRecentLimit(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "activity.log")
	l := NewFileLog(path)
	for _, msg := range []string{"a", "b", "c", "d"} {
		l.Record(msg)
	}

	entries := l.Recent(2)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if !strings.HasSuffix(entries[0], ": c") || !strings.HasSuffix(entries[1], ": d") {
		t.Fatalf("unexpected window: %v", entries)
	}
}

func TestFileLogMissingFile(t *testing.T) {
	t.Parallel()

	l := NewFileLog(filepath.Join(t.TempDir(), "never-written.log"))
	if entries := l.Recent(10); entries != nil {
		t.Fatalf("expected nil for missing file, got %v", entries)
	}
}

func TestFileLogRecordNeverPanicsOnBadPath(t *testing.T) {
	t.Parallel()

	// The parent directory does not exist, so every append fails.
	l := NewFileLog(filepath.Join(t.TempDir(), "missing", "activity.log"))
	l.Record("dropped")
	if entries := l.Recent(10); len(entries) != 0 {
		t.Fatalf("expected no entries, got %v", entries)
	}
}

func TestFileLogSkipsBlankLines(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "activity.log")
	if err := os.WriteFile(path, []byte("2025-01-01T00:00:00Z: a\n\n2025-01-01T00:00:01Z: b\n"), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	l := NewFileLog(path)
	entries := l.Recent(0)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %v", entries)
	}
}
