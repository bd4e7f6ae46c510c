package activity

import (
	"bufio"
	"log"
	"os"
	"sync"
	"time"
)

// FileLog appends entries to a flat text file, one per line, unbounded.
// Append failures are reported to the operational log and dropped; they
// never reach the caller.
type FileLog struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

func NewFileLog(path string) *FileLog {
	return &FileLog{path: path, now: time.Now}
}

func (l *FileLog) Record(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("activity log open error: %v", err)
		return
	}
	defer f.Close()

	if _, err := f.WriteString(stamp(l.now(), message) + "\n"); err != nil {
		log.Printf("activity log write error: %v", err)
	}
}

// Recent reads the file back and returns up to limit trailing entries,
// oldest of the window first.
func (l *FileLog) Recent(limit int) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("activity log read error: %v", err)
		}
		return nil
	}
	defer f.Close()

	var entries []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			entries = append(entries, line)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Printf("activity log scan error: %v", err)
	}

	if limit <= 0 || limit > len(entries) {
		limit = len(entries)
	}
	return entries[len(entries)-limit:]
}
