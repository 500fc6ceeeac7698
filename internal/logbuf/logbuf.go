// Package logbuf provides the bounded in-memory processing log shown on
// the dashboard. Entries are timestamped, appended concurrently from the
// feed pipeline, and the oldest entries are evicted past a fixed capacity.
package logbuf

import (
	"fmt"
	"log"
	"sync"

	"github.com/seenimoa/sectorwatch/pkg/utils"
)

// DefaultCapacity is the number of log lines kept.
const DefaultCapacity = 50

// Buffer is a thread-safe rolling log.
type Buffer struct {
	mu       sync.Mutex
	capacity int
	lines    []string
	echo     bool // also write to the process log
}

// New creates a buffer with the given capacity (DefaultCapacity if <= 0).
func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{capacity: capacity, echo: true}
}

// SetEcho controls whether entries are mirrored to the process log.
func (b *Buffer) SetEcho(enabled bool) {
	b.mu.Lock()
	b.echo = enabled
	b.mu.Unlock()
}

// Addf formats and appends a log line, evicting the oldest past capacity.
func (b *Buffer) Addf(format string, args ...any) {
	line := fmt.Sprintf("[%s] %s", utils.NowIST().Format("15:04:05"), fmt.Sprintf(format, args...))

	b.mu.Lock()
	b.lines = append(b.lines, line)
	if len(b.lines) > b.capacity {
		b.lines = b.lines[len(b.lines)-b.capacity:]
	}
	echo := b.echo
	b.mu.Unlock()

	if echo {
		log.Print(line)
	}
}

// Lines returns a copy of the current log lines, oldest first.
func (b *Buffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Tail returns the most recent n lines.
func (b *Buffer) Tail(n int) []string {
	lines := b.Lines()
	if n < len(lines) {
		return lines[len(lines)-n:]
	}
	return lines
}
