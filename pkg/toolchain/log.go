package toolchain

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/docker/go-units"
)

// Log is an append-only sink for probe diagnostics. Every probe
// attempt records its command line and raw process output so failures
// can be debugged after the fact. The core never truncates it. A nil
// *Log discards everything. Safe for concurrent use.
type Log struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Attempt records one external-process invocation with its duration
// and captured output.
func (l *Log) Attempt(command []string, took time.Duration, output []byte) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(&l.buf, "$ %s  # %s, %s of output\n",
		strings.Join(command, " "), units.HumanDuration(took), units.HumanSize(float64(len(output))))
	if len(output) > 0 {
		l.buf.Write(output)
		if output[len(output)-1] != '\n' {
			l.buf.WriteByte('\n')
		}
	}
}

// Note records a free-form diagnostic line.
func (l *Log) Note(format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(&l.buf, format, args...)
	l.buf.WriteByte('\n')
}

// String returns everything recorded so far.
func (l *Log) String() string {
	if l == nil {
		return ""
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.buf.String()
}
