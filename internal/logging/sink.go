package logging

import (
	"io"
	"sync"

	"github.com/coreos/go-systemd/v22/journal"
)

// facility tags every journal record emitted by this process.
const facility = "charon"

// sink delivers one formatted line to its destination. Every sink owns
// the mutex that serializes multi-line hex dumps routed through it, so
// two dumps sharing a sink can never interleave while single-line
// messages stay lock-free.
type sink interface {
	writeLine(line string)
	dumpLock() *sync.Mutex
}

// journalSink writes each line as one journal record with a fixed
// priority and syslog identifier. Send failures are dropped: logging
// must never disturb the daemon.
type journalSink struct {
	mu sync.Mutex
}

func (s *journalSink) writeLine(line string) {
	_ = journal.Send(line, journal.PriInfo, map[string]string{
		"SYSLOG_IDENTIFIER": facility,
	})
}

func (s *journalSink) dumpLock() *sync.Mutex { return &s.mu }

// sharedJournal backs every logger constructed without a stream, so
// dumps from all of them serialize on a single lock.
var sharedJournal journalSink

// streamSink writes newline-terminated lines to a caller-supplied
// writer. The writer is never closed and write errors are not observed.
type streamSink struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *streamSink) writeLine(line string) {
	_, _ = io.WriteString(s.w, line+"\n")
}

func (s *streamSink) dumpLock() *sync.Mutex { return &s.mu }

// journalAvailable reports whether systemd journald is reachable.
func journalAvailable() bool {
	return journal.Enabled()
}
