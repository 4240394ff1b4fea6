package logging

import (
	"bytes"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"
)

// maxLine bounds the length of a single emitted line. Longer lines are
// truncated silently.
const maxLine = 8192

// Logger filters, formats and emits messages for one named subsystem.
// The enabled mask may be changed at any time from any goroutine; the
// name, sink and id flag are fixed at construction.
type Logger struct {
	name   string
	level  atomic.Uint32
	logIDs bool
	out    sink
	tap    func(Entry)
}

// New creates a logger. A nil writer selects the shared journal sink;
// otherwise lines go to w, newline-terminated. The logger never closes
// w. When logIDs is set the emitting goroutine's id is included in the
// prefix.
func New(name string, level Level, logIDs bool, w io.Writer) *Logger {
	l := &Logger{name: name, logIDs: logIDs}
	if w == nil {
		l.out = &sharedJournal
	} else {
		l.out = &streamSink{w: w}
	}
	l.level.Store(uint32(level))
	return l
}

// Name returns the logger's identity.
func (l *Logger) Name() string { return l.name }

// Mask returns the current enabled mask.
func (l *Logger) Mask() Level { return Level(l.level.Load()) }

// Enable turns on the given bits in the enabled mask.
func (l *Logger) Enable(mask Level) {
	for {
		old := l.level.Load()
		if l.level.CompareAndSwap(old, old|uint32(mask)) {
			return
		}
	}
}

// Disable turns off the given bits in the enabled mask.
func (l *Logger) Disable(mask Level) {
	for {
		old := l.level.Load()
		if l.level.CompareAndSwap(old, old&^uint32(mask)) {
			return
		}
	}
}

// SetMask replaces the enabled mask.
func (l *Logger) SetMask(mask Level) { l.level.Store(uint32(mask)) }

// Enabled reports whether a message at the given level would be
// emitted by this logger.
func (l *Logger) Enabled(level Level) bool { return Enabled(l.Mask(), level) }

// Log emits one line at the given level. Arguments are expanded with
// fmt.Sprintf before the prefix is prepended; a format string with no
// arguments is written verbatim, so dynamic content is never
// interpreted as a template.
func (l *Logger) Log(level Level, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	l.writeLine(l.prefix(level) + msg)
	l.record(level, msg, 0)
}

// prefix builds "[<cat><tier>] [<name>] " with an optional goroutine
// id segment.
func (l *Logger) prefix(level Level) string {
	cat, tier := level.group()
	if l.logIDs {
		return fmt.Sprintf("[%c%c] [%s] @%d ", cat, tier, l.name, goroutineID())
	}
	return fmt.Sprintf("[%c%c] [%s] ", cat, tier, l.name)
}

// writeLine truncates and delivers one line to the sink.
func (l *Logger) writeLine(line string) {
	if len(line) > maxLine {
		line = line[:maxLine]
	}
	l.out.writeLine(line)
}

// record forwards a logical message to the registry tap, if any.
func (l *Logger) record(level Level, msg string, dumped int) {
	if l.tap == nil {
		return
	}
	l.tap(Entry{
		Time:    time.Now(),
		Group:   level.Group(),
		Logger:  l.name,
		Message: msg,
		Bytes:   dumped,
	})
}

// goroutineID extracts the running goroutine's id from its stack
// header ("goroutine N [running]: ..."). Used only for the optional
// prefix segment, so best effort is fine.
func goroutineID() uint64 {
	var buf [32]byte
	n := runtime.Stack(buf[:], false)
	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return 0
	}
	id, err := strconv.ParseUint(string(fields[1]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
