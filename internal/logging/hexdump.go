package logging

import (
	"fmt"
	"strings"
)

const (
	// dumpWidth is the number of bytes rendered per body line.
	dumpWidth = 16

	// Bytes in this range appear verbatim in the ascii panel, anything
	// else is masked with '*'.
	asciiMin = 33
	asciiMax = 126
)

const hexDigits = "0123456789ABCDEF"

// LogBytes emits a multi-line hex/ascii dump of data: one header line
// through the ordinary prefix path, then one body line per 16-byte
// group. The whole burst is produced under the sink's dump lock, so
// concurrent dumps sharing a sink never interleave. An empty span
// produces the header only.
func (l *Logger) LogBytes(level Level, label string, data []byte) {
	if !l.Enabled(level) {
		return
	}

	mu := l.out.dumpLock()
	mu.Lock()
	defer mu.Unlock()

	msg := fmt.Sprintf("%s (%d bytes)", label, len(data))
	l.writeLine(l.prefix(level) + msg)
	for off := 0; off < len(data); off += dumpWidth {
		end := off + dumpWidth
		if end > len(data) {
			end = len(data)
		}
		l.writeLine(dumpLine(off, data[off:end]))
	}
	l.record(level, msg, len(data))
}

// dumpLine renders one body line: a right-justified decimal offset,
// two hex digits plus a space per byte, and the 16-wide ascii panel.
// Partial groups leave the hex field short and right-justify the
// panel.
func dumpLine(offset int, group []byte) string {
	var hexed, ascii strings.Builder
	for _, b := range group {
		hexed.WriteByte(hexDigits[b>>4])
		hexed.WriteByte(hexDigits[b&0xF])
		hexed.WriteByte(' ')
		if b >= asciiMin && b <= asciiMax {
			ascii.WriteByte(b)
		} else {
			ascii.WriteByte('*')
		}
	}
	return fmt.Sprintf("[=>] [%5d ] %s%*s", offset, hexed.String(), dumpWidth, ascii.String())
}
