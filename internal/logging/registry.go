package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
)

const historySize = 1000

// Tap observes every logical message emitted through registry loggers.
// Taps must not call back into the emitting logger.
type Tap func(Entry)

var (
	mu         sync.RWMutex
	loggers    = make(map[string]*Logger)
	current    Config
	configured bool
	history    *RingBuffer
	taps       []Tap
)

// Config selects sink, default level and per-logger overrides for
// registry loggers. Values use the ParseLevel syntax.
type Config struct {
	Default   string            `toml:"default"`
	Output    string            `toml:"output"`
	ThreadIDs bool              `toml:"thread_ids"`
	Loggers   map[string]string `toml:"loggers"`
}

// Initialize applies a configuration: existing registry loggers are
// re-leveled, future ones pick their level from it. Returns an error
// when any level specification fails to parse; in that case nothing is
// applied.
func Initialize(cfg Config) error {
	def, err := levelOrDefault(cfg.Default)
	if err != nil {
		return err
	}
	overrides := make(map[string]Level, len(cfg.Loggers))
	for name, spec := range cfg.Loggers {
		level, parseErr := ParseLevel(spec)
		if parseErr != nil {
			return fmt.Errorf("logger %q: %w", name, parseErr)
		}
		overrides[name] = level
	}

	mu.Lock()
	defer mu.Unlock()

	current = cfg
	configured = true
	if history == nil {
		history = NewRingBuffer(historySize)
	}
	for name, l := range loggers {
		level := def
		if override, ok := overrides[name]; ok {
			level = override
		}
		l.SetMask(level)
	}
	return nil
}

// Get returns the registry logger with the given name, creating it on
// first use. Loggers created before Initialize default to journal
// output (stderr when journald is unavailable) at DefaultLevel.
func Get(name string) *Logger {
	mu.RLock()
	if l, ok := loggers[name]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()

	if l, ok := loggers[name]; ok {
		return l
	}

	level := DefaultLevel
	if configured {
		if def, err := levelOrDefault(current.Default); err == nil {
			level = def
		}
		if spec, ok := current.Loggers[name]; ok {
			if override, err := ParseLevel(spec); err == nil {
				level = override
			}
		}
	}

	l := New(name, level, current.ThreadIDs, registryOutput())
	l.tap = dispatch
	loggers[name] = l
	return l
}

// SetLevel replaces the mask of a named registry logger from a level
// specification, creating the logger if needed.
func SetLevel(name, spec string) error {
	level, err := ParseLevel(spec)
	if err != nil {
		return err
	}
	Get(name).SetMask(level)
	return nil
}

// Snapshot returns the current mask of every registry logger.
func Snapshot() map[string]Level {
	mu.RLock()
	defer mu.RUnlock()

	result := make(map[string]Level, len(loggers))
	for name, l := range loggers {
		result[name] = l.Mask()
	}
	return result
}

// History returns the buffer of recent entries, nil before Initialize.
func History() *RingBuffer {
	mu.RLock()
	defer mu.RUnlock()
	return history
}

// AddTap registers an observer for messages from registry loggers.
func AddTap(t Tap) {
	mu.Lock()
	defer mu.Unlock()
	taps = append(taps, t)
}

// dispatch fans one entry out to the history buffer and all taps.
func dispatch(e Entry) {
	mu.RLock()
	buf := history
	observers := taps
	mu.RUnlock()

	if buf != nil {
		buf.Write(e)
	}
	for _, t := range observers {
		t(e)
	}
}

// registryOutput resolves the configured sink. Must be called with mu
// held.
func registryOutput() io.Writer {
	switch current.Output {
	case "stderr":
		return os.Stderr
	case "stdout":
		return os.Stdout
	default:
		if journalAvailable() {
			return nil
		}
		return os.Stderr
	}
}

func levelOrDefault(spec string) (Level, error) {
	if spec == "" {
		return DefaultLevel, nil
	}
	return ParseLevel(spec)
}
