package events

// Event type constants for kelindar/event.
const (
	TypeLogEntry uint32 = iota + 1
	TypeLevelChanged
)

// Event interface required by kelindar/event.
type Event interface {
	Type() uint32
}

// LogEntryEvent carries one emitted log message to subscribers.
type LogEntryEvent struct {
	Timestamp string `json:"timestamp" example:"2026-08-24T10:30:00.123Z" doc:"Emission timestamp"`
	Group     string `json:"group" example:"~1" doc:"Category symbol and tier digit"`
	Logger    string `json:"logger" example:"ike" doc:"Emitting logger"`
	Message   string `json:"message" doc:"Rendered message without prefix"`
	Bytes     int    `json:"bytes,omitempty" doc:"Span length for hex dumps"`
}

// Type returns the event type identifier for LogEntryEvent.
func (e LogEntryEvent) Type() uint32 { return TypeLogEntry }

// LevelChangedEvent is published when a logger's enabled mask changes
// at runtime.
type LevelChangedEvent struct {
	Logger string `json:"logger" example:"ike" doc:"Logger name"`
	Level  string `json:"level" example:"all2" doc:"New level specification"`
}

// Type returns the event type identifier for LevelChangedEvent.
func (e LevelChangedEvent) Type() uint32 { return TypeLevelChanged }
