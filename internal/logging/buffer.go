package logging

import (
	"sync"
	"time"
)

// Entry is one logical message as seen by registry taps and the
// history buffer. For hex dumps Bytes carries the span length and
// Message the header text; body lines are not recorded.
type Entry struct {
	Time    time.Time `json:"timestamp"`
	Group   string    `json:"group"`
	Logger  string    `json:"logger"`
	Message string    `json:"message"`
	Bytes   int       `json:"bytes,omitempty"`
}

// RingBuffer is a thread-safe circular store of recent entries.
type RingBuffer struct {
	entries []Entry
	size    int
	head    int
	count   int
	mu      sync.RWMutex
}

// NewRingBuffer creates a ring buffer with the given capacity.
func NewRingBuffer(size int) *RingBuffer {
	return &RingBuffer{
		entries: make([]Entry, size),
		size:    size,
	}
}

// Write adds an entry, overwriting the oldest one when full.
func (rb *RingBuffer) Write(entry Entry) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	rb.entries[rb.head] = entry
	rb.head = (rb.head + 1) % rb.size
	if rb.count < rb.size {
		rb.count++
	}
}

// ReadAll returns all stored entries in chronological order.
func (rb *RingBuffer) ReadAll() []Entry {
	rb.mu.RLock()
	defer rb.mu.RUnlock()

	if rb.count == 0 {
		return nil
	}

	result := make([]Entry, rb.count)
	if rb.count < rb.size {
		copy(result, rb.entries[:rb.count])
	} else {
		n := copy(result, rb.entries[rb.head:])
		copy(result[n:], rb.entries[:rb.head])
	}
	return result
}

// Count returns the number of stored entries.
func (rb *RingBuffer) Count() int {
	rb.mu.RLock()
	defer rb.mu.RUnlock()
	return rb.count
}
