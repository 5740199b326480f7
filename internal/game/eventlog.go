package game

import (
	"fmt"
	"log/slog"
)

const eventLogEntries = 32

// EventEntry is one user-facing message.
type EventEntry struct {
	Tick    int
	Level   slog.Level
	Message string
}

func (e EventEntry) String() string {
	return fmt.Sprintf("[T=%05d] %-5s %s", e.Tick, e.Level, e.Message)
}

// EventLog is a fixed-size ring buffer of recent messages. The newest entry
// is shown in the footer.
type EventLog struct {
	entries []EventEntry
	head    int
	count   int
}

// NewEventLog creates an empty log.
func NewEventLog() *EventLog {
	return &EventLog{entries: make([]EventEntry, eventLogEntries)}
}

// Add appends an entry, overwriting the oldest once full.
func (l *EventLog) Add(tick int, level slog.Level, msg string) {
	l.entries[l.head] = EventEntry{Tick: tick, Level: level, Message: msg}
	l.head = (l.head + 1) % eventLogEntries
	if l.count < eventLogEntries {
		l.count++
	}
}

// Recent returns entries oldest first.
func (l *EventLog) Recent() []EventEntry {
	out := make([]EventEntry, l.count)
	for i := 0; i < l.count; i++ {
		idx := (l.head - l.count + i + eventLogEntries) % eventLogEntries
		out[i] = l.entries[idx]
	}
	return out
}

// Latest returns the newest entry.
func (l *EventLog) Latest() (EventEntry, bool) {
	if l.count == 0 {
		return EventEntry{}, false
	}
	return l.entries[(l.head-1+eventLogEntries)%eventLogEntries], true
}

// Len returns the number of stored entries.
func (l *EventLog) Len() int {
	return l.count
}
