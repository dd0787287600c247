package util

import "sync"

// LogEntry is a message captured by a RecordingLogContext
type LogEntry struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// RecordingLogContext is a LogContext that keeps every message logged through
// it, so callers can report them back. Messages are still written to the
// process log unless Quiet is set.
type RecordingLogContext struct {
	BasicLogContext
	Quiet bool

	mutex   sync.Mutex
	entries []LogEntry
}

// Log implements the LogSink interface
func (c *RecordingLogContext) Log(severity Severity, message string) {
	c.mutex.Lock()
	c.entries = append(c.entries, LogEntry{Severity: severity, Message: message})
	c.mutex.Unlock()
	if !c.Quiet {
		writeLine(c, severity, "-", sessionData(c), message)
	}
}

// Entries returns the captured messages in logging order
func (c *RecordingLogContext) Entries() []LogEntry {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return append([]LogEntry(nil), c.entries...)
}

// Messages returns the captured messages at or above the given severity
// (lower values are more severe)
func (c *RecordingLogContext) Messages(atLeast Severity) []string {
	var messages []string
	for _, entry := range c.Entries() {
		if entry.Severity <= atLeast {
			messages = append(messages, entry.Message)
		}
	}
	return messages
}
