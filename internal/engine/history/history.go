// Package history maintains the ordered log of accepted drawing commands.
//
// The log is the authoritative record of canvas state: replaying its entries
// in order from a blank canvas always reconstructs the current picture. It
// grows by one entry per accepted mutating command and shrinks only by
// removal of its last entry (undo) or wholesale replacement (load).
package history

import "errors"

// ErrEmpty is returned when the last entry is removed from an empty log.
var ErrEmpty = errors.New("history: log is empty")

// Log is an ordered sequence of raw command strings.
// Insertion order is application order is replay order.
type Log struct {
	entries []string
}

// NewLog creates an empty log.
func NewLog() *Log {
	return &Log{}
}

// Append adds one entry to the end of the log. The caller (the interpreter's
// logging apply) guarantees that only accepted mutating commands reach here.
func (l *Log) Append(entry string) {
	l.entries = append(l.entries, entry)
}

// RemoveLast drops the most recent entry.
func (l *Log) RemoveLast() error {
	if len(l.entries) == 0 {
		return ErrEmpty
	}
	l.entries = l.entries[:len(l.entries)-1]
	return nil
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the log in order. Entries are never mutated
// after insertion, so callers may hold the slice across later appends.
func (l *Log) Entries() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Last returns the most recent entry.
func (l *Log) Last() (string, bool) {
	if len(l.entries) == 0 {
		return "", false
	}
	return l.entries[len(l.entries)-1], true
}

// Replace discards the current contents and installs the given entries.
// Used by load, which rebuilds the log from a file.
func (l *Log) Replace(entries []string) {
	l.entries = make([]string, len(entries))
	copy(l.entries, entries)
}

// Clear removes all entries.
func (l *Log) Clear() {
	l.entries = nil
}
