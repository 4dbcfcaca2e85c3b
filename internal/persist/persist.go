// Package persist stores and reloads the command log as plain text.
//
// The file format is one raw command per line, in history order, with no
// header or framing. Loading drives the interpreter through the Target
// interface so that reloaded commands behave exactly as if they had been
// typed interactively.
package persist

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// DefaultFilename is used when save or load is given no argument.
const DefaultFilename = "history.txt"

// DefaultMaxCommand is the default upper bound on the byte length of a
// single command line.
const DefaultMaxCommand = 1000

var (
	// ErrFileOpen is returned when the history file cannot be opened.
	ErrFileOpen = errors.New("persist: cannot open file")

	// ErrCommandTooLong is returned when a loaded line exceeds the command
	// buffer limit. The load is aborted; lines applied so far stay applied.
	ErrCommandTooLong = errors.New("persist: command too long")
)

// loadableVerbs are the only verbs a history file may contribute. Lines with
// any other verb (a stray "save" or "undo" in a hand-edited file) are
// skipped silently.
var loadableVerbs = map[string]bool{
	"line":   true,
	"rect":   true,
	"circle": true,
	"chpen":  true,
}

// Target receives the contents of a history file as it is loaded.
type Target interface {
	// BeginLoad is called once the file has been opened, before any line is
	// applied. The target resets its canvas and discards its history here.
	BeginLoad()

	// ApplyLine interprets one accepted line. Returning a non-nil error
	// aborts the load; state from previously applied lines is kept.
	ApplyLine(line string) error
}

// Save writes the entries to filename, one per line, in order.
// An empty filename selects DefaultFilename.
func Save(filename string, entries []string) error {
	if filename == "" {
		filename = DefaultFilename
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrFileOpen, filename, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, entry := range entries {
		if _, err := w.WriteString(entry); err != nil {
			return fmt.Errorf("persist: writing %s: %w", filename, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("persist: writing %s: %w", filename, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("persist: writing %s: %w", filename, err)
	}
	return nil
}

// Load reads filename line by line and feeds each loadable line to the
// target. An empty filename selects DefaultFilename. Lines longer than
// limit bytes abort the load with ErrCommandTooLong; a non-positive limit
// falls back to DefaultMaxCommand.
func Load(filename string, limit int, target Target) error {
	if filename == "" {
		filename = DefaultFilename
	}
	if limit <= 0 {
		limit = DefaultMaxCommand
	}

	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrFileOpen, filename, err)
	}
	defer f.Close()

	target.BeginLoad()

	scanner := bufio.NewScanner(f)
	// Cap the token size at the command buffer limit so an oversized line
	// surfaces as bufio.ErrTooLong mid-scan.
	scanner.Buffer(nil, limit)
	for scanner.Scan() {
		line := scanner.Text()

		fields := strings.Fields(line)
		if len(fields) == 0 || !loadableVerbs[fields[0]] {
			continue
		}

		if err := target.ApplyLine(line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return fmt.Errorf("%w: %s", ErrCommandTooLong, filename)
		}
		return fmt.Errorf("persist: reading %s: %w", filename, err)
	}
	return nil
}
