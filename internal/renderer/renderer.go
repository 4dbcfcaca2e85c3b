// Package renderer displays canvas snapshots and gathers command lines.
//
// The engine exposes canvas state only through snapshots; everything about
// framing, escape sequences, and input editing lives here. Two UI
// implementations exist: Writer for plain line-oriented output (tests,
// pipes) and Terminal for a tcell full-screen session.
package renderer

import "strings"

// Frame is one rendered view of the session.
type Frame struct {
	// Rows is the canvas snapshot, one string per row.
	Rows []string

	// Message is the outcome of the previous command, if any.
	Message string

	// Prompt is shown in front of the input position.
	Prompt string
}

// UI displays frames and reads command lines.
type UI interface {
	// Init prepares the UI. Must be called before Render or ReadLine.
	Init() error

	// Close releases the UI. Safe to call after a failed Init.
	Close()

	// Render displays a frame.
	Render(frame Frame) error

	// ReadLine blocks for one command line, without the trailing newline.
	// Returns io.EOF when the input source is exhausted or the user
	// closes the session.
	ReadLine() (string, error)
}

// Border draws the canvas rows inside a +--+ box, the way the session
// presents every frame.
func Border(rows []string) []string {
	width := 0
	if len(rows) > 0 {
		width = len([]rune(rows[0]))
	}

	horizontal := "+" + strings.Repeat("-", width) + "+"
	out := make([]string, 0, len(rows)+2)
	out = append(out, horizontal)
	for _, row := range rows {
		out = append(out, "|"+row+"|")
	}
	out = append(out, horizontal)
	return out
}
