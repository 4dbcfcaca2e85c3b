package renderer

import (
	"bufio"
	"fmt"
	"io"
)

// Writer is a plain line-oriented UI: each frame is printed in full,
// followed by the prompt. Suitable for pipes, tests, and dumb terminals.
type Writer struct {
	out     io.Writer
	scanner *bufio.Scanner
}

// NewWriter creates a Writer UI reading commands from in and printing
// frames to out. maxLine bounds the accepted command length in bytes.
func NewWriter(in io.Reader, out io.Writer, maxLine int) *Writer {
	scanner := bufio.NewScanner(in)
	if maxLine > 0 {
		scanner.Buffer(nil, maxLine)
	}
	return &Writer{
		out:     out,
		scanner: scanner,
	}
}

// Init implements UI. The writer needs no setup.
func (w *Writer) Init() error { return nil }

// Close implements UI.
func (w *Writer) Close() {}

// Render prints the bordered canvas and the previous command's message.
func (w *Writer) Render(frame Frame) error {
	for _, row := range Border(frame.Rows) {
		if _, err := fmt.Fprintln(w.out, row); err != nil {
			return err
		}
	}
	if frame.Message != "" {
		if _, err := fmt.Fprintln(w.out, frame.Message); err != nil {
			return err
		}
	}
	if frame.Prompt != "" {
		if _, err := fmt.Fprint(w.out, frame.Prompt); err != nil {
			return err
		}
	}
	return nil
}

// ReadLine returns the next input line.
func (w *Writer) ReadLine() (string, error) {
	if !w.scanner.Scan() {
		if err := w.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return w.scanner.Text(), nil
}
