package renderer

import (
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Terminal is a tcell full-screen UI. The canvas occupies the top of the
// screen, the previous command's message sits below it, and the bottom
// line is an editable command prompt.
type Terminal struct {
	mu sync.Mutex

	screen tcell.Screen
	style  tcell.Style

	// Last rendered frame, re-drawn on resize and while editing.
	frame Frame

	// Current input line under the prompt.
	input []rune
}

// NewTerminal creates a terminal UI.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{
		screen: screen,
		style:  tcell.StyleDefault,
	}, nil
}

// Init initializes the screen.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.Init()
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Fini()
}

// Render displays a frame and remembers it for redraws.
func (t *Terminal) Render(frame Frame) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.frame = frame
	t.draw()
	return nil
}

// draw paints the stored frame and input line. Caller holds the lock.
func (t *Terminal) draw() {
	t.screen.Clear()

	y := 0
	for _, row := range Border(t.frame.Rows) {
		t.drawText(0, y, row)
		y++
	}
	if t.frame.Message != "" {
		t.drawText(0, y, t.frame.Message)
	}
	y++

	promptLine := t.frame.Prompt + string(t.input)
	t.drawText(0, y+1, promptLine)
	t.screen.ShowCursor(len([]rune(promptLine)), y+1)

	t.screen.Show()
}

func (t *Terminal) drawText(x, y int, text string) {
	for _, r := range text {
		t.screen.SetContent(x, y, r, nil, t.style)
		x++
	}
}

// ReadLine polls key events until Enter, editing the prompt line in place.
// Esc and Ctrl-C end the session with io.EOF.
func (t *Terminal) ReadLine() (string, error) {
	for {
		ev := t.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			t.mu.Lock()
			t.screen.Sync()
			t.draw()
			t.mu.Unlock()

		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return "", io.EOF

			case tcell.KeyEnter:
				t.mu.Lock()
				line := string(t.input)
				t.input = nil
				t.mu.Unlock()
				return line, nil

			case tcell.KeyBackspace, tcell.KeyBackspace2:
				t.mu.Lock()
				if len(t.input) > 0 {
					t.input = t.input[:len(t.input)-1]
				}
				t.draw()
				t.mu.Unlock()

			case tcell.KeyRune:
				t.mu.Lock()
				t.input = append(t.input, ev.Rune())
				t.draw()
				t.mu.Unlock()
			}

		case nil:
			// Screen finalized under us.
			return "", io.EOF
		}
	}
}
