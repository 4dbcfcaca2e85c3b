package interp

// Kind identifies what a successfully interpreted command did.
type Kind int

const (
	// KindNone is the zero value, reported alongside errors.
	KindNone Kind = iota
	// KindLine indicates a line was drawn.
	KindLine
	// KindRect indicates a rectangle outline was drawn.
	KindRect
	// KindCircle indicates a circle outline was drawn.
	KindCircle
	// KindPenChanged indicates the pen character was replaced.
	KindPenChanged
	// KindSaved indicates the history was written to a file.
	KindSaved
	// KindLoaded indicates canvas and history were rebuilt from a file.
	KindLoaded
	// KindUndone indicates the last history entry was discarded and the
	// remainder replayed.
	KindUndone
	// KindScript indicates a script file was executed.
	KindScript
	// KindQuit signals session termination to the read loop.
	KindQuit
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindRect:
		return "rect"
	case KindCircle:
		return "circle"
	case KindPenChanged:
		return "chpen"
	case KindSaved:
		return "save"
	case KindLoaded:
		return "load"
	case KindUndone:
		return "undo"
	case KindScript:
		return "script"
	case KindQuit:
		return "quit"
	default:
		return "none"
	}
}

// Result describes the outcome of one interpreted command.
type Result struct {
	Kind Kind

	// Message is the user-facing outcome line ("1 line drawn", "undo!").
	Message string
}

// Mutating reports whether this kind of command mutates the canvas and is
// therefore recorded in the history.
func (k Kind) Mutating() bool {
	switch k {
	case KindLine, KindRect, KindCircle, KindPenChanged:
		return true
	default:
		return false
	}
}
