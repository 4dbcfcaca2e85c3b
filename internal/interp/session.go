// Package interp parses drawing commands and dispatches them against a
// session's canvas and history.
//
// A Session owns exactly one canvas and one command log. Two entry points
// share the same parse/dispatch core: Apply records accepted mutating
// commands in the log, while the internal replay apply never touches the
// log. Undo and load are both built on replay, so the "replaying never
// grows the history" invariant is enforced structurally.
package interp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/gridpaint/internal/engine/canvas"
	"github.com/dshills/gridpaint/internal/engine/history"
	"github.com/dshills/gridpaint/internal/engine/raster"
	"github.com/dshills/gridpaint/internal/persist"
)

// ScriptRunner executes a script file against a session. The script bridge
// feeds generated commands back through Session.Apply, so scripted drawing
// is recorded and replayed like typed input.
type ScriptRunner interface {
	RunFile(s *Session, path string) error
}

// Options configures a session.
type Options struct {
	// MaxCommand bounds the byte length of a single command line.
	// Non-positive values select persist.DefaultMaxCommand.
	MaxCommand int

	// SeedHistory records one "chpen <pen>" entry for the canvas's initial
	// pen, so a saved history reproduces the pen even if it was never
	// changed interactively.
	SeedHistory bool

	// HistoryFile is the filename save and load fall back to when the
	// command gives none. Empty selects persist.DefaultFilename.
	HistoryFile string
}

// Session interprets commands against one canvas and one history log.
type Session struct {
	canvas      *canvas.Canvas
	log         *history.Log
	maxCommand  int
	historyFile string
	scripts     ScriptRunner
}

// NewSession creates a session owning the given canvas.
func NewSession(c *canvas.Canvas, opts Options) *Session {
	maxCommand := opts.MaxCommand
	if maxCommand <= 0 {
		maxCommand = persist.DefaultMaxCommand
	}

	historyFile := opts.HistoryFile
	if historyFile == "" {
		historyFile = persist.DefaultFilename
	}

	s := &Session{
		canvas:      c,
		log:         history.NewLog(),
		maxCommand:  maxCommand,
		historyFile: historyFile,
	}
	if opts.SeedHistory {
		s.log.Append(fmt.Sprintf("chpen %c", c.Pen()))
	}
	return s
}

// SetScriptRunner enables the script verb. With no runner set, script is an
// unknown command.
func (s *Session) SetScriptRunner(r ScriptRunner) { s.scripts = r }

// Canvas returns the session's canvas.
func (s *Session) Canvas() *canvas.Canvas { return s.canvas }

// History returns the session's command log.
func (s *Session) History() *history.Log { return s.log }

// MaxCommand returns the command length limit in bytes.
func (s *Session) MaxCommand() int { return s.maxCommand }

// Apply interprets one command line. Accepted mutating commands are
// appended verbatim to the history.
func (s *Session) Apply(line string) (Result, error) {
	return s.apply(line, true)
}

// apply is the shared parse/dispatch core. When logged is false (replay
// mode) nothing is ever appended to the history.
func (s *Session) apply(line string, logged bool) (Result, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Result{}, ErrUnknownCommand
	}
	verb, args := fields[0], fields[1:]

	var res Result
	var err error
	switch verb {
	case "line":
		res, err = s.cmdLine(args)
	case "rect":
		res, err = s.cmdRect(args)
	case "circle":
		res, err = s.cmdCircle(args)
	case "chpen":
		res, err = s.cmdChpen(args)
	case "save":
		res, err = s.cmdSave(args)
	case "load":
		res, err = s.cmdLoad(args)
	case "undo":
		res, err = s.cmdUndo()
	case "script":
		res, err = s.cmdScript(args)
	case "quit":
		res = Result{Kind: KindQuit}
	default:
		return Result{}, ErrUnknownCommand
	}
	if err != nil {
		return Result{}, err
	}

	if logged && res.Kind.Mutating() {
		s.log.Append(line)
	}
	return res, nil
}

func (s *Session) cmdLine(args []string) (Result, error) {
	p, err := parseInts(args, 4)
	if err != nil {
		return Result{}, err
	}
	raster.Line(s.canvas, p[0], p[1], p[2], p[3])
	return Result{Kind: KindLine, Message: "1 line drawn"}, nil
}

func (s *Session) cmdRect(args []string) (Result, error) {
	p, err := parseInts(args, 4)
	if err != nil {
		return Result{}, err
	}
	raster.Rect(s.canvas, p[0], p[1], p[2], p[3])
	return Result{Kind: KindRect, Message: "1 rectangle drawn"}, nil
}

func (s *Session) cmdCircle(args []string) (Result, error) {
	p, err := parseInts(args, 3)
	if err != nil {
		return Result{}, err
	}
	raster.Circle(s.canvas, p[0], p[1], p[2])
	return Result{Kind: KindCircle, Message: "1 circle drawn"}, nil
}

func (s *Session) cmdChpen(args []string) (Result, error) {
	if len(args) == 0 {
		return Result{}, ErrMissingArguments
	}
	if len(args) > 1 {
		return Result{}, ErrUnknownCommand
	}

	token := args[0]
	r, size := utf8.DecodeRuneInString(token)
	if size != len(token) || r == utf8.RuneError {
		// Multi-character or malformed token.
		return Result{}, ErrMissingArguments
	}
	if unicode.IsSpace(r) || unicode.IsControl(r) || runewidth.RuneWidth(r) != 1 {
		return Result{}, ErrMissingArguments
	}

	s.canvas.SetPen(r)
	return Result{Kind: KindPenChanged, Message: "pen changed"}, nil
}

func (s *Session) cmdSave(args []string) (Result, error) {
	filename := s.historyFile
	if len(args) > 0 {
		filename = args[0]
	}
	if err := persist.Save(filename, s.log.Entries()); err != nil {
		return Result{}, err
	}
	return Result{Kind: KindSaved, Message: "history saved"}, nil
}

func (s *Session) cmdLoad(args []string) (Result, error) {
	if len(args) > 1 {
		return Result{}, ErrUnknownCommand
	}
	filename := s.historyFile
	if len(args) > 0 {
		filename = args[0]
	}

	if err := persist.Load(filename, s.maxCommand, loadTarget{s}); err != nil {
		return Result{}, err
	}
	return Result{Kind: KindLoaded, Message: "loaded history file"}, nil
}

// cmdUndo resets the canvas and replays every history entry but the last in
// non-logging mode, then drops the last entry. The result is exactly the
// canvas a fresh session would build from the truncated log.
func (s *Session) cmdUndo() (Result, error) {
	if s.log.Len() == 0 {
		return Result{}, ErrEmptyHistory
	}

	entries := s.log.Entries()
	s.canvas.Reset()
	for _, entry := range entries[:len(entries)-1] {
		if _, err := s.apply(entry, false); err != nil {
			return Result{}, fmt.Errorf("%w: replaying %q: %v", ErrHistoryCorrupt, entry, err)
		}
	}

	if err := s.log.RemoveLast(); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrHistoryCorrupt, err)
	}
	return Result{Kind: KindUndone, Message: "undo!"}, nil
}

func (s *Session) cmdScript(args []string) (Result, error) {
	if s.scripts == nil {
		return Result{}, ErrUnknownCommand
	}
	if len(args) == 0 {
		return Result{}, ErrMissingArguments
	}
	if len(args) > 1 {
		return Result{}, ErrUnknownCommand
	}

	if err := s.scripts.RunFile(s, args[0]); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrScript, err)
	}
	return Result{Kind: KindScript, Message: "script executed"}, nil
}

// loadTarget adapts a session to persist.Target without exposing the load
// callbacks on the session API.
type loadTarget struct {
	s *Session
}

// BeginLoad resets the canvas and discards the history; the load rebuilds
// both from the file.
func (t loadTarget) BeginLoad() {
	t.s.canvas.Reset()
	t.s.log.Clear()
}

// ApplyLine runs a loaded line through the logging apply. Validation errors
// abort the load; anything else (an unknown command should have been
// filtered by the verb check) is skipped, leaving prior lines applied.
func (t loadTarget) ApplyLine(line string) error {
	_, err := t.s.Apply(line)
	if err != nil && (errors.Is(err, ErrMissingArguments) || errors.Is(err, ErrNonIntegerArgument)) {
		return err
	}
	return nil
}

// parseInts converts the first n arguments to integers. Each token must be
// consumed entirely as a base-10 integer; extra tokens beyond n are
// ignored, matching the interactive grammar.
func parseInts(args []string, n int) ([]int, error) {
	if len(args) < n {
		return nil, ErrMissingArguments
	}

	out := make([]int, n)
	for i := 0; i < n; i++ {
		v, err := strconv.Atoi(args[i])
		if err != nil {
			return nil, ErrNonIntegerArgument
		}
		out[i] = v
	}
	return out, nil
}
