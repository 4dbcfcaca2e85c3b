package interp

import "errors"

// Sentinel errors for command interpretation. All are recoverable at the
// session loop: the command is rejected, state is left as it was.
var (
	// ErrUnknownCommand is returned for an unrecognized verb, an empty
	// line, or trailing tokens after a verb that takes none.
	ErrUnknownCommand = errors.New("interp: unknown command")

	// ErrMissingArguments is returned when a verb has too few arguments or
	// an argument is malformed in a way that is not an integer problem
	// (e.g. a multi-character pen).
	ErrMissingArguments = errors.New("interp: too few arguments")

	// ErrNonIntegerArgument is returned when a token is not entirely a
	// base-10 integer.
	ErrNonIntegerArgument = errors.New("interp: non-int value is included")

	// ErrEmptyHistory is returned by undo when there is nothing to undo.
	ErrEmptyHistory = errors.New("interp: no command in history")

	// ErrScript is returned when a script file fails to execute.
	ErrScript = errors.New("interp: script failed")

	// ErrHistoryCorrupt indicates that an entry accepted earlier failed to
	// replay during undo. Replay determinism makes this impossible for a
	// well-formed log, so it is an internal invariant violation rather
	// than a user input error.
	ErrHistoryCorrupt = errors.New("interp: history replay failed")
)
