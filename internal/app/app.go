// Package app wires the interpreter, renderer, and configuration into one
// interactive drawing session.
package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/gridpaint/internal/config"
	"github.com/dshills/gridpaint/internal/engine/canvas"
	"github.com/dshills/gridpaint/internal/interp"
	"github.com/dshills/gridpaint/internal/persist"
	"github.com/dshills/gridpaint/internal/renderer"
	"github.com/dshills/gridpaint/internal/script"
)

// ErrQuit signals a normal user-requested exit. The entry point treats it
// as success.
var ErrQuit = errors.New("app: quit")

// Prompt is shown in front of the input position on every frame.
const Prompt = "> "

// Options configures an Application. Zero values defer to the loaded
// configuration.
type Options struct {
	// Width and Height override the configured canvas dimensions when
	// positive.
	Width  int
	Height int

	// ConfigPath locates the TOML configuration file. Empty means use the
	// built-in defaults. A non-empty path is also watched for changes.
	ConfigPath string

	// LogLevel overrides the configured level when non-empty.
	LogLevel string

	// LogOutput receives diagnostic output. Defaults to os.Stderr.
	LogOutput io.Writer

	// DisableWatch turns the config file watcher off even when ConfigPath
	// is set.
	DisableWatch bool
}

// Application owns one drawing session from startup to shutdown.
type Application struct {
	cfg     config.Config
	logger  *Logger
	session *interp.Session
	ui      renderer.UI
	watcher *config.Watcher
}

// New creates an application from options layered over the configuration
// file. The UI is attached separately with SetUI.
func New(opts Options) (*Application, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	logger := NewLogger(LoggerConfig{
		Level:  ParseLogLevel(level),
		Output: opts.LogOutput,
		Prefix: "gridpaint",
	}).WithField("session", uuid.NewString())

	width := cfg.Canvas.Width
	if opts.Width > 0 {
		width = opts.Width
	}
	height := cfg.Canvas.Height
	if opts.Height > 0 {
		height = opts.Height
	}

	c, err := canvas.New(width, height, cfg.PenRune())
	if err != nil {
		return nil, err
	}

	session := interp.NewSession(c, interp.Options{
		MaxCommand:  cfg.History.MaxCommand,
		SeedHistory: cfg.History.SeedPen,
		HistoryFile: cfg.History.File,
	})
	if cfg.Script.Enabled {
		timeout := time.Duration(cfg.Script.TimeoutSeconds) * time.Second
		session.SetScriptRunner(script.NewRunner(script.WithTimeout(timeout)))
	}

	app := &Application{
		cfg:     cfg,
		logger:  logger,
		session: session,
	}

	if opts.ConfigPath != "" && !opts.DisableWatch {
		watcher, err := config.NewWatcher(opts.ConfigPath, app.handleReload, func(err error) {
			app.logger.Warn("config reload failed: %v", err)
		})
		if err != nil {
			// A broken watcher degrades to a static config.
			app.logger.Warn("config watch unavailable: %v", err)
		} else {
			app.watcher = watcher
		}
	}

	logger.Info("session created: canvas %dx%d, pen %q", width, height, cfg.Canvas.Pen)
	return app, nil
}

// SetUI attaches the user interface. Must be called before Run.
func (app *Application) SetUI(ui renderer.UI) { app.ui = ui }

// Session returns the command session.
func (app *Application) Session() *interp.Session { return app.session }

// Config returns the configuration the application was built from.
func (app *Application) Config() config.Config { return app.cfg }

// Logger returns the application's logger instance.
func (app *Application) Logger() *Logger { return app.logger }

// handleReload applies a changed configuration file. Canvas geometry, the
// pen, and history settings are fixed for the life of a session (changing
// them under a recorded history would break replay), so only the log level
// takes effect live.
func (app *Application) handleReload(cfg config.Config) {
	app.logger.SetLevel(ParseLogLevel(cfg.Log.Level))
	app.logger.Info("config reloaded: log level now %s", cfg.Log.Level)
}

// Run drives the render/read/apply loop until the user quits or input is
// exhausted. Returns ErrQuit on a clean exit.
func (app *Application) Run() error {
	if app.ui == nil {
		return errors.New("app: no UI attached")
	}
	if err := app.ui.Init(); err != nil {
		return fmt.Errorf("app: ui init: %w", err)
	}
	defer app.ui.Close()

	message := ""
	for {
		frame := renderer.Frame{
			Rows:    app.session.Canvas().Snapshot(),
			Message: message,
			Prompt:  Prompt,
		}
		if err := app.ui.Render(frame); err != nil {
			return fmt.Errorf("app: render: %w", err)
		}

		line, err := app.ui.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				app.logger.Info("input closed")
				return ErrQuit
			}
			if errors.Is(err, bufio.ErrTooLong) {
				// The scanner cannot resynchronize past an oversized
				// line, so the session ends.
				return fmt.Errorf("app: read: %w", persist.ErrCommandTooLong)
			}
			return fmt.Errorf("app: read: %w", err)
		}

		if strings.TrimSpace(line) == "" {
			message = ""
			continue
		}
		if len(line) > app.session.MaxCommand() {
			message = errorMessage(persist.ErrCommandTooLong)
			app.logger.Warn("command over %d bytes rejected", app.session.MaxCommand())
			continue
		}

		res, err := app.session.Apply(line)
		if err != nil {
			message = errorMessage(err)
			app.logger.Debug("command rejected: %q: %v", line, err)
			continue
		}
		if res.Kind == interp.KindQuit {
			app.logger.Info("quit")
			return ErrQuit
		}

		message = res.Message
		app.logger.Debug("command ok: %s: %q", res.Kind, line)
	}
}

// Shutdown releases background resources. Safe to call more than once.
func (app *Application) Shutdown() {
	if app.watcher != nil {
		app.watcher.Close()
		app.watcher = nil
	}
}

// errorMessage converts an interpretation error into the one-line outcome
// shown above the prompt.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, interp.ErrUnknownCommand):
		return "error: unknown command"
	case errors.Is(err, interp.ErrMissingArguments):
		return "error: missing or invalid arguments"
	case errors.Is(err, interp.ErrNonIntegerArgument):
		return "error: non-int value is included"
	case errors.Is(err, interp.ErrEmptyHistory):
		return "error: no command in history"
	case errors.Is(err, persist.ErrFileOpen):
		return "error: file cannot be opened"
	case errors.Is(err, persist.ErrCommandTooLong):
		return "error: command too long"
	case errors.Is(err, interp.ErrScript):
		return fmt.Sprintf("error: %v", err)
	default:
		return fmt.Sprintf("error: %v", err)
	}
}
