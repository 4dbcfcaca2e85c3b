// Package script runs Lua batch scripts against a drawing session.
//
// A script receives a global "paint" table whose functions route generated
// command lines back through the session's logging apply. Every drawing
// command a script issues therefore lands in the history as its own entry,
// so undo and replay treat scripted output exactly like typed input.
//
// gopher-lua states are not goroutine-safe; a Runner executes one script at
// a time on the calling goroutine with a fresh, sandboxed state per run.
package script

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/gridpaint/internal/interp"
)

// DefaultTimeout bounds a single script run. Best effort: gopher-lua checks
// the context between instructions.
const DefaultTimeout = 5 * time.Second

// Option configures a Runner.
type Option func(*Runner)

// WithTimeout sets the per-run execution timeout.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// Runner executes Lua script files. It implements interp.ScriptRunner.
type Runner struct {
	timeout time.Duration
}

// NewRunner creates a script runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunFile executes the Lua file at path against the session.
func (r *Runner) RunFile(s *interp.Session, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("script: reading %s: %w", path, err)
	}
	return r.run(s, path, string(src))
}

// run compiles and executes one script in a fresh sandboxed state.
func (r *Runner) run(s *interp.Session, name, src string) error {
	L := lua.NewState()
	defer L.Close()

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	L.SetContext(ctx)

	sandbox(L)
	installBridge(L, s)

	fn, err := L.Load(strings.NewReader(src), name)
	if err != nil {
		return fmt.Errorf("script: %s: %w", name, err)
	}

	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		return fmt.Errorf("script: %s: %w", name, err)
	}
	return nil
}

// sandbox strips globals that would let a script escape the bridge:
// loaders that read arbitrary files and the module search path.
func sandbox(L *lua.LState) {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		L.SetGlobal(name, lua.LNil)
	}

	if pkg, ok := L.GetGlobal("package").(*lua.LTable); ok {
		L.SetField(pkg, "path", lua.LString(""))
		L.SetField(pkg, "cpath", lua.LString(""))
	}
}
