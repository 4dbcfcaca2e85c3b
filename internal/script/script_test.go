package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/gridpaint/internal/engine/canvas"
	"github.com/dshills/gridpaint/internal/interp"
)

func newSession(t *testing.T, w, h int) *interp.Session {
	t.Helper()
	c, err := canvas.New(w, h, '*')
	if err != nil {
		t.Fatalf("canvas.New() error = %v", err)
	}
	return interp.NewSession(c, interp.Options{})
}

func writeScript(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.lua")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunFileDrawsThroughSession(t *testing.T) {
	s := newSession(t, 5, 5)
	path := writeScript(t, `
for i = 0, 4 do
  local ok, msg = paint.cmd(string.format("line %d 0 %d 4", i, i))
  if not ok then error(msg) end
end
`)

	if err := NewRunner().RunFile(s, path); err != nil {
		t.Fatalf("RunFile() error = %v", err)
	}

	// Five vertical lines fill the canvas; each is its own history entry.
	if s.History().Len() != 5 {
		t.Errorf("history length = %d, want 5", s.History().Len())
	}
	for y, row := range s.Canvas().Snapshot() {
		if row != "*****" {
			t.Errorf("row %d = %q, want full", y, row)
		}
	}
}

func TestBridgeSizeAndPen(t *testing.T) {
	s := newSession(t, 7, 3)
	path := writeScript(t, `
local w, h = paint.size()
assert(w == 7, "width")
assert(h == 3, "height")
assert(paint.pen() == "*", "pen")
paint.cmd("chpen #")
assert(paint.pen() == "#", "pen after chpen")
`)

	if err := NewRunner().RunFile(s, path); err != nil {
		t.Fatalf("RunFile() error = %v", err)
	}
}

func TestBridgeCmdReportsErrors(t *testing.T) {
	s := newSession(t, 5, 5)
	path := writeScript(t, `
local ok, msg = paint.cmd("line 1 2")
assert(not ok, "bad command must report failure")
assert(#msg > 0, "failure carries a message")
`)

	if err := NewRunner().RunFile(s, path); err != nil {
		t.Fatalf("RunFile() error = %v", err)
	}
	if s.History().Len() != 0 {
		t.Error("failed command must not be recorded")
	}
}

func TestSandboxStripsLoaders(t *testing.T) {
	s := newSession(t, 5, 5)
	path := writeScript(t, `
assert(dofile == nil, "dofile must be removed")
assert(loadfile == nil, "loadfile must be removed")
assert(load == nil, "load must be removed")
assert(require == nil, "require must be removed")
`)

	if err := NewRunner().RunFile(s, path); err != nil {
		t.Fatalf("RunFile() error = %v", err)
	}
}

func TestRunFileSyntaxError(t *testing.T) {
	s := newSession(t, 5, 5)
	path := writeScript(t, `this is not lua (`)

	if err := NewRunner().RunFile(s, path); err == nil {
		t.Error("syntax error should fail the run")
	}
}

func TestRunFileRuntimeError(t *testing.T) {
	s := newSession(t, 5, 5)
	path := writeScript(t, `error("deliberate")`)

	if err := NewRunner().RunFile(s, path); err == nil {
		t.Error("runtime error should fail the run")
	}
}

func TestRunFileMissing(t *testing.T) {
	s := newSession(t, 5, 5)
	if err := NewRunner().RunFile(s, filepath.Join(t.TempDir(), "missing.lua")); err == nil {
		t.Error("missing file should fail")
	}
}
