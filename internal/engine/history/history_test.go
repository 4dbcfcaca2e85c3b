package history

import (
	"errors"
	"testing"
)

func TestAppendAndLen(t *testing.T) {
	l := NewLog()
	if l.Len() != 0 {
		t.Fatalf("fresh log Len() = %d, want 0", l.Len())
	}

	l.Append("line 0 0 4 4")
	l.Append("rect 1 1 3 2")

	if l.Len() != 2 {
		t.Errorf("Len() = %d, want 2", l.Len())
	}
}

func TestEntriesOrder(t *testing.T) {
	l := NewLog()
	cmds := []string{"chpen #", "line 0 0 1 1", "circle 2 2 1"}
	for _, cmd := range cmds {
		l.Append(cmd)
	}

	got := l.Entries()
	if len(got) != len(cmds) {
		t.Fatalf("Entries() length = %d, want %d", len(got), len(cmds))
	}
	for i, cmd := range cmds {
		if got[i] != cmd {
			t.Errorf("Entries()[%d] = %q, want %q", i, got[i], cmd)
		}
	}
}

func TestEntriesIsCopy(t *testing.T) {
	l := NewLog()
	l.Append("line 0 0 1 1")

	snap := l.Entries()
	l.Append("rect 0 0 2 2")

	if len(snap) != 1 {
		t.Error("earlier Entries() snapshot grew after a later append")
	}
}

func TestRemoveLast(t *testing.T) {
	l := NewLog()
	l.Append("line 0 0 1 1")
	l.Append("line 1 1 2 2")

	if err := l.RemoveLast(); err != nil {
		t.Fatalf("RemoveLast() error = %v", err)
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d after RemoveLast, want 1", l.Len())
	}
	if last, ok := l.Last(); !ok || last != "line 0 0 1 1" {
		t.Errorf("Last() = %q, %v", last, ok)
	}
}

func TestRemoveLastEmpty(t *testing.T) {
	l := NewLog()
	if err := l.RemoveLast(); !errors.Is(err, ErrEmpty) {
		t.Errorf("RemoveLast() on empty log error = %v, want ErrEmpty", err)
	}
}

func TestLastEmpty(t *testing.T) {
	l := NewLog()
	if _, ok := l.Last(); ok {
		t.Error("Last() on empty log should report not ok")
	}
}

func TestReplace(t *testing.T) {
	l := NewLog()
	l.Append("line 0 0 1 1")
	l.Append("rect 0 0 2 2")

	replacement := []string{"chpen @", "circle 3 3 2"}
	l.Replace(replacement)

	got := l.Entries()
	if len(got) != 2 || got[0] != "chpen @" || got[1] != "circle 3 3 2" {
		t.Errorf("Entries() after Replace = %v", got)
	}

	// Mutating the source slice must not affect the log.
	replacement[0] = "mutated"
	if got := l.Entries(); got[0] != "chpen @" {
		t.Error("Replace retained the caller's slice")
	}
}

func TestClear(t *testing.T) {
	l := NewLog()
	l.Append("line 0 0 1 1")
	l.Clear()

	if l.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", l.Len())
	}
}
