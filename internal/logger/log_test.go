package logger

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestLogger_WriteAndTail(t *testing.T) {
	l := NewLogger(100)
	w := &strings.Builder{}

	l.Write(w)
	if w.String() != "" {
		t.Fatalf("empty log wrote %q", w.String())
	}

	l.Log(Allow, "cpu", "halted")
	l.Log(Allow, "emu", "rom loaded")

	cases := []struct {
		n    int
		want string
	}{
		{100, "cpu: halted\nemu: rom loaded\n"},
		{2, "cpu: halted\nemu: rom loaded\n"},
		{1, "emu: rom loaded\n"},
		{0, ""},
		{-1, "cpu: halted\nemu: rom loaded\n"},
	}
	for _, tc := range cases {
		w.Reset()
		l.Tail(w, tc.n)
		if got := w.String(); got != tc.want {
			t.Fatalf("Tail(%d) got %q want %q", tc.n, got, tc.want)
		}
	}
}

func TestLogger_RepeatCollapse(t *testing.T) {
	l := NewLogger(10)
	for i := 0; i < 3; i++ {
		l.Log(Allow, "cpu", "spin")
	}
	l.Log(Allow, "cpu", "done")

	w := &strings.Builder{}
	l.Write(w)
	want := "cpu: spin (repeat x3)\ncpu: done\n"
	if got := w.String(); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestLogger_Cap(t *testing.T) {
	l := NewLogger(4)
	for i := 0; i < 10; i++ {
		l.Logf(Allow, "n", "%d", i)
	}
	e := l.Entries()
	if len(e) != 4 || e[0].Detail != "6" || e[3].Detail != "9" {
		t.Fatalf("entries %v", e)
	}
}

type permission bool

func (p permission) AllowLogging() bool { return bool(p) }

func TestLogger_Permission(t *testing.T) {
	l := NewLogger(10)
	l.Log(permission(false), "trace", "dropped")
	l.Logf(permission(false), "trace", "%s", "dropped")
	l.Log(permission(true), "trace", "kept")
	e := l.Entries()
	if len(e) != 1 || e[0].Detail != "kept" {
		t.Fatalf("entries %v", e)
	}
}

type stringer struct{}

func (stringer) String() string { return "from stringer" }

func TestLogger_DetailTypes(t *testing.T) {
	l := NewLogger(10)
	l.Log(Allow, "t", errors.New("from error"))
	l.Log(Allow, "t", stringer{})
	l.Log(Allow, "t", 42)
	l.Log(Allow, "t", "two\nlines")

	var got []string
	for _, e := range l.Entries() {
		got = append(got, e.Detail)
	}
	want := []string{"from error", "from stringer", "42", "two lines"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestLogger_EchoAndClear(t *testing.T) {
	l := NewLogger(10)
	w := &strings.Builder{}
	l.SetEcho(w)
	l.Log(Allow, "a", "x")
	l.Log(Allow, "a", "x")
	if want := "a: x\na: x (repeat x2)\n"; w.String() != want {
		t.Fatalf("echo got %q want %q", w.String(), want)
	}
	l.SetEcho(nil)
	l.Clear()
	l.Log(Allow, "b", "y")
	if len(l.Entries()) != 1 {
		t.Fatalf("clear did not empty the log")
	}
	if strings.Contains(w.String(), "b: y") {
		t.Fatalf("echo still on after SetEcho(nil)")
	}
}
