package eval

import (
	"bytes"
	"strings"
	"testing"
)

func TestCallStackPushPop(t *testing.T) {
	s := NewCallStack(false, nil)
	if s.Depth() != 0 {
		t.Fatalf("expected empty stack, got depth=%d", s.Depth())
	}
	env1 := NewEnvironment(ACTIVATION, nil)
	env2 := NewEnvironment(ACTIVATION, nil)
	s.Push("env1", env1)
	s.Push("env2", env2)
	if s.Depth() != 2 {
		t.Fatalf("expected depth=2, got=%d", s.Depth())
	}
	top, ok := s.Top()
	if !ok || top.Name != "env2" || top.Env != env2 {
		t.Errorf("unexpected top frame %#v", top)
	}
	s.Pop()
	frames := s.Frames()
	if len(frames) != 1 || frames[0].Name != "env1" || frames[0].Env != env1 {
		t.Errorf("unexpected frames %#v", frames)
	}
	s.Pop()
	s.Pop() // popping an empty stack is a no-op
	if _, ok := s.Top(); ok || s.Depth() != 0 {
		t.Errorf("expected empty stack")
	}
}

func TestCallStackAnonymous(t *testing.T) {
	s := NewCallStack(false, nil)
	for _, name := range []string{"", "1abc", "foo bar", "a.b"} {
		s.Push(name, nil)
		if top, _ := s.Top(); top.Name != AnonymousFrame {
			t.Errorf("%q: expected %q, got=%q", name, AnonymousFrame, top.Name)
		}
	}
	s.Push("valid_name2", nil)
	if top, _ := s.Top(); top.Name != "valid_name2" {
		t.Errorf("expected name to be kept, got=%q", top.Name)
	}
}

func TestCallStackDebug(t *testing.T) {
	var buf bytes.Buffer
	s := NewCallStack(true, &buf)
	s.Push("global", NewEnvironment(GLOBAL, nil))
	s.Push("foo", NewEnvironment(ACTIVATION, nil))
	out := buf.String()
	if strings.Count(out, "execution stack") != 2 {
		t.Errorf("expected the stack to be printed after each push, got:\n%s", out)
	}
	if !strings.Contains(out, "#1 foo [ACTIVATION]") {
		t.Errorf("expected the foo frame in the output, got:\n%s", out)
	}
	buf.Reset()
	s.Pop()
	out = buf.String()
	if !strings.Contains(out, "#0 global [GLOBAL]") || strings.Contains(out, "foo") {
		t.Errorf("unexpected output after pop:\n%s", out)
	}
}
