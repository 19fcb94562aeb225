package eval

import (
	"fmt"
	"io"
	"os"
)

// AnonymousFrame names frames whose callee has no usable name,
// e.g. an immediately applied lambda.
const AnonymousFrame = "anonymous"

// Frame is one in-flight call: its name and activation environment.
type Frame struct {
	Name string
	Env  *Environment
}

// CallStack tracks active calls in LIFO order. It records temporal call
// order and is independent of the lexical environment chain.
type CallStack struct {
	frames []Frame
	debug  bool
	out    io.Writer
}

// NewCallStack returns an empty stack. In debug mode the whole stack is
// printed to out after every push and pop; a nil out means os.Stderr.
func NewCallStack(debug bool, out io.Writer) *CallStack {
	if out == nil {
		out = os.Stderr
	}
	return &CallStack{
		frames: make([]Frame, 0, 8),
		debug:  debug,
		out:    out,
	}
}

func (s *CallStack) Push(name string, env *Environment) {
	if !isName(name) {
		name = AnonymousFrame
	}
	s.frames = append(s.frames, Frame{Name: name, Env: env})
	if s.debug {
		s.Print()
	}
}

func (s *CallStack) Pop() {
	if len(s.frames) == 0 {
		return
	}
	s.frames[len(s.frames)-1] = Frame{}
	s.frames = s.frames[:len(s.frames)-1]
	if s.debug {
		s.Print()
	}
}

func (s *CallStack) Depth() int { return len(s.frames) }

// Top returns the innermost frame; ok is false if the stack is empty.
func (s *CallStack) Top() (frame Frame, ok bool) {
	if len(s.frames) == 0 {
		return Frame{}, false
	}
	return s.frames[len(s.frames)-1], true
}

// Frames returns a copy of the frames, outermost first.
func (s *CallStack) Frames() []Frame {
	frames := make([]Frame, len(s.frames))
	copy(frames, s.frames)
	return frames
}

// Print writes the stack, innermost frame first.
func (s *CallStack) Print() {
	fmt.Fprintln(s.out, "execution stack")
	fmt.Fprintln(s.out, "---------------")
	for i := len(s.frames) - 1; i >= 0; i-- {
		f := s.frames[i]
		if f.Env == nil {
			fmt.Fprintf(s.out, "  #%d %s\n", i, f.Name)
			continue
		}
		fmt.Fprintf(s.out, "  #%d %s [%s]\n", i, f.Name, f.Env.Kind())
	}
}

