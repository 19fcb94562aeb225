// Command eva-mcp serves an eva session over MCP on stdin/stdout.
package main

import (
	"bytes"
	"context"
	"eva/eval"
	"eva/loader"
	"flag"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// session is a single interpreter shared by all tool calls.
type session struct {
	mu       sync.Mutex
	opts     eval.Options
	out      bytes.Buffer
	ctx      *eval.InteractiveContext
	baseline map[string]bool
}

func newSession(opts eval.Options) *session {
	s := &session{opts: opts}
	s.reset()
	return s
}

// reset must be called with s.mu held.
func (s *session) reset() {
	s.out.Reset()
	opts := s.opts
	opts.Globals.Stdout = &s.out
	s.ctx = eval.NewInteractiveContext(opts)
	s.ctx.Filename = "<mcp>"
	s.baseline = map[string]bool{}
	for _, name := range s.ctx.Interpreter().Global().Names() {
		s.baseline[name] = true
	}
}

func (s *session) handleEval(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	source, err := request.RequireString("source")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.out.Reset()
	v, errs := s.ctx.Run(source)
	printed := s.out.String()
	if len(errs) != 0 {
		msgs := make([]string, len(errs))
		for i, err := range errs {
			msgs[i] = err.Error()
		}
		return mcp.NewToolResultError(printed + strings.Join(msgs, "\n")), nil
	}
	return mcp.NewToolResultText(printed + s.ctx.Inspect(v)), nil
}

func (s *session) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	return mcp.NewToolResultText("ok"), nil
}

// handleGlobals lists the bindings the session has added to the global
// environment, one `name = value` per line.
func (s *session) handleGlobals(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	global := s.ctx.Interpreter().Global()
	var buf strings.Builder
	for _, name := range global.Names() {
		if s.baseline[name] {
			continue
		}
		v, err := global.Lookup(name)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, "%s = %s\n", name, eval.Inspect(v))
	}
	return mcp.NewToolResultText(buf.String()), nil
}

func newServer(s *session) *server.MCPServer {
	srv := server.NewMCPServer(
		"eva",
		eval.VERSION,
		server.WithToolCapabilities(false),
	)

	srv.AddTool(
		mcp.NewTool("eva_eval",
			mcp.WithDescription("Evaluate eva source in the session's global environment. Returns anything printed followed by the value of the last expression."),
			mcp.WithString("source",
				mcp.Required(),
				mcp.Description("One or more expressions, e.g. (def square (x) (* x x)) (square 4)"),
			),
		),
		s.handleEval,
	)

	srv.AddTool(
		mcp.NewTool("eva_reset",
			mcp.WithDescription("Discard every definition and start over with a fresh global environment."),
		),
		s.handleReset,
	)

	srv.AddTool(
		mcp.NewTool("eva_globals",
			mcp.WithDescription("List the names defined in the session's global environment with their values."),
		),
		s.handleGlobals,
	)

	return srv
}

func main() {
	modules := flag.String("modules", loader.DefaultDir, "directory searched by import")
	maxDepth := flag.Int("max-depth", eval.DefaultMaxDepth, "maximum call stack depth")
	flag.Parse()

	s := newSession(eval.Options{
		Loader:   loader.FileLoader{Dir: *modules},
		MaxDepth: *maxDepth,
	})
	if err := server.ServeStdio(newServer(s)); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
