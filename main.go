package main

// implements the eva repl and file runner

import (
	"errors"
	"eva/eval"
	"eva/lexer"
	"eva/loader"
	"eva/loader/sqlite"
	"eva/parser"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/chzyer/readline"
)

var VERSION string
var LOGO = `
  ___ _ _ __ _   |
 / -_) V / _' |  | eva language
 \___|\_/\__,_|  | version: $VERSION
                 |
`

const (
	promptMain = "> "
	promptCont = ". "
)

func sliceVersion(v string) string {
	if v == "" {
		v = eval.VERSION
	}
	m := 10
	if len(v) < 10 {
		m = len(v)
	}
	return v[0:m]
}

func reportErrors(errors []error) bool {
	if len(errors) == 0 {
		return false
	}
	for _, err := range errors {
		fmt.Fprintf(os.Stderr, "%s\n", err)
	}
	return true
}

// incomplete reports whether errs only say that the input stopped early,
// in which case the repl keeps reading.
func incomplete(errs []error) bool {
	if len(errs) == 0 {
		return false
	}
	for _, err := range errs {
		var perr parser.ParserError
		var lerr lexer.Error
		switch {
		case errors.As(err, &perr) && perr.Message == "unmatched (":
		case errors.As(err, &lerr) && strings.HasPrefix(lerr.Message, "unterminated"):
		default:
			return false
		}
	}
	return true
}

func repl(opts eval.Options) {
	fmt.Println(strings.Replace(LOGO, "$VERSION", sliceVersion(VERSION), 1))
	rl, err := readline.New(promptMain)
	if err != nil {
		log.Fatal(err)
	}
	defer rl.Close()

	ctx := eval.NewInteractiveContext(opts)
	var buf strings.Builder
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			buf.Reset()
			rl.SetPrompt(promptMain)
			continue
		}
		if err != nil {
			break
		}
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(line)
		if strings.TrimSpace(buf.String()) == "" {
			buf.Reset()
			continue
		}
		u, errs := ctx.Run(buf.String())
		if incomplete(errs) {
			rl.SetPrompt(promptCont)
			continue
		}
		buf.Reset()
		rl.SetPrompt(promptMain)
		if reportErrors(errs) {
			continue
		}
		fmt.Println(ctx.Inspect(u))
	}
}

func runFile(filename string, opts eval.Options) int {
	src, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	program, errs := parser.Parse(filename, string(src))
	if reportErrors(errs) {
		return 1
	}
	interp := eval.New(opts)
	if _, err := interp.EvalProgram(program, nil); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", filename, err)
		return 1
	}
	return 0
}

func main() {
	debug := flag.Bool("debug", false, "print the call stack on every call and return")
	modules := flag.String("modules", loader.DefaultDir, "directory searched by import")
	modulesDB := flag.String("modules-db", "", "sqlite database searched by import instead of -modules")
	maxDepth := flag.Int("max-depth", eval.DefaultMaxDepth, "maximum call stack depth")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [file.eva]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	opts := eval.Options{
		Globals:  eval.Globals{Version: VERSION, Stdout: os.Stdout},
		Loader:   loader.FileLoader{Dir: *modules},
		MaxDepth: *maxDepth,
		Debug:    *debug,
	}
	var db *sqlite.Loader
	if *modulesDB != "" {
		var err error
		db, err = sqlite.Open(*modulesDB)
		if err != nil {
			log.Fatalf("open %s: %v", *modulesDB, err)
		}
		opts.Loader = db
	}
	code := run(opts)
	if db != nil {
		db.Close()
	}
	os.Exit(code)
}

func run(opts eval.Options) int {
	switch flag.NArg() {
	case 0:
		repl(opts)
		return 0
	case 1:
		return runFile(flag.Arg(0), opts)
	}
	flag.Usage()
	return 2
}
