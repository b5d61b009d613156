// File: golox/cmd/golox/main.go
//
// Command golox is the language's command-line entry point: zero
// arguments starts the interactive prompt, one argument runs that file,
// and anything else is a usage error. Exit codes follow spec.md 6: 0 on
// success, 64 on CLI misuse, 65 on a lexical/syntactic/resolver error, 70
// on a runtime error.
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/golox/interpreter"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/loxerror"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/repl"
	"github.com/akashmaji946/golox/resolver"
)

const (
	exitOK       = 0
	exitUsage    = 64
	exitStatic   = 65
	exitRuntime  = 70
	version      = "v1.0.0"
	author       = "akashmaji946(@iisc.ac.in)"
	line         = "----------------------------------------------------------------"
	prompt       = "golox> "
)

var banner = `
   ▗▄▄▖ ▗▄▖ ▗▖    ▗▄▖ ▗▖  ▗▖
  ▐▌   ▐▌ ▐▌▐▌   ▐▌ ▐▌ ▝▚▞▘
  ▐▌▝▜▌▐▌ ▐▌▐▌   ▐▌ ▐▌  ▐▌
  ▝▚▄▞▘▝▚▄▞▘▐▙▄▄▖▝▚▄▞▘  ▐▌
`

func main() {
	switch len(os.Args) {
	case 1:
		repl.NewRepl(banner, version, author, line, prompt).Start(os.Stdout)
	case 2:
		runFile(os.Args[1])
	default:
		fmt.Fprintln(os.Stderr, "Usage: golox [script]")
		os.Exit(exitUsage)
	}
}

func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not read file %q: %v\n", path, err)
		os.Exit(exitUsage)
	}

	reporter := loxerror.New(os.Stderr)

	tokens := lexer.New(string(source), reporter).ScanTokens()
	statements := parser.New(tokens, reporter).Parse()
	if reporter.HadError() {
		os.Exit(exitStatic)
	}

	depths := resolver.New(reporter).Resolve(statements)
	if reporter.HadError() {
		os.Exit(exitStatic)
	}

	interp := interpreter.New(os.Stdout, reporter, depths)
	if err := interp.Interpret(statements); err != nil {
		if rerr, ok := err.(*loxerror.RuntimeError); ok {
			reporter.RuntimeError(rerr)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitRuntime)
	}

	os.Exit(exitOK)
}
