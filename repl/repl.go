// File: golox/repl/repl.go
//
// Package repl implements the interactive prompt: one line of Lox source
// read, scanned, parsed, resolved, and executed per iteration, with
// readline-backed history/editing and a colored banner; static and runtime
// diagnostics are written uncolored by loxerror.Reporter. Unlike file
// mode, a runtime error here is printed and the prompt continues —
// standard Lox REPL behavior — and globals persist across lines so a
// variable or function declared on one line is visible on the next.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/golox/interpreter"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/loxerror"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/resolver"
)

// Color definitions for REPL output: blue for chrome, green for the
// banner, cyan for instructions, red for an error from Interpret that is
// not a *loxerror.RuntimeError.
var (
	blueColor  = color.New(color.FgBlue)
	greenColor = color.New(color.FgGreen)
	cyanColor  = color.New(color.FgCyan)
	redColor   = color.New(color.FgRed)
)

// Repl holds the cosmetic configuration of an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	Prompt  string
}

func NewRepl(banner, version, author, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, Prompt: prompt}
}

// PrintBannerInfo prints the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author)
	cyanColor.Fprintln(writer, "Type Lox statements and press enter.")
	cyanColor.Fprintln(writer, "Press enter on an empty line, or Ctrl+D, to exit.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the read-eval-print loop until the user enters an empty line
// or end-of-input is reached (spec.md 6). Diagnostics are reported and the
// loop continues; they never terminate the session.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	reporter := loxerror.New(writer)
	interp := interpreter.New(writer, reporter, make(map[int]int))

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("\n"))
			return
		}

		if strings.TrimSpace(line) == "" {
			return
		}
		rl.SaveHistory(line)

		r.runLine(writer, reporter, interp, line)
	}
}

// runLine executes one line in isolation from the previous line's
// diagnostics (reporter.Reset), but shares the interpreter's environment
// and depth table so declarations accumulate across the session.
func (r *Repl) runLine(writer io.Writer, reporter *loxerror.Reporter, interp *interpreter.Interpreter, line string) {
	reporter.Reset()

	tokens := lexer.New(line, reporter).ScanTokens()
	statements := parser.New(tokens, reporter).Parse()
	if reporter.HadError() {
		return
	}

	depths := resolver.New(reporter).Resolve(statements)
	if reporter.HadError() {
		return
	}
	interp.MergeDepths(depths)

	if err := interp.Interpret(statements); err != nil {
		if rerr, ok := err.(*loxerror.RuntimeError); ok {
			reporter.RuntimeError(rerr)
		} else {
			redColor.Fprintf(writer, "%v\n", err)
		}
	}
}
