// File: golox/loxerror/loxerror.go
//
// Package loxerror is the shared diagnostic reporter threaded through the
// scanner, parser, resolver, and interpreter. It replaces the ad hoc
// had-error globals and bare-string panics a first pass at this pipeline
// reaches for with explicit, passed-in state, per the resolver/interpreter
// design note against global state.
package loxerror

import (
	"fmt"
	"io"

	"github.com/akashmaji946/golox/token"
)

// RuntimeError is a runtime diagnostic: a type mismatch, bad arity, missing
// property, and so on. It carries the offending token so the caller can
// report the line, and satisfies the error interface so the interpreter can
// unwind a statement with a normal Go return instead of a sentinel value.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func NewRuntimeError(tok token.Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// Reporter aggregates diagnostics for one run (a file, or one REPL line) and
// tracks whether any static or runtime error occurred, driving the process
// exit code at the CLI boundary.
type Reporter struct {
	out             io.Writer
	hadError        bool
	hadRuntimeError bool
}

// New creates a Reporter that writes formatted diagnostics to out.
func New(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Reset clears the had-error flags so a Reporter can be reused across REPL
// lines without carrying state from a previous line's mistakes.
func (r *Reporter) Reset() {
	r.hadError = false
	r.hadRuntimeError = false
}

func (r *Reporter) HadError() bool        { return r.hadError }
func (r *Reporter) HadRuntimeError() bool { return r.hadRuntimeError }

// Error reports a static diagnostic with no further location detail than
// the line number.
func (r *Reporter) Error(line int, message string) {
	r.report(line, "", message)
}

// ErrorAt reports a static diagnostic located at a specific token, matching
// the "at end" / "at '<lexeme>'" convention for parse errors.
func (r *Reporter) ErrorAt(tok token.Token, message string) {
	if tok.Type == token.EOF {
		r.report(tok.Line, " at end", message)
	} else {
		r.report(tok.Line, fmt.Sprintf(" at '%s'", tok.Lexeme), message)
	}
}

func (r *Reporter) report(line int, where, message string) {
	r.hadError = true
	fmt.Fprintf(r.out, "[line %d] Error%s: %s\n", line, where, message)
}

// RuntimeError reports the single runtime diagnostic for the statement that
// aborted, formatted as "<message>\n[line N]" per the interpreter's error
// contract.
func (r *Reporter) RuntimeError(err *RuntimeError) {
	r.hadRuntimeError = true
	fmt.Fprintf(r.out, "%s\n[line %d]\n", err.Message, err.Token.Line)
}
