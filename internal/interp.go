package internal

//go:generate sh -c "go run ../cmd/astgen Expr > expr.go"
//go:generate sh -c "go run ../cmd/astgen Stmt > stmt.go"

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/labstack/gommon/color"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// ErrStatic is returned by Run when scanning or parsing reported errors,
// nothing was executed
var ErrStatic = errors.New("static errors")

// ErrRuntime is returned by Run when execution stopped at a runtime error
var ErrRuntime = errors.New("runtime error")

// Interpreter runs programs against one global scope, definitions made by
// a run are visible to the next one
type Interpreter struct {
	printer IPrinter
	logger  *logrus.Logger
	color   *color.Color

	exec *exec
}

// Option configures an Interpreter
type Option func(*Interpreter)

// WithLogger sets the logger used for pipeline tracing
func WithLogger(logger *logrus.Logger) Option {
	return func(in *Interpreter) {
		in.logger = logger
	}
}

var isTerminal = func(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// WithColor highlights diagnostics when enabled and stderr is a terminal
func WithColor(enabled bool) Option {
	return func(in *Interpreter) {
		if enabled && isTerminal(os.Stderr) {
			in.color.Enable()
		} else {
			in.color.Disable()
		}
	}
}

// NewInterpreter creates an interpreter writing program output and
// diagnostics to p
func NewInterpreter(p IPrinter, opts ...Option) *Interpreter {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	c := color.New()
	c.Disable()

	in := &Interpreter{
		printer: p,
		logger:  logger,
		color:   c,
	}
	for _, opt := range opts {
		opt(in)
	}
	in.exec = newExec(newInterpreterState("", p, in.color))
	return in
}

// Run scans, parses and executes source
func (in *Interpreter) Run(source string) error {
	state := in.frontend(source)
	if state.PrintErrors() {
		return ErrStatic
	}

	in.exec.state = state

	start := time.Now()
	ok := in.exec.interpret()
	in.logger.WithFields(logrus.Fields{
		"ok":      ok,
		"elapsed": time.Since(start),
	}).Debug("execute")

	if !ok {
		return ErrRuntime
	}
	return nil
}

// DumpTokens prints every token of source, returns false on lexical errors
func (in *Interpreter) DumpTokens(source string) bool {
	state := newInterpreterState(source, in.printer, in.color)
	newLexer(state).scan()
	for i := range state.tokens {
		in.printer.Println(state.tokens[i].String())
	}
	return !state.PrintErrors()
}

// DumpTree prints the syntax tree of source, returns false on static errors
func (in *Interpreter) DumpTree(source string) bool {
	state := in.frontend(source)
	if state.PrintErrors() {
		return false
	}
	in.printer.Println(printTree(state.stmts))
	return true
}

func (in *Interpreter) frontend(source string) *interpreterState {
	state := newInterpreterState(source, in.printer, in.color)

	newLexer(state).scan()
	in.logger.WithFields(logrus.Fields{
		"tokens": len(state.tokens),
		"errors": len(state.errors),
	}).Debug("scan")

	lexErrors := len(state.errors)
	newParser(state).parse()
	in.logger.WithFields(logrus.Fields{
		"statements": len(state.stmts),
		"errors":     len(state.errors) - lexErrors,
	}).Debug("parse")

	return state
}

// IsIncomplete reports whether source only fails because input ended too
// early, so more lines could complete it
func IsIncomplete(source string) bool {
	state := newInterpreterState(source, nil, nil)
	newLexer(state).scan()
	newParser(state).parse()
	if state.Valid() {
		return false
	}
	for _, e := range state.errors {
		if e.where != " at end" {
			return false
		}
	}
	return true
}

// RunSourceWithPrinter runs source code on a fresh interpreter instance
func RunSourceWithPrinter(source string, p IPrinter) bool {
	return NewInterpreter(p).Run(source) == nil
}
