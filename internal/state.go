package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/labstack/gommon/color"
)

// parseError is a lexical or syntax diagnostic collected while scanning and parsing
type parseError struct {
	err   error
	line  int
	where string
}

func (e parseError) Error() string {
	return e.format("Error")
}

func (e parseError) format(label string) string {
	return fmt.Sprintf("[line %d] %s%s: %s", e.line, label, e.where, e.err)
}

// runtimeError stops the execution of a program
type runtimeError struct {
	token *token
	err   error
}

func (e *runtimeError) Error() string {
	return e.format("Runtime error")
}

func (e *runtimeError) format(label string) string {
	return fmt.Sprintf("[line %d] %s%s: %s", e.token.line, label, e.token.location(), e.err)
}

func (e *runtimeError) Unwrap() error {
	return e.err
}

// interpreterState stores the state of one run of the pipeline
type interpreterState struct {
	source string
	tokens []token
	stmts  []stmt
	errors []parseError

	logger IPrinter
	color  *color.Color
}

func newInterpreterState(source string, p IPrinter, c *color.Color) *interpreterState {
	return &interpreterState{
		source: source,
		errors: make([]parseError, 0),
		logger: p,
		color:  c,
	}
}

func (s *interpreterState) setError(err error, line int, where string) {
	s.errors = append(s.errors, parseError{
		err:   err,
		line:  line,
		where: where,
	})
}

// tokenError records a diagnostic pointing at tk
func (s *interpreterState) tokenError(err error, tk *token) {
	s.setError(err, tk.line, tk.location())
}

// fatalError records a diagnostic and unwinds the parser to the
// enclosing declaration, where it synchronizes
func (s *interpreterState) fatalError(err error, tk *token) {
	s.tokenError(err, tk)
	panic(errParserPanic)
}

func (s *interpreterState) runtimeErr(err error, tk *token) {
	panic(&runtimeError{
		token: tk,
		err:   err,
	})
}

// Valid returns true if no lexical or syntax error was found
func (s *interpreterState) Valid() bool {
	return len(s.errors) == 0
}

// PrintErrors prints all collected diagnostics, returns true if there was any
func (s *interpreterState) PrintErrors() bool {
	for _, e := range s.errors {
		s.logger.Fprintln(os.Stderr, e.format(s.color.Red("Error")))
	}
	return len(s.errors) > 0
}

func (s *interpreterState) printRuntimeError(e *runtimeError) {
	s.logger.Fprintln(os.Stderr, e.format(s.color.Red("Runtime error")))
}

var errParserPanic = errors.New("parser panic")

// Lexer errors
var errUnexpectedChar = errors.New("Unexpected character")
var errUnterminatedString = errors.New("Unterminated string")
var errUnterminatedComment = errors.New("Unterminated block comment")

// Parser errors
var errExpectedExpr = errors.New("Expect expression")
var errUnclosedParen = errors.New("Expect ')' after expression")
var errUnclosedArguments = errors.New("Expect ')' after arguments")
var errUnclosedParams = errors.New("Expect ')' after parameters")
var errUnclosedBlock = errors.New("Expect '}' after block")
var errExpectedSemicolon = errors.New("Expect ';' after statement")
var errExpectedVarName = errors.New("Expect variable name")
var errExpectedFunctionName = errors.New("Expect function name")
var errExpectedParamName = errors.New("Expect parameter name")
var errExpectedFunctionBody = errors.New("Expect '{' before function body")
var errExpectedParenAfter = errors.New("Expect '(' after keyword")
var errExpectedParenAfterName = errors.New("Expect '(' after function name")
var errExpectedParenAfterCond = errors.New("Expect ')' after condition")
var errExpectedParenAfterFor = errors.New("Expect ')' after for clauses")
var errExpectedLoopSemicolon = errors.New("Expect ';' after loop condition")
var errInvalidAssignment = errors.New("Invalid assignment target")
var errMaxArguments = errors.New("Can't have more than 255 arguments")
var errMaxParameters = errors.New("Can't have more than 255 parameters")

// Runtime errors
var errUndefinedVar = errors.New("Undefined variable")
var errOperandsNumbers = errors.New("Operands must be two numbers")
var errOperandsAdd = errors.New("Operands must be two numbers or two strings")
var errUndefinedOp = errors.New("Undefined operator")
var errOnlyCallable = errors.New("Can only call functions and classes")
var errInvalidNumberArguments = errors.New("Invalid number of arguments")
var errFunctionsUnsupported = errors.New("Calling user-defined functions is not supported")
