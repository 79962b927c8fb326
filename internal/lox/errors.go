package lox

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is wrapped by the error returned from Parse when at least one
	// diagnostic was reported while scanning or parsing.
	ErrSyntax = errors.New("syntax error")
	// ErrRuntime is wrapped by every RuntimeError.
	ErrRuntime = errors.New("runtime error")
)

// ScanError is reported by the scanner when it finds a character sequence
// that can not be turned into a token.
type ScanError struct {
	line    int
	column  int
	message string
}

func newScanError(line, column int, message string) error {
	return &ScanError{line, column, message}
}

func (err *ScanError) Error() string {
	return formatDiagnostic(err.column, err.line, "", err.message)
}

// ParseError wraps the error message returned by the parser with the token
// where the error occured.
type ParseError struct {
	token   *Token
	message string
}

func newParseError(token *Token, message string) error {
	return &ParseError{token, message}
}

func (err *ParseError) Error() string {
	return formatDiagnostic(
		err.token.Column,
		err.token.Line,
		tokenPosition(err.token),
		err.message,
	)
}

func (err *ParseError) Unwrap() error {
	return ErrSyntax
}

// RuntimeError wraps the error message returned by the interpreter with the
// token whose evaluation failed.
type RuntimeError struct {
	token   *Token
	message string
}

func newRuntimeError(token *Token, message string) error {
	return &RuntimeError{token, message}
}

func (err *RuntimeError) Error() string {
	return formatDiagnostic(
		err.token.Column,
		err.token.Line,
		tokenPosition(err.token),
		err.message,
	)
}

func (err *RuntimeError) Unwrap() error {
	return ErrRuntime
}

// Message returns the message without position information.
func (err *RuntimeError) Message() string {
	return err.message
}

func tokenPosition(tok *Token) string {
	if tok.Typ == EOF {
		return " at end of file"
	}
	return fmt.Sprintf(" at '%s'", tok.Lexeme)
}

func formatDiagnostic(column, line int, position, message string) string {
	return fmt.Sprintf(
		"[column: %d, line %d] Error%s: %s",
		column,
		line,
		position,
		message,
	)
}

// Control signals. They travel through the error channel so that any number
// of nested blocks and loops can be unwound, and are caught by the innermost
// function call or while loop.

type loxReturn struct {
	keyword *Token
	val     interface{}
}

func newLoxReturn(keyword *Token, val interface{}) *loxReturn {
	return &loxReturn{keyword, val}
}

func (r *loxReturn) Error() string {
	return fmt.Sprintf("return %s", stringify(r.val))
}

type loopSignal string

func (s loopSignal) Error() string {
	return string(s)
}

const (
	errBreak    loopSignal = "break"
	errContinue loopSignal = "continue"
)
