// Package diagnostics defines the structured error values exchanged between
// pipeline stages. Every stage converts its internal failures into
// DiagnosticError values; nothing propagates as a panic across a stage
// boundary.
package diagnostics

import (
	"fmt"

	"github.com/camlet-lang/camlet/internal/token"
)

// Code is a stable machine-readable error code. L = lexical, P = syntax,
// A = semantic, R = runtime, X = internal.
type Code string

const (
	ErrL001 Code = "L001" // lexical error (unrecognized character, malformed literal, unterminated span)

	ErrP001 Code = "P001" // unexpected token
	ErrP002 Code = "P002" // expected a specific token
	ErrP003 Code = "P003" // construct not allowed here

	ErrA001 Code = "A001" // duplicate declaration in the same scope
	ErrA002 Code = "A002" // undeclared variable
	ErrA003 Code = "A003" // type mismatch
	ErrA004 Code = "A004" // applied a non-function

	ErrR001 Code = "R001" // runtime error

	ErrX001 Code = "X001" // internal pipeline failure
)

// DiagnosticError is a positioned, coded error from one pipeline stage.
type DiagnosticError struct {
	Code    Code
	File    string
	Line    int
	Column  int
	Message string
}

func (e *DiagnosticError) Error() string {
	pos := fmt.Sprintf("%d:%d", e.Line, e.Column)
	if e.File != "" {
		pos = e.File + ":" + pos
	}
	return fmt.Sprintf("%s: [%s] %s", pos, e.Code, e.Message)
}

// NewError builds a diagnostic positioned at tok.
func NewError(code Code, tok token.Token, format string, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{
		Code:    code,
		Line:    tok.Line,
		Column:  tok.Column,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewErrorAt builds a diagnostic at an explicit position, for callers that
// no longer hold the originating token.
func NewErrorAt(code Code, line, column int, format string, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{
		Code:    code,
		Line:    line,
		Column:  column,
		Message: fmt.Sprintf(format, args...),
	}
}
