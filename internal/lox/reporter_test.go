package lox

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleReporterInit(t *testing.T) {
	assert := assert.New(t)

	r := NewSimpleReporter(io.Discard)

	assert.False(r.HadError())
	assert.False(r.HadRuntimeError())
}

func TestSimpleReporterSendAnyError(t *testing.T) {
	assert := assert.New(t)
	err := errors.New("Test error")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err)

	assert.Equal(fmt.Sprintf("%v\n", err), out.String())
	assert.True(r.HadError())
	assert.False(r.HadRuntimeError())
}

func TestSimpleReporterSendRuntimeError(t *testing.T) {
	assert := assert.New(t)
	err := newRuntimeError(NewToken(MINUS, "-", nil, 1, 1), "Operand must be a number.")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err)

	assert.Equal(fmt.Sprintf("%v\n", err), out.String())
	assert.False(r.HadError())
	assert.True(r.HadRuntimeError())
}

func TestSimpleReporterSendErrors(t *testing.T) {
	assert := assert.New(t)
	err1 := errors.New("Test error")
	err2 := newRuntimeError(NewToken(MINUS, "-", nil, 1, 1), "Operand must be a number.")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err1)
	r.Report(err2)

	assert.Equal(fmt.Sprintf("%v\n%v\n", err1, err2), out.String())
	assert.True(r.HadError())
	assert.True(r.HadRuntimeError())
}

func TestSimpleReporterReset(t *testing.T) {
	assert := assert.New(t)
	err1 := errors.New("Test error")
	err2 := newRuntimeError(NewToken(MINUS, "-", nil, 1, 1), "Operand must be a number.")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err1)
	r.Report(err2)

	r.Reset()
	assert.False(r.HadRuntimeError())
	assert.False(r.HadError())
}

func TestSimpleReporterWritesDiagnostics(t *testing.T) {
	assert := assert.New(t)

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(newScanError(2, 7, "Unexpected character '@'."))
	r.Report(newParseError(tokEOF(3, 1), "Expect expression."))
	r.Report(newRuntimeError(NewToken(SLASH, "/", nil, 4, 3), "Divide by zero."))

	assert.Equal(
		"[column: 7, line 2] Error: Unexpected character '@'.\n"+
			"[column: 1, line 3] Error at end of file: Expect expression.\n"+
			"[column: 3, line 4] Error at '/': Divide by zero.\n",
		out.String(),
	)
	assert.True(r.HadError())
	assert.True(r.HadRuntimeError())
}

func TestErrorsWrapSentinels(t *testing.T) {
	assert := assert.New(t)

	parseErr := newParseError(tok(SEMICOLON, ";", 1), "Expect expression.")
	assert.ErrorIs(parseErr, ErrSyntax)
	assert.False(errors.Is(parseErr, ErrRuntime))

	runtimeErr := newRuntimeError(tok(MINUS, "-", 1), "Operand must be a number.")
	assert.ErrorIs(runtimeErr, ErrRuntime)
	assert.False(errors.Is(runtimeErr, ErrSyntax))

	var target *RuntimeError
	assert.True(errors.As(fmt.Errorf("wrapped: %w", runtimeErr), &target))
	assert.Equal("Operand must be a number.", target.Message())
}
