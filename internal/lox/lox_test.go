package lox

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockReporter struct {
	errors        []error
	hadErr        bool
	hadRuntimeErr bool
}

func newMockReporter() *mockReporter {
	return &mockReporter{make([]error, 0), false, false}
}

func (reporter *mockReporter) Report(err error) {
	reporter.errors = append(reporter.errors, err)
	var runtimeErr *RuntimeError
	if errors.As(err, &runtimeErr) {
		reporter.hadRuntimeErr = true
	} else {
		reporter.hadErr = true
	}
}

func (reporter *mockReporter) Reset() {
	reporter.hadErr = false
	reporter.hadRuntimeErr = false
}

func (reporter *mockReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *mockReporter) HadRuntimeError() bool {
	return reporter.hadRuntimeErr
}

func (reporter *mockReporter) messages() []string {
	var msgs []string
	for _, err := range reporter.errors {
		msgs = append(msgs, err.Error())
	}
	return msgs
}

func tokEOF(line, column int) *Token {
	return NewToken(EOF, "", nil, line, column)
}

// tok creates a token on the first line
func tok(typ TokenType, lexeme string, column int) *Token {
	return NewToken(typ, lexeme, nil, 1, column)
}

func TestStringify(t *testing.T) {
	testCases := []struct {
		val  interface{}
		want string
	}{
		{nil, "null"},
		{true, "true"},
		{false, "false"},
		{7.0, "7"},
		{-0.5, "-0.5"},
		{3.14000, "3.14"},
		{4294967296.0, "4294967296"},
		{"hello\nworld", "hello\nworld"},
		{"", ""},
		{newLoxFn(NewFunctionStmt(tok(IDENTIFIER, "add", 5), nil, nil), nil), "function: add"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.want, stringify(tc.val))
	}
}

func TestTruthiness(t *testing.T) {
	fn := newLoxFn(NewFunctionStmt(tok(IDENTIFIER, "f", 5), nil, nil), nil)
	values := []interface{}{nil, true, false, 0.0, 1.0, "", "a", fn}

	assert := assert.New(t)
	for _, v := range values {
		want := v != nil && v != false
		assert.Equal(want, isTruthy(v), "value %v", v)
	}
}

func TestEquality(t *testing.T) {
	fn := newLoxFn(NewFunctionStmt(tok(IDENTIFIER, "f", 5), nil, nil), nil)
	other := newLoxFn(NewFunctionStmt(tok(IDENTIFIER, "f", 5), nil, nil), nil)
	testCases := []struct {
		lhs, rhs interface{}
		want     bool
	}{
		{nil, nil, true},
		{nil, false, false},
		{false, nil, false},
		{1.0, 1.0, true},
		{1.0, "1", false},
		{"a", "a", true},
		{"a", "b", false},
		{true, true, true},
		{true, 1.0, false},
		{fn, fn, true},
		{fn, other, false},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.want, isEqual(tc.lhs, tc.rhs), "%v == %v", tc.lhs, tc.rhs)
		assert.Equal(tc.want, isEqual(tc.rhs, tc.lhs), "%v == %v", tc.rhs, tc.lhs)
	}
}

func TestTokenTypeString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("(", LEFT_PAREN.String())
	assert.Equal("<=", LESS_EQUAL.String())
	assert.Equal("IDENTIFIER", IDENTIFIER.String())
	assert.Equal("CONTINUE", CONTINUE.String())
	assert.Equal("EOF", EOF.String())
	for lexeme, typ := range KeywordTokens {
		assert.Equal(strings.ToUpper(lexeme), typ.String())
	}
}
