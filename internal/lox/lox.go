package lox

import (
	"fmt"
	"math"
	"strconv"
)

// loxCallable is implemented by Lox's objects that can be called.
type loxCallable interface {
	arity() int
	call(in *Interpreter, args []interface{}) (interface{}, error)
}

// loxFn represents a lox function that can be called
type loxFn struct {
	decl    *FunctionStmt
	closure *Environment
}

func newLoxFn(decl *FunctionStmt, closure *Environment) *loxFn {
	fn := new(loxFn)
	fn.decl = decl
	fn.closure = closure
	return fn
}

func (fn *loxFn) arity() int {
	return len(fn.decl.Params)
}

func (fn *loxFn) call(
	in *Interpreter,
	args []interface{},
) (interface{}, error) {
	/*
		Each call dynamically creates a new environment, otherwise, recursion would
		break. If there are multiple calls to the same function in play at the same
		time, each needs its own environment, even though they are all calls to the
		same function.
	*/
	env := NewEnvironment(fn.closure)
	// break and continue never cross a call boundary
	env.insideLoop = false
	for i, param := range fn.decl.Params {
		env.Define(param.Lexeme, args[i])
	}

	if err := in.executeBlock(fn.decl.Body, env); err != nil {
		if ret, ok := err.(*loxReturn); ok {
			return ret.val, nil
		}
		return nil, err
	}
	return nil, nil
}

func (fn *loxFn) String() string {
	return fmt.Sprintf("function: %s", fn.decl.Name.Lexeme)
}

func stringify(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case float64:
		switch {
		case math.IsInf(v, 1):
			return "inf"
		case math.IsInf(v, -1):
			return "-inf"
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func isTruthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if v, ok := value.(bool); ok {
		return v
	}
	return true
}

// isEqual compares values of the same variant structurally. Functions are
// equal only to themselves.
func isEqual(lhs, rhs interface{}) bool {
	return lhs == rhs
}
