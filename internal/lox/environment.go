package lox

import "fmt"

// Environment is a single scope mapping names to values. Scopes are chained
// through their enclosing scope, which is fixed at construction, and may be
// retained by closures after the block that created them has ended.
type Environment struct {
	enclosing  *Environment
	values     map[string]interface{}
	insideLoop bool
}

// NewEnvironment creates an empty scope. A child scope inherits whether it
// runs inside a loop body from its enclosing scope.
func NewEnvironment(enclosing *Environment) *Environment {
	env := &Environment{
		enclosing: enclosing,
		values:    make(map[string]interface{}),
	}
	if enclosing != nil {
		env.insideLoop = enclosing.insideLoop
	}
	return env
}

func (env *Environment) Enclosing() *Environment {
	return env.enclosing
}

// Define binds name in this scope, overwriting any previous binding.
func (env *Environment) Define(name string, value interface{}) {
	env.values[name] = value
}

func (env *Environment) Assign(name *Token, value interface{}) error {
	for e := env; e != nil; e = e.enclosing {
		if _, ok := e.values[name.Lexeme]; ok {
			e.values[name.Lexeme] = value
			return nil
		}
	}
	return undefinedVariable(name)
}

func (env *Environment) Get(name *Token) (interface{}, error) {
	for e := env; e != nil; e = e.enclosing {
		if value, ok := e.values[name.Lexeme]; ok {
			return value, nil
		}
	}
	return nil, undefinedVariable(name)
}

func undefinedVariable(name *Token) error {
	return newRuntimeError(name, fmt.Sprintf("Undefined variable: %s", name.Lexeme))
}
