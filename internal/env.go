package internal

import "fmt"

const noScope = -1

type scope struct {
	enclosing int
	values    map[string]interface{}
}

// env is an arena of scopes addressed by index. Each scope stores the index
// of its enclosing one and active is the stack of scopes entered so far,
// the global scope always at the bottom.
type env struct {
	scopes []scope
	active []int
}

func newEnv() *env {
	e := &env{}
	e.push()
	return e
}

func (e *env) current() int {
	return e.active[len(e.active)-1]
}

// push opens a scope enclosed by the current one and makes it current
func (e *env) push() int {
	enclosing := noScope
	if len(e.active) > 0 {
		enclosing = e.current()
	}
	e.scopes = append(e.scopes, scope{
		enclosing: enclosing,
		values:    make(map[string]interface{}),
	})
	index := len(e.scopes) - 1
	e.active = append(e.active, index)
	return index
}

// pop leaves the current scope. The global scope is never popped.
func (e *env) pop() {
	if len(e.active) == 1 {
		return
	}
	index := e.current()
	e.active = e.active[:len(e.active)-1]
	// Nothing can refer to a scope once it is left
	if index == len(e.scopes)-1 {
		e.scopes[index] = scope{}
		e.scopes = e.scopes[:index]
	}
}

// depth is the number of active scopes, globals included
func (e *env) depth() int {
	return len(e.active)
}

// define binds name in the current scope, shadowing any outer binding
func (e *env) define(name string, value interface{}) {
	e.scopes[e.current()].values[name] = value
}

func (e *env) get(name *token) (interface{}, error) {
	for i := e.current(); i != noScope; i = e.scopes[i].enclosing {
		if value, ok := e.scopes[i].values[name.lexeme]; ok {
			return value, nil
		}
	}
	return nil, undefinedVar(name)
}

// assign overwrites an existing binding in whichever scope owns it
func (e *env) assign(name *token, value interface{}) error {
	for i := e.current(); i != noScope; i = e.scopes[i].enclosing {
		if _, ok := e.scopes[i].values[name.lexeme]; ok {
			e.scopes[i].values[name.lexeme] = value
			return nil
		}
	}
	return undefinedVar(name)
}

func undefinedVar(name *token) error {
	return &runtimeError{
		token: name,
		err:   fmt.Errorf("%w '%s'", errUndefinedVar, name.lexeme),
	}
}
