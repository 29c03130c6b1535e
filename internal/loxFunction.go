package internal

import "fmt"

// callable is the capability a value needs to be the callee of a call expression
type callable interface {
	arity() int
	call(exec *exec, arguments []interface{}) (interface{}, error)
}

type nativeFn struct {
	arityValue int
	callFn     func(exec *exec, arguments []interface{}) (interface{}, error)
}

func (n *nativeFn) arity() int {
	return n.arityValue
}

func (n *nativeFn) call(exec *exec, arguments []interface{}) (interface{}, error) {
	return n.callFn(exec, arguments)
}

func (n *nativeFn) String() string {
	return "<native fn>"
}

// function is the value bound by a function declaration.
// Its body is never run: calls report errFunctionsUnsupported.
type function struct {
	declaration *fnStmt
}

func (f *function) arity() int {
	return len(f.declaration.params)
}

func (f *function) call(exec *exec, arguments []interface{}) (interface{}, error) {
	return nil, errFunctionsUnsupported
}

func (f *function) String() string {
	return fmt.Sprintf("<fn %s>", f.declaration.name.lexeme)
}
