package internal

import "fmt"

type exec struct {
	state *interpreterState

	env *env
}

func newExec(state *interpreterState) *exec {
	e := &exec{
		state: state,
		env:   newEnv(),
	}
	defineGlobals(e.env)
	return e
}

// interpret runs the statements in order and stops at the first runtime error
func (e *exec) interpret() bool {
	for _, s := range e.state.stmts {
		if err := e.run(s); err != nil {
			e.state.printRuntimeError(err)
			return false
		}
	}
	return true
}

func (e *exec) run(s stmt) (err *runtimeError) {
	defer func() {
		if r := recover(); r != nil {
			runErr, isRuntime := r.(*runtimeError)
			if !isRuntime {
				panic(r)
			}
			err = runErr
		}
	}()
	e.execute(s)
	return nil
}

func (e *exec) execute(s stmt) {
	switch st := s.(type) {
	case *exprStmt:
		e.evaluate(st.expression)
	case *printStmt:
		e.state.logger.Println(stringify(e.evaluate(st.expression)))
	case *varStmt:
		e.executeVar(st)
	case *blockStmt:
		e.executeBlock(st.stmts)
	case *ifStmt:
		e.executeIf(st)
	case *whileStmt:
		for e.truthy(e.evaluate(st.condition)) {
			e.execute(st.body)
		}
	case *fnStmt:
		e.env.define(st.name.lexeme, &function{declaration: st})
	default:
		panic(fmt.Sprintf("unexpected statement %T", s))
	}
}

func (e *exec) executeVar(st *varStmt) {
	var val interface{}
	if st.initializer != nil {
		val = e.evaluate(st.initializer)
	}
	e.env.define(st.name.lexeme, val)
}

// executeBlock runs stmts in a new scope. The scope is left even when a
// statement raises a runtime error.
func (e *exec) executeBlock(stmts []stmt) {
	e.env.push()
	defer e.env.pop()
	for _, s := range stmts {
		e.execute(s)
	}
}

func (e *exec) executeIf(st *ifStmt) {
	if e.truthy(e.evaluate(st.condition)) {
		e.execute(st.thenBranch)
	} else if st.elseBranch != nil {
		e.execute(st.elseBranch)
	}
}

func (e *exec) evaluate(ex expr) interface{} {
	switch expr := ex.(type) {
	case *literalExpr:
		return expr.value
	case *groupingExpr:
		return e.evaluate(expr.expression)
	case *variableExpr:
		value, err := e.env.get(expr.name)
		if err != nil {
			panic(err)
		}
		return value
	case *assignExpr:
		value := e.evaluate(expr.value)
		if err := e.env.assign(expr.name, value); err != nil {
			panic(err)
		}
		return value
	case *logicalExpr:
		return e.evaluateLogical(expr)
	case *unaryExpr:
		return e.evaluateUnary(expr)
	case *binaryExpr:
		return e.evaluateBinary(expr)
	case *callExpr:
		return e.evaluateCall(expr)
	default:
		panic(fmt.Sprintf("unexpected expression %T", ex))
	}
}

// evaluateLogical returns the operand that decided the result
func (e *exec) evaluateLogical(expr *logicalExpr) interface{} {
	left := e.evaluate(expr.left)

	switch expr.operator.token {
	case tkOr:
		if e.truthy(left) {
			return left
		}
	case tkAnd:
		if !e.truthy(left) {
			return left
		}
	default:
		e.state.runtimeErr(errUndefinedOp, expr.operator)
	}

	return e.evaluate(expr.right)
}

func (e *exec) evaluateUnary(expr *unaryExpr) interface{} {
	value := e.evaluate(expr.right)
	switch expr.operator.token {
	case tkBang:
		return loxBool(!e.truthy(value))
	case tkMinus:
		// Negating anything but a number gives nil
		if valueNum, ok := value.(loxNumber); ok {
			return -valueNum
		}
		return nil
	default:
		e.state.runtimeErr(errUndefinedOp, expr.operator)
	}
	return nil
}

func (e *exec) evaluateBinary(expr *binaryExpr) interface{} {
	left := e.evaluate(expr.left)
	right := e.evaluate(expr.right)

	op, ok := binaryOperators[expr.operator.token]
	if !ok {
		e.state.runtimeErr(errUndefinedOp, expr.operator)
	}

	switch op {
	case opEq:
		return loxBool(isEqual(left, right))
	case opNeq:
		return loxBool(!isEqual(left, right))
	}

	leftOperand, ok := left.(operand)
	if !ok {
		e.state.runtimeErr(operandsError(op), expr.operator)
	}
	apply, err := leftOperand.getOperator(op)
	if err != nil {
		e.state.runtimeErr(operandsError(op), expr.operator)
	}
	value, err := apply(right)
	if err != nil {
		e.state.runtimeErr(err, expr.operator)
	}
	return value
}

func (e *exec) evaluateCall(expr *callExpr) interface{} {
	callee := e.evaluate(expr.callee)
	arguments := make([]interface{}, len(expr.arguments))
	for i := range expr.arguments {
		arguments[i] = e.evaluate(expr.arguments[i])
	}

	fn, isFn := callee.(callable)
	if !isFn {
		e.state.runtimeErr(errOnlyCallable, expr.paren)
	}

	if len(arguments) != fn.arity() {
		e.state.runtimeErr(
			fmt.Errorf("%w: expected %d but got %d", errInvalidNumberArguments, fn.arity(), len(arguments)),
			expr.paren,
		)
	}

	result, err := fn.call(e, arguments)
	if err != nil {
		e.state.runtimeErr(err, expr.paren)
	}
	return result
}

// truthy is false only for nil and false
func (e *exec) truthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if valueBool, isBool := value.(loxBool); isBool {
		return bool(valueBool)
	}
	return true
}

// isEqual compares values of any type. Values of different types are
// never equal, numbers follow IEEE-754 (NaN is not equal to itself) and
// callables are equal only to themselves.
func isEqual(left, right interface{}) bool {
	return left == right
}

// stringify renders a value the way print writes it
func stringify(value interface{}) string {
	if value == nil {
		return "nil"
	}
	if s, ok := value.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", value)
}
