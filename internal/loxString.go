package internal

type loxString string

// Representable object that can be represented as source text
type Representable interface {
	Repr() string
}

func applyOpToStrings(op operator, apply func(x, y string) interface{}, arguments ...interface{}) (interface{}, error) {
	x := arguments[0].(loxString)
	y, ok := arguments[1].(loxString)
	if !ok {
		return nil, operandsError(op)
	}
	return apply(string(x), string(y)), nil
}

// Strings are not ordered, only concatenation is defined on them
var stringBinaryOperations = map[operator]func(x, y string) interface{}{
	opAdd: func(x, y string) interface{} {
		return loxString(x + y)
	},
}

func (s loxString) getOperator(op operator) (operatorApply, error) {
	if apply, ok := stringBinaryOperations[op]; ok {
		return func(arguments ...interface{}) (interface{}, error) {
			return applyOpToStrings(op, apply, append([]interface{}{s}, arguments...)...)
		}, nil
	}
	return nil, errUndefinedOp
}

func (s loxString) String() string {
	return string(s)
}

func (s loxString) Repr() string {
	return "\"" + string(s) + "\""
}
