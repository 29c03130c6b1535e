package internal

type operator string

const (
	opAdd operator = "add"
	opSub operator = "sub"
	opDiv operator = "div"
	opMul operator = "mul"
	opEq  operator = "eq"
	opNeq operator = "neq"
	opLt  operator = "lt"
	opLte operator = "lte"
	opGt  operator = "gt"
	opGte operator = "gte"
)

type operatorApply func(arguments ...interface{}) (interface{}, error)

// operand is a value that defines binary operators on itself
type operand interface {
	getOperator(op operator) (operatorApply, error)
}

var binaryOperators = map[tokenType]operator{
	tkPlus:         opAdd,
	tkMinus:        opSub,
	tkSlash:        opDiv,
	tkStar:         opMul,
	tkEqualEqual:   opEq,
	tkBangEqual:    opNeq,
	tkLess:         opLt,
	tkLessEqual:    opLte,
	tkGreater:      opGt,
	tkGreaterEqual: opGte,
}

// operandsError is the error reported when op gets operands it is not defined for
func operandsError(op operator) error {
	if op == opAdd {
		return errOperandsAdd
	}
	return errOperandsNumbers
}
