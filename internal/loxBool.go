package internal

import "fmt"

type loxBool bool

func (b loxBool) getOperator(op operator) (operatorApply, error) {
	return nil, errUndefinedOp
}

func (b loxBool) String() string {
	return fmt.Sprintf("%v", bool(b))
}
