package internal

import (
	"math"
	"strconv"
)

type loxNumber float64

func applyOpToNums(op operator, apply func(x, y float64) interface{}, arguments ...interface{}) (interface{}, error) {
	x := arguments[0].(loxNumber)
	y, ok := arguments[1].(loxNumber)
	if !ok {
		return nil, operandsError(op)
	}
	return apply(float64(x), float64(y)), nil
}

var numberBinaryOperations = map[operator]func(x, y float64) interface{}{
	opAdd: func(x, y float64) interface{} {
		return loxNumber(x + y)
	},
	opSub: func(x, y float64) interface{} {
		return loxNumber(x - y)
	},
	opMul: func(x, y float64) interface{} {
		return loxNumber(x * y)
	},
	// IEEE-754 division, x/0 gives an infinity or NaN
	opDiv: func(x, y float64) interface{} {
		return loxNumber(x / y)
	},
	opGt: func(x, y float64) interface{} {
		return loxBool(x > y)
	},
	opGte: func(x, y float64) interface{} {
		return loxBool(x >= y)
	},
	opLt: func(x, y float64) interface{} {
		return loxBool(x < y)
	},
	opLte: func(x, y float64) interface{} {
		return loxBool(x <= y)
	},
}

func (n loxNumber) getOperator(op operator) (operatorApply, error) {
	if apply, ok := numberBinaryOperations[op]; ok {
		return func(arguments ...interface{}) (interface{}, error) {
			return applyOpToNums(op, apply, append([]interface{}{n}, arguments...)...)
		}, nil
	}
	return nil, errUndefinedOp
}

func (n loxNumber) String() string {
	f := float64(n)
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
