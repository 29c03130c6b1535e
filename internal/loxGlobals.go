package internal

import "time"

func defineGlobals(e *env) {
	defineClock(e)
}

// defineClock defines clock(), milliseconds elapsed since the Unix epoch
func defineClock(e *env) {
	var clockFn nativeFn
	clockFn.callFn = func(exec *exec, arguments []interface{}) (interface{}, error) {
		return loxNumber(time.Now().UnixNano() / int64(time.Millisecond)), nil
	}

	e.define("clock", &clockFn)
}
