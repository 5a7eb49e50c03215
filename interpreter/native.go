package interpreter

import (
	"time"

	"github.com/loxmix/loxmix/environment"
	"github.com/loxmix/loxmix/object"
)

// defineBuiltins installs the handful of NativeFunctions every program
// sees without declaring them, registered directly onto the globals
// environment before any user code runs.
func defineBuiltins(globals *environment.Environment) {
	globals.Define("clock", &object.NativeFunction{
		Name:  "clock",
		Arity: 0,
		Fn: func(args []object.Value) (object.Value, error) {
			return float64(time.Now().UnixNano()) / 1e9, nil
		},
	})
}
