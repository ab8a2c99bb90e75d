package summary

import "errors"

// ErrUnknownProcedure is returned by CallProc analysis when the callee
// name isn't bound to a ComponentSig in the environment.
var ErrUnknownProcedure = errors.New("summary: call to unknown or non-procedure component")
