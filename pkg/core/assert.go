package core

import "fmt"

// Assert panics with the formatted message when cond is false and
// DebugChecks is on. It suits construction-time checks; hot paths test the
// condition themselves and call Violation so no arguments are boxed when
// the check passes.
func Assert(cond bool, format string, args ...interface{}) {
	if DebugChecks && !cond {
		Violation(format, args...)
	}
}

// Violation panics with a contract violation message
func Violation(format string, args ...interface{}) {
	panic(fmt.Sprintf("contract violation: "+format, args...))
}
