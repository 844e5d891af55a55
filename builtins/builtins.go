// Package builtins implements Sass's built-in function library on top of
// package value. It ports the ~80-function switch from the teacher's
// renderer.go (evaluateFunction) and the supporting tables in
// functions/types.go, functions/colors.go and expression/color.go,
// retyping every function from raw-string-in-string-out to
// value.Value-in-value.Value-out and registering each as a
// callable.Builtin overload instead of a FuncMap closure.
package builtins

import "github.com/titpetric/sassgo/callable"

// Register installs every built-in function into reg. No built-in
// variables (such as $pi) are registered.
func Register(reg *callable.Registry) {
	registerMath(reg)
	registerColor(reg)
	registerString(reg)
	registerList(reg)
	registerMap(reg)
	registerMeta(reg)
}
