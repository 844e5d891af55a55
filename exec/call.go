package exec

import (
	"strings"

	"github.com/titpetric/sassgo/ast"
	"github.com/titpetric/sassgo/callable"
	"github.com/titpetric/sassgo/env"
	"github.com/titpetric/sassgo/sasserr"
	"github.com/titpetric/sassgo/value"
)

// UserFunction is a @function declaration bound to the environment it was
// declared in, so its body can see the variables/functions/mixins visible
// at declaration time (lexical, not dynamic, scoping) — the closure
// capture renderMixinCall never needed, since LESS mixins don't nest
// function-scoped closures this way.
type UserFunction struct {
	Decl    *ast.FunctionRule
	Closure *env.Environment
}

// UserMixin is the @mixin equivalent of UserFunction, additionally able to
// carry a bound @content closure through execInclude.
type UserMixin struct {
	Decl    *ast.MixinRule
	Closure *env.Environment
}

// CallFunction implements eval.Caller: it resolves name (built-in or
// user-defined, module-qualified via namespace) and invokes it with args
// evaluated against the *caller's* environment before switching into the
// callee's closure, generalizing renderer.go's evaluateFunction dispatch
// switch into a real two-environment call (caller evaluates arguments,
// callee's body runs under its own declaration-time closure).
func (c *Context) CallFunction(namespace, name string, args []ast.Argument, span ast.Span) (value.Value, error) {
	evaluated, err := c.evalArguments(args)
	if err != nil {
		return nil, err
	}

	if namespace != "" {
		mod, ok := c.Env.GetModule(namespace, "")
		if !ok {
			return nil, sasserr.NewRuntimeError(span, "undefined module %q", namespace)
		}
		if fn, ok := mod.Functions[name]; ok {
			return c.invokeFunction(fn, evaluated, span)
		}
		return nil, sasserr.NewRuntimeError(span, "undefined function %s.%s", namespace, name)
	}

	if fn, ok := c.Env.LookupFunction(name); ok {
		return c.invokeFunction(fn, evaluated, span)
	}
	if overloads, ok := c.Builtins.Lookup(name); ok {
		return c.invokeBuiltin(name, overloads, evaluated, span)
	}
	// Unknown functions pass through as a plain CSS function call, e.g.
	// `translateX(10px)`, per Sass's "unknown functions are emitted as-is"
	// compatibility rule.
	return value.NewString(renderPlainCall(name, evaluated), false), nil
}

func renderPlainCall(name string, args []callable.EvaluatedArg) string {
	out := name + "("
	for i, a := range args {
		if i > 0 {
			out += ", "
		}
		if a.Name != "" {
			out += "$" + a.Name + ": "
		}
		out += a.Value.String()
	}
	return out + ")"
}

func (c *Context) evalArguments(args []ast.Argument) ([]callable.EvaluatedArg, error) {
	ev := c.evaluator()
	out := make([]callable.EvaluatedArg, len(args))
	for i, a := range args {
		v, err := ev.Eval(a.Value)
		if err != nil {
			return nil, err
		}
		out[i] = callable.EvaluatedArg{Name: a.Name, Value: v, Spread: a.IsRest}
	}
	return out, nil
}

func (c *Context) invokeFunction(fn interface{}, args []callable.EvaluatedArg, span ast.Span) (value.Value, error) {
	uf, ok := fn.(*UserFunction)
	if !ok {
		return nil, sasserr.NewRuntimeError(span, "not a function")
	}
	bodyEnv := c.Env
	c.Env = uf.Closure
	c.Env.Push(false)
	bound, unbound, err := callable.Bind(uf.Decl.Parameters, args, func(e ast.Expression) (value.Value, error) {
		return c.evaluator().Eval(e)
	})
	if err == nil && len(unbound) > 0 {
		err = sasserr.NewRuntimeError(span, "no argument named $%s", strings.Join(unbound, ", $"))
	}
	if err != nil {
		c.Env.Pop()
		c.Env = bodyEnv
		return nil, sasserr.AsRuntime(err, span)
	}
	for _, name := range bound.Order {
		c.Env.SetVariable(name, bound.Values[name], false, false)
	}

	var ret *value.Value
	callErr := c.frame(sasserr.Frame{Description: "function `" + uf.Decl.Name + "`", Span: span}, func() error {
		r, err := c.ExecBody(uf.Decl.Body)
		ret = r
		return err
	})
	c.Env.Pop()
	c.Env = bodyEnv
	if callErr != nil {
		return nil, callErr
	}
	if ret == nil {
		return nil, sasserr.NewRuntimeError(span, "function `%s` finished without @return", uf.Decl.Name)
	}
	return *ret, nil
}

func (c *Context) invokeBuiltin(name string, overloads []*callable.Builtin, args []callable.EvaluatedArg, span ast.Span) (value.Value, error) {
	var lastErr error
	for _, ov := range overloads {
		params := paramsFromNames(ov.Params)
		bound, unbound, err := callable.Bind(params, args, func(ast.Expression) (value.Value, error) {
			return nil, sasserr.NewScriptError("builtin defaults are not expression-backed")
		})
		if err != nil || len(unbound) > 0 {
			lastErr = err
			continue
		}
		positional := make([]value.Value, len(bound.Order))
		for i, n := range bound.Order {
			positional[i] = bound.Values[n]
		}
		v, err := ov.Fn(positional, bound.Rest)
		if err != nil {
			return nil, sasserr.AsRuntime(sasserr.NewScriptError("%s(): %v", name, err), span)
		}
		return v, nil
	}
	if lastErr != nil {
		return nil, sasserr.AsRuntime(lastErr, span)
	}
	return nil, sasserr.NewRuntimeError(span, "no matching overload for %s()", name)
}

func paramsFromNames(names []string) []ast.Parameter {
	out := make([]ast.Parameter, len(names))
	for i, n := range names {
		rest := false
		if len(n) > 3 && n[len(n)-3:] == "..." {
			n = n[:len(n)-3]
			rest = true
		}
		out[i] = ast.Parameter{Name: trimDollar(n), IsRest: rest}
	}
	return out
}

func trimDollar(s string) string {
	if len(s) > 0 && s[0] == '$' {
		return s[1:]
	}
	return s
}
