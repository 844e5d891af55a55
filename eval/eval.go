// Package eval implements Sass expression evaluation: the operator
// semantics of BinaryExpr/UnaryExpr, interpolation resolution in both
// value and selector/query contexts, list/map construction, and the
// restricted calc() sub-language. It generalizes the arithmetic half of
// the teacher's renderer.go (renderBinaryOp/evaluateBinaryOp/
// parseNumberWithUnit) from string-in-string-out to typed
// ast.Expression-in-value.Value-out evaluation, and replaces
// resolveInterpolation's regexp splice with a real recursive evaluator.
package eval

import (
	"fmt"
	"strings"

	"github.com/titpetric/sassgo/ast"
	"github.com/titpetric/sassgo/env"
	"github.com/titpetric/sassgo/logger"
	"github.com/titpetric/sassgo/sasserr"
	"github.com/titpetric/sassgo/value"
)

// Caller abstracts "invoke a function by name with these argument
// expressions" so this package does not need to depend on the exec/callable
// packages (which themselves need to evaluate expressions and would
// otherwise create an import cycle). exec.Context implements Caller.
type Caller interface {
	CallFunction(namespace, name string, args []ast.Argument, span ast.Span) (value.Value, error)
}

// Evaluator evaluates expressions against a live environment. One is
// constructed per executor Context; Calc enables the restricted calc()
// dialect where incompatible-unit arithmetic defers into a
// value.Calculation instead of erroring and the /-division deprecation
// warning is suppressed.
type Evaluator struct {
	Env    *env.Environment
	Log    logger.Logger
	Caller Caller
	Calc   bool
}

// New returns an Evaluator over env/log/caller in normal (non-calc) mode.
func New(e *env.Environment, log logger.Logger, caller Caller) *Evaluator {
	if log == nil {
		log = logger.Discard
	}
	return &Evaluator{Env: e, Log: log, Caller: caller}
}

// InCalc returns a copy of the evaluator with Calc set, used when
// descending into a CalculationExpr's arguments.
func (ev *Evaluator) InCalc() *Evaluator {
	cp := *ev
	cp.Calc = true
	return &cp
}

// Eval dispatches on the concrete Expression type, mirroring the teacher's
// renderValue/evaluateFunction type-switch but returning typed values
// instead of formatted strings.
func (ev *Evaluator) Eval(expr ast.Expression) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.NumberLiteral:
		return value.NewNumberUnit(e.Value, e.Unit), nil
	case *ast.ColorLiteral:
		return value.Color{R: e.R, G: e.G, B: e.B, A: e.A, Original: e.Original}, nil
	case *ast.BoolLiteral:
		return value.Bool(e.Value), nil
	case *ast.NullLiteral:
		return value.Null{}, nil
	case *ast.StringExpr:
		return ev.evalString(e)
	case *ast.ListExpr:
		return ev.evalList(e)
	case *ast.MapExpr:
		return ev.evalMap(e)
	case *ast.VariableExpr:
		return ev.evalVariable(e)
	case *ast.BinaryExpr:
		return ev.evalBinary(e)
	case *ast.UnaryExpr:
		return ev.evalUnary(e)
	case *ast.ParenExpr:
		return ev.Eval(e.Inner)
	case *ast.IfExpr:
		return ev.evalIf(e)
	case *ast.FunctionCallExpr:
		return ev.evalFunctionCall(e)
	case *ast.CallExpr:
		return ev.evalCall(e)
	case *ast.CalculationExpr:
		return ev.evalCalculation(e)
	case *ast.InterpolatedExpr:
		return ev.Eval(e.Inner)
	case *ast.SelectorExpr:
		return nil, sasserr.NewRuntimeError(e.Span(), "top-level selectors can't be used in this context")
	case *ast.SupportsExpr:
		return value.NewString(renderSupports(e.Condition), false), nil
	}
	return nil, sasserr.NewRuntimeError(expr.Span(), "unsupported expression %T", expr)
}

func (ev *Evaluator) evalVariable(e *ast.VariableExpr) (value.Value, error) {
	if e.Namespace != "" {
		mod, ok := ev.Env.GetModule(e.Namespace, "")
		if ok {
			if v, ok := mod.Variables[e.Name]; ok {
				return v, nil
			}
		}
		return nil, sasserr.NewRuntimeError(e.Span(), "undefined variable $%s.%s", e.Namespace, e.Name)
	}
	if v, ok := ev.Env.LookupVariable(e.Name); ok {
		return v, nil
	}
	return nil, sasserr.NewRuntimeError(e.Span(), "undefined variable $%s", e.Name)
}

// evalString resolves embedded #{} interpolation by evaluating each
// embedded expression in value mode and concatenating its unquoted string
// form with the literal runs, the typed replacement for
// resolveInterpolation's regexp substitution.
func (ev *Evaluator) evalString(e *ast.StringExpr) (value.Value, error) {
	if len(e.Parts) == 1 && e.Parts[0].Expr == nil {
		return value.NewString(e.Parts[0].Literal, e.Quoted), nil
	}
	var b strings.Builder
	for _, part := range e.Parts {
		if part.Expr == nil {
			b.WriteString(part.Literal)
			continue
		}
		v, err := ev.Eval(part.Expr)
		if err != nil {
			return nil, err
		}
		if s, ok := v.(value.Str); ok {
			b.WriteString(s.Text)
			continue
		}
		b.WriteString(v.String())
	}
	return value.NewString(b.String(), e.Quoted), nil
}

func (ev *Evaluator) evalList(e *ast.ListExpr) (value.Value, error) {
	elems := make([]value.Value, len(e.Elements))
	for i, el := range e.Elements {
		v, err := ev.Eval(el)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	sep := e.Separator
	if sep == "undecided" || sep == "" {
		if len(elems) > 1 {
			sep = "space"
		}
	}
	return value.NewList(elems, sep, e.Brackets), nil
}

func (ev *Evaluator) evalMap(e *ast.MapExpr) (value.Value, error) {
	m := value.NewMap()
	for _, entry := range e.Entries {
		k, err := ev.Eval(entry.Key)
		if err != nil {
			return nil, err
		}
		v, err := ev.Eval(entry.Value)
		if err != nil {
			return nil, err
		}
		if _, exists := m.Get(k); exists {
			return nil, sasserr.NewRuntimeError(e.Span(), "duplicate key %s in map", k.String())
		}
		m.Set(k, v)
	}
	return m, nil
}

func (ev *Evaluator) evalIf(e *ast.IfExpr) (value.Value, error) {
	cond, err := ev.Eval(e.Condition)
	if err != nil {
		return nil, err
	}
	if cond.Truthy() {
		return ev.Eval(e.Then)
	}
	return ev.Eval(e.Else)
}

func (ev *Evaluator) evalFunctionCall(e *ast.FunctionCallExpr) (value.Value, error) {
	if ev.Caller == nil {
		return nil, sasserr.NewRuntimeError(e.Span(), "no function call context available")
	}
	return ev.Caller.CallFunction(e.Namespace, e.Name, e.Arguments, e.Span())
}

// evalCall implements the `call($function, $args...)` dynamic-dispatch
// macro: evaluate the callee to a value.Function, then reuse the normal
// named-call path with its resolved name.
func (ev *Evaluator) evalCall(e *ast.CallExpr) (value.Value, error) {
	callee, err := ev.Eval(e.Callee)
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(value.Function)
	if !ok {
		return nil, sasserr.NewRuntimeError(e.Span(), "call() expects a function, got %s", callee.TypeName())
	}
	return ev.Caller.CallFunction("", fn.Name, e.Arguments, e.Span())
}

func (ev *Evaluator) evalCalculation(e *ast.CalculationExpr) (value.Value, error) {
	inner := ev.InCalc()
	args := make([]value.Value, len(e.Arguments))
	for i, a := range e.Arguments {
		v, err := inner.Eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return value.NewCalculation(e.Name, args), nil
}

func renderSupports(cond ast.SupportsCondition) string {
	switch c := cond.(type) {
	case *ast.SupportsDeclaration:
		return fmt.Sprintf("(%s: %s)", exprSource(c.Property), exprSource(c.Value))
	case *ast.SupportsNegation:
		return "not " + renderSupports(c.Condition)
	case *ast.SupportsOperation:
		parts := make([]string, len(c.Operands))
		for i, o := range c.Operands {
			parts[i] = renderSupports(o)
		}
		return strings.Join(parts, " "+c.Operator+" ")
	case *ast.SupportsInterpolation:
		return exprSource(c.Expr)
	}
	return ""
}

func exprSource(e ast.Expression) string {
	if se, ok := e.(*ast.StringExpr); ok && len(se.Parts) == 1 {
		return se.Parts[0].Literal
	}
	return ""
}
