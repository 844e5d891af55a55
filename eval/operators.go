package eval

import (
	"github.com/titpetric/sassgo/ast"
	"github.com/titpetric/sassgo/sasserr"
	"github.com/titpetric/sassgo/value"
)

// evalBinary implements the teacher's renderer.go evaluateBinaryOp switch,
// generalized from float64-on-strings to value.Value operands: arithmetic
// delegates to each value's own Arith, equality/comparison/boolean
// operators are handled here since they apply across every value kind
// rather than being number-specific.
func (ev *Evaluator) evalBinary(e *ast.BinaryExpr) (value.Value, error) {
	switch e.Operator {
	case "and":
		l, err := ev.Eval(e.Left)
		if err != nil {
			return nil, err
		}
		if !l.Truthy() {
			return l, nil
		}
		return ev.Eval(e.Right)
	case "or":
		l, err := ev.Eval(e.Left)
		if err != nil {
			return nil, err
		}
		if l.Truthy() {
			return l, nil
		}
		return ev.Eval(e.Right)
	}

	left, err := ev.Eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := ev.Eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator {
	case "==":
		return value.Bool(valuesEqual(left, right)), nil
	case "!=":
		return value.Bool(!valuesEqual(left, right)), nil
	case "=":
		// Single-equals is list-context string concatenation shorthand used
		// inside selectors/media queries (e.g. `prop#{$x}=val`); outside that
		// context it behaves like string equality in old Sass but modern
		// Sass only emits it from the parser for attribute-selector text, so
		// here it joins the operands' String() forms (a quoted string keeps
		// its quotes) into one unquoted string.
		return value.NewString(left.String()+"="+right.String(), false), nil
	case "<", "<=", ">", ">=":
		return compareOp(e.Operator, left, right, e.Span())
	case "+", "-", "*", "/", "%":
		if e.Operator == "/" && !ev.Calc {
			ev.Log.Warn("Using / for division is deprecated; use math.div() instead", e.Span())
		}
		if e.Operator == "+" || e.Operator == "-" {
			if ls, ok := left.(value.Str); ok {
				return value.NewString(ls.String()+opText(e.Operator)+right.String(), ls.Quoted), nil
			}
			if _, ok := left.(value.Number); !ok {
				if e.Operator == "+" {
					return value.NewString(left.String()+right.String(), false), nil
				}
			}
		}
		arith, ok := left.(interface {
			Arith(op string, other value.Value, calc bool) (value.Value, error)
		})
		if !ok {
			return nil, sasserr.NewRuntimeError(e.Span(), "%s isn't a number or color", left.TypeName())
		}
		return arith.Arith(e.Operator, right, ev.Calc)
	}
	return nil, sasserr.NewRuntimeError(e.Span(), "unsupported operator %q", e.Operator)
}

func opText(op string) string {
	if op == "-" {
		return "-"
	}
	return ""
}

func valuesEqual(a, b value.Value) bool {
	return a.Equal(b)
}

func compareOp(op string, left, right value.Value, span ast.Span) (value.Value, error) {
	ln, ok1 := left.(value.Number)
	rn, ok2 := right.(value.Number)
	if !ok1 || !ok2 {
		return nil, sasserr.NewRuntimeError(span, "%s and %s can't be compared", left.TypeName(), right.TypeName())
	}
	cmp, ok := ln.Compare(rn)
	if !ok {
		return nil, sasserr.NewRuntimeError(span, "can't compare numbers with incompatible units")
	}
	switch op {
	case "<":
		return value.Bool(cmp < 0), nil
	case "<=":
		return value.Bool(cmp <= 0), nil
	case ">":
		return value.Bool(cmp > 0), nil
	case ">=":
		return value.Bool(cmp >= 0), nil
	}
	return nil, sasserr.NewRuntimeError(span, "unsupported comparison operator %q", op)
}

// evalUnary implements unary +, -, /, and `not`.
func (ev *Evaluator) evalUnary(e *ast.UnaryExpr) (value.Value, error) {
	v, err := ev.Eval(e.Operand)
	if err != nil {
		return nil, err
	}
	switch e.Operator {
	case "not":
		return value.Bool(!v.Truthy()), nil
	case "-":
		if n, ok := v.(value.Number); ok {
			n.Value = -n.Value
			return n, nil
		}
		return value.NewString("-"+v.String(), false), nil
	case "+":
		if _, ok := v.(value.Number); ok {
			return v, nil
		}
		return value.NewString("+"+v.String(), false), nil
	case "/":
		return value.NewString("/"+v.String(), false), nil
	}
	return nil, sasserr.NewRuntimeError(e.Span(), "unsupported unary operator %q", e.Operator)
}
