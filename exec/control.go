package exec

import (
	"github.com/titpetric/sassgo/ast"
	"github.com/titpetric/sassgo/sasserr"
	"github.com/titpetric/sassgo/value"
)

// execIfRule evaluates each clause's condition in order, executing the
// first true (or bare trailing else) clause's body in a semi-global scope
// — variables assigned inside without !global propagate to the nearest
// outer declaration, matching Sass's "control flow doesn't scope
// variables" rule, generalizing renderer.go's evaluateGuard loop from a
// single mixin-guard check into the full @if/@else if/@else chain.
func (c *Context) execIfRule(s *ast.IfRule) (*value.Value, error) {
	for _, clause := range s.Clauses {
		if clause.Condition != nil {
			cond, err := c.evaluator().Eval(clause.Condition)
			if err != nil {
				return nil, err
			}
			if !cond.Truthy() {
				continue
			}
		}
		c.Env.Push(true)
		ret, err := c.ExecBody(clause.Body)
		c.Env.Pop()
		return ret, err
	}
	return nil, nil
}

// execEachRule destructures each element of List against the declared
// loop variables (a 1-tuple binds them all to the element itself; a list
// element with >= len(Variables) items destructures positionally) and
// executes Body once per element, generalizing renderEachLoop/
// evaluateIterable from string-joined iteration to typed value iteration.
func (c *Context) execEachRule(s *ast.EachRule) (*value.Value, error) {
	listVal, err := c.evaluator().Eval(s.List)
	if err != nil {
		return nil, err
	}
	items := iterableElements(listVal)
	for _, item := range items {
		c.Env.Push(true)
		bindEachVars(c.Env, s.Variables, item)
		ret, err := c.ExecBody(s.Body)
		c.Env.Pop()
		if err != nil {
			return nil, err
		}
		if ret != nil {
			return ret, nil
		}
	}
	return nil, nil
}

func iterableElements(v value.Value) []value.Value {
	switch t := v.(type) {
	case value.List:
		return t.Elements
	case *value.ArgumentList:
		return t.Elements
	case *value.Map:
		out := make([]value.Value, len(t.Entries))
		for i, e := range t.Entries {
			out[i] = value.NewList([]value.Value{e.Key, e.Value}, "space", false)
		}
		return out
	default:
		return []value.Value{v}
	}
}

func bindEachVars(e interface {
	SetVariable(name string, v value.Value, global, isDefault bool)
}, names []string, item value.Value) {
	if len(names) == 1 {
		e.SetVariable(names[0], item, false, false)
		return
	}
	elems := iterableElements(item)
	for i, name := range names {
		if i < len(elems) {
			e.SetVariable(name, elems[i], false, false)
		} else {
			e.SetVariable(name, value.Null{}, false, false)
		}
	}
}

// execForRule iterates Variable from From to To inclusive ("through") or
// exclusive ("to"), counting down automatically when To < From, the
// generalization of evaluateRange's float64 loop onto value.Number. The
// bounds' raw magnitudes are compared (To is not converted to From's unit),
// and the loop variable carries From's unit.
func (c *Context) execForRule(s *ast.ForRule) (*value.Value, error) {
	fromV, err := c.evaluator().Eval(s.From)
	if err != nil {
		return nil, err
	}
	toV, err := c.evaluator().Eval(s.To)
	if err != nil {
		return nil, err
	}
	from, ok := fromV.(value.Number)
	if !ok {
		return nil, sasserr.NewRuntimeError(s.Span(), "@for from value must be a number")
	}
	to, ok := toV.(value.Number)
	if !ok {
		return nil, sasserr.NewRuntimeError(s.Span(), "@for to value must be a number")
	}

	step := 1.0
	if to.Value < from.Value {
		step = -1.0
	}
	for i := from.Value; stepCond(i, to.Value, step, s.Exclusive); i += step {
		c.Env.Push(true)
		c.Env.SetVariable(s.Variable, value.NewNumberUnit(i, from.Unit()), false, false)
		ret, err := c.ExecBody(s.Body)
		c.Env.Pop()
		if err != nil {
			return nil, err
		}
		if ret != nil {
			return ret, nil
		}
	}
	return nil, nil
}

func stepCond(i, to, step float64, exclusive bool) bool {
	if step > 0 {
		if exclusive {
			return i < to
		}
		return i <= to
	}
	if exclusive {
		return i > to
	}
	return i >= to
}

// execWhileRule loops while Condition is truthy, in a fresh semi-global
// scope each iteration so loop-local variable assignment doesn't leak
// across iterations while still propagating outward per the usual
// semi-global rule.
func (c *Context) execWhileRule(s *ast.WhileRule) (*value.Value, error) {
	for {
		cond, err := c.evaluator().Eval(s.Condition)
		if err != nil {
			return nil, err
		}
		if !cond.Truthy() {
			return nil, nil
		}
		c.Env.Push(true)
		ret, err := c.ExecBody(s.Body)
		c.Env.Pop()
		if err != nil {
			return nil, err
		}
		if ret != nil {
			return ret, nil
		}
	}
}
