// Package callable implements argument binding for mixins and functions:
// matching an already-evaluated list of positional and named arguments
// against a declared parameter list, splatting rest arguments, and
// dispatching built-in overloads by arity plus named-key set. It
// generalizes the teacher's bindMixinArguments/renderMixinCall
// (github.com/titpetric/lessgo's renderer/renderer.go) from a fixed
// positional-only binding into the full positional/named/rest/kwrest
// splatting the spec's callable-invocation section requires, and
// generalizes functions.FuncMap/evaluateFunction's flat name->closure map
// into an overload-aware Builtins registry.
package callable

import (
	"fmt"

	"github.com/titpetric/sassgo/ast"
	"github.com/titpetric/sassgo/value"
)

// EvaluatedArg is one already-evaluated actual argument: Name is empty for
// a positional argument, set for `$name: value`, and Value is the splat
// source (a List/Map/ArgumentList) when Spread is true.
type EvaluatedArg struct {
	Name   string
	Value  value.Value
	Spread bool
}

// Bound is the result of binding actual arguments against a parameter
// list: one value.Value per declared parameter (defaults filled in), plus
// the overflow collected into a rest parameter's ArgumentList, if any.
type Bound struct {
	Values map[string]value.Value
	Order  []string // declared parameter names in order, for positional re-binding
	Rest   *value.ArgumentList
}

// Bind matches args against params, generalizing bindMixinArguments: each
// positional argument fills the next unfilled parameter in order; named
// arguments fill by name; any parameter left unfilled takes its declared
// default (evaluated lazily by evalDefault, since defaults may reference
// earlier parameters); a trailing IsRest parameter collects every
// remaining positional and named argument into a value.ArgumentList.
// Unbound named arguments with no matching parameter and no rest parameter
// is reported by the caller as a runtime error (Bind just reports which
// names were leftover via the returned slice).
func Bind(params []ast.Parameter, args []EvaluatedArg, evalDefault func(ast.Expression) (value.Value, error)) (*Bound, []string, error) {
	bound := &Bound{Values: make(map[string]value.Value, len(params))}
	filled := make(map[string]bool, len(params))

	var restParam *ast.Parameter
	declared := params
	if n := len(params); n > 0 && params[n-1].IsRest {
		restParam = &params[n-1]
		declared = params[:n-1]
	}
	for _, p := range declared {
		bound.Order = append(bound.Order, p.Name)
	}

	var restPositional []value.Value
	restNamed := make(map[string]value.Value)
	var restOrder []string
	var unmatched []string

	posIdx := 0
	nextUnfilled := func() (string, bool) {
		for posIdx < len(declared) {
			name := declared[posIdx].Name
			posIdx++
			if !filled[name] {
				return name, true
			}
		}
		return "", false
	}

	for _, a := range args {
		if a.Spread {
			items, kw, order := expandSpread(a.Value)
			for _, v := range items {
				if name, ok := nextUnfilled(); ok {
					bound.Values[name] = v
					filled[name] = true
				} else if restParam != nil {
					restPositional = append(restPositional, v)
				}
			}
			for _, name := range order {
				v := kw[name]
				if !matchParam(declared, name) {
					if restParam != nil {
						restNamed[name] = v
						restOrder = append(restOrder, name)
					} else {
						unmatched = append(unmatched, name)
					}
					continue
				}
				bound.Values[name] = v
				filled[name] = true
			}
			continue
		}
		if a.Name == "" {
			if name, ok := nextUnfilled(); ok {
				bound.Values[name] = a.Value
				filled[name] = true
			} else if restParam != nil {
				restPositional = append(restPositional, a.Value)
			} else {
				return nil, nil, fmt.Errorf("too many positional arguments")
			}
			continue
		}
		if !matchParam(declared, a.Name) {
			if restParam != nil {
				restNamed[a.Name] = a.Value
				restOrder = append(restOrder, a.Name)
				continue
			}
			unmatched = append(unmatched, a.Name)
			continue
		}
		bound.Values[a.Name] = a.Value
		filled[a.Name] = true
	}
	if len(unmatched) > 0 {
		return nil, unmatched, nil
	}

	for _, p := range declared {
		if filled[p.Name] {
			continue
		}
		if p.Default == nil {
			return nil, nil, fmt.Errorf("missing argument $%s", p.Name)
		}
		v, err := evalDefault(p.Default)
		if err != nil {
			return nil, nil, err
		}
		bound.Values[p.Name] = v
	}

	if restParam != nil {
		bound.Rest = value.NewArgumentList(restPositional, "comma", restNamed, restOrder)
		bound.Values[restParam.Name] = bound.Rest
		bound.Order = append(bound.Order, restParam.Name)
	}

	return bound, nil, nil
}

func matchParam(params []ast.Parameter, name string) bool {
	for _, p := range params {
		if p.Name == name {
			return true
		}
	}
	return false
}

// expandSpread splats a List/Map/ArgumentList rest argument (`...`) into
// its positional values plus, for an ArgumentList, its keyword values in
// original order.
func expandSpread(v value.Value) (positional []value.Value, keywords map[string]value.Value, order []string) {
	keywords = make(map[string]value.Value)
	switch sv := v.(type) {
	case *value.ArgumentList:
		sv.MarkKeywordsAccessed()
		return append([]value.Value(nil), sv.Elements...), sv.Keywords, sv.KeywordOrder
	case value.List:
		return append([]value.Value(nil), sv.Elements...), keywords, nil
	case *value.Map:
		for _, e := range sv.Entries {
			if s, ok := e.Key.(value.Str); ok {
				keywords[s.Text] = e.Value
				order = append(order, s.Text)
			}
		}
		return nil, keywords, order
	default:
		return []value.Value{v}, keywords, nil
	}
}
