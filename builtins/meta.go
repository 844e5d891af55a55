package builtins

import (
	"github.com/titpetric/sassgo/callable"
	"github.com/titpetric/sassgo/value"
)

// registerMeta ports the type-introspection builtins from renderer.go's
// isTypeCheckingFunction/evaluateTypeCheckingFunction (isnumber/isstring/
// iscolor/...), collapsed into one type-of() plus the boolean predicates
// Sass actually exposes.
func registerMeta(reg *callable.Registry) {
	reg.Register(&callable.Builtin{Name: "type-of", Params: []string{"$value"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
		return value.NewString(args[0].TypeName(), false), nil
	}})

	reg.Register(&callable.Builtin{Name: "inspect", Params: []string{"$value"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
		return value.NewString(args[0].String(), false), nil
	}})

	reg.Register(&callable.Builtin{Name: "keywords", Params: []string{"$args"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
		al, ok := args[0].(*value.ArgumentList)
		if !ok {
			return value.NewMap(), nil
		}
		al.MarkKeywordsAccessed()
		m := value.NewMap()
		for _, name := range al.KeywordOrder {
			m.Set(value.NewString(name, true), al.Keywords[name])
		}
		return m, nil
	}})

	reg.Register(&callable.Builtin{Name: "if", Params: []string{"$condition", "$if-true", "$if-false"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
		if args[0].Truthy() {
			return args[1], nil
		}
		return args[2], nil
	}})
}
