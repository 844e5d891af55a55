package builtins

import (
	"fmt"

	"github.com/titpetric/sassgo/callable"
	"github.com/titpetric/sassgo/value"
)

// registerList ports functions/types.go's Length/Extract/Range helpers,
// retyped onto value.List instead of comma-joined strings.
func registerList(reg *callable.Registry) {
	reg.Register(&callable.Builtin{Name: "length", Params: []string{"$list"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
		return value.NewNumber(float64(len(asList(args[0]).Elements))), nil
	}})

	reg.Register(&callable.Builtin{Name: "nth", Params: []string{"$list", "$n"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
		l := asList(args[0])
		n, err := number(args, 1)
		if err != nil {
			return nil, err
		}
		idx := sliceIndex(n.Value, len(l.Elements))
		if n.Value < 0 {
			idx = len(l.Elements) + int(n.Value)
		} else {
			idx = int(n.Value) - 1
		}
		if idx < 0 || idx >= len(l.Elements) {
			return nil, fmt.Errorf("list index %v out of bounds", n.Value)
		}
		return l.Elements[idx], nil
	}})

	reg.Register(&callable.Builtin{Name: "list-separator", Params: []string{"$list"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
		l := asList(args[0])
		sep := l.Separator
		if sep == "" {
			sep = "space"
		}
		return value.NewString(sep, false), nil
	}})

	reg.Register(&callable.Builtin{Name: "is-bracketed", Params: []string{"$list"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
		return value.Bool(asList(args[0]).Brackets), nil
	}})

	reg.Register(&callable.Builtin{Name: "join", Params: []string{"$list1", "$list2"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
		a := asList(args[0])
		b := asList(args[1])
		sep := a.Separator
		if sep == "" {
			sep = b.Separator
		}
		if sep == "" {
			sep = "space"
		}
		elems := append(append([]value.Value(nil), a.Elements...), b.Elements...)
		return value.NewList(elems, sep, a.Brackets), nil
	}})

	reg.Register(&callable.Builtin{Name: "append", Params: []string{"$list", "$val"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
		a := asList(args[0])
		sep := a.Separator
		if sep == "" {
			sep = "space"
		}
		elems := append(append([]value.Value(nil), a.Elements...), args[1])
		return value.NewList(elems, sep, a.Brackets), nil
	}})

	reg.Register(&callable.Builtin{Name: "index", Params: []string{"$list", "$value"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
		l := asList(args[0])
		for i, e := range l.Elements {
			if e.Equal(args[1]) {
				return value.NewNumber(float64(i + 1)), nil
			}
		}
		return value.Null{}, nil
	}})

	reg.Register(&callable.Builtin{Name: "zip", Params: []string{"$lists..."}, Fn: func(args []value.Value, rest *value.ArgumentList) (value.Value, error) {
		var lists []value.List
		for _, a := range args {
			lists = append(lists, asList(a))
		}
		if rest != nil {
			for _, a := range rest.Elements {
				lists = append(lists, asList(a))
			}
		}
		if len(lists) == 0 {
			return value.NewList(nil, "comma", false), nil
		}
		shortest := len(lists[0].Elements)
		for _, l := range lists[1:] {
			if len(l.Elements) < shortest {
				shortest = len(l.Elements)
			}
		}
		out := make([]value.Value, shortest)
		for i := 0; i < shortest; i++ {
			row := make([]value.Value, len(lists))
			for j, l := range lists {
				row[j] = l.Elements[i]
			}
			out[i] = value.NewList(row, "space", false)
		}
		return value.NewList(out, "comma", false), nil
	}})
}

func asList(v value.Value) value.List {
	switch t := v.(type) {
	case value.List:
		return t
	case *value.ArgumentList:
		return t.List
	default:
		return value.NewList([]value.Value{v}, "", false)
	}
}
