package builtins

import (
	"fmt"

	"github.com/titpetric/sassgo/callable"
	"github.com/titpetric/sassgo/value"
)

// registerMap implements map-get/map-merge/map-keys/map-values/map-remove
// and map-has-key. The teacher has no map type at all (LESS has no map
// literal); these are grounded instead on the general key/value lookup
// shape of parser.Stack.Lookup, generalized from string keys to value.Value
// keys compared by Equal.
func registerMap(reg *callable.Registry) {
	reg.Register(&callable.Builtin{Name: "map-get", Params: []string{"$map", "$key"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
		m, err := asMap(args[0])
		if err != nil {
			return nil, err
		}
		if v, ok := m.Get(args[1]); ok {
			return v, nil
		}
		return value.Null{}, nil
	}})

	reg.Register(&callable.Builtin{Name: "map-has-key", Params: []string{"$map", "$key"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
		m, err := asMap(args[0])
		if err != nil {
			return nil, err
		}
		_, ok := m.Get(args[1])
		return value.Bool(ok), nil
	}})

	reg.Register(&callable.Builtin{Name: "map-keys", Params: []string{"$map"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
		m, err := asMap(args[0])
		if err != nil {
			return nil, err
		}
		keys := make([]value.Value, len(m.Entries))
		for i, e := range m.Entries {
			keys[i] = e.Key
		}
		return value.NewList(keys, "comma", false), nil
	}})

	reg.Register(&callable.Builtin{Name: "map-values", Params: []string{"$map"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
		m, err := asMap(args[0])
		if err != nil {
			return nil, err
		}
		vals := make([]value.Value, len(m.Entries))
		for i, e := range m.Entries {
			vals[i] = e.Value
		}
		return value.NewList(vals, "comma", false), nil
	}})

	reg.Register(&callable.Builtin{Name: "map-merge", Params: []string{"$map1", "$map2"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
		a, err := asMap(args[0])
		if err != nil {
			return nil, err
		}
		b, err := asMap(args[1])
		if err != nil {
			return nil, err
		}
		out := value.NewMap()
		for _, e := range a.Entries {
			out.Set(e.Key, e.Value)
		}
		for _, e := range b.Entries {
			out.Set(e.Key, e.Value)
		}
		return out, nil
	}})

	reg.Register(&callable.Builtin{Name: "map-remove", Params: []string{"$map", "$keys..."}, Fn: func(args []value.Value, rest *value.ArgumentList) (value.Value, error) {
		m, err := asMap(args[0])
		if err != nil {
			return nil, err
		}
		remove := append([]value.Value(nil), args[1:]...)
		if rest != nil {
			remove = append(remove, rest.Elements...)
		}
		out := value.NewMap()
		for _, e := range m.Entries {
			skip := false
			for _, k := range remove {
				if e.Key.Equal(k) {
					skip = true
					break
				}
			}
			if !skip {
				out.Set(e.Key, e.Value)
			}
		}
		return out, nil
	}})
}

func asMap(v value.Value) (*value.Map, error) {
	m, ok := v.(*value.Map)
	if !ok {
		return nil, fmt.Errorf("%s is not a map", v.TypeName())
	}
	return m, nil
}
