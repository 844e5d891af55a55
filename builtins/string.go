package builtins

import (
	"fmt"
	"strings"

	"github.com/titpetric/sassgo/callable"
	"github.com/titpetric/sassgo/value"
)

// registerString ports the string helpers scattered across
// functions/types.go (Escape/quote/unquote/Length when applied to
// strings) into typed value.Str operations.
func registerString(reg *callable.Registry) {
	reg.Register(&callable.Builtin{Name: "quote", Params: []string{"$string"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
		s, err := str(args, 0)
		if err != nil {
			return nil, err
		}
		return value.NewString(s.Text, true), nil
	}})

	reg.Register(&callable.Builtin{Name: "unquote", Params: []string{"$string"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
		s, err := str(args, 0)
		if err != nil {
			return nil, err
		}
		return value.NewString(s.Text, false), nil
	}})

	reg.Register(&callable.Builtin{Name: "str-length", Params: []string{"$string"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
		s, err := str(args, 0)
		if err != nil {
			return nil, err
		}
		return value.NewNumber(float64(len([]rune(s.Text)))), nil
	}})

	reg.Register(&callable.Builtin{Name: "to-upper-case", Params: []string{"$string"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
		s, err := str(args, 0)
		if err != nil {
			return nil, err
		}
		return value.NewString(strings.ToUpper(s.Text), s.Quoted), nil
	}})

	reg.Register(&callable.Builtin{Name: "to-lower-case", Params: []string{"$string"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
		s, err := str(args, 0)
		if err != nil {
			return nil, err
		}
		return value.NewString(strings.ToLower(s.Text), s.Quoted), nil
	}})

	reg.Register(&callable.Builtin{Name: "str-slice", Params: []string{"$string", "$start-at", "$end-at"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
		s, err := str(args, 0)
		if err != nil {
			return nil, err
		}
		runes := []rune(s.Text)
		start, errS := number(args, 1)
		if errS != nil {
			return nil, errS
		}
		end := float64(len(runes))
		if len(args) > 2 {
			e, err := number(args, 2)
			if err != nil {
				return nil, err
			}
			end = e.Value
		}
		si := sliceIndex(start.Value, len(runes))
		ei := int(end)
		if ei < 0 {
			ei = len(runes) + ei + 1
		}
		if ei > len(runes) {
			ei = len(runes)
		}
		if si >= ei {
			return value.NewString("", s.Quoted), nil
		}
		return value.NewString(string(runes[si:ei]), s.Quoted), nil
	}})

	reg.Register(&callable.Builtin{Name: "str-index", Params: []string{"$string", "$substring"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
		s, err := str(args, 0)
		if err != nil {
			return nil, err
		}
		sub, err := str(args, 1)
		if err != nil {
			return nil, err
		}
		idx := strings.Index(s.Text, sub.Text)
		if idx < 0 {
			return value.Null{}, nil
		}
		return value.NewNumber(float64(len([]rune(s.Text[:idx])) + 1)), nil
	}})

	reg.Register(&callable.Builtin{Name: "str-insert", Params: []string{"$string", "$insert", "$index"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
		s, err := str(args, 0)
		if err != nil {
			return nil, err
		}
		ins, err := str(args, 1)
		if err != nil {
			return nil, err
		}
		idx, err := number(args, 2)
		if err != nil {
			return nil, err
		}
		runes := []rune(s.Text)
		at := sliceIndex(idx.Value, len(runes))
		out := string(runes[:at]) + ins.Text + string(runes[at:])
		return value.NewString(out, s.Quoted), nil
	}})
}

func str(args []value.Value, i int) (value.Str, error) {
	if i >= len(args) {
		return value.Str{}, fmt.Errorf("missing string argument")
	}
	if s, ok := args[i].(value.Str); ok {
		return s, nil
	}
	return value.Str{Text: args[i].String()}, nil
}

func sliceIndex(pos float64, length int) int {
	i := int(pos)
	if i < 0 {
		i = length + i
	} else if i > 0 {
		i--
	}
	if i < 0 {
		i = 0
	}
	if i > length {
		i = length
	}
	return i
}
