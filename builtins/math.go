package builtins

import (
	"fmt"
	"math"

	"github.com/titpetric/sassgo/callable"
	"github.com/titpetric/sassgo/value"
)

// registerMath ports the numeric half of renderer.go's evaluateFunction
// switch (round/ceil/floor/abs/min/max/percentage...) plus the
// trig helpers functions/math.go added on top, each retyped to operate on
// value.Number instead of formatted strings.
func registerMath(reg *callable.Registry) {
	unary := func(name string, f func(float64) float64) {
		reg.Register(&callable.Builtin{Name: name, Params: []string{"$number"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
			n, err := number(args, 0)
			if err != nil {
				return nil, err
			}
			n.Value = f(n.Value)
			return n, nil
		}})
	}
	unary("round", math.Round)
	unary("ceil", math.Ceil)
	unary("floor", math.Floor)
	unary("abs", math.Abs)
	unary("sqrt", math.Sqrt)
	unary("sin", func(v float64) float64 { return math.Sin(v * math.Pi / 180) })
	unary("cos", func(v float64) float64 { return math.Cos(v * math.Pi / 180) })
	unary("tan", func(v float64) float64 { return math.Tan(v * math.Pi / 180) })

	reg.Register(&callable.Builtin{Name: "percentage", Params: []string{"$number"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
		n, err := number(args, 0)
		if err != nil {
			return nil, err
		}
		return value.NewNumberUnit(n.Value*100, "%"), nil
	}})

	variadicMinMax := func(name string, pick func(a, b float64) bool) {
		reg.Register(&callable.Builtin{Name: name, Params: []string{"$numbers..."}, Fn: func(args []value.Value, rest *value.ArgumentList) (value.Value, error) {
			nums := collectNumbers(args, rest)
			if len(nums) == 0 {
				return nil, fmt.Errorf("%s() requires at least one argument", name)
			}
			best := nums[0]
			for _, n := range nums[1:] {
				if pick(n.Value, best.Value) {
					best = n
				}
			}
			return best, nil
		}})
	}
	variadicMinMax("min", func(a, b float64) bool { return a < b })
	variadicMinMax("max", func(a, b float64) bool { return a > b })

	reg.Register(&callable.Builtin{Name: "unit", Params: []string{"$number"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
		n, err := number(args, 0)
		if err != nil {
			return nil, err
		}
		return value.NewString(n.Unit(), true), nil
	}})

	reg.Register(&callable.Builtin{Name: "unitless", Params: []string{"$number"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
		n, err := number(args, 0)
		if err != nil {
			return nil, err
		}
		return value.Bool(!n.HasUnits()), nil
	}})

	reg.Register(&callable.Builtin{Name: "comparable", Params: []string{"$number1", "$number2"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
		a, err := number(args, 0)
		if err != nil {
			return nil, err
		}
		b, err := number(args, 1)
		if err != nil {
			return nil, err
		}
		_, ok := a.Compare(b)
		return value.Bool(ok), nil
	}})
}

func number(args []value.Value, i int) (value.Number, error) {
	if i >= len(args) {
		return value.Number{}, fmt.Errorf("missing numeric argument")
	}
	n, ok := args[i].(value.Number)
	if !ok {
		return value.Number{}, fmt.Errorf("%s is not a number", args[i].TypeName())
	}
	return n, nil
}

func collectNumbers(args []value.Value, rest *value.ArgumentList) []value.Number {
	var out []value.Number
	for _, a := range args {
		if n, ok := a.(value.Number); ok {
			out = append(out, n)
		}
	}
	if rest != nil {
		for _, a := range rest.Elements {
			if n, ok := a.(value.Number); ok {
				out = append(out, n)
			}
		}
	}
	return out
}
