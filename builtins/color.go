package builtins

import (
	"fmt"
	"math"

	"github.com/titpetric/sassgo/callable"
	"github.com/titpetric/sassgo/value"
)

// registerColor ports the color-manipulation functions from the teacher's
// functions/colors.go table and expression/color.go's HSL conversion
// (lighten/darken/mix/adjust-hue/saturate/desaturate/rgba/red/green/blue/
// alpha), retyped onto value.Color.
func registerColor(reg *callable.Registry) {
	reg.Register(&callable.Builtin{Name: "rgba", Params: []string{"$color", "$alpha"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
		switch len(args) {
		case 2:
			c, err := color(args, 0)
			if err != nil {
				return nil, err
			}
			a, err := number(args, 1)
			if err != nil {
				return nil, err
			}
			c.A = a.Value
			c.Original = ""
			return c, nil
		case 4:
			return value.Color{
				R: channelByte(args[0]), G: channelByte(args[1]), B: channelByte(args[2]),
				A: mustFloat(args[3]),
			}, nil
		}
		return nil, fmt.Errorf("rgba() expects 2 or 4 arguments")
	}})

	reg.Register(&callable.Builtin{Name: "rgb", Params: []string{"$red", "$green", "$blue"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
		if len(args) != 3 {
			return nil, fmt.Errorf("rgb() expects 3 arguments")
		}
		return value.Color{R: channelByte(args[0]), G: channelByte(args[1]), B: channelByte(args[2]), A: 1}, nil
	}})

	channelGetter := func(name string, pick func(value.Color) uint8) {
		reg.Register(&callable.Builtin{Name: name, Params: []string{"$color"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
			c, err := color(args, 0)
			if err != nil {
				return nil, err
			}
			return value.NewNumber(float64(pick(c))), nil
		}})
	}
	channelGetter("red", func(c value.Color) uint8 { return c.R })
	channelGetter("green", func(c value.Color) uint8 { return c.G })
	channelGetter("blue", func(c value.Color) uint8 { return c.B })

	reg.Register(&callable.Builtin{Name: "alpha", Params: []string{"$color"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
		c, err := color(args, 0)
		if err != nil {
			return nil, err
		}
		return value.NewNumber(c.A), nil
	}})

	hslGetter := func(name string, idx int) {
		reg.Register(&callable.Builtin{Name: name, Params: []string{"$color"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
			c, err := color(args, 0)
			if err != nil {
				return nil, err
			}
			h, s, l := c.HSL()
			switch idx {
			case 0:
				return value.NewNumberUnit(h, "deg"), nil
			case 1:
				return value.NewNumberUnit(s*100, "%"), nil
			default:
				return value.NewNumberUnit(l*100, "%"), nil
			}
		}})
	}
	hslGetter("hue", 0)
	hslGetter("saturation", 1)
	hslGetter("lightness", 2)

	adjustHSL := func(name string, dh, ds, dl func(current, delta float64) float64) {
		reg.Register(&callable.Builtin{Name: name, Params: []string{"$color", "$amount"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
			c, err := color(args, 0)
			if err != nil {
				return nil, err
			}
			n, err := number(args, 1)
			if err != nil {
				return nil, err
			}
			h, s, l := c.HSL()
			h = dh(h, n.Value)
			s = clamp01(ds(s, n.Value))
			l = clamp01(dl(l, n.Value))
			out := value.FromHSL(h, s, l, c.A)
			return out, nil
		}})
	}
	identity := func(current, delta float64) float64 { return current }
	adjustHSL("lighten", identity, identity, func(l, delta float64) float64 { return l + delta/100 })
	adjustHSL("darken", identity, identity, func(l, delta float64) float64 { return l - delta/100 })
	adjustHSL("saturate", identity, func(s, delta float64) float64 { return s + delta/100 }, identity)
	adjustHSL("desaturate", identity, func(s, delta float64) float64 { return s - delta/100 }, identity)
	adjustHSL("adjust-hue", func(h, delta float64) float64 { return h + delta }, identity, identity)

	reg.Register(&callable.Builtin{Name: "grayscale", Params: []string{"$color"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
		c, err := color(args, 0)
		if err != nil {
			return nil, err
		}
		h, _, l := c.HSL()
		return value.FromHSL(h, 0, l, c.A), nil
	}})

	reg.Register(&callable.Builtin{Name: "invert", Params: []string{"$color"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
		c, err := color(args, 0)
		if err != nil {
			return nil, err
		}
		return value.Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: c.A}, nil
	}})

	reg.Register(&callable.Builtin{Name: "mix", Params: []string{"$color1", "$color2", "$weight"}, Fn: func(args []value.Value, _ *value.ArgumentList) (value.Value, error) {
		c1, err := color(args, 0)
		if err != nil {
			return nil, err
		}
		c2, err := color(args, 1)
		if err != nil {
			return nil, err
		}
		w := 50.0
		if len(args) > 2 {
			n, err := number(args, 2)
			if err != nil {
				return nil, err
			}
			w = n.Value
		}
		p := w / 100
		mixChannel := func(a, b uint8) uint8 {
			return uint8(math.Round(float64(a)*p + float64(b)*(1-p)))
		}
		return value.Color{
			R: mixChannel(c1.R, c2.R), G: mixChannel(c1.G, c2.G), B: mixChannel(c1.B, c2.B),
			A: c1.A*p + c2.A*(1-p),
		}, nil
	}})
}

func color(args []value.Value, i int) (value.Color, error) {
	if i >= len(args) {
		return value.Color{}, fmt.Errorf("missing color argument")
	}
	c, ok := args[i].(value.Color)
	if !ok {
		return value.Color{}, fmt.Errorf("%s is not a color", args[i].TypeName())
	}
	return c, nil
}

func channelByte(v value.Value) uint8 {
	n, ok := v.(value.Number)
	if !ok {
		return 0
	}
	if n.Value < 0 {
		return 0
	}
	if n.Value > 255 {
		return 255
	}
	return uint8(math.Round(n.Value))
}

func mustFloat(v value.Value) float64 {
	if n, ok := v.(value.Number); ok {
		return n.Value
	}
	return 1
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
