package builtins

import (
	"testing"

	"github.com/titpetric/sassgo/value"
)

func TestRGBConstructsOpaqueColor(t *testing.T) {
	got := call(t, "rgb", []value.Value{value.NewNumber(255), value.NewNumber(0), value.NewNumber(0)}, nil)
	c, ok := got.(value.Color)
	if !ok {
		t.Fatalf("rgb() = %T, want value.Color", got)
	}
	if c.R != 255 || c.G != 0 || c.B != 0 || c.A != 1 {
		t.Errorf("rgb(255,0,0) = %+v, want {255 0 0 1}", c)
	}
}

func TestRGBAWithFourChannels(t *testing.T) {
	got := call(t, "rgba", []value.Value{value.NewNumber(10), value.NewNumber(20), value.NewNumber(30), value.NewNumber(0.5)}, nil)
	c := got.(value.Color)
	if c.R != 10 || c.G != 20 || c.B != 30 || c.A != 0.5 {
		t.Errorf("rgba(10,20,30,.5) = %+v, want {10 20 30 0.5}", c)
	}
}

func TestRGBAWithColorAndAlpha(t *testing.T) {
	red := value.Color{R: 255, A: 1}
	got := call(t, "rgba", []value.Value{red, value.NewNumber(0.2)}, nil)
	c := got.(value.Color)
	if c.R != 255 || c.A != 0.2 {
		t.Errorf("rgba(red, .2) = %+v, want alpha 0.2", c)
	}
}

func TestChannelGetters(t *testing.T) {
	c := value.Color{R: 10, G: 20, B: 30, A: 1}
	if got := call(t, "red", []value.Value{c}, nil); !got.Equal(value.NewNumber(10)) {
		t.Errorf("red() = %v, want 10", got)
	}
	if got := call(t, "green", []value.Value{c}, nil); !got.Equal(value.NewNumber(20)) {
		t.Errorf("green() = %v, want 20", got)
	}
	if got := call(t, "blue", []value.Value{c}, nil); !got.Equal(value.NewNumber(30)) {
		t.Errorf("blue() = %v, want 30", got)
	}
	if got := call(t, "alpha", []value.Value{c}, nil); !got.Equal(value.NewNumber(1)) {
		t.Errorf("alpha() = %v, want 1", got)
	}
}

func TestInvertFlipsEachChannel(t *testing.T) {
	c := value.Color{R: 0, G: 255, B: 10, A: 1}
	got := call(t, "invert", []value.Value{c}, nil).(value.Color)
	if got.R != 255 || got.G != 0 || got.B != 245 {
		t.Errorf("invert() = %+v, want {255 0 245 1}", got)
	}
}

func TestLightenIncreasesLightness(t *testing.T) {
	c := value.Color{R: 100, G: 100, B: 100, A: 1}
	_, _, beforeL := c.HSL()
	got := call(t, "lighten", []value.Value{c, value.NewNumber(10)}, nil).(value.Color)
	_, _, afterL := got.HSL()
	if afterL <= beforeL {
		t.Errorf("lighten() lightness = %v, want greater than %v", afterL, beforeL)
	}
}

func TestGrayscaleZeroesSaturation(t *testing.T) {
	c := value.Color{R: 200, G: 50, B: 50, A: 1}
	got := call(t, "grayscale", []value.Value{c}, nil).(value.Color)
	_, s, _ := got.HSL()
	if s > 0.0001 {
		t.Errorf("grayscale() saturation = %v, want 0", s)
	}
}

func TestMixDefaultWeightIsHalf(t *testing.T) {
	a := value.Color{R: 0, G: 0, B: 0, A: 1}
	b := value.Color{R: 255, G: 255, B: 255, A: 1}
	got := call(t, "mix", []value.Value{a, b}, nil).(value.Color)
	if got.R != 128 {
		t.Errorf("mix(black, white) R = %v, want 128 (rounded midpoint)", got.R)
	}
}

func TestColorArgumentTypeMismatchErrors(t *testing.T) {
	if err := callErr(t, "red", []value.Value{value.NewNumber(1)}, nil); err == nil {
		t.Error("red() on a non-color should error")
	}
}
