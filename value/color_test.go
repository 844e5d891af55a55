package value

import "testing"

func TestParseColorHex(t *testing.T) {
	tests := []struct {
		in            string
		r, g, b uint8
		a             float64
	}{
		{"#fff", 255, 255, 255, 1},
		{"#000", 0, 0, 0, 1},
		{"#ff0000", 255, 0, 0, 1},
		{"#00ff0080", 0, 255, 0, 128.0 / 255},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, ok := ParseColor(tt.in)
			if !ok {
				t.Fatalf("ParseColor(%q) failed to parse", tt.in)
			}
			if c.R != tt.r || c.G != tt.g || c.B != tt.b || !floatsEqual(c.A, tt.a) {
				t.Errorf("ParseColor(%q) = %+v, want R=%d G=%d B=%d A=%g", tt.in, c, tt.r, tt.g, tt.b, tt.a)
			}
		})
	}
}

func TestParseColorNamed(t *testing.T) {
	c, ok := ParseColor("red")
	if !ok {
		t.Fatal("ParseColor(red) failed to parse")
	}
	if c.R != 255 || c.G != 0 || c.B != 0 {
		t.Errorf("ParseColor(red) = %+v, want 255,0,0", c)
	}

	transparent, ok := ParseColor("transparent")
	if !ok || transparent.A != 0 {
		t.Errorf("ParseColor(transparent) A = %v, want 0", transparent.A)
	}
}

func TestParseColorFunctional(t *testing.T) {
	c, ok := ParseColor("rgb(255, 0, 0)")
	if !ok || c.R != 255 || c.G != 0 || c.B != 0 || c.A != 1 {
		t.Errorf("ParseColor(rgb(255,0,0)) = %+v, ok=%v", c, ok)
	}

	withAlpha, ok := ParseColor("rgba(0, 0, 0, 0.5)")
	if !ok || !floatsEqual(withAlpha.A, 0.5) {
		t.Errorf("ParseColor(rgba with alpha) A = %v, ok=%v, want 0.5", withAlpha.A, ok)
	}
}

func TestParseColorInvalid(t *testing.T) {
	if _, ok := ParseColor("not-a-color"); ok {
		t.Error("ParseColor(not-a-color) should fail")
	}
}

func TestColorStringPreservesOriginal(t *testing.T) {
	c, _ := ParseColor("#FF0000")
	if got, want := c.String(), "#FF0000"; got != want {
		t.Errorf("String() = %q, want %q (authored form preserved)", got, want)
	}
}

func TestColorStringSynthesizedHex(t *testing.T) {
	c := NewColor(18, 52, 86, 1)
	if got, want := c.String(), "#123456"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestColorHSLRoundTrip(t *testing.T) {
	orig := NewColor(51, 204, 51, 1)
	h, s, l := orig.HSL()
	back := FromHSL(h, s, l, 1)

	if !orig.Equal(back) {
		t.Errorf("HSL round-trip: got %+v, want %+v", back, orig)
	}
}

func TestColorEqual(t *testing.T) {
	a := NewColor(10, 20, 30, 1)
	b := NewColor(10, 20, 30, 1)
	c := NewColor(10, 20, 31, 1)

	if !a.Equal(b) {
		t.Error("identical colors should be equal")
	}
	if a.Equal(c) {
		t.Error("colors differing in one channel should not be equal")
	}
}
