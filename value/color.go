package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is an RGBA Sass color, stored in the RGB channel space with an
// independent HSL view computed on demand. This merges the teacher's two
// parallel, slightly inconsistent color representations
// (expression.Color, which carried both RGB and HSL fields eagerly, and
// functions.Color, which stored float64 channels) into one canonical
// uint8-RGB-plus-alpha value, converting to HSL lazily only when a
// builtin (hue/saturation/lightness/adjust-hue) needs it.
type Color struct {
	R, G, B uint8
	A       float64 // 0..1
	// Original preserves the source text (e.g. "red", "#f00") so that
	// round-tripping an untouched color through the serializer reproduces
	// the author's spelling, per the spec's "authored form" note.
	Original string
}

func NewColor(r, g, b uint8, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

func (c Color) Truthy() bool { return true }

func (c Color) Equal(other Value) bool {
	oc, ok := other.(Color)
	return ok && oc.R == c.R && oc.G == c.G && oc.B == c.B && floatsEqual(oc.A, c.A)
}

func (c Color) String() string {
	if c.Original != "" {
		return c.Original
	}
	if c.A >= 1 {
		if name, ok := rgbToName[[3]uint8{c.R, c.G, c.B}]; ok {
			return name
		}
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, trimFloat(c.A))
}

func (c Color) TypeName() string { return "color" }

// HSL returns the hue (0-360), saturation (0-1), lightness (0-1) view.
func (c Color) HSL() (h, s, l float64) {
	r, g, b := float64(c.R)/255, float64(c.G)/255, float64(c.B)/255
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l = (max + min) / 2
	if max == min {
		return 0, 0, l
	}
	d := max - min
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	case b:
		h = (r-g)/d + 4
	}
	h *= 60
	return h, s, l
}

// FromHSL builds a Color from hue/saturation/lightness/alpha, the inverse of
// HSL, used by hsl()/adjust-hue/etc.
func FromHSL(h, s, l, a float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if s <= 0 {
		v := uint8(math.Round(l * 255))
		return Color{R: v, G: v, B: v, A: a}
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	r := hueToRGB(p, q, h/360+1.0/3)
	g := hueToRGB(p, q, h/360)
	b := hueToRGB(p, q, h/360-1.0/3)
	return Color{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		B: uint8(math.Round(b * 255)),
		A: a,
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// ParseColor parses a hex, rgb()/rgba(), hsl()/hsla() literal, or a named
// CSS color, following expression/color.go's and functions/colors.go's
// parsing split but unified into one entry point returning (Color, ok).
func ParseColor(raw string) (Color, bool) {
	s := strings.TrimSpace(raw)
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(lower, "rgb"):
		return parseFunctional(s, false)
	case strings.HasPrefix(lower, "hsl"):
		return parseFunctional(s, true)
	}
	if rgb, ok := namedColors[lower]; ok {
		a := 1.0
		if lower == "transparent" {
			a = 0
		}
		return Color{R: rgb[0], G: rgb[1], B: rgb[2], A: a, Original: lower}, true
	}
	return Color{}, false
}

func parseHex(s string) (Color, bool) {
	hex := strings.TrimPrefix(s, "#")
	expand := func(c byte) uint8 {
		v, _ := strconv.ParseUint(strings.Repeat(string(c), 1), 16, 8)
		return uint8(v)
	}
	switch len(hex) {
	case 3:
		return Color{R: expand(hex[0]) * 17, G: expand(hex[1]) * 17, B: expand(hex[2]) * 17, A: 1, Original: s}, true
	case 4:
		a := expand(hex[3]) * 17
		return Color{R: expand(hex[0]) * 17, G: expand(hex[1]) * 17, B: expand(hex[2]) * 17, A: float64(a) / 255, Original: s}, true
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, false
		}
		return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 1, Original: s}, true
	case 8:
		v, err := strconv.ParseUint(hex, 16, 64)
		if err != nil {
			return Color{}, false
		}
		return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: float64(uint8(v)) / 255, Original: s}, true
	}
	return Color{}, false
}

func parseFunctional(s string, hsl bool) (Color, bool) {
	open := strings.IndexByte(s, '(')
	close := strings.LastIndexByte(s, ')')
	if open < 0 || close < 0 || close < open {
		return Color{}, false
	}
	inner := s[open+1 : close]
	inner = strings.ReplaceAll(inner, "/", ",")
	parts := strings.Split(inner, ",")
	if len(parts) < 3 {
		return Color{}, false
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	a := 1.0
	if len(parts) >= 4 {
		a = parsePercentOrFloat(parts[3], 1)
	}
	if hsl {
		h := parseDegrees(parts[0])
		sat := parsePercentOrFloat(parts[1], 100) / 100
		l := parsePercentOrFloat(parts[2], 100) / 100
		c := FromHSL(h, sat, l, a)
		c.Original = s
		return c, true
	}
	r := parseChannel(parts[0])
	g := parseChannel(parts[1])
	b := parseChannel(parts[2])
	return Color{R: r, G: g, B: b, A: a, Original: s}, true
}

func parseChannel(s string) uint8 {
	if strings.HasSuffix(s, "%") {
		v := parsePercentOrFloat(s, 100)
		return uint8(math.Round(v / 100 * 255))
	}
	v, _ := strconv.ParseFloat(s, 64)
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(math.Round(v))
}

func parsePercentOrFloat(s string, full float64) float64 {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "%") {
		v, _ := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		return v
	}
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func parseDegrees(s string) float64 {
	s = strings.TrimSuffix(strings.TrimSuffix(s, "deg"), "grad")
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}

// namedColors is the CSS named-color table, ported from functions/types.go's
// IsColor keyword map, keyed by lowercase name.
var namedColors = map[string][3]uint8{
	"black": {0, 0, 0}, "white": {255, 255, 255}, "red": {255, 0, 0},
	"green": {0, 128, 0}, "blue": {0, 0, 255}, "yellow": {255, 255, 0},
	"cyan": {0, 255, 255}, "magenta": {255, 0, 255}, "gray": {128, 128, 128},
	"grey": {128, 128, 128}, "orange": {255, 165, 0}, "purple": {128, 0, 128},
	"pink": {255, 192, 203}, "brown": {165, 42, 42}, "transparent": {0, 0, 0},
	"silver": {192, 192, 192}, "maroon": {128, 0, 0}, "olive": {128, 128, 0},
	"lime": {0, 255, 0}, "teal": {0, 128, 128}, "navy": {0, 0, 128},
	"fuchsia": {255, 0, 255}, "aqua": {0, 255, 255}, "indigo": {75, 0, 130},
	"violet": {238, 130, 238}, "coral": {255, 127, 80}, "salmon": {250, 128, 114},
	"khaki": {240, 230, 140}, "crimson": {220, 20, 60}, "gold": {255, 215, 0},
	"chocolate": {210, 105, 30}, "tan": {210, 180, 140}, "orchid": {218, 112, 214},
	"plum": {221, 160, 221}, "skyblue": {135, 206, 235}, "steelblue": {70, 130, 180},
	"tomato": {255, 99, 71}, "turquoise": {64, 224, 208}, "wheat": {245, 222, 179},
}

var rgbToName = func() map[[3]uint8]string {
	m := make(map[[3]uint8]string, len(namedColors))
	for name, rgb := range namedColors {
		if _, exists := m[rgb]; !exists {
			m[rgb] = name
		}
	}
	return m
}()
