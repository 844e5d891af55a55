package value

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/titpetric/sassgo/sasserr"
)

// Number is a Sass number: a rational magnitude plus a vector of numerator
// and denominator units. It generalizes the teacher's expression.Value,
// which carried at most one unit string; here units form a bag so that
// compound units like "px*s/deg" survive multiplication and division the
// way the spec's arithmetic section requires, and so unit cancellation
// ("1px * 2 / 1px" -> dimensionless 2) falls out of slice comparison
// instead of a single string replace.
type Number struct {
	Value        float64
	Numerators   []string
	Denominators []string
}

// NewNumber builds a dimensionless number.
func NewNumber(v float64) Number { return Number{Value: v} }

// NewNumberUnit builds a number with a single numerator unit, the common case
// ("10px", "2deg", "50%").
func NewNumberUnit(v float64, unit string) Number {
	if unit == "" {
		return Number{Value: v}
	}
	return Number{Value: v, Numerators: []string{unit}}
}

func (n Number) Truthy() bool { return true }

func (n Number) Equal(other Value) bool {
	on, ok := other.(Number)
	if !ok {
		return false
	}
	if !sameUnits(n.Numerators, on.Numerators) || !sameUnits(n.Denominators, on.Denominators) {
		return false
	}
	return floatsEqual(n.Value, on.Value)
}

func floatsEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-11
}

func sameUnits(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	ca := append([]string(nil), a...)
	cb := append([]string(nil), b...)
	sort.Strings(ca)
	sort.Strings(cb)
	for i := range ca {
		if !strings.EqualFold(ca[i], cb[i]) {
			return false
		}
	}
	return true
}

// Unit returns the single numerator unit, or "" when the number is
// dimensionless or compound. Used by builtins like unit() and unitless().
func (n Number) Unit() string {
	if len(n.Numerators) == 1 && len(n.Denominators) == 0 {
		return n.Numerators[0]
	}
	return ""
}

func (n Number) HasUnits() bool { return len(n.Numerators) > 0 || len(n.Denominators) > 0 }

func (n Number) String() string {
	s := trimFloat(n.Value)
	if len(n.Numerators) == 0 && len(n.Denominators) == 0 {
		return s
	}
	var b strings.Builder
	b.WriteString(s)
	b.WriteString(strings.Join(n.Numerators, "*"))
	if len(n.Denominators) > 0 {
		b.WriteString("/")
		b.WriteString(strings.Join(n.Denominators, "*"))
	}
	return b.String()
}

func (n Number) TypeName() string { return "number" }

// trimFloat renders a float with up to 10 fractional digits,
// trimming trailing zeros, matching the precision Sass uses for CSS output.
// Grounded on expression.Value's trimFloat but widened from 9 to 10 digits
// per spec's default numeric precision.
func trimFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "0"
	}
	s := strconv.FormatFloat(f, 'f', 10, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// compatibleConversion is the (small, fixed) table of length/angle/time/
// frequency/resolution unit conversions recognized for addition/subtraction
// and comparison, per CSS unit compatibility groups. Each entry
// compatibleConversion[from][to] is how many `from` units make one `to`
// unit (1in is 96px, so ["px"]["in"] is 96).
var compatibleConversion = map[string]map[string]float64{
	"px": {"px": 1, "in": 96, "pt": 96.0 / 72, "pc": 16, "cm": 96.0 / 2.54, "mm": 96.0 / 25.4, "q": 96.0 / 101.6},
	"in": {"px": 1.0 / 96, "in": 1, "pt": 1.0 / 72, "pc": 1.0 / 6, "cm": 1.0 / 2.54, "mm": 1.0 / 25.4, "q": 1.0 / 101.6},
	"deg": {"deg": 1, "grad": 0.9, "rad": 180 / math.Pi, "turn": 360},
	"s":   {"s": 1, "ms": 0.001},
	"ms":  {"s": 1000, "ms": 1},
	"hz":  {"hz": 1, "khz": 1000},
	"khz": {"hz": 0.001, "khz": 1},
	"dpi": {"dpi": 1, "dpcm": 2.54, "dppx": 96},
}

// convertTo converts value from `from` unit into `to` unit, reporting ok=false
// when the two units aren't in the same conversion family (caller then
// refuses the arithmetic op rather than silently guessing, per spec's
// "incompatible units" runtime error).
func convertTo(value float64, from, to string) (float64, bool) {
	from, to = strings.ToLower(from), strings.ToLower(to)
	if from == to {
		return value, true
	}
	table, ok := compatibleConversion[from]
	if !ok {
		return 0, false
	}
	factor, ok := table[to]
	if !ok {
		return 0, false
	}
	return value / factor, true
}

// Arith implements the binary arithmetic operators (+ - * / %) between two
// numbers, generalizing expression.Value's Add/Subtract/Multiply/Divide.
// calc reports whether this call happens inside a calc()-like context, where
// incompatible units are deferred into a Calculation rather than erroring.
func (n Number) Arith(op string, other Value, calc bool) (Value, error) {
	on, ok := other.(Number)
	if !ok {
		if calc {
			return NewCalculation("", []Value{n, NewString(op, false), other}), nil
		}
		return nil, fmt.Errorf("%s is not a number", other.TypeName())
	}

	switch op {
	case "+", "-":
		rhs := on.Value
		numerators := n.Numerators
		if len(n.Numerators) == 1 && len(on.Numerators) == 1 && len(n.Denominators) == 0 && len(on.Denominators) == 0 {
			converted, ok := convertTo(on.Value, on.Numerators[0], n.Numerators[0])
			if !ok {
				if calc {
					return NewCalculation("", []Value{n, NewString(op, false), other}), nil
				}
				return nil, fmt.Errorf("incompatible units %s and %s", n.Numerators[0], on.Numerators[0])
			}
			rhs = converted
		} else if !sameUnits(n.Numerators, on.Numerators) || !sameUnits(n.Denominators, on.Denominators) {
			if len(n.Numerators) == 0 && len(n.Denominators) == 0 {
				numerators = on.Numerators
			} else if len(on.Numerators) != 0 || len(on.Denominators) != 0 {
				if calc {
					return NewCalculation("", []Value{n, NewString(op, false), other}), nil
				}
				return nil, fmt.Errorf("incompatible units")
			}
		}
		v := n.Value + rhs
		if op == "-" {
			v = n.Value - rhs
		}
		return Number{Value: v, Numerators: numerators, Denominators: n.Denominators}, nil

	case "*":
		return Number{
			Value:        n.Value * on.Value,
			Numerators:   append(append([]string(nil), n.Numerators...), on.Numerators...),
			Denominators: append(append([]string(nil), n.Denominators...), on.Denominators...),
		}.simplify(), nil

	case "/":
		if on.Value == 0 {
			if calc {
				return NewCalculation("", []Value{n, NewString("/", false), other}), nil
			}
			return nil, sasserr.NewScriptError("division by zero")
		}
		return Number{
			Value:        n.Value / on.Value,
			Numerators:   append(append([]string(nil), n.Numerators...), on.Denominators...),
			Denominators: append(append([]string(nil), n.Denominators...), on.Numerators...),
		}.simplify(), nil

	case "%":
		if !sameUnits(n.Numerators, on.Numerators) {
			return nil, fmt.Errorf("incompatible units")
		}
		return Number{Value: math.Mod(n.Value, on.Value), Numerators: n.Numerators, Denominators: n.Denominators}, nil
	}
	return nil, fmt.Errorf("unsupported operator %q for numbers", op)
}

// simplify cancels matching numerator/denominator units pairwise, so
// "1px * 1 / 1px" ends up dimensionless instead of "px/px".
func (n Number) simplify() Number {
	nums := append([]string(nil), n.Numerators...)
	dens := append([]string(nil), n.Denominators...)
	for i := 0; i < len(nums); i++ {
		for j := 0; j < len(dens); j++ {
			if strings.EqualFold(nums[i], dens[j]) {
				nums = append(nums[:i], nums[i+1:]...)
				dens = append(dens[:j], dens[j+1:]...)
				i--
				break
			}
		}
	}
	return Number{Value: n.Value, Numerators: nums, Denominators: dens}
}

// Compare orders two numbers for < <= > >=, converting units where possible.
// ok is false when the comparison is not well-defined (incompatible units).
func (n Number) Compare(other Number) (int, bool) {
	rhs := other.Value
	if n.Unit() != "" && other.Unit() != "" {
		converted, ok := convertTo(other.Value, other.Unit(), n.Unit())
		if !ok {
			return 0, false
		}
		rhs = converted
	} else if !sameUnits(n.Numerators, other.Numerators) {
		return 0, false
	}
	switch {
	case floatsEqual(n.Value, rhs):
		return 0, true
	case n.Value < rhs:
		return -1, true
	default:
		return 1, true
	}
}
