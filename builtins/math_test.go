package builtins

import (
	"testing"

	"github.com/titpetric/sassgo/value"
)

func TestRound(t *testing.T) {
	got := call(t, "round", []value.Value{value.NewNumber(4.6)}, nil)
	if !got.Equal(value.NewNumber(5)) {
		t.Errorf("round(4.6) = %v, want 5", got)
	}
}

func TestCeilAndFloor(t *testing.T) {
	if got := call(t, "ceil", []value.Value{value.NewNumber(4.1)}, nil); !got.Equal(value.NewNumber(5)) {
		t.Errorf("ceil(4.1) = %v, want 5", got)
	}
	if got := call(t, "floor", []value.Value{value.NewNumber(4.9)}, nil); !got.Equal(value.NewNumber(4)) {
		t.Errorf("floor(4.9) = %v, want 4", got)
	}
}

func TestAbs(t *testing.T) {
	got := call(t, "abs", []value.Value{value.NewNumber(-3)}, nil)
	if !got.Equal(value.NewNumber(3)) {
		t.Errorf("abs(-3) = %v, want 3", got)
	}
}

func TestPercentage(t *testing.T) {
	got := call(t, "percentage", []value.Value{value.NewNumber(0.5)}, nil)
	want := value.NewNumberUnit(50, "%")
	if !got.Equal(want) {
		t.Errorf("percentage(0.5) = %v, want %v", got, want)
	}
}

func TestMinMax(t *testing.T) {
	args := []value.Value{value.NewNumber(3), value.NewNumber(1), value.NewNumber(2)}
	if got := call(t, "min", args, nil); !got.Equal(value.NewNumber(1)) {
		t.Errorf("min(3,1,2) = %v, want 1", got)
	}
	if got := call(t, "max", args, nil); !got.Equal(value.NewNumber(3)) {
		t.Errorf("max(3,1,2) = %v, want 3", got)
	}
}

func TestMinRequiresAtLeastOneArgument(t *testing.T) {
	if err := callErr(t, "min", nil, nil); err == nil {
		t.Error("min() with no arguments should error")
	}
}

func TestUnitAndUnitless(t *testing.T) {
	px := value.NewNumberUnit(5, "px")
	if got := call(t, "unit", []value.Value{px}, nil); got.String() != `"px"` {
		t.Errorf("unit(5px) = %v, want \"px\"", got)
	}
	if got := call(t, "unitless", []value.Value{value.NewNumber(5)}, nil); got != value.Bool(true) {
		t.Errorf("unitless(5) = %v, want true", got)
	}
	if got := call(t, "unitless", []value.Value{px}, nil); got != value.Bool(false) {
		t.Errorf("unitless(5px) = %v, want false", got)
	}
}

func TestComparable(t *testing.T) {
	got := call(t, "comparable", []value.Value{value.NewNumberUnit(1, "px"), value.NewNumberUnit(2, "px")}, nil)
	if got != value.Bool(true) {
		t.Errorf("comparable(1px, 2px) = %v, want true", got)
	}
}

func TestNumberArgumentTypeMismatchErrors(t *testing.T) {
	if err := callErr(t, "round", []value.Value{value.NewString("nope", false)}, nil); err == nil {
		t.Error("round() on a non-number should error")
	}
}
