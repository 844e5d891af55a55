package eval

import (
	"testing"

	"github.com/titpetric/sassgo/ast"
	"github.com/titpetric/sassgo/env"
	"github.com/titpetric/sassgo/value"
)

func sp() ast.Span { return ast.Span{URL: "test.scss"} }

func num(n float64, unit string) *ast.NumberLiteral {
	return ast.NewNumberLiteral(sp(), n, unit)
}

func newEval(e *env.Environment) *Evaluator {
	return New(e, nil, nil)
}

func TestEvalNumberLiteral(t *testing.T) {
	ev := newEval(env.New())
	v, err := ev.Eval(num(5, "px"))
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	if !v.Equal(value.NewNumberUnit(5, "px")) {
		t.Errorf("Eval() = %v, want 5px", v)
	}
}

func TestEvalVariableUndefinedErrors(t *testing.T) {
	ev := newEval(env.New())
	_, err := ev.Eval(ast.NewVariableExpr(sp(), "", "missing"))
	if err == nil {
		t.Error("evaluating an undefined variable should error")
	}
}

func TestEvalVariableLookup(t *testing.T) {
	e := env.New()
	e.SetVariable("x", value.NewNumber(10), false, false)
	ev := newEval(e)

	v, err := ev.Eval(ast.NewVariableExpr(sp(), "", "x"))
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	if !v.Equal(value.NewNumber(10)) {
		t.Errorf("Eval() = %v, want 10", v)
	}
}

func TestEvalBinaryArithmetic(t *testing.T) {
	ev := newEval(env.New())
	v, err := ev.Eval(ast.NewBinaryExpr(sp(), "+", num(1, "px"), num(2, "px")))
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	if !v.Equal(value.NewNumberUnit(3, "px")) {
		t.Errorf("Eval() = %v, want 3px", v)
	}
}

func TestEvalBinaryEquality(t *testing.T) {
	ev := newEval(env.New())
	v, err := ev.Eval(ast.NewBinaryExpr(sp(), "==", num(1, ""), num(1, "")))
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	if v != value.Bool(true) {
		t.Errorf("Eval() = %v, want true", v)
	}
}

func TestEvalBinaryComparison(t *testing.T) {
	ev := newEval(env.New())
	v, err := ev.Eval(ast.NewBinaryExpr(sp(), "<", num(1, ""), num(2, "")))
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	if v != value.Bool(true) {
		t.Errorf("Eval() = %v, want true", v)
	}
}

func TestEvalBinaryAndShortCircuits(t *testing.T) {
	ev := newEval(env.New())
	// `false and $undefined` should short-circuit before evaluating the
	// undefined variable on the right.
	expr := ast.NewBinaryExpr(sp(), "and", ast.NewBoolLiteral(sp(), false), ast.NewVariableExpr(sp(), "", "undefined"))

	v, err := ev.Eval(expr)
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	if v != value.Bool(false) {
		t.Errorf("Eval() = %v, want false", v)
	}
}

func TestEvalBinaryOrShortCircuits(t *testing.T) {
	ev := newEval(env.New())
	expr := ast.NewBinaryExpr(sp(), "or", ast.NewBoolLiteral(sp(), true), ast.NewVariableExpr(sp(), "", "undefined"))

	v, err := ev.Eval(expr)
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	if v != value.Bool(true) {
		t.Errorf("Eval() = %v, want true", v)
	}
}

func TestEvalBinaryIncompatibleUnitsError(t *testing.T) {
	ev := newEval(env.New())
	_, err := ev.Eval(ast.NewBinaryExpr(sp(), "+", num(1, "px"), num(1, "s")))
	if err == nil {
		t.Error("adding incompatible units outside calc() should error")
	}
}

func TestEvalBinaryDeferredInCalc(t *testing.T) {
	ev := newEval(env.New()).InCalc()
	v, err := ev.Eval(ast.NewBinaryExpr(sp(), "+", num(1, "px"), num(1, "s")))
	if err != nil {
		t.Fatalf("Eval error inside calc() should defer, got: %v", err)
	}
	if _, ok := v.(value.Calculation); !ok {
		t.Errorf("Eval() = %T, want value.Calculation", v)
	}
}

func TestEvalUnaryNegation(t *testing.T) {
	ev := newEval(env.New())
	v, err := ev.Eval(ast.NewUnaryExpr(sp(), "-", num(5, "px")))
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	if !v.Equal(value.NewNumberUnit(-5, "px")) {
		t.Errorf("Eval() = %v, want -5px", v)
	}
}

func TestEvalUnaryNot(t *testing.T) {
	ev := newEval(env.New())
	v, err := ev.Eval(ast.NewUnaryExpr(sp(), "not", ast.NewBoolLiteral(sp(), false)))
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	if v != value.Bool(true) {
		t.Errorf("Eval() = %v, want true", v)
	}
}

func TestEvalStringInterpolation(t *testing.T) {
	e := env.New()
	e.SetVariable("name", value.NewString("icon", false), false, false)
	ev := newEval(e)

	expr := ast.NewStringExpr(sp(), false, []ast.StringPart{
		{Literal: "btn-"},
		{Expr: ast.NewVariableExpr(sp(), "", "name")},
	})

	v, err := ev.Eval(expr)
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	if got, want := v.String(), "btn-icon"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestEvalListConstruction(t *testing.T) {
	ev := newEval(env.New())
	expr := ast.NewListExpr(sp(), []ast.Expression{num(1, "px"), num(2, "px")}, "", false)

	v, err := ev.Eval(expr)
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	list, ok := v.(value.List)
	if !ok {
		t.Fatalf("Eval() = %T, want value.List", v)
	}
	if list.Separator != "space" {
		t.Errorf("Separator = %q, want space (the undecided-separator default for >1 element)", list.Separator)
	}
}

func TestEvalMapConstruction(t *testing.T) {
	ev := newEval(env.New())
	expr := ast.NewMapExpr(sp(), []ast.MapEntry{
		{Key: num(1, ""), Value: num(10, "")},
	})

	v, err := ev.Eval(expr)
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	m, ok := v.(*value.Map)
	if !ok {
		t.Fatalf("Eval() = %T, want *value.Map", v)
	}
	got, ok := m.Get(value.NewNumber(1))
	if !ok || !got.Equal(value.NewNumber(10)) {
		t.Errorf("Get(1) = %v, %v, want 10, true", got, ok)
	}
}

func TestEvalMapDuplicateKeyErrors(t *testing.T) {
	ev := newEval(env.New())
	expr := ast.NewMapExpr(sp(), []ast.MapEntry{
		{Key: num(1, ""), Value: num(10, "")},
		{Key: num(1, ""), Value: num(20, "")},
	})

	if _, err := ev.Eval(expr); err == nil {
		t.Error("a map literal with a duplicate key should error")
	}
}

func TestEvalIfExpr(t *testing.T) {
	ev := newEval(env.New())
	expr := ast.NewIfExpr(sp(), ast.NewBoolLiteral(sp(), true), num(1, ""), num(2, ""))

	v, err := ev.Eval(expr)
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	if !v.Equal(value.NewNumber(1)) {
		t.Errorf("Eval() = %v, want 1", v)
	}
}

func TestEvalCalculationExpr(t *testing.T) {
	ev := newEval(env.New())
	expr := ast.NewCalculationExpr(sp(), "min", []ast.Expression{num(1, "px"), num(2, "px")})

	v, err := ev.Eval(expr)
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	if got, want := v.String(), "min(1px, 2px)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
