package eval

import (
	"github.com/titpetric/sassgo/evaluator"
	"github.com/titpetric/sassgo/value"
)

// SimplifyCalculation attempts a numeric fold of a calc()-shaped operator
// chain via expr-lang (package evaluator): each value.Number operand is
// bound as a variable holding its String() text, and each value.Str operand
// is spliced into the expression as operator text. It returns ok=false,
// leaving the original Calculation untouched, whenever an operand is
// neither a value.Number nor a value.Str (a color, for instance), or when
// expr-lang does not yield a plain number. The result is dimensionless.
func SimplifyCalculation(calc value.Calculation) (value.Value, bool) {
	vars := make(map[string]string)
	expr := ""
	for i, arg := range calc.Arguments {
		switch v := arg.(type) {
		case value.Number:
			name := varName(i)
			vars[name] = v.String()
			expr += name
		case value.Str:
			expr += v.Text
		default:
			return nil, false
		}
	}
	ev := evaluator.NewEvaluator(vars)
	result, err := ev.Eval(expr)
	if err != nil {
		return nil, false
	}
	f, ok := result.(float64)
	if !ok {
		return nil, false
	}
	return value.NewNumber(f), true
}

func varName(i int) string {
	return string(rune('a' + i%26))
}

// EvalGuardExpr evaluates expression as a plain expr-lang boolean. vars
// maps variable names to their already-rendered CSS text.
func EvalGuardExpr(expression string, vars map[string]string) (bool, error) {
	return evaluator.NewEvaluator(vars).EvalBool(expression)
}
