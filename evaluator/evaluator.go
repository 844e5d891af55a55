// Package evaluator wraps github.com/expr-lang/expr to provide a secondary,
// symbolic arithmetic check used by eval/guardexpr.go when folding calc()
// operand chains and double-checking guard-expression results: it turns a
// plain arithmetic/comparison expression string plus a set of already-
// evaluated variables into a Go value via expr-lang, the same wiring the
// teacher used in its own guard-condition handling
// (github.com/titpetric/lessgo's evaluator/evaluator.go), just retargeted
// from raw CSS-value strings onto numeric operands extracted from
// value.Value.
package evaluator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
)

// Evaluator evaluates an arithmetic/boolean expression string against a
// fixed set of variables.
type Evaluator struct {
	variables map[string]interface{}
}

// NewEvaluator builds an Evaluator from string-keyed operands, coercing
// numeric-with-unit and boolean-looking strings the way the expression
// evaluator's own number/bool literals would render them.
func NewEvaluator(vars map[string]string) *Evaluator {
	evalVars := make(map[string]interface{}, len(vars))
	for k, v := range vars {
		switch {
		case extractNumber(v) != nil:
			evalVars[k] = *extractNumber(v)
		case v == "true":
			evalVars[k] = true
		case v == "false":
			evalVars[k] = false
		default:
			evalVars[k] = v
		}
	}
	return &Evaluator{variables: evalVars}
}

// extractNumber extracts the numeric magnitude from a CSS value with an
// optional unit suffix (e.g. "5px" -> 5), returning nil when the string
// isn't numeric.
func extractNumber(raw string) *float64 {
	v := strings.TrimSpace(raw)
	units := []string{"px", "em", "rem", "%", "pt", "cm", "mm", "in", "pc", "ex", "ch", "vw", "vh", "vmin", "vmax"}
	for _, unit := range units {
		if strings.HasSuffix(v, unit) {
			numStr := strings.TrimSuffix(v, unit)
			if num, err := strconv.ParseFloat(numStr, 64); err == nil {
				return &num
			}
		}
	}
	if num, err := strconv.ParseFloat(v, 64); err == nil {
		return &num
	}
	return nil
}

// Eval compiles and runs expression against the evaluator's variables.
func (e *Evaluator) Eval(expression string) (interface{}, error) {
	processed := preprocessExpression(expression)

	program, err := expr.Compile(processed, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("failed to compile expression: %w", err)
	}

	result, err := expr.Run(program, e.variables)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate expression: %w", err)
	}
	return result, nil
}

// preprocessExpression strips CSS unit suffixes from numeric literals and
// turns "50%" into "0.5" so expr-lang, which knows nothing about CSS units,
// can compile the expression as plain arithmetic.
func preprocessExpression(source string) string {
	units := []string{"px", "em", "rem", "pt", "cm", "mm", "in", "pc", "ex", "ch", "vw", "vh", "vmin", "vmax"}

	result := source
	for _, unit := range units {
		i := 0
		for i < len(result) {
			idx := strings.Index(result[i:], unit)
			if idx == -1 {
				break
			}
			idx += i
			if idx > 0 && isDigit(result[idx-1]) {
				numStart := idx - 1
				for numStart > 0 && (isDigit(result[numStart-1]) || result[numStart-1] == '.') {
					numStart--
				}
				result = result[:idx] + result[idx+len(unit):]
				i = idx
			} else {
				i = idx + len(unit)
			}
		}
	}

	parts := strings.Split(result, " ")
	for k, v := range parts {
		if strings.HasSuffix(v, "%") {
			if num, err := strconv.ParseFloat(v[:len(v)-1], 64); err == nil {
				parts[k] = fmt.Sprint(num / 100.0)
			}
		}
	}
	return strings.Join(parts, " ")
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// EvalBool evaluates expression and coerces the result to a boolean,
// treating nonzero numbers and the string "true" as truthy.
func (e *Evaluator) EvalBool(expression string) (bool, error) {
	result, err := e.Eval(expression)
	if err != nil {
		return false, err
	}

	switch v := result.(type) {
	case bool:
		return v, nil
	case float64:
		return v != 0, nil
	case int:
		return v != 0, nil
	case string:
		return strings.ToLower(strings.TrimSpace(v)) == "true", nil
	default:
		return false, nil
	}
}
