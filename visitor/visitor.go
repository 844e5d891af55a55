// Package visitor provides reusable recursive-descent traversal over the
// ast package's Statement/Expression trees, generalizing the parallel
// type-switch dispatchers the teacher duplicated across renderer.go
// (renderStatement/renderValue), dst/formatter.go and dst/renderer.go into
// one Walk pair plus Option-style short-circuiting search combinators, so
// exec/eval don't each need their own copy of "what are this node's
// children" bookkeeping for operations like collecting every nested
// StyleRule's declarations count or finding the first @content.
package visitor

import "github.com/titpetric/sassgo/ast"

// StatementChildren returns the direct nested statement list of any
// Statement kind that carries one (for a Declaration, its nested-property
// Children), or nil for leaf statements (VariableDeclaration, ReturnRule,
// ...).
func StatementChildren(stmt ast.Statement) []ast.Statement {
	switch s := stmt.(type) {
	case *ast.Stylesheet:
		return s.Body
	case *ast.StyleRule:
		return s.Body
	case *ast.Declaration:
		return s.Children
	case *ast.AtRule:
		return s.Body
	case *ast.MediaRule:
		return s.Body
	case *ast.SupportsRule:
		return s.Body
	case *ast.AtRootRule:
		return s.Body
	case *ast.EachRule:
		return s.Body
	case *ast.ForRule:
		return s.Body
	case *ast.WhileRule:
		return s.Body
	case *ast.FunctionRule:
		return s.Body
	case *ast.MixinRule:
		return s.Body
	case *ast.ContentBlock:
		return s.Body
	case *ast.IfRule:
		var out []ast.Statement
		for _, c := range s.Clauses {
			out = append(out, c.Body...)
		}
		return out
	}
	return nil
}

// WalkStatements calls visit for stmt and every statement nested beneath
// it, depth-first, stopping early (without descending further) whenever
// visit returns false.
func WalkStatements(stmt ast.Statement, visit func(ast.Statement) bool) {
	if !visit(stmt) {
		return
	}
	for _, child := range StatementChildren(stmt) {
		WalkStatements(child, visit)
	}
}

// FindStatement returns the first statement in stmt's subtree for which
// match returns true, depth-first, or nil if none matches. This is the
// Option-returning search combinator the spec's visitor scaffolding calls
// for (e.g. "does this mixin body contain an @content rule").
func FindStatement(stmt ast.Statement, match func(ast.Statement) bool) ast.Statement {
	var found ast.Statement
	WalkStatements(stmt, func(s ast.Statement) bool {
		if found != nil {
			return false
		}
		if match(s) {
			found = s
			return false
		}
		return true
	})
	return found
}

// AnyStatement reports whether any statement in stmt's subtree matches.
func AnyStatement(stmt ast.Statement, match func(ast.Statement) bool) bool {
	return FindStatement(stmt, match) != nil
}

// ContainsContentRule reports whether body (a mixin's statement list)
// invokes @content anywhere within it, without descending into nested
// mixin/function declarations (those have their own, independent content
// context).
func ContainsContentRule(body []ast.Statement) bool {
	for _, s := range body {
		if containsContent(s) {
			return true
		}
	}
	return false
}

func containsContent(stmt ast.Statement) bool {
	switch s := stmt.(type) {
	case *ast.ContentRule:
		return true
	case *ast.MixinRule, *ast.FunctionRule:
		return false
	default:
		for _, child := range StatementChildren(s) {
			if containsContent(child) {
				return true
			}
		}
	}
	return false
}

// WalkExpression calls visit for e and every sub-expression reachable
// through it (binary/unary operands, list/map elements, call arguments),
// depth-first.
func WalkExpression(e ast.Expression, visit func(ast.Expression)) {
	if e == nil {
		return
	}
	visit(e)
	switch ex := e.(type) {
	case *ast.BinaryExpr:
		WalkExpression(ex.Left, visit)
		WalkExpression(ex.Right, visit)
	case *ast.UnaryExpr:
		WalkExpression(ex.Operand, visit)
	case *ast.ParenExpr:
		WalkExpression(ex.Inner, visit)
	case *ast.ListExpr:
		for _, el := range ex.Elements {
			WalkExpression(el, visit)
		}
	case *ast.MapExpr:
		for _, entry := range ex.Entries {
			WalkExpression(entry.Key, visit)
			WalkExpression(entry.Value, visit)
		}
	case *ast.IfExpr:
		WalkExpression(ex.Condition, visit)
		WalkExpression(ex.Then, visit)
		WalkExpression(ex.Else, visit)
	case *ast.FunctionCallExpr:
		for _, a := range ex.Arguments {
			WalkExpression(a.Value, visit)
		}
	case *ast.CallExpr:
		WalkExpression(ex.Callee, visit)
		for _, a := range ex.Arguments {
			WalkExpression(a.Value, visit)
		}
	case *ast.CalculationExpr:
		for _, a := range ex.Arguments {
			WalkExpression(a, visit)
		}
	case *ast.InterpolatedExpr:
		WalkExpression(ex.Inner, visit)
	case *ast.StringExpr:
		for _, part := range ex.Parts {
			if part.Expr != nil {
				WalkExpression(part.Expr, visit)
			}
		}
	}
}

// ReferencesVariable reports whether e contains a VariableExpr named name
// (ignoring namespace), used by callable.Bind's lazy-default evaluation to
// detect a parameter default that forward-references a later parameter,
// which Sass forbids.
func ReferencesVariable(e ast.Expression, name string) bool {
	found := false
	WalkExpression(e, func(sub ast.Expression) {
		if v, ok := sub.(*ast.VariableExpr); ok && v.Name == name {
			found = true
		}
	})
	return found
}
