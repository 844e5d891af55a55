package visitor

import (
	"testing"

	"github.com/titpetric/sassgo/ast"
)

func sp() ast.Span { return ast.Span{URL: "test.scss"} }

func TestStatementChildrenOfStyleRule(t *testing.T) {
	decl := ast.NewDeclaration(sp(), nil, nil, nil)
	rule := ast.NewStyleRule(sp(), nil, []ast.Statement{decl})

	children := StatementChildren(rule)
	if len(children) != 1 || children[0] != decl {
		t.Errorf("StatementChildren(StyleRule) = %v, want [decl]", children)
	}
}

func TestStatementChildrenOfLeafIsNil(t *testing.T) {
	decl := ast.NewDeclaration(sp(), nil, nil, nil)
	if got := StatementChildren(decl); got != nil {
		t.Errorf("StatementChildren(Declaration) = %v, want nil", got)
	}
}

func TestStatementChildrenOfIfRuleFlattensClauses(t *testing.T) {
	a := ast.NewDeclaration(sp(), nil, nil, nil)
	b := ast.NewDeclaration(sp(), nil, nil, nil)
	ifRule := ast.NewIfRule(sp(), []ast.IfClause{
		{Condition: ast.NewBoolLiteral(sp(), true), Body: []ast.Statement{a}},
		{Condition: nil, Body: []ast.Statement{b}},
	})

	children := StatementChildren(ifRule)
	if len(children) != 2 || children[0] != a || children[1] != b {
		t.Errorf("StatementChildren(IfRule) = %v, want [a b]", children)
	}
}

func TestWalkStatementsVisitsNestedBodies(t *testing.T) {
	inner := ast.NewDeclaration(sp(), nil, nil, nil)
	outer := ast.NewStyleRule(sp(), nil, []ast.Statement{inner})

	var visited []ast.Statement
	WalkStatements(outer, func(s ast.Statement) bool {
		visited = append(visited, s)
		return true
	})

	if len(visited) != 2 || visited[0] != outer || visited[1] != inner {
		t.Errorf("WalkStatements visited = %v, want [outer inner]", visited)
	}
}

func TestWalkStatementsStopsDescendingWhenVisitReturnsFalse(t *testing.T) {
	inner := ast.NewDeclaration(sp(), nil, nil, nil)
	outer := ast.NewStyleRule(sp(), nil, []ast.Statement{inner})

	var visited []ast.Statement
	WalkStatements(outer, func(s ast.Statement) bool {
		visited = append(visited, s)
		return false
	})

	if len(visited) != 1 {
		t.Errorf("WalkStatements visited = %v, want just [outer] (visit refused descent)", visited)
	}
}

func TestFindStatementReturnsFirstMatch(t *testing.T) {
	target := ast.NewDeclaration(sp(), nil, nil, nil)
	other := ast.NewDeclaration(sp(), nil, nil, nil)
	outer := ast.NewStyleRule(sp(), nil, []ast.Statement{other, target})

	found := FindStatement(outer, func(s ast.Statement) bool { return s == target })
	if found != target {
		t.Errorf("FindStatement() = %v, want target", found)
	}
}

func TestFindStatementReturnsNilWhenNoMatch(t *testing.T) {
	outer := ast.NewStyleRule(sp(), nil, nil)
	if found := FindStatement(outer, func(ast.Statement) bool { return false }); found != nil {
		t.Errorf("FindStatement() = %v, want nil", found)
	}
}

func TestAnyStatement(t *testing.T) {
	decl := ast.NewDeclaration(sp(), nil, nil, nil)
	outer := ast.NewStyleRule(sp(), nil, []ast.Statement{decl})

	if !AnyStatement(outer, func(s ast.Statement) bool { return s == decl }) {
		t.Error("AnyStatement should find decl in outer's subtree")
	}
	if AnyStatement(outer, func(s ast.Statement) bool { return false }) {
		t.Error("AnyStatement should be false when nothing matches")
	}
}

func TestContainsContentRuleFindsDirectContent(t *testing.T) {
	content := ast.NewContentRule(sp(), nil)
	body := []ast.Statement{content}

	if !ContainsContentRule(body) {
		t.Error("ContainsContentRule should find a top-level @content")
	}
}

func TestContainsContentRuleFindsNestedContent(t *testing.T) {
	content := ast.NewContentRule(sp(), nil)
	nested := ast.NewStyleRule(sp(), nil, []ast.Statement{content})

	if !ContainsContentRule([]ast.Statement{nested}) {
		t.Error("ContainsContentRule should find @content nested in a style rule")
	}
}

func TestContainsContentRuleDoesNotDescendIntoNestedMixinOrFunction(t *testing.T) {
	content := ast.NewContentRule(sp(), nil)
	nestedMixin := ast.NewMixinRule(sp(), "inner", nil, false, []ast.Statement{content})

	if ContainsContentRule([]ast.Statement{nestedMixin}) {
		t.Error("ContainsContentRule should not look inside a nested @mixin's own body")
	}
}

func TestWalkExpressionVisitsBinaryOperands(t *testing.T) {
	left := ast.NewNumberLiteral(sp(), 1, "")
	right := ast.NewNumberLiteral(sp(), 2, "")
	bin := ast.NewBinaryExpr(sp(), "+", left, right)

	var visited []ast.Expression
	WalkExpression(bin, func(e ast.Expression) { visited = append(visited, e) })

	if len(visited) != 3 || visited[0] != bin || visited[1] != left || visited[2] != right {
		t.Errorf("WalkExpression visited = %v, want [bin left right]", visited)
	}
}

func TestWalkExpressionNilIsNoOp(t *testing.T) {
	called := false
	WalkExpression(nil, func(ast.Expression) { called = true })
	if called {
		t.Error("WalkExpression(nil) should not invoke visit")
	}
}

func TestReferencesVariableFindsNestedReference(t *testing.T) {
	v := ast.NewVariableExpr(sp(), "", "width")
	expr := ast.NewBinaryExpr(sp(), "+", v, ast.NewNumberLiteral(sp(), 1, "px"))

	if !ReferencesVariable(expr, "width") {
		t.Error("ReferencesVariable should find $width inside the binary expression")
	}
	if ReferencesVariable(expr, "height") {
		t.Error("ReferencesVariable should not find an unreferenced name")
	}
}
