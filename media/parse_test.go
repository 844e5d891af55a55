package media

import "testing"

func TestParseSimpleType(t *testing.T) {
	list, err := Parse("screen")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(list.Queries) != 1 || list.Queries[0].Type != "screen" {
		t.Errorf("Queries = %+v", list.Queries)
	}
}

func TestParseTypeAndFeature(t *testing.T) {
	list, err := Parse("screen and (min-width: 768px)")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	q := list.Queries[0]
	if q.Type != "screen" || len(q.Features) != 1 {
		t.Fatalf("query = %+v", q)
	}
	if q.Features[0].Name != "min-width" || q.Features[0].Value != "768px" {
		t.Errorf("Features[0] = %+v", q.Features[0])
	}
}

func TestParseBooleanFeature(t *testing.T) {
	list, err := Parse("(color)")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if list.Queries[0].Features[0].Value != "" {
		t.Errorf("Features[0] = %+v, want empty value for boolean feature", list.Queries[0].Features[0])
	}
}

func TestParseModifier(t *testing.T) {
	list, err := Parse("not screen")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if list.Queries[0].Modifier != "not" || list.Queries[0].Type != "screen" {
		t.Errorf("query = %+v", list.Queries[0])
	}
}

func TestParseMultipleCommaQueries(t *testing.T) {
	list, err := Parse("screen, print")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(list.Queries) != 2 || list.Queries[0].Type != "screen" || list.Queries[1].Type != "print" {
		t.Errorf("Queries = %+v", list.Queries)
	}
}

func TestParseUnexpectedTokenErrors(t *testing.T) {
	if _, err := Parse("screen bogus"); err == nil {
		t.Error("an unexpected bare token after the type should be a parse error")
	}
}

func TestParseIgnoresCommaInsideParens(t *testing.T) {
	list, err := Parse("(min-width: 1px, 2px)")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(list.Queries) != 1 {
		t.Fatalf("Queries = %+v, want 1", list.Queries)
	}
}

func TestQueryString(t *testing.T) {
	q := Query{Modifier: "not", Type: "screen", Features: []Feature{{Name: "min-width", Value: "768px"}}}
	if got, want := q.String(), "not screen and (min-width: 768px)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestListEmpty(t *testing.T) {
	var l List
	if !l.Empty() {
		t.Error("a zero-value List should be Empty")
	}
	l.Queries = append(l.Queries, Query{Type: "screen"})
	if l.Empty() {
		t.Error("a List with a query should not be Empty")
	}
}

func TestMergeCombinesCompatibleTypes(t *testing.T) {
	outer, _ := Parse("screen")
	inner, _ := Parse("(min-width: 768px)")

	merged, unrepresentable := Merge(outer, inner)
	if unrepresentable {
		t.Fatal("merging screen with a feature-only query should be representable")
	}
	if len(merged.Queries) != 1 || merged.Queries[0].Type != "screen" || len(merged.Queries[0].Features) != 1 {
		t.Errorf("merged = %+v", merged.Queries)
	}
}

func TestMergeConflictingTypesDropsPair(t *testing.T) {
	outer, _ := Parse("screen")
	inner, _ := Parse("print")

	merged, unrepresentable := Merge(outer, inner)
	if !unrepresentable {
		t.Errorf("merged = %+v, want unrepresentable=true for conflicting types", merged)
	}
}

func TestMergeModifierIsUnrepresentable(t *testing.T) {
	outer, _ := Parse("not screen")
	inner, _ := Parse("(min-width: 768px)")

	_, unrepresentable := Merge(outer, inner)
	if !unrepresentable {
		t.Error("merging a 'not' query should be unrepresentable, falling back to nesting")
	}
}

func TestMergeCartesianProduct(t *testing.T) {
	outer, _ := Parse("screen, print")
	inner, _ := Parse("(min-width: 768px)")

	merged, unrepresentable := Merge(outer, inner)
	if unrepresentable {
		t.Fatal("merging should be representable for both alternatives")
	}
	if len(merged.Queries) != 2 {
		t.Errorf("merged.Queries = %+v, want 2 (cartesian product of outer alternatives)", merged.Queries)
	}
}
