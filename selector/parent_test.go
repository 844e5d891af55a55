package selector

import "testing"

func mustParse(t *testing.T, text string) *List {
	t.Helper()
	list, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", text, err)
	}
	return list
}

func TestResolveParentNilParentReturnsChildUnchanged(t *testing.T) {
	child := mustParse(t, "a")
	resolved, err := ResolveParent(child, nil)
	if err != nil {
		t.Fatalf("ResolveParent error: %v", err)
	}
	if resolved != child {
		t.Error("ResolveParent with nil parent should return child unchanged")
	}
}

func TestResolveParentImplicitPrepend(t *testing.T) {
	parent := mustParse(t, ".outer")
	child := mustParse(t, ".inner")

	resolved, err := ResolveParent(child, parent)
	if err != nil {
		t.Fatalf("ResolveParent error: %v", err)
	}
	if got, want := resolved.String(), ".outer .inner"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestResolveParentBareAmpersandSubstitution(t *testing.T) {
	parent := mustParse(t, ".outer")
	child := mustParse(t, "&.active")

	resolved, err := ResolveParent(child, parent)
	if err != nil {
		t.Fatalf("ResolveParent error: %v", err)
	}
	if got, want := resolved.String(), ".outer.active"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestResolveParentCartesianProduct(t *testing.T) {
	parent := mustParse(t, ".a, .b")
	child := mustParse(t, "&.x")

	resolved, err := ResolveParent(child, parent)
	if err != nil {
		t.Fatalf("ResolveParent error: %v", err)
	}
	if len(resolved.Complexes) != 2 {
		t.Fatalf("Complexes = %+v, want 2 (one per parent alternative)", resolved.Complexes)
	}
	if got, want := resolved.String(), ".a.x, .b.x"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestResolveParentMultiComponentParentSubstitution(t *testing.T) {
	parent := mustParse(t, ".outer .mid")
	child := mustParse(t, "&.active")

	resolved, err := ResolveParent(child, parent)
	if err != nil {
		t.Fatalf("ResolveParent error: %v", err)
	}
	if got, want := resolved.String(), ".outer .mid.active"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
