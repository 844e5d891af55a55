package selector

import "testing"

func TestUnifyCompoundMergesDisjointSimples(t *testing.T) {
	a := mustParse(t, ".a").Complexes[0].Components[0].Compound
	b := mustParse(t, ".b").Complexes[0].Components[0].Compound

	merged, ok := UnifyCompound(a, b)
	if !ok {
		t.Fatal("UnifyCompound should succeed for disjoint classes")
	}
	if got, want := merged.String(), ".a.b"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestUnifyCompoundConflictingTypesFail(t *testing.T) {
	a := mustParse(t, "div").Complexes[0].Components[0].Compound
	b := mustParse(t, "span").Complexes[0].Components[0].Compound

	if _, ok := UnifyCompound(a, b); ok {
		t.Error("UnifyCompound should fail for two different type selectors")
	}
}

func TestUnifyCompoundConflictingIDsFail(t *testing.T) {
	a := mustParse(t, "#a").Complexes[0].Components[0].Compound
	b := mustParse(t, "#b").Complexes[0].Components[0].Compound

	if _, ok := UnifyCompound(a, b); ok {
		t.Error("UnifyCompound should fail for two different ids")
	}
}

func TestUnifyCompoundSameTypeSucceeds(t *testing.T) {
	a := mustParse(t, "div.a").Complexes[0].Components[0].Compound
	b := mustParse(t, "div.b").Complexes[0].Components[0].Compound

	merged, ok := UnifyCompound(a, b)
	if !ok {
		t.Fatal("UnifyCompound should succeed when both sides agree on the type")
	}
	if got, want := merged.String(), "div.a.b"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestWeaveEmptySideReturnsOther(t *testing.T) {
	b := mustParse(t, "a").Complexes[0]
	result := Weave(Complex{}, b)
	if len(result) != 1 || result[0].String() != "a" {
		t.Errorf("Weave(empty, b) = %+v, want [a]", result)
	}
}

func TestWeaveDescendantMergesTrailingCompounds(t *testing.T) {
	a := mustParse(t, ".a").Complexes[0]
	b := mustParse(t, ".b").Complexes[0]

	result := Weave(a, b)
	if len(result) != 1 {
		t.Fatalf("Weave = %+v, want a single merged result", result)
	}
	if got, want := result[0].String(), ".a.b"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestWeaveFallsBackToBothOrderingsWhenUnmergeable(t *testing.T) {
	a := mustParse(t, "div").Complexes[0]
	b := mustParse(t, "span").Complexes[0]

	result := Weave(a, b)
	if len(result) != 2 {
		t.Fatalf("Weave = %+v, want 2 orderings when unify fails", result)
	}
	if result[0].String() != "div span" || result[1].String() != "span div" {
		t.Errorf("Weave orderings = %q, %q", result[0].String(), result[1].String())
	}
}
