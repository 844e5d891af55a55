package selector

import "testing"

func TestExtensionStoreRegisterRejectsMultiSimpleTarget(t *testing.T) {
	store := NewExtensionStore()
	extender := mustParse(t, ".extender").Complexes[0]
	target := Compound{Simples: []Simple{{Kind: "type", Name: "a"}, {Kind: "class", Name: "b"}}}

	if err := store.Register(extender, target, nil, false); err == nil {
		t.Error("Register should reject a target with more than one simple selector")
	}
}

func TestExtensionStoreApplyAddsExtenderSelector(t *testing.T) {
	store := NewExtensionStore()
	extender := mustParse(t, ".extender").Complexes[0]
	target := mustParse(t, ".target").Complexes[0].Components[0].Compound

	if err := store.Register(extender, target, nil, false); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	list := mustParse(t, ".target")
	result := store.Apply(list, nil)

	// The target simple is substituted out of the compound before weaving,
	// so extending a whole single-simple compound just adds the extender
	// as a sibling alternative rather than merging into one compound.
	if got, want := result.String(), ".target, .extender"; got != want {
		t.Errorf("Apply() = %q, want %q", got, want)
	}
}

func TestExtensionStoreApplyLeavesNonMatchingSelectorsAlone(t *testing.T) {
	store := NewExtensionStore()
	extender := mustParse(t, ".extender").Complexes[0]
	target := mustParse(t, ".target").Complexes[0].Components[0].Compound
	store.Register(extender, target, nil, false)

	list := mustParse(t, ".other")
	result := store.Apply(list, nil)

	if got, want := result.String(), ".other"; got != want {
		t.Errorf("Apply() = %q, want %q", got, want)
	}
}

func TestExtensionStoreApplyDeduplicates(t *testing.T) {
	store := NewExtensionStore()
	extender := mustParse(t, ".extender").Complexes[0]
	target := mustParse(t, ".target").Complexes[0].Components[0].Compound
	store.Register(extender, target, nil, false)

	// Applying twice over the already-extended list should not produce a
	// duplicate woven entry, since Apply dedups by string form.
	list := mustParse(t, ".target")
	first := store.Apply(list, nil)
	second := store.Apply(first, nil)

	count := 0
	for _, c := range second.Complexes {
		if c.String() == ".extender" {
			count++
		}
	}
	if count != 1 {
		t.Errorf(".extender appeared %d times in %v, want 1", count, second.Complexes)
	}
}

func TestExtensionStoreApplyRespectsMediaContext(t *testing.T) {
	store := NewExtensionStore()
	extender := mustParse(t, ".extender").Complexes[0]
	target := mustParse(t, ".target").Complexes[0].Components[0].Compound
	store.Register(extender, target, []string{"(min-width: 768px)"}, false)

	list := mustParse(t, ".target")

	withoutMedia := store.Apply(list, nil)
	if got, want := withoutMedia.String(), ".target"; got != want {
		t.Errorf("Apply() with no media context = %q, want %q (extension should not apply)", got, want)
	}

	withMedia := store.Apply(list, []string{"(min-width: 768px)"})
	if got, want := withMedia.String(), ".target, .extender"; got != want {
		t.Errorf("Apply() with matching media context = %q, want %q", got, want)
	}
}

func TestExtensionStoreUnmatchedReportsUnusedRequiredExtends(t *testing.T) {
	store := NewExtensionStore()
	extender := mustParse(t, ".extender").Complexes[0]
	required := mustParse(t, ".required").Complexes[0].Components[0].Compound
	optional := mustParse(t, ".optional-target").Complexes[0].Components[0].Compound

	store.Register(extender, required, nil, false)
	store.Register(extender, optional, nil, true)

	// Neither target ever appears in an Apply call, so the required one
	// should be reported while the optional one is not.
	unmatched := store.Unmatched()
	if len(unmatched) != 1 || unmatched[0] != ".required" {
		t.Errorf("Unmatched() = %v, want [.required]", unmatched)
	}
}
