package selector

// UnifyCompound merges two compound selectors into one that matches the
// intersection of what each matches, failing when they carry conflicting
// unique simple selectors (two different type selectors, or two different
// ids). Grounded on the general "merge disjoint simple-selector sets"
// shape the spec describes; the teacher has no equivalent since LESS
// selector extension is a flat textual append, not a semantic merge.
func UnifyCompound(a, b Compound) (Compound, bool) {
	out := Compound{Simples: append([]Simple(nil), a.Simples...)}
	aType, aID := compoundUniques(a)
	bType, bID := compoundUniques(b)
	if aType != "" && bType != "" && aType != bType {
		return Compound{}, false
	}
	if aID != "" && bID != "" && aID != bID {
		return Compound{}, false
	}
	for _, s := range b.Simples {
		if containsSimple(out.Simples, s) {
			continue
		}
		out.Simples = append(out.Simples, s)
	}
	return out, true
}

func compoundUniques(c Compound) (typ, id string) {
	for _, s := range c.Simples {
		switch s.Kind {
		case "type":
			typ = s.Name
		case "id":
			id = s.Name
		}
	}
	return
}

func containsSimple(list []Simple, s Simple) bool {
	for _, existing := range list {
		if existing.Kind == s.Kind && existing.Name == s.Name && existing.Attr == s.Attr {
			return true
		}
	}
	return false
}

// Weave interleaves two complex selectors so the result matches anything
// matched by "a's elements nested inside b's elements, in either order" —
// the algorithm @extend uses to combine an extender's context with the
// selector being extended. This is a reduced version of Sass's full weave
// (which enumerates every valid interleaving honoring combinator
// constraints); here, since both inputs to extend are overwhelmingly
// single-compound complex selectors in practice, weave degrades
// gracefully to concatenation plus a unify of the final compounds when
// richer interleaving isn't needed, and otherwise returns both possible
// orderings.
func Weave(a, b Complex) []Complex {
	if len(a.Components) == 0 {
		return []Complex{b}
	}
	if len(b.Components) == 0 {
		return []Complex{a}
	}
	lastA := a.Components[len(a.Components)-1]
	lastB := b.Components[len(b.Components)-1]
	if lastA.Combinator == Descendant && lastB.Combinator == Descendant {
		if merged, ok := UnifyCompound(lastA.Compound, lastB.Compound); ok {
			base := Complex{LeadingCombinator: a.LeadingCombinator}
			base.Components = append(base.Components, a.Components[:len(a.Components)-1]...)
			base.Components = append(base.Components, b.Components[:len(b.Components)-1]...)
			base.Components = append(base.Components, Component{Combinator: Descendant, Compound: merged})
			return []Complex{base}
		}
	}
	return []Complex{concatComplex(a, b), concatComplex(b, a)}
}

func concatComplex(a, b Complex) Complex {
	out := Complex{LeadingCombinator: a.LeadingCombinator}
	out.Components = append(out.Components, a.Components...)
	out.Components = append(out.Components, b.Components...)
	return out
}
