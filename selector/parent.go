package selector

// ResolveParent substitutes the enclosing style rule's selector list for
// every `&` in child, cartesian-producting when both sides have multiple
// complex selectors, and implicitly prepending the parent when child
// contains no `&` at all (the common nested-rule case: "a { b { } }" means
// "a b"), per spec.md's parent-resolution rule. When parent is nil (a
// top-level style rule, or inside an @at-root excluding style rules),
// child is returned unchanged and must not itself contain `&`.
func ResolveParent(child *List, parent *List) (*List, error) {
	if parent == nil {
		return child, nil
	}
	out := &List{}
	for _, cc := range child.Complexes {
		if !cc.ContainsParent() {
			for _, pc := range parent.Complexes {
				out.Complexes = append(out.Complexes, prependParent(pc, cc))
			}
			continue
		}
		for _, pc := range parent.Complexes {
			resolved, err := substituteParent(cc, pc)
			if err != nil {
				return nil, err
			}
			out.Complexes = append(out.Complexes, resolved...)
		}
	}
	return out, nil
}

// prependParent builds "parent child" when child has no & of its own.
func prependParent(parentComplex, child Complex) Complex {
	out := Complex{LeadingCombinator: parentComplex.LeadingCombinator}
	out.Components = append(out.Components, parentComplex.Components...)
	out.Components = append(out.Components, child.Components...)
	return out
}

// substituteParent replaces every parent-reference simple selector in
// child's compounds with parentComplex's trailing compound, splicing
// parentComplex's other components in ahead of the substituted compound.
// A compound like "&.active" becomes "parent-compound.active"; a bare "&"
// becomes the whole parentComplex.
func substituteParent(child, parentComplex Complex) ([]Complex, error) {
	result := Complex{LeadingCombinator: child.LeadingCombinator}
	for _, comp := range child.Components {
		if !comp.Compound.ContainsParent() {
			result.Components = append(result.Components, comp)
			continue
		}
		if len(comp.Compound.Simples) == 1 {
			// Bare "&": splice in the whole parent complex at this position.
			result.Components = append(result.Components, parentComplex.Components...)
			continue
		}
		// "&.foo": merge parent's trailing compound with the remaining
		// simples from this compound, keeping parent's earlier components.
		if len(parentComplex.Components) == 0 {
			result.Components = append(result.Components, comp)
			continue
		}
		result.Components = append(result.Components, parentComplex.Components[:len(parentComplex.Components)-1]...)
		merged := Compound{}
		trailing := parentComplex.Components[len(parentComplex.Components)-1].Compound
		merged.Simples = append(merged.Simples, trailing.Simples...)
		for _, s := range comp.Compound.Simples {
			if s.Kind != "parent" {
				merged.Simples = append(merged.Simples, s)
			}
		}
		mergedComb := comp.Combinator
		if len(result.Components) == 0 {
			mergedComb = parentComplex.Components[0].Combinator
		}
		result.Components = append(result.Components, Component{Combinator: mergedComb, Compound: merged})
	}
	return []Complex{result}, nil
}
