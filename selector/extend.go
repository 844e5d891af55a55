package selector

import "fmt"

// extension is one registered `@extend target` rule: extender is the
// complex selector of the style rule the @extend appeared in, target is
// the compound (or bare simple, historically) being extended, and
// mediaContext restricts the extension to style rules nested in a
// matching @media (nil = unrestricted). Optional marks `@extend ... !optional`.
type extension struct {
	Extender     Complex
	Target       Compound
	MediaContext []string // serialized query strings, nil = applies everywhere
	Optional     bool
	matched      bool
}

// ExtensionStore indexes every @extend by the target it extends, so
// Apply only has to look at style rules whose selector contains a simple
// selector that's actually targeted. It generalizes the teacher's flat
// `renderer.extends map[string][]string` (a plain target-name ->
// extender-string-list map with no unification) into a structure that
// re-unifies real ComplexSelector values and supports the
// optional/non-optional distinction and @media-scoped extension.
type ExtensionStore struct {
	byTarget map[string][]*extension
}

func NewExtensionStore() *ExtensionStore {
	return &ExtensionStore{byTarget: make(map[string][]*extension)}
}

// Register adds one @extend rule. target must be a single compound
// selector with exactly one simple selector, per the historical
// restriction spec.md preserves ("a complex @extend target is no longer
// supported").
func (s *ExtensionStore) Register(extender Complex, target Compound, mediaContext []string, optional bool) error {
	if len(target.Simples) != 1 {
		return fmt.Errorf("@extend may only target a single simple selector")
	}
	key := target.Simples[0].String()
	s.byTarget[key] = append(s.byTarget[key], &extension{
		Extender: extender, Target: target, MediaContext: mediaContext, Optional: optional,
	})
	return nil
}

// Apply rewrites list by adding, for every compound containing a targeted
// simple selector, the weave of every matching extension's extender
// against the compound with that simple selector removed — per
// spec.md's "replace occurrences of target_simple in each compound of the
// rule's selector with the extender, then unify" — deduplicated by string
// form. currentMedia is the query-context of the style rule being
// finalized, used to filter media-scoped extensions.
func (s *ExtensionStore) Apply(list *List, currentMedia []string) *List {
	out := &List{}
	seen := make(map[string]bool)
	add := func(c Complex) {
		key := c.String()
		if seen[key] {
			return
		}
		seen[key] = true
		out.Complexes = append(out.Complexes, c)
	}

	for _, complex := range list.Complexes {
		add(complex)
		for compIdx, comp := range complex.Components {
			for simpleIdx, simple := range comp.Compound.Simples {
				for _, ext := range s.byTarget[simple.String()] {
					if !mediaCompatible(ext.MediaContext, currentMedia) {
						continue
					}
					ext.matched = true
					remainder := removeSimpleAt(comp.Compound, simpleIdx)
					withoutTarget := replaceComponentCompound(complex, compIdx, remainder)
					for _, woven := range Weave(ext.Extender, withoutTarget) {
						add(woven)
					}
				}
			}
		}
	}
	return out
}

// removeSimpleAt returns a copy of c with the simple selector at idx
// dropped, the "remainder" left over after substituting an @extend target
// out of a compound.
func removeSimpleAt(c Compound, idx int) Compound {
	out := Compound{Simples: make([]Simple, 0, len(c.Simples)-1)}
	for i, simple := range c.Simples {
		if i == idx {
			continue
		}
		out.Simples = append(out.Simples, simple)
	}
	return out
}

// replaceComponentCompound returns a copy of c with the compound at
// component index idx swapped for compound, leaving its combinator and
// every other component untouched.
func replaceComponentCompound(c Complex, idx int, compound Compound) Complex {
	out := Complex{LeadingCombinator: c.LeadingCombinator}
	out.Components = append(out.Components, c.Components...)
	out.Components[idx] = Component{Combinator: c.Components[idx].Combinator, Compound: compound}
	return out
}

func mediaCompatible(required, current []string) bool {
	if len(required) == 0 {
		return true
	}
	if len(required) != len(current) {
		return false
	}
	for i := range required {
		if required[i] != current[i] {
			return false
		}
	}
	return true
}

// Unmatched returns every non-optional extension that never matched any
// selector, the condition spec.md's error-handling section requires be
// reported as a fatal "not found" error once the whole stylesheet has
// been evaluated.
func (s *ExtensionStore) Unmatched() []string {
	var out []string
	for _, list := range s.byTarget {
		for _, ext := range list {
			if !ext.matched && !ext.Optional {
				out = append(out, ext.Target.String())
			}
		}
	}
	return out
}
