// Package selector implements Sass's selector data model and algorithms:
// parsing selector text into a SelectorList/ComplexSelector/
// CompoundSelector tree, resolving the parent selector (&), unifying two
// compound selectors, and the @extend engine (ExtensionStore). There is no
// teacher precedent for a real selector parser (LESS selectors are kept as
// flat []string parts in ast.Selector and spliced textually in
// renderer.go's buildSelector); this package is grounded instead on
// benbjohnson-css's ast/parser split — a small recursive-descent parser
// producing an explicit node tree over a token stream — generalizing the
// teacher's flat `extends map[string][]string` into a proper
// target-indexed ExtensionStore operating on full ComplexSelector values.
package selector

import "strings"

// Combinator separates two compound selectors inside a complex selector.
type Combinator string

const (
	Descendant Combinator = ""  // "A B"
	Child      Combinator = ">"
	Sibling    Combinator = "~"
	Adjacent   Combinator = "+"
)

// Simple is one simple selector: a type, universal, id, class, placeholder,
// attribute, parent reference, or pseudo-class/element, optionally carrying
// a nested selector list for pseudo-classes like :not()/:is()/:has().
type Simple struct {
	Kind  string // "type" | "universal" | "id" | "class" | "placeholder" | "attribute" | "parent" | "pseudo"
	Name  string
	Attr  string // raw attribute selector text, e.g. `[href^="http"]`, set when Kind == "attribute"
	Inner *List  // pseudo-class argument selector, e.g. the `S` in :not(S); nil otherwise
	NthOf string // the "An+B" part of :nth-child(An+B [of S]); empty otherwise
}

func (s Simple) String() string {
	switch s.Kind {
	case "universal":
		return "*"
	case "id":
		return "#" + s.Name
	case "class":
		return "." + s.Name
	case "placeholder":
		return "%" + s.Name
	case "attribute":
		return s.Attr
	case "parent":
		return "&"
	case "pseudo":
		var b strings.Builder
		b.WriteString(s.Name)
		if s.NthOf != "" || s.Inner != nil {
			b.WriteString("(")
			b.WriteString(s.NthOf)
			if s.Inner != nil {
				if s.NthOf != "" {
					b.WriteString(" of ")
				}
				b.WriteString(s.Inner.String())
			}
			b.WriteString(")")
		}
		return b.String()
	default:
		return s.Name
	}
}

// Compound is a sequence of simple selectors with no combinator between
// them ("a.b#c"). ContainsParent reports whether any Simple in it is the
// bare parent reference, scanning Simples on each call.
type Compound struct {
	Simples []Simple
}

func (c Compound) ContainsParent() bool {
	for _, s := range c.Simples {
		if s.Kind == "parent" {
			return true
		}
	}
	return false
}

func (c Compound) String() string {
	var b strings.Builder
	for _, s := range c.Simples {
		b.WriteString(s.String())
	}
	return b.String()
}

// Component is one (combinator, compound) pair inside a ComplexSelector;
// Combinator is the descendant combinator preceding Compound ("" for the
// first component).
type Component struct {
	Combinator Combinator
	Compound   Compound
}

// Complex is a full selector with combinators ("a > b c"). LeadingCombinator
// holds a combinator with no preceding compound (valid only inside a
// nested style rule, e.g. "> a { }").
type Complex struct {
	LeadingCombinator Combinator
	Components        []Component
}

func (c Complex) String() string {
	var parts []string
	if c.LeadingCombinator != Descendant {
		parts = append(parts, string(c.LeadingCombinator))
	}
	for i, comp := range c.Components {
		if i > 0 || c.LeadingCombinator != Descendant {
			if comp.Combinator != Descendant {
				parts = append(parts, string(comp.Combinator))
			}
		} else if comp.Combinator != Descendant {
			parts = append(parts, string(comp.Combinator))
		}
		parts = append(parts, comp.Compound.String())
	}
	return strings.Join(parts, " ")
}

// ContainsParent reports whether any compound of c references &.
func (c Complex) ContainsParent() bool {
	for _, comp := range c.Components {
		if comp.Compound.ContainsParent() {
			return true
		}
	}
	return false
}

// List is a comma-separated SelectorList ("a, b c").
type List struct {
	Complexes []Complex
}

func (l *List) String() string {
	parts := make([]string, len(l.Complexes))
	for i, c := range l.Complexes {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}
