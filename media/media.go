// Package media implements media-query parsing and the cartesian-product
// merge algorithm @media nesting requires: combining an outer query list
// with an inner one so "@media A { @media B { ... } }" becomes a single
// flattened "@media (A and B) { ... }" list wherever that's representable,
// falling back to nested @media when it isn't. The bubble-up control flow
// around it is grounded on the teacher's renderAtRuleWithContext
// (github.com/titpetric/lessgo's renderer/renderer.go), kept verbatim in
// spirit; the cartesian merge itself is new, since LESS media queries are
// spliced textually rather than merged algebraically.
package media

import "strings"

// Feature is one parenthesized media feature, e.g. "(min-width: 600px)".
type Feature struct {
	Name  string
	Value string // raw text after the colon, empty for a boolean feature like "(color)"
}

func (f Feature) String() string {
	if f.Value == "" {
		return "(" + f.Name + ")"
	}
	return "(" + f.Name + ": " + f.Value + ")"
}

// Query is one comma-separated entry of a media query list:
// "[not|only] <type> [and <feature>]*" or a bare feature list with no type.
type Query struct {
	Modifier string // "not" | "only" | ""
	Type     string // "screen", "print", "all", ... ; "" when the query is feature-only
	Features []Feature
}

func (q Query) String() string {
	var parts []string
	if q.Modifier != "" {
		parts = append(parts, q.Modifier)
	}
	if q.Type != "" {
		parts = append(parts, q.Type)
	}
	for _, f := range q.Features {
		if len(parts) > 0 {
			parts = append(parts, "and")
		}
		parts = append(parts, f.String())
	}
	return strings.Join(parts, " ")
}

// List is a comma-separated media query list; each Query is an
// independent alternative (OR semantics between entries, AND within one).
type List struct {
	Queries []Query
}

func (l List) String() string {
	parts := make([]string, len(l.Queries))
	for i, q := range l.Queries {
		parts[i] = q.String()
	}
	return strings.Join(parts, ", ")
}

// Merge combines outer and inner query lists for @media nesting: each pair
// (outer query, inner query) either merges into one query or contributes
// nothing, and merged is the list of every pair that did merge.
// unrepresentable is true exactly when no pair merged; the caller then
// leaves the inner @media nested inside the outer one rather than
// flattening. A pair that fails on conflicting types and a pair that fails
// on a not/only modifier are not told apart.
func Merge(outer, inner List) (merged List, unrepresentable bool) {
	any := false
	for _, o := range outer.Queries {
		for _, i := range inner.Queries {
			q, ok := mergeQuery(o, i)
			if !ok {
				continue
			}
			merged.Queries = append(merged.Queries, q)
			any = true
		}
	}
	return merged, !any
}

// mergeQuery merges a single outer/inner query pair. Two different,
// non-"all" types never both apply, so the pair contributes nothing
// (returns ok=false, the "drop this pair" case used by @media screen
// nested inside @media print). A pair in which either query carries a
// "not"/"only" modifier is not merged either (ok=false).
func mergeQuery(a, b Query) (Query, bool) {
	if a.Modifier != "" || b.Modifier != "" {
		return Query{}, false
	}
	typ := a.Type
	switch {
	case a.Type == "" || a.Type == "all":
		typ = b.Type
	case b.Type == "" || b.Type == "all":
		typ = a.Type
	case !strings.EqualFold(a.Type, b.Type):
		return Query{}, false
	}
	out := Query{Type: typ}
	out.Features = append(out.Features, a.Features...)
	out.Features = append(out.Features, b.Features...)
	return out, true
}

// Empty reports whether l has no queries at all, meaning the @media block
// should be dropped silently (an empty query list matches nothing useful).
func (l List) Empty() bool { return len(l.Queries) == 0 }
