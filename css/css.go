// Package css is the output tree the executor builds and the serializer
// walks: a mutable arena of nodes (style rules, at-rules, declarations,
// comments) addressed by index rather than pointer, so the extension
// engine can rewrite a style rule's selector in place by id without
// invalidating parent pointers held elsewhere. It is deliberately
// stdlib-only: it is grounded on benbjohnson-css's ast package (a plain,
// dependency-free node-tree shape over a token stream), which is itself
// stdlib-only, so no third-party library from the example pack has a
// natural home here — an id-indexed arena with parent back-references is
// a data-structure idiom, not a library concern.
package css

import "github.com/titpetric/sassgo/selector"

// NodeID indexes into a Stylesheet's arena. The root node always occupies
// id 0, so Stylesheet.Root is 0.
type NodeID int

// Kind discriminates the Node union.
type Kind int

const (
	KindStyleRule Kind = iota
	KindAtRule
	KindMediaRule
	KindSupportsRule
	KindKeyframeBlock
	KindDeclaration
	KindImport
	KindComment
	KindRoot
)

// Node is one arena entry. Only the fields relevant to Kind are populated;
// this mirrors a tagged union more than it mirrors idiomatic separate
// types, traded off deliberately so the arena can stay a single flat slice
// that the extension engine and serializer both index by NodeID.
type Node struct {
	Kind     Kind
	Parent   NodeID
	Children []NodeID

	// KindStyleRule / KindKeyframeBlock
	Selector *selector.List

	// KindAtRule
	Name      string
	Value     string
	Childless bool

	// KindMediaRule
	MediaQuery string

	// KindSupportsRule
	SupportsCondition string

	// KindDeclaration
	Property  string
	DeclValue string
	IsCustom  bool

	// KindImport
	URL           string
	ImportMedia   string
	ImportSupports string

	// KindComment
	Text string

	// IsGroupEnd marks the last declaration/rule of a group so the
	// serializer can decide whether to emit a blank line after it,
	// mirroring the formatter's indent bookkeeping.
	IsGroupEnd bool
}

// Stylesheet is the finalized (or still-mutable, pre-@extend-resolution)
// CSS output tree for one compiled entry point.
type Stylesheet struct {
	nodes []Node
	Root  NodeID
}

// NewStylesheet returns an empty output tree with just its root node.
func NewStylesheet() *Stylesheet {
	s := &Stylesheet{nodes: []Node{{Kind: KindRoot}}}
	s.Root = 0
	return s
}

// Node returns the node at id.
func (s *Stylesheet) Node(id NodeID) *Node { return &s.nodes[id] }

// alloc appends a new node and returns its id.
func (s *Stylesheet) alloc(n Node) NodeID {
	id := NodeID(len(s.nodes))
	s.nodes = append(s.nodes, n)
	return id
}

// AddChild allocates a new node as the last child of parent and returns
// its id. When n is a group-opening kind (style rule, at-rule, media
// rule, supports rule, keyframe block), the previously-last child of
// parent is marked IsGroupEnd so the serializer knows to separate the two
// groups with a blank line, mirroring spec.md's "after all children are
// emitted, mark the last emitted node is_group_end" bookkeeping.
func (s *Stylesheet) AddChild(parent NodeID, n Node) NodeID {
	n.Parent = parent
	id := s.alloc(n)
	siblings := s.nodes[parent].Children
	if len(siblings) > 0 && opensGroup(n.Kind) {
		s.nodes[siblings[len(siblings)-1]].IsGroupEnd = true
	}
	s.nodes[parent].Children = append(siblings, id)
	return id
}

// opensGroup reports whether a node of this kind starts a new visual
// group in Expanded output, so a blank line should separate it from
// whatever preceded it at the same nesting level.
func opensGroup(k Kind) bool {
	switch k {
	case KindStyleRule, KindAtRule, KindMediaRule, KindSupportsRule, KindKeyframeBlock:
		return true
	}
	return false
}

// Children returns the child ids of id, in source order.
func (s *Stylesheet) Children(id NodeID) []NodeID { return s.nodes[id].Children }

// Walk visits id and every descendant in document order, depth-first.
func (s *Stylesheet) Walk(id NodeID, visit func(NodeID, *Node)) {
	visit(id, s.Node(id))
	for _, child := range s.Children(id) {
		s.Walk(child, visit)
	}
}

// RemoveEmptyGroups deletes style rules and at-rules whose subtree
// contains no declaration, import, comment or childless at-rule (those
// leaf nodes are always kept, and keep their ancestors) — the finalization step that drops an @media block a
// cartesian merge emptied out, or a nested selector whose body evaluated
// to nothing.
func (s *Stylesheet) RemoveEmptyGroups(id NodeID) bool {
	n := s.Node(id)
	switch n.Kind {
	case KindDeclaration, KindImport, KindComment:
		return true
	case KindAtRule:
		if n.Childless {
			return true
		}
	}
	var kept []NodeID
	any := false
	for _, c := range n.Children {
		if s.RemoveEmptyGroups(c) {
			kept = append(kept, c)
			any = true
		}
	}
	n.Children = kept
	if n.Kind == KindRoot {
		return true
	}
	return any
}
