// Package serializer renders a css.Stylesheet arena to CSS text. It
// generalizes the teacher's Formatter (github.com/titpetric/lessgo's
// formatter/formatter.go) from a direct ast.Statement walk into a walk over
// the evaluator's output tree (css.Node, built by package exec), keeping
// the indent-tracking bytes.Buffer-writer shape and the "declarations
// first, then nested rules, blank line between groups" layout.
package serializer

import (
	"bytes"

	"github.com/titpetric/sassgo/css"
)

// Style controls output layout. Compressed drops newlines and indentation;
// the single spaces before `{` and after `:` are kept.
type Style int

const (
	Expanded Style = iota
	Compressed
)

// Serializer renders a css.Stylesheet with the given Style and indent
// width (ignored when Compressed).
type Serializer struct {
	Style      Style
	IndentSize int
	output     bytes.Buffer
	indent     int
}

// New creates a Serializer. indentSize is only meaningful for Expanded.
func New(style Style, indentSize int) *Serializer {
	if indentSize <= 0 {
		indentSize = 2
	}
	return &Serializer{Style: style, IndentSize: indentSize}
}

// Render serializes sheet starting at its Root node.
func (s *Serializer) Render(sheet *css.Stylesheet) string {
	s.output.Reset()
	s.indent = 0
	children := sheet.Children(sheet.Root)
	s.writeChildren(sheet, children, true)
	return s.output.String()
}

func (s *Serializer) writeChildren(sheet *css.Stylesheet, ids []css.NodeID, top bool) {
	for i, id := range ids {
		n := sheet.Node(id)
		if s.Style == Expanded && i > 0 && sheet.Node(ids[i-1]).IsGroupEnd {
			s.output.WriteString("\n")
		}
		s.writeNode(sheet, id, n)
	}
}

func (s *Serializer) writeNode(sheet *css.Stylesheet, id css.NodeID, n *css.Node) {
	switch n.Kind {
	case css.KindComment:
		s.writeIndent()
		s.output.WriteString(n.Text)
		s.nl()
	case css.KindDeclaration:
		s.writeIndent()
		s.output.WriteString(n.Property)
		s.output.WriteString(":")
		s.space()
		s.output.WriteString(n.DeclValue)
		s.output.WriteString(";")
		s.nl()
	case css.KindImport:
		s.writeIndent()
		s.output.WriteString("@import ")
		s.output.WriteString(n.URL)
		if n.ImportMedia != "" {
			s.output.WriteString(" ")
			s.output.WriteString(n.ImportMedia)
		}
		s.output.WriteString(";")
		s.nl()
	case css.KindStyleRule:
		s.writeIndent()
		if n.Selector != nil {
			s.output.WriteString(n.Selector.String())
		}
		s.openBlock(sheet, id, n)
	case css.KindMediaRule:
		s.writeIndent()
		s.output.WriteString("@media ")
		s.output.WriteString(n.MediaQuery)
		s.openBlock(sheet, id, n)
	case css.KindSupportsRule:
		s.writeIndent()
		s.output.WriteString("@supports ")
		s.output.WriteString(n.SupportsCondition)
		s.openBlock(sheet, id, n)
	case css.KindKeyframeBlock:
		s.writeIndent()
		s.output.WriteString(n.Name)
		s.openBlock(sheet, id, n)
	case css.KindAtRule:
		s.writeIndent()
		s.output.WriteString("@")
		s.output.WriteString(n.Name)
		if n.Value != "" {
			s.output.WriteString(" ")
			s.output.WriteString(n.Value)
		}
		if n.Childless {
			s.output.WriteString(";")
			s.nl()
			return
		}
		s.openBlock(sheet, id, n)
	case css.KindRoot:
		s.writeChildren(sheet, sheet.Children(id), false)
	}
}

func (s *Serializer) openBlock(sheet *css.Stylesheet, id css.NodeID, n *css.Node) {
	s.output.WriteString(" {")
	s.nl()
	s.indent++
	s.writeChildren(sheet, sheet.Children(id), false)
	s.indent--
	s.writeIndent()
	s.output.WriteString("}")
	s.nl()
}

func (s *Serializer) writeIndent() {
	if s.Style == Compressed {
		return
	}
	for i := 0; i < s.indent*s.IndentSize; i++ {
		s.output.WriteByte(' ')
	}
}

func (s *Serializer) nl() {
	if s.Style == Compressed {
		return
	}
	s.output.WriteString("\n")
}

func (s *Serializer) space() {
	s.output.WriteString(" ")
}
