package selector

import (
	"fmt"
	"strings"
)

// parser is a small recursive-descent parser over already-interpolated
// selector text, grounded on benbjohnson-css/parser's "hand-rolled
// recursive-descent over a rune slice with an explicit position cursor"
// shape rather than a generated grammar, since a selector grammar this
// small doesn't need one.
type parser struct {
	src []rune
	pos int
}

// Parse parses CSS/Sass selector text (already interpolation-resolved)
// into a List. It accepts the pseudo-class inner-selector extensions
// (:not()/:is()/:matches()/:has()/:nth-*(of S)) beyond plain CSS.
func Parse(text string) (*List, error) {
	p := &parser{src: []rune(strings.TrimSpace(text))}
	list, err := p.parseList()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("selector: unexpected trailing text %q", string(p.src[p.pos:]))
	}
	return list, nil
}

func (p *parser) parseList() (*List, error) {
	var list List
	for {
		c, err := p.parseComplex()
		if err != nil {
			return nil, err
		}
		list.Complexes = append(list.Complexes, c)
		p.skipSpace()
		if p.peek() == ',' {
			p.pos++
			p.skipSpace()
			continue
		}
		break
	}
	return &list, nil
}

func (p *parser) parseComplex() (Complex, error) {
	var c Complex
	p.skipSpace()
	if comb, ok := p.tryCombinator(); ok {
		c.LeadingCombinator = comb
		p.skipSpace()
	}
	for {
		compound, err := p.parseCompound()
		if err != nil {
			return c, err
		}
		if len(compound.Simples) == 0 && len(c.Components) == 0 {
			return c, fmt.Errorf("selector: expected a compound selector")
		}
		comb := Descendant
		if len(c.Components) == 0 && c.LeadingCombinator != Descendant {
			comb = c.LeadingCombinator
			c.LeadingCombinator = Descendant
		}
		c.Components = append(c.Components, Component{Combinator: comb, Compound: compound})
		spaced := p.skipSpace()
		if p.atCompoundEnd() {
			break
		}
		if nextComb, ok := p.tryCombinator(); ok {
			p.skipSpace()
			compound2, err := p.parseCompound()
			if err != nil {
				return c, err
			}
			c.Components = append(c.Components, Component{Combinator: nextComb, Compound: compound2})
			p.skipSpace()
			if p.atCompoundEnd() {
				break
			}
			continue
		}
		if !spaced {
			break
		}
	}
	return c, nil
}

func (p *parser) atCompoundEnd() bool {
	return p.pos >= len(p.src) || p.peek() == ','
}

func (p *parser) tryCombinator() (Combinator, bool) {
	switch p.peek() {
	case '>', '~', '+':
		c := Combinator(p.peek())
		p.pos++
		return c, true
	}
	return Descendant, false
}

func (p *parser) parseCompound() (Compound, error) {
	var c Compound
	for {
		s, ok, err := p.parseSimple()
		if err != nil {
			return c, err
		}
		if !ok {
			break
		}
		c.Simples = append(c.Simples, s)
	}
	return c, nil
}

func (p *parser) parseSimple() (Simple, bool, error) {
	switch p.peek() {
	case 0:
		return Simple{}, false, nil
	case '&':
		p.pos++
		return Simple{Kind: "parent"}, true, nil
	case '*':
		p.pos++
		return Simple{Kind: "universal"}, true, nil
	case '#':
		p.pos++
		name := p.parseIdent()
		return Simple{Kind: "id", Name: name}, true, nil
	case '.':
		p.pos++
		name := p.parseIdent()
		return Simple{Kind: "class", Name: name}, true, nil
	case '%':
		p.pos++
		name := p.parseIdent()
		return Simple{Kind: "placeholder", Name: name}, true, nil
	case '[':
		return p.parseAttribute()
	case ':':
		return p.parsePseudo()
	}
	if isIdentStart(p.peek()) {
		name := p.parseIdent()
		if name == "" {
			return Simple{}, false, nil
		}
		return Simple{Kind: "type", Name: name}, true, nil
	}
	return Simple{}, false, nil
}

func (p *parser) parseAttribute() (Simple, bool, error) {
	start := p.pos
	depth := 0
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '[':
			depth++
		case ']':
			depth--
			p.pos++
			if depth == 0 {
				return Simple{Kind: "attribute", Attr: string(p.src[start:p.pos])}, true, nil
			}
			continue
		}
		p.pos++
	}
	return Simple{}, false, fmt.Errorf("selector: unterminated attribute selector")
}

// pseudosWithSelectorArg take a nested selector list as their argument.
var pseudosWithSelectorArg = map[string]bool{
	"not": true, "is": true, "matches": true, "has": true, "where": true,
	"host": true, "host-context": true, "current": true,
}

// pseudosWithNth take an "An+B [of S]" argument.
var pseudosWithNth = map[string]bool{
	"nth-child": true, "nth-last-child": true, "nth-of-type": true, "nth-last-of-type": true,
}

func (p *parser) parsePseudo() (Simple, bool, error) {
	p.pos++ // first ':'
	double := false
	if p.peek() == ':' {
		p.pos++
		double = true
	}
	name := p.parseIdent()
	if name == "" {
		return Simple{}, false, fmt.Errorf("selector: expected pseudo-class name")
	}
	s := Simple{Kind: "pseudo", Name: pseudoPrefix(double) + name}
	if p.peek() != '(' {
		return s, true, nil
	}
	p.pos++ // '('
	lname := strings.ToLower(name)
	switch {
	case pseudosWithNth[lname]:
		nth, rest := p.parseNth()
		s.NthOf = nth
		if rest {
			if err := p.consumeLiteral("of"); err != nil {
				return s, false, err
			}
			p.skipSpace()
			inner, err := p.parseList()
			if err != nil {
				return s, false, err
			}
			s.Inner = inner
		}
	case pseudosWithSelectorArg[lname]:
		inner, err := p.parseList()
		if err != nil {
			return s, false, err
		}
		s.Inner = inner
	default:
		start := p.pos
		depth := 1
		for p.pos < len(p.src) && depth > 0 {
			switch p.src[p.pos] {
			case '(':
				depth++
			case ')':
				depth--
			}
			p.pos++
		}
		s.NthOf = string(p.src[start : p.pos-1])
		return p.expectCloseAndReturn(s)
	}
	return p.expectCloseAndReturn(s)
}

func pseudoPrefix(double bool) string {
	if double {
		return "::"
	}
	return ":"
}

func (p *parser) expectCloseAndReturn(s Simple) (Simple, bool, error) {
	p.skipSpace()
	if p.peek() != ')' {
		return s, false, fmt.Errorf("selector: expected ) to close %s()", s.Name)
	}
	p.pos++
	return s, true, nil
}

func (p *parser) consumeLiteral(lit string) error {
	p.skipSpace()
	for _, r := range lit {
		if p.peek() != r {
			return fmt.Errorf("selector: expected %q", lit)
		}
		p.pos++
	}
	return nil
}

// parseNth consumes an "An+B", "odd", "even" or bare integer nth-expression,
// reporting hasOf when a trailing " of " follows (only valid for
// nth-child/nth-last-child).
func (p *parser) parseNth() (string, bool) {
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] != ')' && !(p.src[p.pos] == 'o' && p.looksLikeOf()) {
		p.pos++
	}
	nth := strings.TrimSpace(string(p.src[start:p.pos]))
	return nth, p.looksLikeOf()
}

func (p *parser) looksLikeOf() bool {
	rest := p.src[p.pos:]
	trimmed := strings.TrimLeft(string(rest), " \t\n")
	return strings.HasPrefix(trimmed, "of ") || trimmed == "of"
}

func (p *parser) parseIdent() string {
	start := p.pos
	for p.pos < len(p.src) && isIdentChar(p.src[p.pos]) {
		p.pos++
	}
	return string(p.src[start:p.pos])
}

func isIdentStart(r rune) bool {
	return r == '-' || r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r > 127
}

func isIdentChar(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}

func (p *parser) peek() rune {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

// skipSpace advances past whitespace, reporting whether any was consumed
// (used to distinguish "a b" descendant combinators from "ab" which isn't
// a valid boundary at all).
func (p *parser) skipSpace() bool {
	start := p.pos
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t' || p.src[p.pos] == '\n') {
		p.pos++
	}
	return p.pos > start
}
