package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/titpetric/sassgo/ast"
)

// Parse parses src (with url used only to stamp Stylesheet.URL and spans)
// into an ast.Stylesheet. It matches the importer.ParseFunc signature so
// an *importer.Importer can be built directly from Parse.
func Parse(src, url string) (*ast.Stylesheet, error) {
	p := &Parser{src: src, url: url}
	body, err := p.parseStatements(true)
	if err != nil {
		return nil, err
	}
	return ast.NewStylesheet(url, p.span(0, len(src)), body), nil
}

// Parser walks raw source text, using scanPrelude to find statement
// boundaries and the Lexer (its Next method) for expression text
// once a prelude has been isolated — see the package doc comment for why
// statement boundaries are found this way instead of through one
// unified token stream.
type Parser struct {
	src string
	url string
	pos int
}

func (p *Parser) span(start, end int) ast.Span {
	return ast.Span{URL: p.url, Start: ast.Position{Offset: start}, End: ast.Position{Offset: end}}
}

func (p *Parser) errf(format string, args ...interface{}) error {
	return fmt.Errorf("parse error near offset %d: %s", p.pos, fmt.Sprintf(format, args...))
}

func (p *Parser) eof() bool { return p.pos >= len(p.src) }

func (p *Parser) skipSpaceAndComments() {
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			p.pos++
			continue
		}
		if c == '/' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '*' {
			end := strings.Index(p.src[p.pos+2:], "*/")
			if end < 0 {
				p.pos = len(p.src)
			} else {
				p.pos = p.pos + 2 + end + 2
			}
			continue
		}
		if c == '/' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '/' {
			end := strings.IndexByte(p.src[p.pos:], '\n')
			if end < 0 {
				p.pos = len(p.src)
			} else {
				p.pos += end
			}
			continue
		}
		break
	}
}

// parseStatements parses statements until `}` (or EOF at top level).
func (p *Parser) parseStatements(topLevel bool) ([]ast.Statement, error) {
	var out []ast.Statement
	for {
		p.skipSpaceAndComments()
		if p.eof() {
			if !topLevel {
				return nil, p.errf("unexpected end of input, expected }")
			}
			return out, nil
		}
		if p.src[p.pos] == '}' {
			if topLevel {
				return nil, p.errf("unexpected }")
			}
			p.pos++
			return out, nil
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			out = append(out, stmt)
		}
	}
}

// parseStatement dispatches a single statement based on its leading
// character and the delimiter that terminates its prelude.
func (p *Parser) parseStatement() (ast.Statement, error) {
	p.skipSpaceAndComments()
	start := p.pos

	if strings.HasPrefix(p.src[p.pos:], "/*") {
		return p.parseLoudComment()
	}

	if p.src[p.pos] == '$' {
		return p.parseVariableDeclaration()
	}
	if p.src[p.pos] == '@' {
		return p.parseAtRule()
	}

	prelude, delim, err := p.scanPrelude()
	if err != nil {
		return nil, err
	}
	prelude = strings.TrimSpace(prelude)

	switch delim {
	case '{':
		if strings.HasSuffix(prelude, ":") {
			// nested declaration block, e.g. `font: { weight: bold; }`
			propText := strings.TrimSuffix(prelude, ":")
			prop, err := p.parseInterpolatedText(propText, start)
			if err != nil {
				return nil, err
			}
			children, err := p.parseStatements(false)
			if err != nil {
				return nil, err
			}
			return ast.NewDeclaration(p.span(start, p.pos), prop, nil, children), nil
		}
		sel, err := p.parseInterpolatedText(prelude, start)
		if err != nil {
			return nil, err
		}
		body, err := p.parseStatements(false)
		if err != nil {
			return nil, err
		}
		return ast.NewStyleRule(p.span(start, p.pos), sel, body), nil
	default: // ';' or '}' or EOF
		if prelude == "" {
			return nil, nil
		}
		return p.parseDeclarationFromPrelude(prelude, start)
	}
}

func (p *Parser) parseDeclarationFromPrelude(prelude string, start int) (ast.Statement, error) {
	idx := topLevelColon(prelude)
	if idx < 0 {
		return nil, p.errf("expected declaration, got %q", prelude)
	}
	propText := strings.TrimSpace(prelude[:idx])
	valueText := strings.TrimSpace(prelude[idx+1:])
	prop, err := p.parseInterpolatedText(propText, start)
	if err != nil {
		return nil, err
	}
	val, err := parseExprString(valueText)
	if err != nil {
		return nil, err
	}
	return ast.NewDeclaration(p.span(start, p.pos), prop, val, nil), nil
}

// topLevelColon finds the first ':' not nested in (), [] or a string.
func topLevelColon(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case '"', '\'':
			q := s[i]
			i++
			for i < len(s) && s[i] != q {
				if s[i] == '\\' {
					i++
				}
				i++
			}
		case ':':
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func (p *Parser) parseLoudComment() (ast.Statement, error) {
	start := p.pos
	end := strings.Index(p.src[p.pos:], "*/")
	if end < 0 {
		return nil, p.errf("unterminated comment")
	}
	text := p.src[p.pos : p.pos+end+2]
	p.pos += end + 2
	if strings.HasPrefix(text, "/*!") || true {
		return ast.NewLoudComment(p.span(start, p.pos), text), nil
	}
	return nil, nil
}

func (p *Parser) parseVariableDeclaration() (ast.Statement, error) {
	start := p.pos
	prelude, delim, err := p.scanPrelude()
	if err != nil {
		return nil, err
	}
	if delim != ';' && delim != '}' && delim != 0 {
		return nil, p.errf("unexpected %q after variable declaration", delim)
	}
	body := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(prelude), "$"))
	idx := topLevelColon(body)
	if idx < 0 {
		return nil, p.errf("invalid variable declaration %q", prelude)
	}
	namePart := strings.TrimSpace(body[:idx])
	rest := body[idx+1:]

	namespace := ""
	name := namePart
	if dot := strings.IndexByte(namePart, '.'); dot >= 0 {
		namespace = namePart[:dot]
		name = namePart[dot+1:]
	}

	isDefault, isGlobal := false, false
	rest, isDefault = trimFlag(rest, "!default")
	rest, isGlobal = trimFlag(rest, "!global")
	valExpr, err := parseExprString(strings.TrimSpace(rest))
	if err != nil {
		return nil, err
	}
	return ast.NewVariableDeclaration(p.span(start, p.pos), name, valExpr, isDefault, isGlobal, namespace), nil
}

func trimFlag(s, flag string) (string, bool) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, flag) {
		return strings.TrimSpace(strings.TrimSuffix(s, flag)), true
	}
	return s, false
}

// scanPrelude scans from the current position up to (and consuming) the
// first top-level `{`, `;` or `}` (the last of which is not consumed),
// tracking paren/bracket nesting, string literals, and `#{...}`
// interpolation so none of those can prematurely terminate the prelude.
func (p *Parser) scanPrelude() (string, byte, error) {
	start := p.pos
	depth := 0
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch c {
		case '"', '\'':
			p.pos++
			for p.pos < len(p.src) && p.src[p.pos] != c {
				if p.src[p.pos] == '\\' {
					p.pos++
				}
				p.pos++
			}
			if p.pos < len(p.src) {
				p.pos++
			}
			continue
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case '/':
			if p.pos+1 < len(p.src) && p.src[p.pos+1] == '*' {
				end := strings.Index(p.src[p.pos+2:], "*/")
				if end < 0 {
					p.pos = len(p.src)
				} else {
					p.pos += 2 + end + 2
				}
				continue
			}
			if p.pos+1 < len(p.src) && p.src[p.pos+1] == '/' {
				end := strings.IndexByte(p.src[p.pos:], '\n')
				if end < 0 {
					p.pos = len(p.src)
				} else {
					p.pos += end
				}
				continue
			}
		case '#':
			if p.pos+1 < len(p.src) && p.src[p.pos+1] == '{' {
				p.pos += 2
				idepth := 1
				for p.pos < len(p.src) && idepth > 0 {
					switch p.src[p.pos] {
					case '{':
						idepth++
					case '}':
						idepth--
					}
					p.pos++
				}
				continue
			}
		case '{':
			if depth == 0 {
				text := p.src[start:p.pos]
				p.pos++
				return text, '{', nil
			}
		case ';':
			if depth == 0 {
				text := p.src[start:p.pos]
				p.pos++
				return text, ';', nil
			}
		case '}':
			if depth == 0 {
				text := p.src[start:p.pos]
				return text, '}', nil
			}
		}
		p.pos++
	}
	return p.src[start:p.pos], 0, nil
}

// parseInterpolatedText splits text on `#{...}` occurrences, parsing each
// interpolated region as a full expression, and returns a StringExpr (or
// the bare inner Expression when text is a single interpolation with no
// surrounding literal text) representing selector/media/at-rule text.
func (p *Parser) parseInterpolatedText(text string, baseOffset int) (ast.Expression, error) {
	var parts []ast.StringPart
	i := 0
	for i < len(text) {
		j := strings.Index(text[i:], "#{")
		if j < 0 {
			parts = append(parts, ast.StringPart{Literal: text[i:]})
			break
		}
		if j > 0 {
			parts = append(parts, ast.StringPart{Literal: text[i : i+j]})
		}
		innerStart := i + j + 2
		depth := 1
		k := innerStart
		for k < len(text) && depth > 0 {
			switch text[k] {
			case '{':
				depth++
			case '}':
				depth--
			}
			if depth == 0 {
				break
			}
			k++
		}
		inner := text[innerStart:k]
		expr, err := parseExprString(inner)
		if err != nil {
			return nil, err
		}
		parts = append(parts, ast.StringPart{Expr: expr})
		i = k + 1
	}
	if len(parts) == 1 && parts[0].Expr != nil {
		return parts[0].Expr, nil
	}
	return ast.NewStringExpr(p.span(baseOffset, baseOffset+len(text)), false, parts), nil
}

func parseExprString(s string) (ast.Expression, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ast.NewStringExpr(ast.Span{}, false, []ast.StringPart{{Literal: ""}}), nil
	}
	ep := &exprParser{lex: NewLexer(s)}
	ep.advance()
	expr, err := ep.parseCommaList()
	if err != nil {
		return nil, err
	}
	if ep.tok.Type != TokEOF {
		return nil, fmt.Errorf("unexpected trailing input %q", ep.tok.Value)
	}
	return expr, nil
}

func parseNumberToken(raw string) (float64, string) {
	parts := strings.SplitN(raw, "\x00", 2)
	f, _ := strconv.ParseFloat(parts[0], 64)
	unit := ""
	if len(parts) > 1 {
		unit = parts[1]
	}
	return f, unit
}
