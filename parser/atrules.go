package parser

import (
	"fmt"
	"strings"

	"github.com/titpetric/sassgo/ast"
)

// parseAtRule dispatches on the at-rule keyword immediately following '@'.
// Control-flow and module rules (if/else/each/for/while/mixin/include/
// function/return/content/use/forward/import/extend/warn/error/debug/
// at-root/media/supports) get dedicated AST nodes; anything else falls
// through to a generic ast.AtRule.
func (p *Parser) parseAtRule() (ast.Statement, error) {
	start := p.pos
	p.pos++ // '@'
	name := p.readIdent()
	switch strings.ToLower(name) {
	case "if":
		return p.parseIfRule(start)
	case "each":
		return p.parseEachRule(start)
	case "for":
		return p.parseForRule(start)
	case "while":
		return p.parseWhileRule(start)
	case "mixin":
		return p.parseMixinRule(start)
	case "include":
		return p.parseIncludeRule(start)
	case "function":
		return p.parseFunctionRule(start)
	case "return":
		return p.parseSimpleExprRule(start, func(s ast.Span, e ast.Expression) ast.Statement { return ast.NewReturnRule(s, e) })
	case "content":
		return p.parseContentRule(start)
	case "use":
		return p.parseUseRule(start)
	case "forward":
		return p.parseForwardRule(start)
	case "import":
		return p.parseImportRule(start)
	case "extend":
		return p.parseExtendRule(start)
	case "warn":
		return p.parseSimpleExprRule(start, func(s ast.Span, e ast.Expression) ast.Statement { return ast.NewWarnRule(s, e) })
	case "error":
		return p.parseSimpleExprRule(start, func(s ast.Span, e ast.Expression) ast.Statement { return ast.NewErrorRule(s, e) })
	case "debug":
		return p.parseSimpleExprRule(start, func(s ast.Span, e ast.Expression) ast.Statement { return ast.NewDebugRule(s, e) })
	case "at-root":
		return p.parseAtRootRule(start)
	case "media":
		return p.parseMediaRule(start)
	case "supports":
		return p.parseSupportsRule(start)
	case "else":
		return nil, p.errf("@else without a preceding @if")
	}
	return p.parseGenericAtRule(start, name)
}

func (p *Parser) readIdent() string {
	start := p.pos
	for p.pos < len(p.src) && (isIdentCharByte(p.src[p.pos])) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func isIdentCharByte(c byte) bool {
	return c == '_' || c == '-' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func (p *Parser) skipInlineSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

// parsePreludeExprUntilBrace scans a prelude with scanPrelude and parses
// it as a full expression.
func (p *Parser) parsePreludeExprUntilBrace() (ast.Expression, error) {
	prelude, delim, err := p.scanPrelude()
	if err != nil {
		return nil, err
	}
	if delim != '{' {
		return nil, p.errf("expected {")
	}
	return parseExprString(strings.TrimSpace(prelude))
}

func (p *Parser) parseSimpleExprRule(start int, build func(ast.Span, ast.Expression) ast.Statement) (ast.Statement, error) {
	prelude, _, err := p.scanPrelude()
	if err != nil {
		return nil, err
	}
	expr, err := parseExprString(strings.TrimSpace(prelude))
	if err != nil {
		return nil, err
	}
	return build(p.span(start, p.pos), expr), nil
}

func (p *Parser) parseIfRule(start int) (ast.Statement, error) {
	var clauses []ast.IfClause
	for {
		cond, err := p.parsePreludeExprUntilBrace()
		if err != nil {
			return nil, err
		}
		body, err := p.parseStatements(false)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, ast.IfClause{Condition: cond, Body: body})

		save := p.pos
		p.skipSpaceAndComments()
		if strings.HasPrefix(p.src[p.pos:], "@else") {
			p.pos += len("@else")
			p.skipInlineSpace()
			if strings.HasPrefix(p.src[p.pos:], "if") {
				p.pos += 2
				continue
			}
			body, err := p.parseBraceBody()
			if err != nil {
				return nil, err
			}
			clauses = append(clauses, ast.IfClause{Body: body})
			break
		}
		p.pos = save
		break
	}
	return ast.NewIfRule(p.span(start, p.pos), clauses), nil
}

func (p *Parser) parseBraceBody() ([]ast.Statement, error) {
	p.skipSpaceAndComments()
	if p.eof() || p.src[p.pos] != '{' {
		return nil, p.errf("expected {")
	}
	p.pos++
	return p.parseStatements(false)
}

func (p *Parser) parseEachRule(start int) (ast.Statement, error) {
	prelude, delim, err := p.scanPrelude()
	if err != nil {
		return nil, err
	}
	if delim != '{' {
		return nil, p.errf("expected { in @each")
	}
	prelude = strings.TrimSpace(prelude)
	idx := strings.Index(prelude, " in ")
	if idx < 0 {
		return nil, p.errf("expected 'in' in @each")
	}
	varsPart := prelude[:idx]
	listPart := prelude[idx+4:]
	var vars []string
	for _, v := range strings.Split(varsPart, ",") {
		vars = append(vars, strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(v), "$")))
	}
	list, err := parseExprString(strings.TrimSpace(listPart))
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatements(false)
	if err != nil {
		return nil, err
	}
	return ast.NewEachRule(p.span(start, p.pos), vars, list, body), nil
}

func (p *Parser) parseForRule(start int) (ast.Statement, error) {
	prelude, delim, err := p.scanPrelude()
	if err != nil {
		return nil, err
	}
	if delim != '{' {
		return nil, p.errf("expected { in @for")
	}
	prelude = strings.TrimSpace(prelude)
	fromIdx := strings.Index(prelude, "from ")
	if fromIdx < 0 {
		return nil, p.errf("expected 'from' in @for")
	}
	varName := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(prelude[:fromIdx]), "$"))
	rest := prelude[fromIdx+5:]

	exclusive := false
	var throughIdx int
	if idx := strings.Index(rest, " to "); idx >= 0 {
		throughIdx = idx
		exclusive = true
	} else if idx := strings.Index(rest, " through "); idx >= 0 {
		throughIdx = idx
		exclusive = false
	} else {
		return nil, p.errf("expected 'to'/'through' in @for")
	}
	fromText := rest[:throughIdx]
	toText := rest[throughIdx:]
	toText = strings.TrimPrefix(strings.TrimSpace(toText), "to")
	toText = strings.TrimPrefix(strings.TrimSpace(toText), "through")

	fromExpr, err := parseExprString(strings.TrimSpace(fromText))
	if err != nil {
		return nil, err
	}
	toExpr, err := parseExprString(strings.TrimSpace(toText))
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatements(false)
	if err != nil {
		return nil, err
	}
	return ast.NewForRule(p.span(start, p.pos), varName, fromExpr, toExpr, exclusive, body), nil
}

func (p *Parser) parseWhileRule(start int) (ast.Statement, error) {
	cond, err := p.parsePreludeExprUntilBrace()
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatements(false)
	if err != nil {
		return nil, err
	}
	return ast.NewWhileRule(p.span(start, p.pos), cond, body), nil
}

// parseParameters parses a `($a, $b: default, $rest...)` parameter list.
func (p *Parser) parseParameters() ([]ast.Parameter, error) {
	p.skipSpaceAndComments()
	if p.eof() || p.src[p.pos] != '(' {
		return nil, nil
	}
	prelude, depth := p.scanParenGroup()
	_ = depth
	ep := &exprParser{lex: NewLexer(prelude)}
	ep.advance()
	var params []ast.Parameter
	for ep.tok.Type != TokEOF {
		if ep.tok.Type != TokVariable {
			return nil, p.errf("expected $parameter, got %q", ep.tok.Value)
		}
		name := ep.tok.Value
		ep.advance()
		param := ast.Parameter{Name: name}
		if ep.tok.Type == TokEllipsis {
			ep.advance()
			param.IsRest = true
		} else if ep.tok.Type == TokColon {
			ep.advance()
			def, err := ep.parseSpaceList()
			if err != nil {
				return nil, err
			}
			param.Default = def
		}
		params = append(params, param)
		if ep.tok.Type == TokComma {
			ep.advance()
			continue
		}
		break
	}
	return params, nil
}

// scanParenGroup consumes a balanced `(...)` group starting at the current
// position and returns its inner text.
func (p *Parser) scanParenGroup() (string, int) {
	p.pos++ // (
	start := p.pos
	depth := 1
	for p.pos < len(p.src) && depth > 0 {
		switch p.src[p.pos] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				text := p.src[start:p.pos]
				p.pos++
				return text, depth
			}
		case '"', '\'':
			q := p.src[p.pos]
			p.pos++
			for p.pos < len(p.src) && p.src[p.pos] != q {
				if p.src[p.pos] == '\\' {
					p.pos++
				}
				p.pos++
			}
		}
		p.pos++
	}
	return p.src[start:p.pos], depth
}

func (p *Parser) parseMixinRule(start int) (ast.Statement, error) {
	p.skipSpaceAndComments()
	name := p.readIdent()
	params, err := p.parseParameters()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBraceBody()
	if err != nil {
		return nil, err
	}
	return ast.NewMixinRule(p.span(start, p.pos), name, params, bodyUsesContent(body), body), nil
}

func bodyUsesContent(body []ast.Statement) bool {
	for _, s := range body {
		if _, ok := s.(*ast.ContentRule); ok {
			return true
		}
		if has, ok := bodyHolder(s); ok && bodyUsesContent(has) {
			return true
		}
	}
	return false
}

func bodyHolder(s ast.Statement) ([]ast.Statement, bool) {
	switch t := s.(type) {
	case *ast.StyleRule:
		return t.Body, true
	case *ast.MediaRule:
		return t.Body, true
	case *ast.SupportsRule:
		return t.Body, true
	case *ast.AtRootRule:
		return t.Body, true
	case *ast.IfRule:
		var all []ast.Statement
		for _, c := range t.Clauses {
			all = append(all, c.Body...)
		}
		return all, true
	case *ast.EachRule:
		return t.Body, true
	case *ast.ForRule:
		return t.Body, true
	case *ast.WhileRule:
		return t.Body, true
	}
	return nil, false
}

func (p *Parser) parseFunctionRule(start int) (ast.Statement, error) {
	p.skipSpaceAndComments()
	name := p.readIdent()
	params, err := p.parseParameters()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBraceBody()
	if err != nil {
		return nil, err
	}
	return ast.NewFunctionRule(p.span(start, p.pos), name, params, body), nil
}

func (p *Parser) parseIncludeRule(start int) (ast.Statement, error) {
	prelude, delim, err := p.scanPrelude()
	if err != nil {
		return nil, err
	}
	prelude = strings.TrimSpace(prelude)

	var usingParamsText string
	hasUsing := false
	if uidx := strings.LastIndex(prelude, "using"); uidx >= 0 && topLevelKeyword(prelude, uidx, "using") {
		usingParamsText = strings.TrimSpace(prelude[uidx+len("using"):])
		prelude = strings.TrimSpace(prelude[:uidx])
		hasUsing = true
	}

	namespace, rest := splitNamespace(prelude)
	name, argsText := splitCallHead(rest)

	var args []ast.Argument
	if argsText != "" {
		ep := &exprParser{lex: NewLexer(argsText)}
		ep.advance()
		if ep.tok.Type != TokEOF {
			for {
				arg, err := ep.parseArgument()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if ep.tok.Type == TokComma {
					ep.advance()
					continue
				}
				break
			}
		}
	}

	var content *ast.ContentBlock
	if delim == '{' {
		blockStart := p.pos - 1
		var usingParams []ast.Parameter
		if hasUsing {
			pp := &Parser{src: usingParamsText, url: p.url}
			var err error
			usingParams, err = pp.parseParameters()
			if err != nil {
				return nil, err
			}
		}
		body, err := p.parseStatements(false)
		if err != nil {
			return nil, err
		}
		content = ast.NewContentBlock(p.span(blockStart, p.pos), usingParams, body)
	}
	return ast.NewIncludeRule(p.span(start, p.pos), namespace, name, args, content), nil
}

// topLevelKeyword reports whether the bareword at position i in s is the
// keyword "using" appearing as a standalone word (not nested inside
// parens/brackets and not part of a longer identifier), used to find the
// `using (...)` content-parameter clause in an @include prelude.
func topLevelKeyword(s string, i int, kw string) bool {
	if i+len(kw) > len(s) {
		return false
	}
	if s[i:i+len(kw)] != kw {
		return false
	}
	if i > 0 && isIdentCharByte(s[i-1]) {
		return false
	}
	return strings.Count(s[:i], "(") == strings.Count(s[:i], ")")
}

func splitNamespace(s string) (namespace, rest string) {
	if dot := topLevelByteBeforeParen(s, '.'); dot >= 0 {
		return s[:dot], s[dot+1:]
	}
	return "", s
}

func topLevelByteBeforeParen(s string, b byte) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case b:
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func splitCallHead(s string) (name, args string) {
	i := strings.IndexByte(s, '(')
	if i < 0 {
		return strings.TrimSpace(s), ""
	}
	name = strings.TrimSpace(s[:i])
	end := strings.LastIndexByte(s, ')')
	if end < i {
		return name, ""
	}
	return name, s[i+1 : end]
}

func (p *Parser) parseContentRule(start int) (ast.Statement, error) {
	p.skipSpaceAndComments()
	var args []ast.Argument
	if p.pos < len(p.src) && p.src[p.pos] == '(' {
		text, _ := p.scanParenGroup()
		ep := &exprParser{lex: NewLexer(text)}
		ep.advance()
		for ep.tok.Type != TokEOF {
			arg, err := ep.parseArgument()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if ep.tok.Type == TokComma {
				ep.advance()
				continue
			}
			break
		}
	}
	p.skipSpaceAndComments()
	if p.pos < len(p.src) && p.src[p.pos] == ';' {
		p.pos++
	}
	return ast.NewContentRule(p.span(start, p.pos), args), nil
}

func (p *Parser) parseUseRule(start int) (ast.Statement, error) {
	prelude, _, err := p.scanPrelude()
	if err != nil {
		return nil, err
	}
	url, rest := readQuotedString(strings.TrimSpace(prelude))
	rest = strings.TrimSpace(rest)
	namespace := ""
	if strings.HasPrefix(rest, "as ") {
		rest = strings.TrimSpace(strings.TrimPrefix(rest, "as "))
		if strings.HasPrefix(rest, "*") {
			namespace = "*"
			rest = strings.TrimSpace(rest[1:])
		} else {
			namespace, rest = readIdentPrefix(rest)
		}
	}
	config := p.parseWithConfig(rest)
	return ast.NewUseRule(p.span(start, p.pos), url, namespace, config), nil
}

func (p *Parser) parseForwardRule(start int) (ast.Statement, error) {
	prelude, _, err := p.scanPrelude()
	if err != nil {
		return nil, err
	}
	url, rest := readQuotedString(strings.TrimSpace(prelude))
	rest = strings.TrimSpace(rest)
	prefix := ""
	var show, hide []string
	if strings.HasPrefix(rest, "as ") {
		rest = strings.TrimSpace(strings.TrimPrefix(rest, "as "))
		ident, r2 := readIdentPrefix(rest)
		prefix = ident
		rest = strings.TrimSpace(r2)
		if strings.HasPrefix(rest, "*") {
			rest = strings.TrimSpace(rest[1:])
		}
	}
	if strings.HasPrefix(rest, "show ") {
		idx := strings.Index(rest, " with")
		listText := rest[len("show "):]
		if idx >= 0 {
			listText = rest[len("show "):idx]
		}
		for _, n := range strings.Split(listText, ",") {
			show = append(show, strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(n), "$")))
		}
		if idx >= 0 {
			rest = strings.TrimSpace(rest[idx:])
		} else {
			rest = ""
		}
	} else if strings.HasPrefix(rest, "hide ") {
		idx := strings.Index(rest, " with")
		listText := rest[len("hide "):]
		if idx >= 0 {
			listText = rest[len("hide "):idx]
		}
		for _, n := range strings.Split(listText, ",") {
			hide = append(hide, strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(n), "$")))
		}
		if idx >= 0 {
			rest = strings.TrimSpace(rest[idx:])
		} else {
			rest = ""
		}
	}
	config := p.parseWithConfig(rest)
	return ast.NewForwardRule(p.span(start, p.pos), url, prefix, show, hide, config), nil
}

func (p *Parser) parseWithConfig(rest string) []ast.ConfigVariable {
	rest = strings.TrimSpace(rest)
	if !strings.HasPrefix(rest, "with") {
		return nil
	}
	rest = strings.TrimSpace(strings.TrimPrefix(rest, "with"))
	rest = strings.TrimPrefix(rest, "(")
	rest = strings.TrimSuffix(rest, ")")
	ep := &exprParser{lex: NewLexer(rest)}
	ep.advance()
	var configs []ast.ConfigVariable
	for ep.tok.Type == TokVariable {
		name := ep.tok.Value
		ep.advance()
		if ep.tok.Type != TokColon {
			break
		}
		ep.advance()
		val, err := ep.parseSpaceList()
		if err != nil {
			break
		}
		configs = append(configs, ast.ConfigVariable{Name: name, Value: val})
		if ep.tok.Type == TokComma {
			ep.advance()
			continue
		}
		break
	}
	return configs
}

func readQuotedString(s string) (value, rest string) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || (s[0] != '"' && s[0] != '\'') {
		return "", s
	}
	q := s[0]
	end := strings.IndexByte(s[1:], q)
	if end < 0 {
		return s[1:], ""
	}
	return s[1 : end+1], s[end+2:]
}

func readIdentPrefix(s string) (ident, rest string) {
	i := 0
	for i < len(s) && isIdentCharByte(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

func (p *Parser) parseImportRule(start int) (ast.Statement, error) {
	prelude, _, err := p.scanPrelude()
	if err != nil {
		return nil, err
	}
	var entries []ast.ImportEntry
	for _, part := range splitTopLevelComma(prelude) {
		part = strings.TrimSpace(part)
		url, rest := readQuotedString(part)
		if url == "" && strings.HasPrefix(part, "url(") {
			url = part
			rest = ""
		}
		var media ast.Expression
		if rest = strings.TrimSpace(rest); rest != "" {
			media, err = parseExprString(rest)
			if err != nil {
				return nil, err
			}
		}
		entries = append(entries, ast.ImportEntry{URL: url, Media: media, Span: p.span(start, p.pos)})
	}
	return ast.NewImportRule(p.span(start, p.pos), entries), nil
}

func splitTopLevelComma(s string) []string {
	var out []string
	depth := 0
	start := 0
	inStr := byte(0)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inStr != 0 {
			if c == inStr {
				inStr = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			inStr = c
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	out = append(out, s[start:])
	return out
}

func (p *Parser) parseExtendRule(start int) (ast.Statement, error) {
	prelude, _, err := p.scanPrelude()
	if err != nil {
		return nil, err
	}
	prelude = strings.TrimSpace(prelude)
	optional := false
	if strings.HasSuffix(prelude, "!optional") {
		optional = true
		prelude = strings.TrimSpace(strings.TrimSuffix(prelude, "!optional"))
	}
	target, err := p.parseInterpolatedText(prelude, start)
	if err != nil {
		return nil, err
	}
	return ast.NewExtendRule(p.span(start, p.pos), target, optional), nil
}

func (p *Parser) parseAtRootRule(start int) (ast.Statement, error) {
	p.skipSpaceAndComments()
	var query ast.Expression
	if p.pos < len(p.src) && p.src[p.pos] == '(' {
		text, _ := p.scanParenGroup()
		var err error
		query, err = p.parseInterpolatedText("("+text+")", start)
		if err != nil {
			return nil, err
		}
	}
	body, err := p.parseBraceBody()
	if err != nil {
		return nil, err
	}
	return ast.NewAtRootRule(p.span(start, p.pos), query, body), nil
}

func (p *Parser) parseMediaRule(start int) (ast.Statement, error) {
	prelude, delim, err := p.scanPrelude()
	if err != nil {
		return nil, err
	}
	if delim != '{' {
		return nil, p.errf("expected { in @media")
	}
	query, err := p.parseInterpolatedText(strings.TrimSpace(prelude), start)
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatements(false)
	if err != nil {
		return nil, err
	}
	return ast.NewMediaRule(p.span(start, p.pos), query, body), nil
}

func (p *Parser) parseSupportsRule(start int) (ast.Statement, error) {
	prelude, delim, err := p.scanPrelude()
	if err != nil {
		return nil, err
	}
	if delim != '{' {
		return nil, p.errf("expected { in @supports")
	}
	cond, err := parseSupportsCondition(strings.TrimSpace(prelude))
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatements(false)
	if err != nil {
		return nil, err
	}
	return ast.NewSupportsRule(p.span(start, p.pos), cond, body), nil
}

// parseSupportsCondition parses a reduced `@supports` grammar: a
// parenthesized `(prop: value)` declaration, `not <cond>`, or `<cond> and/or
// <cond> ...` chains (not mixed in one chain, matching the CSS grammar).
func parseSupportsCondition(text string) (ast.SupportsCondition, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(strings.ToLower(text), "not ") {
		inner, err := parseSupportsCondition(text[4:])
		if err != nil {
			return nil, err
		}
		return ast.NewSupportsNegation(ast.Span{}, inner), nil
	}
	parts, op := splitSupportsChain(text)
	if len(parts) > 1 {
		var conds []ast.SupportsCondition
		for _, part := range parts {
			c, err := parseSupportsCondition(part)
			if err != nil {
				return nil, err
			}
			conds = append(conds, c)
		}
		return ast.NewSupportsOperation(ast.Span{}, op, conds), nil
	}
	inner := strings.TrimSpace(text)
	inner = strings.TrimSuffix(strings.TrimPrefix(inner, "("), ")")
	idx := topLevelColon(inner)
	if idx < 0 {
		return nil, fmt.Errorf("invalid @supports condition %q", text)
	}
	propExpr, err := parseExprString(strings.TrimSpace(inner[:idx]))
	if err != nil {
		return nil, err
	}
	valExpr, err := parseExprString(strings.TrimSpace(inner[idx+1:]))
	if err != nil {
		return nil, err
	}
	return ast.NewSupportsDeclaration(ast.Span{}, propExpr, valExpr), nil
}

func splitSupportsChain(s string) ([]string, string) {
	lower := strings.ToLower(s)
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 {
			if strings.HasPrefix(lower[i:], " and ") {
				parts, _ := splitSupportsChain(s[i+5:])
				return append([]string{s[:i]}, parts...), "and"
			}
			if strings.HasPrefix(lower[i:], " or ") {
				parts, _ := splitSupportsChain(s[i+4:])
				return append([]string{s[:i]}, parts...), "or"
			}
		}
	}
	return []string{s}, ""
}

func (p *Parser) parseGenericAtRule(start int, name string) (ast.Statement, error) {
	prelude, delim, err := p.scanPrelude()
	if err != nil {
		return nil, err
	}
	prelude = strings.TrimSpace(prelude)
	var value ast.Expression
	if prelude != "" {
		value, err = p.parseInterpolatedText(prelude, start)
		if err != nil {
			return nil, err
		}
	}
	if delim != '{' {
		return ast.NewAtRule(p.span(start, p.pos), name, value, nil, true), nil
	}
	body, err := p.parseStatements(false)
	if err != nil {
		return nil, err
	}
	return ast.NewAtRule(p.span(start, p.pos), name, value, body, false), nil
}
