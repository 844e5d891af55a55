package parser

import (
	"fmt"
	"strings"

	"github.com/titpetric/sassgo/ast"
	"github.com/titpetric/sassgo/value"
)

// exprParser is a precedence-climbing parser over one Lexer, used for
// every value-producing position (declaration values, conditions,
// arguments, list/map literals). It never sees statement-level tokens
// (`{`, `@name`) since the caller isolates expression text first.
type exprParser struct {
	lex *Lexer
	tok Token
}

func (e *exprParser) advance() { e.tok = e.lex.Next() }

func (e *exprParser) expect(t TokenType, what string) error {
	if e.tok.Type != t {
		return fmt.Errorf("expected %s, got %q", what, e.tok.Value)
	}
	e.advance()
	return nil
}

func sp() ast.Span { return ast.Span{} }

// parseCommaList parses a top-level comma-separated expression, returning
// a bare Expression when there's only one element.
func (e *exprParser) parseCommaList() (ast.Expression, error) {
	first, err := e.parseSpaceList()
	if err != nil {
		return nil, err
	}
	if e.tok.Type != TokComma {
		return first, nil
	}
	elems := []ast.Expression{first}
	brackets := false
	for e.tok.Type == TokComma {
		e.advance()
		next, err := e.parseSpaceList()
		if err != nil {
			return nil, err
		}
		elems = append(elems, next)
	}
	return ast.NewListExpr(sp(), elems, "comma", brackets), nil
}

// parseSpaceList parses space-separated juxtaposed expressions (e.g.
// `1px solid red`), stopping at a comma or closing delimiter.
func (e *exprParser) parseSpaceList() (ast.Expression, error) {
	first, err := e.parseOr()
	if err != nil {
		return nil, err
	}
	var elems []ast.Expression
	for e.canStartSpaceListElement() {
		next, err := e.parseOr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, next)
	}
	if elems == nil {
		return first, nil
	}
	return ast.NewListExpr(sp(), append([]ast.Expression{first}, elems...), "space", false), nil
}

func (e *exprParser) canStartSpaceListElement() bool {
	if !e.tok.SpaceBefore {
		return false
	}
	switch e.tok.Type {
	case TokEOF, TokComma, TokRParen, TokRBracket, TokColon:
		return false
	}
	return true
}

func (e *exprParser) parseOr() (ast.Expression, error) {
	left, err := e.parseAnd()
	if err != nil {
		return nil, err
	}
	for e.tok.Type == TokIdent && strings.EqualFold(e.tok.Value, "or") {
		e.advance()
		right, err := e.parseAnd()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpr(sp(), "or", left, right)
	}
	return left, nil
}

func (e *exprParser) parseAnd() (ast.Expression, error) {
	left, err := e.parseEquality()
	if err != nil {
		return nil, err
	}
	for e.tok.Type == TokIdent && strings.EqualFold(e.tok.Value, "and") {
		e.advance()
		right, err := e.parseEquality()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpr(sp(), "and", left, right)
	}
	return left, nil
}

func (e *exprParser) parseEquality() (ast.Expression, error) {
	left, err := e.parseRelational()
	if err != nil {
		return nil, err
	}
	for e.tok.Type == TokEq || e.tok.Type == TokNe {
		op := "=="
		if e.tok.Type == TokNe {
			op = "!="
		}
		e.advance()
		right, err := e.parseRelational()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpr(sp(), op, left, right)
	}
	return left, nil
}

func (e *exprParser) parseRelational() (ast.Expression, error) {
	left, err := e.parseAdditive()
	if err != nil {
		return nil, err
	}
	ops := map[TokenType]string{TokLt: "<", TokLe: "<=", TokGt: ">", TokGe: ">="}
	for {
		op, ok := ops[e.tok.Type]
		if !ok {
			return left, nil
		}
		e.advance()
		right, err := e.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpr(sp(), op, left, right)
	}
}

func (e *exprParser) parseAdditive() (ast.Expression, error) {
	left, err := e.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		var op string
		switch e.tok.Type {
		case TokPlus:
			op = "+"
		case TokMinus:
			// A minus with space before but not after (e.g. `$a -$b`) is
			// still treated as binary subtraction; the space-list splitter
			// never gets a chance to treat it as a new element because
			// parseAdditive consumes it here first.
			op = "-"
		default:
			return left, nil
		}
		e.advance()
		right, err := e.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpr(sp(), op, left, right)
	}
}

func (e *exprParser) parseMultiplicative() (ast.Expression, error) {
	left, err := e.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		var op string
		switch e.tok.Type {
		case TokStar:
			op = "*"
		case TokSlash:
			op = "/"
		case TokPercent:
			op = "%"
		default:
			return left, nil
		}
		e.advance()
		right, err := e.parseUnary()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpr(sp(), op, left, right)
	}
}

func (e *exprParser) parseUnary() (ast.Expression, error) {
	switch {
	case e.tok.Type == TokMinus:
		e.advance()
		operand, err := e.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpr(sp(), "-", operand), nil
	case e.tok.Type == TokPlus:
		e.advance()
		operand, err := e.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpr(sp(), "+", operand), nil
	case e.tok.Type == TokSlash:
		e.advance()
		operand, err := e.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpr(sp(), "/", operand), nil
	case e.tok.Type == TokIdent && strings.EqualFold(e.tok.Value, "not"):
		e.advance()
		operand, err := e.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpr(sp(), "not", operand), nil
	}
	return e.parsePostfix()
}

// parsePostfix parses a primary and, for an unquoted identifier run not
// consumed as a keyword/function-call, merges any immediately-adjacent
// (no intervening space) identifier/interpolation tokens into one
// unquoted StringExpr, matching CSS's juxtaposed-token value syntax
// (e.g. `icon-#{$name}` or `#{$prefix}-bar`).
func (e *exprParser) parsePostfix() (ast.Expression, error) {
	first, mergeable, err := e.parsePrimary()
	if err != nil {
		return nil, err
	}
	if !mergeable {
		return first, nil
	}
	parts := identPartsOf(first)
	for !e.tok.SpaceBefore && (e.tok.Type == TokIdent || e.tok.Type == TokInterp) {
		next, nextMergeable, err := e.parsePrimary()
		if err != nil {
			return nil, err
		}
		parts = append(parts, identPartsOf(next)...)
		if !nextMergeable {
			break
		}
	}
	if len(parts) == 1 {
		return first, nil
	}
	return ast.NewStringExpr(sp(), false, parts), nil
}

func identPartsOf(e ast.Expression) []ast.StringPart {
	if se, ok := e.(*ast.StringExpr); ok && !se.Quoted {
		return se.Parts
	}
	return []ast.StringPart{{Expr: e}}
}

// parsePrimary parses one primary expression. mergeable reports whether
// the result is a bare unquoted identifier run eligible for postfix
// adjacency merging.
func (e *exprParser) parsePrimary() (result ast.Expression, mergeable bool, err error) {
	switch e.tok.Type {
	case TokNumber:
		f, unit := parseNumberToken(e.tok.Value)
		e.advance()
		return ast.NewNumberLiteral(sp(), f, unit), false, nil
	case TokColor:
		raw := e.tok.Value
		e.advance()
		c, ok := value.ParseColor("#" + raw)
		if !ok {
			return nil, false, fmt.Errorf("invalid color #%s", raw)
		}
		return ast.NewColorLiteral(sp(), c.R, c.G, c.B, c.A, "#"+raw), false, nil
	case TokVariable:
		name := e.tok.Value
		e.advance()
		namespace := ""
		if e.tok.Type == TokDot {
			e.advance()
			if e.tok.Type != TokIdent {
				return nil, false, fmt.Errorf("expected identifier after $%s.", name)
			}
			namespace = name
			name = e.tok.Value
			e.advance()
		}
		return ast.NewVariableExpr(sp(), namespace, name), false, nil
	case TokString:
		return e.parseStringLiteral()
	case TokInterp:
		inner := e.tok.Value
		e.advance()
		expr, err := parseExprString(inner)
		if err != nil {
			return nil, false, err
		}
		return expr, true, nil
	case TokAmpersand:
		e.advance()
		return ast.NewSelectorExpr(sp()), false, nil
	case TokLParen:
		return e.parseParenOrMap()
	case TokLBracket:
		return e.parseBracketList()
	case TokIdent:
		return e.parseIdentLed()
	}
	return nil, false, fmt.Errorf("unexpected token %q", e.tok.Value)
}

func (e *exprParser) parseStringLiteral() (ast.Expression, bool, error) {
	raw := e.tok.Value
	e.advance()
	parts, err := splitInterpolation(raw)
	if err != nil {
		return nil, false, err
	}
	return ast.NewStringExpr(sp(), true, parts), false, nil
}

func splitInterpolation(text string) ([]ast.StringPart, error) {
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
		expr, err := parseExprString(text[innerStart:k])
		if err != nil {
			return nil, err
		}
		parts = append(parts, ast.StringPart{Expr: expr})
		i = k + 1
	}
	if len(parts) == 0 {
		parts = append(parts, ast.StringPart{Literal: ""})
	}
	return parts, nil
}

// parseIdentLed handles a bareword: the true/false/null keywords, a
// function call when immediately followed by `(`, a ColorLiteral for a CSS
// color name known to value.ParseColor, or a plain unquoted string segment
// otherwise.
func (e *exprParser) parseIdentLed() (ast.Expression, bool, error) {
	name := e.tok.Value
	switch strings.ToLower(name) {
	case "true":
		e.advance()
		return ast.NewBoolLiteral(sp(), true), false, nil
	case "false":
		e.advance()
		return ast.NewBoolLiteral(sp(), false), false, nil
	case "null":
		e.advance()
		return ast.NewNullLiteral(sp()), false, nil
	}
	e.advance()
	namespace := ""
	fnName := name
	if e.tok.Type == TokDot {
		// `ns.fn(...)` namespaced call; only valid when followed by '(' after the dot ident
		savedTok, savedLex := e.tok, e.lex.state()
		e.advance()
		if e.tok.Type == TokIdent {
			candidate := e.tok.Value
			e.advance()
			if e.tok.Type == TokLParen {
				namespace = name
				fnName = candidate
			} else {
				e.tok = savedTok
				e.lex.restore(savedLex)
			}
		} else {
			e.tok = savedTok
			e.lex.restore(savedLex)
		}
	}
	if e.tok.Type == TokLParen && !e.tok.SpaceBefore {
		if fnName == "calc" || fnName == "min" || fnName == "max" || fnName == "clamp" {
			args, err := e.parseCalcArgs()
			if err != nil {
				return nil, false, err
			}
			return ast.NewCalculationExpr(sp(), fnName, args), false, nil
		}
		args, err := e.parseArgumentList()
		if err != nil {
			return nil, false, err
		}
		return ast.NewFunctionCallExpr(sp(), namespace, fnName, args), false, nil
	}
	if c, ok := value.ParseColor(name); ok {
		return ast.NewColorLiteral(sp(), c.R, c.G, c.B, c.A, name), false, nil
	}
	return ast.NewStringExpr(sp(), false, []ast.StringPart{{Literal: name}}), true, nil
}

func (e *exprParser) parseCalcArgs() ([]ast.Expression, error) {
	if err := e.expect(TokLParen, "("); err != nil {
		return nil, err
	}
	var args []ast.Expression
	for e.tok.Type != TokRParen {
		arg, err := e.parseSpaceList()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if e.tok.Type == TokComma {
			e.advance()
			continue
		}
		break
	}
	if err := e.expect(TokRParen, ")"); err != nil {
		return nil, err
	}
	return args, nil
}

func (e *exprParser) parseArgumentList() ([]ast.Argument, error) {
	if err := e.expect(TokLParen, "("); err != nil {
		return nil, err
	}
	var args []ast.Argument
	for e.tok.Type != TokRParen {
		arg, err := e.parseArgument()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if e.tok.Type == TokComma {
			e.advance()
			continue
		}
		break
	}
	if err := e.expect(TokRParen, ")"); err != nil {
		return nil, err
	}
	return args, nil
}

func (e *exprParser) parseArgument() (ast.Argument, error) {
	if e.tok.Type == TokVariable {
		savedTok, savedLex := e.tok, e.lex.state()
		name := e.tok.Value
		e.advance()
		if e.tok.Type == TokColon {
			e.advance()
			val, err := e.parseSpaceList()
			if err != nil {
				return ast.Argument{}, err
			}
			return ast.Argument{Name: name, Value: val}, nil
		}
		e.tok = savedTok
		e.lex.restore(savedLex)
	}
	val, err := e.parseSpaceList()
	if err != nil {
		return ast.Argument{}, err
	}
	if e.tok.Type == TokEllipsis {
		e.advance()
		return ast.Argument{Value: val, IsRest: true}, nil
	}
	return ast.Argument{Value: val}, nil
}

// parseParenOrMap parses `()`, a map `(k: v, ...)`, or a parenthesized
// grouping/list.
func (e *exprParser) parseParenOrMap() (ast.Expression, bool, error) {
	e.advance() // (
	if e.tok.Type == TokRParen {
		e.advance()
		return ast.NewMapExpr(sp(), nil), false, nil
	}
	first, err := e.parseOr()
	if err != nil {
		return nil, false, err
	}
	if e.tok.Type == TokColon {
		e.advance()
		val, err := e.parseSpaceList()
		if err != nil {
			return nil, false, err
		}
		entries := []ast.MapEntry{{Key: first, Value: val}}
		for e.tok.Type == TokComma {
			e.advance()
			if e.tok.Type == TokRParen {
				break
			}
			k, err := e.parseOr()
			if err != nil {
				return nil, false, err
			}
			if err := e.expect(TokColon, ":"); err != nil {
				return nil, false, err
			}
			v, err := e.parseSpaceList()
			if err != nil {
				return nil, false, err
			}
			entries = append(entries, ast.MapEntry{Key: k, Value: v})
		}
		if err := e.expect(TokRParen, ")"); err != nil {
			return nil, false, err
		}
		return ast.NewMapExpr(sp(), entries), false, nil
	}

	// Parenthesized grouping/list: continue as a space list, then comma list.
	elems := []ast.Expression{first}
	for e.canStartSpaceListElement() {
		next, err := e.parseOr()
		if err != nil {
			return nil, false, err
		}
		elems = append(elems, next)
	}
	var inner ast.Expression
	if len(elems) == 1 {
		inner = elems[0]
	} else {
		inner = ast.NewListExpr(sp(), elems, "space", false)
	}
	for e.tok.Type == TokComma {
		e.advance()
		if e.tok.Type == TokRParen {
			break
		}
		next, err := e.parseSpaceList()
		if err != nil {
			return nil, false, err
		}
		if l, ok := inner.(*ast.ListExpr); ok && l.Separator == "comma" {
			l.Elements = append(l.Elements, next)
		} else {
			inner = ast.NewListExpr(sp(), []ast.Expression{inner, next}, "comma", false)
		}
	}
	if err := e.expect(TokRParen, ")"); err != nil {
		return nil, false, err
	}
	return ast.NewParenExpr(sp(), inner), false, nil
}

func (e *exprParser) parseBracketList() (ast.Expression, bool, error) {
	e.advance() // [
	if e.tok.Type == TokRBracket {
		e.advance()
		return ast.NewListExpr(sp(), nil, "undecided", true), false, nil
	}
	list, err := e.parseCommaListInner()
	if err != nil {
		return nil, false, err
	}
	if err := e.expect(TokRBracket, "]"); err != nil {
		return nil, false, err
	}
	switch l := list.(type) {
	case *ast.ListExpr:
		l.Brackets = true
		return l, false, nil
	default:
		return ast.NewListExpr(sp(), []ast.Expression{list}, "undecided", true), false, nil
	}
}

func (e *exprParser) parseCommaListInner() (ast.Expression, error) {
	first, err := e.parseSpaceList()
	if err != nil {
		return nil, err
	}
	if e.tok.Type != TokComma {
		return first, nil
	}
	elems := []ast.Expression{first}
	for e.tok.Type == TokComma {
		e.advance()
		next, err := e.parseSpaceList()
		if err != nil {
			return nil, err
		}
		elems = append(elems, next)
	}
	return ast.NewListExpr(sp(), elems, "comma", false), nil
}
