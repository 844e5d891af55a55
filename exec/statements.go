package exec

import (
	"fmt"

	"github.com/titpetric/sassgo/ast"
	"github.com/titpetric/sassgo/css"
	"github.com/titpetric/sassgo/media"
	"github.com/titpetric/sassgo/sasserr"
	"github.com/titpetric/sassgo/selector"
	"github.com/titpetric/sassgo/value"
)

// ExecBody executes stmts in order. If a ReturnRule is encountered
// (directly, or inside a nested control-flow body), execution stops and
// the returned value.Value is non-nil; callers outside a @function body
// (e.g. the top-level stylesheet) must treat a non-nil return as a runtime
// error, since @return is only valid inside @function.
func (c *Context) ExecBody(stmts []ast.Statement) (*value.Value, error) {
	for _, stmt := range stmts {
		ret, err := c.execStatement(stmt)
		if err != nil {
			return nil, err
		}
		if ret != nil {
			return ret, nil
		}
	}
	return nil, nil
}

func (c *Context) execStatement(stmt ast.Statement) (*value.Value, error) {
	switch s := stmt.(type) {
	case *ast.Stylesheet:
		return c.ExecBody(s.Body)
	case *ast.StyleRule:
		return nil, c.execStyleRule(s)
	case *ast.Declaration:
		return nil, c.execDeclaration(s)
	case *ast.VariableDeclaration:
		return nil, c.execVariableDeclaration(s)
	case *ast.AtRule:
		return nil, c.execAtRule(s)
	case *ast.MediaRule:
		return nil, c.execMediaRule(s)
	case *ast.SupportsRule:
		return nil, c.execSupportsRule(s)
	case *ast.AtRootRule:
		return nil, c.execAtRootRule(s)
	case *ast.IfRule:
		return c.execIfRule(s)
	case *ast.EachRule:
		return c.execEachRule(s)
	case *ast.ForRule:
		return c.execForRule(s)
	case *ast.WhileRule:
		return c.execWhileRule(s)
	case *ast.FunctionRule:
		c.Env.DeclareFunction(s.Name, &UserFunction{Decl: s, Closure: c.Env})
		return nil, nil
	case *ast.ReturnRule:
		v, err := c.evaluator().Eval(s.Value)
		if err != nil {
			return nil, err
		}
		return &v, nil
	case *ast.MixinRule:
		c.Env.DeclareMixin(s.Name, &UserMixin{Decl: s, Closure: c.Env})
		return nil, nil
	case *ast.IncludeRule:
		return nil, c.execInclude(s)
	case *ast.ContentRule:
		return nil, c.execContent(s)
	case *ast.ImportRule:
		return nil, c.execImport(s)
	case *ast.UseRule:
		return nil, c.execUse(s)
	case *ast.ForwardRule:
		return nil, c.execForward(s)
	case *ast.ExtendRule:
		return nil, c.execExtend(s)
	case *ast.WarnRule:
		v, err := c.evaluator().Eval(s.Message)
		if err != nil {
			return nil, err
		}
		c.Log.Warn(v.String(), s.Span())
		return nil, nil
	case *ast.ErrorRule:
		v, err := c.evaluator().Eval(s.Message)
		if err != nil {
			return nil, err
		}
		return nil, sasserr.NewRuntimeError(s.Span(), "%s", v.String())
	case *ast.DebugRule:
		v, err := c.evaluator().Eval(s.Message)
		if err != nil {
			return nil, err
		}
		c.Log.Debug(v.String(), s.Span())
		return nil, nil
	case *ast.LoudComment:
		c.CSS.AddChild(c.cssParent, css.Node{Kind: css.KindComment, Text: s.Text})
		return nil, nil
	case *ast.SilentComment:
		return nil, nil
	}
	return nil, runtimeErr(stmt.Span(), "unsupported statement %T", stmt)
}

// execStyleRule resolves the (possibly interpolated) selector text against
// the enclosing style rule's selector list, then attaches the new node at
// c.ruleParent rather than c.cssParent: real CSS has no syntax for a style
// rule nested inside another style rule, so a nested rule ("&:hover { ... }"
// inside ".btn { ... }") must bubble through to the nearest ancestor that
// isn't itself a style rule (the stylesheet root, or an enclosing
// @media/@supports/@at-root node) and become a sibling there, exactly as
// if its parent-resolved selector had been written at that level directly.
// This is the direct generalization of renderRule's selector-building/
// recursion, replacing string concatenation with real parent-selector
// resolution and deferring @extend application to finalize time instead of
// splicing extender text in eagerly.
func (c *Context) execStyleRule(s *ast.StyleRule) error {
	text, err := c.evalInterpolatedText(s.Selector)
	if err != nil {
		return err
	}
	parsed, err := selector.Parse(text)
	if err != nil {
		return sasserr.NewRuntimeError(s.Span(), "invalid selector %q: %v", text, err)
	}
	var resolved *selector.List
	if c.atRootExcludingStyleRule {
		resolved = parsed
	} else {
		resolved, err = selector.ResolveParent(parsed, c.styleRule)
		if err != nil {
			return sasserr.NewRuntimeError(s.Span(), "%v", err)
		}
	}

	target := c.cssParent
	if c.styleRule != nil && !c.atRootExcludingStyleRule {
		target = c.ruleParent
	}
	node := c.CSS.AddChild(target, css.Node{Kind: css.KindStyleRule, Selector: resolved})

	saved := *c
	c.cssParent = node
	c.styleRule = resolved
	c.atRootExcludingStyleRule = false
	c.Env.Push(false)
	_, err = c.ExecBody(s.Body)
	c.Env.Pop()
	*c = saved
	return err
}

// execDeclaration evaluates a property:value pair. A nested declaration
// block ("font: { weight: bold }") prefixes every child Property with
// Property+"-", matching CSS's shorthand-namespace convention; a
// declaration whose evaluated value is an empty, non-bracketed
// list is dropped entirely per spec.md's "empty list -> no declaration"
// edge case.
func (c *Context) execDeclaration(s *ast.Declaration) error {
	name, err := c.evalInterpolatedText(s.Property)
	if err != nil {
		return err
	}
	if c.declarationName != "" {
		name = c.declarationName + "-" + name
	}
	if s.Value != nil {
		v, err := c.evaluator().Eval(s.Value)
		if err != nil {
			return err
		}
		if l, ok := v.(value.List); ok && len(l.Elements) == 0 && !l.Brackets {
			// drop
		} else {
			isCustom := len(name) > 2 && name[0] == '-' && name[1] == '-'
			c.CSS.AddChild(c.cssParent, css.Node{
				Kind: css.KindDeclaration, Property: name, DeclValue: v.String(), IsCustom: isCustom,
			})
		}
	}
	if len(s.Children) > 0 {
		saved := c.declarationName
		c.declarationName = name
		_, err := c.ExecBody(s.Children)
		c.declarationName = saved
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *Context) execVariableDeclaration(s *ast.VariableDeclaration) error {
	v, err := c.evaluator().Eval(s.Value)
	if err != nil {
		return err
	}
	if s.Namespace != "" {
		mod, ok := c.Env.GetModule(s.Namespace, "")
		if ok && mod.Variables != nil {
			mod.Variables[s.Name] = v
		}
		return nil
	}
	c.Env.SetVariable(s.Name, v, s.IsGlobal, s.IsDefault)
	return nil
}

// execAtRule handles any unrecognized at-rule. A childless at-rule
// (@charset, @namespace) is emitted as-is; one with a block is emitted as
// a group node. If we're already nested inside a style rule when the
// at-rule opens, the at-rule bubbles out to c.ruleParent alongside where
// that style rule itself would bubble to, and its body is wrapped in a
// fresh copy of the enclosing style rule's selector, so the output reads
// "@foo { .btn { color: red; } }" rather than ".btn { @foo { color: red;
// } }" — real CSS allows properties directly inside most at-rules, but
// Sass's nesting model treats the enclosing selector as still active.
// Exception: inside @keyframes the selectors do not bubble, since
// keyframe selectors ("50%", "from") aren't Sass selectors at all.
func (c *Context) execAtRule(s *ast.AtRule) error {
	valueText := ""
	if s.Value != nil {
		v, err := c.evaluator().Eval(s.Value)
		if err != nil {
			return err
		}
		valueText = v.String()
	}
	if s.Childless {
		c.CSS.AddChild(c.cssParent, css.Node{Kind: css.KindAtRule, Name: s.Name, Value: valueText, Childless: true})
		return nil
	}

	wrapInStyleRule := c.styleRule != nil && !c.inKeyframes && !c.atRootExcludingStyleRule
	target := c.cssParent
	if wrapInStyleRule {
		target = c.ruleParent
	}
	node := c.CSS.AddChild(target, css.Node{Kind: css.KindAtRule, Name: s.Name, Value: valueText})

	saved := *c
	c.ruleParent = node
	if wrapInStyleRule {
		inner := c.CSS.AddChild(node, css.Node{Kind: css.KindStyleRule, Selector: c.styleRule})
		c.cssParent = inner
	} else {
		c.cssParent = node
	}
	if s.Name == "keyframes" || s.Name == "-webkit-keyframes" || s.Name == "-moz-keyframes" {
		c.inKeyframes = true
		c.styleRule = nil
	} else {
		c.inUnknownAtRule = true
	}
	c.Env.Push(true)
	_, err := c.ExecBody(s.Body)
	c.Env.Pop()
	*c = saved
	return err
}

// execMediaRule parses+merges the query against any enclosing @media
// (cartesian product, falling back to nesting when unrepresentable) and
// executes the body under the merged context, following
// renderAtRuleWithContext's bubble-up shape.
func (c *Context) execMediaRule(s *ast.MediaRule) error {
	text, err := c.evalInterpolatedText(s.Query)
	if err != nil {
		return err
	}
	parsed, err := media.Parse(text)
	if err != nil {
		return sasserr.NewRuntimeError(s.Span(), "invalid media query %q: %v", text, err)
	}

	merged := parsed
	nestUnderOuter := false
	if len(c.mediaQuery.Queries) > 0 {
		m, unrep := media.Merge(c.mediaQuery, parsed)
		if unrep {
			nestUnderOuter = true
		} else {
			merged = m
		}
	}
	if merged.Empty() && !nestUnderOuter {
		return nil
	}

	node := c.CSS.AddChild(c.cssParent, css.Node{Kind: css.KindMediaRule, MediaQuery: merged.String()})
	saved := *c
	c.cssParent = node
	c.ruleParent = node
	c.mediaQuery = merged
	c.Env.Push(true)
	_, err = c.ExecBody(s.Body)
	c.Env.Pop()
	*c = saved
	return err
}

func (c *Context) execSupportsRule(s *ast.SupportsRule) error {
	text := renderSupportsCondition(s.Condition)
	node := c.CSS.AddChild(c.cssParent, css.Node{Kind: css.KindSupportsRule, SupportsCondition: text})
	saved := *c
	c.cssParent = node
	c.ruleParent = node
	c.Env.Push(true)
	_, err := c.ExecBody(s.Body)
	c.Env.Pop()
	*c = saved
	return err
}

func renderSupportsCondition(cond ast.SupportsCondition) string {
	switch sc := cond.(type) {
	case *ast.SupportsDeclaration:
		return fmt.Sprintf("(%s: %s)", textOf(sc.Property), textOf(sc.Value))
	case *ast.SupportsNegation:
		return "not " + renderSupportsCondition(sc.Condition)
	case *ast.SupportsOperation:
		out := ""
		for i, o := range sc.Operands {
			if i > 0 {
				out += " " + sc.Operator + " "
			}
			out += renderSupportsCondition(o)
		}
		return out
	}
	return ""
}

func textOf(e ast.Expression) string {
	if se, ok := e.(*ast.StringExpr); ok && len(se.Parts) > 0 {
		return se.Parts[0].Literal
	}
	return ""
}

// evalInterpolatedText evaluates a selector/media/at-rule-parameter
// expression down to its raw interpolation-resolved text, used before
// handing the text to the selector or media sub-parsers. Interpolating a
// bare color literal in this context is a documented deprecation, per
// spec.md's interpolation-mode note.
func (c *Context) evalInterpolatedText(e ast.Expression) (string, error) {
	if e == nil {
		return "", nil
	}
	v, err := c.evaluator().Eval(e)
	if err != nil {
		return "", err
	}
	if _, ok := v.(value.Color); ok {
		c.Log.Warn("interpolating a color directly into a selector or at-rule is deprecated", e.Span())
	}
	return v.String(), nil
}
