package exec

import (
	"strings"

	"github.com/titpetric/sassgo/ast"
	"github.com/titpetric/sassgo/callable"
	"github.com/titpetric/sassgo/sasserr"
	"github.com/titpetric/sassgo/selector"
	"github.com/titpetric/sassgo/value"
)

// execInclude resolves and invokes a mixin by name (optionally
// module-qualified), binding its arguments the same way function calls
// do, then executing its body under its own closure while making any
// supplied ContentBlock available to @content inside it — the direct
// generalization of renderMixinCall/bindMixinArguments, replacing
// string-substitution argument binding with typed Bind and adding the
// content-block-as-closure mechanism LESS mixins have no equivalent of.
func (c *Context) execInclude(s *ast.IncludeRule) error {
	var mixin *UserMixin
	if s.Namespace != "" {
		mod, ok := c.Env.GetModule(s.Namespace, "")
		if !ok {
			return sasserr.NewRuntimeError(s.Span(), "undefined module %q", s.Namespace)
		}
		m, ok := mod.Mixins[s.Name]
		if !ok {
			return sasserr.NewRuntimeError(s.Span(), "undefined mixin %s.%s", s.Namespace, s.Name)
		}
		mixin = m.(*UserMixin)
	} else {
		m, ok := c.Env.LookupMixin(s.Name)
		if !ok {
			return sasserr.NewRuntimeError(s.Span(), "undefined mixin %q", s.Name)
		}
		mixin = m.(*UserMixin)
	}

	evaluated, err := c.evalArguments(s.Arguments)
	if err != nil {
		return err
	}

	if s.ContentBlock != nil && !mixin.Decl.AcceptsContent {
		return sasserr.NewRuntimeError(s.Span(), "mixin %q doesn't accept a content block", s.Name)
	}

	callerEnv := c.Env
	bodyEnv := mixin.Closure

	c.Env = bodyEnv
	c.Env.Push(false)
	bound, unbound, err := callable.Bind(mixin.Decl.Parameters, evaluated, func(e ast.Expression) (value.Value, error) {
		return c.evaluator().Eval(e)
	})
	if err == nil && len(unbound) > 0 {
		err = sasserr.NewRuntimeError(s.Span(), "no argument named $%s", strings.Join(unbound, ", $"))
	}
	if err != nil {
		c.Env.Pop()
		c.Env = callerEnv
		return sasserr.AsRuntime(err, s.Span())
	}
	for _, name := range bound.Order {
		c.Env.SetVariable(name, bound.Values[name], false, false)
	}

	if s.ContentBlock != nil {
		c.content = append(c.content, &contentClosure{Block: s.ContentBlock, Env: callerEnv})
	}

	callErr := c.frame(sasserr.Frame{Description: "mixin `" + s.Name + "`", Span: s.Span()}, func() error {
		_, err := c.ExecBody(mixin.Decl.Body)
		return err
	})

	if s.ContentBlock != nil {
		c.content = c.content[:len(c.content)-1]
	}
	c.Env.Pop()
	c.Env = callerEnv
	return callErr
}

// execContent invokes the content block bound by the innermost @include,
// evaluating its arguments against the current (mixin-body) environment
// but executing the block's body back under the call site's environment,
// so @content sees the variables visible where @include was written, not
// the mixin's internals.
func (c *Context) execContent(s *ast.ContentRule) error {
	if len(c.content) == 0 {
		return nil // @content with nothing passed is a silent no-op
	}
	closure := c.content[len(c.content)-1]
	evaluated, err := c.evalArguments(s.Arguments)
	if err != nil {
		return err
	}

	callerEnv := c.Env
	c.Env = closure.Env
	c.Env.Push(false)
	bound, unbound, err := callable.Bind(closure.Block.Parameters, evaluated, func(e ast.Expression) (value.Value, error) {
		return c.evaluator().Eval(e)
	})
	if err == nil && len(unbound) > 0 {
		err = sasserr.NewRuntimeError(s.Span(), "no argument named $%s", strings.Join(unbound, ", $"))
	}
	if err != nil {
		c.Env.Pop()
		c.Env = callerEnv
		return sasserr.AsRuntime(err, s.Span())
	}
	for _, name := range bound.Order {
		c.Env.SetVariable(name, bound.Values[name], false, false)
	}
	_, err = c.ExecBody(closure.Block.Body)
	c.Env.Pop()
	c.Env = callerEnv
	return err
}

// execExtend registers the ExtendRule's target against the innermost
// enclosing style rule's (pre-extend) selector as the extender, for every
// complex selector in the current style rule. A complex, multi-simple
// @extend target is historically unsupported, per spec.md's
// "@extend may only target a single simple selector" note.
func (c *Context) execExtend(s *ast.ExtendRule) error {
	if c.styleRule == nil {
		return sasserr.NewRuntimeError(s.Span(), "@extend may only be used within a style rule")
	}
	text, err := c.evalInterpolatedText(s.Target)
	if err != nil {
		return err
	}
	targetList, err := selector.Parse(text)
	if err != nil {
		return sasserr.NewRuntimeError(s.Span(), "invalid @extend target %q: %v", text, err)
	}
	mediaCtx := mediaContextKey(c.mediaQuery)
	for _, targetComplex := range targetList.Complexes {
		if len(targetComplex.Components) != 1 {
			return sasserr.NewRuntimeError(s.Span(), "@extend may only target a single compound selector")
		}
		target := targetComplex.Components[0].Compound
		for _, extenderComplex := range c.styleRule.Complexes {
			if err := c.Extensions.Register(extenderComplex, target, mediaCtx, s.Optional); err != nil {
				return sasserr.NewRuntimeError(s.Span(), "%v", err)
			}
		}
	}
	return nil
}

func mediaContextKey(l interface{ String() string }) []string {
	s := l.String()
	if s == "" {
		return nil
	}
	return []string{s}
}
