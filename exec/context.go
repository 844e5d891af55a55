// Package exec is the statement executor: it walks an ast.Stylesheet,
// maintaining the current CSS insertion point, enclosing selector, media
// context and call stack, and builds a css.Stylesheet output tree. It
// generalizes the teacher's Renderer (github.com/titpetric/lessgo's
// renderer/renderer.go) from a single bytes.Buffer-writing pass into a
// tree-building pass that defers serialization to package serializer,
// keeping the two-phase "collect mixins/extends, then render" shape
// (here: "evaluate into a css tree, then resolve @extend, then
// serialize") and the mixin-argument-binding/guard-evaluation control flow
// it already had.
package exec

import (
	"github.com/titpetric/sassgo/ast"
	"github.com/titpetric/sassgo/callable"
	"github.com/titpetric/sassgo/css"
	"github.com/titpetric/sassgo/env"
	"github.com/titpetric/sassgo/eval"
	"github.com/titpetric/sassgo/logger"
	"github.com/titpetric/sassgo/media"
	"github.com/titpetric/sassgo/sasserr"
	"github.com/titpetric/sassgo/selector"
	"github.com/titpetric/sassgo/value"
)

// Importer is the pluggable module-resolution collaborator for @use,
// @forward and @import, matching spec.md's External Interfaces section.
type Importer interface {
	Canonicalize(url, baseURL string, forImport bool) (canonicalURL string, ok bool)
	Load(canonicalURL string) (source *ast.Stylesheet, ok bool)
}

// Context carries the state threaded through statement execution: the
// lexical Environment, the live CSS insertion point, the selector/media
// context nested rules resolve against, and the call stack used to build
// RuntimeError traces.
type Context struct {
	Env      *env.Environment
	Log      logger.Logger
	Builtins *callable.Registry
	Importer Importer

	CSS        *css.Stylesheet
	cssParent  css.NodeID
	ruleParent css.NodeID     // nearest ancestor that isn't itself a style rule, the bubble-up target for nested rules
	styleRule  *selector.List // original (pre-extend) selector of the innermost enclosing style rule, nil at top level
	mediaQuery media.List
	atRootExcludingStyleRule bool
	inKeyframes              bool
	inUnknownAtRule          bool
	declarationName          string // dotted prefix of the innermost enclosing nested declaration block

	Extensions *value_ExtensionStoreAlias

	stack []sasserr.Frame

	// content is the closure stack for @content: content[len-1] is the
	// block + defining environment bound to the innermost @include call,
	// popped when that include's mixin body finishes executing.
	content []*contentClosure

	loadingModules map[string]bool // canonical URLs currently being loaded, for cycle detection
}

// value_ExtensionStoreAlias avoids importing selector twice under two
// names; kept as a plain alias so Context's field type reads naturally
// from call sites in this package.
type value_ExtensionStoreAlias = selector.ExtensionStore

type contentClosure struct {
	Block *ast.ContentBlock
	Env   *env.Environment
}

// New builds a root Context over an empty CSS tree.
func New(log logger.Logger, builtins *callable.Registry, importer Importer) *Context {
	if log == nil {
		log = logger.Discard
	}
	sheet := css.NewStylesheet()
	return &Context{
		Env:            env.New(),
		Log:            log,
		Builtins:       builtins,
		Importer:       importer,
		CSS:            sheet,
		cssParent:      sheet.Root,
		ruleParent:     sheet.Root,
		Extensions:     selector.NewExtensionStore(),
		loadingModules: make(map[string]bool),
	}
}

// evaluator returns an eval.Evaluator wired to this Context's environment
// and acting as the Caller for function-call expressions.
func (c *Context) evaluator() *eval.Evaluator {
	return eval.New(c.Env, c.Log, c)
}

// frame pushes f as the active call-stack entry for the duration of fn,
// popping it on return and wrapping any returned error with the frame.
func (c *Context) frame(f sasserr.Frame, fn func() error) error {
	c.stack = append(c.stack, f)
	err := fn()
	c.stack = c.stack[:len(c.stack)-1]
	if re, ok := err.(*sasserr.RuntimeError); ok {
		return re.WithStack(f)
	}
	return err
}

func runtimeErr(span ast.Span, format string, args ...interface{}) error {
	return sasserr.NewRuntimeError(span, format, args...)
}
