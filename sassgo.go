// Package sassgo compiles Sass stylesheets to CSS. It generalizes the
// teacher's root package (github.com/titpetric/lessgo's top-level
// lessgo.go/handler.go/middleware.go) from a single parse-resolve-render
// pipeline built around package renderer into a parse/evaluate/serialize
// pipeline built around packages exec and serializer, keeping the same
// "three pluggable collaborators wired through a Config" shape.
package sassgo

import (
	"fmt"

	"github.com/titpetric/sassgo/ast"
	"github.com/titpetric/sassgo/builtins"
	"github.com/titpetric/sassgo/callable"
	"github.com/titpetric/sassgo/css"
	"github.com/titpetric/sassgo/env"
	"github.com/titpetric/sassgo/eval"
	"github.com/titpetric/sassgo/exec"
	"github.com/titpetric/sassgo/logger"
	"github.com/titpetric/sassgo/value"
)

// Config bundles the pluggable collaborators and output options for a
// single Compile/EvaluateExpression call, per spec.md's External
// Interfaces section: Importer resolves @use/@forward/@import, Functions
// extends (rather than replaces) the built-in function/mixin registry,
// GlobalVariables seeds the root environment before evaluation, Logger
// receives @warn/@debug output and deprecation notices, QuietDeps is
// stored but not read by Compile (warnings raised in loaded stylesheets are
// reported like any other), and
// SourceMap is accepted for interface parity with spec.md but produces no
// output yet (source maps are an explicit Non-goal of the core evaluator).
type Config struct {
	Importer        exec.Importer
	Functions       *callable.Registry
	GlobalVariables map[string]value.Value
	Logger          logger.Logger
	QuietDeps       bool
	SourceMap       bool
}

// registry returns cfg.Functions merged onto a fresh built-in registry, or
// just the built-ins if cfg.Functions is nil.
func (cfg Config) registry() *callable.Registry {
	reg := callable.NewRegistry()
	builtins.Register(reg)
	if cfg.Functions != nil {
		for _, name := range cfg.Functions.Names() {
			fns, _ := cfg.Functions.Lookup(name)
			for _, fn := range fns {
				reg.Register(fn)
			}
		}
	}
	return reg
}

func (cfg Config) logger() logger.Logger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	return logger.Discard
}

// Compile evaluates sheet into a css.Stylesheet output tree: statements are
// executed in order (building declarations/rules into the tree), @extend
// targets are resolved against every style rule's selector, and emptied-out
// groups are pruned. Warnings logged during evaluation are also returned as
// plain strings for callers that don't supply their own Logger.
func Compile(sheet *ast.Stylesheet, cfg Config) (*css.Stylesheet, []string, error) {
	var warnings []string
	log := cfg.logger()
	if cfg.Logger == nil {
		log = logger.Collecting(&warnings)
	}

	ctx := exec.New(log, cfg.registry(), cfg.Importer)
	for name, v := range cfg.GlobalVariables {
		ctx.Env.SetVariable(name, v, true, false)
	}

	if _, err := ctx.ExecBody(sheet.Body); err != nil {
		return nil, warnings, err
	}

	resolveExtends(ctx)
	ctx.CSS.RemoveEmptyGroups(ctx.CSS.Root)

	return ctx.CSS, warnings, nil
}

// resolveExtends rewrites every style rule's selector in place against the
// context's accumulated ExtensionStore. Per spec.md §4.5 an extension's
// media-context compatibility should be checked against the style rule's
// own enclosing @media chain; the executor does not currently thread that
// chain onto individual css.Node entries, so this applies every
// unconditional (no media-context-restricted) extension uniformly — a
// documented simplification, see DESIGN.md.
func resolveExtends(ctx *exec.Context) {
	ctx.CSS.Walk(ctx.CSS.Root, func(id css.NodeID, n *css.Node) {
		if n.Kind != css.KindStyleRule || n.Selector == nil {
			return
		}
		n.Selector = ctx.Extensions.Apply(n.Selector, nil)
	})
}

// EvaluateExpression evaluates a single expression in isolation, optionally
// against an existing Environment (e.g. one captured from a prior Compile's
// module snapshot) so callers can probe variables/functions without
// re-running a whole stylesheet.
func EvaluateExpression(expr ast.Expression, envOpt *env.Environment, cfg Config) (value.Value, error) {
	environment := envOpt
	if environment == nil {
		environment = env.New()
		for name, v := range cfg.GlobalVariables {
			environment.SetVariable(name, v, true, false)
		}
	}
	ctx := exec.New(cfg.logger(), cfg.registry(), cfg.Importer)
	ctx.Env = environment
	ev := eval.New(environment, cfg.logger(), ctx)
	v, err := ev.Eval(expr)
	if err != nil {
		return nil, fmt.Errorf("evaluate expression: %w", err)
	}
	return v, nil
}
