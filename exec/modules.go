package exec

import (
	"github.com/titpetric/sassgo/ast"
	"github.com/titpetric/sassgo/env"
	"github.com/titpetric/sassgo/sasserr"
)

// execImport implements legacy @import: each entry is loaded and its
// stylesheet body is executed inline, sharing the current environment
// (unlike @use/@forward, a legacy import has no namespace and no module
// isolation), generalizing the teacher's importer.ResolveImports splice
// into direct inline execution instead of AST surgery. A cycle (an import
// whose canonical URL is already being loaded somewhere up the call
// stack) is a fatal error per spec.md's loading-loop rule.
func (c *Context) execImport(s *ast.ImportRule) error {
	for _, entry := range s.Imports {
		if err := c.loadAndInline(entry.URL, entry.Span); err != nil {
			return err
		}
	}
	return nil
}

func (c *Context) loadAndInline(url string, span ast.Span) error {
	if c.Importer == nil {
		return sasserr.NewRuntimeError(span, "no importer configured to resolve %q", url)
	}
	canonical, ok := c.Importer.Canonicalize(url, "", true)
	if !ok {
		return sasserr.NewRuntimeError(span, "can't find stylesheet to import for %q", url)
	}
	if c.loadingModules[canonical] {
		return sasserr.NewRuntimeError(span, "import loop: %q is already being loaded", canonical)
	}
	sheet, ok := c.Importer.Load(canonical)
	if !ok {
		return sasserr.NewRuntimeError(span, "failed to load %q", canonical)
	}
	c.loadingModules[canonical] = true
	err := c.frame(sasserr.Frame{Description: "@import " + url, Span: span}, func() error {
		_, err := c.ExecBody(sheet.Body)
		return err
	})
	delete(c.loadingModules, canonical)
	return err
}

// execUse implements @use: the target stylesheet is loaded and evaluated
// once per canonical URL (the cache key does not include the configuration)
// into its own fresh Environment, cached as an env.Module, and its public variables/
// functions/mixins are exposed under Namespace (or the URL-derived
// namespace, or un-namespaced for "as *"). Reconfiguring an already-loaded
// module is a fatal error, per spec.md's module-loading note.
func (c *Context) execUse(s *ast.UseRule) error {
	mod, err := c.loadModule(s.URL, s.Configuration, s.Span())
	if err != nil {
		return err
	}
	ns := s.Namespace
	if ns == "" {
		ns = namespaceFromURL(s.URL)
	}
	if ns == "*" {
		for k, v := range mod.Variables {
			c.Env.SetVariable(k, v, true, false)
		}
		for k, v := range mod.Functions {
			c.Env.DeclareFunction(k, v)
		}
		for k, v := range mod.Mixins {
			c.Env.DeclareMixin(k, v)
		}
		return nil
	}
	c.Env.StoreModule(ns, "", mod)
	return nil
}

// execForward implements @forward: like @use but the module's members
// (optionally prefixed, optionally filtered by Show/Hide) become visible
// to whoever @uses *this* stylesheet, rather than being namespaced here.
// Since this package's Environment doesn't yet model "re-exported"
// members separately from the current file's own, ForwardRule's members
// are merged un-namespaced into the current module scope, filtered by
// Show/Hide and prefixed, as a close approximation of forwarding.
func (c *Context) execForward(s *ast.ForwardRule) error {
	mod, err := c.loadModule(s.URL, s.Configuration, s.Span())
	if err != nil {
		return err
	}
	allowed := func(name string) bool {
		if len(s.Show) > 0 {
			for _, n := range s.Show {
				if n == name {
					return true
				}
			}
			return false
		}
		for _, n := range s.Hide {
			if n == name {
				return false
			}
		}
		return true
	}
	for k, v := range mod.Variables {
		if allowed(k) {
			c.Env.SetVariable(s.Prefix+k, v, true, false)
		}
	}
	for k, v := range mod.Functions {
		if allowed(k) {
			c.Env.DeclareFunction(s.Prefix+k, v)
		}
	}
	for k, v := range mod.Mixins {
		if allowed(k) {
			c.Env.DeclareMixin(s.Prefix+k, v)
		}
	}
	return nil
}

func (c *Context) loadModule(url string, config []ast.ConfigVariable, span ast.Span) (*env.Module, error) {
	if c.Importer == nil {
		return nil, sasserr.NewRuntimeError(span, "no importer configured to resolve %q", url)
	}
	canonical, ok := c.Importer.Canonicalize(url, "", false)
	if !ok {
		return nil, sasserr.NewRuntimeError(span, "can't find stylesheet for %q", url)
	}
	if existing, ok := c.Env.GetModule(canonical, ""); ok {
		if existing.Loading {
			return nil, sasserr.NewRuntimeError(span, "module loop: %q is already being loaded", canonical)
		}
		if len(config) > 0 {
			return nil, sasserr.NewRuntimeError(span, "module %q was already loaded, so it can't be configured", canonical)
		}
		return existing, nil
	}

	sheet, ok := c.Importer.Load(canonical)
	if !ok {
		return nil, sasserr.NewRuntimeError(span, "failed to load %q", canonical)
	}

	c.Env.BeginLoad(canonical, "")
	moduleEnv := env.New()
	for _, cfg := range config {
		v, err := c.evaluator().Eval(cfg.Value)
		if err != nil {
			return nil, err
		}
		moduleEnv.SetVariable(cfg.Name, v, true, cfg.IsDefault)
	}

	sub := &Context{
		Env: moduleEnv, Log: c.Log, Builtins: c.Builtins, Importer: c.Importer,
		CSS: c.CSS, cssParent: c.cssParent, ruleParent: c.cssParent, Extensions: c.Extensions,
		loadingModules: c.loadingModules,
	}
	if _, err := sub.ExecBody(sheet.Body); err != nil {
		return nil, err
	}

	built := moduleEnv.Snapshot()
	mod := &env.Module{URL: canonical, Variables: built.Variables, Functions: built.Functions, Mixins: built.Mixins}
	c.Env.StoreModule(canonical, "", mod)
	return mod, nil
}

func namespaceFromURL(url string) string {
	start := 0
	for i := len(url) - 1; i >= 0; i-- {
		if url[i] == '/' {
			start = i + 1
			break
		}
	}
	name := url[start:]
	for i, r := range name {
		if r == '.' {
			name = name[:i]
			break
		}
	}
	if len(name) > 1 && name[0] == '_' {
		name = name[1:]
	}
	return name
}
