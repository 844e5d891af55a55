// Package env implements lexical scoping for variables, functions and
// mixins, plus the module table backing @use/@forward/@import. It
// generalizes the teacher's parser.Stack (github.com/titpetric/lessgo's
// parser/stack.go), which held one stack of string-keyed ast.Value maps,
// into three parallel namespace stacks (variables/functions/mixins) plus
// semi-global write semantics and a module cache, while keeping the
// sync.Pool-backed map recycling idiom from the original.
package env

import (
	"sync"

	"github.com/titpetric/sassgo/value"
)

var mapPool = sync.Pool{
	New: func() interface{} { return make(map[string]value.Value) },
}

var callablePool = sync.Pool{
	New: func() interface{} { return make(map[string]interface{}) },
}

// normalize treats "-" and "_" as equivalent in identifiers, per Sass's
// identifier normalization rule.
func normalize(name string) string {
	out := make([]byte, len(name))
	for i := 0; i < len(name); i++ {
		if name[i] == '-' {
			out[i] = '_'
		} else {
			out[i] = name[i]
		}
	}
	return string(out)
}

// frame is one lexical scope: a block, a mixin/function body, or the
// top-level stylesheet scope.
type frame struct {
	variables map[string]value.Value
	functions map[string]interface{}
	mixins    map[string]interface{}
	// semiGlobal marks a frame created by a control-flow construct
	// (@if/@each/@for/@while) rather than a mixin/function call; variable
	// assignment without !global walks past semiGlobal frames to find an
	// existing outer declaration to overwrite, matching Sass's "control
	// flow doesn't create a new variable scope for assignment" rule.
	semiGlobal bool
}

func newFrame(semiGlobal bool) *frame {
	return &frame{
		variables:  mapPool.Get().(map[string]value.Value),
		functions:  callablePool.Get().(map[string]interface{}),
		mixins:     callablePool.Get().(map[string]interface{}),
		semiGlobal: semiGlobal,
	}
}

func (f *frame) recycle() {
	for k := range f.variables {
		delete(f.variables, k)
	}
	for k := range f.functions {
		delete(f.functions, k)
	}
	for k := range f.mixins {
		delete(f.mixins, k)
	}
	mapPool.Put(f.variables)
	callablePool.Put(f.functions)
	callablePool.Put(f.mixins)
}

// Environment is a stack of lexical frames, rooted at a global frame,
// plus a table of loaded modules keyed by canonical URL.
type Environment struct {
	frames  []*frame
	modules map[string]*Module
	global  *frame
}

// New returns an Environment with just the global frame pushed.
func New() *Environment {
	g := newFrame(false)
	return &Environment{frames: []*frame{g}, global: g, modules: make(map[string]*Module)}
}

// Push enters a new lexical scope. semiGlobal should be true for
// @if/@each/@for/@while bodies and false for mixin/function/content-block
// bodies, matching the teacher's Push/Pop pair in parser/stack.go.
func (e *Environment) Push(semiGlobal bool) {
	e.frames = append(e.frames, newFrame(semiGlobal))
}

// Pop leaves the innermost scope, recycling its maps back into the pools.
func (e *Environment) Pop() {
	n := len(e.frames)
	top := e.frames[n-1]
	e.frames = e.frames[:n-1]
	top.recycle()
}

// SetVariable declares or assigns $name. global forces assignment into the
// root frame (!global); isDefault makes the assignment a no-op if the
// variable is already set anywhere visible (!default). Otherwise the value
// is written to the nearest frame that already declares the variable,
// walking outward past any semiGlobal frames, or to the current frame if
// no outer declaration exists — this is the direct generalization of
// parser.Stack.Set, which always wrote to the top frame; semi-global write
// propagation is new because LESS's Stack had no control-flow scoping.
func (e *Environment) SetVariable(name string, v value.Value, global, isDefault bool) {
	name = normalize(name)
	if isDefault {
		if _, ok := e.LookupVariable(name); ok {
			return
		}
	}
	if global {
		e.global.variables[name] = v
		return
	}
	for i := len(e.frames) - 1; i >= 0; i-- {
		if _, ok := e.frames[i].variables[name]; ok {
			e.frames[i].variables[name] = v
			return
		}
		if !e.frames[i].semiGlobal {
			break
		}
	}
	e.frames[len(e.frames)-1].variables[name] = v
}

// LookupVariable searches frames from innermost to outermost.
func (e *Environment) LookupVariable(name string) (value.Value, bool) {
	name = normalize(name)
	for i := len(e.frames) - 1; i >= 0; i-- {
		if v, ok := e.frames[i].variables[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// DeclareFunction/DeclareMixin register a user-defined callable in the
// current frame; LookupFunction/LookupMixin search outward like variables.
func (e *Environment) DeclareFunction(name string, fn interface{}) {
	e.frames[len(e.frames)-1].functions[normalize(name)] = fn
}

func (e *Environment) LookupFunction(name string) (interface{}, bool) {
	name = normalize(name)
	for i := len(e.frames) - 1; i >= 0; i-- {
		if fn, ok := e.frames[i].functions[name]; ok {
			return fn, true
		}
	}
	return nil, false
}

func (e *Environment) DeclareMixin(name string, mixin interface{}) {
	e.frames[len(e.frames)-1].mixins[normalize(name)] = mixin
}

func (e *Environment) LookupMixin(name string) (interface{}, bool) {
	name = normalize(name)
	for i := len(e.frames) - 1; i >= 0; i-- {
		if m, ok := e.frames[i].mixins[name]; ok {
			return m, true
		}
	}
	return nil, false
}

// Module is a read-only, cached snapshot of a fully-evaluated stylesheet
// loaded via @use or @forward, keyed by (canonical URL, configuration).
// Per spec.md, a module is built at most once even if @used from multiple
// places with the same configuration.
type Module struct {
	URL         string
	Variables   map[string]value.Value
	Functions   map[string]interface{}
	Mixins      map[string]interface{}
	QuietDeps   bool
	Loading     bool // true while this module's stylesheet is being evaluated, for cycle detection
}

// moduleKey combines a canonical URL with a configuration fingerprint so
// two different @use ... with() configurations of the same file produce
// distinct cache entries, per spec.md's module loading note.
func moduleKey(url, configFingerprint string) string {
	return url + "\x00" + configFingerprint
}

// GetModule returns a previously loaded module, or (nil, false).
func (e *Environment) GetModule(url, configFingerprint string) (*Module, bool) {
	m, ok := e.modules[moduleKey(url, configFingerprint)]
	return m, ok
}

// BeginLoad registers a placeholder module marked Loading, used to detect
// an import/use cycle: if GetModule finds an existing entry with
// Loading == true before the real module is stored, the caller has found a
// loop and must raise a fatal error rather than recursing forever.
func (e *Environment) BeginLoad(url, configFingerprint string) {
	e.modules[moduleKey(url, configFingerprint)] = &Module{URL: url, Loading: true}
}

// StoreModule finalizes a loaded module, replacing its Loading placeholder.
func (e *Environment) StoreModule(url, configFingerprint string, m *Module) {
	e.modules[moduleKey(url, configFingerprint)] = m
}

// Snapshot returns the top-level (global-frame) variables/functions/mixins
// of a freshly-evaluated module Environment as a Module, copying out of the
// pooled maps so they survive the Environment being discarded after load.
func (e *Environment) Snapshot() *Module {
	vars := make(map[string]value.Value, len(e.global.variables))
	for k, v := range e.global.variables {
		vars[k] = v
	}
	fns := make(map[string]interface{}, len(e.global.functions))
	for k, v := range e.global.functions {
		fns[k] = v
	}
	mixins := make(map[string]interface{}, len(e.global.mixins))
	for k, v := range e.global.mixins {
		mixins[k] = v
	}
	return &Module{Variables: vars, Functions: fns, Mixins: mixins}
}
