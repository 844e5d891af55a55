// Package ast defines the immutable Sass abstract syntax tree: the two
// disjoint node families (Statement, Expression) a Parser produces and the
// executor walks, plus the Position/Span location machinery every node
// carries. Nothing here is mutated after construction; the executor and
// expression evaluator only read it. Selector and media-query text is kept
// as Expression (possibly interpolated) at this layer and only parsed into
// the selector/media packages' own node trees once interpolation has been
// resolved against a live environment.
package ast

// Node is the base marker implemented by every AST node.
type Node interface {
	Span() Span
}

// base carries the span every concrete node embeds.
type base struct {
	span Span
}

func (b base) Span() Span { return b.span }

// NewBase is exported so the parser (an external collaborator per the
// spec, but still constructing these nodes) can stamp spans without the
// ast package exposing its field layout.
func NewBase(span Span) Node { return base{span} }

// ---------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------

// Statement is implemented by every top-level or nested rule node.
type Statement interface {
	Node
	stmt()
}

type stmtBase struct{ base }

func (stmtBase) stmt() {}

func mkStmt(span Span) stmtBase { return stmtBase{base{span}} }

// Stylesheet is the root node produced by parsing one source file.
type Stylesheet struct {
	stmtBase
	URL  string
	Body []Statement
}

func NewStylesheet(url string, span Span, body []Statement) *Stylesheet {
	return &Stylesheet{stmtBase: mkStmt(span), URL: url, Body: body}
}

// StyleRule is `<selector> { ... }`. Selector is stored as an Expression
// because it may contain interpolation (`#{...}`) and is only parsed into a
// selector.List at evaluation time, after interpolation is resolved.
type StyleRule struct {
	stmtBase
	Selector Expression
	Body     []Statement
}

func NewStyleRule(span Span, selector Expression, body []Statement) *StyleRule {
	return &StyleRule{stmtBase: mkStmt(span), Selector: selector, Body: body}
}

// Declaration is `property: value;`, optionally with a nested block
// (`font: { weight: bold }`), in which case Value may be nil and Children
// holds the nested declarations with Property used as a name prefix.
type Declaration struct {
	stmtBase
	Property Expression // may itself be interpolated
	Value    Expression // nil when this is a block-only declaration
	Children []Statement
}

func NewDeclaration(span Span, property, value Expression, children []Statement) *Declaration {
	return &Declaration{stmtBase: mkStmt(span), Property: property, Value: value, Children: children}
}

// VariableDeclaration is `$name: value [!default] [!global];`.
type VariableDeclaration struct {
	stmtBase
	Name      string
	Value     Expression
	IsDefault bool
	IsGlobal  bool
	Namespace string // set for `$ns.name` writes; empty otherwise
}

// AtRule is any unrecognized `@name ...` rule, either childless
// (`@charset "utf-8";`) or with a block.
type AtRule struct {
	stmtBase
	Name      string
	Value     Expression // the part after the name, nil if none
	Body      []Statement
	Childless bool
}

// MediaRule is `@media <queries> { ... }`.
type MediaRule struct {
	stmtBase
	Query Expression // raw query text/interpolation, parsed by package media
	Body  []Statement
}

// SupportsRule is `@supports <condition> { ... }`.
type SupportsRule struct {
	stmtBase
	Condition SupportsCondition
	Body      []Statement
}

// SupportsCondition is a parsed `@supports` boolean condition tree.
type SupportsCondition interface {
	Node
	supportsCond()
}

type supportsBase struct{ base }

func (supportsBase) supportsCond() {}

// SupportsDeclaration is `(prop: value)`.
type SupportsDeclaration struct {
	supportsBase
	Property Expression
	Value    Expression
}

// SupportsNegation is `not <condition>`.
type SupportsNegation struct {
	supportsBase
	Condition SupportsCondition
}

// SupportsOperation is `<cond> and/or <cond> ...`.
type SupportsOperation struct {
	supportsBase
	Operator string // "and" | "or"
	Operands []SupportsCondition
}

// SupportsInterpolation is a raw interpolated condition (`#{...}`).
type SupportsInterpolation struct {
	supportsBase
	Expr Expression
}

// AtRootRule is `@at-root [(query)] { ... }` or `@at-root <rule>`.
type AtRootRule struct {
	stmtBase
	Query Expression // optional "(with: ...)"/"(without: ...)" query, nil = default
	Body  []Statement
}

// IfRule is `@if <cond> { ... } @else if <cond> { ... } @else { ... }`.
type IfRule struct {
	stmtBase
	Clauses []IfClause
}

// IfClause is one `@if`/`@else if`/`@else` branch. Condition is nil for a
// trailing bare `@else`.
type IfClause struct {
	Condition Expression
	Body      []Statement
}

// EachRule is `@each $a, $b in <list> { ... }`.
type EachRule struct {
	stmtBase
	Variables []string
	List      Expression
	Body      []Statement
}

// ForRule is `@for $i from <from> through|to <to> { ... }`.
type ForRule struct {
	stmtBase
	Variable  string
	From      Expression
	To        Expression
	Exclusive bool // true for "to", false for "through"
	Body      []Statement
}

// WhileRule is `@while <cond> { ... }`.
type WhileRule struct {
	stmtBase
	Condition Expression
	Body      []Statement
}

// Parameter pairs a declared parameter name with an optional default and
// rest-marker; shared by FunctionRule, MixinRule and ContentBlock.
type Parameter struct {
	Name    string
	Default Expression // nil if none
	IsRest  bool
}

// FunctionRule is `@function name($args...) { ... }`.
type FunctionRule struct {
	stmtBase
	Name       string
	Parameters []Parameter
	Body       []Statement
}

// ReturnRule is `@return <expr>;`.
type ReturnRule struct {
	stmtBase
	Value Expression
}

// MixinRule is `@mixin name($args...) { ... }`.
type MixinRule struct {
	stmtBase
	Name           string
	Parameters     []Parameter
	AcceptsContent bool
	Body           []Statement
}

// IncludeRule is `@include name($args...) [{ content }]`.
type IncludeRule struct {
	stmtBase
	Namespace    string
	Name         string
	Arguments    []Argument
	ContentBlock *ContentBlock // nil if no content block supplied
}

// ContentRule is `@content [($args...)];` inside a mixin body.
type ContentRule struct {
	stmtBase
	Arguments []Argument
}

// ContentBlock is the `{ ... }` passed to @include as its content argument.
// It is captured as a closure bound to the call site's environment.
type ContentBlock struct {
	stmtBase
	Parameters []Parameter
	Body       []Statement
}

// Argument is one positional/named/splat actual argument.
type Argument struct {
	Name   string // empty for positional
	Value  Expression
	IsRest bool // `...` splat
}

// ImportRule is legacy `@import "url", "url2" (media);`.
type ImportRule struct {
	stmtBase
	Imports []ImportEntry
}

// ImportEntry is one comma-separated entry of an ImportRule.
type ImportEntry struct {
	URL   string
	Media Expression // optional trailing media query/supports clause
	Span  Span
}

// UseRule is `@use "url" [as ns|*] [with (...)]`.
type UseRule struct {
	stmtBase
	URL           string
	Namespace     string // "" = derived from URL, "*" = un-namespaced
	Configuration []ConfigVariable
}

// ForwardRule is `@forward "url" [as prefix-*] [show ...|hide ...] [with (...)]`.
type ForwardRule struct {
	stmtBase
	URL           string
	Prefix        string
	Show          []string
	Hide          []string
	Configuration []ConfigVariable
}

// ConfigVariable is one `$name: value [!default]` entry of a `with (...)`.
type ConfigVariable struct {
	Name      string
	Value     Expression
	IsDefault bool
}

// ExtendRule is `@extend <selector> [!optional];`.
type ExtendRule struct {
	stmtBase
	Target   Expression // selector text, possibly interpolated
	Optional bool
}

// WarnRule is `@warn <expr>;`.
type WarnRule struct {
	stmtBase
	Message Expression
}

// ErrorRule is `@error <expr>;`.
type ErrorRule struct {
	stmtBase
	Message Expression
}

// DebugRule is `@debug <expr>;`.
type DebugRule struct {
	stmtBase
	Message Expression
}

// LoudComment is `/* ... */`, preserved in output (may contain interpolation).
type LoudComment struct {
	stmtBase
	Text string
}

// SilentComment is `// ...`, dropped from output entirely.
type SilentComment struct {
	stmtBase
	Text string
}

// ---------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------

// Expression is implemented by every value-producing AST node.
type Expression interface {
	Node
	expr()
}

type exprBase struct{ base }

func (exprBase) expr() {}

func mkExpr(span Span) exprBase { return exprBase{base{span}} }

// BinaryExpr is `left op right` (`+ - * / % = == != < <= > >= and or`).
type BinaryExpr struct {
	exprBase
	Operator string
	Left     Expression
	Right    Expression
}

func NewBinaryExpr(span Span, op string, left, right Expression) *BinaryExpr {
	return &BinaryExpr{exprBase: mkExpr(span), Operator: op, Left: left, Right: right}
}

// UnaryExpr is `op operand` (`+ - / not`).
type UnaryExpr struct {
	exprBase
	Operator string
	Operand  Expression
}

// BoolLiteral is `true`/`false`.
type BoolLiteral struct {
	exprBase
	Value bool
}

// NullLiteral is `null`.
type NullLiteral struct{ exprBase }

// NumberLiteral is a numeric literal with an optional single unit as
// written in source (e.g. `16px`, `1.5`, `100%`).
type NumberLiteral struct {
	exprBase
	Value float64
	Unit  string
}

func NewNumberLiteral(span Span, value float64, unit string) *NumberLiteral {
	return &NumberLiteral{exprBase: mkExpr(span), Value: value, Unit: unit}
}

// ColorLiteral is a literal color (`#fff`, `red`), keeping the original
// text so the serializer can preserve author formatting when unmodified.
type ColorLiteral struct {
	exprBase
	R, G, B  uint8
	A        float64
	Original string
}

// StringPart is one piece of a StringExpr: either literal text or an
// embedded `#{ ... }` expression.
type StringPart struct {
	Literal string     // used when Expr == nil
	Expr    Expression // embedded interpolation, nil for literal runs
}

// StringExpr is a (possibly quoted, possibly interpolated) string. Parts
// alternates literal runs and embedded Expression nodes; a plain string
// with no interpolation has a single literal part.
type StringExpr struct {
	exprBase
	Quoted bool
	Parts  []StringPart
}

func NewStringExpr(span Span, quoted bool, parts []StringPart) *StringExpr {
	return &StringExpr{exprBase: mkExpr(span), Quoted: quoted, Parts: parts}
}

// ListExpr is a comma/space/slash separated, optionally bracketed list.
type ListExpr struct {
	exprBase
	Elements []Expression
	// Separator is "space" | "comma" | "slash" | "undecided".
	Separator string
	Brackets  bool
}

// MapEntry is one `key: value` pair of a SassMap literal.
type MapEntry struct {
	Key   Expression
	Value Expression
}

// MapExpr is `(key: value, key2: value2)`. Order is significant and
// preserved; duplicate keys are an eval-time error.
type MapExpr struct {
	exprBase
	Entries []MapEntry
}

// VariableExpr is `$name` or `$ns.name`.
type VariableExpr struct {
	exprBase
	Namespace string
	Name      string
}

func NewVariableExpr(span Span, namespace, name string) *VariableExpr {
	return &VariableExpr{exprBase: mkExpr(span), Namespace: namespace, Name: name}
}

// FunctionCallExpr is `name(args...)` or `$ns.name(args...)`.
type FunctionCallExpr struct {
	exprBase
	Namespace string
	Name      string
	Arguments []Argument
}

func NewFunctionCallExpr(span Span, namespace, name string, args []Argument) *FunctionCallExpr {
	return &FunctionCallExpr{exprBase: mkExpr(span), Namespace: namespace, Name: name, Arguments: args}
}

// IfExpr is the `if(cond, then, else)` macro; exactly one branch is
// evaluated at runtime.
type IfExpr struct {
	exprBase
	Condition Expression
	Then      Expression
	Else      Expression
}

// ParenExpr is `(expr)`, kept distinct from its child so list-vs-singleton
// separator rules are unambiguous.
type ParenExpr struct {
	exprBase
	Inner Expression
}

// CalculationExpr is `calc(...)`, `min(...)`, `max(...)`, or `clamp(...)`.
// Its arguments are evaluated by the restricted calculation sub-evaluator.
type CalculationExpr struct {
	exprBase
	Name      string // "calc" | "min" | "max" | "clamp"
	Arguments []Expression
}

// SelectorExpr is the bare parent-selector reference `&`.
type SelectorExpr struct{ exprBase }

// InterpolatedExpr wraps an arbitrary sub-expression that appears inside
// `#{ }` in a non-string context (selector text, at-rule parameters).
type InterpolatedExpr struct {
	exprBase
	Inner Expression
}

// SupportsExpr wraps an `@supports` boolean expression used as a value
// (e.g. inside `if()`).
type SupportsExpr struct {
	exprBase
	Condition SupportsCondition
}

// CallExpr is the `call($function, $args...)` macro: a runtime-dynamic
// invocation built from an already-evaluated Function value.
type CallExpr struct {
	exprBase
	Callee    Expression
	Arguments []Argument
}
