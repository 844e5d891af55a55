package ast

// This file collects the exported constructors for node kinds not already
// constructed inline in types.go. Parsers and the executor (which builds
// synthetic nodes for @at-root bubbling and mixin expansion) depend on
// these rather than struct literals, since the span-carrying base types are
// unexported.

func NewVariableDeclaration(span Span, name string, value Expression, isDefault, isGlobal bool, namespace string) *VariableDeclaration {
	return &VariableDeclaration{stmtBase: mkStmt(span), Name: name, Value: value, IsDefault: isDefault, IsGlobal: isGlobal, Namespace: namespace}
}

func NewAtRule(span Span, name string, value Expression, body []Statement, childless bool) *AtRule {
	return &AtRule{stmtBase: mkStmt(span), Name: name, Value: value, Body: body, Childless: childless}
}

func NewMediaRule(span Span, query Expression, body []Statement) *MediaRule {
	return &MediaRule{stmtBase: mkStmt(span), Query: query, Body: body}
}

func NewSupportsRule(span Span, cond SupportsCondition, body []Statement) *SupportsRule {
	return &SupportsRule{stmtBase: mkStmt(span), Condition: cond, Body: body}
}

func NewSupportsDeclaration(span Span, property, value Expression) *SupportsDeclaration {
	return &SupportsDeclaration{supportsBase: supportsBase{base{span}}, Property: property, Value: value}
}

func NewSupportsNegation(span Span, cond SupportsCondition) *SupportsNegation {
	return &SupportsNegation{supportsBase: supportsBase{base{span}}, Condition: cond}
}

func NewSupportsOperation(span Span, op string, operands []SupportsCondition) *SupportsOperation {
	return &SupportsOperation{supportsBase: supportsBase{base{span}}, Operator: op, Operands: operands}
}

func NewAtRootRule(span Span, query Expression, body []Statement) *AtRootRule {
	return &AtRootRule{stmtBase: mkStmt(span), Query: query, Body: body}
}

func NewIfRule(span Span, clauses []IfClause) *IfRule {
	return &IfRule{stmtBase: mkStmt(span), Clauses: clauses}
}

func NewEachRule(span Span, vars []string, list Expression, body []Statement) *EachRule {
	return &EachRule{stmtBase: mkStmt(span), Variables: vars, List: list, Body: body}
}

func NewForRule(span Span, variable string, from, to Expression, exclusive bool, body []Statement) *ForRule {
	return &ForRule{stmtBase: mkStmt(span), Variable: variable, From: from, To: to, Exclusive: exclusive, Body: body}
}

func NewWhileRule(span Span, cond Expression, body []Statement) *WhileRule {
	return &WhileRule{stmtBase: mkStmt(span), Condition: cond, Body: body}
}

func NewFunctionRule(span Span, name string, params []Parameter, body []Statement) *FunctionRule {
	return &FunctionRule{stmtBase: mkStmt(span), Name: name, Parameters: params, Body: body}
}

func NewReturnRule(span Span, value Expression) *ReturnRule {
	return &ReturnRule{stmtBase: mkStmt(span), Value: value}
}

func NewMixinRule(span Span, name string, params []Parameter, acceptsContent bool, body []Statement) *MixinRule {
	return &MixinRule{stmtBase: mkStmt(span), Name: name, Parameters: params, AcceptsContent: acceptsContent, Body: body}
}

func NewIncludeRule(span Span, namespace, name string, args []Argument, content *ContentBlock) *IncludeRule {
	return &IncludeRule{stmtBase: mkStmt(span), Namespace: namespace, Name: name, Arguments: args, ContentBlock: content}
}

func NewContentRule(span Span, args []Argument) *ContentRule {
	return &ContentRule{stmtBase: mkStmt(span), Arguments: args}
}

func NewContentBlock(span Span, params []Parameter, body []Statement) *ContentBlock {
	return &ContentBlock{stmtBase: mkStmt(span), Parameters: params, Body: body}
}

func NewImportRule(span Span, imports []ImportEntry) *ImportRule {
	return &ImportRule{stmtBase: mkStmt(span), Imports: imports}
}

func NewUseRule(span Span, url, namespace string, config []ConfigVariable) *UseRule {
	return &UseRule{stmtBase: mkStmt(span), URL: url, Namespace: namespace, Configuration: config}
}

func NewForwardRule(span Span, url, prefix string, show, hide []string, config []ConfigVariable) *ForwardRule {
	return &ForwardRule{stmtBase: mkStmt(span), URL: url, Prefix: prefix, Show: show, Hide: hide, Configuration: config}
}

func NewExtendRule(span Span, target Expression, optional bool) *ExtendRule {
	return &ExtendRule{stmtBase: mkStmt(span), Target: target, Optional: optional}
}

func NewWarnRule(span Span, message Expression) *WarnRule {
	return &WarnRule{stmtBase: mkStmt(span), Message: message}
}

func NewErrorRule(span Span, message Expression) *ErrorRule {
	return &ErrorRule{stmtBase: mkStmt(span), Message: message}
}

func NewDebugRule(span Span, message Expression) *DebugRule {
	return &DebugRule{stmtBase: mkStmt(span), Message: message}
}

func NewLoudComment(span Span, text string) *LoudComment {
	return &LoudComment{stmtBase: mkStmt(span), Text: text}
}

func NewSilentComment(span Span, text string) *SilentComment {
	return &SilentComment{stmtBase: mkStmt(span), Text: text}
}

func NewUnaryExpr(span Span, op string, operand Expression) *UnaryExpr {
	return &UnaryExpr{exprBase: mkExpr(span), Operator: op, Operand: operand}
}

func NewBoolLiteral(span Span, value bool) *BoolLiteral {
	return &BoolLiteral{exprBase: mkExpr(span), Value: value}
}

func NewNullLiteral(span Span) *NullLiteral {
	return &NullLiteral{exprBase: mkExpr(span)}
}

func NewColorLiteral(span Span, r, g, b uint8, a float64, original string) *ColorLiteral {
	return &ColorLiteral{exprBase: mkExpr(span), R: r, G: g, B: b, A: a, Original: original}
}

func NewListExpr(span Span, elements []Expression, separator string, brackets bool) *ListExpr {
	return &ListExpr{exprBase: mkExpr(span), Elements: elements, Separator: separator, Brackets: brackets}
}

func NewMapExpr(span Span, entries []MapEntry) *MapExpr {
	return &MapExpr{exprBase: mkExpr(span), Entries: entries}
}

func NewIfExpr(span Span, cond, then, els Expression) *IfExpr {
	return &IfExpr{exprBase: mkExpr(span), Condition: cond, Then: then, Else: els}
}

func NewParenExpr(span Span, inner Expression) *ParenExpr {
	return &ParenExpr{exprBase: mkExpr(span), Inner: inner}
}

func NewCalculationExpr(span Span, name string, args []Expression) *CalculationExpr {
	return &CalculationExpr{exprBase: mkExpr(span), Name: name, Arguments: args}
}

func NewSelectorExpr(span Span) *SelectorExpr {
	return &SelectorExpr{exprBase: mkExpr(span)}
}

func NewInterpolatedExpr(span Span, inner Expression) *InterpolatedExpr {
	return &InterpolatedExpr{exprBase: mkExpr(span), Inner: inner}
}

func NewSupportsExpr(span Span, cond SupportsCondition) *SupportsExpr {
	return &SupportsExpr{exprBase: mkExpr(span), Condition: cond}
}

func NewCallExpr(span Span, callee Expression, args []Argument) *CallExpr {
	return &CallExpr{exprBase: mkExpr(span), Callee: callee, Arguments: args}
}
