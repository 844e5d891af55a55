package exec

import (
	"strings"

	"github.com/titpetric/sassgo/ast"
)

// execAtRootRule picks the reattachment point implied by Query and executes
// Body there. With no query, style rules are excluded. Whenever style rules
// are excluded (the default, "(without: rule)", or a "(with: ...)" list
// that omits rule), Body is attached at the stylesheet root, so enclosing
// @media and @supports blocks are not kept either; "(with: all)" and
// queries that keep style rules leave the current insertion point
// unchanged, and "(without: all)" uses the root. The CSS parent chain is
// not walked node by node. Selector resolution
// inside an at-root that excludes style rules treats `&` as referring to
// nothing (atRootExcludingStyleRule), matching spec.md's
// parent-suppression note.
func (c *Context) execAtRootRule(s *ast.AtRootRule) error {
	without := map[string]bool{"rule": true}
	with := map[string]bool(nil)
	if s.Query != nil {
		text, err := c.evalInterpolatedText(s.Query)
		if err != nil {
			return err
		}
		w, wo, ok := parseAtRootQuery(text)
		if ok {
			without, with = wo, w
		}
	}

	target := c.CSS.Root
	excludesStyleRule := without["rule"] || (with != nil && !with["rule"])
	if with != nil && with["all"] {
		excludesStyleRule = false
		target = c.cssParent
	} else if without["all"] {
		target = c.CSS.Root
	} else {
		// Reattach at the nearest ancestor that is not itself excluded;
		// since this implementation doesn't track the full parent chain's
		// node kinds outside the arena, it conservatively reattaches at the
		// stylesheet root whenever style rules are excluded and otherwise
		// leaves the current insertion point unchanged.
		if !excludesStyleRule {
			target = c.cssParent
		}
	}

	saved := *c
	c.cssParent = target
	c.ruleParent = target
	if excludesStyleRule {
		c.styleRule = nil
		c.atRootExcludingStyleRule = true
	}
	c.Env.Push(true)
	_, err := c.ExecBody(s.Body)
	c.Env.Pop()
	*c = saved
	return err
}

// parseAtRootQuery parses the "(with: rule media)" / "(without: rule)"
// at-root query text into allow/deny sets.
func parseAtRootQuery(text string) (with, without map[string]bool, ok bool) {
	text = strings.TrimSpace(strings.TrimPrefix(strings.TrimSuffix(strings.TrimSpace(text), ")"), "("))
	idx := strings.IndexByte(text, ':')
	if idx < 0 {
		return nil, nil, false
	}
	kind := strings.TrimSpace(text[:idx])
	names := strings.Fields(text[idx+1:])
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	switch kind {
	case "with":
		return set, nil, true
	case "without":
		return nil, set, true
	}
	return nil, nil, false
}
