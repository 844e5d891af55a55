package media

import (
	"fmt"
	"strings"

	fastext "github.com/titpetric/sassgo/internal/strings"
)

// Parse parses already-interpolated media query text into a List.
func Parse(text string) (List, error) {
	var list List
	for _, raw := range splitTopLevel(text, ',') {
		q, err := parseQuery(fastext.TrimSpace(raw))
		if err != nil {
			return List{}, err
		}
		list.Queries = append(list.Queries, q)
	}
	return list, nil
}

func parseQuery(text string) (Query, error) {
	var q Query
	fields := splitTopLevel(text, ' ')
	i := 0
	if i < len(fields) && (strings.EqualFold(fields[i], "not") || strings.EqualFold(fields[i], "only")) {
		q.Modifier = strings.ToLower(fields[i])
		i++
	}
	if i < len(fields) && !fastext.HasPrefix(fields[i], "(") {
		q.Type = fields[i]
		i++
	}
	for i < len(fields) {
		if strings.EqualFold(fields[i], "and") {
			i++
			continue
		}
		if !fastext.HasPrefix(fields[i], "(") {
			return q, fmt.Errorf("media: unexpected token %q", fields[i])
		}
		feature, err := parseFeature(fields[i])
		if err != nil {
			return q, err
		}
		q.Features = append(q.Features, feature)
		i++
	}
	return q, nil
}

func parseFeature(text string) (Feature, error) {
	inner := fastext.TrimSuffix(fastext.TrimPrefix(text, "("), ")")
	idx := strings.IndexByte(inner, ':')
	if idx < 0 {
		return Feature{Name: fastext.TrimSpace(inner)}, nil
	}
	return Feature{Name: fastext.TrimSpace(inner[:idx]), Value: fastext.TrimSpace(inner[idx+1:])}, nil
}

// splitTopLevel splits on sep, ignoring occurrences inside parentheses.
func splitTopLevel(s string, sep byte) []string {
	var out []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case sep:
			if depth == 0 {
				if field := fastext.TrimSpace(s[start:i]); field != "" {
					out = append(out, field)
				}
				start = i + 1
			}
		}
	}
	if field := fastext.TrimSpace(s[start:]); field != "" {
		out = append(out, field)
	}
	return out
}
