// Package importer resolves @use/@forward/@import URLs against a
// filesystem, implementing exec.Importer. It generalizes the teacher's
// fs.FS-based path resolution (github.com/titpetric/lessgo's
// importer/importer.go) from "read bytes, parse, splice statements inline"
// into "resolve a canonical URL, cache nothing itself (that's env.Module's
// job), load on demand" — the AST-splicing half of the teacher's importer
// moved into exec.execImport/execUse/execForward, since those need an
// Environment and CSS tree the importer itself has no business holding.
package importer

import (
	"io/fs"
	"path"
	"strings"

	"github.com/titpetric/sassgo/ast"
)

// ParseFunc parses Sass source text into a Stylesheet. It's injected
// rather than imported directly so this package doesn't have to depend on
// a specific parser implementation.
type ParseFunc func(src, url string) (*ast.Stylesheet, error)

// Importer resolves canonical URLs against an fs.FS, trying the partial
// ("_name") file naming convention and the .scss/.sass/.css extensions in
// Sass's standard load-path order.
type Importer struct {
	fsys  fs.FS
	parse ParseFunc
}

// New creates an Importer rooted at filesystem.
func New(filesystem fs.FS, parse ParseFunc) *Importer {
	return &Importer{fsys: filesystem, parse: parse}
}

// Canonicalize resolves url (relative to baseURL when url isn't absolute)
// to a canonical path within fsys, trying the partial-file and extension
// conventions. forImport is accepted but not consulted: a url() wrapper and
// surrounding quotes are always stripped, and no plain-CSS passthrough
// result is ever produced.
func (imp *Importer) Canonicalize(url, baseURL string, forImport bool) (string, bool) {
	url = unwrapURLFunction(url)
	url = strings.Trim(url, `"'`)

	candidate := url
	if !path.IsAbs(url) && baseURL != "" {
		candidate = path.Join(path.Dir(baseURL), url)
	}
	candidate = path.Clean(candidate)

	for _, p := range candidatePaths(candidate) {
		if fileExists(imp.fsys, p) {
			return p, true
		}
	}
	if forImport && fileExists(imp.fsys, candidate) {
		return candidate, true
	}
	return "", false
}

// Load reads and parses the file at canonicalURL.
func (imp *Importer) Load(canonicalURL string) (*ast.Stylesheet, bool) {
	content, err := fs.ReadFile(imp.fsys, canonicalURL)
	if err != nil {
		return nil, false
	}
	sheet, err := imp.parse(string(content), canonicalURL)
	if err != nil {
		return nil, false
	}
	return sheet, true
}

// candidatePaths enumerates the filenames Sass's load algorithm tries for
// a resolved candidate, in order: the exact name, the partial ("_name")
// form, each with .scss/.sass/.css appended, and candidate/index variants
// for directory-style imports.
func candidatePaths(candidate string) []string {
	dir, base := path.Split(candidate)
	exts := []string{"", ".scss", ".sass", ".css"}
	var out []string
	for _, ext := range exts {
		out = append(out, candidate+ext)
		out = append(out, path.Join(dir, "_"+base+ext))
	}
	for _, ext := range []string{".scss", ".sass", ".css"} {
		out = append(out, path.Join(candidate, "index"+ext))
		out = append(out, path.Join(candidate, "_index"+ext))
	}
	return out
}

func fileExists(fsys fs.FS, p string) bool {
	p = strings.TrimPrefix(p, "/")
	info, err := fs.Stat(fsys, p)
	return err == nil && !info.IsDir()
}

func unwrapURLFunction(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "url(") && strings.HasSuffix(s, ")") {
		return strings.TrimSpace(s[4 : len(s)-1])
	}
	return s
}
