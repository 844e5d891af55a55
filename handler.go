package sassgo

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/titpetric/sassgo/importer"
	"github.com/titpetric/sassgo/parser"
	"github.com/titpetric/sassgo/serializer"
)

// Error types for Sass compilation and serving, adapted from the teacher's
// handler.go (github.com/titpetric/lessgo).
var (
	ErrNotFound          = errors.New("not found")
	ErrCompilationFailed = errors.New("compilation failed")
)

// Handler serves .scss/.sass files from a filesystem, compiling them to
// CSS on each request. It generalizes the teacher's Handler, which parsed
// LESS with package dst and rendered with package renderer, into the
// parser/exec/serializer pipeline.
type Handler struct {
	pathPrefix string
	fileSystem fs.FS
	cfg        Config
	style      serializer.Style
}

// NewHandler creates a new Sass compilation handler. fileSystem is where to
// read .scss/.sass files from; pathPrefix is the URL path prefix to match
// and strip (e.g. "/assets/css"). cfg is used as-is for every request
// except Importer, which is always set to an importer.Importer rooted at
// fileSystem so relative @use/@forward/@import resolve against it.
func NewHandler(fileSystem fs.FS, pathPrefix string, cfg Config, style serializer.Style) http.Handler {
	cfg.Importer = importer.New(fileSystem, parser.Parse)
	return &Handler{
		pathPrefix: pathPrefix,
		fileSystem: fileSystem,
		cfg:        cfg,
		style:      style,
	}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if h.pathPrefix != "" && !strings.HasPrefix(r.URL.Path, h.pathPrefix) {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	if !strings.HasSuffix(r.URL.Path, ".scss") && !strings.HasSuffix(r.URL.Path, ".sass") {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	sassPath := strings.TrimPrefix(r.URL.Path, h.pathPrefix)
	if h.pathPrefix != "/" {
		sassPath = strings.TrimPrefix(sassPath, "/")
	}
	sassPath = path.Clean(sassPath)

	info, err := fs.Stat(h.fileSystem, sassPath)
	if err != nil || info.IsDir() {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	source, err := fs.ReadFile(h.fileSystem, sassPath)
	if err != nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	sheet, err := parser.Parse(string(source), sassPath)
	if err != nil {
		http.Error(w, "Compilation Error", http.StatusInternalServerError)
		return
	}

	output, _, err := Compile(sheet, h.cfg)
	if err != nil {
		http.Error(w, "Compilation Error", http.StatusInternalServerError)
		return
	}

	css := serializer.New(h.style, 2).Render(output)

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if r.Method != http.MethodHead {
		w.Write([]byte(css))
	}
}
