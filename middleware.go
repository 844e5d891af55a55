package sassgo

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/titpetric/sassgo/serializer"
)

// NewMiddleware creates an HTTP middleware that compiles .scss/.sass files
// to CSS on-the-fly, adapted from the teacher's middleware.go
// (github.com/titpetric/lessgo).
//
// Example usage with chi:
//
//	chi.Use(sassgo.NewMiddleware("/assets/css", os.DirFS("./assets/css"), sassgo.Config{}))
//
// A request to /assets/css/style.scss is read from fileSystem, parsed,
// compiled, and returned as CSS with Content-Type: text/css. Requests that
// don't match basePath or end in .scss/.sass are passed to next.
func NewMiddleware(basePath string, fileSystem fs.FS, cfg Config) func(http.Handler) http.Handler {
	handler := NewHandler(fileSystem, basePath, cfg, serializer.Expanded)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}
			if !strings.HasPrefix(r.URL.Path, basePath) {
				next.ServeHTTP(w, r)
				return
			}
			if !strings.HasSuffix(r.URL.Path, ".scss") && !strings.HasSuffix(r.URL.Path, ".sass") {
				next.ServeHTTP(w, r)
				return
			}
			handler.ServeHTTP(w, r)
		})
	}
}
