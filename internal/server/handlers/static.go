package handlers

import (
	"io/fs"
	"net/http"
	"path"
	"strings"
)

const indexFile = "index.html"

// HandleUI serves the embedded browser UI. Paths that name no file get
// index.html so client-side routes load the application.
func (h *Handlers) HandleUI(w http.ResponseWriter, r *http.Request) {
	if h.ui == nil {
		http.NotFound(w, r)
		return
	}

	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if name == "" {
		name = indexFile
	}
	if info, err := fs.Stat(h.ui, name); err != nil || info.IsDir() {
		name = indexFile
	}

	if name == indexFile {
		w.Header().Set("Cache-Control", "no-cache")
	} else {
		w.Header().Set("Cache-Control", "public, max-age=3600")
	}
	http.ServeFileFS(w, r, h.ui, name)
}
