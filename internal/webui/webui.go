package webui

import (
	_ "embed"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:embed index.html
var indexHTML []byte

// RegisterRoutes mounts the embedded single-page UI at the root path.
func RegisterRoutes(r chi.Router) {
	r.Get("/", ServeIndex)
}

// ServeIndex serves the embedded HTML app.
func ServeIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}
