package api

import (
	"net/http"

	"github.com/mirsglobal/website/internal/render"
)

type RenderHandler struct {
	renderer *render.Renderer
}

func NewRenderHandler(renderer *render.Renderer) *RenderHandler {
	return &RenderHandler{renderer: renderer}
}

// Serve writes the HTML shell for any site path. Unknown paths still get a
// shell with fallback metadata, so the response is always 200.
func (h *RenderHandler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=0, must-revalidate")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("X-Frame-Options", "DENY")
	w.Header().Set("X-XSS-Protection", "1; mode=block")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte(h.renderer.Document(r.URL.Path))); err != nil {
		logger.Error("write render response", "err", err)
	}
}
