package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/starford/nexus/internal/analysis"
	"github.com/starford/nexus/internal/apperr"
)

// Handler holds API route handlers.
type Handler struct {
	svc *analysis.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *analysis.Service) *Handler {
	return &Handler{svc: svc}
}

// Graph handles GET /api/graph?root=<dir>.
//
// Responds with the analysis JSON of the directory.
func (h *Handler) Graph(w http.ResponseWriter, r *http.Request) {
	root := r.URL.Query().Get("root")
	if root == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("root is required"))
		return
	}
	out, err := h.svc.Analyze(r.Context(), root)
	if err != nil {
		h.writeError(w, "analyze failed", root, err)
		return
	}
	writeRawJSON(w, r, out)
}

// Open handles GET /api/open?path=<file>.
//
// Responds with a JSON graph file verbatim or a converted DOT file.
func (h *Handler) Open(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("path is required"))
		return
	}
	out, err := h.svc.Open(r.Context(), path)
	if err != nil {
		h.writeError(w, "open failed", path, err)
		return
	}
	writeRawJSON(w, r, out)
}

func (h *Handler) writeError(w http.ResponseWriter, msg, path string, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
	case errors.Is(err, apperr.ErrNotDirectory):
		writeJSON(w, http.StatusBadRequest, errorBody("not a directory"))
	case errors.Is(err, apperr.ErrUnsupportedFileType):
		writeJSON(w, http.StatusUnsupportedMediaType, errorBody("unsupported file type"))
	default:
		slog.Error(msg, slog.String("path", path), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
	}
}
