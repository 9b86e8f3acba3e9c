package web

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hpungsan/tabstash/internal/config"
	"github.com/hpungsan/tabstash/internal/enrich"
	"github.com/hpungsan/tabstash/internal/errors"
	"github.com/hpungsan/tabstash/internal/ops"
	"github.com/hpungsan/tabstash/internal/store"
)

// Handlers contains HTTP route handlers for the web UI.
type Handlers struct {
	store    *store.Store
	disp     *enrich.Dispatcher
	cfg      *config.Config
	baseDir  string
	renderer *Renderer
}

// HandleList handles GET /tabs — the saved-tabs page.
func (h *Handlers) HandleList(w http.ResponseWriter, r *http.Request) {
	input := ops.ListInput{
		Limit:  parseIntParam(r, "limit", ops.DefaultListLimit),
		Offset: parseIntParam(r, "offset", 0),
	}

	result, err := ops.List(r.Context(), h.store, input)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	status, err := ops.Status(r.Context(), h.store)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, r, "list", ListPageData{
		PageData: PageData{
			Title:   "Saved tabs",
			Version: h.renderer.version,
			Nav:     "tabs",
		},
		Items:      result.Items,
		Pagination: result.Pagination,
		Status:     status,
		Notice:     r.URL.Query().Get("notice"),
	})
}

// HandleCapture handles POST /tabs — save a tab from the form or JSON body.
func (h *Handlers) HandleCapture(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid form data"))
		return
	}

	result, err := ops.Capture(r.Context(), h.store, h.disp, h.cfg, ops.CaptureInput{
		URL:     r.FormValue("url"),
		Title:   r.FormValue("title"),
		Favicon: r.FormValue("favicon"),
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	// HTMX request: redirect via HX-Redirect header
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", "/tabs")
		w.WriteHeader(http.StatusOK)
		return
	}

	// JSON request
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		renderJSON(w, http.StatusCreated, result)
		return
	}

	// Default: redirect
	http.Redirect(w, r, "/tabs", http.StatusFound)
}

// HandleRemove handles DELETE /tabs/{id} — drop a saved tab.
func (h *Handlers) HandleRemove(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("tab ID is required"))
		return
	}

	result, err := ops.Remove(r.Context(), h.store, ops.RemoveInput{ID: id})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	// HTMX request: redirect via HX-Redirect header
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", "/tabs")
		w.WriteHeader(http.StatusOK)
		return
	}

	// JSON request
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		renderJSON(w, http.StatusOK, result)
		return
	}

	// Default: redirect
	http.Redirect(w, r, "/tabs", http.StatusFound)
}

// HandleOpen handles GET /tabs/{id}/open — redirect to the saved URL and
// remove the tab from the stash.
func (h *Handlers) HandleOpen(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("tab ID is required"))
		return
	}

	result, err := ops.Open(r.Context(), h.store, ops.OpenInput{ID: id})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	http.Redirect(w, r, result.URL, http.StatusFound)
}

// HandleExport handles GET /tabs/export — a rendered preview of the
// Markdown export, or the raw document when format=markdown.
func (h *Handlers) HandleExport(w http.ResponseWriter, r *http.Request) {
	tabs, err := h.store.List(r.Context())
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	doc := ops.Markdown(tabs, time.Now())

	if r.URL.Query().Get("format") == "markdown" {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="tabs.md"`)
		_, _ = w.Write([]byte(doc))
		return
	}

	h.renderer.renderPage(w, r, "export", ExportPageData{
		PageData: PageData{
			Title:   "Export",
			Version: h.renderer.version,
			Nav:     "export",
		},
		RenderedHTML: renderMarkdown(doc),
		Count:        len(tabs),
	})
}

// HandleSetPro handles POST /tabs/pro — flip Pro status.
func (h *Handlers) HandleSetPro(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid form data"))
		return
	}

	enabled := r.FormValue("pro") == "true" || r.FormValue("pro") == "1"
	result, err := ops.SetPro(r.Context(), h.store, ops.SetProInput{Enabled: enabled})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	// HTMX request: redirect via HX-Redirect header
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", "/tabs")
		w.WriteHeader(http.StatusOK)
		return
	}

	// JSON request
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		renderJSON(w, http.StatusOK, result)
		return
	}

	// Default: redirect
	http.Redirect(w, r, "/tabs", http.StatusFound)
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}
