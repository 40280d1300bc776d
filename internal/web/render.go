package web

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/hpungsan/rig/internal/compat"
	"github.com/hpungsan/rig/internal/errors"
	"github.com/hpungsan/rig/internal/obs"
	"github.com/hpungsan/rig/internal/ops"
)

// PageData contains common fields used across all page templates.
type PageData struct {
	Title   string
	Version string
	Nav     string // active nav item: a category key, "build" or "summary"
	Build   string
	Steps   []StepView
	Total   int
}

// StepView is one entry of the wizard sidebar.
type StepView struct {
	Key      string
	Label    string
	Selected bool
	Enabled  bool
	PartName string
}

// BuildPageData is the template data for the build overview page.
type BuildPageData struct {
	PageData
	Status  *ops.StatusOutput
	Catalog *ops.CatalogOutput
	Next    string // key of the first open step, empty when complete
}

// FilterForm echoes the filter inputs back into the options page.
type FilterForm struct {
	Search   string
	Brand    string
	MinPrice int
	MaxPrice int
	Features []string
}

// OptionsPageData is the template data for a category options page.
type OptionsPageData struct {
	PageData
	Options *ops.OptionsOutput
	Filter  FilterForm
}

// SummaryPageData is the template data for the summary page.
type SummaryPageData struct {
	PageData
	Summary      *ops.SummaryOutput
	RenderedHTML template.HTML
}

// ErrorPageData is the template data for the error page.
type ErrorPageData struct {
	PageData
	StatusCode int
	Message    string
}

// Renderer manages template parsing and rendering.
type Renderer struct {
	templates map[string]*template.Template
	version   string
}

// NewRenderer creates a Renderer by parsing templates from the given FS.
func NewRenderer(templateFS fs.FS, version string) *Renderer {
	funcMap := template.FuncMap{
		"formatPrice": formatPrice,
		"contains":    contains,
		"statusLabel": statusLabel,
		"dict":        dict,
	}

	// Parse layout as the base template
	layoutTmpl := template.Must(template.New("layout").Funcs(funcMap).ParseFS(templateFS, "layout.html"))

	pages := map[string]string{
		"build":   "build.html",
		"options": "options.html",
		"summary": "summary.html",
		"error":   "error.html",
	}

	templates := make(map[string]*template.Template, len(pages))
	for name, file := range pages {
		t := template.Must(layoutTmpl.Clone())
		template.Must(t.ParseFS(templateFS, file))
		templates[name] = t
	}

	return &Renderer{
		templates: templates,
		version:   version,
	}
}

// renderPage renders a named page template with the given data and HTTP 200 status.
func (r *Renderer) renderPage(w http.ResponseWriter, req *http.Request, name string, data any) {
	r.renderPageStatus(w, req, http.StatusOK, name, data)
}

// renderPageStatus renders a named page template with the given data and HTTP status code.
// For HTMX requests, only the "content" block is rendered to avoid duplicating the layout.
func (r *Renderer) renderPageStatus(w http.ResponseWriter, req *http.Request, status int, name string, data any) {
	block := "layout"
	if req != nil && req.Header.Get("HX-Request") == "true" {
		block = "content"
	}
	r.renderBlock(w, status, name, block, data)
}

// renderBlock renders a specific named block from a page template.
// Used for htmx partial swaps that target a sub-section of the page.
func (r *Renderer) renderBlock(w http.ResponseWriter, status int, page, block string, data any) {
	t, ok := r.templates[page]
	if !ok {
		obs.Logger.Error("template not found", "page", page)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, block, data); err != nil {
		obs.Logger.Error("template execution failed", "page", page, "block", block, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// renderError renders an error response with content negotiation.
func (r *Renderer) renderError(w http.ResponseWriter, req *http.Request, err error) {
	var rErr *errors.RigError
	if !stderrors.As(err, &rErr) {
		rErr = errors.NewInternal(err)
	}

	status := rErr.Status
	message := rErr.Message
	if rErr.Code == errors.ErrInternal {
		obs.Logger.Error("request failed", "path", req.URL.Path, "error", err)
		message = "an internal error occurred"
	}

	// HTMX request: return HTML fragment
	if req.Header.Get("HX-Request") == "true" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		fmt.Fprintf(w, `<div class="error-message">%s</div>`, template.HTMLEscapeString(message))
		return
	}

	// JSON request
	if wantsJSON(req) {
		errObj := map[string]any{
			"code":    string(rErr.Code),
			"message": message,
			"status":  status,
		}
		if rErr.Code != errors.ErrInternal && rErr.Details != nil {
			errObj["details"] = rErr.Details
		}
		renderJSON(w, status, map[string]any{"error": errObj})
		return
	}

	// Full error page
	r.renderPageStatus(w, req, status, "error", ErrorPageData{
		PageData: PageData{
			Title:   fmt.Sprintf("Error %d", status),
			Version: r.version,
		},
		StatusCode: status,
		Message:    message,
	})
}

// renderJSON writes a JSON response.
func renderJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func wantsJSON(req *http.Request) bool {
	return strings.Contains(req.Header.Get("Accept"), "application/json")
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// renderMarkdown converts markdown text to HTML using goldmark.
func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}

// formatPrice formats an integer with comma thousands separators.
func formatPrice(n int) string {
	if n < 0 {
		return "-" + formatPrice(-n)
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// dict builds a map from key/value pairs so a sub-template can take several arguments.
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}

func statusLabel(s compat.Status) string {
	switch s {
	case compat.StatusAvailable:
		return "Available"
	case compat.StatusOutOfStock:
		return "Out of stock"
	case compat.StatusIncompatible:
		return "Incompatible"
	case compat.StatusConflict:
		return "Conflict"
	}
	return string(s)
}
