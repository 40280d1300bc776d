package web

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/hpungsan/rig/internal/catalog"
	"github.com/hpungsan/rig/internal/errors"
	"github.com/hpungsan/rig/internal/filter"
	"github.com/hpungsan/rig/internal/ops"
)

// Handlers contains HTTP route handlers for the web UI.
type Handlers struct {
	session  *ops.Session
	renderer *Renderer
}

// page assembles the sidebar and header shared by every page.
func (h *Handlers) page(ctx context.Context, title, nav string) (PageData, *ops.StatusOutput) {
	status := h.session.Status(ctx)

	names := make(map[catalog.Category]string, len(status.Parts))
	for _, slot := range status.Parts {
		names[slot.Category] = slot.Part.Base().Name
	}

	steps := make([]StepView, 0, len(status.Steps))
	for _, s := range status.Steps {
		steps = append(steps, StepView{
			Key:      s.Category.Key(),
			Label:    s.Category.Label(),
			Selected: s.Selected,
			Enabled:  s.Enabled,
			PartName: names[s.Category],
		})
	}

	return PageData{
		Title:   title,
		Version: h.renderer.version,
		Nav:     nav,
		Build:   status.Build,
		Steps:   steps,
		Total:   status.Total,
	}, status
}

// HandleBuild handles GET /build — the build overview.
func (h *Handlers) HandleBuild(w http.ResponseWriter, r *http.Request) {
	pd, status := h.page(r.Context(), "Build", "build")

	if wantsJSON(r) {
		renderJSON(w, http.StatusOK, status)
		return
	}

	h.renderer.renderPage(w, r, "build", BuildPageData{
		PageData: pd,
		Status:   status,
		Catalog:  h.session.Catalog(),
		Next:     nextStep(pd.Steps),
	})
}

// HandleOptions handles GET /build/{category} — classified parts of one category.
func (h *Handlers) HandleOptions(w http.ResponseWriter, r *http.Request) {
	form := parseFilterForm(r)

	result, err := h.session.Options(ops.OptionsInput{
		Category: r.PathValue("category"),
		Criteria: filter.Criteria{
			Search:   form.Search,
			Brand:    form.Brand,
			MinPrice: form.MinPrice,
			MaxPrice: form.MaxPrice,
			Features: form.Features,
		},
		IncludeFacets: !wantsJSON(r) || parseBoolParam(r, "include_facets"),
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	if wantsJSON(r) {
		renderJSON(w, http.StatusOK, result)
		return
	}

	// Echo the effective upper bound so the slider starts at the list maximum
	if form.MaxPrice == 0 && result.Facets != nil {
		form.MaxPrice = result.Facets.MaxPrice
	}

	pd, _ := h.page(r.Context(), result.Label, result.Category.Key())
	data := OptionsPageData{
		PageData: pd,
		Options:  result,
		Filter:   form,
	}

	// If htmx targets #options, render only the option list
	if r.Header.Get("HX-Target") == "options" {
		h.renderer.renderBlock(w, http.StatusOK, "options", "options-list", data)
		return
	}

	h.renderer.renderPage(w, r, "options", data)
}

// HandleSelect handles POST /build/{category}/select — pick a part.
func (h *Handlers) HandleSelect(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid form data"))
		return
	}

	result, err := h.session.Select(r.Context(), ops.SelectInput{
		Category: r.PathValue("category"),
		ID:       r.FormValue("id"),
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	// JSON request
	if wantsJSON(r) {
		renderJSON(w, http.StatusOK, result)
		return
	}

	pd, _ := h.page(r.Context(), "", "")
	target := "/build/summary"
	if next := nextStep(pd.Steps); next != "" {
		target = "/build/" + next
	}

	// HTMX request: redirect via HX-Redirect header
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", target)
		w.WriteHeader(http.StatusOK)
		return
	}

	// Default: redirect
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// HandleClear handles POST /build/clear — empty the build.
func (h *Handlers) HandleClear(w http.ResponseWriter, r *http.Request) {
	result := h.session.Clear(r.Context())

	if wantsJSON(r) {
		renderJSON(w, http.StatusOK, result)
		return
	}

	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", "/build")
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, "/build", http.StatusSeeOther)
}

// HandleSummary handles GET /build/summary — the rendered build summary.
func (h *Handlers) HandleSummary(w http.ResponseWriter, r *http.Request) {
	summary := h.session.Summary()

	if wantsJSON(r) {
		renderJSON(w, http.StatusOK, summary)
		return
	}

	pd, _ := h.page(r.Context(), "Summary", "summary")
	h.renderer.renderPage(w, r, "summary", SummaryPageData{
		PageData:     pd,
		Summary:      summary,
		RenderedHTML: renderMarkdown(summary.Markdown),
	})
}

// HandleCatalog handles GET /catalog — catalog counts as JSON.
func (h *Handlers) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, http.StatusOK, h.session.Catalog())
}

// nextStep returns the key of the first enabled, unselected step.
func nextStep(steps []StepView) string {
	for _, s := range steps {
		if s.Enabled && !s.Selected {
			return s.Key
		}
	}
	return ""
}

// parseFilterForm reads the filter controls from the query string.
func parseFilterForm(r *http.Request) FilterForm {
	q := r.URL.Query()
	form := FilterForm{
		Search:   strings.TrimSpace(q.Get("search")),
		Brand:    q.Get("brand"),
		MinPrice: parseIntParam(r, "min_price", 0),
		MaxPrice: parseIntParam(r, "max_price", 0),
	}
	for _, f := range q["feature"] {
		if f = strings.TrimSpace(f); f != "" {
			form.Features = append(form.Features, f)
		}
	}
	return form
}

// parseIntParam parses a non-negative integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return defaultVal
	}
	return v
}

// parseBoolParam parses a boolean query parameter.
func parseBoolParam(r *http.Request, name string) bool {
	s := r.URL.Query().Get(name)
	return s == "true" || s == "1"
}
