package web

import (
	"context"
	"encoding/json"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/hpungsan/rig/internal/build"
	"github.com/hpungsan/rig/internal/catalog"
	"github.com/hpungsan/rig/internal/catalog/catalogtest"
	"github.com/hpungsan/rig/internal/config"
	"github.com/hpungsan/rig/internal/ops"
)

func setupTest(t *testing.T) (*Handlers, http.Handler) {
	t.Helper()

	session := ops.Open(context.Background(), catalogtest.Catalog(), nil, build.NewMemoryStore(), config.DefaultConfig())

	templateSub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		t.Fatalf("template sub-FS: %v", err)
	}
	staticSub, err := fs.Sub(staticFS, "static")
	if err != nil {
		t.Fatalf("static sub-FS: %v", err)
	}

	h := &Handlers{
		session:  session,
		renderer: NewRenderer(templateSub, "test"),
	}
	return h, newRouter(h, staticSub)
}

func do(t *testing.T, router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// selectPart picks a part through the session, bypassing HTTP.
func selectPart(t *testing.T, h *Handlers, category, id string) {
	t.Helper()
	if _, err := h.session.Select(context.Background(), ops.SelectInput{Category: category, ID: id}); err != nil {
		t.Fatalf("select %s/%s: %v", category, id, err)
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, rec.Body.String())
	}
	errObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object, got %v", body)
	}
	return errObj
}

// --- Routing and middleware ---

func TestRoot_RedirectsToBuild(t *testing.T) {
	_, router := setupTest(t)

	rec := do(t, router, httptest.NewRequest("GET", "/", nil))
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/build" {
		t.Errorf("Location = %q, want /build", loc)
	}
}

func TestMiddleware_RequestIDAndHeaders(t *testing.T) {
	_, router := setupTest(t)

	rec := do(t, router, httptest.NewRequest("GET", "/build", nil))
	if id := rec.Header().Get("X-Request-Id"); len(id) != 36 {
		t.Errorf("X-Request-Id = %q, want a generated UUID", id)
	}
	if rec.Header().Get("X-Frame-Options") != "DENY" {
		t.Error("expected X-Frame-Options: DENY")
	}
	if !strings.Contains(rec.Header().Get("Content-Security-Policy"), "default-src 'self'") {
		t.Error("expected a Content-Security-Policy header")
	}

	req := httptest.NewRequest("GET", "/build", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec = do(t, router, req)
	if id := rec.Header().Get("X-Request-Id"); id != "abc-123" {
		t.Errorf("X-Request-Id = %q, want the caller's id", id)
	}
}

func TestRequestIDFromContext(t *testing.T) {
	var seen string
	handler := WithRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Request-Id", "req-1")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if seen != "req-1" {
		t.Errorf("RequestIDFromContext = %q, want req-1", seen)
	}
	if RequestIDFromContext(context.Background()) != "" {
		t.Error("expected empty id without the middleware")
	}
}

func TestStatic_ServesStylesheet(t *testing.T) {
	_, router := setupTest(t)

	rec := do(t, router, httptest.NewRequest("GET", "/static/style.css", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), ".option") {
		t.Error("expected stylesheet content")
	}
}

// --- HandleBuild ---

func TestHandleBuild_Empty(t *testing.T) {
	_, router := setupTest(t)

	rec := do(t, router, httptest.NewRequest("GET", "/build", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"Build: default", "0 of 11 components selected", `href="/build/motherboard"`, "<html"} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %q in response", want)
		}
	}
	// Later steps are locked in the sidebar
	if strings.Contains(body, `href="/build/cpu"`) {
		t.Error("cpu step should not be linked before a motherboard is picked")
	}
}

func TestHandleBuild_WithParts(t *testing.T) {
	h, router := setupTest(t)
	selectPart(t, h, "motherboard", "mb-am5")
	selectPart(t, h, "cpu", "cpu-7950x")

	rec := do(t, router, httptest.NewRequest("GET", "/build", nil))
	body := rec.Body.String()
	for _, want := range []string{"ASUS TUF B650-PLUS", "AMD Ryzen 9 7950X", "<strong>300</strong>", `href="/build/ram"`, "Clear build"} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %q in response", want)
		}
	}
}

func TestHandleBuild_JSON(t *testing.T) {
	h, router := setupTest(t)
	selectPart(t, h, "motherboard", "mb-am5")

	req := httptest.NewRequest("GET", "/build", nil)
	req.Header.Set("Accept", "application/json")
	rec := do(t, router, req)

	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("Content-Type = %q", ct)
	}
	var status map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if status["total"] != float64(100) || status["filled"] != float64(1) {
		t.Errorf("status = %v", status)
	}
}

func TestHandleBuild_HtmxReturnsContentOnly(t *testing.T) {
	_, router := setupTest(t)

	req := httptest.NewRequest("GET", "/build", nil)
	req.Header.Set("HX-Request", "true")
	rec := do(t, router, req)

	body := rec.Body.String()
	if strings.Contains(body, "<html") {
		t.Error("htmx response should not include the layout")
	}
	if !strings.Contains(body, "Build: default") {
		t.Error("expected page content in htmx response")
	}
}

// --- HandleOptions ---

func TestHandleOptions_NotReady(t *testing.T) {
	_, router := setupTest(t)

	rec := do(t, router, httptest.NewRequest("GET", "/build/cpu", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Select Motherboard first.") {
		t.Error("expected missing prerequisite notice")
	}
	if strings.Contains(body, "Ryzen 9 7950X") {
		t.Error("no parts should be listed before prerequisites are met")
	}
}

func TestHandleOptions_Buckets(t *testing.T) {
	h, router := setupTest(t)
	selectPart(t, h, "motherboard", "mb-am5")

	rec := do(t, router, httptest.NewRequest("GET", "/build/cpu", nil))
	body := rec.Body.String()
	for _, want := range []string{
		"AMD Ryzen 9 7950X",
		"Out of stock",
		"socket AM4 does not match motherboard socket AM5",
		`action="/build/cpu/select"`,
		`value="cpu-7950x"`,
		`<option value="Intel">`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %q in response", want)
		}
	}
	// Only available parts get a select button
	if strings.Contains(body, `value="cpu-5800x"`) {
		t.Error("incompatible part should not be selectable")
	}
}

func TestHandleOptions_Filter(t *testing.T) {
	h, router := setupTest(t)
	selectPart(t, h, "motherboard", "mb-am5")

	rec := do(t, router, httptest.NewRequest("GET", "/build/cpu?brand=Intel", nil))
	body := rec.Body.String()
	if !strings.Contains(body, "Intel Core i5-13600K") {
		t.Error("expected the Intel part")
	}
	if strings.Contains(body, "AMD Ryzen 9 7950X") {
		t.Error("AMD parts should be filtered out")
	}
	if !strings.Contains(body, `<option value="Intel" selected>`) {
		t.Error("brand filter should be echoed back")
	}
}

func TestHandleOptions_FeatureFilter(t *testing.T) {
	_, router := setupTest(t)

	rec := do(t, router, httptest.NewRequest("GET", "/build/motherboard?feature=DDR4", nil))
	body := rec.Body.String()
	if !strings.Contains(body, "MSI PRO B760M-A DDR4") {
		t.Error("expected the DDR4 board")
	}
	if strings.Contains(body, "ASUS TUF B650-PLUS") {
		t.Error("DDR5 board should be filtered out")
	}
}

func TestHandleOptions_HtmxTargetOptions_ReturnsFragment(t *testing.T) {
	_, router := setupTest(t)

	req := httptest.NewRequest("GET", "/build/motherboard", nil)
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Target", "options")
	rec := do(t, router, req)

	body := rec.Body.String()
	if strings.Contains(body, "<form class=\"filters\"") {
		t.Error("fragment should not include the filter form")
	}
	if !strings.Contains(body, "ASUS TUF B650-PLUS") {
		t.Error("expected option list in fragment")
	}
}

func TestHandleOptions_JSON(t *testing.T) {
	h, router := setupTest(t)
	selectPart(t, h, "motherboard", "mb-am5")

	req := httptest.NewRequest("GET", "/build/cpu?include_facets=true", nil)
	req.Header.Set("Accept", "application/json")
	rec := do(t, router, req)

	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out["ready"] != true {
		t.Errorf("ready = %v", out["ready"])
	}
	if len(out["available"].([]any)) != 1 {
		t.Errorf("available = %v", out["available"])
	}
	if _, ok := out["facets"]; !ok {
		t.Error("facets requested but missing")
	}
}

func TestHandleOptions_UnknownCategory(t *testing.T) {
	_, router := setupTest(t)

	rec := do(t, router, httptest.NewRequest("GET", "/build/toaster", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Error 400") {
		t.Error("expected full error page")
	}
}

// --- HandleSelect ---

func TestHandleSelect_RedirectsToNextStep(t *testing.T) {
	_, router := setupTest(t)

	rec := do(t, router, postForm("/build/motherboard/select", url.Values{"id": {"mb-am5"}}))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/build/cpu" {
		t.Errorf("Location = %q, want /build/cpu", loc)
	}
}

func TestHandleSelect_LastStepRedirectsToSummary(t *testing.T) {
	h, router := setupTest(t)
	for _, c := range catalog.Categories()[:catalog.NumCategories-1] {
		selectPart(t, h, c.Key(), catalogtest.FullBuild[c])
	}

	rec := do(t, router, postForm("/build/mouse/select", url.Values{"id": {"mouse-1"}}))
	if loc := rec.Header().Get("Location"); loc != "/build/summary" {
		t.Errorf("Location = %q, want /build/summary", loc)
	}
}

func TestHandleSelect_HtmxRequest(t *testing.T) {
	_, router := setupTest(t)

	req := postForm("/build/motherboard/select", url.Values{"id": {"mb-am5"}})
	req.Header.Set("HX-Request", "true")
	rec := do(t, router, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if hx := rec.Header().Get("HX-Redirect"); hx != "/build/cpu" {
		t.Errorf("HX-Redirect = %q, want /build/cpu", hx)
	}
}

func TestHandleSelect_JSONRequest(t *testing.T) {
	_, router := setupTest(t)

	req := postForm("/build/motherboard/select", url.Values{"id": {"mb-am5"}})
	req.Header.Set("Accept", "application/json")
	rec := do(t, router, req)

	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out["category"] != "motherboard" || out["total"] != float64(100) {
		t.Errorf("response = %v", out)
	}
}

func TestHandleSelect_Errors(t *testing.T) {
	h, router := setupTest(t)
	selectPart(t, h, "motherboard", "mb-am5")

	tests := []struct {
		name   string
		path   string
		id     string
		status int
		code   string
	}{
		{"not selectable", "/build/cpu/select", "cpu-5800x", http.StatusUnprocessableEntity, "NOT_SELECTABLE"},
		{"step locked", "/build/gpu/select", "gpu-7900xt", http.StatusConflict, "STEP_LOCKED"},
		{"unknown part", "/build/cpu/select", "cpu-nope", http.StatusNotFound, "NOT_FOUND"},
		{"missing id", "/build/cpu/select", "", http.StatusBadRequest, "INVALID_REQUEST"},
		{"unknown category", "/build/toaster/select", "x", http.StatusBadRequest, "INVALID_REQUEST"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := postForm(tt.path, url.Values{"id": {tt.id}})
			req.Header.Set("Accept", "application/json")
			rec := do(t, router, req)

			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			if code := decodeError(t, rec)["code"]; code != tt.code {
				t.Errorf("code = %v, want %s", code, tt.code)
			}
		})
	}
}

func TestHandleSelect_HtmxErrorFragment(t *testing.T) {
	h, router := setupTest(t)
	selectPart(t, h, "motherboard", "mb-am5")

	req := postForm("/build/cpu/select", url.Values{"id": {"cpu-9700x"}})
	req.Header.Set("HX-Request", "true")
	rec := do(t, router, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, `<div class="error-message">`) || !strings.Contains(body, "out_of_stock_compatible") {
		t.Errorf("unexpected fragment: %s", body)
	}
}

// --- HandleClear ---

func TestHandleClear(t *testing.T) {
	h, router := setupTest(t)
	selectPart(t, h, "motherboard", "mb-am5")

	rec := do(t, router, httptest.NewRequest("POST", "/build/clear", nil))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/build" {
		t.Errorf("Location = %q, want /build", loc)
	}
	if st := h.session.Status(context.Background()); st.Filled != 0 {
		t.Errorf("Filled = %d after clear", st.Filled)
	}
}

func TestHandleClear_JSON(t *testing.T) {
	h, router := setupTest(t)
	selectPart(t, h, "motherboard", "mb-am5")
	selectPart(t, h, "cpu", "cpu-7950x")

	req := httptest.NewRequest("POST", "/build/clear", nil)
	req.Header.Set("Accept", "application/json")
	rec := do(t, router, req)

	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out["cleared"] != float64(2) {
		t.Errorf("cleared = %v, want 2", out["cleared"])
	}
}

// --- HandleSummary / HandleCatalog ---

func TestHandleSummary_RendersMarkdownTable(t *testing.T) {
	h, router := setupTest(t)
	selectPart(t, h, "motherboard", "mb-am5")

	rec := do(t, router, httptest.NewRequest("GET", "/build/summary", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"<table>", "<h1>Build: default</h1>", "ASUS TUF B650-PLUS", "<strong>Total: 100</strong>"} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %q in response", want)
		}
	}
}

func TestHandleCatalog(t *testing.T) {
	_, router := setupTest(t)

	rec := do(t, router, httptest.NewRequest("GET", "/catalog", nil))
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out["empty"] != false {
		t.Errorf("empty = %v", out["empty"])
	}
	if len(out["categories"].([]any)) != 11 {
		t.Errorf("categories = %v", out["categories"])
	}
}

// --- Error rendering ---

func TestErrorRendering_InternalHidesMessage(t *testing.T) {
	h, _ := setupTest(t)

	req := httptest.NewRequest("GET", "/build", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	h.renderer.renderError(rec, req, context.DeadlineExceeded)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	errObj := decodeError(t, rec)
	if errObj["code"] != "INTERNAL" || errObj["message"] != "an internal error occurred" {
		t.Errorf("error = %v", errObj)
	}
	if _, ok := errObj["details"]; ok {
		t.Error("INTERNAL errors should omit details")
	}
}

// --- Helpers ---

func TestParseIntParam(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"", 7},
		{"n=42", 42},
		{"n=abc", 7},
		{"n=-5", 7},
	}
	for _, tt := range tests {
		req := httptest.NewRequest("GET", "/?"+tt.query, nil)
		if got := parseIntParam(req, "n", 7); got != tt.want {
			t.Errorf("parseIntParam(%q) = %d, want %d", tt.query, got, tt.want)
		}
	}
}

func TestParseBoolParam(t *testing.T) {
	for query, want := range map[string]bool{"b=true": true, "b=1": true, "b=false": false, "": false} {
		req := httptest.NewRequest("GET", "/?"+query, nil)
		if got := parseBoolParam(req, "b"); got != want {
			t.Errorf("parseBoolParam(%q) = %v, want %v", query, got, want)
		}
	}
}

func TestParseFilterForm(t *testing.T) {
	req := httptest.NewRequest("GET", "/?search=+ryzen+&brand=AMD&min_price=10&max_price=x&feature=AM5&feature=+&feature=Zen4", nil)
	form := parseFilterForm(req)

	if form.Search != "ryzen" || form.Brand != "AMD" || form.MinPrice != 10 || form.MaxPrice != 0 {
		t.Errorf("form = %+v", form)
	}
	if strings.Join(form.Features, ",") != "AM5,Zen4" {
		t.Errorf("Features = %v", form.Features)
	}
}

func TestFormatPrice(t *testing.T) {
	for n, want := range map[int]string{0: "0", 999: "999", 1970: "1,970", 1234567: "1,234,567", -1500: "-1,500"} {
		if got := formatPrice(n); got != want {
			t.Errorf("formatPrice(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestNextStep(t *testing.T) {
	steps := []StepView{
		{Key: "motherboard", Selected: true, Enabled: true},
		{Key: "cpu", Enabled: true},
		{Key: "ram"},
	}
	if got := nextStep(steps); got != "cpu" {
		t.Errorf("nextStep = %q, want cpu", got)
	}
	if got := nextStep(steps[:1]); got != "" {
		t.Errorf("nextStep of a complete build = %q, want empty", got)
	}
}

func TestDict(t *testing.T) {
	m, err := dict("a", 1, "b", "two")
	if err != nil || m["a"] != 1 || m["b"] != "two" {
		t.Errorf("dict = %v, %v", m, err)
	}
	if _, err := dict("a"); err == nil {
		t.Error("expected error for odd arguments")
	}
	if _, err := dict(1, 2); err == nil {
		t.Error("expected error for non-string key")
	}
}
