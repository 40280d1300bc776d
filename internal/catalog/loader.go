package catalog

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/hpungsan/rig/internal/errors"
)

// Source fetches the parts of one category.
type Source interface {
	Fetch(ctx context.Context, c Category) ([]Part, error)
}

// LoadOptions tunes Load.
type LoadOptions struct {
	// Timeout bounds each category fetch. Zero means no timeout.
	Timeout time.Duration

	// Logger receives one warning per failed category. Defaults to slog.Default().
	Logger *slog.Logger
}

// LoadReport describes how the catalog load went.
type LoadReport struct {
	Counts   map[Category]int   `json:"counts"`
	Failures []*errors.RigError `json:"-"`
	Warnings []string           `json:"warnings,omitempty"`
	Empty    bool               `json:"empty"`
}

// Err returns a CATALOG_EMPTY error when nothing could be loaded, nil otherwise.
// Per-category failures are warnings, not errors.
func (r *LoadReport) Err() error {
	if r == nil || !r.Empty {
		return nil
	}
	return errors.NewCatalogEmpty()
}

// Load fetches every category concurrently and waits for all of them. A
// failing category degrades to an empty list and is recorded in the report;
// it never affects the other categories. There are no retries.
func Load(ctx context.Context, src Source, opts LoadOptions) (*Catalog, *LoadReport) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	type result struct {
		parts []Part
		err   error
	}
	results := make([]result, NumCategories)

	var wg sync.WaitGroup
	for _, cat := range Categories() {
		wg.Add(1)
		go func(cat Category) {
			defer wg.Done()
			fetchCtx := ctx
			if opts.Timeout > 0 {
				var cancel context.CancelFunc
				fetchCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
				defer cancel()
			}
			parts, err := src.Fetch(fetchCtx, cat)
			results[cat] = result{parts: parts, err: err}
		}(cat)
	}
	wg.Wait()

	lists := make(map[Category][]Part, NumCategories)
	report := &LoadReport{Counts: make(map[Category]int, NumCategories)}
	for _, cat := range Categories() {
		res := results[cat]
		if res.err != nil {
			fail := errors.NewCatalogFetchFailure(cat.Key(), res.err)
			report.Failures = append(report.Failures, fail)
			report.Warnings = append(report.Warnings, fail.Message)
			logger.Warn("catalog fetch failed", "category", cat.Key(), "error", res.err)
			lists[cat] = nil
			continue
		}
		lists[cat] = res.parts
	}

	cat := NewCatalog(lists)
	for _, c := range Categories() {
		report.Counts[c] = cat.Count(c)
	}
	report.Empty = cat.Empty()
	if report.Empty {
		logger.Error("catalog is empty", "failures", len(report.Failures))
	}
	return cat, report
}
