package ops

import (
	"github.com/hpungsan/rig/internal/catalog"
)

// CategoryCount is the number of parts loaded for one category.
type CategoryCount struct {
	Category catalog.Category `json:"category"`
	Label    string           `json:"label"`
	Count    int              `json:"count"`
}

// CatalogOutput contains the result of the Catalog operation.
type CatalogOutput struct {
	Categories []CategoryCount `json:"categories"`
	Total      int             `json:"total"`
	Empty      bool            `json:"empty"`
	Warnings   []string        `json:"warnings,omitempty"`
}

// Catalog reports what the catalog load produced.
func (s *Session) Catalog() *CatalogOutput {
	out := &CatalogOutput{
		Categories: make([]CategoryCount, 0, catalog.NumCategories),
		Empty:      s.cat.Empty(),
	}
	for _, c := range catalog.Categories() {
		n := s.cat.Count(c)
		out.Categories = append(out.Categories, CategoryCount{Category: c, Label: c.Label(), Count: n})
		out.Total += n
	}
	if s.report != nil {
		out.Warnings = append(out.Warnings, s.report.Warnings...)
	}
	if out.Empty {
		out.Warnings = append(out.Warnings, "catalog is empty: no category could be loaded")
	}
	return out
}
