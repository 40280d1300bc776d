package ops

import (
	"github.com/hpungsan/rig/internal/catalog"
	"github.com/hpungsan/rig/internal/compat"
	"github.com/hpungsan/rig/internal/filter"
)

// OptionsInput contains parameters for the Options operation.
type OptionsInput struct {
	Category      string
	Criteria      filter.Criteria
	IncludeFacets bool
}

// Option is one classified candidate.
type Option struct {
	PartView
	Status compat.Status `json:"status"`
	Reason string        `json:"reason,omitempty"`
}

// OptionsOutput contains the result of the Options operation.
type OptionsOutput struct {
	Category catalog.Category `json:"category"`
	Label    string           `json:"label"`

	// Enabled is false while an upstream step is empty.
	Enabled bool `json:"enabled"`

	// Ready is false while a prerequisite is missing; the buckets are then empty.
	Ready   bool               `json:"ready"`
	Missing []catalog.Category `json:"missing,omitempty"`

	// Selected is the id of the part currently in this slot.
	Selected string `json:"selected,omitempty"`

	Matched      int      `json:"matched"`
	Available    []Option `json:"available"`
	OutOfStock   []Option `json:"out_of_stock"`
	Incompatible []Option `json:"incompatible"`
	Conflict     []Option `json:"conflict"`

	Facets *filter.Facets `json:"facets,omitempty"`
}

// Options filters the parts of one category and classifies the survivors
// against the current build.
func (s *Session) Options(input OptionsInput) (*OptionsOutput, error) {
	c, err := catalog.ParseCategory(input.Category)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	parts := s.cat.Parts(c)
	matched := filter.Apply(parts, input.Criteria.WithDefaults(parts))
	buckets := compat.Evaluate(s.sel, c, matched)

	out := &OptionsOutput{
		Category:     c,
		Label:        c.Label(),
		Enabled:      s.sel.Enabled(c),
		Ready:        buckets.Ready,
		Missing:      buckets.Missing,
		Matched:      len(matched),
		Available:    optionsOf(buckets.Available),
		OutOfStock:   optionsOf(buckets.OutOfStock),
		Incompatible: optionsOf(buckets.Incompatible),
		Conflict:     optionsOf(buckets.Conflict),
	}
	if p := s.sel.Get(c); p != nil {
		out.Selected = p.Base().ID
	}
	if input.IncludeFacets {
		facets := filter.FacetsOf(parts)
		out.Facets = &facets
	}
	return out, nil
}

func optionsOf(results []compat.Result) []Option {
	out := make([]Option, 0, len(results))
	for _, r := range results {
		out = append(out, Option{
			PartView: viewOf(r.Part),
			Status:   r.Status,
			Reason:   r.Reason,
		})
	}
	return out
}
