package ops

import (
	"context"

	"github.com/hpungsan/rig/internal/build"
	"github.com/hpungsan/rig/internal/catalog"
	"github.com/hpungsan/rig/internal/errors"
)

// identifier is implemented by stores that assign ids to builds.
type identifier interface {
	BuildID(ctx context.Context, key string) (string, error)
}

// Slot is one filled slot of the build.
type Slot struct {
	Category catalog.Category `json:"category"`
	Label    string           `json:"label"`
	Part     catalog.Part     `json:"part"`
}

// StatusOutput contains the result of the Status operation.
type StatusOutput struct {
	Build    string       `json:"build"`
	BuildID  string       `json:"build_id,omitempty"`
	Steps    []build.Step `json:"steps"`
	Parts    []Slot       `json:"parts"`
	Filled   int          `json:"filled"`
	Complete bool         `json:"complete"`
	Total    int          `json:"total"`
	Warnings []string     `json:"warnings,omitempty"`
}

// Status describes the current build.
func (s *Session) Status(ctx context.Context) *StatusOutput {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := &StatusOutput{
		Build:    s.key,
		Steps:    s.sel.Steps(),
		Parts:    slotsOf(s.sel),
		Filled:   s.sel.Filled(),
		Total:    build.TotalPrice(s.sel),
		Warnings: append([]string(nil), s.restoreWarnings...),
	}
	out.Complete = out.Filled == catalog.NumCategories

	if ids, ok := s.store.(identifier); ok {
		id, err := ids.BuildID(ctx, s.key)
		switch {
		case err == nil:
			out.BuildID = id
		case !errors.Is(err, errors.ErrNotFound):
			s.logger.Warn("build id lookup failed", "error", err)
		}
	}
	return out
}

func slotsOf(sel *build.Selection) []Slot {
	out := make([]Slot, 0, catalog.NumCategories)
	for _, c := range catalog.Categories() {
		if p := sel.Get(c); p != nil {
			out = append(out, Slot{Category: c, Label: c.Label(), Part: p})
		}
	}
	return out
}
