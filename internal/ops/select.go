package ops

import (
	"context"
	"strings"

	"github.com/hpungsan/rig/internal/build"
	"github.com/hpungsan/rig/internal/catalog"
	"github.com/hpungsan/rig/internal/compat"
	"github.com/hpungsan/rig/internal/errors"
)

// SelectInput contains parameters for the Select operation.
type SelectInput struct {
	Category string
	ID       string
}

// SelectOutput contains the result of the Select operation.
type SelectOutput struct {
	Category catalog.Category   `json:"category"`
	Part     catalog.Part       `json:"part"`
	Cleared  []catalog.Category `json:"cleared"`
	Total    int                `json:"total"`
}

// Select puts a catalog part into its slot. The part must be classified
// available_compatible against the current build and every upstream step
// must be filled. Downstream slots are emptied.
func (s *Session) Select(ctx context.Context, input SelectInput) (*SelectOutput, error) {
	c, err := catalog.ParseCategory(input.Category)
	if err != nil {
		return nil, err
	}
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	part, ok := s.cat.Find(c, id)
	if !ok {
		return nil, errors.NewPartNotFound(c.Key(), id)
	}

	if missing := lockedBy(s.sel, c); len(missing) > 0 {
		return nil, errors.NewStepLocked(c.Key(), keys(missing))
	}

	res := compat.Classify(s.sel, part)
	if !res.Status.Selectable() {
		return nil, errors.NewNotSelectable(c.Key(), id, string(res.Status), res.Reason)
	}

	cleared, err := s.sel.Select(c, part)
	if err != nil {
		return nil, err
	}

	s.persist(ctx, c, part)
	for _, d := range c.Downstream() {
		s.persist(ctx, d, nil)
	}
	s.logger.Debug("part selected", "category", c.Key(), "id", id, "cleared", keys(cleared))

	if cleared == nil {
		cleared = []catalog.Category{}
	}
	return &SelectOutput{
		Category: c,
		Part:     part,
		Cleared:  cleared,
		Total:    build.TotalPrice(s.sel),
	}, nil
}
