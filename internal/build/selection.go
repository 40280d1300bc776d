// Package build holds the user's in-progress build: one optional part per
// category, the downstream-clearing state machine over those slots, the price
// total and the persistence port.
package build

import (
	"fmt"

	"github.com/hpungsan/rig/internal/catalog"
	"github.com/hpungsan/rig/internal/errors"
)

// Selection is the set of chosen parts, one slot per category in pipeline
// order. The zero value is an empty build.
//
// Select keeps the invariant that an empty slot has only empty slots after it.
// Restore does not check it.
type Selection struct {
	slots [catalog.NumCategories]catalog.Part
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{}
}

// Step is the wizard view of one slot.
type Step struct {
	Category catalog.Category `json:"category"`
	Selected bool             `json:"selected"`
	Enabled  bool             `json:"enabled"`
}

// Select puts part into its category slot and empties every downstream slot.
// It returns the downstream categories that held a part before the call.
func (s *Selection) Select(c catalog.Category, part catalog.Part) ([]catalog.Category, error) {
	if !c.Valid() {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("invalid category %d", int(c)))
	}
	if part == nil {
		return nil, errors.NewInvalidRequest("part is required")
	}
	if part.Category() != c {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("part %s is a %s, not a %s", part.Base().ID, part.Category(), c))
	}

	s.slots[c] = part
	var cleared []catalog.Category
	for _, d := range c.Downstream() {
		if s.slots[d] != nil {
			cleared = append(cleared, d)
			s.slots[d] = nil
		}
	}
	return cleared, nil
}

// ClearAll empties every slot.
func (s *Selection) ClearAll() {
	s.slots = [catalog.NumCategories]catalog.Part{}
}

// Get returns the part in a slot, or nil.
func (s *Selection) Get(c catalog.Category) catalog.Part {
	if s == nil || !c.Valid() {
		return nil
	}
	return s.slots[c]
}

// Has reports whether a slot is filled.
func (s *Selection) Has(c catalog.Category) bool {
	return s.Get(c) != nil
}

// Filled returns the number of filled slots.
func (s *Selection) Filled() int {
	n := 0
	for _, c := range catalog.Categories() {
		if s.Has(c) {
			n++
		}
	}
	return n
}

// Parts returns the filled slots keyed by category.
func (s *Selection) Parts() map[catalog.Category]catalog.Part {
	out := make(map[catalog.Category]catalog.Part)
	for _, c := range catalog.Categories() {
		if p := s.Get(c); p != nil {
			out[c] = p
		}
	}
	return out
}

// Enabled reports whether c may be picked: every upstream slot is filled.
func (s *Selection) Enabled(c catalog.Category) bool {
	if !c.Valid() {
		return false
	}
	for _, u := range c.Upstream() {
		if !s.Has(u) {
			return false
		}
	}
	return true
}

// Steps returns the selected/enabled flags of every slot in pipeline order.
func (s *Selection) Steps() []Step {
	steps := make([]Step, 0, catalog.NumCategories)
	for _, c := range catalog.Categories() {
		steps = append(steps, Step{
			Category: c,
			Selected: s.Has(c),
			Enabled:  s.Enabled(c),
		})
	}
	return steps
}

// Restore replaces every slot with the snapshot, verbatim. Parts filed under
// the wrong key are ignored; nothing else is validated.
func (s *Selection) Restore(snapshot map[catalog.Category]catalog.Part) {
	s.ClearAll()
	for c, p := range snapshot {
		if !c.Valid() || p == nil || p.Category() != c {
			continue
		}
		s.slots[c] = p
	}
}

// Prune reconciles a restored selection with the current catalog. Slots whose
// part lookup cannot find are emptied, then every slot after the first empty
// one is emptied too. It returns the categories that were emptied.
func (s *Selection) Prune(lookup func(c catalog.Category, id string) (catalog.Part, bool)) []catalog.Category {
	var dropped []catalog.Category
	gap := false
	for _, c := range catalog.Categories() {
		p := s.slots[c]
		if p == nil {
			gap = true
			continue
		}
		if gap {
			s.slots[c] = nil
			dropped = append(dropped, c)
			continue
		}
		fresh, ok := lookup(c, p.Base().ID)
		if !ok {
			s.slots[c] = nil
			dropped = append(dropped, c)
			gap = true
			continue
		}
		s.slots[c] = fresh
	}
	return dropped
}

// Clone returns an independent copy. Parts are shared; they are immutable.
func (s *Selection) Clone() *Selection {
	if s == nil {
		return NewSelection()
	}
	out := *s
	return &out
}

// Typed accessors.

func (s *Selection) Motherboard() *catalog.Motherboard {
	p, _ := s.Get(catalog.CategoryMotherboard).(*catalog.Motherboard)
	return p
}

func (s *Selection) CPU() *catalog.CPU {
	p, _ := s.Get(catalog.CategoryCPU).(*catalog.CPU)
	return p
}

func (s *Selection) RAM() *catalog.RAM {
	p, _ := s.Get(catalog.CategoryRAM).(*catalog.RAM)
	return p
}

func (s *Selection) GPU() *catalog.GPU {
	p, _ := s.Get(catalog.CategoryGPU).(*catalog.GPU)
	return p
}

func (s *Selection) PSU() *catalog.PSU {
	p, _ := s.Get(catalog.CategoryPSU).(*catalog.PSU)
	return p
}

func (s *Selection) Case() *catalog.Case {
	p, _ := s.Get(catalog.CategoryCase).(*catalog.Case)
	return p
}

func (s *Selection) CPUCooler() *catalog.CPUCooler {
	p, _ := s.Get(catalog.CategoryCPUCooler).(*catalog.CPUCooler)
	return p
}

func (s *Selection) Storage() *catalog.Storage {
	p, _ := s.Get(catalog.CategoryStorage).(*catalog.Storage)
	return p
}
