package catalog

// Catalog holds every loaded part, grouped by category. It is built once and
// never mutated afterwards.
type Catalog struct {
	parts [NumCategories][]Part
	index [NumCategories]map[string]Part
}

// NewCatalog builds a catalog from per-category lists. Parts filed under the
// wrong category are dropped; on duplicate ids the first entry wins.
func NewCatalog(lists map[Category][]Part) *Catalog {
	c := &Catalog{}
	for cat, parts := range lists {
		if !cat.Valid() {
			continue
		}
		c.set(cat, parts)
	}
	for i := range c.index {
		if c.index[i] == nil {
			c.index[i] = map[string]Part{}
		}
	}
	return c
}

func (c *Catalog) set(cat Category, parts []Part) {
	kept := make([]Part, 0, len(parts))
	index := make(map[string]Part, len(parts))
	for _, p := range parts {
		if p == nil || p.Category() != cat {
			continue
		}
		id := p.Base().ID
		if _, dup := index[id]; dup {
			continue
		}
		index[id] = p
		kept = append(kept, p)
	}
	c.parts[cat] = kept
	c.index[cat] = index
}

// Parts returns the parts of a category in catalog order. The slice must not
// be modified.
func (c *Catalog) Parts(cat Category) []Part {
	if c == nil || !cat.Valid() {
		return nil
	}
	return c.parts[cat]
}

// Find looks up a part by id within a category.
func (c *Catalog) Find(cat Category, id string) (Part, bool) {
	if c == nil || !cat.Valid() {
		return nil, false
	}
	p, ok := c.index[cat][id]
	return p, ok
}

// Count returns the number of parts in a category.
func (c *Catalog) Count(cat Category) int {
	return len(c.Parts(cat))
}

// Empty reports whether no category holds any part.
func (c *Catalog) Empty() bool {
	for _, cat := range Categories() {
		if c.Count(cat) > 0 {
			return false
		}
	}
	return true
}
