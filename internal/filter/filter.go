// Package filter narrows a part list by search term, brand, price range and
// feature tags, and computes the facet lists that populate filter controls.
package filter

import (
	"sort"
	"strings"

	"github.com/hpungsan/rig/internal/catalog"
)

// Criteria selects parts. A part passes when it satisfies every dimension.
type Criteria struct {
	// Search is matched case-insensitively against name, brand and model.
	Search string `json:"search,omitempty"`

	// Brand must equal the part's brand exactly. Empty passes.
	Brand string `json:"brand,omitempty"`

	// MinPrice and MaxPrice bound the price, both inclusive.
	MinPrice int `json:"min_price,omitempty"`
	MaxPrice int `json:"max_price,omitempty"`

	// Features passes a part when any requested feature overlaps any of its
	// tags. Empty passes.
	Features []string `json:"features,omitempty"`
}

// WithDefaults returns a copy of c whose zero MaxPrice is replaced with the
// highest price in parts, so an unset upper bound admits everything.
func (c Criteria) WithDefaults(parts []catalog.Part) Criteria {
	if c.MaxPrice == 0 {
		c.MaxPrice = MaxPrice(parts)
	}
	return c
}

// Apply returns the parts that satisfy c, in input order.
func Apply(parts []catalog.Part, c Criteria) []catalog.Part {
	out := make([]catalog.Part, 0, len(parts))
	for _, p := range parts {
		if Match(p, c) {
			out = append(out, p)
		}
	}
	return out
}

// Match reports whether a single part satisfies c.
func Match(p catalog.Part, c Criteria) bool {
	if p == nil {
		return false
	}
	return matchSearch(p, c.Search) &&
		matchBrand(p, c.Brand) &&
		matchPrice(p, c.MinPrice, c.MaxPrice) &&
		matchFeatures(p, c.Features)
}

func matchSearch(p catalog.Part, term string) bool {
	if term == "" {
		return true
	}
	info := p.Base()
	haystack := strings.ToLower(info.Name + " " + info.Brand + " " + info.Model)
	return strings.Contains(haystack, strings.ToLower(term))
}

func matchBrand(p catalog.Part, brand string) bool {
	return brand == "" || p.Base().Brand == brand
}

func matchPrice(p catalog.Part, lo, hi int) bool {
	price := p.Base().Price
	return price >= lo && price <= hi
}

func matchFeatures(p catalog.Part, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	tags := catalog.Features(p)
	for _, w := range wanted {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		for _, tag := range tags {
			tag = strings.ToLower(tag)
			if strings.Contains(tag, w) || strings.Contains(w, tag) {
				return true
			}
		}
	}
	return false
}

// Brands returns the distinct brands in parts, sorted.
func Brands(parts []catalog.Part) []string {
	seen := make(map[string]struct{})
	for _, p := range parts {
		if p == nil || p.Base().Brand == "" {
			continue
		}
		seen[p.Base().Brand] = struct{}{}
	}
	return sortedKeys(seen)
}

// Features returns the distinct feature tags of parts, sorted.
func Features(parts []catalog.Part) []string {
	seen := make(map[string]struct{})
	for _, p := range parts {
		for _, tag := range catalog.Features(p) {
			seen[tag] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// MaxPrice returns the highest price in parts, or 0 for an empty list.
func MaxPrice(parts []catalog.Part) int {
	highest := 0
	for _, p := range parts {
		if p != nil && p.Base().Price > highest {
			highest = p.Base().Price
		}
	}
	return highest
}

// Facets bundles the values used to populate filter controls.
type Facets struct {
	Brands   []string `json:"brands"`
	Features []string `json:"features"`
	MaxPrice int      `json:"max_price"`
}

// FacetsOf computes all facets of parts.
func FacetsOf(parts []catalog.Part) Facets {
	return Facets{
		Brands:   Brands(parts),
		Features: Features(parts),
		MaxPrice: MaxPrice(parts),
	}
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
