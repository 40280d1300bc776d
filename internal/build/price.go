package build

import "github.com/hpungsan/rig/internal/catalog"

// TotalPrice sums the prices of every filled slot. When the selected case has
// an integrated PSU, a separately selected PSU is not counted.
func TotalPrice(s *Selection) int {
	skipPSU := false
	if c := s.Case(); c != nil && c.PSUIntegrated {
		skipPSU = true
	}

	total := 0
	for _, cat := range catalog.Categories() {
		p := s.Get(cat)
		if p == nil {
			continue
		}
		if cat == catalog.CategoryPSU && skipPSU {
			continue
		}
		total += p.Base().Price
	}
	return total
}
