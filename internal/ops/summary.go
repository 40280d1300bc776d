package ops

import (
	"fmt"
	"strings"

	"github.com/hpungsan/rig/internal/build"
	"github.com/hpungsan/rig/internal/catalog"
)

// SummaryOutput contains the result of the Summary operation.
type SummaryOutput struct {
	Markdown string `json:"markdown"`
	Filled   int    `json:"filled"`
	Total    int    `json:"total"`
}

// Summary renders the build as a markdown table.
func (s *Session) Summary() *SummaryOutput {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &SummaryOutput{
		Markdown: summaryMarkdown(s.key, s.sel),
		Filled:   s.sel.Filled(),
		Total:    build.TotalPrice(s.sel),
	}
}

func summaryMarkdown(key string, sel *build.Selection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Build: %s\n\n", key)
	b.WriteString("| Component | Part | Brand | Price |\n")
	b.WriteString("|---|---|---|---:|\n")

	integrated := sel.Case() != nil && sel.Case().PSUIntegrated
	for _, c := range catalog.Categories() {
		p := sel.Get(c)
		if p == nil {
			fmt.Fprintf(&b, "| %s | _not selected_ | | |\n", c.Label())
			continue
		}
		info := p.Base()
		price := fmt.Sprintf("%d", info.Price)
		if c == catalog.CategoryPSU && integrated {
			price = "_not counted_"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", c.Label(), escapeCell(info.Name), escapeCell(info.Brand), price)
	}

	fmt.Fprintf(&b, "\n**Total: %d**\n", build.TotalPrice(sel))
	if integrated && sel.PSU() != nil {
		b.WriteString("\nThe case has an integrated PSU, so the separate PSU is not counted.\n")
	}
	if n := sel.Filled(); n < catalog.NumCategories {
		fmt.Fprintf(&b, "\n%d of %d components selected.\n", n, catalog.NumCategories)
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
