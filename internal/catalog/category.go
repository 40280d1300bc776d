package catalog

import (
	"fmt"
	"strings"

	"github.com/hpungsan/rig/internal/errors"
)

// Category identifies one of the eleven build slots. The numeric order is the
// pipeline order: a slot is only offered once every earlier slot is filled.
type Category int

const (
	CategoryMotherboard Category = iota
	CategoryCPU
	CategoryRAM
	CategoryGPU
	CategoryPSU
	CategoryCase
	CategoryCPUCooler
	CategoryStorage
	CategoryMonitor
	CategoryKeyboard
	CategoryMouse
)

// NumCategories is the number of build slots.
const NumCategories = int(CategoryMouse) + 1

var categoryKeys = [NumCategories]string{
	"motherboard", "cpu", "ram", "gpu", "psu", "case",
	"cpu_cooler", "storage", "monitor", "keyboard", "mouse",
}

var categoryLabels = [NumCategories]string{
	"Motherboard", "CPU", "RAM", "Graphics Card", "Power Supply", "Case",
	"CPU Cooler", "Storage", "Monitor", "Keyboard", "Mouse",
}

// Categories returns all categories in pipeline order.
func Categories() []Category {
	out := make([]Category, NumCategories)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// Valid reports whether c is one of the eleven known categories.
func (c Category) Valid() bool {
	return c >= 0 && int(c) < NumCategories
}

// Key returns the stable identifier used in files, URLs and snapshots.
func (c Category) Key() string {
	if !c.Valid() {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryKeys[c]
}

// Label returns a human-readable name.
func (c Category) Label() string {
	if !c.Valid() {
		return c.Key()
	}
	return categoryLabels[c]
}

func (c Category) String() string { return c.Key() }

// Upstream returns every category before c in pipeline order.
func (c Category) Upstream() []Category {
	if !c.Valid() {
		return nil
	}
	out := make([]Category, 0, int(c))
	for i := 0; i < int(c); i++ {
		out = append(out, Category(i))
	}
	return out
}

// Downstream returns every category after c in pipeline order.
func (c Category) Downstream() []Category {
	if !c.Valid() {
		return nil
	}
	out := make([]Category, 0, NumCategories-int(c)-1)
	for i := int(c) + 1; i < NumCategories; i++ {
		out = append(out, Category(i))
	}
	return out
}

// ParseCategory resolves a category key. Matching ignores case, surrounding
// whitespace and the dash/underscore distinction ("cpu-cooler" == "cpu_cooler").
func ParseCategory(s string) (Category, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	if key == "" {
		return 0, errors.NewInvalidRequest("category is required")
	}
	for i, k := range categoryKeys {
		if k == key {
			return Category(i), nil
		}
	}
	return 0, errors.NewInvalidRequest(fmt.Sprintf("unknown category %q (valid: %s)", s, strings.Join(categoryKeys[:], ", ")))
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid category %d", int(c))
	}
	return []byte(c.Key()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(b []byte) error {
	parsed, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
