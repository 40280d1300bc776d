// Package compat classifies candidate parts against the parts already chosen
// upstream. Every function here is pure: the same selection and candidate
// always produce the same result.
package compat

import (
	"strings"

	"github.com/hpungsan/rig/internal/build"
	"github.com/hpungsan/rig/internal/catalog"
)

// Status is the classification of one candidate.
type Status string

const (
	StatusAvailable    Status = "available_compatible"
	StatusOutOfStock   Status = "out_of_stock_compatible"
	StatusIncompatible Status = "incompatible"
	StatusConflict     Status = "conflict"
)

// Selectable reports whether a part with this status may be picked.
func (s Status) Selectable() bool {
	return s == StatusAvailable
}

// Result is the classification of one candidate. Reason is set only for
// incompatible and conflict results.
type Result struct {
	Part   catalog.Part
	Status Status
	Reason string
}

// Buckets groups classified candidates. Order within a bucket follows the
// input order.
type Buckets struct {
	// Ready is false when a prerequisite slot is empty; Missing lists those
	// slots and every bucket is empty.
	Ready   bool
	Missing []catalog.Category

	Available    []Result
	OutOfStock   []Result
	Incompatible []Result
	Conflict     []Result
}

// Len returns the number of classified candidates.
func (b Buckets) Len() int {
	return len(b.Available) + len(b.OutOfStock) + len(b.Incompatible) + len(b.Conflict)
}

var prerequisites = map[catalog.Category][]catalog.Category{
	catalog.CategoryCPU:       {catalog.CategoryMotherboard},
	catalog.CategoryRAM:       {catalog.CategoryMotherboard},
	catalog.CategoryGPU:       {catalog.CategoryMotherboard},
	catalog.CategoryPSU:       {catalog.CategoryCPU, catalog.CategoryGPU},
	catalog.CategoryCase:      {catalog.CategoryMotherboard, catalog.CategoryGPU, catalog.CategoryPSU},
	catalog.CategoryCPUCooler: {catalog.CategoryCPU, catalog.CategoryCase},
	catalog.CategoryStorage:   {catalog.CategoryMotherboard},
}

// Prerequisites returns the categories whose selected parts the rules of c
// read. Motherboard and the peripherals have none.
func Prerequisites(c catalog.Category) []catalog.Category {
	deps := prerequisites[c]
	out := make([]catalog.Category, len(deps))
	copy(out, deps)
	return out
}

// Missing returns the prerequisites of c that are not selected.
func Missing(sel *build.Selection, c catalog.Category) []catalog.Category {
	var missing []catalog.Category
	for _, dep := range prerequisites[c] {
		if !sel.Has(dep) {
			missing = append(missing, dep)
		}
	}
	return missing
}

// Classify evaluates the rules of the candidate's category. Rule failures win
// over a conflict; a conflict wins over stock. Stock only splits compatible
// parts.
func Classify(sel *build.Selection, part catalog.Part) Result {
	res := Result{Part: part}
	if part == nil {
		res.Status = StatusIncompatible
		res.Reason = "no part"
		return res
	}

	if missing := Missing(sel, part.Category()); len(missing) > 0 {
		res.Status = StatusIncompatible
		res.Reason = "select " + labels(missing) + " first"
		return res
	}

	reasons, conflict := check(sel, part)
	switch {
	case len(reasons) > 0:
		res.Status = StatusIncompatible
		res.Reason = strings.Join(reasons, "; ")
	case conflict != "":
		res.Status = StatusConflict
		res.Reason = conflict
	case !part.Base().Stock.InStock():
		res.Status = StatusOutOfStock
	default:
		res.Status = StatusAvailable
	}
	return res
}

// Evaluate classifies every part of one category and buckets the results.
// Parts of other categories are skipped.
func Evaluate(sel *build.Selection, c catalog.Category, parts []catalog.Part) Buckets {
	if missing := Missing(sel, c); len(missing) > 0 {
		return Buckets{Missing: missing}
	}

	b := Buckets{Ready: true}
	for _, p := range parts {
		if p == nil || p.Category() != c {
			continue
		}
		res := Classify(sel, p)
		switch res.Status {
		case StatusAvailable:
			b.Available = append(b.Available, res)
		case StatusOutOfStock:
			b.OutOfStock = append(b.OutOfStock, res)
		case StatusConflict:
			b.Conflict = append(b.Conflict, res)
		default:
			b.Incompatible = append(b.Incompatible, res)
		}
	}
	return b
}

// check dispatches to the rule set of the part's category. Callers have
// already verified the prerequisites are selected.
func check(sel *build.Selection, part catalog.Part) (reasons []string, conflict string) {
	switch p := part.(type) {
	case *catalog.CPU:
		return checkCPU(sel.Motherboard(), p), ""
	case *catalog.RAM:
		return checkRAM(sel.Motherboard(), p), ""
	case *catalog.GPU:
		return checkGPU(sel.Motherboard()), ""
	case *catalog.PSU:
		return checkPSU(sel.CPU(), sel.GPU(), p), ""
	case *catalog.Case:
		return checkCase(sel.Motherboard(), sel.GPU(), sel.PSU(), p), caseConflict(sel.PSU(), p)
	case *catalog.CPUCooler:
		return checkCooler(sel.CPU(), sel.Case(), p), ""
	case *catalog.Storage:
		return checkStorage(sel.Motherboard(), p), ""
	case *catalog.Motherboard, *catalog.Monitor, *catalog.Keyboard, *catalog.Mouse:
		return nil, ""
	}
	return []string{"unsupported part type"}, ""
}

func labels(cats []catalog.Category) string {
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.Label()
	}
	return strings.Join(names, ", ")
}
